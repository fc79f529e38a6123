package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Values the minutes column carries when a rostered player did not play.
const (
	MinutesDidNotPlay  = "Did not play"
	MinutesNotWithTeam = "Not with team"
	MinutesDidNotDress = "Did not dress"
	MinutesSuspended   = "Player suspended"
	MinutesInactive    = "Inactive"
)

// dnpMarkers lets ParseMinutes recognize every non-numeric minutes value.
var dnpMarkers = map[string]struct{}{
	strings.ToLower(MinutesDidNotPlay):  {},
	strings.ToLower(MinutesNotWithTeam): {},
	strings.ToLower(MinutesDidNotDress): {},
	strings.ToLower(MinutesSuspended):   {},
	strings.ToLower(MinutesInactive):    {},
}

// ParseMinutes converts a box score minutes value ("34:12", "240" for team
// rows, or a DNP marker) into seconds played. played is false for DNP rows.
func ParseMinutes(mp string) (seconds int, played bool, err error) {
	mp = strings.TrimSpace(mp)
	if mp == "" {
		return 0, false, nil
	}
	if _, ok := dnpMarkers[strings.ToLower(mp)]; ok {
		return 0, false, nil
	}

	if mm, ss, found := strings.Cut(mp, ":"); found {
		m, err := strconv.Atoi(mm)
		if err != nil {
			return 0, false, fmt.Errorf("parse minutes %q: %w", mp, err)
		}
		s, err := strconv.Atoi(ss)
		if err != nil {
			return 0, false, fmt.Errorf("parse minutes %q: %w", mp, err)
		}
		return m*60 + s, true, nil
	}

	// Team rows carry whole minutes (240, 265 with OT)
	m, err := strconv.Atoi(mp)
	if err != nil {
		return 0, false, fmt.Errorf("parse minutes %q: %w", mp, err)
	}
	return m * 60, true, nil
}

// FormatMinutes renders seconds played back to the MM:SS display form.
func FormatMinutes(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// RawBoxscoreLine is one player (or team total) line as submitted by scrapers.
// Scrapers serialize inconsistently: counting stats may arrive as native JSON
// numbers or as quoted strings, and minutes is always a string. Flexible
// unmarshaling in flex_json.go straightens this out.
type RawBoxscoreLine struct {
	GameID      string `json:"game_id" validate:"required"`
	Date        string `json:"date" validate:"required"` // YYYY-MM-DD
	Season      int    `json:"season" validate:"required"`
	GameType    string `json:"game_type"`
	GameRemarks string `json:"game_remarks,omitempty"`

	Team     string `json:"team" validate:"required"`
	Opponent string `json:"opponent" validate:"required"`
	Location string `json:"location"` // "home" or "away"
	Outcome  string `json:"outcome"`  // "W" or "L"

	PlayerID   string `json:"player_id,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
	Starter    bool   `json:"starter,omitempty"`
	TeamTotal  bool   `json:"team_total,omitempty"`

	MP string `json:"mp,omitempty"`

	FG        int     `json:"fg"`
	FGA       int     `json:"fga"`
	ThreeP    int     `json:"three_p"`
	ThreePA   int     `json:"three_pa"`
	FT        int     `json:"ft"`
	FTA       int     `json:"fta"`
	ORB       int     `json:"orb"`
	DRB       int     `json:"drb"`
	TRB       int     `json:"trb"`
	AST       int     `json:"ast"`
	STL       int     `json:"stl"`
	BLK       int     `json:"blk"`
	TOV       int     `json:"tov"`
	PF        int     `json:"pf"`
	PTS       int     `json:"pts"`
	PlusMinus float64 `json:"plus_minus,omitempty"`
}

// Validate catches structural problems the validator tags don't cover.
func (r *RawBoxscoreLine) Validate() error {
	if _, err := time.Parse("2006-01-02", r.Date); err != nil {
		return fmt.Errorf("invalid date %q: %w", r.Date, err)
	}
	if !r.TeamTotal && r.PlayerName == "" {
		return fmt.Errorf("player line missing player_name")
	}
	if r.Location != "" && r.Location != "home" && r.Location != "away" {
		return fmt.Errorf("invalid location %q", r.Location)
	}
	return nil
}

// BoxscoreLine is the normalized line for ClickHouse storage. Derived columns
// (two-point splits, seconds played) are computed once at ingest so queries
// never re-derive them.
type BoxscoreLine struct {
	GameID      string
	Date        time.Time
	Season      uint16
	GameType    string
	GameRemarks string

	Team     string
	Opponent string
	Home     uint8 // 1 = home
	Win      uint8 // 1 = win

	PlayerID   string
	PlayerName string
	Starter    uint8
	TeamTotal  uint8

	SecondsPlayed uint32
	Played        uint8

	FG        uint16
	FGA       uint16
	TwoP      uint16
	TwoPA     uint16
	ThreeP    uint16
	ThreePA   uint16
	FT        uint16
	FTA       uint16
	ORB       uint16
	DRB       uint16
	TRB       uint16
	AST       uint16
	STL       uint16
	BLK       uint16
	TOV       uint16
	PF        uint16
	PTS       uint16
	PlusMinus float64
}

// Normalize converts a raw line into its ClickHouse form.
func (r *RawBoxscoreLine) Normalize() (*BoxscoreLine, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, fmt.Errorf("normalize boxscore line: %w", err)
	}

	seconds, played, err := ParseMinutes(r.MP)
	if err != nil {
		return nil, fmt.Errorf("normalize boxscore line: %w", err)
	}

	line := &BoxscoreLine{
		GameID:        r.GameID,
		Date:          date,
		Season:        uint16(r.Season),
		GameType:      strings.ToLower(r.GameType),
		GameRemarks:   strings.ToLower(r.GameRemarks),
		Team:          r.Team,
		Opponent:      r.Opponent,
		PlayerID:      r.PlayerID,
		PlayerName:    r.PlayerName,
		SecondsPlayed: uint32(seconds),
		FG:            uint16(r.FG),
		FGA:           uint16(r.FGA),
		TwoP:          uint16(r.FG - r.ThreeP),
		TwoPA:         uint16(r.FGA - r.ThreePA),
		ThreeP:        uint16(r.ThreeP),
		ThreePA:       uint16(r.ThreePA),
		FT:            uint16(r.FT),
		FTA:           uint16(r.FTA),
		ORB:           uint16(r.ORB),
		DRB:           uint16(r.DRB),
		TRB:           uint16(r.TRB),
		AST:           uint16(r.AST),
		STL:           uint16(r.STL),
		BLK:           uint16(r.BLK),
		TOV:           uint16(r.TOV),
		PF:            uint16(r.PF),
		PTS:           uint16(r.PTS),
		PlusMinus:     r.PlusMinus,
	}
	if r.FG < r.ThreeP {
		line.TwoP = 0
	}
	if r.FGA < r.ThreePA {
		line.TwoPA = 0
	}
	if r.Location == "home" {
		line.Home = 1
	}
	if r.Outcome == "W" {
		line.Win = 1
	}
	if r.Starter {
		line.Starter = 1
	}
	if r.TeamTotal {
		line.TeamTotal = 1
	}
	if played {
		line.Played = 1
	}
	return line, nil
}

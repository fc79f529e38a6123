package models

import "time"

// Game types as stored in the schedule table.
const (
	GameTypeRegularSeason      = "regular season"
	GameTypePlayoffs           = "playoffs"
	GameTypePlayIn             = "play-in"
	GameTypeInSeasonTournament = "in-season tournament"

	RemarkChampionshipGame = "championship game"
)

// Game is a row from the schedule table. A game with HomePts == 0 has not
// been played yet.
type Game struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Season      int       `json:"season"`
	GameType    string    `json:"game_type"`
	GameRemarks string    `json:"game_remarks,omitempty"`
	HomeTeam    string    `json:"home_team"`
	VisitorTeam string    `json:"visitor_team"`
	HomePts     int       `json:"home_team_pts"`
	VisitorPts  int       `json:"visitor_team_pts"`
	Overtime    string    `json:"overtime,omitempty"`
	Attendance  int       `json:"attendance,omitempty"`
	Arena       string    `json:"arena,omitempty"`
}

// Played reports whether the game has a final score.
func (g Game) Played() bool {
	return g.HomePts > 0
}

// Winner returns the winning team name, or "" for an unplayed or tied game.
func (g Game) Winner() string {
	switch {
	case !g.Played():
		return ""
	case g.HomePts > g.VisitorPts:
		return g.HomeTeam
	case g.VisitorPts > g.HomePts:
		return g.VisitorTeam
	default:
		return ""
	}
}

// IsRegularSeason reports whether the game counts toward regular season
// records. In-season tournament games count, except the championship game.
func (g Game) IsRegularSeason() bool {
	switch g.GameType {
	case GameTypeRegularSeason:
		return true
	case GameTypeInSeasonTournament:
		return g.GameRemarks != RemarkChampionshipGame
	default:
		return false
	}
}

// ScheduleFilter narrows a schedule listing.
type ScheduleFilter struct {
	Season   int
	Team     string
	GameType string
	From     *time.Time
	To       *time.Time
	Upcoming bool
	Limit    int
	Offset   int
}

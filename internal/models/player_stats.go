package models

// SeasonAverages is one season row of a player's career per-game averages.
type SeasonAverages struct {
	Season   int     `json:"season"`
	Team     string  `json:"team"`
	Games    uint64  `json:"games"`
	Started  uint64  `json:"started"`
	MPG      float64 `json:"mpg"`
	PPG      float64 `json:"ppg"`
	RPG      float64 `json:"rpg"`
	APG      float64 `json:"apg"`
	SPG      float64 `json:"spg"`
	BPG      float64 `json:"bpg"`
	TPG      float64 `json:"tpg"`
	FGPct    float64 `json:"fg_pct"`
	TwoPct   float64 `json:"two_pct"`
	ThreePct float64 `json:"three_pct"`
	FTPct    float64 `json:"ft_pct"`
}

// CareerTotals accumulates a player's counting stats across all seasons.
type CareerTotals struct {
	Games    uint64  `json:"games"`
	Wins     uint64  `json:"wins"`
	Losses   uint64  `json:"losses"`
	Seconds  uint64  `json:"seconds_played"`
	PTS      uint64  `json:"pts"`
	TRB      uint64  `json:"trb"`
	AST      uint64  `json:"ast"`
	STL      uint64  `json:"stl"`
	BLK      uint64  `json:"blk"`
	TOV      uint64  `json:"tov"`
	FG       uint64  `json:"fg"`
	FGA      uint64  `json:"fga"`
	ThreeP   uint64  `json:"three_p"`
	ThreePA  uint64  `json:"three_pa"`
	FT       uint64  `json:"ft"`
	FTA      uint64  `json:"fta"`
	FGPct    float64 `json:"fg_pct"`
	ThreePct float64 `json:"three_pct"`
	FTPct    float64 `json:"ft_pct"`
}

// CareerHigh is a single-game best with the game it happened in.
type CareerHigh struct {
	Value    uint64 `json:"value"`
	GameID   string `json:"game_id"`
	Date     string `json:"date"`
	Opponent string `json:"opponent"`
}

// CareerHighs collects a player's single-game bests.
type CareerHighs struct {
	PTS CareerHigh `json:"pts"`
	TRB CareerHigh `json:"trb"`
	AST CareerHigh `json:"ast"`
	STL CareerHigh `json:"stl"`
	BLK CareerHigh `json:"blk"`
}

// PlayerGameLogEntry is one played game from the game log.
type PlayerGameLogEntry struct {
	GameID    string  `json:"game_id"`
	Date      string  `json:"date"`
	Team      string  `json:"team"`
	Opponent  string  `json:"opponent"`
	Home      bool    `json:"home"`
	Win       bool    `json:"win"`
	Starter   bool    `json:"starter"`
	MP        string  `json:"mp"`
	PTS       uint64  `json:"pts"`
	TRB       uint64  `json:"trb"`
	AST       uint64  `json:"ast"`
	STL       uint64  `json:"stl"`
	BLK       uint64  `json:"blk"`
	TOV       uint64  `json:"tov"`
	FG        uint64  `json:"fg"`
	FGA       uint64  `json:"fga"`
	ThreeP    uint64  `json:"three_p"`
	ThreePA   uint64  `json:"three_pa"`
	FT        uint64  `json:"ft"`
	FTA       uint64  `json:"fta"`
	PlusMinus float64 `json:"plus_minus"`
}

// Milestone is a career threshold a player has crossed.
type Milestone struct {
	Stat      string `json:"stat"`
	Threshold uint64 `json:"threshold"`
	Label     string `json:"label"`
}

// PlayerStatsResponse bundles everything the player dashboard renders.
type PlayerStatsResponse struct {
	PlayerName string               `json:"player_name"`
	Seasons    []SeasonAverages     `json:"seasons"`
	Totals     CareerTotals         `json:"totals"`
	Highs      CareerHighs          `json:"highs"`
	GameLog    []PlayerGameLogEntry `json:"game_log,omitempty"`
	Milestones []Milestone          `json:"milestones,omitempty"`
}

// PlayerMatch is one candidate from fuzzy player name resolution.
type PlayerMatch struct {
	PlayerName string `json:"player_name"`
	Games      uint64 `json:"games"`
	LastSeason int    `json:"last_season"`
}

package models

import "time"

// TeamStatsFilter narrows the team dashboard. Season and GameType are always
// set by the handler; Opponent and the date range are optional.
type TeamStatsFilter struct {
	Season   int
	GameType string
	Opponent string
	From     *time.Time
	To       *time.Time
}

// TeamOverview summarizes a team's record for a season.
type TeamOverview struct {
	Team          string  `json:"team"`
	Season        int     `json:"season"`
	Games         uint64  `json:"games"`
	Wins          uint64  `json:"wins"`
	Losses        uint64  `json:"losses"`
	WinPct        float64 `json:"win_pct"`
	PointsFor     uint64  `json:"points_for"`
	PointsAgainst uint64  `json:"points_against"`
	PPG           float64 `json:"ppg"`
	OppPPG        float64 `json:"opp_ppg"`
	PointDiff     float64 `json:"point_diff"`
	RPG           float64 `json:"rpg"`
	APG           float64 `json:"apg"`
	SPG           float64 `json:"spg"`
	BPG           float64 `json:"bpg"`
	FGPct         float64 `json:"fg_pct"`
	ThreePct      float64 `json:"three_pct"`
	FTPct         float64 `json:"ft_pct"`
	LogoURL       string  `json:"logo_url"`
}

// TeamSeasonSplit is one season row in a team's franchise history.
type TeamSeasonSplit struct {
	Season int     `json:"season"`
	Games  uint64  `json:"games"`
	Wins   uint64  `json:"wins"`
	Losses uint64  `json:"losses"`
	WinPct float64 `json:"win_pct"`
	PPG    float64 `json:"ppg"`
	OppPPG float64 `json:"opp_ppg"`
}

// OpponentSplit is a team's record against one opponent.
type OpponentSplit struct {
	Opponent string  `json:"opponent"`
	Games    uint64  `json:"games"`
	Wins     uint64  `json:"wins"`
	Losses   uint64  `json:"losses"`
	WinPct   float64 `json:"win_pct"`
	PPG      float64 `json:"ppg"`
	OppPPG   float64 `json:"opp_ppg"`
}

// LocationWinPct splits a team's record by home and road games.
type LocationWinPct struct {
	HomeGames  uint64  `json:"home_games"`
	HomeWins   uint64  `json:"home_wins"`
	HomeWinPct float64 `json:"home_win_pct"`
	AwayGames  uint64  `json:"away_games"`
	AwayWins   uint64  `json:"away_wins"`
	AwayWinPct float64 `json:"away_win_pct"`
}

// TeamGameLogEntry is one game from the team's perspective.
type TeamGameLogEntry struct {
	GameID   string  `json:"game_id"`
	Date     string  `json:"date"`
	Opponent string  `json:"opponent"`
	Home     bool    `json:"home"`
	Win      bool    `json:"win"`
	PTS      uint64  `json:"pts"`
	OppPTS   uint64  `json:"opp_pts"`
	FGPct    float64 `json:"fg_pct"`
	ThreePct float64 `json:"three_pct"`
	TRB      uint64  `json:"trb"`
	AST      uint64  `json:"ast"`
	TOV      uint64  `json:"tov"`
}

// TeamStatsResponse bundles everything the team dashboard renders.
type TeamStatsResponse struct {
	Overview     TeamOverview       `json:"overview"`
	SeasonSplits []TeamSeasonSplit  `json:"season_splits"`
	Opponents    []OpponentSplit    `json:"opponents"`
	Location     LocationWinPct     `json:"location"`
	GameLog      []TeamGameLogEntry `json:"game_log"`
}

package models

// BoxscoreRow is one rendered line of a game's box score.
type BoxscoreRow struct {
	PlayerName string  `json:"player_name"`
	Starter    bool    `json:"starter"`
	Played     bool    `json:"played"`
	MP         string  `json:"mp"`
	FG         uint64  `json:"fg"`
	FGA        uint64  `json:"fga"`
	FGPct      float64 `json:"fg_pct"`
	ThreeP     uint64  `json:"three_p"`
	ThreePA    uint64  `json:"three_pa"`
	ThreePct   float64 `json:"three_pct"`
	FT         uint64  `json:"ft"`
	FTA        uint64  `json:"fta"`
	FTPct      float64 `json:"ft_pct"`
	ORB        uint64  `json:"orb"`
	DRB        uint64  `json:"drb"`
	TRB        uint64  `json:"trb"`
	AST        uint64  `json:"ast"`
	STL        uint64  `json:"stl"`
	BLK        uint64  `json:"blk"`
	TOV        uint64  `json:"tov"`
	PF         uint64  `json:"pf"`
	PTS        uint64  `json:"pts"`
	PlusMinus  float64 `json:"plus_minus"`
}

// TeamBoxscore is one side's full box score: starters first, then bench,
// then the team total row.
type TeamBoxscore struct {
	Team    string        `json:"team"`
	LogoURL string        `json:"logo_url"`
	Players []BoxscoreRow `json:"players"`
	Totals  BoxscoreRow   `json:"totals"`
}

// GameReport is the complete detail view of one game.
type GameReport struct {
	Game    Game         `json:"game"`
	Home    TeamBoxscore `json:"home"`
	Visitor TeamBoxscore `json:"visitor"`
}

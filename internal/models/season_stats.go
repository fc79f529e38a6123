package models

// TeamSeasonRow is one team's line in a season-wide team comparison table.
type TeamSeasonRow struct {
	Team     string  `json:"team"`
	Games    uint64  `json:"games"`
	Wins     uint64  `json:"wins"`
	Losses   uint64  `json:"losses"`
	WinPct   float64 `json:"win_pct"`
	PPG      float64 `json:"ppg"`
	OppPPG   float64 `json:"opp_ppg"`
	FGPct    float64 `json:"fg_pct"`
	ThreePct float64 `json:"three_pct"`
	FTPct    float64 `json:"ft_pct"`
	RPG      float64 `json:"rpg"`
	APG      float64 `json:"apg"`
	SPG      float64 `json:"spg"`
	BPG      float64 `json:"bpg"`
	TPG      float64 `json:"tpg"`
}

// PlayerSeasonRow is one player's line in a season-wide player table.
type PlayerSeasonRow struct {
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Games      uint64  `json:"games"`
	MPG        float64 `json:"mpg"`
	PPG        float64 `json:"ppg"`
	RPG        float64 `json:"rpg"`
	APG        float64 `json:"apg"`
	SPG        float64 `json:"spg"`
	BPG        float64 `json:"bpg"`
	FGPct      float64 `json:"fg_pct"`
	ThreePct   float64 `json:"three_pct"`
	FTPct      float64 `json:"ft_pct"`
}

// LeaderboardEntry is one ranked row of a single-stat leaderboard.
type LeaderboardEntry struct {
	Rank       int     `json:"rank"`
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Games      uint64  `json:"games"`
	Total      uint64  `json:"total"`
	PerGame    float64 `json:"per_game"`
}

// SeasonChampion identifies the winner of a season's last game.
type SeasonChampion struct {
	Season     int    `json:"season"`
	Team       string `json:"team"`
	GameID     string `json:"game_id"`
	Date       string `json:"date"`
	Opponent   string `json:"opponent"`
	FinalScore string `json:"final_score"`
	LogoURL    string `json:"logo_url"`
}

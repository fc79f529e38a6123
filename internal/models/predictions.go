package models

import "time"

// PredictionMetadata describes the model run that produced a prediction set.
type PredictionMetadata struct {
	GeneratedAt time.Time `json:"generated_at"`
	Model       string    `json:"model"`
	Version     string    `json:"version"`
}

// PredictedTeam is one side of a predicted matchup.
type PredictedTeam struct {
	Name           string  `json:"name"`
	Abbreviation   string  `json:"abbreviation"`
	WinProbability float64 `json:"win_probability"`
	LogoURL        string  `json:"logo_url,omitempty"`
}

// MatchupStats carries head-to-head context for a predicted game.
type MatchupStats struct {
	H2HGamesPlayed       uint64  `json:"h2h_games_played"`
	H2HWinPct            float64 `json:"h2h_win_pct"` // from the home team's perspective
	DaysSinceLastMatchup int     `json:"days_since_last_matchup"`
}

// GamePrediction is the forecast for one upcoming game.
type GamePrediction struct {
	GameID string `json:"game_id"`
	Date   string `json:"date"`
	Teams  struct {
		Home PredictedTeam `json:"home"`
		Away PredictedTeam `json:"away"`
	} `json:"teams"`
	Prediction struct {
		WinnerName string   `json:"winner_name"`
		Confidence string   `json:"confidence"`
		Factors    []string `json:"factors"`
	} `json:"prediction"`
	MatchupStats MatchupStats `json:"matchup_stats"`
}

// PredictionSet is the full response for a slate of upcoming games.
type PredictionSet struct {
	Metadata PredictionMetadata `json:"metadata"`
	Games    []GamePrediction   `json:"games"`
}

// TeamForm feeds the win-probability model for one side of a matchup.
type TeamForm struct {
	Team          string
	Games         uint64
	Wins          uint64
	PointsFor     uint64
	PointsAgainst uint64
	Last10Wins    uint64
	Last10Games   uint64
}

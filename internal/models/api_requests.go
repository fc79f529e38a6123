package models

// RegisterSourceRequest registers a scraper that will push box scores.
type RegisterSourceRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

type RegisterSourceResponse struct {
	SourceID string `json:"source_id"`
	Token    string `json:"token"`
}

// StatsQueryRequest is the body of POST /api/v1/stats/query. It drives the
// dynamic aggregation query builder; stat and grouping names are validated
// against whitelists before any SQL is assembled.
type StatsQueryRequest struct {
	Stats    []string `json:"stats" validate:"required,min=1,max=12"`
	GroupBy  string   `json:"group_by" validate:"required,oneof=player team season opponent game_type"`
	Season   int      `json:"season,omitempty"`
	Team     string   `json:"team,omitempty"`
	GameType string   `json:"game_type,omitempty"`
	PerGame  bool     `json:"per_game,omitempty"`
	MinGames int      `json:"min_games,omitempty" validate:"omitempty,min=0,max=100"`
	OrderBy  string   `json:"order_by,omitempty"`
	Desc     bool     `json:"desc,omitempty"`
	Limit    int      `json:"limit,omitempty" validate:"omitempty,min=1,max=500"`
}

// StatsQueryResponse carries dynamic rows keyed by the requested stat names.
type StatsQueryResponse struct {
	GroupBy string                   `json:"group_by"`
	Rows    []map[string]interface{} `json:"rows"`
}

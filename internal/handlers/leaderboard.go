package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/HTilki/NBAStatsApp/internal/logic"
	"github.com/HTilki/NBAStatsApp/internal/models"
)

// GetLeaderboard returns a single-stat leaderboard
// @Summary Get Leaderboard
// @Description Rank players by a single stat for a season, as totals or per game
// @Tags Leaderboards
// @Produce json
// @Param stat path string true "Stat name (pts, trb, ast, ...)"
// @Param season query int true "Season"
// @Param per_game query bool false "Rank by per-game average"
// @Param limit query int false "Number of entries" default(25)
// @Success 200 {array} models.LeaderboardEntry "Leaderboard"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /stats/leaderboard/{stat} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	stat := chi.URLParam(r, "stat")

	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil || season < 1970 || season > 2100 {
		h.errorResponse(w, http.StatusBadRequest, "Invalid or missing season")
		return
	}

	perGame := r.URL.Query().Get("per_game") == "true"
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.seasonStats.GetLeaderboard(r.Context(), stat, season, perGame, limit)
	if err != nil {
		h.logger.Warnw("Leaderboard request failed", "stat", stat, "season", season, "error", err)
		h.errorResponse(w, http.StatusBadRequest, "Invalid leaderboard request")
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	h.jsonResponse(w, http.StatusOK, entries)
}

// StatsQuery runs a dynamic aggregation query
// @Summary Dynamic Stats Query
// @Description Aggregate whitelisted stats grouped by player, team, season, opponent or game type
// @Tags Leaderboards
// @Accept json
// @Produce json
// @Param body body models.StatsQueryRequest true "Query"
// @Success 200 {object} models.StatsQueryResponse "Rows"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /stats/query [post]
func (h *Handler) StatsQuery(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	var req models.StatsQueryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	query, args, err := logic.BuildStatsQuery(req)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.ch.Query(r.Context(), query, args...)
	if err != nil {
		h.logger.Errorw("Dynamic query failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Query execution failed")
		return
	}
	defer rows.Close()

	resp := models.StatsQueryResponse{GroupBy: req.GroupBy, Rows: []map[string]interface{}{}}
	for rows.Next() {
		var label string
		var games uint64
		stats := make([]float64, len(req.Stats))

		dest := make([]interface{}, 0, len(req.Stats)+2)
		dest = append(dest, &label, &games)
		for i := range stats {
			dest = append(dest, &stats[i])
		}
		if err := rows.Scan(dest...); err != nil {
			h.logger.Errorw("Failed to scan dynamic row", "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Query execution failed")
			return
		}

		row := map[string]interface{}{"label": label, "games": games}
		for i, stat := range req.Stats {
			row[stat] = stats[i]
		}
		resp.Rows = append(resp.Rows, row)
	}

	h.jsonResponse(w, http.StatusOK, resp)
}

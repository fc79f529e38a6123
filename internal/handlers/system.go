package handlers

import (
	"net/http"
)

// SystemOverview returns high level dataset counts
// @Summary System Overview
// @Description Dataset-wide counts: games, seasons, players and stored lines
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Overview"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /system/overview [get]
func (h *Handler) SystemOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var totalLines, totalPlayers, totalGames uint64
	var firstSeason, lastSeason uint16
	err := h.ch.QueryRow(ctx, `
		SELECT
			count() as lines,
			uniqExact(player_name) as players,
			uniqExact(game_id) as games,
			min(season) as first_season,
			max(season) as last_season
		FROM boxscore_lines
		WHERE team_total = 0
	`).Scan(&totalLines, &totalPlayers, &totalGames, &firstSeason, &lastSeason)
	if err != nil {
		h.logger.Errorw("Failed to get system overview", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get system overview")
		return
	}

	var scheduledGames, teams int
	if err := h.pg.QueryRow(ctx, "SELECT count(*) FROM schedule").Scan(&scheduledGames); err != nil {
		h.logger.Warnw("Failed to count schedule", "error", err)
	}
	if err := h.pg.QueryRow(ctx, "SELECT count(*) FROM teams").Scan(&teams); err != nil {
		h.logger.Warnw("Failed to count teams", "error", err)
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"boxscore_lines":  totalLines,
		"players":         totalPlayers,
		"games_with_box":  totalGames,
		"scheduled_games": scheduledGames,
		"teams":           teams,
		"first_season":    firstSeason,
		"last_season":     lastSeason,
		"queue_depth":     h.pool.QueueDepth(),
	})
}

package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/HTilki/NBAStatsApp/internal/logic"
	"github.com/HTilki/NBAStatsApp/internal/models"
)

// GetPlayerStats returns comprehensive stats for a player
// @Summary Get Player Stats
// @Description Fetch career per-season averages, totals, highs and milestones for a player
// @Tags Players
// @Produce json
// @Param name path string true "Player full name (URL-encoded)"
// @Param game_log query bool false "Include recent game log"
// @Success 200 {object} models.PlayerStatsResponse "Player Stats"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /players/{name}/stats [get]
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || name == "" {
		h.errorResponse(w, http.StatusBadRequest, "Invalid player name")
		return
	}

	includeGameLog := r.URL.Query().Get("game_log") == "true"

	stats, err := h.playerStats.GetPlayerStats(r.Context(), name, includeGameLog)
	if err != nil {
		if errors.Is(err, logic.ErrPlayerNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Player not found")
			return
		}
		h.logger.Errorw("Failed to get player stats", "player", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get player stats")
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}

// ResolvePlayer finds players by partial name
// @Summary Resolve Player Name
// @Description Search for players whose name matches the query
// @Tags Players
// @Produce json
// @Param q query string true "Name or name fragment"
// @Success 200 {array} models.PlayerMatch "Matches"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /players/resolve [get]
func (h *Handler) ResolvePlayer(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if len(query) < 2 {
		h.errorResponse(w, http.StatusBadRequest, "Query must be at least 2 characters")
		return
	}

	matches, err := h.playerStats.ResolvePlayer(r.Context(), query)
	if err != nil {
		h.logger.Errorw("Failed to resolve player", "query", query, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to resolve player")
		return
	}
	if matches == nil {
		matches = []models.PlayerMatch{}
	}

	h.jsonResponse(w, http.StatusOK, matches)
}

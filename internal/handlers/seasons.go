package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/HTilki/NBAStatsApp/internal/logic"
)

func seasonParam(r *http.Request) (int, error) {
	season, err := strconv.Atoi(chi.URLParam(r, "season"))
	if err != nil || season < 1970 || season > 2100 {
		return 0, errors.New("invalid season")
	}
	return season, nil
}

// GetSeasons lists seasons present in the schedule
// @Summary List Seasons
// @Tags Seasons
// @Produce json
// @Success 200 {array} int "Seasons"
// @Router /seasons [get]
func (h *Handler) GetSeasons(w http.ResponseWriter, r *http.Request) {
	seasons, err := h.seasonStats.GetSeasons(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to get seasons", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get seasons")
		return
	}

	h.jsonResponse(w, http.StatusOK, seasons)
}

// GetSeasonStats returns season-wide team or player tables
// @Summary Get Season Tables
// @Description Fetch a league-wide comparison table for one season. Use view=teams or view=players.
// @Tags Seasons
// @Produce json
// @Param season path int true "Season"
// @Param view query string false "teams or players" default(teams)
// @Param game_type query string false "Game type filter" default(regular season)
// @Param min_games query int false "Minimum games played (players view)"
// @Success 200 {object} map[string]interface{} "Season Table"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /seasons/{season}/stats [get]
func (h *Handler) GetSeasonStats(w http.ResponseWriter, r *http.Request) {
	season, err := seasonParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	gameType := strings.ToLower(r.URL.Query().Get("game_type"))
	if gameType == "" {
		gameType = "regular season"
	}

	switch r.URL.Query().Get("view") {
	case "players":
		minGames, _ := strconv.Atoi(r.URL.Query().Get("min_games"))
		table, err := h.seasonStats.GetPlayerSeasonTable(r.Context(), season, gameType, minGames)
		if err != nil {
			h.logger.Errorw("Failed to get player season table", "season", season, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to get season stats")
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{"season": season, "view": "players", "rows": table})

	default:
		table, err := h.seasonStats.GetTeamSeasonTable(r.Context(), season, gameType)
		if err != nil {
			h.logger.Errorw("Failed to get team season table", "season", season, "error", err)
			h.errorResponse(w, http.StatusInternalServerError, "Failed to get season stats")
			return
		}
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{"season": season, "view": "teams", "rows": table})
	}
}

// GetSeasonChampion returns the season's champion
// @Summary Get Season Champion
// @Description Identify the winner of the last playoff game of a season
// @Tags Seasons
// @Produce json
// @Param season path int true "Season"
// @Success 200 {object} models.SeasonChampion "Champion"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /seasons/{season}/champion [get]
func (h *Handler) GetSeasonChampion(w http.ResponseWriter, r *http.Request) {
	season, err := seasonParam(r)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	champ, err := h.seasonStats.GetSeasonChampion(r.Context(), season)
	if err != nil {
		if errors.Is(err, logic.ErrSeasonNotFound) {
			h.errorResponse(w, http.StatusNotFound, "No completed playoff games for season")
			return
		}
		h.logger.Errorw("Failed to get season champion", "season", season, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get season champion")
		return
	}

	h.jsonResponse(w, http.StatusOK, champ)
}

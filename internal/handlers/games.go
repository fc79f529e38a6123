package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/HTilki/NBAStatsApp/internal/logic"
	"github.com/HTilki/NBAStatsApp/internal/models"
)

// ListSchedule returns games matching the given filters
// @Summary List Schedule
// @Description Fetch games filtered by season, team, game type and date range
// @Tags Games
// @Produce json
// @Param season query int false "Season"
// @Param team query string false "Team name or abbreviation"
// @Param game_type query string false "Game type"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param upcoming query bool false "Only unplayed games"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Page offset"
// @Success 200 {array} models.Game "Games"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /schedule [get]
func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ScheduleFilter{
		Team:     q.Get("team"),
		GameType: strings.ToLower(q.Get("game_type")),
		Upcoming: q.Get("upcoming") == "true",
	}

	if s := q.Get("season"); s != "" {
		season, err := strconv.Atoi(s)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid season")
			return
		}
		filter.Season = season
	}
	if s := q.Get("from"); s != "" {
		from, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid from date")
			return
		}
		filter.From = &from
	}
	if s := q.Get("to"); s != "" {
		to, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.errorResponse(w, http.StatusBadRequest, "Invalid to date")
			return
		}
		filter.To = &to
	}
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))
	filter.Offset, _ = strconv.Atoi(q.Get("offset"))

	games, err := h.schedule.ListSchedule(r.Context(), filter)
	if err != nil {
		h.logger.Errorw("Failed to list schedule", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list schedule")
		return
	}
	if games == nil {
		games = []models.Game{}
	}

	h.jsonResponse(w, http.StatusOK, games)
}

// GetGameReport returns the full box score for one game
// @Summary Get Game Report
// @Description Fetch the schedule row and both teams' box scores
// @Tags Games
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.GameReport "Game Report"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /games/{id}/boxscore [get]
func (h *Handler) GetGameReport(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")
	if gameID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing game id")
		return
	}

	report, err := h.schedule.GetGameReport(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, logic.ErrGameNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Game not found")
			return
		}
		h.logger.Errorw("Failed to get game report", "game", gameID, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get game report")
		return
	}

	h.jsonResponse(w, http.StatusOK, report)
}

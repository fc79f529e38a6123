package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

// ListTeams returns all franchises
// @Summary List Teams
// @Description Fetch every franchise with conference and division
// @Tags Teams
// @Produce json
// @Success 200 {array} models.Team "Teams"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /teams [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamStats.ListTeams(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to list teams", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list teams")
		return
	}

	h.jsonResponse(w, http.StatusOK, teams)
}

// GetTeamStats returns the full team dashboard
// @Summary Get Team Stats
// @Description Fetch overview, season splits, opponent splits, home/road record and game log for a team
// @Tags Teams
// @Produce json
// @Param abbr path string true "Team abbreviation (e.g. LAL)"
// @Param season query int false "Season (e.g. 2024)"
// @Param game_type query string false "Game type filter" default(regular season)
// @Param opponent query string false "Restrict to games against this opponent (e.g. BOS)"
// @Param from query string false "Earliest game date (YYYY-MM-DD)"
// @Param to query string false "Latest game date (YYYY-MM-DD)"
// @Success 200 {object} models.TeamStatsResponse "Team Stats"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /teams/{abbr}/stats [get]
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	abbr := strings.ToUpper(chi.URLParam(r, "abbr"))
	if len(abbr) != 3 {
		h.errorResponse(w, http.StatusBadRequest, "Invalid team abbreviation")
		return
	}

	season, err := strconv.Atoi(r.URL.Query().Get("season"))
	if err != nil || season < 1970 || season > 2100 {
		h.errorResponse(w, http.StatusBadRequest, "Invalid or missing season")
		return
	}

	gameType := r.URL.Query().Get("game_type")
	if gameType == "" {
		gameType = "regular season"
	}

	filter := models.TeamStatsFilter{
		Season:   season,
		GameType: strings.ToLower(gameType),
	}

	q := r.URL.Query()
	if opponent := strings.ToUpper(q.Get("opponent")); opponent != "" {
		if len(opponent) != 3 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid opponent abbreviation")
			return
		}
		filter.Opponent = opponent
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

	stats, err := h.teamStats.GetTeamStats(r.Context(), abbr, filter)
	if err != nil {
		h.logger.Errorw("Failed to get team stats", "team", abbr, "season", season, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to get team stats")
		return
	}

	h.jsonResponse(w, http.StatusOK, stats)
}

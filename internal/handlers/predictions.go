package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/HTilki/NBAStatsApp/internal/logic"
)

// UpcomingPredictions forecasts all games in the next seven days
// @Summary Upcoming Game Predictions
// @Description Win probabilities for every unplayed game in the next week
// @Tags Predictions
// @Produce json
// @Success 200 {object} models.PredictionSet "Predictions"
// @Failure 500 {object} map[string]string "Internal Error"
// @Router /predictions/upcoming [get]
func (h *Handler) UpcomingPredictions(w http.ResponseWriter, r *http.Request) {
	set, err := h.prediction.GetUpcomingPredictions(r.Context())
	if err != nil {
		h.logger.Errorw("Failed to build predictions", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to build predictions")
		return
	}

	h.jsonResponse(w, http.StatusOK, set)
}

// GamePrediction forecasts one unplayed game
// @Summary Single Game Prediction
// @Tags Predictions
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} models.GamePrediction "Prediction"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /predictions/games/{id} [get]
func (h *Handler) GamePrediction(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "id")

	pred, err := h.prediction.GetGamePrediction(r.Context(), gameID)
	if err != nil {
		if errors.Is(err, logic.ErrGameNotFound) {
			h.errorResponse(w, http.StatusNotFound, "Game not found")
			return
		}
		h.logger.Errorw("Failed to predict game", "game", gameID, "error", err)
		h.errorResponse(w, http.StatusBadRequest, "Failed to predict game")
		return
	}

	h.jsonResponse(w, http.StatusOK, pred)
}

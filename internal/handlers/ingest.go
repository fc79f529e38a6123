package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/HTilki/NBAStatsApp/internal/models"
)

// IngestBoxscores handles POST /api/v1/ingest/boxscores
// @Summary Ingest Box Score Lines
// @Description Accepts newline-separated JSON box score lines from scrapers
// @Tags Ingestion
// @Accept json
// @Produce json
// @Security IngestToken
// @Param body body []models.RawBoxscoreLine true "Lines"
// @Success 202 {object} map[string]interface{} "Accepted"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /ingest/boxscores [post]
func (h *Handler) IngestBoxscores(w http.ResponseWriter, r *http.Request) {
	// Limit request body to 1MB to prevent DoS
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.errorResponse(w, http.StatusRequestEntityTooLarge, "Request body too large")
		return
	}
	defer r.Body.Close()

	lines := strings.Split(string(body), "\n")
	processed := 0
	rejected := 0
	for i, raw := range lines {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		var line models.RawBoxscoreLine
		if err := json.Unmarshal([]byte(raw), &line); err != nil {
			h.logger.Warnw("Failed to unmarshal line in batch", "error", err, "lineNum", i)
			rejected++
			continue
		}

		if err := h.validator.Struct(&line); err != nil {
			h.logger.Warnw("Validation failed for line", "error", err, "lineNum", i, "game_id", line.GameID)
			rejected++
			continue
		}
		if err := line.Validate(); err != nil {
			h.logger.Warnw("Rejected malformed line", "error", err, "lineNum", i, "game_id", line.GameID)
			rejected++
			continue
		}

		if !h.pool.Enqueue(&line) {
			h.logger.Warn("Worker pool queue full, dropping remaining lines in batch")
			break
		}
		processed++
	}

	h.jsonResponse(w, http.StatusAccepted, map[string]interface{}{
		"status":    "accepted",
		"processed": processed,
		"rejected":  rejected,
	})
}

// RegisterSource handles POST /api/v1/ingest/sources
// @Summary Register Ingest Source
// @Description Register a scraper and receive its ingest token (shown once)
// @Tags Ingestion
// @Accept json
// @Produce json
// @Param body body models.RegisterSourceRequest true "Source"
// @Success 201 {object} models.RegisterSourceResponse "Registered"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /ingest/sources [post]
func (h *Handler) RegisterSource(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterSourceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodySize)).Decode(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if req.Name == "" {
		h.errorResponse(w, http.StatusBadRequest, "Source name is required")
		return
	}

	sourceID := uuid.NewString()
	token := uuid.NewString()

	// Only the hash is stored; the plaintext token is returned exactly once
	_, err := h.pg.Exec(r.Context(), `
		INSERT INTO ingest_sources (id, name, contact, token, is_active, created_at)
		VALUES ($1, $2, $3, $4, true, now())
	`, sourceID, req.Name, req.Contact, hashToken(token))
	if err != nil {
		h.logger.Errorw("Failed to register source", "name", req.Name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to register source")
		return
	}

	h.jsonResponse(w, http.StatusCreated, models.RegisterSourceResponse{
		SourceID: sourceID,
		Token:    token,
	})
}

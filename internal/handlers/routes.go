package handlers

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Routes assembles the full API router.
func (h *Handler) Routes(allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Ingest-Token"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/teams", h.ListTeams)
		r.Get("/teams/{abbr}/stats", h.GetTeamStats)

		r.Get("/players/resolve", h.ResolvePlayer)
		r.Get("/players/{name}/stats", h.GetPlayerStats)

		r.Get("/schedule", h.ListSchedule)
		r.Get("/games/{id}/boxscore", h.GetGameReport)

		r.Get("/seasons", h.GetSeasons)
		r.Get("/seasons/{season}/stats", h.GetSeasonStats)
		r.Get("/seasons/{season}/champion", h.GetSeasonChampion)

		r.Get("/stats/leaderboard/{stat}", h.GetLeaderboard)
		r.Post("/stats/query", h.StatsQuery)

		r.Get("/predictions/upcoming", h.UpcomingPredictions)
		r.Get("/predictions/games/{id}", h.GamePrediction)

		r.Get("/system/overview", h.SystemOverview)

		// Scraper endpoints
		r.Post("/ingest/sources", h.RegisterSource)
		r.Group(func(r chi.Router) {
			r.Use(h.SourceAuthMiddleware)
			r.Post("/ingest/boxscores", h.IngestBoxscores)
		})
	})

	return r
}

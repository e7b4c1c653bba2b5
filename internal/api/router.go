package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/video-scout/backend/internal/api/handlers"
	"github.com/video-scout/backend/internal/api/middleware"
	"github.com/video-scout/backend/internal/config"
	"github.com/video-scout/backend/internal/speech"
	"github.com/video-scout/backend/internal/transcript"
	"github.com/video-scout/backend/internal/youtube"
)

// maxJSONBody bounds request bodies: the largest expected payload is a
// transcript's worth of text posted for speech synthesis.
const maxJSONBody = 256 * 1024

func NewRouter(cfg *config.Config, resolver transcript.Resolver, ytClient *youtube.Client, speechService *speech.Service) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(cors.Handler(middleware.CORSHandler(cfg.CORSOrigins)))
	r.Use(middleware.MaxBodySize(maxJSONBody))

	// Handlers
	transcriptHandler := handlers.NewTranscriptHandler(resolver)
	searchHandler := handlers.NewSearchHandler(ytClient)
	speechHandler := handlers.NewSpeechHandler(speechService)

	rateLimiter := middleware.NewRateLimiter(60, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Group(func(r chi.Router) {
			r.Use(rateLimiter.Handler)

			// Transcript resolver: POST with JSON body, GET with query param
			r.Post("/transcript", transcriptHandler.Fetch)
			r.Get("/transcript", transcriptHandler.Fetch)

			// Collaborators
			r.Get("/videos/search", searchHandler.Search)
			r.Post("/text-to-speech", speechHandler.Synthesize)
		})
	})

	return r
}

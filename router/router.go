// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/enquetes/handlers"
	"github.com/danielhkuo/enquetes/logger"
	"github.com/danielhkuo/enquetes/middleware"
	"github.com/danielhkuo/enquetes/store"
)

const requestTimeout = 30 * time.Second

func NewRouter(s store.Store, log *logger.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.CORS)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.WithLogging(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(s, log)
	pollHandler := handlers.NewPollHandler(s, log)
	votingHandler := handlers.NewVotingHandler(s, log)
	resultsHandler := handlers.NewResultsHandler(s, log)
	optionHandler := handlers.NewOptionHandler(s, log)

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Check)

	r.Route("/api/enquetes", func(r chi.Router) {
		r.Post("/", pollHandler.CreatePoll)
		r.Get("/", pollHandler.ListPolls)

		r.Route("/{"+handlers.ParamPollID+"}", func(r chi.Router) {
			r.Get("/", pollHandler.GetPoll)
			r.Delete("/", pollHandler.DeletePoll)

			r.Post("/votar", votingHandler.Vote)
			r.Get("/resultados", resultsHandler.GetResults)

			r.Get("/opcoes", optionHandler.ListOptions)
			r.Post("/opcoes", optionHandler.AddOption)
			r.Delete("/opcoes/{"+handlers.ParamOptionID+"}", optionHandler.DeleteOption)
		})
	})

	return r
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/enquetes/logger"
	"github.com/danielhkuo/enquetes/middleware"
	"github.com/danielhkuo/enquetes/models"
	"github.com/danielhkuo/enquetes/store"
)

type ResultsHandler struct {
	store store.Store
	log   *logger.Logger
}

func NewResultsHandler(s store.Store, log *logger.Logger) *ResultsHandler {
	return &ResultsHandler{store: s, log: log}
}

// GetResults handles GET /api/enquetes/{id}/resultados
// Returns vote counts per option, or a message when nobody has voted yet
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, ParamPollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidPollID)
		return
	}

	log := requestLogger(h.log, r).WithField("poll_id", pollID)
	if !requirePoll(w, r, h.store, log, pollID) {
		return
	}

	results, err := h.store.GetResults(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, log, err)
		return
	}

	if !hasVotes(results) {
		middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Mensagem: models.MsgNoVotesYet})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		EnqueteID:  pollID,
		Resultados: results,
	})
}

func hasVotes(results []models.OptionResult) bool {
	for _, r := range results {
		if r.Votes > 0 {
			return true
		}
	}
	return false
}

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

type VotingHandler struct {
	store store.Store
	log   *logger.Logger
}

func NewVotingHandler(s store.Store, log *logger.Logger) *VotingHandler {
	return &VotingHandler{store: s, log: log}
}

// Vote handles POST /api/enquetes/{id}/votar.
// A second vote by the same user on the same poll replaces the first.
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, ParamPollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidPollID)
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgVoteInvalid)
		return
	}
	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgVoteInvalid)
		return
	}

	log := requestLogger(h.log, r).WithFields(map[string]interface{}{
		"poll_id":   pollID,
		"option_id": req.OpcaoID,
		"user_id":   req.UserID,
	})

	if err := h.store.Vote(r.Context(), pollID, req.OpcaoID, req.UserID); err != nil {
		middleware.WriteError(w, log, err)
		return
	}

	log.Info("vote recorded")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Mensagem: models.MsgVoteRecorded})
}

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

type PollHandler struct {
	store store.Store
	log   *logger.Logger
}

func NewPollHandler(s store.Store, log *logger.Logger) *PollHandler {
	return &PollHandler{store: s, log: log}
}

// CreatePoll handles POST /api/enquetes
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	log := requestLogger(h.log, r)

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgCreatePollInvalid)
		return
	}

	if err := models.Validate(req); err != nil {
		log.WithError(err).Debug("invalid poll")
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgCreatePollInvalid)
		return
	}

	pollID, err := h.store.CreatePoll(r.Context(), req)
	if err != nil {
		middleware.WriteError(w, log, err)
		return
	}

	log.WithFields(map[string]interface{}{
		"poll_id": pollID,
		"options": len(req.Opcoes),
	}).Info("poll created")

	middleware.JSONResponse(w, http.StatusCreated, models.CreatePollResponse{EnqueteID: pollID})
}

// ListPolls handles GET /api/enquetes
func (h *PollHandler) ListPolls(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListActivePolls(r.Context())
	if err != nil {
		middleware.WriteError(w, requestLogger(h.log, r), err)
		return
	}

	if len(polls) == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgNoActivePolls)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}

// GetPoll handles GET /api/enquetes/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, ParamPollID)
	if !ok || pollID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidPollID)
		return
	}

	detail, err := h.store.GetPollDetail(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, requestLogger(h.log, r).WithField("poll_id", pollID), err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// DeletePoll handles DELETE /api/enquetes/{id}
func (h *PollHandler) DeletePoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, ParamPollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidPollID)
		return
	}

	log := requestLogger(h.log, r).WithField("poll_id", pollID)
	if !requirePoll(w, r, h.store, log, pollID) {
		return
	}

	if err := h.store.DeletePoll(r.Context(), pollID); err != nil {
		middleware.WriteError(w, log, err)
		return
	}

	log.Info("poll deleted")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Mensagem: models.MsgPollDeleted})
}

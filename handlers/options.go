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

type OptionHandler struct {
	store store.Store
	log   *logger.Logger
}

func NewOptionHandler(s store.Store, log *logger.Logger) *OptionHandler {
	return &OptionHandler{store: s, log: log}
}

// ListOptions handles GET /api/enquetes/{id}/opcoes
func (h *OptionHandler) ListOptions(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, ParamPollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidPollID)
		return
	}

	log := requestLogger(h.log, r).WithField("poll_id", pollID)
	if !requirePoll(w, r, h.store, log, pollID) {
		return
	}

	options, err := h.store.ListOptions(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, log, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{
		EnqueteID: pollID,
		Opcoes:    options,
	})
}

// AddOption handles POST /api/enquetes/{id}/opcoes.
// The poll is checked before the body so an unknown poll is always a 404.
func (h *OptionHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, ParamPollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidPollID)
		return
	}

	log := requestLogger(h.log, r).WithField("poll_id", pollID)
	if !requirePoll(w, r, h.store, log, pollID) {
		return
	}

	var req models.AddOptionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgOptionRequired)
		return
	}
	if err := models.Validate(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgOptionRequired)
		return
	}

	optionID, err := h.store.AddOption(r.Context(), pollID, req.Opcao)
	if err != nil {
		middleware.WriteError(w, log, err)
		return
	}

	log.WithField("option_id", optionID).Info("option added")
	middleware.JSONResponse(w, http.StatusCreated, models.AddOptionResponse{
		Mensagem: models.MsgOptionAdded,
		OptionID: optionID,
	})
}

// DeleteOption handles DELETE /api/enquetes/{id}/opcoes/{id_opcao}.
// Refused while the poll has two options or fewer.
func (h *OptionHandler) DeleteOption(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pathID(r, ParamPollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidPollID)
		return
	}
	optionID, ok := pathID(r, ParamOptionID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgInvalidOptionID)
		return
	}

	log := requestLogger(h.log, r).WithFields(map[string]interface{}{
		"poll_id":   pollID,
		"option_id": optionID,
	})
	if !requirePoll(w, r, h.store, log, pollID) {
		return
	}

	if err := h.store.DeleteOption(r.Context(), pollID, optionID); err != nil {
		middleware.WriteError(w, log, err)
		return
	}

	log.Info("option deleted")
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Mensagem: models.MsgOptionDeleted})
}

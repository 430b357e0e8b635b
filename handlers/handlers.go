// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/danielhkuo/enquetes/logger"
	"github.com/danielhkuo/enquetes/middleware"
	"github.com/danielhkuo/enquetes/models"
	"github.com/danielhkuo/enquetes/store"
)

// Path parameter names used by the router
const (
	ParamPollID   = "id"
	ParamOptionID = "id_opcao"
)

// pathID parses an integer path parameter. ok is false when it is missing
// or not a number; the caller answers 400.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func requestLogger(log *logger.Logger, r *http.Request) *logger.Logger {
	return logger.Wrap(log.With(zap.String("request_id", middleware.GetRequestID(r.Context()))))
}

// requirePoll answers 404 and returns false when the poll does not exist
func requirePoll(w http.ResponseWriter, r *http.Request, s store.Store, log *logger.Logger, pollID int64) bool {
	exists, err := s.PollExists(r.Context(), pollID)
	if err != nil {
		middleware.WriteError(w, log, err)
		return false
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, models.MsgPollNotFound)
		return false
	}
	return true
}

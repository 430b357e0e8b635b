// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielhkuo/enquetes/logger"
	"github.com/danielhkuo/enquetes/middleware"
	"github.com/danielhkuo/enquetes/models"
	"github.com/danielhkuo/enquetes/store"
)

const pingTimeout = 2 * time.Second

type HealthHandler struct {
	store store.Store
	log   *logger.Logger
}

func NewHealthHandler(s store.Store, log *logger.Logger) *HealthHandler {
	return &HealthHandler{store: s, log: log}
}

// Root handles GET /
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("API de Enquetes"))
}

// Check handles GET /health and reports whether the database answers
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		requestLogger(h.log, r).WithError(err).Warn("health check failed")
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, models.MsgDatabaseUnavailable)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

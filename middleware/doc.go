// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request IDs

RequestID reuses an incoming X-Request-ID header or generates a UUID, echoes
it on the response and stores it in the request context:

	id := middleware.GetRequestID(r.Context())

# Request Logging

WithLogging builds chi-compatible middleware around a zap logger:

	r.Use(middleware.RequestID)
	r.Use(middleware.WithLogging(log))

Logs request start (method, path, remote) and completion (status,
duration_ms and a human readable response size), both tagged with the
request id.

# CORS Middleware

Enable cross-origin requests for browser clients:

	r.Use(middleware.CORS)

Allows methods GET, POST, DELETE, OPTIONS.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgVoteInvalid)

Errors use a single key:

	{"erro": "Enquete não encontrada."}

WriteError turns any error returned by the store into a response. An
*apperr.AppError keeps its status and message; everything else is logged
and answered with a generic 500.

Parse JSON request bodies:

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, models.MsgVoteInvalid)
		return
	}
*/
package middleware

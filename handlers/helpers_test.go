// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/enquetes/logger"
	"github.com/danielhkuo/enquetes/models"
	"github.com/danielhkuo/enquetes/store"
	"github.com/danielhkuo/enquetes/testutil"
)

var _ store.Store = (*testutil.MemoryStore)(nil)

var testLog = logger.Nop()

// withParams attaches chi URL parameters so handlers can be called directly
func withParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func pollParam(id string) map[string]string {
	return map[string]string{ParamPollID: id}
}

// createTestPoll seeds a poll straight into the store
func createTestPoll(t *testing.T, s *testutil.MemoryStore, name string, options ...string) int64 {
	t.Helper()

	id, err := s.CreatePoll(context.Background(), models.CreatePollRequest{
		Nome:      name,
		Descricao: "Descrição de " + name,
		Opcoes:    options,
	})
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return id
}

func optionIDs(t *testing.T, s *testutil.MemoryStore, pollID int64) []int64 {
	t.Helper()

	options, err := s.ListOptions(context.Background(), pollID)
	if err != nil {
		t.Fatalf("Failed to list options: %v", err)
	}
	ids := make([]int64, len(options))
	for i, o := range options {
		ids[i] = o.ID
	}
	return ids
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

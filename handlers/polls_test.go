// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/enquetes/models"
	"github.com/danielhkuo/enquetes/testutil"
)

func TestCreatePoll(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name: "valid poll",
			body: models.CreatePollRequest{
				Nome:      "Lunch",
				Descricao: "Pick one",
				Opcoes:    []string{"Pizza", "Sushi", "Tacos"},
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           models.CreatePollRequest{Descricao: "Pick one", Opcoes: []string{"A", "B"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing description",
			body:           models.CreatePollRequest{Nome: "Lunch", Opcoes: []string{"A", "B"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "single option",
			body:           models.CreatePollRequest{Nome: "Lunch", Descricao: "Pick one", Opcoes: []string{"A"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty option label",
			body:           models.CreatePollRequest{Nome: "Lunch", Descricao: "Pick one", Opcoes: []string{"A", ""}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "name too long",
			body:           models.CreatePollRequest{Nome: strings.Repeat("x", 61), Descricao: "Pick one", Opcoes: []string{"A", "B"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not an object",
			body:           []string{"nope"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewMemoryStore()
			h := NewPollHandler(s, testLog)

			w := serve(h.CreatePoll, testutil.MakeRequest("POST", "/api/enquetes", tt.body, nil))
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var resp models.CreatePollResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Positive(t, resp.EnqueteID)
			} else {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				assert.Equal(t, models.MsgCreatePollInvalid, resp.Erro)
			}
		})
	}
}

func TestCreatePoll_KeepsOptionOrder(t *testing.T) {
	s := testutil.NewMemoryStore()
	h := NewPollHandler(s, testLog)

	w := serve(h.CreatePoll, testutil.MakeRequest("POST", "/api/enquetes", models.CreatePollRequest{
		Nome:      "Lunch",
		Descricao: "Pick one",
		Opcoes:    []string{"Tacos", "Pizza", "Sushi"},
	}, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreatePollResponse
	testutil.AssertJSON(t, w, &created)

	id := strconv.FormatInt(created.EnqueteID, 10)
	w = serve(h.GetPoll, withParams(testutil.MakeRequest("GET", "/api/enquetes/"+id, nil, nil), pollParam(id)))
	testutil.AssertStatus(t, w, http.StatusOK)

	var detail models.PollDetail
	testutil.AssertJSON(t, w, &detail)
	require.Len(t, detail.Opcoes, 3)
	assert.Equal(t, "Tacos", detail.Opcoes[0].Label)
	assert.Equal(t, "Pizza", detail.Opcoes[1].Label)
	assert.Equal(t, "Sushi", detail.Opcoes[2].Label)
}

func TestCreatePoll_StoreFailure(t *testing.T) {
	s := testutil.NewMemoryStore()
	s.Err = errors.New("pq: connection refused")
	h := NewPollHandler(s, testLog)

	w := serve(h.CreatePoll, testutil.MakeRequest("POST", "/api/enquetes", models.CreatePollRequest{
		Nome:      "Lunch",
		Descricao: "Pick one",
		Opcoes:    []string{"A", "B"},
	}, nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.MsgInternal, resp.Erro)
}

func TestListPolls(t *testing.T) {
	s := testutil.NewMemoryStore()
	h := NewPollHandler(s, testLog)

	createTestPoll(t, s, "First", "A", "B")
	closed := createTestPoll(t, s, "Closed", "A", "B")
	createTestPoll(t, s, "Second", "A", "B")
	s.SetPollStatus(closed, "F")

	w := serve(h.ListPolls, testutil.MakeRequest("GET", "/api/enquetes", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var polls []models.PollSummary
	testutil.AssertJSON(t, w, &polls)
	assert.Equal(t, []models.PollSummary{{Nome: "First"}, {Nome: "Second"}}, polls)
}

func TestListPolls_NoneActive(t *testing.T) {
	s := testutil.NewMemoryStore()
	h := NewPollHandler(s, testLog)

	w := serve(h.ListPolls, testutil.MakeRequest("GET", "/api/enquetes", nil, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.MsgNoActivePolls, resp.Erro)
}

func TestGetPoll(t *testing.T) {
	s := testutil.NewMemoryStore()
	h := NewPollHandler(s, testLog)
	pollID := createTestPoll(t, s, "Lunch", "Pizza", "Sushi")
	id := strconv.FormatInt(pollID, 10)

	w := serve(h.GetPoll, withParams(testutil.MakeRequest("GET", "/api/enquetes/"+id, nil, nil), pollParam(id)))
	testutil.AssertStatus(t, w, http.StatusOK)

	body := w.Body.String()
	assert.Contains(t, body, `"enq_co_enquete":`+id)
	assert.Contains(t, body, `"enq_in_status":"A"`)
	assert.Contains(t, body, `"opcoes":[[1,"Pizza"],[2,"Sushi"]]`)
}

func TestGetPoll_Errors(t *testing.T) {
	s := testutil.NewMemoryStore()
	h := NewPollHandler(s, testLog)

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedMsg    string
	}{
		{"not a number", "abc", http.StatusBadRequest, models.MsgInvalidPollID},
		{"zero", "0", http.StatusBadRequest, models.MsgInvalidPollID},
		{"negative", "-3", http.StatusBadRequest, models.MsgInvalidPollID},
		{"unknown", "999", http.StatusNotFound, models.MsgPollNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(h.GetPoll, withParams(testutil.MakeRequest("GET", "/api/enquetes/"+tt.id, nil, nil), pollParam(tt.id)))
			testutil.AssertStatus(t, w, tt.expectedStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tt.expectedMsg, resp.Erro)
		})
	}
}

func TestDeletePoll(t *testing.T) {
	s := testutil.NewMemoryStore()
	s.AddUser(1)
	h := NewPollHandler(s, testLog)
	pollID := createTestPoll(t, s, "Lunch", "Pizza", "Sushi")
	require.NoError(t, s.Vote(context.Background(), pollID, optionIDs(t, s, pollID)[0], 1))
	id := strconv.FormatInt(pollID, 10)

	w := serve(h.DeletePoll, withParams(testutil.MakeRequest("DELETE", "/api/enquetes/"+id, nil, nil), pollParam(id)))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.MessageResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, models.MsgPollDeleted, resp.Mensagem)

	exists, err := s.PollExists(context.Background(), pollID)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Empty(t, optionIDs(t, s, pollID))
	assert.Zero(t, s.VoteCount(pollID))
}

func TestDeletePoll_NotFound(t *testing.T) {
	s := testutil.NewMemoryStore()
	h := NewPollHandler(s, testLog)

	w := serve(h.DeletePoll, withParams(testutil.MakeRequest("DELETE", "/api/enquetes/5", nil, nil), pollParam("5")))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestDeletePoll_ExistenceCheckFails(t *testing.T) {
	s := testutil.NewMemoryStore()
	s.Err = errors.New("timeout")
	h := NewPollHandler(s, testLog)

	w := serve(h.DeletePoll, withParams(testutil.MakeRequest("DELETE", "/api/enquetes/5", nil, nil), pollParam("5")))
	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionPairJSON(t *testing.T) {
	detail := PollDetail{
		ID:        7,
		Nome:      "Lunch",
		Status:    StatusActive,
		Descricao: "Pick one",
		Opcoes:    []OptionPair{{ID: 1, Label: "Pizza"}, {ID: 2, Label: "Sushi"}},
	}

	body, err := json.Marshal(detail)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"enq_co_enquete": 7,
		"enq_no_nome": "Lunch",
		"enq_in_status": "A",
		"enq_tx_descricao": "Pick one",
		"opcoes": [[1, "Pizza"], [2, "Sushi"]]
	}`, string(body))

	var decoded PollDetail
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, detail, decoded)
}

func TestOptionPairEmptyListIsArray(t *testing.T) {
	body, err := json.Marshal(PollDetail{Opcoes: []OptionPair{}})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"opcoes":[]`)
}

func TestOptionPairUnmarshalErrors(t *testing.T) {
	var p OptionPair
	assert.Error(t, json.Unmarshal([]byte(`[1]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`["x","y"]`), &p))
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &p))
}

func TestValidateCreatePollRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePollRequest
		wantErr bool
	}{
		{"valid", CreatePollRequest{"Lunch", "Pick one", []string{"Pizza", "Sushi"}}, false},
		{"empty name", CreatePollRequest{"", "Pick one", []string{"Pizza", "Sushi"}}, true},
		{"empty description", CreatePollRequest{"Lunch", "", []string{"Pizza", "Sushi"}}, true},
		{"nil options", CreatePollRequest{"Lunch", "Pick one", nil}, true},
		{"one option", CreatePollRequest{"Lunch", "Pick one", []string{"Pizza"}}, true},
		{"empty option label", CreatePollRequest{"Lunch", "Pick one", []string{"Pizza", ""}}, true},
		{"name too long", CreatePollRequest{strings.Repeat("n", 61), "Pick one", []string{"a", "b"}}, true},
		{"name at limit", CreatePollRequest{strings.Repeat("n", 60), "Pick one", []string{"a", "b"}}, false},
		{"description too long", CreatePollRequest{"Lunch", strings.Repeat("d", 2001), []string{"a", "b"}}, true},
		{"label too long", CreatePollRequest{"Lunch", "Pick one", []string{"a", strings.Repeat("l", 201)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateVoteRequest(t *testing.T) {
	assert.NoError(t, Validate(VoteRequest{UserID: 1, OpcaoID: 2}))
	assert.Error(t, Validate(VoteRequest{UserID: 0, OpcaoID: 2}))
	assert.Error(t, Validate(VoteRequest{UserID: 1}))
}

func TestValidateAddOptionRequest(t *testing.T) {
	assert.NoError(t, Validate(AddOptionRequest{Opcao: "Burgers"}))
	assert.Error(t, Validate(AddOptionRequest{}))
}

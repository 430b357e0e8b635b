package models

import (
	"encoding/json"
	"fmt"
)

// Poll status constants. Only StatusActive is ever written by this service.
const (
	StatusActive = "A"
)

// Minimum number of options a poll must keep
const MinOptions = 2

// Request types

type CreatePollRequest struct {
	Nome      string   `json:"nome" validate:"required,max=60"`
	Descricao string   `json:"descricao" validate:"required,max=2000"`
	Opcoes    []string `json:"opcoes" validate:"required,min=2,dive,required,max=200"`
}

type VoteRequest struct {
	UserID  int64 `json:"user_id" validate:"required"`
	OpcaoID int64 `json:"opcao_id" validate:"required"`
}

type AddOptionRequest struct {
	Opcao string `json:"opcao" validate:"required,max=200"`
}

// Response types

type CreatePollResponse struct {
	EnqueteID int64 `json:"enquete_id"`
}

type PollSummary struct {
	Nome string `json:"nome"`
}

type PollDetail struct {
	ID        int64        `json:"enq_co_enquete"`
	Nome      string       `json:"enq_no_nome"`
	Status    string       `json:"enq_in_status"`
	Descricao string       `json:"enq_tx_descricao"`
	Opcoes    []OptionPair `json:"opcoes"`
}

type ResultsResponse struct {
	EnqueteID  int64          `json:"enquete_id"`
	Resultados []OptionResult `json:"resultados"`
}

type OptionsResponse struct {
	EnqueteID int64    `json:"enquete_id"`
	Opcoes    []Option `json:"opcoes"`
}

type AddOptionResponse struct {
	Mensagem string `json:"mensagem"`
	OptionID int64  `json:"enqo_co_opcao"`
}

type MessageResponse struct {
	Mensagem string `json:"mensagem"`
}

// Domain types

type User struct {
	ID    int64  `json:"usu_co_usuario"`
	Nome  string `json:"usu_no_nome"`
	Email string `json:"usu_no_email"`
}

type Poll struct {
	ID        int64  `json:"enq_co_enquete"`
	Nome      string `json:"enq_no_nome"`
	Status    string `json:"enq_in_status"`
	Descricao string `json:"enq_tx_descricao"`
}

type Option struct {
	ID    int64  `json:"enqo_co_opcao"`
	Label string `json:"enqo_no_opcao"`
}

type Vote struct {
	ID       int64 `json:"enqv_co_voto"`
	PollID   int64 `json:"enq_co_enquete"`
	OptionID int64 `json:"enqo_co_opcao"`
	UserID   int64 `json:"usu_co_usuario"`
}

type OptionResult struct {
	Label string `json:"enqo_no_opcao"`
	Votes int64  `json:"num_votos"`
}

// OptionPair is an option rendered as a two-element JSON array [id, label],
// the shape clients of the poll detail endpoint expect.
type OptionPair struct {
	ID    int64
	Label string
}

func (p OptionPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]interface{}{p.ID, p.Label})
}

func (p *OptionPair) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("option pair: expected 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.ID); err != nil {
		return fmt.Errorf("option pair id: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Label); err != nil {
		return fmt.Errorf("option pair label: %w", err)
	}
	return nil
}

// Error response

type ErrorResponse struct {
	Erro string `json:"erro"`
}

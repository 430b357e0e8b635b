// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/danielhkuo/enquetes/apperr"
	"github.com/danielhkuo/enquetes/models"
)

type memOption struct {
	pollID int64
	label  string
}

type voteKey struct {
	pollID int64
	userID int64
}

// MemoryStore is an in-memory stand-in for the Postgres store that applies
// the same rules. Err, when set, is returned by every data operation.
type MemoryStore struct {
	mu sync.Mutex

	Strict  bool
	Err     error
	PingErr error

	polls   map[int64]*models.Poll
	options map[int64]memOption
	votes   map[voteKey]int64
	users   map[int64]bool

	nextPoll   int64
	nextOption int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		polls:   make(map[int64]*models.Poll),
		options: make(map[int64]memOption),
		votes:   make(map[voteKey]int64),
		users:   make(map[int64]bool),
	}
}

// AddUser registers a user id for strict-mode checks
func (m *MemoryStore) AddUser(id int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = true
}

// SetPollStatus overwrites a poll's status, which no API operation can do
func (m *MemoryStore) SetPollStatus(pollID int64, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.polls[pollID]; ok {
		p.Status = status
	}
}

// VoteCount returns the number of vote rows held for the poll
func (m *MemoryStore) VoteCount(pollID int64) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for k := range m.votes {
		if k.pollID == pollID {
			n++
		}
	}
	return n
}

// VoteOf returns the option the user currently votes for on the poll
func (m *MemoryStore) VoteOf(pollID, userID int64) (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	opt, ok := m.votes[voteKey{pollID, userID}]
	return opt, ok
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return m.PingErr
}

func (m *MemoryStore) PollExists(ctx context.Context, pollID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return false, m.Err
	}
	_, ok := m.polls[pollID]
	return ok, nil
}

func (m *MemoryStore) CreatePoll(ctx context.Context, req models.CreatePollRequest) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}

	m.nextPoll++
	id := m.nextPoll
	m.polls[id] = &models.Poll{ID: id, Nome: req.Nome, Status: models.StatusActive, Descricao: req.Descricao}
	for _, label := range req.Opcoes {
		m.nextOption++
		m.options[m.nextOption] = memOption{pollID: id, label: label}
	}
	return id, nil
}

func (m *MemoryStore) ListActivePolls(ctx context.Context) ([]models.PollSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	ids := make([]int64, 0, len(m.polls))
	for id, p := range m.polls {
		if p.Status == models.StatusActive {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)

	polls := []models.PollSummary{}
	for _, id := range ids {
		polls = append(polls, models.PollSummary{Nome: m.polls[id].Nome})
	}
	return polls, nil
}

func (m *MemoryStore) GetPollDetail(ctx context.Context, pollID int64) (*models.PollDetail, error) {
	if pollID <= 0 {
		return nil, apperr.NewValidationError(models.MsgInvalidPollID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.polls[pollID]
	if !ok {
		return nil, apperr.NewNotFoundError(models.MsgPollNotFound)
	}

	d := &models.PollDetail{ID: p.ID, Nome: p.Nome, Status: p.Status, Descricao: p.Descricao, Opcoes: []models.OptionPair{}}
	for _, o := range m.optionsOf(pollID) {
		d.Opcoes = append(d.Opcoes, models.OptionPair{ID: o.ID, Label: o.Label})
	}
	return d, nil
}

func (m *MemoryStore) DeletePoll(ctx context.Context, pollID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	for k := range m.votes {
		if k.pollID == pollID {
			delete(m.votes, k)
		}
	}
	for id, o := range m.options {
		if o.pollID == pollID {
			delete(m.options, id)
		}
	}
	delete(m.polls, pollID)
	return nil
}

func (m *MemoryStore) Vote(ctx context.Context, pollID, optionID, userID int64) error {
	if pollID == 0 || optionID == 0 || userID == 0 {
		return apperr.NewValidationError(models.MsgVoteInvalid)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if m.Strict {
		if _, ok := m.polls[pollID]; !ok {
			return apperr.NewValidationError(models.MsgVotePollMissing)
		}
		if o, ok := m.options[optionID]; !ok || o.pollID != pollID {
			return apperr.NewValidationError(models.MsgVoteOptionMismatch)
		}
		if !m.users[userID] {
			return apperr.NewValidationError(models.MsgVoteUserMissing)
		}
	}

	m.votes[voteKey{pollID, userID}] = optionID
	return nil
}

// GetResults counts votes by option id alone, like the SQL join
func (m *MemoryStore) GetResults(ctx context.Context, pollID int64) ([]models.OptionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}

	counts := make(map[int64]int64)
	for _, opt := range m.votes {
		counts[opt]++
	}

	results := []models.OptionResult{}
	for _, o := range m.optionsOf(pollID) {
		results = append(results, models.OptionResult{Label: o.Label, Votes: counts[o.ID]})
	}
	return results, nil
}

func (m *MemoryStore) ListOptions(ctx context.Context, pollID int64) ([]models.Option, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.optionsOf(pollID), nil
}

func (m *MemoryStore) AddOption(ctx context.Context, pollID int64, label string) (int64, error) {
	if label == "" {
		return 0, apperr.NewValidationError(models.MsgOptionRequired)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}

	m.nextOption++
	m.options[m.nextOption] = memOption{pollID: pollID, label: label}
	return m.nextOption, nil
}

func (m *MemoryStore) DeleteOption(ctx context.Context, pollID, optionID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	if _, ok := m.polls[pollID]; !ok {
		return apperr.NewNotFoundError(models.MsgPollNotFound)
	}
	if len(m.optionsOf(pollID)) <= models.MinOptions {
		return apperr.NewValidationError(models.MsgMinOptions)
	}

	o, ok := m.options[optionID]
	if !ok || o.pollID != pollID {
		if m.Strict {
			return apperr.NewValidationError(models.MsgOptionNotInPoll)
		}
		return nil
	}

	for k, opt := range m.votes {
		if k.pollID == pollID && opt == optionID {
			delete(m.votes, k)
		}
	}
	delete(m.options, optionID)
	return nil
}

// optionsOf must be called with mu held
func (m *MemoryStore) optionsOf(pollID int64) []models.Option {
	ids := []int64{}
	for id, o := range m.options {
		if o.pollID == pollID {
			ids = append(ids, id)
		}
	}
	sortIDs(ids)

	options := make([]models.Option, 0, len(ids))
	for _, id := range ids {
		options = append(options, models.Option{ID: id, Label: m.options[id].label})
	}
	return options
}

func sortIDs(ids []int64) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}

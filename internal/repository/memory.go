package repository

import (
	"context"
	"sync"

	"github.com/vbelov/wedding-invite/internal/domain"
)

// InMemoryRowSource serves a fixed slice of rows. It backs tests and local
// runs without a reachable sheet proxy.
type InMemoryRowSource struct {
	mu      sync.RWMutex
	rows    []Row
	fetches int
}

func NewInMemoryRowSource(rows ...Row) *InMemoryRowSource {
	return &InMemoryRowSource{rows: rows}
}

func (s *InMemoryRowSource) SetRows(rows ...Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = rows
}

func (s *InMemoryRowSource) Rows(ctx context.Context) []Row {
	if err := ctx.Err(); err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.fetches++
	out := make([]Row, len(s.rows))
	copy(out, s.rows)
	return out
}

// Fetches reports how many times Rows was called, so tests can assert that
// an empty code never reaches the network.
func (s *InMemoryRowSource) Fetches() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetches
}

// SubmittedAction records one call that reached an InMemorySubmitter.
type SubmittedAction struct {
	Action  string
	Payload map[string]any
}

// InMemorySubmitter captures submissions and answers with a canned result.
type InMemorySubmitter struct {
	mu     sync.RWMutex
	result domain.SubmitResult
	calls  []SubmittedAction
}

func NewInMemorySubmitter() *InMemorySubmitter {
	return &InMemorySubmitter{result: domain.SubmitOK()}
}

func (s *InMemorySubmitter) SetResult(result domain.SubmitResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
}

func (s *InMemorySubmitter) Submit(ctx context.Context, action string, payload map[string]any) domain.SubmitResult {
	if err := ctx.Err(); err != nil {
		return domain.SubmitFailed(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, SubmittedAction{Action: action, Payload: payload})
	return s.result
}

func (s *InMemorySubmitter) Calls() []SubmittedAction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]SubmittedAction, len(s.calls))
	copy(out, s.calls)
	return out
}

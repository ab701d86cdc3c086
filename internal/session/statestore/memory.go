package statestore

import (
	"context"
	"sync"

	"lifepath/internal/flow"
)

// Memory is a lightweight Store for tests and ephemeral single-process
// runs. Completed states are retained so tests can assert on archiving.
type Memory struct {
	mu       sync.RWMutex
	open     map[string]flow.State
	archived map[string][]flow.State
}

// NewMemory constructs an in-memory store.
func NewMemory() *Memory {
	return &Memory{
		open:     make(map[string]flow.State),
		archived: make(map[string][]flow.State),
	}
}

func (m *Memory) Load(_ context.Context, id Identity) (flow.State, error) {
	key, err := id.Key()
	if err != nil {
		return flow.State{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, ok := m.open[key]
	if !ok {
		return flow.State{}, ErrNotFound
	}
	return state.Clone(), nil
}

func (m *Memory) Save(_ context.Context, id Identity, state flow.State) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open[key] = state.Clone()
	return nil
}

func (m *Memory) Complete(_ context.Context, id Identity, state flow.State) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.open, key)
	if !id.Guest {
		m.archived[key] = append(m.archived[key], state.Clone())
	}
	return nil
}

func (m *Memory) Delete(_ context.Context, id Identity) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.open, key)
	return nil
}

// Archived returns the completed states recorded for an identity, newest
// last. Test helper.
func (m *Memory) Archived(id Identity) []flow.State {
	key, err := id.Key()
	if err != nil {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]flow.State, len(m.archived[key]))
	copy(out, m.archived[key])
	return out
}

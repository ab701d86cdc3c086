package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"lifepath/internal/catalog"
	"lifepath/internal/flow"
	"lifepath/internal/logging"
	"lifepath/internal/session/statestore"
)

// Snapshot is the engine's UI-facing view of one session: the current
// question, the active flow, and progress.
type Snapshot struct {
	State     flow.State         `json:"state"`
	Flow      []catalog.Question `json:"flow"`
	Current   *catalog.Question  `json:"current,omitempty"`
	Completed bool               `json:"completed"`
	Progress  flow.Progress      `json:"progress"`
}

// Manager composes the flow engine with a persistence backend. All state
// transitions are applied synchronously in memory; persistence is
// fire-and-forget and never rolls back the in-memory state.
type Manager struct {
	catalog *catalog.Catalog
	store   statestore.Store
	logger  logging.Logger

	saveTimeout time.Duration

	mu       sync.Mutex
	sessions map[string]flow.State

	// pending tracks in-flight persistence writes so tests and shutdown
	// can wait for them.
	pending sync.WaitGroup
}

// NewManager constructs a session manager. The store is selected once at
// composition time (file for guests-only deployments, Postgres when
// accounts are enabled); the manager never branches on auth state per call.
func NewManager(c *catalog.Catalog, store statestore.Store, logger logging.Logger) *Manager {
	return &Manager{
		catalog:     c,
		store:       store,
		logger:      logging.OrNop(logger),
		saveTimeout: 5 * time.Second,
		sessions:    make(map[string]flow.State),
	}
}

// Open returns the session state for an identity, resuming a persisted
// session when one exists. A failed or malformed load degrades to a fresh
// session.
func (m *Manager) Open(ctx context.Context, id statestore.Identity) (flow.State, error) {
	key, err := id.Key()
	if err != nil {
		return flow.State{}, err
	}

	m.mu.Lock()
	if state, ok := m.sessions[key]; ok {
		m.mu.Unlock()
		return state.Clone(), nil
	}
	m.mu.Unlock()

	state, err := m.store.Load(ctx, id)
	if err != nil {
		if !errors.Is(err, statestore.ErrNotFound) {
			m.logger.Warn("Load failed for %s, starting fresh: %v", key, err)
		}
		state = flow.NewState()
	}

	m.mu.Lock()
	m.sessions[key] = state.Clone()
	m.mu.Unlock()
	return state, nil
}

// Dispatch applies an action to the identity's session, persists the new
// state in the background, and returns the resulting snapshot.
func (m *Manager) Dispatch(ctx context.Context, id statestore.Identity, action flow.Action) (Snapshot, error) {
	key, err := id.Key()
	if err != nil {
		return Snapshot{}, err
	}

	opened, err := m.Open(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}

	m.mu.Lock()
	// A concurrent Complete may have evicted the entry between Open and
	// here; fall back to the state Open returned rather than a zero value.
	current, ok := m.sessions[key]
	if !ok {
		current = opened
	}
	next := flow.Apply(m.catalog, current, action)
	m.sessions[key] = next
	m.mu.Unlock()

	m.persistAsync(id, key, next)
	return m.snapshot(next), nil
}

// Snapshot returns the current view without applying an action.
func (m *Manager) Snapshot(ctx context.Context, id statestore.Identity) (Snapshot, error) {
	state, err := m.Open(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	return m.snapshot(state), nil
}

// Complete finishes the session: archived for accounts, discarded for
// guests. Unlike ordinary saves this is synchronous, since the caller
// transitions to the results view on success.
func (m *Manager) Complete(ctx context.Context, id statestore.Identity) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	state, err := m.Open(ctx, id)
	if err != nil {
		return err
	}
	if err := m.store.Complete(ctx, id, state); err != nil {
		return err
	}
	m.mu.Lock()
	delete(m.sessions, key)
	m.mu.Unlock()
	return nil
}

func (m *Manager) snapshot(state flow.State) Snapshot {
	active := flow.Build(m.catalog, state.Answers)
	snap := Snapshot{
		State:     state,
		Flow:      active,
		Completed: state.Step >= len(active),
		Progress:  flow.ComputeProgress(active, state.Answers),
	}
	if q, ok := flow.Current(m.catalog, state); ok {
		snap.Current = &q
	}
	return snap
}

// persistAsync writes the state without blocking the caller. A failed
// save is logged and otherwise ignored: durability is a convenience, not
// a correctness dependency of the live session.
func (m *Manager) persistAsync(id statestore.Identity, key string, state flow.State) {
	m.pending.Add(1)
	go func() {
		defer m.pending.Done()
		ctx, cancel := context.WithTimeout(context.Background(), m.saveTimeout)
		defer cancel()
		if err := m.store.Save(ctx, id, state); err != nil {
			m.logger.Warn("Persist failed for %s: %v", key, err)
		}
	}()
}

// Flush waits for in-flight persistence writes. Used on shutdown and in
// tests.
func (m *Manager) Flush() {
	m.pending.Wait()
}

// Catalog exposes the static question configuration backing the manager.
func (m *Manager) Catalog() *catalog.Catalog {
	return m.catalog
}

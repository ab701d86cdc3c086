package session

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifepath/internal/catalog"
	"lifepath/internal/flow"
	"lifepath/internal/logging"
	"lifepath/internal/session/statestore"
)

func newTestManager(t *testing.T) (*Manager, *statestore.Memory) {
	t.Helper()
	store := statestore.NewMemory()
	return NewManager(catalog.Default(), store, logging.Nop()), store
}

func TestOpenStartsFresh(t *testing.T) {
	m, _ := newTestManager(t)
	id := statestore.Identity{UserID: "u1"}

	state, err := m.Open(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Step)
	assert.Equal(t, 0, state.Answers.Len())
	assert.Nil(t, state.Priorities)
}

func TestOpenResumesPersistedState(t *testing.T) {
	store := statestore.NewMemory()
	id := statestore.Identity{UserID: "u1"}

	saved := flow.NewState()
	saved.Answers.Set("name", flow.String("Alex"))
	saved.Step = 3
	require.NoError(t, store.Save(context.Background(), id, saved))

	m := NewManager(catalog.Default(), store, logging.Nop())
	state, err := m.Open(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Step)
	assert.Equal(t, flow.String("Alex"), state.Answers.Get("name"))
}

func TestDispatchAnswerUpdatesSnapshotAndPersists(t *testing.T) {
	m, store := newTestManager(t)
	id := statestore.Identity{UserID: "u1"}
	ctx := context.Background()

	snap, err := m.Dispatch(ctx, id, flow.AnswerQuestion{
		QuestionID: "career_situation",
		Value:      flow.String("Self-Employed/Freelancer"),
	})
	require.NoError(t, err)

	ids := make([]string, len(snap.Flow))
	for i, q := range snap.Flow {
		ids[i] = q.ID
	}
	assert.Contains(t, ids, "career_challenge_follow_up")
	assert.Equal(t, 1, snap.Progress.Answered)

	m.Flush()
	persisted, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, flow.String("Self-Employed/Freelancer"), persisted.Answers.Get("career_situation"))
}

func TestDispatchSurvivesFailingStore(t *testing.T) {
	m := NewManager(catalog.Default(), failingStore{}, logging.Nop())
	id := statestore.Identity{UserID: "u1"}
	ctx := context.Background()

	snap, err := m.Dispatch(ctx, id, flow.AnswerQuestion{
		QuestionID: "name",
		Value:      flow.String("Alex"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Progress.Answered)
	m.Flush()

	// The in-memory session kept the answer despite the failed save.
	snap, err = m.Snapshot(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, flow.String("Alex"), snap.State.Answers.Get("name"))
}

func TestCompleteArchivesAndForgets(t *testing.T) {
	m, store := newTestManager(t)
	id := statestore.Identity{UserID: "u1"}
	ctx := context.Background()

	_, err := m.Dispatch(ctx, id, flow.AnswerQuestion{QuestionID: "name", Value: flow.String("Alex")})
	require.NoError(t, err)
	m.Flush()

	require.NoError(t, m.Complete(ctx, id))
	assert.Len(t, store.Archived(id), 1)

	// A new open starts over.
	state, err := m.Open(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, state.Answers.Len())
}

func TestSnapshotCurrentAndCompletion(t *testing.T) {
	m, _ := newTestManager(t)
	id := statestore.Identity{UserID: "u1", Guest: true}
	ctx := context.Background()

	snap, err := m.Snapshot(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, snap.Current)
	assert.Equal(t, "name", snap.Current.ID)
	assert.False(t, snap.Completed)

	for i := 0; i < len(snap.Flow); i++ {
		snap, err = m.Dispatch(ctx, id, flow.Next{})
		require.NoError(t, err)
	}
	assert.True(t, snap.Completed)
	assert.Nil(t, snap.Current)
	m.Flush()
}

type failingStore struct{}

func (failingStore) Load(context.Context, statestore.Identity) (flow.State, error) {
	return flow.State{}, statestore.ErrNotFound
}

func (failingStore) Save(context.Context, statestore.Identity, flow.State) error {
	return errors.New("storage unavailable")
}

func (failingStore) Complete(context.Context, statestore.Identity, flow.State) error {
	return errors.New("storage unavailable")
}

func (failingStore) Delete(context.Context, statestore.Identity) error {
	return errors.New("storage unavailable")
}

func TestDispatchAfterComplete(t *testing.T) {
	m, _ := newTestManager(t)
	id := statestore.Identity{UserID: "device-9", Guest: true}
	ctx := context.Background()

	_, err := m.Dispatch(ctx, id, flow.AnswerQuestion{QuestionID: "name", Value: flow.String("Ada")})
	require.NoError(t, err)
	require.NoError(t, m.Complete(ctx, id))

	// The next dispatch lands on a fresh session, not a stale or zero one.
	snap, err := m.Dispatch(ctx, id, flow.AnswerQuestion{QuestionID: "name", Value: flow.String("Bea")})
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Progress.Answered)
	assert.Equal(t, flow.String("Bea"), snap.State.Answers.Get("name"))
	m.Flush()
}

func TestDispatchRacingComplete(t *testing.T) {
	m, _ := newTestManager(t)
	id := statestore.Identity{UserID: "device-race", Guest: true}
	ctx := context.Background()

	// Complete can evict the cached session between Dispatch opening it
	// and applying the action; the dispatch must still land on a usable
	// state, never a zero value.
	for i := 0; i < 50; i++ {
		_, err := m.Dispatch(ctx, id, flow.AnswerQuestion{QuestionID: "name", Value: flow.String("Ada")})
		require.NoError(t, err)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			snap, err := m.Dispatch(ctx, id, flow.AnswerQuestion{QuestionID: "dob", Value: flow.String("1990-01-01")})
			assert.NoError(t, err)
			assert.NotNil(t, snap.State.Answers)
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, m.Complete(ctx, id))
		}()
		wg.Wait()
	}
	m.Flush()
}

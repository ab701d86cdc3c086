package statestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifepath/internal/catalog"
	"lifepath/internal/flow"
)

func sampleState(t *testing.T) flow.State {
	t.Helper()
	s := flow.NewState()
	s.Answers.Set("career_situation", flow.String("Employed"))
	s.Answers.Set("health_activity", flow.Number(3))
	s.Step = 4
	s.Priorities = &catalog.Priorities{
		MainFocus:      catalog.PillarCareer,
		SecondaryFocus: catalog.PillarHealth,
		Maintenance:    []catalog.Pillar{catalog.PillarFinances, catalog.PillarConnections},
	}
	return s
}

func assertStateEqual(t *testing.T, want, got flow.State) {
	t.Helper()
	assert.Equal(t, want.Step, got.Step)
	assert.Equal(t, want.Priorities, got.Priorities)
	assert.Equal(t, want.Answers, got.Answers)
}

func TestIdentityKey(t *testing.T) {
	key, err := Identity{UserID: "abc-123", Guest: true}.Key()
	require.NoError(t, err)
	assert.Equal(t, "guest-abc-123", key)

	key, err = Identity{UserID: "abc-123"}.Key()
	require.NoError(t, err)
	assert.Equal(t, "user-abc-123", key)

	_, err = Identity{}.Key()
	assert.Error(t, err)

	_, err = Identity{UserID: "../escape"}.Key()
	assert.Error(t, err)
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	id := Identity{UserID: "u1"}

	_, err := store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	state := sampleState(t)
	require.NoError(t, store.Save(ctx, id, state))

	loaded, err := store.Load(ctx, id)
	require.NoError(t, err)
	assertStateEqual(t, state, loaded)

	// Saving twice then loading matches a single save.
	require.NoError(t, store.Save(ctx, id, state))
	again, err := store.Load(ctx, id)
	require.NoError(t, err)
	assertStateEqual(t, loaded, again)
}

func TestMemoryCompleteArchivesAccountsOnly(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	state := sampleState(t)

	account := Identity{UserID: "u1"}
	require.NoError(t, store.Save(ctx, account, state))
	require.NoError(t, store.Complete(ctx, account, state))
	_, err := store.Load(ctx, account)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Len(t, store.Archived(account), 1)

	guest := Identity{UserID: "d1", Guest: true}
	require.NoError(t, store.Save(ctx, guest, state))
	require.NoError(t, store.Complete(ctx, guest, state))
	_, err = store.Load(ctx, guest)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.Archived(guest))
}

func TestMemoryLoadReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	id := Identity{UserID: "u1"}
	require.NoError(t, store.Save(ctx, id, sampleState(t)))

	first, err := store.Load(ctx, id)
	require.NoError(t, err)
	first.Answers.Set("name", flow.String("mutated"))

	second, err := store.Load(ctx, id)
	require.NoError(t, err)
	assert.False(t, second.Answers.Has("name"))
}

func TestFileSaveLoad(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	store := NewFile(baseDir)
	id := Identity{UserID: "device-1", Guest: true}

	_, err := store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	state := sampleState(t)
	require.NoError(t, store.Save(ctx, id, state))

	// Use a fresh store to ensure data round-trips through disk.
	reloaded := NewFile(baseDir)
	loaded, err := reloaded.Load(ctx, id)
	require.NoError(t, err)
	assertStateEqual(t, state, loaded)
}

func TestFileMalformedDataDegradesToFresh(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	store := NewFile(baseDir)
	id := Identity{UserID: "device-1", Guest: true}

	key, err := id.Key()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, key+".json"), []byte("{not json"), 0o644))

	_, err = store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileCompleteDiscards(t *testing.T) {
	ctx := context.Background()
	store := NewFile(t.TempDir())
	id := Identity{UserID: "device-1", Guest: true}

	require.NoError(t, store.Save(ctx, id, sampleState(t)))
	require.NoError(t, store.Complete(ctx, id, sampleState(t)))

	_, err := store.Load(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent save is not an error.
	assert.NoError(t, store.Delete(ctx, id))
}

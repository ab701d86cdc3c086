package share

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifepath/internal/catalog"
	"lifepath/internal/logging"
)

func sampleScores() map[catalog.Pillar]int {
	return map[catalog.Pillar]int{
		catalog.PillarCareer:      75,
		catalog.PillarFinances:    60,
		catalog.PillarHealth:      85,
		catalog.PillarConnections: 70,
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	svc, err := NewService(NewMemory(), time.Hour, logging.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleScores(), map[catalog.Pillar]string{
		catalog.PillarCareer: "Keep climbing.",
	})
	require.NoError(t, err)
	require.NotEmpty(t, rec.Token)

	got, err := svc.Get(ctx, rec.Token)
	require.NoError(t, err)
	assert.Equal(t, rec.Scores, got.Scores)
	assert.Equal(t, "Keep climbing.", got.Insights[catalog.PillarCareer])
}

func TestGetUnknownToken(t *testing.T) {
	svc, err := NewService(NewMemory(), time.Hour, logging.Nop())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiredRecordIsNotServed(t *testing.T) {
	svc, err := NewService(NewMemory(), time.Minute, logging.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleScores(), nil)
	require.NoError(t, err)

	// Move the clock past expiry.
	svc.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err = svc.Get(ctx, rec.Token)
	assert.ErrorIs(t, err, ErrNotFound)

	// The expired entry was evicted from the cache, so a store hit also
	// reports not found.
	_, err = svc.Get(ctx, rec.Token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetServesFromCacheAfterStoreLoss(t *testing.T) {
	store := NewMemory()
	svc, err := NewService(store, time.Hour, logging.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	rec, err := svc.Create(ctx, sampleScores(), nil)
	require.NoError(t, err)

	// Wipe the backing store; the cache still answers.
	store.mu.Lock()
	store.records = map[string]Record{}
	store.mu.Unlock()

	got, err := svc.Get(ctx, rec.Token)
	require.NoError(t, err)
	assert.Equal(t, rec.Token, got.Token)
}

func TestTokensAreUnique(t *testing.T) {
	svc, err := NewService(NewMemory(), time.Hour, logging.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		rec, err := svc.Create(ctx, sampleScores(), nil)
		require.NoError(t, err)
		assert.False(t, seen[rec.Token])
		seen[rec.Token] = true
	}
}

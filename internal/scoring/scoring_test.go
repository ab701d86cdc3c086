package scoring

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifepath/internal/catalog"
	"lifepath/internal/logging"
)

func deck() []catalog.PulseCheckCard {
	return catalog.Default().Cards()
}

func TestFallbackPercentage(t *testing.T) {
	// Health cards are ids 21-30; answer three, keep two.
	decisions := map[int]Decision{
		21: DecisionKeep,
		22: DecisionKeep,
		23: DecisionPass,
	}
	results := Fallback(decisions, deck())

	assert.Equal(t, 67, results.Scores[catalog.PillarHealth])
	assert.True(t, results.Fallback)
}

func TestFallbackDefaultsToFiftyForUnansweredCategory(t *testing.T) {
	decisions := map[int]Decision{21: DecisionKeep}
	results := Fallback(decisions, deck())

	assert.Equal(t, 100, results.Scores[catalog.PillarHealth])
	assert.Equal(t, 50, results.Scores[catalog.PillarCareer])
	assert.Equal(t, 50, results.Scores[catalog.PillarFinances])
	assert.Equal(t, 50, results.Scores[catalog.PillarConnections])
	for _, pillar := range catalog.ScoredPillars() {
		assert.NotEmpty(t, results.Insights[pillar])
	}
}

func TestScoreUsesRemoteWhenHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		_, _ = w.Write([]byte(`{
			"career_score": 75,
			"financial_score": 60,
			"health_score": 85,
			"connections_score": 70,
			"insights": [{"pillar": "career", "description": "Room to grow."}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logging.Nop())
	results := client.Score(context.Background(), map[int]Decision{1: DecisionKeep}, deck())

	assert.False(t, results.Fallback)
	assert.Equal(t, 75, results.Scores[catalog.PillarCareer])
	assert.Equal(t, 85, results.Scores[catalog.PillarHealth])
	assert.Equal(t, "Room to grow.", results.Insights[catalog.PillarCareer])
}

func TestScoreRepairsSloppyJSON(t *testing.T) {
	// Trailing comma: invalid JSON that jsonrepair fixes.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"career_score": 75, "financial_score": 60, "health_score": 85, "connections_score": 70,}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logging.Nop())
	results := client.Score(context.Background(), map[int]Decision{}, deck())

	assert.False(t, results.Fallback)
	assert.Equal(t, 70, results.Scores[catalog.PillarConnections])
}

func TestScoreFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logging.Nop())
	decisions := map[int]Decision{21: DecisionKeep, 22: DecisionKeep, 23: DecisionPass}
	results := client.Score(context.Background(), decisions, deck())

	assert.True(t, results.Fallback)
	assert.Equal(t, 67, results.Scores[catalog.PillarHealth])
}

func TestScoreFallsBackOnMissingScores(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"career_score": 75}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logging.Nop())
	results := client.Score(context.Background(), map[int]Decision{}, deck())
	assert.True(t, results.Fallback)
}

func TestScoreFallsBackOnScorerReportedError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"error": "model unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logging.Nop())
	results := client.Score(context.Background(), map[int]Decision{}, deck())
	assert.True(t, results.Fallback)
}

func TestScoreWithoutRemoteConfigured(t *testing.T) {
	client := NewClient("", 0, logging.Nop())
	results := client.Score(context.Background(), map[int]Decision{}, deck())
	assert.True(t, results.Fallback)
}

func TestRemoteScoresAreClamped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"career_score": 140, "financial_score": -5, "health_score": 85, "connections_score": 70}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logging.Nop())
	results := client.Score(context.Background(), map[int]Decision{}, deck())

	assert.Equal(t, 100, results.Scores[catalog.PillarCareer])
	assert.Equal(t, 0, results.Scores[catalog.PillarFinances])
}

func TestBuildResultsDropsUnknownCards(t *testing.T) {
	decisions := map[int]Decision{1: DecisionKeep, 999: DecisionPass}
	results := BuildResults(decisions, deck())
	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].CardID)
	assert.Equal(t, catalog.PillarCareer, results[0].Card.Category)
}

func TestShuffleKeepsAllCards(t *testing.T) {
	cards := deck()
	shuffled := Shuffle(cards, rand.New(rand.NewSource(42)))

	require.Len(t, shuffled, len(cards))
	seen := map[int]bool{}
	for _, card := range shuffled {
		seen[card.ID] = true
	}
	assert.Len(t, seen, len(cards))

	// Same seed, same order.
	again := Shuffle(cards, rand.New(rand.NewSource(42)))
	assert.Equal(t, shuffled, again)
}

package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"lifepath/internal/catalog"
	"lifepath/internal/logging"
)

const defaultTimeout = 20 * time.Second

// maxResponseBytes bounds how much of a scorer response is read.
const maxResponseBytes = 1 << 20

// Client calls the remote AI scoring service. Score never returns an
// error: any failure degrades to the local fallback computation.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logging.Logger
}

// NewClient constructs a scoring client. An empty baseURL disables the
// remote path entirely; Score then always computes locally.
func NewClient(baseURL string, timeout time.Duration, logger logging.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logging.OrNop(logger),
	}
}

// scorerResponse is the wire shape of the remote scorer's reply. The
// service is LLM-backed, so field presence is treated with suspicion.
type scorerResponse struct {
	CareerScore      *int `json:"career_score"`
	FinancialScore   *int `json:"financial_score"`
	HealthScore      *int `json:"health_score"`
	ConnectionsScore *int `json:"connections_score"`
	Insights         []struct {
		Pillar      string `json:"pillar"`
		Description string `json:"description"`
	} `json:"insights"`
	Error string `json:"error"`
}

// Score submits the decisions to the remote scorer and returns its
// results, or the local fallback when anything goes wrong.
func (c *Client) Score(ctx context.Context, decisions map[int]Decision, cards []catalog.PulseCheckCard) Results {
	if c.baseURL == "" {
		return Fallback(decisions, cards)
	}
	results, err := c.remote(ctx, decisions, cards)
	if err != nil {
		c.logger.Warn("Remote scoring failed, using local fallback: %v", err)
		return Fallback(decisions, cards)
	}
	return results
}

func (c *Client) remote(ctx context.Context, decisions map[int]Decision, cards []catalog.PulseCheckCard) (Results, error) {
	payload, err := json.Marshal(map[string]any{
		"results": BuildResults(decisions, cards),
	})
	if err != nil {
		return Results{}, fmt.Errorf("encode scorer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return Results{}, fmt.Errorf("build scorer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Results{}, fmt.Errorf("call scorer: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Results{}, fmt.Errorf("scorer returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Results{}, fmt.Errorf("read scorer response: %w", err)
	}

	parsed, err := parseScorerResponse(body)
	if err != nil {
		return Results{}, err
	}
	if parsed.Error != "" {
		return Results{}, fmt.Errorf("scorer error: %s", parsed.Error)
	}
	return convertScorerResponse(parsed)
}

// parseScorerResponse decodes the reply, repairing malformed JSON first
// when a strict parse fails. LLM-backed services routinely emit trailing
// commas or unquoted keys.
func parseScorerResponse(body []byte) (scorerResponse, error) {
	var parsed scorerResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		return parsed, nil
	}
	repaired, err := jsonrepair.JSONRepair(string(body))
	if err != nil {
		return scorerResponse{}, fmt.Errorf("scorer response unparseable: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &parsed); err != nil {
		return scorerResponse{}, fmt.Errorf("scorer response invalid after repair: %w", err)
	}
	return parsed, nil
}

func convertScorerResponse(parsed scorerResponse) (Results, error) {
	scores := map[catalog.Pillar]*int{
		catalog.PillarCareer:      parsed.CareerScore,
		catalog.PillarFinances:    parsed.FinancialScore,
		catalog.PillarHealth:      parsed.HealthScore,
		catalog.PillarConnections: parsed.ConnectionsScore,
	}
	results := Results{
		Scores:   make(map[catalog.Pillar]int, len(scores)),
		Insights: make(map[catalog.Pillar]string, len(scores)),
	}
	for pillar, score := range scores {
		if score == nil {
			return Results{}, fmt.Errorf("scorer response missing %s score", pillar)
		}
		results.Scores[pillar] = clampScore(*score)
	}
	for _, insight := range parsed.Insights {
		pillar, err := catalog.ParsePillar(normalizePillarName(insight.Pillar))
		if err != nil {
			continue
		}
		results.Insights[pillar] = insight.Description
	}
	return results, nil
}

// normalizePillarName upcases the first letter so "career" matches the
// Pillar constants.
func normalizePillarName(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

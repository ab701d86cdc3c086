package server

import (
	"lifepath/internal/catalog"
	"lifepath/internal/flow"
	"lifepath/internal/scoring"
)

// APIResponse is the envelope every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AnswerRequest records one answer. Value accepts the raw JSON shapes the
// client sends: strings, numbers, and string arrays.
type AnswerRequest struct {
	QuestionID string     `json:"questionId" binding:"required"`
	Value      flow.Value `json:"value"`
}

// PrioritiesRequest replaces the pillar priorities for a session.
type PrioritiesRequest struct {
	MainFocus      catalog.Pillar   `json:"mainFocus" binding:"required"`
	SecondaryFocus catalog.Pillar   `json:"secondaryFocus" binding:"required"`
	Maintenance    []catalog.Pillar `json:"maintenance" binding:"required"`
}

// ScoreRequest carries pulse-check swipe decisions keyed by card ID.
type ScoreRequest struct {
	Decisions map[int]scoring.Decision `json:"decisions" binding:"required"`
}

// ShareRequest publishes a results snapshot.
type ShareRequest struct {
	Scores   map[catalog.Pillar]int    `json:"scores" binding:"required"`
	Insights map[catalog.Pillar]string `json:"insights"`
}

// HabitRecordRequest grades one week of habit completions.
type HabitRecordRequest struct {
	Identity    string `json:"identity" binding:"required"`
	System      string `json:"system" binding:"required"`
	Completions int    `json:"completions"`
	// StreakWeeks and CurrentStreak carry the habit's prior history; the
	// client owns habit storage.
	StreakWeeks   []string `json:"streakWeeks"`
	CurrentStreak int      `json:"currentStreak"`
	Established   bool     `json:"established"`
}

// CatalogResponse is the full question catalog as the client consumes it.
type CatalogResponse struct {
	Questions []catalog.Question    `json:"questions"`
	Rules     []catalog.TriggerRule `json:"rules"`
}

// FutureResponse holds the deep-dive and maintenance prompts for a pillar.
type FutureResponse struct {
	Pillar      catalog.Pillar `json:"pillar"`
	DeepDive    []string       `json:"deepDive"`
	Maintenance string         `json:"maintenance"`
}

// Package habits implements the habit architect's streak bookkeeping:
// each week a habit's completion count is graded against its target
// frequency, and four consecutive gold weeks establish the habit.
package habits

import (
	"regexp"
	"strconv"
	"time"
)

// WeekGrade classifies one week of habit completions.
type WeekGrade string

const (
	// Gold means the target frequency was met; the streak grows.
	Gold WeekGrade = "gold"
	// Silver means partial progress; the streak holds.
	Silver WeekGrade = "silver"
	// Grey means no progress; the streak resets.
	Grey WeekGrade = "grey"
)

// establishedWindow is how many consecutive gold weeks make a habit stick.
const establishedWindow = 4

// defaultTargetFrequency applies when a habit's system text does not spell
// out a weekly count.
const defaultTargetFrequency = 3

// Habit is one identity-based habit loop: "I am X, so I do Y N times a week".
type Habit struct {
	Identity        string      `json:"identity"`
	System          string      `json:"system"`
	TargetFrequency int         `json:"targetFrequency"`
	StreakWeeks     []WeekGrade `json:"streakWeeks"`
	CurrentStreak   int         `json:"currentStreak"`
	Established     bool        `json:"established"`
	CompletedAt     *time.Time  `json:"completedAt,omitempty"`
}

var frequencyPattern = regexp.MustCompile(`(?i)(\d+)\s*times?\s*a?\s*week`)

// ExtractTargetFrequency reads the weekly target out of the habit's system
// description, e.g. "meditate 5 times a week" yields 5.
func ExtractTargetFrequency(system string) int {
	match := frequencyPattern.FindStringSubmatch(system)
	if match == nil {
		return defaultTargetFrequency
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n <= 0 {
		return defaultTargetFrequency
	}
	return n
}

// GradeWeek classifies a week's completion count against the target.
func GradeWeek(completions, target int) WeekGrade {
	switch {
	case completions >= target:
		return Gold
	case completions > 0:
		return Silver
	default:
		return Grey
	}
}

// NextStreak advances the streak counter for a graded week: gold grows it,
// grey resets it, silver holds it.
func NextStreak(current int, grade WeekGrade) int {
	switch grade {
	case Gold:
		return current + 1
	case Grey:
		return 0
	default:
		return current
	}
}

// IsEstablished reports whether the habit has stuck: the last four weeks
// all gold and the streak at least four.
func IsEstablished(weeks []WeekGrade, streak int) bool {
	if streak < establishedWindow || len(weeks) < establishedWindow {
		return false
	}
	for _, grade := range weeks[len(weeks)-establishedWindow:] {
		if grade != Gold {
			return false
		}
	}
	return true
}

// RecordWeek folds one week of completions into the habit and returns the
// updated copy. The input habit is not mutated.
func RecordWeek(h Habit, completions int, now time.Time) Habit {
	target := h.TargetFrequency
	if target <= 0 {
		target = ExtractTargetFrequency(h.System)
	}

	grade := GradeWeek(completions, target)
	weeks := make([]WeekGrade, 0, len(h.StreakWeeks)+1)
	weeks = append(weeks, h.StreakWeeks...)
	weeks = append(weeks, grade)

	updated := h
	updated.TargetFrequency = target
	updated.StreakWeeks = weeks
	updated.CurrentStreak = NextStreak(h.CurrentStreak, grade)
	if IsEstablished(weeks, updated.CurrentStreak) && !updated.Established {
		updated.Established = true
		completedAt := now
		updated.CompletedAt = &completedAt
	}
	return updated
}

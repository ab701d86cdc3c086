package statestore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"lifepath/internal/flow"
)

// ErrNotFound is returned when no saved state exists for an identity.
// Callers treat it as "start a fresh session", never as a failure.
var ErrNotFound = errors.New("session state not found")

// Identity names the owner of a session. Guests are keyed by a
// device-local ID; authenticated users by their account ID.
type Identity struct {
	UserID string
	Guest  bool
}

var identityKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Key returns the storage key for the identity, or an error when the ID
// contains characters unsafe for file names or SQL parameters.
func (id Identity) Key() (string, error) {
	if id.UserID == "" {
		return "", fmt.Errorf("empty identity")
	}
	if !identityKeyPattern.MatchString(id.UserID) {
		return "", fmt.Errorf("invalid identity %q", id.UserID)
	}
	if id.Guest {
		return "guest-" + id.UserID, nil
	}
	return "user-" + id.UserID, nil
}

// Store persists session progress state. Implementations must provide
// read-your-writes (a Load after a Save returns the saved state) and
// idempotent saves. A Load that finds malformed data reports ErrNotFound
// so the session degrades to a fresh start instead of crashing.
type Store interface {
	// Load returns the saved in-progress state for an identity.
	Load(ctx context.Context, id Identity) (flow.State, error)
	// Save durably records the state, replacing any previous save.
	Save(ctx context.Context, id Identity, state flow.State) error
	// Complete archives the finished state (for accounts) or discards it
	// (for guests) and removes the in-progress save either way.
	Complete(ctx context.Context, id Identity, state flow.State) error
	// Delete removes the in-progress save without archiving.
	Delete(ctx context.Context, id Identity) error
}

package statestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lifepath/internal/flow"
	"lifepath/internal/logging"
)

// File persists one JSON file per identity under a base directory. It is
// the guest-session backend: local, unauthenticated, best-effort.
type File struct {
	baseDir string
	logger  logging.Logger
}

// NewFile constructs a file-backed store rooted at baseDir. A leading ~/
// is expanded to the user's home directory.
func NewFile(baseDir string) *File {
	if strings.HasPrefix(baseDir, "~/") {
		home, _ := os.UserHomeDir()
		baseDir = filepath.Join(home, baseDir[2:])
	}
	_ = os.MkdirAll(baseDir, 0o755) // directory may already exist
	return &File{
		baseDir: baseDir,
		logger:  logging.NewComponentLogger("SessionFileStore"),
	}
}

func (f *File) path(key string) string {
	return filepath.Join(f.baseDir, key+".json")
}

func (f *File) Load(_ context.Context, id Identity) (flow.State, error) {
	key, err := id.Key()
	if err != nil {
		return flow.State{}, err
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		return flow.State{}, ErrNotFound
	}
	var state flow.State
	if err := json.Unmarshal(data, &state); err != nil {
		// Malformed saved data degrades to a fresh session.
		f.logger.Warn("Discarding malformed session file %s: %v", f.path(key), err)
		return flow.State{}, ErrNotFound
	}
	if state.Answers == nil {
		state.Answers = flow.NewAnswers()
	}
	return state, nil
}

func (f *File) Save(_ context.Context, id Identity, state flow.State) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	tmp := f.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	if err := os.Rename(tmp, f.path(key)); err != nil {
		return fmt.Errorf("replace session state: %w", err)
	}
	return nil
}

func (f *File) Complete(ctx context.Context, id Identity, _ flow.State) error {
	// Guest sessions are discarded on completion; there is no local archive.
	return f.Delete(ctx, id)
}

func (f *File) Delete(_ context.Context, id Identity) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	if err := os.Remove(f.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}

package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lifepath/internal/flow"
	"lifepath/internal/logging"
)

const (
	sessionTable = "questionnaire_sessions"
	archiveTable = "questionnaire_archive"
)

// Postgres is the account-scoped remote backend. In-progress state lives
// in one row per identity; completing a session moves the row into the
// archive table for authenticated users.
type Postgres struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewPostgres constructs a Postgres-backed store.
func NewPostgres(pool *pgxpool.Pool, logger logging.Logger) *Postgres {
	return &Postgres{
		pool:   pool,
		logger: logging.OrNop(logger),
	}
}

// EnsureSchema creates the session tables if they do not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	if p == nil || p.pool == nil {
		return fmt.Errorf("session store not initialized")
	}
	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    identity TEXT PRIMARY KEY,
    state JSONB NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS %s (
    id BIGSERIAL PRIMARY KEY,
    identity TEXT NOT NULL,
    state JSONB NOT NULL,
    completed_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_questionnaire_archive_identity ON %s (identity);
`, sessionTable, archiveTable, archiveTable)

	_, err := p.pool.Exec(ctx, query)
	return err
}

func (p *Postgres) Load(ctx context.Context, id Identity) (flow.State, error) {
	key, err := id.Key()
	if err != nil {
		return flow.State{}, err
	}
	var raw []byte
	query := fmt.Sprintf(`SELECT state FROM %s WHERE identity = $1`, sessionTable)
	if err := p.pool.QueryRow(ctx, query, key).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return flow.State{}, ErrNotFound
		}
		return flow.State{}, fmt.Errorf("load session state: %w", err)
	}
	var state flow.State
	if err := json.Unmarshal(raw, &state); err != nil {
		p.logger.Warn("Discarding malformed session row for %s: %v", key, err)
		return flow.State{}, ErrNotFound
	}
	if state.Answers == nil {
		state.Answers = flow.NewAnswers()
	}
	return state, nil
}

func (p *Postgres) Save(ctx context.Context, id Identity, state flow.State) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	query := fmt.Sprintf(`
INSERT INTO %s (identity, state, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (identity) DO UPDATE SET state = EXCLUDED.state, updated_at = now()
`, sessionTable)
	if _, err := p.pool.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("save session state: %w", err)
	}
	return nil
}

func (p *Postgres) Complete(ctx context.Context, id Identity, state flow.State) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin complete: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if !id.Guest {
		insert := fmt.Sprintf(`INSERT INTO %s (identity, state) VALUES ($1, $2)`, archiveTable)
		if _, err := tx.Exec(ctx, insert, key, raw); err != nil {
			return fmt.Errorf("archive session state: %w", err)
		}
	}
	remove := fmt.Sprintf(`DELETE FROM %s WHERE identity = $1`, sessionTable)
	if _, err := tx.Exec(ctx, remove, key); err != nil {
		return fmt.Errorf("clear session state: %w", err)
	}
	return tx.Commit(ctx)
}

func (p *Postgres) Delete(ctx context.Context, id Identity) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	query := fmt.Sprintf(`DELETE FROM %s WHERE identity = $1`, sessionTable)
	if _, err := p.pool.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("delete session state: %w", err)
	}
	return nil
}

package share

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Memory is the in-process share store used for tests and file-backed
// deployments, where share links only survive the process lifetime.
type Memory struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemory constructs an in-memory share store.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]Record)}
}

func (m *Memory) Put(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.Token] = rec
	return nil
}

func (m *Memory) Get(_ context.Context, token string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[token]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

const shareTable = "shared_results"

// Postgres persists share records in the account database.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a Postgres-backed share store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// EnsureSchema creates the share table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %s (
    token TEXT PRIMARY KEY,
    payload JSONB NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL
);
`, shareTable)
	_, err := p.pool.Exec(ctx, query)
	return err
}

func (p *Postgres) Put(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode share record: %w", err)
	}
	query := fmt.Sprintf(`INSERT INTO %s (token, payload, expires_at) VALUES ($1, $2, $3)`, shareTable)
	if _, err := p.pool.Exec(ctx, query, rec.Token, payload, rec.ExpiresAt); err != nil {
		return fmt.Errorf("store share record: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, token string) (Record, error) {
	var payload []byte
	query := fmt.Sprintf(`SELECT payload FROM %s WHERE token = $1`, shareTable)
	if err := p.pool.QueryRow(ctx, query, token).Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, fmt.Errorf("load share record: %w", err)
	}
	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return Record{}, fmt.Errorf("decode share record: %w", err)
	}
	return rec, nil
}

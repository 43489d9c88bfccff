package store

import (
	"bytes"
	"context"
	_ "embed"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/PratikDhanave/feature-request-check/internal/resource"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

var _ resource.Loader = (*PostgresStore)(nil)

// PostgresStore keeps named request payloads shared between services.
// It implements resource.Loader.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, errors.Wrap(err, "create pool")
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// PutResource stores body under name, replacing any previous payload.
// created is false when an existing row was replaced.
func (p *PostgresStore) PutResource(ctx context.Context, name string, body []byte) (bool, error) {
	if name == "" {
		return false, errors.New("name required")
	}

	// xmax = 0 only for freshly inserted rows.
	var created bool
	err := p.pool.QueryRow(ctx, `
		INSERT INTO resources(name, body)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = now()
		RETURNING (xmax = 0)
	`, name, body).Scan(&created)
	if err != nil {
		return false, errors.Wrapf(err, "put resource %s", name)
	}
	return created, nil
}

// Open returns the stored payload for name.
func (p *PostgresStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	var body []byte
	err := p.pool.QueryRow(ctx, `SELECT body FROM resources WHERE name = $1`, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, errors.Wrapf(resource.ErrNotFound, "%s: no row", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load resource %s", name)
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

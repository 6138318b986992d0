package resultcache

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arcosphere-go/catalyst/internal/cachekey"
	"github.com/arcosphere-go/catalyst/internal/wire"
	"github.com/arcosphere-go/catalyst/solve"
)

// schema is applied once by InitSchema. payload holds the deterministic
// CBOR encoding from internal/wire, so a row round-trips through the
// same codec the CLI and HTTP service use for their own binary output.
const schema = `
CREATE TABLE IF NOT EXISTS solve_cache (
	key        BYTEA PRIMARY KEY,
	payload    BYTEA NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Cache stores solve.Solution results keyed by cachekey.Key.
type Cache struct {
	pool *pgxpool.Pool
}

// Connect opens a pool against connStr and verifies it with a ping.
func Connect(ctx context.Context, connStr string) (*Cache, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("resultcache: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("resultcache: ping: %w", err)
	}
	return &Cache{pool: pool}, nil
}

// Close releases the underlying pool.
func (c *Cache) Close() {
	if c != nil && c.pool != nil {
		c.pool.Close()
	}
}

// InitSchema creates solve_cache if it does not already exist.
func (c *Cache) InitSchema(ctx context.Context) error {
	_, err := c.pool.Exec(ctx, schema)
	if err != nil {
		return fmt.Errorf("resultcache: init schema: %w", err)
	}
	return nil
}

// Get returns the cached solution for key, or ok == false on a miss.
func (c *Cache) Get(ctx context.Context, key cachekey.Key) (sol *solve.Solution, ok bool, err error) {
	var payload []byte
	row := c.pool.QueryRow(ctx, `SELECT payload FROM solve_cache WHERE key = $1`, key[:])
	if err := row.Scan(&payload); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("resultcache: get: %w", err)
	}

	sol, err = wire.DecodeSolution(payload)
	if err != nil {
		return nil, false, fmt.Errorf("resultcache: decode cached payload: %w", err)
	}
	return sol, true, nil
}

// Put upserts sol under key.
func (c *Cache) Put(ctx context.Context, key cachekey.Key, sol *solve.Solution) error {
	payload, err := wire.EncodeSolution(sol)
	if err != nil {
		return fmt.Errorf("resultcache: encode: %w", err)
	}

	const upsert = `
		INSERT INTO solve_cache (key, payload) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, created_at = now();
	`
	if _, err := c.pool.Exec(ctx, upsert, key[:], payload); err != nil {
		return fmt.Errorf("resultcache: put: %w", err)
	}
	return nil
}

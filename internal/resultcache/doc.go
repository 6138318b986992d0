// Package resultcache persists solve.Solution answers behind their
// cachekey.Key, the way internal/db/postgres.go in the reference
// forensics engine persists heuristics behind a pgx pool: a thin
// struct wrapping *pgxpool.Pool, a schema the caller applies once at
// startup, and plain parameterized SQL for every operation. The cache
// is optional — arcosphered runs with it nil when no DATABASE_URL is
// configured, the same "continue without persisting" shape the
// reference engine's main() uses for its own optional Postgres
// dependency.
package resultcache

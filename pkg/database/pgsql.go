package database

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "grouphome-ledger"

// PoolOptions tunes the ledger's connection pool.
type PoolOptions struct {
	// MaxConns caps open connections; zero keeps the pgx default.
	MaxConns int32
	// LockTimeout bounds how long a session waits for a resident row lock; zero waits forever.
	LockTimeout time.Duration
	// Ping verifies connectivity before the pool is returned.
	Ping bool
}

// poolConfig parses databaseURL and applies opts. Sessions run in UTC so timestamps and
// DATE casts never depend on the server's zone.
func poolConfig(databaseURL string, opts PoolOptions) (*pgxpool.Config, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config from URL: %w", err)
	}
	if opts.MaxConns > 0 {
		cfg.MaxConns = opts.MaxConns
	}

	params := cfg.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	params["timezone"] = "UTC"
	if opts.LockTimeout > 0 {
		params["lock_timeout"] = strconv.FormatInt(opts.LockTimeout.Milliseconds(), 10)
	}
	return cfg, nil
}

// NewPgxPool opens the pool backing the ledger and directory repositories.
func NewPgxPool(ctx context.Context, databaseURL string, opts PoolOptions) (*pgxpool.Pool, error) {
	cfg, err := poolConfig(databaseURL, opts)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if !opts.Ping {
		return pool, nil
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	slog.Info("Connected to PostgreSQL", slog.Int("max_conns", int(cfg.MaxConns)))
	return pool, nil
}

// ClosePgxPool closes the pool; a nil pool is ignored.
func ClosePgxPool(pool *pgxpool.Pool) {
	if pool == nil {
		return
	}
	pool.Close()
	slog.Info("PostgreSQL connection pool closed")
}

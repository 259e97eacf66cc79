package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// MigrationsTable: tabla de versiones propia, así la DB se puede compartir con otros servicios.
const MigrationsTable = "cr_finder_goose_version"

//go:embed migrations/*.sql
var migrations embed.FS

type dbConfig struct {
	maxConns    int
	maxIdle     int
	maxLifetime time.Duration
	pingTimeout time.Duration
}

type DBOption func(*dbConfig)

// WithMaxConns limita las conexiones abiertas; idle queda en la mitad.
func WithMaxConns(n int) DBOption {
	return func(c *dbConfig) {
		if n > 0 {
			c.maxConns = n
			c.maxIdle = max(1, n/2)
		}
	}
}

func WithPingTimeout(d time.Duration) DBOption {
	return func(c *dbConfig) {
		if d > 0 {
			c.pingTimeout = d
		}
	}
}

func newDBConfig(opts ...DBOption) dbConfig {
	c := dbConfig{maxConns: 10, maxIdle: 5, maxLifetime: time.Hour, pingTimeout: 5 * time.Second}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Open abre el pool de filtros guardados (pgx stdlib) y hace ping.
func Open(ctx context.Context, url string, opts ...DBOption) (*sql.DB, error) {
	cfg := newDBConfig(opts...)
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.maxConns)
	db.SetMaxIdleConns(cfg.maxIdle)
	db.SetConnMaxLifetime(cfg.maxLifetime)

	ctx, cancel := context.WithTimeout(ctx, cfg.pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// Migrate aplica las migraciones embebidas de filter_profiles.
func Migrate(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations)
	goose.SetTableName(MigrationsTable)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("migrate filter_profiles: %w", err)
	}
	return nil
}

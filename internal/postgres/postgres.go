package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/flexprice/playbill/internal/config"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// DB wraps sqlx.DB to provide transaction management
type DB struct {
	*sqlx.DB
	logger *logger.Logger
}

// Querier interface defines all database operations
// Both *sqlx.DB and *sqlx.Tx implement these methods
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
	Rebind(query string) string
}

// NewDB opens the postgres pool, retrying the initial connect with exponential backoff
func NewDB(cfg *config.Configuration, log *logger.Logger) (*DB, error) {
	var conn *sqlx.DB
	attempt := 0

	connect := func() error {
		attempt++
		db, err := sqlx.Connect("postgres", cfg.Postgres.GetDSN())
		if err != nil {
			log.Warnw("postgres connect failed",
				"attempt", attempt,
				"host", cfg.Postgres.Host,
				"error", err,
			)
			return err
		}
		conn = db
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), cfg.Postgres.ConnectMaxRetries)
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, err
	}

	conn.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	conn.SetConnMaxLifetime(time.Duration(cfg.Postgres.ConnMaxLifetimeMinutes) * time.Minute)

	log.Infow("connected to postgres",
		"host", cfg.Postgres.Host,
		"dbname", cfg.Postgres.DBName,
		"attempts", attempt,
	)

	return &DB{DB: conn, logger: log}, nil
}

// Close closes the database connection
func (db *DB) Close() {
	if err := db.DB.Close(); err != nil {
		db.logger.Errorw("error closing database", "error", err)
	}
}

// GetQuerier returns either the transaction from context or the base DB
func (db *DB) GetQuerier(ctx context.Context) Querier {
	if tx, ok := GetTx(ctx); ok {
		return NewTracedQuerier(tx.Tx, db.logger, tx.ID)
	}
	return NewTracedQuerier(db.DB, db.logger, "")
}

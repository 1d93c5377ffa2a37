package postgres

import (
	"context"

	ierr "github.com/flexprice/playbill/internal/errors"
)

// Migration is one idempotent schema step
type Migration struct {
	Name string
	SQL  string
}

// Migrations lists the schema steps in the order they must run
var Migrations = []Migration{
	{
		Name: "create_plays",
		SQL: `CREATE TABLE IF NOT EXISTS plays (
	id VARCHAR(50) PRIMARY KEY,
	name TEXT NOT NULL,
	type VARCHAR(50) NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		Name: "create_invoices",
		SQL: `CREATE TABLE IF NOT EXISTS invoices (
	id VARCHAR(50) PRIMARY KEY,
	customer TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`,
	},
	{
		Name: "create_performances",
		SQL: `CREATE TABLE IF NOT EXISTS performances (
	invoice_id VARCHAR(50) NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	play_id VARCHAR(50) NOT NULL,
	audience INTEGER NOT NULL CHECK (audience >= 0),
	PRIMARY KEY (invoice_id, position)
);`,
	},
}

// Migrate applies every migration inside a single transaction
func (db *DB) Migrate(ctx context.Context) error {
	return db.WithTx(ctx, func(ctx context.Context) error {
		for _, m := range Migrations {
			db.logger.Infow("applying migration", "name", m.Name)
			if _, err := db.GetQuerier(ctx).ExecContext(ctx, m.SQL); err != nil {
				return ierr.WithError(err).
					WithHintf("Migration %s failed", m.Name).
					Mark(ierr.ErrDatabase)
			}
		}
		return nil
	})
}

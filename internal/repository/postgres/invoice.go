package postgres

import (
	"context"
	"strings"

	"github.com/flexprice/playbill/internal/domain/invoice"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/postgres"
	"github.com/flexprice/playbill/internal/types"
	"github.com/lib/pq"
	"github.com/samber/lo"
)

type invoiceRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewInvoiceRepository(db *postgres.DB, logger *logger.Logger) invoice.Repository {
	return &invoiceRepository{db: db, logger: logger}
}

// performanceRow is a performance together with its invoice and position
type performanceRow struct {
	InvoiceID string `db:"invoice_id"`
	Position  int    `db:"position"`
	invoice.Performance
}

func (r *invoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	return r.db.WithTx(ctx, func(ctx context.Context) error {
		q := r.db.GetQuerier(ctx)

		query := `
		INSERT INTO invoices (id, customer, created_at, updated_at)
		VALUES (:id, :customer, :created_at, :updated_at)
		`
		if _, err := q.NamedExecContext(ctx, query, inv); err != nil {
			return wrapWriteError(err, "invoice", inv.ID)
		}

		for i, p := range inv.Performances {
			_, err := q.ExecContext(ctx,
				`INSERT INTO performances (invoice_id, position, play_id, audience) VALUES ($1, $2, $3, $4)`,
				inv.ID, i, p.PlayID, p.Audience,
			)
			if err != nil {
				return ierr.WithError(err).
					WithHintf("Failed to store performance %d of invoice %s", i, inv.ID).
					Mark(ierr.ErrDatabase)
			}
		}

		r.logger.Debugw("created invoice",
			"invoice_id", inv.ID,
			"performances", len(inv.Performances),
		)
		return nil
	})
}

func (r *invoiceRepository) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	query := `SELECT id, customer, created_at, updated_at FROM invoices WHERE id = $1`

	var inv invoice.Invoice
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &inv, query, id); err != nil {
		return nil, wrapReadError(err, "invoice", id)
	}

	if err := r.attachPerformances(ctx, []*invoice.Invoice{&inv}); err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *invoiceRepository) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	if filter == nil {
		filter = &types.InvoiceFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []interface{}
	)
	if len(filter.InvoiceIDs) > 0 {
		conditions = append(conditions, "id = ANY(?)")
		args = append(args, pq.Array(filter.InvoiceIDs))
	}
	if filter.Customer != "" {
		conditions = append(conditions, "customer = ?")
		args = append(args, filter.Customer)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, customer, created_at, updated_at FROM invoices`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY created_at, id")
	args = appendPage(&sb, args, filter.QueryFilter)

	q := r.db.GetQuerier(ctx)
	invoices := []*invoice.Invoice{}
	if err := q.SelectContext(ctx, &invoices, q.Rebind(sb.String()), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list invoices").
			Mark(ierr.ErrDatabase)
	}

	if err := r.attachPerformances(ctx, invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// attachPerformances loads the performances of every invoice in one query, keeping position order
func (r *invoiceRepository) attachPerformances(ctx context.Context, invoices []*invoice.Invoice) error {
	if len(invoices) == 0 {
		return nil
	}

	ids := lo.Map(invoices, func(inv *invoice.Invoice, _ int) string { return inv.ID })
	query := `
	SELECT invoice_id, position, play_id, audience
	FROM performances
	WHERE invoice_id = ANY($1)
	ORDER BY invoice_id, position
	`

	var rows []performanceRow
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &rows, query, pq.Array(ids)); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to load performances").
			Mark(ierr.ErrDatabase)
	}

	byInvoice := lo.GroupBy(rows, func(row performanceRow) string { return row.InvoiceID })
	for _, inv := range invoices {
		inv.Performances = lo.Map(byInvoice[inv.ID], func(row performanceRow, _ int) *invoice.Performance {
			perf := row.Performance
			return &perf
		})
	}
	return nil
}

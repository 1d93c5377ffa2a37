package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/flexprice/playbill/internal/domain/play"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/logger"
	"github.com/flexprice/playbill/internal/postgres"
	"github.com/flexprice/playbill/internal/types"
	"github.com/lib/pq"
)

type playRepository struct {
	db     *postgres.DB
	logger *logger.Logger
}

func NewPlayRepository(db *postgres.DB, logger *logger.Logger) play.Repository {
	return &playRepository{db: db, logger: logger}
}

func (r *playRepository) Create(ctx context.Context, p *play.Play) error {
	query := `
	INSERT INTO plays (id, name, type, created_at, updated_at)
	VALUES (:id, :name, :type, :created_at, :updated_at)
	`

	if _, err := r.db.GetQuerier(ctx).NamedExecContext(ctx, query, p); err != nil {
		return wrapWriteError(err, "play", p.ID)
	}
	return nil
}

func (r *playRepository) Get(ctx context.Context, id string) (*play.Play, error) {
	query := `SELECT id, name, type, created_at, updated_at FROM plays WHERE id = $1`

	var p play.Play
	if err := r.db.GetQuerier(ctx).GetContext(ctx, &p, query, id); err != nil {
		return nil, wrapReadError(err, "play", id)
	}
	return &p, nil
}

func (r *playRepository) List(ctx context.Context, filter *types.PlayFilter) ([]*play.Play, error) {
	if filter == nil {
		filter = &types.PlayFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []interface{}
	)
	if len(filter.PlayIDs) > 0 {
		conditions = append(conditions, "id = ANY(?)")
		args = append(args, pq.Array(filter.PlayIDs))
	}
	if filter.Type != "" {
		conditions = append(conditions, "type = ?")
		args = append(args, filter.Type)
	}

	var sb strings.Builder
	sb.WriteString(`SELECT id, name, type, created_at, updated_at FROM plays`)
	if len(conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY id")
	args = appendPage(&sb, args, filter.QueryFilter)

	q := r.db.GetQuerier(ctx)
	plays := []*play.Play{}
	if err := q.SelectContext(ctx, &plays, q.Rebind(sb.String()), args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list plays").
			Mark(ierr.ErrDatabase)
	}
	return plays, nil
}

func (r *playRepository) GetByIDs(ctx context.Context, ids []string) ([]*play.Play, error) {
	if len(ids) == 0 {
		return []*play.Play{}, nil
	}
	return r.List(ctx, &types.PlayFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
		PlayIDs:     ids,
	})
}

// appendPage adds LIMIT and OFFSET placeholders for a bounded filter
func appendPage(sb *strings.Builder, args []interface{}, page *types.QueryFilter) []interface{} {
	if page.IsUnlimited() {
		return args
	}
	sb.WriteString(" LIMIT ? OFFSET ?")
	return append(args, page.GetLimit(), page.GetOffset())
}

func wrapReadError(err error, entity, id string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ierr.WithError(err).
			WithHintf("No %s with ID %s", entity, id).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrNotFound)
	}
	return ierr.WithError(err).
		WithHintf("Failed to get %s", entity).
		Mark(ierr.ErrDatabase)
}

// uniqueViolation is the postgres SQLSTATE for duplicate keys
const uniqueViolation = "23505"

func wrapWriteError(err error, entity, id string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ierr.WithError(err).
			WithHintf("A %s with ID %s already exists", entity, id).
			WithReportableDetails(map[string]any{"id": id}).
			Mark(ierr.ErrAlreadyExists)
	}
	return ierr.WithError(err).
		WithHintf("Failed to create %s", entity).
		Mark(ierr.ErrDatabase)
}

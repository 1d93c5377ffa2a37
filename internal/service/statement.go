package service

import (
	"context"
	"runtime"

	"github.com/flexprice/playbill/internal/api/dto"
	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/domain/statement"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/sentry"
	"github.com/flexprice/playbill/internal/types"
	"github.com/sourcegraph/conc/pool"
)

type StatementService interface {
	// GenerateStatement prices every performance of inv against catalog and renders
	// the text statement. On error no text is returned.
	GenerateStatement(ctx context.Context, inv *invoice.Invoice, catalog play.Catalog) (string, error)

	// BuildStatement prices the invoice without rendering it
	BuildStatement(ctx context.Context, inv *invoice.Invoice, catalog play.Catalog) (*statement.Statement, error)

	// GenerateStatements builds statements for several invoices concurrently.
	// Results keep the order of invoices; the first error aborts the batch.
	GenerateStatements(ctx context.Context, invoices []*invoice.Invoice, catalog play.Catalog) ([]*statement.Statement, error)

	// GenerateStatementForInvoice builds the statement of a stored invoice from stored plays
	GenerateStatementForInvoice(ctx context.Context, invoiceID string) (*dto.StatementResponse, error)

	// CreateStatement builds the statement for an invoice and catalog given inline
	CreateStatement(ctx context.Context, req dto.GenerateStatementRequest) (*dto.StatementResponse, error)

	// CreateStatements builds statements for several inline invoices sharing one catalog
	CreateStatements(ctx context.Context, req dto.GenerateStatementsRequest) (*dto.ListStatementsResponse, error)
}

type statementService struct {
	ServiceParams
	plays PlayService
}

func NewStatementService(params ServiceParams) StatementService {
	return &statementService{
		ServiceParams: params,
		plays:         NewPlayService(params),
	}
}

func (s *statementService) GenerateStatement(ctx context.Context, inv *invoice.Invoice, catalog play.Catalog) (string, error) {
	stmt, err := s.BuildStatement(ctx, inv, catalog)
	if err != nil {
		return "", err
	}
	return RenderText(stmt), nil
}

func (s *statementService) BuildStatement(_ context.Context, inv *invoice.Invoice, catalog play.Catalog) (*statement.Statement, error) {
	if inv == nil {
		return nil, ierr.NewError("invoice is required").
			WithHint("An invoice is required to generate a statement").
			Mark(ierr.ErrValidation)
	}

	lines := make([]statement.Line, 0, len(inv.Performances))
	for idx, perf := range inv.Performances {
		if perf == nil {
			return nil, ierr.NewErrorf("performance %d is empty", idx).
				WithHint("Performances must not be empty").
				Mark(ierr.ErrValidation)
		}

		p, err := catalog.Lookup(perf.PlayID)
		if err != nil {
			return nil, err
		}

		amount, err := s.Calculator.Amount(p.Type, perf.Audience)
		if err != nil {
			return nil, err
		}

		credits, err := s.Calculator.VolumeCredits(p.Type, perf.Audience)
		if err != nil {
			return nil, err
		}

		lines = append(lines, statement.Line{
			PlayID:        p.ID,
			PlayName:      p.Name,
			PlayType:      p.Type,
			Audience:      perf.Audience,
			Amount:        amount,
			VolumeCredits: credits,
		})
	}

	return statement.New(inv.ID, inv.Customer, s.currency(), lines), nil
}

func (s *statementService) GenerateStatements(ctx context.Context, invoices []*invoice.Invoice, catalog play.Catalog) ([]*statement.Statement, error) {
	results := make([]*statement.Statement, len(invoices))
	if len(invoices) == 0 {
		return results, nil
	}

	p := pool.New().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(min(len(invoices), runtime.GOMAXPROCS(0)))

	for i, inv := range invoices {
		p.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			stmt, err := s.BuildStatement(ctx, inv, catalog)
			if err != nil {
				return err
			}
			results[i] = stmt
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		s.Logger.Errorw("batch statement generation failed",
			"invoices", len(invoices),
			"error", err,
		)
		return nil, err
	}
	return results, nil
}

func (s *statementService) GenerateStatementForInvoice(ctx context.Context, invoiceID string) (resp *dto.StatementResponse, err error) {
	span, ctx := s.Sentry.StartSpan(ctx, "statement.generate_for_invoice", map[string]interface{}{
		"invoice_id": invoiceID,
	})
	defer func() { sentry.FinishSpan(span, err) }()

	inv, err := s.InvoiceRepo.Get(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.plays.GetCatalog(ctx, inv.PlayIDs())
	if err != nil {
		return nil, err
	}

	stmt, err := s.BuildStatement(ctx, inv, catalog)
	if err != nil {
		s.Logger.Errorw("failed to build statement",
			"invoice_id", invoiceID,
			"request_id", types.GetRequestID(ctx),
			"error", err,
		)
		return nil, err
	}

	s.Logger.Infow("generated statement",
		"invoice_id", invoiceID,
		"total_amount", stmt.TotalAmount,
		"volume_credits", stmt.VolumeCredits,
	)
	return dto.NewStatementResponse(stmt, RenderText(stmt)), nil
}

func (s *statementService) CreateStatement(ctx context.Context, req dto.GenerateStatementRequest) (*dto.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stmt, err := s.BuildStatement(ctx, req.ToInvoice(), req.ToCatalog())
	if err != nil {
		return nil, err
	}
	return dto.NewStatementResponse(stmt, RenderText(stmt)), nil
}

func (s *statementService) CreateStatements(ctx context.Context, req dto.GenerateStatementsRequest) (*dto.ListStatementsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	stmts, err := s.GenerateStatements(ctx, req.ToInvoices(), req.ToCatalog())
	if err != nil {
		return nil, err
	}

	resp := &dto.ListStatementsResponse{Items: make([]*dto.StatementResponse, 0, len(stmts))}
	for _, stmt := range stmts {
		resp.Items = append(resp.Items, dto.NewStatementResponse(stmt, RenderText(stmt)))
	}
	return resp, nil
}

func (s *statementService) currency() string {
	if s.Config != nil && s.Config.Pricing.Currency != "" {
		return s.Config.Pricing.Currency
	}
	return types.DefaultCurrency
}

package dto

import (
	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/domain/statement"
	"github.com/flexprice/playbill/internal/types"
	"github.com/flexprice/playbill/internal/validator"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// GenerateStatementRequest carries an invoice and the catalog to price it against
type GenerateStatementRequest struct {
	Invoice CreateInvoiceRequest `json:"invoice" validate:"required"`
	Plays   map[string]PlayInput `json:"plays" validate:"required,dive"`
}

// Validate checks request shape only. Audiences and play types are checked
// while the statement is built.
func (r *GenerateStatementRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *GenerateStatementRequest) ToInvoice() *invoice.Invoice {
	return r.Invoice.ToInvoice()
}

func (r *GenerateStatementRequest) ToCatalog() play.Catalog {
	catalog := make(play.Catalog, len(r.Plays))
	for id, p := range r.Plays {
		catalog[id] = &play.Play{ID: id, Name: p.Name, Type: p.Type}
	}
	return catalog
}

type StatementLineResponse struct {
	PlayID        string          `json:"play_id"`
	PlayName      string          `json:"play_name"`
	PlayType      types.PlayType  `json:"play_type"`
	Audience      int             `json:"audience"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	VolumeCredits int             `json:"volume_credits"`
}

type StatementResponse struct {
	InvoiceID          string                   `json:"invoice_id,omitempty"`
	Customer           string                   `json:"customer"`
	Currency           string                   `json:"currency"`
	Lines              []*StatementLineResponse `json:"lines"`
	TotalAmount        decimal.Decimal          `json:"total_amount"`
	TotalAmountDisplay string                   `json:"total_amount_display"`
	VolumeCredits      int                      `json:"volume_credits"`
	Text               string                   `json:"text"`
}

// NewStatementResponse converts a statement and its rendered text. Amounts are in major units.
func NewStatementResponse(s *statement.Statement, text string) *StatementResponse {
	return &StatementResponse{
		InvoiceID: s.InvoiceID,
		Customer:  s.Customer,
		Currency:  s.Currency,
		Lines: lo.Map(s.Lines, func(l statement.Line, _ int) *StatementLineResponse {
			return &StatementLineResponse{
				PlayID:        l.PlayID,
				PlayName:      l.PlayName,
				PlayType:      l.PlayType,
				Audience:      l.Audience,
				Amount:        types.MinorToMajor(l.Amount, s.Currency),
				AmountDisplay: l.FormattedAmount(s.Currency),
				VolumeCredits: l.VolumeCredits,
			}
		}),
		TotalAmount:        types.MinorToMajor(s.TotalAmount, s.Currency),
		TotalAmountDisplay: s.FormattedTotal(),
		VolumeCredits:      s.VolumeCredits,
		Text:               text,
	}
}

// GenerateStatementsRequest prices several invoices against one shared catalog
type GenerateStatementsRequest struct {
	Invoices []CreateInvoiceRequest `json:"invoices" validate:"required,min=1,dive"`
	Plays    map[string]PlayInput   `json:"plays" validate:"required,dive"`
}

func (r *GenerateStatementsRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *GenerateStatementsRequest) ToInvoices() []*invoice.Invoice {
	return lo.Map(r.Invoices, func(req CreateInvoiceRequest, _ int) *invoice.Invoice {
		return req.ToInvoice()
	})
}

func (r *GenerateStatementsRequest) ToCatalog() play.Catalog {
	return (&GenerateStatementRequest{Plays: r.Plays}).ToCatalog()
}

// ListStatementsResponse holds statements in the order their invoices were given
type ListStatementsResponse struct {
	Items []*StatementResponse `json:"items"`
}

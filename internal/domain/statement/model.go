package statement

import (
	"github.com/flexprice/playbill/internal/types"
	"github.com/samber/lo"
)

// Statement is the computed bill for one invoice.
// Amounts are in minor currency units.
type Statement struct {
	InvoiceID     string
	Customer      string
	Currency      string
	Lines         []Line
	TotalAmount   int64
	VolumeCredits int
}

// Line is the priced result of one performance
type Line struct {
	PlayID        string
	PlayName      string
	PlayType      types.PlayType
	Audience      int
	Amount        int64
	VolumeCredits int
}

// New builds a statement from priced lines and computes both totals
func New(invoiceID, customer, currency string, lines []Line) *Statement {
	return &Statement{
		InvoiceID: invoiceID,
		Customer:  customer,
		Currency:  currency,
		Lines:     lines,
		TotalAmount: lo.SumBy(lines, func(l Line) int64 {
			return l.Amount
		}),
		VolumeCredits: lo.SumBy(lines, func(l Line) int {
			return l.VolumeCredits
		}),
	}
}

// FormattedTotal returns the total amount owed as display currency
func (s *Statement) FormattedTotal() string {
	return types.FormatCurrency(s.TotalAmount, s.Currency)
}

// FormattedAmount returns the line amount as display currency
func (l Line) FormattedAmount(currency string) string {
	return types.FormatCurrency(l.Amount, currency)
}

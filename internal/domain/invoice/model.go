package invoice

import (
	"time"

	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/validator"
	"github.com/samber/lo"
)

// Invoice is a customer's bill for a list of performances.
// Performance order is the order lines appear on the statement.
type Invoice struct {
	ID           string         `db:"id" json:"id"`
	Customer     string         `db:"customer" json:"customer" validate:"required"`
	Performances []*Performance `db:"-" json:"performances" validate:"dive,required"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

// Performance is one staging of a play on an invoice
type Performance struct {
	PlayID   string `db:"play_id" json:"playID" validate:"required"`
	Audience int    `db:"audience" json:"audience"`
}

// Validate checks the invoice shape and that no audience is negative
func (i *Invoice) Validate() error {
	if err := validator.ValidateRequest(i); err != nil {
		return err
	}
	for idx, p := range i.Performances {
		if err := p.Validate(); err != nil {
			return ierr.WithError(err).
				WithMessagef("performance %d", idx).
				Error()
		}
	}
	return nil
}

// Validate rejects negative audiences. Zero is a valid audience.
func (p *Performance) Validate() error {
	if p.Audience < 0 {
		return ierr.NewError("audience must not be negative").
			WithHintf("Invalid audience %d for play %s", p.Audience, p.PlayID).
			WithReportableDetails(map[string]any{
				"play_id":  p.PlayID,
				"audience": p.Audience,
			}).
			Mark(ierr.ErrInvalidAudience)
	}
	return nil
}

// PlayIDs returns the distinct play IDs referenced by the invoice, in first-seen order
func (i *Invoice) PlayIDs() []string {
	return lo.Uniq(lo.Map(i.Performances, func(p *Performance, _ int) string {
		return p.PlayID
	}))
}

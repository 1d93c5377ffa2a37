package play

import (
	"time"

	"github.com/flexprice/playbill/internal/types"
	"github.com/flexprice/playbill/internal/validator"
)

// Play is catalog reference data. It is never mutated by statement generation.
type Play struct {
	ID        string         `db:"id" json:"id" validate:"required"`
	Name      string         `db:"name" json:"name" validate:"required"`
	Type      types.PlayType `db:"type" json:"type" validate:"required"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt time.Time      `db:"updated_at" json:"updated_at"`
}

// Validate checks the struct tags only. An unrecognised Type is left to the
// pricing step so that it surfaces as an unknown play type.
func (p *Play) Validate() error {
	return validator.ValidateRequest(p)
}

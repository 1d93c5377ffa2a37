package dto

import (
	"time"

	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/types"
	"github.com/flexprice/playbill/internal/validator"
)

type CreatePlayRequest struct {
	// ID is optional; a prefixed ULID is generated when empty
	ID   string         `json:"id,omitempty" validate:"omitempty,max=50"`
	Name string         `json:"name" validate:"required"`
	Type types.PlayType `json:"type" validate:"required"`
}

// Validate rejects unknown play types at creation so stored catalogs stay priceable
func (r *CreatePlayRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.Type.Validate()
}

func (r *CreatePlayRequest) ToPlay() *play.Play {
	id := r.ID
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PLAY)
	}
	now := time.Now().UTC()
	return &play.Play{
		ID:        id,
		Name:      r.Name,
		Type:      r.Type,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PlayInput is a catalog entry supplied inline with a statement request.
// Its type is not checked here; an unknown type fails at pricing.
type PlayInput struct {
	Name string         `json:"name" validate:"required"`
	Type types.PlayType `json:"type" validate:"required"`
}

type PlayResponse struct {
	*play.Play
}

type ListPlaysResponse = types.ListResponse[*PlayResponse]

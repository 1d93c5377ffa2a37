package play

import (
	"context"

	"github.com/flexprice/playbill/internal/types"
)

// Repository defines the interface for play persistence operations
type Repository interface {
	// Create stores a new play
	Create(ctx context.Context, p *Play) error

	// Get retrieves a play by ID
	Get(ctx context.Context, id string) (*Play, error)

	// List retrieves plays matching the filter
	List(ctx context.Context, filter *types.PlayFilter) ([]*Play, error)

	// GetByIDs retrieves the plays with the given IDs. Missing IDs are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]*Play, error)
}

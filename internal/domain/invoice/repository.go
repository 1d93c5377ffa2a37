package invoice

import (
	"context"

	"github.com/flexprice/playbill/internal/types"
)

// Repository defines the interface for invoice persistence operations
type Repository interface {
	// Create creates a new invoice along with its performances
	Create(ctx context.Context, inv *Invoice) error

	// Get retrieves an invoice by ID with its performances in order
	Get(ctx context.Context, id string) (*Invoice, error)

	// List retrieves invoices based on filter criteria
	List(ctx context.Context, filter *types.InvoiceFilter) ([]*Invoice, error)
}

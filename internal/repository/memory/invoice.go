package memory

import (
	"context"

	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/types"
	"github.com/samber/lo"
)

// InvoiceStore is the in-memory invoice.Repository
type InvoiceStore struct {
	*Store[*invoice.Invoice]
}

func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{Store: NewStore[*invoice.Invoice]("invoice")}
}

func (s *InvoiceStore) Create(ctx context.Context, inv *invoice.Invoice) error {
	return s.Store.Create(ctx, inv.ID, copyInvoice(inv))
}

func (s *InvoiceStore) Get(ctx context.Context, id string) (*invoice.Invoice, error) {
	inv, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return copyInvoice(inv), nil
}

func (s *InvoiceStore) List(ctx context.Context, filter *types.InvoiceFilter) ([]*invoice.Invoice, error) {
	if filter == nil {
		filter = &types.InvoiceFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items := s.Store.List(ctx, filter.QueryFilter, func(_ context.Context, inv *invoice.Invoice) bool {
		if len(filter.InvoiceIDs) > 0 && !lo.Contains(filter.InvoiceIDs, inv.ID) {
			return false
		}
		return filter.Customer == "" || inv.Customer == filter.Customer
	}, func(a, b *invoice.Invoice) bool {
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	return lo.Map(items, func(inv *invoice.Invoice, _ int) *invoice.Invoice {
		return copyInvoice(inv)
	}), nil
}

// copyInvoice detaches the stored invoice and its performances from the caller's
func copyInvoice(inv *invoice.Invoice) *invoice.Invoice {
	copied := *inv
	copied.Performances = lo.Map(inv.Performances, func(p *invoice.Performance, _ int) *invoice.Performance {
		perf := *p
		return &perf
	})
	return &copied
}

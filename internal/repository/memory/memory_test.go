package memory

import (
	"context"
	"testing"
	"time"

	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/domain/play"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx      context.Context
	plays    *PlayStore
	invoices *InvoiceStore
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.plays = NewPlayStore()
	s.invoices = NewInvoiceStore()

	for _, p := range []*play.Play{
		{ID: "hamlet", Name: "Hamlet", Type: types.PlayTypeTragedy},
		{ID: "as-like", Name: "As You Like It", Type: types.PlayTypeComedy},
		{ID: "othello", Name: "Othello", Type: types.PlayTypeTragedy},
	} {
		s.Require().NoError(s.plays.Create(s.ctx, p))
	}
}

func (s *MemoryStoreSuite) TestPlayCreateDuplicate() {
	err := s.plays.Create(s.ctx, &play.Play{ID: "hamlet", Name: "Hamlet", Type: types.PlayTypeTragedy})
	s.Require().Error(err)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *MemoryStoreSuite) TestPlayGet() {
	p, err := s.plays.Get(s.ctx, "hamlet")
	s.Require().NoError(err)
	s.Equal("Hamlet", p.Name)

	p.Name = "changed"
	again, err := s.plays.Get(s.ctx, "hamlet")
	s.Require().NoError(err)
	s.Equal("Hamlet", again.Name)

	_, err = s.plays.Get(s.ctx, "macbeth")
	s.True(ierr.IsNotFound(err))
}

func (s *MemoryStoreSuite) TestPlayList() {
	tests := []struct {
		name   string
		filter *types.PlayFilter
		want   []string
	}{
		{
			name:   "nil filter returns all ordered by id",
			filter: nil,
			want:   []string{"as-like", "hamlet", "othello"},
		},
		{
			name:   "by type",
			filter: &types.PlayFilter{Type: types.PlayTypeTragedy},
			want:   []string{"hamlet", "othello"},
		},
		{
			name: "paged",
			filter: &types.PlayFilter{QueryFilter: &types.QueryFilter{
				Limit:  lo.ToPtr(1),
				Offset: lo.ToPtr(1),
			}},
			want: []string{"hamlet"},
		},
		{
			name: "offset past end",
			filter: &types.PlayFilter{QueryFilter: &types.QueryFilter{
				Limit:  lo.ToPtr(10),
				Offset: lo.ToPtr(10),
			}},
			want: []string{},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, err := s.plays.List(s.ctx, tt.filter)
			s.Require().NoError(err)
			s.Equal(tt.want, lo.Map(got, func(p *play.Play, _ int) string { return p.ID }))
		})
	}
}

func (s *MemoryStoreSuite) TestPlayListRejectsUnknownType() {
	_, err := s.plays.List(s.ctx, &types.PlayFilter{Type: "history"})
	s.True(ierr.IsUnknownPlayType(err))
}

func (s *MemoryStoreSuite) TestPlayGetByIDsSkipsMissing() {
	got, err := s.plays.GetByIDs(s.ctx, []string{"othello", "macbeth", "hamlet"})
	s.Require().NoError(err)
	s.ElementsMatch([]string{"hamlet", "othello"}, lo.Map(got, func(p *play.Play, _ int) string { return p.ID }))

	empty, err := s.plays.GetByIDs(s.ctx, nil)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *MemoryStoreSuite) TestInvoiceRoundTripKeepsOrder() {
	now := time.Now().UTC()
	inv := &invoice.Invoice{
		ID:       "inv_1",
		Customer: "BigCo",
		Performances: []*invoice.Performance{
			{PlayID: "othello", Audience: 40},
			{PlayID: "hamlet", Audience: 55},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.invoices.Create(s.ctx, inv))

	inv.Performances[0].Audience = 1

	got, err := s.invoices.Get(s.ctx, "inv_1")
	s.Require().NoError(err)
	s.Equal("BigCo", got.Customer)
	s.Require().Len(got.Performances, 2)
	s.Equal("othello", got.Performances[0].PlayID)
	s.Equal(40, got.Performances[0].Audience)
	s.Equal("hamlet", got.Performances[1].PlayID)
}

func (s *MemoryStoreSuite) TestInvoiceListByCustomer() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, customer := range []string{"BigCo", "SmallCo", "BigCo"} {
		s.Require().NoError(s.invoices.Create(s.ctx, &invoice.Invoice{
			ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
			Customer:  customer,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := s.invoices.List(s.ctx, &types.InvoiceFilter{Customer: "BigCo"})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.True(got[0].CreatedAt.Before(got[1].CreatedAt))

	_, err = s.invoices.Get(s.ctx, "inv_missing")
	s.True(ierr.IsNotFound(err))
}

func TestStoreClear(t *testing.T) {
	store := NewStore[int]("number")
	require.NoError(t, store.Create(context.Background(), "one", 1))
	store.Clear()

	_, err := store.Get(context.Background(), "one")
	assert.True(t, ierr.IsNotFound(err))
}

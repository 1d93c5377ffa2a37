package memory

import (
	"context"

	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/types"
	"github.com/samber/lo"
)

// PlayStore is the in-memory play.Repository
type PlayStore struct {
	*Store[*play.Play]
}

func NewPlayStore() *PlayStore {
	return &PlayStore{Store: NewStore[*play.Play]("play")}
}

func (s *PlayStore) Create(ctx context.Context, p *play.Play) error {
	stored := *p
	return s.Store.Create(ctx, p.ID, &stored)
}

func (s *PlayStore) Get(ctx context.Context, id string) (*play.Play, error) {
	p, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	copied := *p
	return &copied, nil
}

func (s *PlayStore) List(ctx context.Context, filter *types.PlayFilter) ([]*play.Play, error) {
	if filter == nil {
		filter = &types.PlayFilter{}
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	items := s.Store.List(ctx, filter.QueryFilter, func(_ context.Context, p *play.Play) bool {
		if len(filter.PlayIDs) > 0 && !lo.Contains(filter.PlayIDs, p.ID) {
			return false
		}
		return filter.Type == "" || p.Type == filter.Type
	}, func(a, b *play.Play) bool {
		return a.ID < b.ID
	})
	return copyPlays(items), nil
}

func (s *PlayStore) GetByIDs(ctx context.Context, ids []string) ([]*play.Play, error) {
	if len(ids) == 0 {
		return []*play.Play{}, nil
	}
	return s.List(ctx, &types.PlayFilter{
		QueryFilter: types.NewNoLimitQueryFilter(),
		PlayIDs:     ids,
	})
}

func copyPlays(items []*play.Play) []*play.Play {
	return lo.Map(items, func(p *play.Play, _ int) *play.Play {
		copied := *p
		return &copied
	})
}

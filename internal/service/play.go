package service

import (
	"context"

	"github.com/flexprice/playbill/internal/api/dto"
	"github.com/flexprice/playbill/internal/cache"
	"github.com/flexprice/playbill/internal/domain/play"
	"github.com/flexprice/playbill/internal/types"
	"github.com/samber/lo"
)

type PlayService interface {
	CreatePlay(ctx context.Context, req dto.CreatePlayRequest) (*dto.PlayResponse, error)
	GetPlay(ctx context.Context, id string) (*dto.PlayResponse, error)
	ListPlays(ctx context.Context, filter *types.PlayFilter) (*dto.ListPlaysResponse, error)

	// GetCatalog returns the stored plays with the given IDs, served from the cache
	// where possible. IDs with no stored play are absent from the catalog.
	GetCatalog(ctx context.Context, ids []string) (play.Catalog, error)
}

type playService struct {
	ServiceParams
}

func NewPlayService(params ServiceParams) PlayService {
	return &playService{ServiceParams: params}
}

func (s *playService) CreatePlay(ctx context.Context, req dto.CreatePlayRequest) (*dto.PlayResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToPlay()
	if err := s.PlayRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Cache.Set(ctx, cache.GenerateKey(cache.PrefixPlay, p.ID), p, 0)
	s.Logger.Infow("created play",
		"play_id", p.ID,
		"type", p.Type,
		"request_id", types.GetRequestID(ctx),
	)
	return &dto.PlayResponse{Play: p}, nil
}

func (s *playService) GetPlay(ctx context.Context, id string) (*dto.PlayResponse, error) {
	catalog, err := s.GetCatalog(ctx, []string{id})
	if err != nil {
		return nil, err
	}

	if p, ok := catalog[id]; ok {
		return &dto.PlayResponse{Play: p}, nil
	}

	// go through the repository for a not found error
	p, err := s.PlayRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.PlayResponse{Play: p}, nil
}

func (s *playService) ListPlays(ctx context.Context, filter *types.PlayFilter) (*dto.ListPlaysResponse, error) {
	if filter == nil {
		filter = &types.PlayFilter{QueryFilter: types.NewDefaultQueryFilter()}
	}

	plays, err := s.PlayRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := lo.Map(plays, func(p *play.Play, _ int) *dto.PlayResponse {
		return &dto.PlayResponse{Play: p}
	})
	resp := types.NewListResponse(items, filter.QueryFilter)
	return &resp, nil
}

func (s *playService) GetCatalog(ctx context.Context, ids []string) (play.Catalog, error) {
	ids = lo.Uniq(ids)

	var (
		found  []*play.Play
		misses []string
	)
	for _, id := range ids {
		if cached, ok := s.Cache.Get(ctx, cache.GenerateKey(cache.PrefixPlay, id)); ok {
			if p, ok := cached.(*play.Play); ok {
				found = append(found, p)
				continue
			}
		}
		misses = append(misses, id)
	}

	if len(misses) > 0 {
		loaded, err := s.PlayRepo.GetByIDs(ctx, misses)
		if err != nil {
			return nil, err
		}
		for _, p := range loaded {
			s.Cache.Set(ctx, cache.GenerateKey(cache.PrefixPlay, p.ID), p, 0)
		}
		found = append(found, loaded...)
	}

	s.Logger.Debugw("resolved play catalog",
		"requested", len(ids),
		"cache_misses", len(misses),
		"found", len(found),
	)
	return play.NewCatalog(found...), nil
}

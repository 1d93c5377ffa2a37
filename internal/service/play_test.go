package service

import (
	"strings"
	"testing"

	"github.com/flexprice/playbill/internal/api/dto"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/testutil"
	"github.com/flexprice/playbill/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type PlayServiceSuite struct {
	testutil.BaseServiceTestSuite
	service PlayService
}

func TestPlayService(t *testing.T) {
	suite.Run(t, new(PlayServiceSuite))
}

func (s *PlayServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewPlayService(ServiceParams{
		Logger:   s.GetLogger(),
		Config:   s.GetConfig(),
		Cache:    s.GetCache(),
		PlayRepo: s.GetStores().PlayRepo,
	})
}

func (s *PlayServiceSuite) TestCreatePlay() {
	tests := []struct {
		name    string
		req     dto.CreatePlayRequest
		wantErr func(error) bool
	}{
		{
			name: "with id",
			req:  dto.CreatePlayRequest{ID: "hamlet", Name: "Hamlet", Type: types.PlayTypeTragedy},
		},
		{
			name: "generated id",
			req:  dto.CreatePlayRequest{Name: "Twelfth Night", Type: types.PlayTypeComedy},
		},
		{
			name:    "missing name",
			req:     dto.CreatePlayRequest{ID: "x", Type: types.PlayTypeComedy},
			wantErr: ierr.IsValidation,
		},
		{
			name:    "unknown type",
			req:     dto.CreatePlayRequest{ID: "henry-v", Name: "Henry V", Type: "history"},
			wantErr: ierr.IsUnknownPlayType,
		},
		{
			name:    "case sensitive type",
			req:     dto.CreatePlayRequest{ID: "macbeth", Name: "Macbeth", Type: "Tragedy"},
			wantErr: ierr.IsUnknownPlayType,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			resp, err := s.service.CreatePlay(s.GetContext(), tt.req)
			if tt.wantErr != nil {
				s.Require().Error(err)
				s.True(tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tt.req.Name, resp.Name)
			if tt.req.ID == "" {
				s.True(strings.HasPrefix(resp.ID, types.UUID_PREFIX_PLAY+"_"))
			}
		})
	}
}

func (s *PlayServiceSuite) TestCreateDuplicatePlay() {
	req := dto.CreatePlayRequest{ID: "hamlet", Name: "Hamlet", Type: types.PlayTypeTragedy}
	_, err := s.service.CreatePlay(s.GetContext(), req)
	s.Require().NoError(err)

	_, err = s.service.CreatePlay(s.GetContext(), req)
	s.True(ierr.IsAlreadyExists(err))
}

func (s *PlayServiceSuite) TestGetPlay() {
	s.SeedPlays()

	resp, err := s.service.GetPlay(s.GetContext(), "hamlet")
	s.Require().NoError(err)
	s.Equal("Hamlet", resp.Name)

	_, err = s.service.GetPlay(s.GetContext(), "macbeth")
	s.True(ierr.IsNotFound(err))
}

func (s *PlayServiceSuite) TestListPlays() {
	s.SeedPlays()

	resp, err := s.service.ListPlays(s.GetContext(), &types.PlayFilter{Type: types.PlayTypeTragedy})
	s.Require().NoError(err)
	s.Equal([]string{"hamlet", "othello"}, lo.Map(resp.Items, func(p *dto.PlayResponse, _ int) string { return p.ID }))
	s.Equal(2, resp.Pagination.Count)

	resp, err = s.service.ListPlays(s.GetContext(), nil)
	s.Require().NoError(err)
	s.Len(resp.Items, 3)
	s.Equal(types.FILTER_DEFAULT_LIMIT, resp.Pagination.Limit)
}

func (s *PlayServiceSuite) TestGetCatalog() {
	s.SeedPlays()

	catalog, err := s.service.GetCatalog(s.GetContext(), []string{"hamlet", "hamlet", "macbeth"})
	s.Require().NoError(err)
	s.Len(catalog, 1)

	_, err = catalog.Lookup("macbeth")
	s.True(ierr.IsUnknownPlay(err))

	// a second lookup is answered by the cache
	s.GetStores().PlayRepo.Clear()
	catalog, err = s.service.GetCatalog(s.GetContext(), []string{"hamlet"})
	s.Require().NoError(err)
	s.Contains(catalog, "hamlet")
}

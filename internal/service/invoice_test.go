package service

import (
	"testing"

	"github.com/flexprice/playbill/internal/api/dto"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/testutil"
	"github.com/flexprice/playbill/internal/types"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceSuite struct {
	testutil.BaseServiceTestSuite
	service InvoiceService
}

func TestInvoiceService(t *testing.T) {
	suite.Run(t, new(InvoiceServiceSuite))
}

func (s *InvoiceServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.service = NewInvoiceService(ServiceParams{
		Logger:      s.GetLogger(),
		Config:      s.GetConfig(),
		InvoiceRepo: s.GetStores().InvoiceRepo,
	})
}

func (s *InvoiceServiceSuite) TestCreateAndGetInvoice() {
	resp, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{
		Customer: "BigCo",
		Performances: []dto.PerformanceInput{
			{PlayID: "hamlet", Audience: 55},
			{PlayID: "as-like", Audience: 0},
		},
	})
	s.Require().NoError(err)
	s.NotEmpty(resp.ID)

	got, err := s.service.GetInvoice(s.GetContext(), resp.ID)
	s.Require().NoError(err)
	s.Equal("BigCo", got.Customer)
	s.Require().Len(got.Performances, 2)
	s.Equal("as-like", got.Performances[1].PlayID)
}

func (s *InvoiceServiceSuite) TestCreateInvoiceValidation() {
	tests := []struct {
		name  string
		req   dto.CreateInvoiceRequest
		check func(error) bool
	}{
		{
			name:  "missing customer",
			req:   dto.CreateInvoiceRequest{Performances: []dto.PerformanceInput{{PlayID: "hamlet", Audience: 1}}},
			check: ierr.IsValidation,
		},
		{
			name:  "missing play id",
			req:   dto.CreateInvoiceRequest{Customer: "BigCo", Performances: []dto.PerformanceInput{{Audience: 1}}},
			check: ierr.IsValidation,
		},
		{
			name:  "negative audience",
			req:   dto.CreateInvoiceRequest{Customer: "BigCo", Performances: []dto.PerformanceInput{{PlayID: "hamlet", Audience: -5}}},
			check: ierr.IsInvalidAudience,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.CreateInvoice(s.GetContext(), tt.req)
			s.Require().Error(err)
			s.True(tt.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *InvoiceServiceSuite) TestListInvoices() {
	for _, customer := range []string{"BigCo", "SmallCo", "BigCo"} {
		_, err := s.service.CreateInvoice(s.GetContext(), dto.CreateInvoiceRequest{Customer: customer})
		s.Require().NoError(err)
	}

	resp, err := s.service.ListInvoices(s.GetContext(), &types.InvoiceFilter{Customer: "BigCo"})
	s.Require().NoError(err)
	s.Len(resp.Items, 2)

	_, err = s.service.GetInvoice(s.GetContext(), "inv_missing")
	s.True(ierr.IsNotFound(err))
}

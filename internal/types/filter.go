package types

import (
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/samber/lo"
)

const (
	FILTER_DEFAULT_LIMIT = 50
	FILTER_MAX_LIMIT     = 1000
)

// QueryFilter represents a generic pagination filter with optional fields
type QueryFilter struct {
	Limit  *int `json:"limit,omitempty" form:"limit" validate:"omitempty,min=1,max=1000"`
	Offset *int `json:"offset,omitempty" form:"offset" validate:"omitempty,min=0"`
}

// NewDefaultQueryFilter returns a filter with the default page size
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FILTER_DEFAULT_LIMIT),
		Offset: lo.ToPtr(0),
	}
}

// NewNoLimitQueryFilter returns a filter with no pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{}
}

// GetLimit returns the limit value or the default if not set
func (f *QueryFilter) GetLimit() int {
	if f == nil || f.Limit == nil {
		return FILTER_DEFAULT_LIMIT
	}
	return *f.Limit
}

// GetOffset returns the offset value or 0 if not set
func (f *QueryFilter) GetOffset() int {
	if f == nil || f.Offset == nil {
		return 0
	}
	return *f.Offset
}

// IsUnlimited reports whether the filter should return every row
func (f *QueryFilter) IsUnlimited() bool {
	return f == nil || f.Limit == nil
}

func (f *QueryFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FILTER_MAX_LIMIT) {
		return ierr.NewError("invalid limit").
			WithHintf("Limit must be between 1 and %d", FILTER_MAX_LIMIT).
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("invalid offset").
			WithHint("Offset must not be negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// PlayFilter narrows play listings
type PlayFilter struct {
	*QueryFilter
	PlayIDs []string `json:"play_ids,omitempty" form:"play_ids"`
	Type    PlayType `json:"type,omitempty" form:"type"`
}

func (f *PlayFilter) Validate() error {
	if f == nil {
		return nil
	}
	if f.Type != "" {
		if err := f.Type.Validate(); err != nil {
			return err
		}
	}
	return f.QueryFilter.Validate()
}

// InvoiceFilter narrows invoice listings
type InvoiceFilter struct {
	*QueryFilter
	InvoiceIDs []string `json:"invoice_ids,omitempty" form:"invoice_ids"`
	Customer   string   `json:"customer,omitempty" form:"customer"`
}

func (f *InvoiceFilter) Validate() error {
	if f == nil {
		return nil
	}
	return f.QueryFilter.Validate()
}

package dto

import (
	"time"

	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/types"
	"github.com/flexprice/playbill/internal/validator"
	"github.com/samber/lo"
)

type PerformanceInput struct {
	PlayID   string `json:"playID" validate:"required"`
	Audience int    `json:"audience"`
}

type CreateInvoiceRequest struct {
	ID           string             `json:"id,omitempty" validate:"omitempty,max=50"`
	Customer     string             `json:"customer" validate:"required"`
	Performances []PerformanceInput `json:"performances" validate:"dive"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}
	return r.toInvoice("").Validate()
}

// ToInvoice builds the domain invoice, generating an ID when none was given
func (r *CreateInvoiceRequest) ToInvoice() *invoice.Invoice {
	id := r.ID
	if id == "" {
		id = types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE)
	}
	return r.toInvoice(id)
}

func (r *CreateInvoiceRequest) toInvoice(id string) *invoice.Invoice {
	now := time.Now().UTC()
	return &invoice.Invoice{
		ID:       id,
		Customer: r.Customer,
		Performances: lo.Map(r.Performances, func(p PerformanceInput, _ int) *invoice.Performance {
			return &invoice.Performance{PlayID: p.PlayID, Audience: p.Audience}
		}),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type InvoiceResponse struct {
	*invoice.Invoice
}

type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

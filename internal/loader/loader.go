// Package loader reads play catalogs and invoices from the classic JSON fixture format:
//
//	plays.json:    {"hamlet": {"name": "Hamlet", "type": "tragedy"}, ...}
//	invoices.json: [{"customer": "BigCo", "performances": [{"playID": "hamlet", "audience": 55}]}]
//
// invoices.json may also hold a single invoice object.
package loader

import (
	"bytes"
	"io"
	"os"

	"github.com/flexprice/playbill/internal/domain/invoice"
	"github.com/flexprice/playbill/internal/domain/play"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/types"
	"github.com/flexprice/playbill/internal/validator"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type playRecord struct {
	Name string         `json:"name" validate:"required"`
	Type types.PlayType `json:"type" validate:"required"`
}

type invoiceRecord struct {
	Customer     string              `json:"customer" validate:"required"`
	Performances []performanceRecord `json:"performances" validate:"dive"`
}

type performanceRecord struct {
	PlayID   string `json:"playID" validate:"required"`
	Audience int    `json:"audience"`
}

// ReadPlays decodes a play catalog. Play types are not checked here; an unknown
// type is reported when a statement uses the play.
func ReadPlays(r io.Reader) (play.Catalog, error) {
	var records map[string]playRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, decodeError(err, "plays")
	}

	catalog := make(play.Catalog, len(records))
	for id, rec := range records {
		if err := validator.ValidateRequest(rec); err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Invalid play %s", id).
				Mark(ierr.ErrValidation)
		}
		catalog[id] = &play.Play{ID: id, Name: rec.Name, Type: rec.Type}
	}
	return catalog, nil
}

// ReadInvoices decodes either a list of invoices or a single invoice object.
// Invoices get generated IDs; performance order is preserved.
func ReadInvoices(r io.Reader) ([]*invoice.Invoice, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to read invoices").
			Mark(ierr.ErrSystem)
	}

	var records []invoiceRecord
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		var single invoiceRecord
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return nil, decodeError(err, "invoices")
		}
		records = []invoiceRecord{single}
	} else if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, decodeError(err, "invoices")
	}

	invoices := make([]*invoice.Invoice, 0, len(records))
	for idx, rec := range records {
		if err := validator.ValidateRequest(rec); err != nil {
			return nil, ierr.WithError(err).
				WithHintf("Invalid invoice at index %d", idx).
				Mark(ierr.ErrValidation)
		}

		inv := &invoice.Invoice{
			ID:       types.GenerateUUIDWithPrefix(types.UUID_PREFIX_INVOICE),
			Customer: rec.Customer,
			Performances: lo.Map(rec.Performances, func(p performanceRecord, _ int) *invoice.Performance {
				return &invoice.Performance{PlayID: p.PlayID, Audience: p.Audience}
			}),
		}
		if err := inv.Validate(); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// LoadPlays reads a play catalog from a file
func LoadPlays(path string) (play.Catalog, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPlays(f)
}

// LoadInvoices reads invoices from a file
func LoadInvoices(path string) ([]*invoice.Invoice, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadInvoices(f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ierr.WithError(err).
				WithHintf("File %s does not exist", path).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHintf("Failed to open %s", path).
			Mark(ierr.ErrSystem)
	}
	return f, nil
}

func decodeError(err error, what string) error {
	return ierr.WithError(err).
		WithHintf("Malformed %s JSON", what).
		Mark(ierr.ErrValidation)
}

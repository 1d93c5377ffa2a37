package loader

import (
	"path/filepath"
	"strings"
	"testing"

	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixtures(t *testing.T) {
	catalog, err := LoadPlays(filepath.Join("testdata", "plays.json"))
	require.NoError(t, err)
	require.Len(t, catalog, 3)
	assert.Equal(t, "As You Like It", catalog["as-like"].Name)
	assert.Equal(t, types.PlayTypeComedy, catalog["as-like"].Type)
	assert.Equal(t, "as-like", catalog["as-like"].ID)

	invoices, err := LoadInvoices(filepath.Join("testdata", "invoices.json"))
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "BigCo", invoices[0].Customer)
	require.Len(t, invoices[0].Performances, 3)
	assert.Equal(t, "othello", invoices[0].Performances[2].PlayID)
	assert.Equal(t, 40, invoices[0].Performances[2].Audience)
	assert.True(t, strings.HasPrefix(invoices[0].ID, types.UUID_PREFIX_INVOICE+"_"))
}

func TestReadInvoicesSingleObject(t *testing.T) {
	invoices, err := ReadInvoices(strings.NewReader(`  {"customer": "BigCo", "performances": [{"playID": "hamlet", "audience": 0}]}`))
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, 0, invoices[0].Performances[0].Audience)
}

func TestReadPlaysKeepsUnknownTypes(t *testing.T) {
	catalog, err := ReadPlays(strings.NewReader(`{"henry-v": {"name": "Henry V", "type": "history"}}`))
	require.NoError(t, err)
	assert.False(t, catalog["henry-v"].Type.IsKnown())
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		read  func() error
		check func(error) bool
	}{
		{
			name: "malformed plays",
			read: func() error {
				_, err := ReadPlays(strings.NewReader(`{"hamlet":`))
				return err
			},
			check: ierr.IsValidation,
		},
		{
			name: "play without name",
			read: func() error {
				_, err := ReadPlays(strings.NewReader(`{"hamlet": {"type": "tragedy"}}`))
				return err
			},
			check: ierr.IsValidation,
		},
		{
			name: "malformed invoices",
			read: func() error {
				_, err := ReadInvoices(strings.NewReader(`[{"customer": 1}]`))
				return err
			},
			check: ierr.IsValidation,
		},
		{
			name: "performance without play",
			read: func() error {
				_, err := ReadInvoices(strings.NewReader(`[{"customer": "BigCo", "performances": [{"audience": 3}]}]`))
				return err
			},
			check: ierr.IsValidation,
		},
		{
			name: "negative audience",
			read: func() error {
				_, err := ReadInvoices(strings.NewReader(`[{"customer": "BigCo", "performances": [{"playID": "hamlet", "audience": -3}]}]`))
				return err
			},
			check: ierr.IsInvalidAudience,
		},
		{
			name: "missing file",
			read: func() error {
				_, err := LoadPlays(filepath.Join("testdata", "missing.json"))
				return err
			},
			check: ierr.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}
}

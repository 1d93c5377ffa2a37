package types

import (
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/samber/lo"
)

// PlayType is the genre of a play. It drives which pricing rule applies to a performance.
// The set is closed: adding a type means adding a case to every switch over PlayType.
type PlayType string

const (
	PlayTypeTragedy PlayType = "tragedy"
	PlayTypeComedy  PlayType = "comedy"
)

// PlayTypes lists every recognised play type
var PlayTypes = []PlayType{
	PlayTypeTragedy,
	PlayTypeComedy,
}

func (t PlayType) String() string {
	return string(t)
}

// IsKnown reports whether t is one of the recognised play types
func (t PlayType) IsKnown() bool {
	return lo.Contains(PlayTypes, t)
}

func (t PlayType) Validate() error {
	if !t.IsKnown() {
		return NewUnknownPlayTypeError(t)
	}
	return nil
}

// NewUnknownPlayTypeError returns an error marked with ErrUnknownPlayType
func NewUnknownPlayTypeError(t PlayType) error {
	return ierr.NewErrorf("unknown type: %s", string(t)).
		WithHintf("Unknown play type: %s", string(t)).
		WithReportableDetails(map[string]any{
			"type":    string(t),
			"allowed": PlayTypes,
		}).
		Mark(ierr.ErrUnknownPlayType)
}

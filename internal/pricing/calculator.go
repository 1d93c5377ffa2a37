package pricing

import (
	"github.com/flexprice/playbill/internal/config"
	ierr "github.com/flexprice/playbill/internal/errors"
	"github.com/flexprice/playbill/internal/types"
)

// Calculator applies a pricing table to single performances.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	rules Rules
}

// NewCalculator validates the rules and returns a calculator for them
func NewCalculator(rules Rules) (*Calculator, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Calculator{rules: rules}, nil
}

// NewDefaultCalculator returns a calculator for the reference pricing table
func NewDefaultCalculator() *Calculator {
	return &Calculator{rules: DefaultRules()}
}

// NewCalculatorFromConfig builds a calculator from the pricing section of cfg
func NewCalculatorFromConfig(cfg *config.Configuration) (*Calculator, error) {
	return NewCalculator(RulesFromConfig(cfg.Pricing))
}

func (c *Calculator) Rules() Rules {
	return c.rules
}

// Amount returns the price in minor units of one performance of a play of the given type
func (c *Calculator) Amount(playType types.PlayType, audience int) (int64, error) {
	if err := validateAudience(audience); err != nil {
		return 0, err
	}

	switch playType {
	case types.PlayTypeTragedy:
		return c.rules.Tragedy.Amount(audience), nil
	case types.PlayTypeComedy:
		return c.rules.Comedy.Amount(audience), nil
	default:
		return 0, types.NewUnknownPlayTypeError(playType)
	}
}

// VolumeCredits returns the loyalty credits earned by one performance
func (c *Calculator) VolumeCredits(playType types.PlayType, audience int) (int, error) {
	if err := validateAudience(audience); err != nil {
		return 0, err
	}

	credits := c.rules.Credits.Base(audience)

	switch playType {
	case types.PlayTypeComedy:
		credits += c.rules.Credits.ComedyBonus(audience)
	case types.PlayTypeTragedy:
	default:
		return 0, types.NewUnknownPlayTypeError(playType)
	}
	return credits, nil
}

func validateAudience(audience int) error {
	if audience < 0 {
		return ierr.NewError("audience must not be negative").
			WithHintf("Invalid audience: %d", audience).
			WithReportableDetails(map[string]any{
				"audience": audience,
			}).
			Mark(ierr.ErrInvalidAudience)
	}
	return nil
}

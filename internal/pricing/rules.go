package pricing

import (
	"github.com/flexprice/playbill/internal/config"
	ierr "github.com/flexprice/playbill/internal/errors"
)

// TragedyRule prices a tragedy: a flat base plus a per-seat charge above the threshold
type TragedyRule struct {
	BaseAmount           int64
	AudienceThreshold    int
	PerSeatOverThreshold int64
}

// ComedyRule prices a comedy: a flat base, a surcharge plus a per-seat charge above
// the threshold, and a per-seat charge for every attendee
type ComedyRule struct {
	BaseAmount           int64
	AudienceThreshold    int
	OverThresholdFlat    int64
	PerSeatOverThreshold int64
	PerSeat              int64
}

// CreditRule awards one credit per attendee above the threshold,
// plus one per ComedyBonusDivisor attendees for comedies
type CreditRule struct {
	AudienceThreshold  int
	ComedyBonusDivisor int
}

// Rules is the full pricing table. Amounts are in minor currency units.
type Rules struct {
	Tragedy TragedyRule
	Comedy  ComedyRule
	Credits CreditRule
}

// DefaultRules returns the reference pricing table
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultPricingConfig())
}

// RulesFromConfig maps the pricing section of the configuration onto rule tables
func RulesFromConfig(cfg config.PricingConfig) Rules {
	return Rules{
		Tragedy: TragedyRule{
			BaseAmount:           cfg.Tragedy.BaseAmount,
			AudienceThreshold:    cfg.Tragedy.AudienceThreshold,
			PerSeatOverThreshold: cfg.Tragedy.PerSeatOverThreshold,
		},
		Comedy: ComedyRule{
			BaseAmount:           cfg.Comedy.BaseAmount,
			AudienceThreshold:    cfg.Comedy.AudienceThreshold,
			OverThresholdFlat:    cfg.Comedy.OverThresholdFlat,
			PerSeatOverThreshold: cfg.Comedy.PerSeatOverThreshold,
			PerSeat:              cfg.Comedy.PerSeat,
		},
		Credits: CreditRule{
			AudienceThreshold:  cfg.Credits.AudienceThreshold,
			ComedyBonusDivisor: cfg.Credits.ComedyBonusDivisor,
		},
	}
}

func (r Rules) Validate() error {
	details := map[string]any{}

	if r.Tragedy.BaseAmount < 0 || r.Tragedy.PerSeatOverThreshold < 0 {
		details["tragedy"] = "amounts must not be negative"
	}
	if r.Tragedy.AudienceThreshold < 0 {
		details["tragedy.audience_threshold"] = "must not be negative"
	}
	if r.Comedy.BaseAmount < 0 || r.Comedy.OverThresholdFlat < 0 ||
		r.Comedy.PerSeatOverThreshold < 0 || r.Comedy.PerSeat < 0 {
		details["comedy"] = "amounts must not be negative"
	}
	if r.Comedy.AudienceThreshold < 0 {
		details["comedy.audience_threshold"] = "must not be negative"
	}
	if r.Credits.AudienceThreshold < 0 {
		details["credits.audience_threshold"] = "must not be negative"
	}
	if r.Credits.ComedyBonusDivisor <= 0 {
		details["credits.comedy_bonus_divisor"] = "must be positive"
	}

	if len(details) > 0 {
		return ierr.NewError("invalid pricing rules").
			WithHint("Pricing configuration is invalid").
			WithReportableDetails(details).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// Amount returns the tragedy price for the given audience
func (r TragedyRule) Amount(audience int) int64 {
	amount := r.BaseAmount
	if audience > r.AudienceThreshold {
		amount += r.PerSeatOverThreshold * int64(audience-r.AudienceThreshold)
	}
	return amount
}

// Amount returns the comedy price for the given audience
func (r ComedyRule) Amount(audience int) int64 {
	amount := r.BaseAmount
	if audience > r.AudienceThreshold {
		amount += r.OverThresholdFlat + r.PerSeatOverThreshold*int64(audience-r.AudienceThreshold)
	}
	return amount + r.PerSeat*int64(audience)
}

// Base returns the credits every play type earns
func (r CreditRule) Base(audience int) int {
	return max(audience-r.AudienceThreshold, 0)
}

// ComedyBonus returns the extra credits a comedy earns
func (r CreditRule) ComedyBonus(audience int) int {
	return audience / r.ComedyBonusDivisor
}

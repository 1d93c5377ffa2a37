package types

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the only currency statements are billed in
const DefaultCurrency = "usd"

// CurrencyConfig holds the display settings of a currency
type CurrencyConfig struct {
	Symbol    string
	Precision int32
}

// CURRENCY_CONFIG maps lowercase ISO codes to their display settings
// TODO add more currencies once statements are billed outside the US
var CURRENCY_CONFIG = map[string]CurrencyConfig{
	"usd": {Symbol: "$", Precision: 2},
}

// GetCurrencyConfig returns the config for a currency code,
// falling back to the code itself as symbol and two decimals
func GetCurrencyConfig(code string) CurrencyConfig {
	if cfg, ok := CURRENCY_CONFIG[strings.ToLower(code)]; ok {
		return cfg
	}
	return CurrencyConfig{Symbol: strings.ToUpper(code) + " ", Precision: 2}
}

// GetCurrencySymbol returns the symbol for a given currency code
func GetCurrencySymbol(code string) string {
	return GetCurrencyConfig(code).Symbol
}

// MinorToMajor converts an amount in minor units (cents) to major units
func MinorToMajor(amount int64, currency string) decimal.Decimal {
	return decimal.New(amount, -GetCurrencyConfig(currency).Precision)
}

// FormatCurrency renders an amount in minor units as display currency ex $1,230.00
func FormatCurrency(amount int64, currency string) string {
	cfg := GetCurrencyConfig(currency)
	major := MinorToMajor(amount, currency)

	negative := major.IsNegative()
	fixed := major.Abs().StringFixed(cfg.Precision)
	_, fraction, _ := strings.Cut(fixed, ".")

	// the whole part of an int64 minor amount always fits an int64
	grouped := humanize.Comma(major.Abs().Truncate(0).IntPart())

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	sb.WriteString(cfg.Symbol)
	sb.WriteString(grouped)
	if fraction != "" {
		sb.WriteString(".")
		sb.WriteString(fraction)
	}
	return sb.String()
}

package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category is the lifecycle classification of a currency code.
type Category string

const (
	// CategoryActive is a current national currency.
	CategoryActive Category = "currency"
	// CategoryFunds is a fund or unit-of-account instrument.
	CategoryFunds Category = "funds"
	// CategoryHistoric is a superseded or withdrawn currency.
	CategoryHistoric Category = "historic"
)

// ParseCategory maps a category name to a Category.
// Both the emitted names (currency, funds, historic) and "active" are accepted.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case string(CategoryActive), "active":
		return CategoryActive, true
	case string(CategoryFunds):
		return CategoryFunds, true
	case string(CategoryHistoric):
		return CategoryHistoric, true
	default:
		return "", false
	}
}

// NoValue marks an unassigned numeric code or an undefined minor unit.
const NoValue = -1

// Record is the canonical unit of the registry.
type Record struct {
	// Code is the 3-letter uppercase alpha code. Unique within a registry.
	Code string `json:"code"`

	// Name is the currency or fund name with double quotes escaped.
	Name string `json:"name"`

	// Numeric is the ISO numeric code, or NoValue.
	Numeric int `json:"numeric"`

	// MinorUnit is the number of decimal places, or NoValue.
	MinorUnit int `json:"minor_unit"`

	// Category is the lifecycle classification.
	Category Category `json:"category"`

	// Countries holds the associated ISO 3166 alpha-3 identifiers.
	Countries []string `json:"countries"`
}

// NumericString renders the numeric code zero-padded to three characters.
// It returns an empty string when no numeric code is assigned.
func (r Record) NumericString() string {
	if r.Numeric == NoValue {
		return ""
	}
	return FormatNumeric(r.Numeric)
}

// HasMinorUnit reports whether the record defines a minor unit.
func (r Record) HasMinorUnit() bool {
	return r.MinorUnit != NoValue
}

// Round rounds an amount to the record's minor unit using banker's rounding.
// Amounts are returned unchanged when the minor unit is not defined.
func (r Record) Round(amount decimal.Decimal) decimal.Decimal {
	if !r.HasMinorUnit() {
		return amount
	}
	return amount.RoundBank(int32(r.MinorUnit))
}

// ToMinorUnits converts an amount to an integer count of minor units
// (e.g. cents for EUR). The amount must be exactly representable.
func (r Record) ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if !r.HasMinorUnit() {
		return 0, fmt.Errorf("currency %s has no minor unit", r.Code)
	}
	scaled := amount.Shift(int32(r.MinorUnit))
	if !scaled.IsInteger() {
		return 0, fmt.Errorf("amount %s exceeds %d decimal places for %s", amount, r.MinorUnit, r.Code)
	}
	return scaled.IntPart(), nil
}

// FromMinorUnits converts an integer count of minor units back to an amount.
func (r Record) FromMinorUnits(units int64) decimal.Decimal {
	if !r.HasMinorUnit() {
		return decimal.NewFromInt(units)
	}
	return decimal.New(units, -int32(r.MinorUnit))
}

func (r Record) clone() Record {
	c := r
	if r.Countries != nil {
		c.Countries = append([]string(nil), r.Countries...)
	}
	return c
}

// FormatNumeric renders a numeric code as a zero-padded 3-character key.
func FormatNumeric(n int) string {
	return fmt.Sprintf("%03d", n)
}

// RawRow is one row of the Active or Historic table.
type RawRow struct {
	Entity    string
	Currency  string
	Code      string
	Numeric   string
	MinorUnit string
}

// CrosswalkRow is one row of the country/currency crosswalk.
type CrosswalkRow struct {
	// CountryAlpha3 is the ISO 3166-1 alpha-3 country identifier.
	CountryAlpha3 string
	// CountryNumeric is the ISO 3166-1 numeric country identifier.
	CountryNumeric string
	// CurrencyName is the currency name as spelled by the crosswalk.
	CurrencyName string
	// CurrencyCodes is one alpha code or a comma-joined list.
	CurrencyCodes string
}

// CountryRef is an entry of the code->countries relation.
type CountryRef struct {
	Alpha3  string `json:"alpha3"`
	Numeric string `json:"numeric"`
}

// CurrencyRef is an entry of the country->codes relation.
// Code may hold a comma-joined list until the relation is assembled.
type CurrencyRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Stats counts row-level anomalies absorbed during a build.
type Stats struct {
	// ActiveRows is the number of Active rows seen.
	ActiveRows int `json:"active_rows"`
	// HistoricRows is the number of Historic rows seen.
	HistoricRows int `json:"historic_rows"`
	// CrosswalkRows is the number of Crosswalk rows seen.
	CrosswalkRows int `json:"crosswalk_rows"`
	// Skipped counts rows without a code or header rows.
	Skipped int `json:"skipped"`
	// Duplicates counts rows dropped by first-write-wins.
	Duplicates int `json:"duplicates"`
	// UnresolvedCodes counts crosswalk codes that match no registry record.
	UnresolvedCodes int `json:"unresolved_codes"`
	// NumericExcluded counts records kept out of the numeric index.
	NumericExcluded int `json:"numeric_excluded"`
}

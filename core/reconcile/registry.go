package reconcile

import (
	"fmt"
	"strings"

	"currency-registry/core/utils"
)

// Registry is the finished, immutable currency registry.
// It is safe for concurrent reads; every accessor returns copies.
type Registry struct {
	records   []Record
	byCode    map[string]int
	byNumeric map[string]int
	byCountry map[string][]int
	countries []string

	codeCountries map[string][]CountryRef

	active   []string
	funds    []string
	historic []string

	stats Stats
}

// Len returns the number of records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Stats returns the row-level counters of the build that produced r.
func (r *Registry) Stats() Stats {
	return r.stats
}

// All returns every record in registry (first-seen) order.
func (r *Registry) All() []Record {
	out := make([]Record, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.clone()
	}
	return out
}

// ByCode returns the record for an alpha code. The lookup is case-insensitive.
func (r *Registry) ByCode(code string) (Record, error) {
	idx, ok := r.byCode[utils.Upper(code)]
	if !ok {
		return Record{}, fmt.Errorf("code %q: %w", code, ErrNotFound)
	}
	return r.records[idx].clone(), nil
}

// ByNumeric returns the record for a numeric code; 1 and "001" are the same key.
func (r *Registry) ByNumeric(numeric int) (Record, error) {
	return r.ByNumericString(FormatNumeric(numeric))
}

// ByNumericString returns the record for a 3-character numeric key.
func (r *Registry) ByNumericString(numeric string) (Record, error) {
	idx, ok := r.byNumeric[strings.TrimSpace(numeric)]
	if !ok {
		return Record{}, fmt.Errorf("numeric %q: %w", numeric, ErrNotFound)
	}
	return r.records[idx].clone(), nil
}

// ByCountry returns the records associated with an ISO 3166 alpha-3 country.
// A country without associated records yields ErrCountryNotFound.
func (r *Registry) ByCountry(country string) ([]Record, error) {
	idxs, ok := r.byCountry[utils.Upper(country)]
	if !ok {
		return nil, fmt.Errorf("country %q: %w", country, ErrCountryNotFound)
	}
	out := make([]Record, len(idxs))
	for i, idx := range idxs {
		out[i] = r.records[idx].clone()
	}
	return out, nil
}

// ByCategory returns the records of one category in registry order.
func (r *Registry) ByCategory(c Category) []Record {
	var codes []string
	switch c {
	case CategoryActive:
		codes = r.active
	case CategoryFunds:
		codes = r.funds
	case CategoryHistoric:
		codes = r.historic
	}
	out := make([]Record, 0, len(codes))
	for _, code := range codes {
		out = append(out, r.records[r.byCode[code]].clone())
	}
	return out
}

// CountryRefs returns the crosswalk entries attached to a code, including
// the country numeric identifiers.
func (r *Registry) CountryRefs(code string) []CountryRef {
	return append([]CountryRef(nil), r.codeCountries[utils.Upper(code)]...)
}

// Countries returns the keys of the country index in crosswalk order.
func (r *Registry) Countries() []string {
	return append([]string(nil), r.countries...)
}

// Codes returns every alpha code in registry order.
func (r *Registry) Codes() []string {
	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Code
	}
	return out
}

// Names returns every record name in registry order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Name
	}
	return out
}

// Numerics returns the numeric codes present in the numeric index, in registry order.
func (r *Registry) Numerics() []int {
	var out []int
	for i, rec := range r.records {
		if r.indexedNumeric(i) {
			out = append(out, rec.Numeric)
		}
	}
	return out
}

// NumericStrings returns the keys of the numeric index, in registry order.
func (r *Registry) NumericStrings() []string {
	var out []string
	for i, rec := range r.records {
		if r.indexedNumeric(i) {
			out = append(out, rec.NumericString())
		}
	}
	return out
}

// NumericKeys returns the numeric index as key -> code.
func (r *Registry) NumericKeys() map[string]string {
	out := make(map[string]string, len(r.byNumeric))
	for key, idx := range r.byNumeric {
		out[key] = r.records[idx].Code
	}
	return out
}

// CountryKeys returns the country index as country -> codes.
func (r *Registry) CountryKeys() map[string][]string {
	out := make(map[string][]string, len(r.byCountry))
	for country, idxs := range r.byCountry {
		codes := make([]string, len(idxs))
		for i, idx := range idxs {
			codes[i] = r.records[idx].Code
		}
		out[country] = codes
	}
	return out
}

// ActiveCodes returns the Active partition.
func (r *Registry) ActiveCodes() []string {
	return append([]string(nil), r.active...)
}

// FundsCodes returns the Funds partition.
func (r *Registry) FundsCodes() []string {
	return append([]string(nil), r.funds...)
}

// HistoricCodes returns the Historic partition.
func (r *Registry) HistoricCodes() []string {
	return append([]string(nil), r.historic...)
}

func (r *Registry) indexedNumeric(i int) bool {
	rec := r.records[i]
	if rec.Numeric == NoValue {
		return false
	}
	idx, ok := r.byNumeric[rec.NumericString()]
	return ok && idx == i
}

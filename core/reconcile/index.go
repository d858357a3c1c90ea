package reconcile

import (
	"slices"

	"currency-registry/core/utils"

	"go.uber.org/zap"
)

// Build assembles the immutable Registry: the code, numeric and country
// indices and the category partitions. The Builder's state is copied, so a
// Builder mutated afterwards does not affect the returned Registry.
func (b *Builder) Build() *Registry {
	stats := b.stats
	unresolved := make(set)

	records := make([]Record, len(b.records))
	for i, rec := range b.records {
		records[i] = rec.clone()
	}

	// Record countries from code->countries, expanding comma-joined keys.
	codeCountries := make(map[string][]CountryRef)
	for _, key := range b.codeKeys {
		refs := b.codeCountries[key]
		for _, code := range utils.SplitList(key) {
			idx, ok := b.byCode[code]
			if !ok {
				unresolved[code] = struct{}{}
				continue
			}
			for _, ref := range refs {
				if slices.Contains(records[idx].Countries, ref.Alpha3) {
					continue
				}
				records[idx].Countries = append(records[idx].Countries, ref.Alpha3)
				codeCountries[code] = append(codeCountries[code], ref)
			}
		}
	}

	byCode := make(map[string]int, len(records))
	byNumeric := make(map[string]int, len(records))
	var active, funds, historic []string
	for i, rec := range records {
		if rec.Countries == nil {
			rec.Countries = []string{}
			records[i].Countries = rec.Countries
		}
		byCode[rec.Code] = i

		switch rec.Category {
		case CategoryActive:
			active = append(active, rec.Code)
		case CategoryFunds:
			funds = append(funds, rec.Code)
		case CategoryHistoric:
			historic = append(historic, rec.Code)
		}

		if rec.Numeric == NoValue || NumericDenylist.Has(rec.Code) {
			stats.NumericExcluded++
			continue
		}
		key := rec.NumericString()
		if prev, taken := byNumeric[key]; taken {
			stats.NumericExcluded++
			b.logger.Debug("Numeric code collision, keeping first",
				zap.String("numeric", key),
				zap.String("kept", records[prev].Code),
				zap.String("dropped", rec.Code),
			)
			continue
		}
		byNumeric[key] = i
	}

	// Country index from country->codes, expanding comma-joined codes.
	byCountry := make(map[string][]int)
	var countries []string
	for _, country := range b.countryKeys {
		var idxs []int
		for _, ref := range b.countryCodes[country] {
			for _, code := range utils.SplitList(ref.Code) {
				idx, ok := b.byCode[code]
				if !ok {
					unresolved[code] = struct{}{}
					continue
				}
				if !slices.Contains(idxs, idx) {
					idxs = append(idxs, idx)
				}
			}
		}
		if len(idxs) == 0 {
			continue
		}
		byCountry[country] = idxs
		countries = append(countries, country)
	}
	stats.UnresolvedCodes = unresolved.Len()

	reg := &Registry{
		records:       records,
		byCode:        byCode,
		byNumeric:     byNumeric,
		byCountry:     byCountry,
		countries:     countries,
		codeCountries: codeCountries,
		active:        active,
		funds:         funds,
		historic:      historic,
		stats:         stats,
	}

	b.logger.Info("Currency registry built",
		zap.Int("records", len(records)),
		zap.Int("active", len(active)),
		zap.Int("funds", len(funds)),
		zap.Int("historic", len(historic)),
		zap.Int("countries", len(countries)),
		zap.Int("skipped", stats.Skipped),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("unresolved_codes", stats.UnresolvedCodes),
	)

	return reg
}

package reconcile

import (
	"strings"

	"currency-registry/core/utils"
)

// AddCrosswalk folds crosswalk rows into the code->countries and
// country->codes relations. Codes need not exist in the registry yet; they
// are resolved when the registry is built.
//
// A key is registered whenever its own field is present, and an entry is
// appended only when the opposite field is present too, so a country listed
// without a currency still shows up as a key with no entries.
func (b *Builder) AddCrosswalk(rows []CrosswalkRow) {
	for _, row := range rows {
		b.stats.CrosswalkRows++

		if strings.TrimSpace(row.CountryAlpha3) == headerCountry {
			b.stats.Skipped++
			continue
		}
		country := utils.Upper(row.CountryAlpha3)
		codes := strings.TrimSpace(row.CurrencyCodes)

		if !utils.IsBlank(codes) {
			codes = utils.Upper(codes)
			if _, ok := b.codeCountries[codes]; !ok {
				b.codeCountries[codes] = nil
				b.codeKeys = append(b.codeKeys, codes)
			}
			if country != "" {
				b.codeCountries[codes] = append(b.codeCountries[codes], CountryRef{
					Alpha3:  country,
					Numeric: strings.TrimSpace(row.CountryNumeric),
				})
			}
		}

		if country != "" {
			if _, ok := b.countryCodes[country]; !ok {
				b.countryCodes[country] = nil
				b.countryKeys = append(b.countryKeys, country)
			}
			if !utils.IsBlank(codes) {
				b.countryCodes[country] = append(b.countryCodes[country], CurrencyRef{
					Code: codes,
					Name: strings.TrimSpace(row.CurrencyName),
				})
			}
		}
	}
}

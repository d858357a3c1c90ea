package emit

import "currency-registry/core/reconcile"

// CurrencyRecord is one row of the currency_records table.
type CurrencyRecord struct {
	Code        string `gorm:"column:code;type:varchar(3);primaryKey"`
	Name        string `gorm:"column:name;type:varchar(255);not null"`
	NumericCode int    `gorm:"column:numeric_code;not null"`
	MinorUnit   int    `gorm:"column:minor_unit;not null"`
	Category    string `gorm:"column:category;type:varchar(16);not null;index"`
}

func (CurrencyRecord) TableName() string {
	return "currency_records"
}

// CurrencyCountry links a currency code to a country that uses it.
type CurrencyCountry struct {
	Code           string `gorm:"column:code;type:varchar(3);primaryKey"`
	Country        string `gorm:"column:country;type:varchar(3);primaryKey;index"`
	CountryNumeric string `gorm:"column:country_numeric;type:varchar(3)"`
}

func (CurrencyCountry) TableName() string {
	return "currency_countries"
}

// tableModels lists the models written by the database emitter.
var tableModels = []interface{}{CurrencyRecord{}, CurrencyCountry{}}

func tableRows(reg *reconcile.Registry) ([]CurrencyRecord, []CurrencyCountry) {
	all := reg.All()
	records := make([]CurrencyRecord, 0, len(all))
	var links []CurrencyCountry
	for _, rec := range all {
		records = append(records, CurrencyRecord{
			Code:        rec.Code,
			Name:        rec.Name,
			NumericCode: rec.Numeric,
			MinorUnit:   rec.MinorUnit,
			Category:    string(rec.Category),
		})
		for _, ref := range reg.CountryRefs(rec.Code) {
			links = append(links, CurrencyCountry{
				Code:           rec.Code,
				Country:        ref.Alpha3,
				CountryNumeric: ref.Numeric,
			})
		}
	}
	return records, links
}

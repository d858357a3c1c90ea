package emit

import "currency-registry/core/reconcile"

func testRegistry() *reconcile.Registry {
	b := reconcile.NewBuilder()
	b.AddActive([]reconcile.RawRow{
		{Entity: "AUSTRIA", Currency: "Euro", Code: "EUR", Numeric: "978", MinorUnit: "2"},
		{Entity: "SWITZERLAND", Currency: "WIR Euro", Code: "CHE", Numeric: "947", MinorUnit: "2"},
		{Entity: "SWITZERLAND", Currency: "Swiss Franc", Code: "CHF", Numeric: "756", MinorUnit: "2"},
		{Entity: "ZZ08_Gold", Currency: "Gold", Code: "XAU", Numeric: "959", MinorUnit: "N.A."},
	})
	b.AddHistoric([]reconcile.RawRow{
		{Entity: "AUSTRIA", Currency: "Schilling", Code: "ATS", Numeric: "040", MinorUnit: "2002-03"},
	})
	b.AddCrosswalk([]reconcile.CrosswalkRow{
		{CountryAlpha3: "AUT", CountryNumeric: "040", CurrencyName: "Euro", CurrencyCodes: "EUR"},
		{CountryAlpha3: "FIN", CountryNumeric: "246", CurrencyName: "Euro", CurrencyCodes: "EUR"},
		{CountryAlpha3: "CHE", CountryNumeric: "756", CurrencyName: "Swiss Franc", CurrencyCodes: "CHF,CHE"},
	})
	return b.Build()
}

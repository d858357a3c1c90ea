package reconcile

func fixtureActive() []RawRow {
	return []RawRow{
		{"ENTITY", "Currency", "Alphabetic Code", "Numeric Code", "Minor unit"},
		{"AFGHANISTAN", "Afghani", "AFN", "971", "2"},
		{"ÅLAND ISLANDS", "Euro", "EUR", "978", "2"},
		{"AUSTRIA", "Euro", "EUR", "978", "2"},
		{"BOLIVIA (PLURINATIONAL STATE OF)", "Mvdol", "BOV", "984", "2"},
		{"CAMBODIA", "Riel", "KHR", "116", "2"},
		{"CHINA", "Yuan Renminbi", "CNY", "156", "2"},
		{"ANTARCTICA", "No universal currency", "", "", ""},
		{"INTERNATIONAL MONETARY FUND (IMF)", "SDR (Special Drawing Right)", "XDR", "960", "N.A."},
		{"ZZ07_No_Currency", "The codes assigned for transactions where no currency is involved", "XXX", "999", "N.A."},
		{"SWITZERLAND", "WIR Euro", "CHE", "947", "2"},
		{"SWITZERLAND", "Swiss Franc", "CHF", "756", "2"},
		{"SWITZERLAND", "WIR Franc", "CHW", "948", "2"},
		{"UNITED STATES OF AMERICA (THE)", "US Dollar", "USD", "840", "2"},
		{"UNITED STATES OF AMERICA (THE)", "US Dollar (Next day)", "USN", "997", "2"},
	}
}

func fixtureHistoric() []RawRow {
	return []RawRow{
		{"ENTITY", "Historic currency", "Alphabetic Code", "Numeric Code", "WITHDRAWAL_DATE"},
		{"ALBANIA", "Old Lek", "ALK", "008", "1989-12"},
		{"EUROPEAN MONETARY CO-OPERATION FUND (EMCF)", "European Currency Unit (E.C.U)", "XEU", "954", "1999-01"},
		{"AUSTRIA", "Schilling", "ATS", "040", "2002-03"},
		{"CAMBODIA", "Old Riel", "KHR", "", "1989-12"},
		{"YUGOSLAVIA", "New Yugoslavian Dinar", "YUD", "890", "1990-01"},
		{"YUGOSLAVIA", "Yugoslavian Dinar", "YUM", "891", "2003-07"},
		{"CROATIA", "Kuna", "HRK", "191", "2023-01"},
	}
}

func fixtureCrosswalk() []CrosswalkRow {
	return []CrosswalkRow{
		{"ISO3166-1-Alpha-3", "ISO3166-1-numeric", "ISO4217-currency_name", "ISO4217-currency_alphabetic_code"},
		{"CHN", "156", "Yuan Renminbi", "CNY"},
		{"CHE", "756", "Swiss Franc", "CHF,CHE,CHW"},
		{"USA", "840", "US Dollar", "USD"},
		{"ATA", "010", "", ""},
		{"AUT", "040", "Euro", "EUR"},
		{"FIN", "246", "Euro", "EUR"},
		{"KHM", "116", "Riel", "KHR"},
		{"", "", "Unknown", "ZZZ"},
		{"PSE", "275", "", "ILS"},
	}
}

func fixtureRegistry() *Registry {
	b := NewBuilder()
	b.AddActive(fixtureActive())
	b.AddHistoric(fixtureHistoric())
	b.AddCrosswalk(fixtureCrosswalk())
	return b.Build()
}

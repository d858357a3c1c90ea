package sources

import (
	"bytes"
	"encoding/csv"
	"testing/fstest"
)

const activeCSV = "\xEF\xBB\xBFENTITY,Currency,Alphabetic Code,Numeric Code,Minor unit\n" +
	"AFGHANISTAN,Afghani,AFN,971,2\n" +
	"ANTARCTICA,No universal currency,,,\n" +
	"SWITZERLAND,WIR Euro,CHE,947,2\n" +
	"SWITZERLAND,Swiss Franc,CHF,756,2\n" +
	"\"INTERNATIONAL MONETARY FUND (IMF)\",SDR (Special Drawing Right),XDR,960,N.A.\n"

const historicCSV = "ENTITY,Historic currency,Alphabetic Code,Numeric Code,WITHDRAWAL_DATE\n" +
	"AUSTRIA,Schilling,ATS,040,2002-03\n" +
	"ALBANIA,Old Lek,ALK,008,1989-12\n"

func crosswalkCSV() string {
	rows := [][4]string{
		{"ISO3166-1-Alpha-3", "ISO3166-1-numeric", "ISO4217-currency_name", "ISO4217-currency_alphabetic_code"},
		{"AFG", "004", "Afghani", "AFN"},
		{"CHE", "756", "Swiss Franc", "CHF,CHE"},
		{"AUT", "040", "Euro", "EUR"},
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, r := range rows {
		cells := make([]string, colCurrencyCode+3)
		cells[colCountryAlpha3] = r[0]
		cells[colCountryNumeric] = r[1]
		cells[colCurrencyName] = r[2]
		cells[colCurrencyCode] = r[3]
		_ = w.Write(cells)
	}
	w.Flush()
	return buf.String()
}

func testConfig() Config {
	return Config{
		Dir:       "data",
		Active:    "list-one.csv",
		Historic:  "list-three.csv",
		Crosswalk: "country-codes.csv",
		Prefix:    "sources",
	}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"list-one.csv":      {Data: []byte(activeCSV)},
		"list-three.csv":    {Data: []byte(historicCSV)},
		"country-codes.csv": {Data: []byte(crosswalkCSV())},
	}
}

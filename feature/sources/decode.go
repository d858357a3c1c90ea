package sources

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"currency-registry/core/reconcile"
)

// Column positions of the ISO tables: entity, currency name, alpha code,
// numeric code, minor unit (withdrawal date in the historic table).
const currencyColumns = 5

// Column positions of the datahub country-codes crosswalk.
const (
	colCountryAlpha3  = 2
	colCountryNumeric = 5
	colCurrencyName   = 18
	colCurrencyCode   = 22
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeCurrencyRows decodes an Active or Historic table export.
// Short rows are padded with blank cells; undecodable CSV wraps ErrMalformedInput.
func DecodeCurrencyRows(r io.Reader) ([]reconcile.RawRow, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	rows := make([]reconcile.RawRow, 0, len(records))
	for _, rec := range records {
		cells := pad(rec, currencyColumns)
		rows = append(rows, reconcile.RawRow{
			Entity:    cells[0],
			Currency:  cells[1],
			Code:      cells[2],
			Numeric:   cells[3],
			MinorUnit: cells[4],
		})
	}
	return rows, nil
}

// DecodeCrosswalkRows decodes the country-codes crosswalk export.
func DecodeCrosswalkRows(r io.Reader) ([]reconcile.CrosswalkRow, error) {
	records, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	rows := make([]reconcile.CrosswalkRow, 0, len(records))
	for _, rec := range records {
		cells := pad(rec, colCurrencyCode+1)
		rows = append(rows, reconcile.CrosswalkRow{
			CountryAlpha3:  cells[colCountryAlpha3],
			CountryNumeric: cells[colCountryNumeric],
			CurrencyName:   cells[colCurrencyName],
			CurrencyCodes:  cells[colCurrencyCode],
		})
	}
	return rows, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("%w: line %d: %v", reconcile.ErrMalformedInput, parseErr.Line, parseErr.Err)
		}
		return nil, fmt.Errorf("%w: %v", reconcile.ErrMalformedInput, err)
	}
	return records, nil
}

func pad(cells []string, n int) []string {
	if len(cells) >= n {
		return cells
	}
	out := make([]string, n)
	copy(out, cells)
	return out
}

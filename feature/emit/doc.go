// Package emit serializes a built currency registry.
//
// Three outputs are supported, each toggled through Config:
//
//   - a JSON document holding the records, the numeric index and the country index
//   - a gofmt'd Go source file with one Currency var per code and the lookup maps
//   - the currency_records and currency_countries tables, replaced in one transaction
//
// Emitted files can additionally be uploaded to the storage bucket. CheckSchema
// compares the live tables against the GORM models after a database emission.
package emit

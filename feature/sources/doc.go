// Package sources ingests the raw currency tables.
//
// The three tables are CSV exports: the ISO 4217 current list (list one), the
// ISO 4217 historic list (list three), and the datahub country-codes
// crosswalk. They are read either from a local directory or from object
// storage, decoded into reconcile rows, and handed to the reconcile builder
// through the reconcile.Source interface.
//
// Decoding is deliberately permissive about row shape (short rows are padded)
// but any CSV syntax error wraps reconcile.ErrMalformedInput and aborts the
// build.
//
// # Checks
//
// MissingInStorage and MissingLocally report which of the three tables are
// absent before a build is attempted. SeedStorage uploads missing tables from
// the local directory into the bucket.
package sources

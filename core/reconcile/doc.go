// Package reconcile builds the canonical ISO 4217 currency registry from three
// inconsistent sources of truth: the Active table, the Historic table, and the
// country Crosswalk.
//
// The package is a one-shot batch transform. Nothing in it performs I/O; raw
// rows are supplied by an ingestor (see feature/sources) and the finished
// Registry is consumed by emitters and the lookup API.
//
// # Architecture
//
// The reconcile system consists of four stages:
//
// 1. Normalize: converts one raw row into a Record, or signals a skip for
//    blank codes and header rows.
//
// 2. Builder: folds Active rows, then Historic rows, into an ordered registry
//    with first-write-wins de-duplication and lifecycle categories. It also
//    merges Crosswalk rows into the code->countries and country->codes
//    relations.
//
// 3. Build: assembles the code, numeric and country indices plus the
//    category partitions into an immutable Registry.
//
// 4. Store: holds the current Registry and swaps it wholesale on rebuild.
//
// # Usage Example
//
//	b := reconcile.NewBuilder(reconcile.WithLogger(log))
//	b.AddActive(activeRows)
//	b.AddHistoric(historicRows)
//	b.AddCrosswalk(crosswalkRows)
//	reg := b.Build()
//
//	eur, err := reg.ByCode("eur")
//	khr, err := reg.ByNumeric(116)
//	cny, err := reg.ByCountry("CHN")
package reconcile

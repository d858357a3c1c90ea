package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Source supplies the three raw row streams of a build.
// Implementations wrap stream decoding failures with ErrMalformedInput.
type Source interface {
	// Name identifies the source in logs and errors (e.g. "local", "storage").
	Name() string

	// ActiveRows returns the rows of the current currency table.
	ActiveRows(ctx context.Context) ([]RawRow, error)

	// HistoricRows returns the rows of the historic currency table.
	HistoricRows(ctx context.Context) ([]RawRow, error)

	// CrosswalkRows returns the rows of the country/currency crosswalk.
	CrosswalkRows(ctx context.Context) ([]CrosswalkRow, error)
}

// Builder accumulates one build. It is owned by a single build call and is
// not safe for concurrent use.
type Builder struct {
	logger *zap.Logger

	records []Record
	byCode  map[string]int

	codeCountries map[string][]CountryRef
	codeKeys      []string
	countryCodes  map[string][]CurrencyRef
	countryKeys   []string

	stats Stats
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger used to report absorbed row anomalies.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		logger:        zap.NewNop(),
		byCode:        make(map[string]int),
		codeCountries: make(map[string][]CountryRef),
		countryCodes:  make(map[string][]CurrencyRef),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddActive folds rows of the Active table. Must be called before AddHistoric
// for the Active source to win code collisions.
func (b *Builder) AddActive(rows []RawRow) {
	for _, row := range rows {
		b.stats.ActiveRows++
		rec, ok := Normalize(row)
		if !ok {
			b.stats.Skipped++
			continue
		}
		rec.Category = CategoryActive
		if ReservedFunds.Has(rec.Code) {
			rec.Category = CategoryFunds
		}
		b.insert(rec, "active")
	}
}

// AddHistoric folds rows of the Historic table. Historic codes carry no
// minor unit, so MinorUnit is forced to NoValue.
func (b *Builder) AddHistoric(rows []RawRow) {
	for _, row := range rows {
		b.stats.HistoricRows++
		rec, ok := Normalize(row)
		if !ok {
			b.stats.Skipped++
			continue
		}
		rec.Category = CategoryHistoric
		rec.MinorUnit = NoValue
		b.insert(rec, "historic")
	}
}

// insert appends rec unless its code is already registered (first write wins).
func (b *Builder) insert(rec Record, source string) {
	if _, exists := b.byCode[rec.Code]; exists {
		b.stats.Duplicates++
		b.logger.Debug("Duplicate currency code dropped",
			zap.String("code", rec.Code),
			zap.String("source", source),
		)
		return
	}
	b.byCode[rec.Code] = len(b.records)
	b.records = append(b.records, rec)
}

// Len returns the number of records registered so far.
func (b *Builder) Len() int {
	return len(b.records)
}

// Stats returns the counters accumulated so far.
func (b *Builder) Stats() Stats {
	return b.stats
}

// BuildFrom runs the whole pipeline against a Source: Active, then Historic,
// then Crosswalk, then index assembly. Any stream error aborts the build.
func BuildFrom(ctx context.Context, src Source, opts ...Option) (*Registry, error) {
	b := NewBuilder(opts...)

	active, err := src.ActiveRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: active rows: %w", src.Name(), err)
	}
	historic, err := src.HistoricRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: historic rows: %w", src.Name(), err)
	}
	crosswalk, err := src.CrosswalkRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: crosswalk rows: %w", src.Name(), err)
	}

	b.AddActive(active)
	b.AddHistoric(historic)
	b.AddCrosswalk(crosswalk)
	return b.Build(), nil
}

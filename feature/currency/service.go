package currency

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"currency-registry/core/reconcile"

	"go.uber.org/zap"
)

// ErrInvalidCategory is returned for an unknown category filter.
var ErrInvalidCategory = errors.New("invalid category")

// Service answers lookups against the current registry.
type Service struct {
	store  *reconcile.Store
	logger *zap.Logger
}

// NewService creates a new currency service.
func NewService(store *reconcile.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns every record, or one partition when category is set.
func (s *Service) List(ctx context.Context, category string) ([]reconcile.Record, error) {
	reg, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return reg.All(), nil
	}
	c, ok := reconcile.ParseCategory(strings.ToLower(category))
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	return reg.ByCategory(c), nil
}

// ByCode returns the detail of one alphabetic code.
func (s *Service) ByCode(ctx context.Context, code string) (*CurrencyDetail, error) {
	reg, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := reg.ByCode(code)
	if err != nil {
		return nil, err
	}
	return newDetail(reg, rec), nil
}

// ByNumeric returns the detail of one numeric code. Digit-only input is
// zero-padded to three digits.
func (s *Service) ByNumeric(ctx context.Context, numeric string) (*CurrencyDetail, error) {
	reg, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := reg.ByNumericString(padNumeric(numeric))
	if err != nil {
		return nil, err
	}
	return newDetail(reg, rec), nil
}

// ByCountry returns the currencies of an ISO 3166 alpha-3 country.
func (s *Service) ByCountry(ctx context.Context, country string) (*CountryCurrencies, error) {
	reg, err := s.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	recs, err := reg.ByCountry(country)
	if err != nil {
		return nil, err
	}
	return &CountryCurrencies{Country: strings.ToUpper(strings.TrimSpace(country)), Currencies: recs}, nil
}

// Reload rebuilds the registry from the sources.
func (s *Service) Reload(ctx context.Context) (*ReloadResult, error) {
	reg, err := s.store.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return &ReloadResult{
		Records: reg.Len(),
		Stats:   reg.Stats(),
		BuiltAt: s.store.BuiltAt(),
	}, nil
}

func padNumeric(numeric string) string {
	numeric = strings.TrimSpace(numeric)
	if numeric == "" || len(numeric) > 3 {
		return numeric
	}
	for _, r := range numeric {
		if r < '0' || r > '9' {
			return numeric
		}
	}
	n, _ := strconv.Atoi(numeric)
	return reconcile.FormatNumeric(n)
}

func newDetail(reg *reconcile.Registry, rec reconcile.Record) *CurrencyDetail {
	refs := reg.CountryRefs(rec.Code)
	if refs == nil {
		refs = []reconcile.CountryRef{}
	}
	return &CurrencyDetail{
		Record:      rec,
		NumericCode: rec.NumericString(),
		CountryRefs: refs,
	}
}

// CurrencyDetail is a record with its padded numeric code and country references.
type CurrencyDetail struct {
	reconcile.Record
	NumericCode string                 `json:"numeric_code"`
	CountryRefs []reconcile.CountryRef `json:"country_refs"`
}

// CountryCurrencies lists the currencies used by a country.
type CountryCurrencies struct {
	Country    string             `json:"country"`
	Currencies []reconcile.Record `json:"currencies"`
}

// CurrencyList is the body of GET /currencies.
type CurrencyList struct {
	Count      int                `json:"count"`
	Currencies []reconcile.Record `json:"currencies"`
}

// ReloadResult summarises a registry rebuild.
type ReloadResult struct {
	Records int             `json:"records"`
	Stats   reconcile.Stats `json:"stats"`
	BuiltAt time.Time       `json:"built_at"`
}

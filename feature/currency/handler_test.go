package currency_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"currency-registry/core/reconcile"
	"currency-registry/feature/currency"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRegistry() *reconcile.Registry {
	b := reconcile.NewBuilder()
	b.AddActive([]reconcile.RawRow{
		{Entity: "AUSTRIA", Currency: "Euro", Code: "EUR", Numeric: "978", MinorUnit: "2"},
		{Entity: "ALBANIA", Currency: "Lek", Code: "ALL", Numeric: "008", MinorUnit: "2"},
		{Entity: "SWITZERLAND", Currency: "WIR Euro", Code: "CHE", Numeric: "947", MinorUnit: "2"},
		{Entity: "SWITZERLAND", Currency: "Swiss Franc", Code: "CHF", Numeric: "756", MinorUnit: "2"},
	})
	b.AddHistoric([]reconcile.RawRow{
		{Entity: "AUSTRIA", Currency: "Schilling", Code: "ATS", Numeric: "040", MinorUnit: "2002-03"},
	})
	b.AddCrosswalk([]reconcile.CrosswalkRow{
		{CountryAlpha3: "AUT", CountryNumeric: "040", CurrencyName: "Euro", CurrencyCodes: "EUR"},
		{CountryAlpha3: "CHE", CountryNumeric: "756", CurrencyName: "Swiss Franc", CurrencyCodes: "CHF,CHE"},
	})
	return b.Build()
}

func setupApp(t *testing.T, load reconcile.LoadFunc) *fiber.App {
	t.Helper()
	store := reconcile.NewStore(load, 0, zap.NewNop())
	feature := currency.NewFeature(store, zap.NewNop())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, out))
	}
	return resp.StatusCode
}

func staticLoad(context.Context) (*reconcile.Registry, error) {
	return testRegistry(), nil
}

func TestFeature(t *testing.T) {
	feature := currency.NewFeature(reconcile.NewStaticStore(testRegistry()), zap.NewNop())
	assert.Equal(t, "currency", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NoError(t, feature.Load(fiber.New()))
}

func TestHandleList(t *testing.T) {
	app := setupApp(t, staticLoad)

	tests := []struct {
		name   string
		target string
		status int
		codes  []string
	}{
		{"All", "/currencies", fiber.StatusOK, []string{"EUR", "ALL", "CHE", "CHF", "ATS"}},
		{"Active", "/currencies?category=currency", fiber.StatusOK, []string{"EUR", "ALL", "CHF"}},
		{"Funds", "/currencies?category=FUNDS", fiber.StatusOK, []string{"CHE"}},
		{"Historic", "/currencies?category=historic", fiber.StatusOK, []string{"ATS"}},
		{"Invalid", "/currencies?category=crypto", fiber.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.codes == nil {
				var body map[string]string
				assert.Equal(t, tt.status, doRequest(t, app, "GET", tt.target, &body))
				assert.Contains(t, body["error"], "invalid category")
				return
			}

			var body currency.CurrencyList
			assert.Equal(t, tt.status, doRequest(t, app, "GET", tt.target, &body))
			assert.Equal(t, len(tt.codes), body.Count)
			var codes []string
			for _, rec := range body.Currencies {
				codes = append(codes, rec.Code)
			}
			assert.Equal(t, tt.codes, codes)
		})
	}
}

func TestHandleGetByCode(t *testing.T) {
	app := setupApp(t, staticLoad)

	var detail currency.CurrencyDetail
	require.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/currencies/eur", &detail))
	assert.Equal(t, "EUR", detail.Code)
	assert.Equal(t, "978", detail.NumericCode)
	assert.Equal(t, []string{"AUT"}, detail.Countries)
	assert.Equal(t, []reconcile.CountryRef{{Alpha3: "AUT", Numeric: "040"}}, detail.CountryRefs)

	var ats currency.CurrencyDetail
	require.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/currencies/ATS", &ats))
	assert.Equal(t, reconcile.CategoryHistoric, ats.Category)
	assert.Equal(t, reconcile.NoValue, ats.MinorUnit)
	assert.NotNil(t, ats.CountryRefs)

	var body map[string]string
	assert.Equal(t, fiber.StatusNotFound, doRequest(t, app, "GET", "/currencies/ZZZ", &body))
	assert.NotEmpty(t, body["error"])
}

func TestHandleGetByNumeric(t *testing.T) {
	app := setupApp(t, staticLoad)

	tests := []struct {
		target string
		status int
		code   string
	}{
		{"/currencies/numeric/978", fiber.StatusOK, "EUR"},
		{"/currencies/numeric/008", fiber.StatusOK, "ALL"},
		{"/currencies/numeric/8", fiber.StatusOK, "ALL"},
		{"/currencies/numeric/40", fiber.StatusOK, "ATS"},
		{"/currencies/numeric/999", fiber.StatusNotFound, ""},
		{"/currencies/numeric/abc", fiber.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			var detail currency.CurrencyDetail
			assert.Equal(t, tt.status, doRequest(t, app, "GET", tt.target, &detail))
			assert.Equal(t, tt.code, detail.Code)
		})
	}
}

func TestHandleGetByCountry(t *testing.T) {
	app := setupApp(t, staticLoad)

	var result currency.CountryCurrencies
	require.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/countries/che", &result))
	assert.Equal(t, "CHE", result.Country)
	require.Len(t, result.Currencies, 2)
	assert.Equal(t, "CHF", result.Currencies[0].Code)
	assert.Equal(t, "CHE", result.Currencies[1].Code)

	assert.Equal(t, fiber.StatusNotFound, doRequest(t, app, "GET", "/countries/FIN", nil))
}

func TestHandleReload(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		app := setupApp(t, staticLoad)

		var result currency.ReloadResult
		require.Equal(t, fiber.StatusOK, doRequest(t, app, "POST", "/currencies/reload", &result))
		assert.Equal(t, 5, result.Records)
		assert.Equal(t, 1, result.Stats.HistoricRows)
		assert.False(t, result.BuiltAt.IsZero())
	})

	t.Run("Failure keeps serving previous registry", func(t *testing.T) {
		fail := false
		app := setupApp(t, func(context.Context) (*reconcile.Registry, error) {
			if fail {
				return nil, errors.New("source unavailable")
			}
			return testRegistry(), nil
		})

		require.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/currencies/EUR", nil))

		fail = true
		var body map[string]string
		assert.Equal(t, fiber.StatusInternalServerError, doRequest(t, app, "POST", "/currencies/reload", &body))
		assert.Contains(t, body["error"], "source unavailable")

		assert.Equal(t, fiber.StatusOK, doRequest(t, app, "GET", "/currencies/EUR", nil))
	})
}

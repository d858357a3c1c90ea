package currency

import (
	"errors"

	"currency-registry/core/logger"
	"currency-registry/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for currency lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the currency routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	currencies := app.Group("/currencies")
	currencies.Get("/", h.HandleList)
	currencies.Post("/reload", h.HandleReload)
	currencies.Get("/numeric/:numeric", h.HandleGetByNumeric)
	currencies.Get("/:code", h.HandleGetByCode)

	app.Get("/countries/:country", h.HandleGetByCountry)
}

// HandleList returns all currencies.
// @Summary List Currencies
// @Description List every currency in registry order, optionally filtered by category.
// @Tags currencies
// @Produce json
// @Param category query string false "Category filter (currency, funds, historic)"
// @Success 200 {object} currency.CurrencyList "Currencies"
// @Failure 400 {object} map[string]string "Invalid category"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /currencies [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	recs, err := h.service.List(c.Context(), c.Query("category"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(CurrencyList{Count: len(recs), Currencies: recs})
}

// HandleGetByCode returns a currency by alphabetic code.
// @Summary Get Currency By Code
// @Description Look up a currency by its ISO 4217 alphabetic code (case-insensitive).
// @Tags currencies
// @Produce json
// @Param code path string true "Alphabetic code (e.g. 'EUR')"
// @Success 200 {object} currency.CurrencyDetail "Currency"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /currencies/{code} [get]
func (h *Handler) HandleGetByCode(c *fiber.Ctx) error {
	detail, err := h.service.ByCode(c.Context(), c.Params("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(detail)
}

// HandleGetByNumeric returns a currency by numeric code.
// @Summary Get Currency By Numeric Code
// @Description Look up a currency by its ISO 4217 numeric code. Digit-only input is zero-padded to three digits.
// @Tags currencies
// @Produce json
// @Param numeric path string true "Numeric code (e.g. '978')"
// @Success 200 {object} currency.CurrencyDetail "Currency"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /currencies/numeric/{numeric} [get]
func (h *Handler) HandleGetByNumeric(c *fiber.Ctx) error {
	detail, err := h.service.ByNumeric(c.Context(), c.Params("numeric"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(detail)
}

// HandleGetByCountry returns the currencies of a country.
// @Summary Get Currencies By Country
// @Description List the currencies used by an ISO 3166-1 alpha-3 country.
// @Tags countries
// @Produce json
// @Param country path string true "Country alpha-3 code (e.g. 'CHE')"
// @Success 200 {object} currency.CountryCurrencies "Currencies"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /countries/{country} [get]
func (h *Handler) HandleGetByCountry(c *fiber.Ctx) error {
	result, err := h.service.ByCountry(c.Context(), c.Params("country"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

// HandleReload rebuilds the registry from the sources.
// @Summary Reload Registry
// @Description Rebuild the registry from the configured sources. Concurrent reloads share one build; a failed build keeps the previous registry.
// @Tags currencies
// @Produce json
// @Success 200 {object} currency.ReloadResult "Reload Result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /currencies/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering registry reload")

	result, err := h.service.Reload(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(result)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, reconcile.ErrNotFound), errors.Is(err, reconcile.ErrCountryNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, ErrInvalidCategory):
		status = fiber.StatusBadRequest
	default:
		logger.WithRayID(h.service.logger, c).Error("Currency request failed", zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

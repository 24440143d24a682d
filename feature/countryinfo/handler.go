package countryinfo

import (
	"errors"
	"net/url"

	"country-info/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for country info.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the country routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/countries")
	group.Get("/", h.HandleListCountries)
	group.Post("/build", h.HandleBuild)
	group.Get("/:alias", h.HandleGetCountry)
	group.Get("/:alias/:field", h.HandleGetCountryField)
}

// HandleListCountries returns every record keyed by geo id.
func (h *Handler) HandleListCountries(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	records, err := h.service.All(c.Context())
	if err != nil {
		l.Error("Failed to load countries", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(records)
}

// HandleGetCountry returns the full record for an alias (ISO2, ISO3, name or alternate name).
func (h *Handler) HandleGetCountry(c *fiber.Ctx) error {
	alias, err := url.PathUnescape(c.Params("alias"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alias"})
	}
	l := logger.WithRayID(h.service.logger, c)

	country, err := h.service.Country(c.Context(), alias)
	if err != nil {
		l.Error("Country lookup failed", zap.String("alias", alias), zap.Error(err))
		return h.fail(c, err)
	}
	info, ok := country.Info()
	if !ok {
		return h.notFound(c, alias)
	}
	return c.JSON(info)
}

// HandleGetCountryField returns one projected field of a country.
func (h *Handler) HandleGetCountryField(c *fiber.Ctx) error {
	alias, err := url.PathUnescape(c.Params("alias"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid alias"})
	}
	field := c.Params("field")
	l := logger.WithRayID(h.service.logger, c)

	country, err := h.service.Country(c.Context(), alias)
	if err != nil {
		l.Error("Country lookup failed", zap.String("alias", alias), zap.Error(err))
		return h.fail(c, err)
	}

	if !country.Found() {
		return h.notFound(c, alias)
	}

	value, _, err := country.Field(field)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  err.Error(),
			"fields": Fields,
		})
	}
	return c.JSON(fiber.Map{"field": field, "value": value})
}

// HandleBuild builds the artifacts; ?force=true replaces existing ones.
func (h *Handler) HandleBuild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	force := c.QueryBool("force", false)

	report, err := h.service.Build(c.Context(), force)
	if err != nil {
		l.Error("Country build failed", zap.Bool("force", force), zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(report)
}

func (h *Handler) notFound(c *fiber.Ctx, alias string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": ErrNotFound.Error(),
		"alias": alias,
	})
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrArtifactsMissing), errors.Is(err, ErrSourceMissing):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, ErrUnknownLanguage), errors.Is(err, ErrUnknownContinent):
		status = fiber.StatusUnprocessableEntity
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

package integrity

import (
	"country-info/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/source", h.HandleSourceCheck)
	group.Get("/artifacts", h.HandleArtifactsCheck)
}

// HandleIntegrityCheck runs every check and combines the reports.
// A failing check is reported inline rather than failing the request.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if srcReport, err := h.service.CheckSource(); err != nil {
		report["source"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["source"] = srcReport
	}

	if artReport, err := h.service.CheckArtifacts(c.Context()); err != nil {
		report["artifacts"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["artifacts"] = artReport
	}

	return c.JSON(report)
}

// HandleSourceCheck checks the geonames schema.
func (h *Handler) HandleSourceCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting source schema check")

	report, err := h.service.CheckSource()
	if err != nil {
		l.Error("Source schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if !report.Matched {
		l.Warn("Source schema mismatch", zap.Strings("errors", report.Errors))
	}
	return c.JSON(report)
}

// HandleArtifactsCheck checks the built artifacts.
func (h *Handler) HandleArtifactsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckArtifacts(c.Context())
	if err != nil {
		l.Error("Artifact check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Artifact check completed",
		zap.String("status", report.Status),
		zap.Int("countries", report.Countries),
		zap.Int("aliases", report.Aliases))

	return c.JSON(report)
}

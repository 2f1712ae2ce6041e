package handler

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"templatefinder/internal/service"
	"templatefinder/internal/view"
)

// searchFailedMessage is the only message shown for backend failures.
const searchFailedMessage = "Failed to fetch templates"

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// theme is the default page theme; corsOrigins applies to the /api group.
func RegisterRoutes(app *fiber.App, searchSvc service.SearchService, pages *view.Renderer, theme view.Theme, corsOrigins string) {
	app.Get("/", IndexPage(pages, theme))
	app.Post("/", SubmitCompanyForm(searchSvc, pages, theme))

	api := app.Group("/api", cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowMethods: "POST,OPTIONS",
		AllowHeaders: "Content-Type,X-Request-ID",
	}))
	api.Post("/search-templates", SearchTemplates(searchSvc))

	app.Get("/health", HealthCheck(searchSvc))
	app.Get("/healthz", LivenessProbe())
}

// HealthCheck godoc
// @Summary Backend health
// @Description Reports whether the template search backend is reachable.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(p Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := p.Ping(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is serving.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// searchFailure maps a search error onto a status, error code and a
// message that is safe to show.
func searchFailure(err error) (int, string, string) {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return fiber.StatusBadRequest, "INVALID_PROFILE", vErr.Message
	}
	return fiber.StatusBadGateway, "UPSTREAM_ERROR", searchFailedMessage
}

package app

import (
	"fmt"
	"log"
	"strings"

	"job-trends/internal/config"
	"job-trends/internal/delivery/http/handler"
	"job-trends/internal/delivery/http/middleware"
	"job-trends/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap loads the artifacts, wires the usecases and returns the
// configured fiber app plus a cleanup func.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, c)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.Store),
		handler.NewAnalyticsHandler(c.Analytics),
		handler.NewSkillsHandler(c.SkillCatalog),
		handler.NewJobsHandler(c.JobList),
		handler.NewRecommendationHandler(c.Recommendations),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

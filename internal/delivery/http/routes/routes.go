package routes

import (
	"job-trends/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

// Registry wires every handler into the fiber app. Health sits at the root;
// everything else lives under /api/v1.
type Registry struct {
	health          *handler.HealthHandler
	analytics       *handler.AnalyticsHandler
	skills          *handler.SkillsHandler
	jobs            *handler.JobsHandler
	recommendations *handler.RecommendationHandler
}

func NewRegistry(
	health *handler.HealthHandler,
	analytics *handler.AnalyticsHandler,
	skills *handler.SkillsHandler,
	jobs *handler.JobsHandler,
	recommendations *handler.RecommendationHandler,
) *Registry {
	return &Registry{
		health:          health,
		analytics:       analytics,
		skills:          skills,
		jobs:            jobs,
		recommendations: recommendations,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if r == nil || app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.analytics.RegisterRoutes(v1)
	r.skills.RegisterRoutes(v1)
	r.jobs.RegisterRoutes(v1)
	r.recommendations.RegisterRoutes(v1)
}

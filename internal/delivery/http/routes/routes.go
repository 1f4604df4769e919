package routes

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"talentmatch/internal/config"
	"talentmatch/internal/database"
	"talentmatch/internal/delivery/http/handler"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/infrastructure/cache"
	"talentmatch/internal/search"
	"talentmatch/internal/taxonomy"
	"talentmatch/internal/ws"
)

// Deps carries everything route registration needs. All fields except
// Config, DB, Catalog, Index and Engine may be nil.
type Deps struct {
	Config  config.Config
	DB      database.DB
	Cache   *cache.Redis
	Hub     *ws.Hub
	Logger  *log.Logger
	Catalog *taxonomy.Catalog
	Index   *search.Index
	Engine  *matching.Engine
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{deps: deps, health: handler.NewHealthHandler(deps.DB)}
}

func (r *Registry) Register(app *fiber.App) error {
	if app == nil {
		return nil
	}

	r.health.RegisterRoutes(app)

	if r.deps.Hub != nil {
		wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
		app.Get("/ws/freelancers", wsHandler.HandleFreelancersWS)
	}

	api := app.Group("/api")
	return RegisterV1(api.Group("/v1"), r.deps)
}

package routes

import (
	"log"

	"crewmatch/internal/config"
	"crewmatch/internal/database"
	"crewmatch/internal/delivery/http/handler"
	v1 "crewmatch/internal/delivery/http/routes/v1"
	"crewmatch/internal/infrastructure/agentsearch"
	"crewmatch/internal/infrastructure/cache"
	"crewmatch/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything route registration needs; the app container owns the
// lifecycles, routes only borrow them.
type Deps struct {
	Cfg    config.Config
	DB     database.DB
	Cache  *cache.Redis
	Agent  *agentsearch.Client
	Hub    *ws.Hub
	Logger *log.Logger
}

type Registry struct {
	deps   Deps
	health *handler.HealthHandler
}

func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps:   deps,
		health: handler.NewHealthHandler(deps.DB, deps.Cache),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerWS(app *fiber.App) {
	wsHandler := ws.NewHandler(r.deps.Hub, r.deps.Logger)
	app.Get("/ws/listings", wsHandler.HandleListingsWS)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps.Cfg, r.deps.DB, r.deps.Cache, r.deps.Agent, r.deps.Logger)
}

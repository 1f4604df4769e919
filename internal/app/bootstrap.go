package app

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v3"

	"talentmatch/internal/delivery/http/middleware"
	"talentmatch/internal/delivery/http/routes"
	"talentmatch/internal/domain/matching"
	"talentmatch/internal/infrastructure/cache"
	"talentmatch/internal/search"
	"talentmatch/internal/taxonomy"
	"talentmatch/internal/ws"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// Bootstrap wires the full HTTP surface on top of an initialized
// container. The returned cleanup stops nothing fiber owns; it exists
// so callers can defer a single call.
func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	logger := log.Default()

	catalog, err := taxonomy.NewCatalog()
	if err != nil {
		return nil, nil, fmt.Errorf("load skill catalog: %w", err)
	}
	if dangling := catalog.DanglingRelated(); len(dangling) > 0 {
		logger.Printf("taxonomy | %d related-skill aliases have no catalog entry", len(dangling))
	}
	index := search.NewIndex(catalog)
	engine := matching.NewEngine(catalog, index)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	redis := cache.NewRedis(logger)

	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})
	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(routes.Deps{
		Config:  c.Config,
		DB:      c.DB,
		Cache:   redis,
		Hub:     hub,
		Logger:  logger,
		Catalog: catalog,
		Index:   index,
		Engine:  engine,
	})
	if err := registry.Register(f); err != nil {
		return nil, nil, fmt.Errorf("register routes: %w", err)
	}

	cleanup := func() error { return nil }
	return &App{Fiber: f, Hub: hub}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	accessMw := middleware.NewAccessLogMiddleware(logger)
	app.Use(accessMw.Middleware())

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())
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

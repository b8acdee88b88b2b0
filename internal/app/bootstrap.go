package app

import (
	"fmt"
	"strings"

	"jobtrack/internal/delivery/http/handler"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/delivery/http/routes"
	"jobtrack/internal/repository"
	"jobtrack/internal/usecase"
	"jobtrack/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub
}

// New assembles the HTTP application from an already-built container:
// repositories, usecases, handlers, routes.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	errMw := middleware.NewErrorMiddleware(c.Logger)
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	hub := ws.NewHub(c.Logger)
	notifier := ws.NewNotifier(hub)

	jobRepo := repository.NewPostgresJobRepository(c.DB)
	userRepo := repository.NewPostgresUserRepository(c.DB)

	listUC := usecase.NewJobListUsecase(jobRepo, c.Cache, c.Logger)
	statsUC := usecase.NewJobStatsUsecase(jobRepo, c.Cache, c.Logger)
	mutationUC := usecase.NewJobMutationUsecase(jobRepo, c.Cache, notifier, c.Logger)
	authUC := usecase.NewAuthUsecase(userRepo, c.JWT)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(c.DB),
		handler.NewAuthHandler(authUC),
		handler.NewJobsHandler(listUC, statsUC, mutationUC),
		ws.NewHandler(hub, c.JWT, c.Logger),
		middleware.NewAuthMiddleware(c.JWT),
	)
	registry.Register(f)

	return &App{Fiber: f, Hub: hub}
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

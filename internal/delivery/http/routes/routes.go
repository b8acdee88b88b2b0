package routes

import (
	"time"

	"jobtrack/internal/delivery/http/handler"
	"jobtrack/internal/delivery/http/middleware"
	"jobtrack/internal/pkg/response"
	"jobtrack/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
)

const (
	authRateLimit  = 10
	authRateWindow = 15 * time.Minute
)

type Registry struct {
	health *handler.HealthHandler
	auth   *handler.AuthHandler
	jobs   *handler.JobsHandler
	events *ws.Handler

	authMw *middleware.AuthMiddleware
}

func NewRegistry(
	health *handler.HealthHandler,
	auth *handler.AuthHandler,
	jobs *handler.JobsHandler,
	events *ws.Handler,
	authMw *middleware.AuthMiddleware,
) *Registry {
	return &Registry{
		health: health,
		auth:   auth,
		jobs:   jobs,
		events: events,
		authMw: authMw,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.health.HandleHealth)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	r.registerAuth(v1)
	r.registerJobs(v1)
}

func (r *Registry) registerAuth(v1 fiber.Router) {
	auth := v1.Group("/auth")

	// Credential endpoints are rate limited per IP; refresh and profile
	// updates are not.
	limited := limiter.New(limiter.Config{
		Max:        authRateLimit,
		Expiration: authRateWindow,
		LimitReached: func(c fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(response.Message{Msg: response.MessageTooManyRequests})
		},
	})

	auth.Post("/register", limited, r.auth.HandleRegister)
	auth.Post("/login", limited, r.auth.HandleLogin)
	auth.Post("/refresh", r.auth.HandleRefresh)
	auth.Patch("/updateUser", r.authMw.Middleware(), middleware.DemoGuard(), r.auth.HandleUpdateUser)
}

func (r *Registry) registerJobs(v1 fiber.Router) {
	// The events route authenticates via its own token handshake, so it
	// sits outside the bearer-header group. Registered before /:id so
	// "events" is never read as a job id.
	if r.events != nil {
		v1.Get("/jobs/events", r.events.HandleJobEvents)
	}

	jobs := v1.Group("/jobs", r.authMw.Middleware())

	jobs.Get("/", r.jobs.HandleListJobs)
	jobs.Get("/stats", r.jobs.HandleStats)
	jobs.Get("/:id", r.jobs.HandleGetJob)

	guard := middleware.DemoGuard()
	jobs.Post("/", guard, r.jobs.HandleCreateJob)
	jobs.Patch("/:id", guard, r.jobs.HandleUpdateJob)
	jobs.Delete("/:id", guard, r.jobs.HandleDeleteJob)
}

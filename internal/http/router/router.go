package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"courier-agent/internal/http/handlers"
	appmw "courier-agent/internal/http/middleware"
	"courier-agent/internal/http/middleware/ratelimit"
	"courier-agent/internal/logx"
)

// Deps bundles everything the router mounts.
type Deps struct {
	Base       *handlers.Handlers
	Session    *handlers.SessionHandler
	Delivery   *handlers.DeliveryHandler
	Position   *handlers.PositionHandler
	LoginLimit *ratelimit.Middleware
	Logger     logx.Logger
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.Observability(d.Logger))
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/session", func(r chi.Router) {
		r.With(d.LoginLimit.Handler()).Post("/login", d.Session.Login)
		r.Post("/logout", d.Session.Logout)
		r.Get("/", d.Session.Get)
	})

	r.Route("/deliveries", func(r chi.Router) {
		r.Get("/", d.Delivery.List)
		r.Get("/counts", d.Delivery.Counts)
		r.Post("/{id}/transition", d.Delivery.Transition)
	})

	r.Post("/position", d.Position.Push)

	r.NotFound(http.HandlerFunc(d.Base.NotFound))

	return r
}

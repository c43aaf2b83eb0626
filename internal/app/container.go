package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"courier-agent/internal/config"
	"courier-agent/internal/gateway/seeucafe"
	"courier-agent/internal/http/handlers"
	"courier-agent/internal/http/middleware/ratelimit"
	"courier-agent/internal/http/router"
	"courier-agent/internal/jobs"
	"courier-agent/internal/logx"
	"courier-agent/internal/registry"
	"courier-agent/internal/service/locationsync"
	"courier-agent/internal/service/transition"
	"courier-agent/internal/session"
	"courier-agent/internal/storage/kvstore"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf: log.Fatalf,
	}
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateway(container); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerJobs(container); err != nil {
		return nil, fmt.Errorf("jobs: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
		NewMetrics,
		func(cfg *config.Config) (*kvstore.Store, error) {
			return kvstore.Open(cfg.Session.DBPath)
		},
	)
}

func registerGateway(container *dig.Container) error {
	return provideAll(container,
		func() *tokenBridge { return &tokenBridge{} },
		func(cfg *config.Config, tokens *tokenBridge) (*seeucafe.Client, error) {
			return seeucafe.NewClient(cfg.API.BaseURL, cfg.API.Timeout, tokens)
		},
		func(client *seeucafe.Client, logger logx.Logger, m *Metrics) *seeucafe.RetryingClient {
			return seeucafe.NewRetryingClient(client, logger, m.GatewayRetries, seeucafe.RetryConfig{
				MaxAttempts: 3,
				BaseDelay:   200 * time.Millisecond,
				MaxDelay:    2 * time.Second,
			})
		},
	)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		registry.New,
		func(client *seeucafe.Client, kv *kvstore.Store, logger logx.Logger, tokens *tokenBridge) *session.Store {
			store := session.NewStore(client, kv, logger)
			tokens.bind(store)
			return store
		},
		locationsync.NewPushObserver,
		func(client *seeucafe.Client, observer *locationsync.PushObserver, logger logx.Logger, cfg *config.Config, m *Metrics) *locationsync.Service {
			return locationsync.NewService(client, observer, logger, nil, cfg.Location.MinInterval, m.LocationSent, m.LocationDropped)
		},
		func(client *seeucafe.Client, reg *registry.Registry, loc *locationsync.Service, logger logx.Logger, m *Metrics) *transition.Engine {
			return transition.NewEngine(client, reg, loc, logger, m.TransitionsConfirmed, m.TransitionsRejected)
		},
	)
}

func registerJobs(container *dig.Container) error {
	return provideAll(container,
		func(store *session.Store, api *seeucafe.RetryingClient, reg *registry.Registry, cfg *config.Config, logger logx.Logger) *jobs.RefreshJob {
			return jobs.NewRefreshJob(store, api, reg, cfg.Refresh.Schedule, logger)
		},
		jobs.NewManager,
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	routerProvider := func(
		base *handlers.Handlers,
		sess *handlers.SessionHandler,
		del *handlers.DeliveryHandler,
		pos *handlers.PositionHandler,
		limit *ratelimit.Middleware,
		logger logx.Logger,
	) http.Handler {
		return router.New(router.Deps{
			Base:       base,
			Session:    sess,
			Delivery:   del,
			Position:   pos,
			LoginLimit: limit,
			Logger:     logger,
		})
	}
	return provideAll(container,
		handlers.New,
		func(store *session.Store, loc *locationsync.Service, logger logx.Logger) *handlers.SessionHandler {
			return handlers.NewSessionHandler(store, loc, logger)
		},
		func(reg *registry.Registry, engine *transition.Engine, logger logx.Logger) *handlers.DeliveryHandler {
			return handlers.NewDeliveryHandler(reg, engine, logger)
		},
		func(observer *locationsync.PushObserver, logger logx.Logger) *handlers.PositionHandler {
			return handlers.NewPositionHandler(observer, logger)
		},
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		routerProvider,
		serverProvider,
	)
}

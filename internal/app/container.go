package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"campus-delivery/internal/config"
	"campus-delivery/internal/domain"
	"campus-delivery/internal/fee"
	"campus-delivery/internal/gateway/messaging"
	ordersgw "campus-delivery/internal/gateway/orders"
	"campus-delivery/internal/gateway/routing"
	"campus-delivery/internal/http/handlers"
	"campus-delivery/internal/http/router"
	"campus-delivery/internal/logx"
	"campus-delivery/internal/repository"
	"campus-delivery/internal/service/assignment"
	"campus-delivery/internal/service/broadcast"
	"campus-delivery/internal/service/earnings"
	"campus-delivery/internal/service/orders"
	"campus-delivery/internal/service/profile"
	"campus-delivery/internal/service/quote"
)

// sweepInterval is the period between stale-offer sweeps.
type sweepInterval time.Duration

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the container for the HTTP service.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the container for the event worker.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerGateways(container); err != nil {
		return nil, fmt.Errorf("gateways: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.build(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP service container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the event worker container.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
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
		NewLogger,
		config.Load,
		newMetrics,
		func(cfg *config.Config) sweepInterval {
			return sweepInterval(cfg.Delivery.SweepInterval)
		},
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type ordersGatewayIn struct {
	dig.In

	HTTPC   *http.Client
	Cfg     *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

func registerGateways(container *dig.Container) error {
	return provideAll(container,
		func(cfg *config.Config) *http.Client {
			return &http.Client{Timeout: cfg.Routing.Timeout}
		},
		func(httpc *http.Client, cfg *config.Config, logger logx.Logger) *routing.Client {
			return routing.NewClient(httpc, routing.Config{
				BaseURL: cfg.Routing.BaseURL,
				APIKey:  cfg.Routing.APIKey,
				Focus:   domain.Coordinate{Lat: cfg.Routing.FocusLat, Lng: cfg.Routing.FocusLng},
			}, logger)
		},
		newSender,
		func(in ordersGatewayIn) *ordersgw.RetryingGateway {
			base := ordersgw.NewHTTPGateway(in.HTTPC, in.Cfg.Orders.BaseURL)
			return ordersgw.NewRetryingGateway(base, in.Logger, in.Retries, ordersgw.RetryConfig{
				MaxAttempts: in.Cfg.Orders.MaxAttempts,
				BaseDelay:   in.Cfg.Orders.BaseDelay,
				MaxDelay:    in.Cfg.Orders.MaxDelay,
			})
		},
	)
}

// newSender falls back to a no-op sender when messaging credentials are
// not configured.
func newSender(httpc *http.Client, cfg *config.Config, logger logx.Logger) broadcast.Sender {
	c := messaging.NewClient(httpc, messaging.Config{
		BaseURL:      cfg.Messaging.BaseURL,
		AccountSID:   cfg.Messaging.AccountSID,
		AuthToken:    cfg.Messaging.AuthToken,
		SMSFrom:      cfg.Messaging.SMSFrom,
		WhatsAppFrom: cfg.Messaging.WhatsAppFrom,
	}, logger)
	if c == nil {
		logger.Warn("messaging credentials missing, notifications disabled")
		return messaging.Nop{}
	}
	return c
}

type broadcasterIn struct {
	dig.In

	Profiles *repository.ProfileRepo
	Sender   broadcast.Sender
	Timeout  time.Duration
	Logger   logx.Logger
	Failures prometheus.Counter `name:"broadcast_failures_total"`
}

type assignmentIn struct {
	dig.In

	Repo      *repository.AssignmentRepo
	Factory   assignment.OfferFactory
	Notifier  *broadcast.Broadcaster
	Timeout   time.Duration
	Logger    logx.Logger
	Conflicts prometheus.Counter `name:"accept_conflicts_total"`
	Expired   prometheus.Counter `name:"assignments_expired_total"`
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewAssignmentRepo,
		repository.NewProfileRepo,
		repository.NewEarningsRepo,
		repository.NewOrderRepo,
		func() time.Duration { return 3 * time.Second },
		func(cfg *config.Config) *fee.Calculator {
			return fee.New(cfg.Delivery.BaseFee, cfg.Delivery.PerKmRate)
		},
		func(cfg *config.Config) assignment.OfferFactory {
			return assignment.NewOfferFactory(cfg.Delivery.OfferTTL)
		},
		func(in broadcasterIn) *broadcast.Broadcaster {
			return broadcast.New(in.Profiles, in.Sender, in.Failures, in.Timeout, in.Logger)
		},
		func(in assignmentIn) *assignment.Service {
			return assignment.NewService(in.Repo, in.Factory, in.Notifier, in.Conflicts, in.Expired, in.Timeout, in.Logger)
		},
		func(repo *repository.AssignmentRepo, b *broadcast.Broadcaster, timeout time.Duration, logger logx.Logger) *earnings.Poster {
			return earnings.NewPoster(repo, b, timeout, logger)
		},
		func(geo *routing.Client, pricer *fee.Calculator, cfg *config.Config, timeout time.Duration, logger logx.Logger) *quote.Service {
			shop := domain.Coordinate{Lat: cfg.Routing.ShopLat, Lng: cfg.Routing.ShopLng}
			return quote.NewService(geo, pricer, shop, timeout, logger)
		},
		func(profiles *repository.ProfileRepo, e *repository.EarningsRepo, timeout time.Duration, logger logx.Logger) *profile.Service {
			return profile.NewService(profiles, e, timeout, logger)
		},
		func(
			gw *ordersgw.RetryingGateway,
			geo *routing.Client,
			pricer *fee.Calculator,
			offers assignment.OfferFactory,
			repo *repository.AssignmentRepo,
			b *broadcast.Broadcaster,
			settler *earnings.Poster,
			cfg *config.Config,
			logger logx.Logger,
		) *orders.Processor {
			shop := domain.Coordinate{Lat: cfg.Routing.ShopLat, Lng: cfg.Routing.ShopLng}
			return orders.NewProcessor(gw, geo, pricer, offers, repo, b, settler, shop, logger)
		},
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
	return provideAll(container,
		handlers.New,
		handlers.NewAssignmentUsecase,
		handlers.NewOrderLister,
		handlers.NewAssignmentHandler,
		handlers.NewQuoteUsecase,
		handlers.NewQuoteHandler,
		handlers.NewProfileUsecase,
		handlers.NewProfileHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}

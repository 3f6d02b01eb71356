// Package container provides dependency injection using Uber FX
package container

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/nutricoach/engine/internal/application/adaptation"
	"github.com/nutricoach/engine/internal/application/personalization"
	"github.com/nutricoach/engine/internal/infrastructure/catalog/memory"
	"github.com/nutricoach/engine/internal/infrastructure/config"
	"github.com/nutricoach/engine/internal/infrastructure/monitoring"
	redisrepo "github.com/nutricoach/engine/internal/infrastructure/persistence/redis"
	"github.com/nutricoach/engine/internal/ports/inbound"
	"github.com/nutricoach/engine/internal/ports/outbound"
	"github.com/nutricoach/engine/pkg/logger"
)

// Module wires the whole engine: configuration, logging, the profile
// store, catalogs, metrics, and the application services.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StorageModule,
	CatalogModule,
	MetricsModule,
	ServiceModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.IsDevelopment(),
		})
	},
)

// StorageModule provides the Redis-backed profile store.
var StorageModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (goredis.UniversalClient, error) {
		return redisrepo.NewClient(&cfg.Redis, log)
	},
	fx.Annotate(
		redisrepo.NewProfileRepository,
		fx.As(new(outbound.ProfileRepository)),
	),
)

// CatalogModule provides the ingredient and recipe catalogs. The demo
// binary runs against the seeded in-memory catalog.
var CatalogModule = fx.Provide(
	func(log *zap.Logger) *memory.Catalog {
		log.Info("Using seeded in-memory catalog")
		return memory.NewSeededCatalog()
	},
	func(c *memory.Catalog) outbound.IngredientCatalog { return c },
	func(c *memory.Catalog) outbound.RecipeCatalog { return c },
)

// MetricsModule provides Prometheus instrumentation.
var MetricsModule = fx.Provide(
	func() *prometheus.Registry {
		return prometheus.NewRegistry()
	},
	func(reg *prometheus.Registry) *monitoring.MetricsCollector {
		return monitoring.NewMetricsCollector(reg)
	},
)

// ServiceModule provides the application services.
var ServiceModule = fx.Provide(
	func(
		ingredients outbound.IngredientCatalog,
		metrics *monitoring.MetricsCollector,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.AdaptationService {
		return adaptation.NewService(ingredients, metrics, log, nil, cfg.Engine.SubstituteConfidenceThreshold)
	},
	func(
		recipes outbound.RecipeCatalog,
		profiles outbound.ProfileRepository,
		metrics *monitoring.MetricsCollector,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PersonalizationService {
		return personalization.NewService(recipes, profiles, metrics, log,
			cfg.Engine.RecommendationBatchSize, cfg.Engine.RecentMealsWindow)
	},
)

// LifecycleModule closes external connections on shutdown.
var LifecycleModule = fx.Invoke(registerLifecycleHooks)

func registerLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	client goredis.UniversalClient,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting personalization engine",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping personalization engine")
			return client.Close()
		},
	})
}

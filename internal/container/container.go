package container

import (
	"context"
	"fmt"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/itbasis/go-clock"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/accadex/accadex/config"
	"github.com/accadex/accadex/internal/domain/repository"
	"github.com/accadex/accadex/internal/infrastructure/gemini"
	"github.com/accadex/accadex/internal/infrastructure/memory"
	mongoinfra "github.com/accadex/accadex/internal/infrastructure/mongo"
	pginfra "github.com/accadex/accadex/internal/infrastructure/postgres"
	"github.com/accadex/accadex/pkg/helpers"
)

// Container owns the process-wide components shared by the router modules.
// Optional integrations are nil when not configured.
type Container struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Clock  clock.Clock
	Store  repository.Store
	JWT    *helpers.JWTManager

	Redis     *redis.Client
	GCS       *storage.Client
	ES        *elasticsearch.Client
	RabbitPub *helpers.RabbitPublisher
	Gemini    *gemini.Client
}

// Build opens the configured store and every optional integration.
// On error, anything already opened is closed.
func Build(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (c *Container, err error) {
	c = &Container{
		Cfg:    cfg,
		Logger: logger,
		Clock:  clock.New(),
	}
	defer func() {
		if err != nil {
			_ = c.Close(context.Background())
			c = nil
		}
	}()

	c.JWT = helpers.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL).WithClock(c.Clock.Now)

	if c.Store, err = OpenStore(ctx, cfg, logger); err != nil {
		return c, err
	}

	if rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); rdb != nil {
		if perr := helpers.PingRedis(ctx, rdb); perr != nil {
			logger.WithError(perr).Warn("redis unreachable, rate limiting disabled")
			_ = rdb.Close()
		} else {
			c.Redis = rdb
		}
	}

	if cfg.GCSBucket != "" {
		if c.GCS, err = helpers.NewGCSClient(ctx, cfg.GCSCredentialsJSONPath); err != nil {
			return c, fmt.Errorf("gcs client: %w", err)
		}
	}

	if addrs := cfg.ESAddrs(); len(addrs) > 0 {
		if c.ES, err = helpers.NewESClient(addrs, cfg.ElasticsearchUser, cfg.ElasticsearchPass); err != nil {
			return c, fmt.Errorf("elasticsearch client: %w", err)
		}
	}

	if cfg.RabbitMQURL != "" {
		pub, perr := helpers.NewRabbitPublisher(cfg.RabbitMQURL, cfg.RabbitMQEmailQueue)
		if perr != nil {
			logger.WithError(perr).Warn("rabbitmq unreachable, welcome emails disabled")
		} else {
			c.RabbitPub = pub
		}
	}

	if cfg.GeminiAPIKey != "" {
		c.Gemini = gemini.New(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.ChatTimeout)
	}
	return c, nil
}

// OpenStore returns the storage backend selected by DB_DRIVER. Mongo connects
// lazily on first use; Postgres connects and migrates up front.
func OpenStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (repository.Store, error) {
	switch cfg.DBDriver {
	case config.DriverMongo:
		return mongoinfra.NewStore(cfg.MongoURI, cfg.MongoDatabaseName(), logger), nil
	case config.DriverPostgres:
		dsn := cfg.PostgresDSN()
		pool, err := pginfra.NewPool(ctx, dsn, pginfra.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxConnLife: cfg.DBMaxConnLife,
		})
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := pginfra.RunMigrations(dsn, cfg.MigrationsDir, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pginfra.NewStore(pool), nil
	case config.DriverMemory:
		logger.Warn("using in-memory store, data is lost on restart")
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}
}

// Close releases everything the container opened.
func (c *Container) Close(ctx context.Context) error {
	var firstErr error
	if c.Store != nil {
		if err := c.Store.Close(ctx); err != nil {
			firstErr = err
		}
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.RabbitPub != nil {
		c.RabbitPub.Close()
	}
	return firstErr
}

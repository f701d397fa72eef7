package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"singsing/storefront/internal/app/config"
	"singsing/storefront/internal/app/domains/modules/mdcart"
	"singsing/storefront/internal/app/domains/modules/mdnotice"
	"singsing/storefront/internal/app/domains/modules/mdprice"
	"singsing/storefront/internal/app/domains/repo/rpcart"
	"singsing/storefront/internal/app/domains/services/svcart"
	"singsing/storefront/internal/app/infra/persistence/kvstore"
	"singsing/storefront/internal/app/infra/persistence/mysql"
	"singsing/storefront/internal/app/infra/persistence/redis"
	"singsing/storefront/internal/app/infra/pubsub"
	"singsing/storefront/internal/app/pkg/dispatch"
	"singsing/storefront/internal/app/pkg/logger"
	"singsing/storefront/internal/app/server/handlers/cart"
	"singsing/storefront/internal/app/server/routers"
)

// App is the wired application.
type App struct {
	Engine *gin.Engine
	Prices *mdprice.PriceModule
	Logger logger.Logger
}

// InitializeApp builds every component selected by cfg. The returned cleanup
// closes what was opened, in reverse order.
func InitializeApp(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	zapLogger, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("create logger failed: %w", err)
	}
	closers = append(closers, func() { _ = zapLogger.Sync() })

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	var rdb *goredis.Client
	if cfg.Storage.Driver == config.DriverRedis || cfg.Notify.Driver == config.NotifyRedis {
		rdb, err = redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("connect redis failed: %w", err)
		}
		closers = append(closers, func() { _ = rdb.Close() })
	}

	store, closeStore, err := newStore(ctx, cfg, rdb)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if closeStore != nil {
		closers = append(closers, closeStore)
	}

	var publisher mdnotice.Publisher
	switch cfg.Notify.Driver {
	case config.NotifyRedis:
		publisher = redis.NewPubSubClient(rdb)
	default:
		publisher = pubsub.NewLocal()
	}

	prices := mdprice.NewPriceModule(cfg.Pricing.PriceFile, zapLogger)
	if err := prices.Reload(ctx); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load price table failed: %w", err)
	}

	cartRepo := rpcart.NewCartRepository(store, cfg.Cart.StorageKey, zapLogger)
	cartService := svcart.NewCartService(
		mdcart.NewCartModule(cartRepo),
		mdnotice.NewNoticeModule(publisher, cfg.Cart.ToastMessage, cfg.Cart.ToastDuration),
		prices,
		dispatch.NewCutoff(cfg.Pricing.CutoffHour, cfg.Location(), nil),
		zapLogger,
	)

	engine := routers.SetupRoutes(cart.NewCartHandler(cartService, zapLogger), zapLogger)
	zapLogger.Infof(ctx, "app initialized: storage=%s notify=%s", cfg.Storage.Driver, cfg.Notify.Driver)

	return &App{Engine: engine, Prices: prices, Logger: zapLogger}, cleanup, nil
}

// newStore opens the configured cart storage backend.
func newStore(ctx context.Context, cfg *config.Config, rdb *goredis.Client) (kvstore.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		store, err := kvstore.NewFileStore(cfg.Storage.FileDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage failed: %w", err)
		}
		return store, nil, nil
	case config.DriverRedis:
		return redis.NewKVStore(rdb, cfg.Cart.TTL), nil, nil
	case config.DriverMySQL:
		db, err := mysql.Open(cfg.MySQL.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql failed: %w", err)
		}
		store := mysql.NewKVStore(db)
		if cfg.MySQL.AutoMigrate {
			if err := store.Migrate(ctx); err != nil {
				_ = store.Close()
				return nil, nil, fmt.Errorf("migrate mysql failed: %w", err)
			}
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return kvstore.NewMemoryStore(), nil, nil
	}
}

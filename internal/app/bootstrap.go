package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mkarpushin/shopfront/config"
	cachemem "github.com/mkarpushin/shopfront/internal/cache/memory"
	"github.com/mkarpushin/shopfront/internal/kafka"
	"github.com/mkarpushin/shopfront/internal/ports"
	"github.com/mkarpushin/shopfront/internal/store/file"
	"github.com/mkarpushin/shopfront/internal/store/memory"
	pgstore "github.com/mkarpushin/shopfront/internal/store/postgres"
	rest "github.com/mkarpushin/shopfront/internal/transport/http"
	"github.com/mkarpushin/shopfront/internal/upstream"
	"github.com/mkarpushin/shopfront/internal/usecase"
	"github.com/mkarpushin/shopfront/pkg/logger"
	"github.com/mkarpushin/shopfront/pkg/metrics"
	"github.com/mkarpushin/shopfront/pkg/telemetry"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer).
// KafkaConsumer может быть nil — консьюмер собирается только при включённой Kafka.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	KafkaConsumer   ports.MessageConsumer
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newStateStore — бэкенд персистентности по конфигурации.
// Возвращаемая функция закрывает ресурсы бэкенда (nil-safe).
func newStateStore(ctx context.Context, cfg config.Store) (ports.StateStore, func(), error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Backend)) {
	case "", "file":
		st, err := file.NewStateStore(cfg.Dir)
		if err != nil {
			return nil, func() {}, err
		}
		return st, func() {}, nil
	case "postgres":
		if err := pgstore.Migrate(cfg.DSN); err != nil {
			return nil, func() {}, err
		}
		pool, err := pgstore.NewPool(ctx, cfg.DSN, cfg.MaxConns)
		if err != nil {
			return nil, func() {}, err
		}
		return pgstore.NewStateStore(pool), pool.Close, nil
	default:
		return nil, func() {}, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Персистентность снапшотов состояния.
	state, closeState, err := newStateStore(ctx, cfg.Store)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Сторы состояния: восстанавливаются из снапшотов при создании.
	session := memory.NewSessionStore(ctx, state, logg)
	cart := memory.NewCartStore(ctx, state, logg)
	wishlist := memory.NewWishlistStore(ctx, state, logg)

	// Кэши ответов апстрима.
	products := cachemem.NewProductQueryCache(cfg.ProductCache.Capacity, cfg.ProductCache.TTL)
	orderLists := cachemem.NewOrderListCache(cfg.OrderCache.Capacity, cfg.OrderCache.TTL)

	// HTTP-клиент commerce API; токен берётся из сессии на каждый запрос.
	client, err := upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, session, logg)
	if err != nil {
		closeState()
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Сборка юзкейсов.
	services := rest.Services{
		Catalog:  usecase.NewCatalogService(client, products, logg),
		Orders:   usecase.NewOrderService(client, orderLists, session, logg),
		Checkout: usecase.NewCheckoutService(client, client, cart, orderLists, session, logg),
		Auth:     usecase.NewAuthService(client, session, orderLists, logg),
		Wishlist: usecase.NewWishlistService(wishlist, client, session, logg),
		Account:  usecase.NewAccountService(client, session, logg),
		Cart:     cart,
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(services, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, cfg.HTTP.StaticDir, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Консьюмер событий каталога/заказов — по флагу конфигурации.
	var consumer ports.MessageConsumer
	if cfg.Kafka.Enabled {
		invalidator := usecase.NewCacheInvalidator(products, orderLists, logg)
		kafkaCfg := kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer = kafka.NewConsumer(&kafkaCfg, invalidator, logg)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		KafkaConsumer:   consumer,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "kafka consumer close error: %v", err)
			}
		}

		closeState()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и консьюмера; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	// Запуск консьюмера.
	if a.KafkaConsumer != nil {
		go func() {
			a.Logger.Infof(ctx, "kafka consumer starting")
			if err := a.KafkaConsumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка консьюмера.
	if a.KafkaConsumer != nil {
		if err := a.KafkaConsumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

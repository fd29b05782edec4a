package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/campus_market/config"
	cachemem "github.com/Gunvolt24/campus_market/internal/cache/memory"
	"github.com/Gunvolt24/campus_market/internal/domain"
	"github.com/Gunvolt24/campus_market/internal/lookup"
	"github.com/Gunvolt24/campus_market/internal/ports"
	"github.com/Gunvolt24/campus_market/internal/remote"
	"github.com/Gunvolt24/campus_market/internal/session"
	rest "github.com/Gunvolt24/campus_market/internal/transport/http"
	"github.com/Gunvolt24/campus_market/internal/usecase"
	"github.com/Gunvolt24/campus_market/pkg/clock"
	"github.com/Gunvolt24/campus_market/pkg/logger"
	"github.com/Gunvolt24/campus_market/pkg/metrics"
	"github.com/Gunvolt24/campus_market/pkg/money"
	"github.com/Gunvolt24/campus_market/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы.
type App struct {
	Logger          ports.Logger     // логгер
	HTTPServer      *http.Server     // HTTP-сервер
	Sessions        *session.Manager // реестр сессионных контейнеров
	sweepInterval   time.Duration    // период вычистки простаивающих сессий
	gracefulTimeout time.Duration    // время ожидания завершения HTTP-сервера
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

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

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

	// Системные часы и планировщик; в тестах заменяются виртуальными.
	sysClock := clock.System{}

	// Клиенты удалённых сервисов витрины.
	cartClient := remote.NewCartClient(cfg.Remote.CartURL, cfg.Remote.Timeout)
	wishlistClient := remote.NewWishlistClient(cfg.Remote.WishlistURL, cfg.Remote.Timeout)
	searchClient := remote.NewSearchClient(cfg.Remote.SearchURL, cfg.Remote.Timeout)
	bankClient := remote.NewBankClient(cfg.Remote.BankURL, cfg.Remote.Timeout)
	paymentClient := remote.NewPaymentClient(cfg.Remote.PaymentURL, cfg.Remote.Timeout)

	// Сборка сервисов слоя согласования.
	fees := money.SurchargeSchedule{
		Rate:          cfg.Fees.Rate,
		Flat:          cfg.Fees.Flat,
		FlatThreshold: cfg.Fees.FlatThreshold,
		Cap:           cfg.Fees.Cap,
	}

	categoriesSlot := cachemem.NewSlot[[]domain.Category]("categories", cfg.Cache.CategoriesTTL, sysClock)
	catalogService := usecase.NewCatalogService(searchClient, categoriesSlot, logg)
	cartService := usecase.NewCartService(cartClient, paymentClient, logg, fees)
	resolver := lookup.NewAccountResolver(bankClient, cfg.Cache.BanksTTL, cfg.Bank.ResolveCooldown, sysClock, logg)

	// Сессионные контейнеры: избранное и дебаунсер подсказок на сессию.
	wishlistTTL := cfg.Cache.WishlistTTL
	quiet := cfg.Search.QuietPeriod
	sessions := session.NewManager(func(string) *session.Store {
		st := &session.Store{Suggest: &session.SuggestBox{}}
		st.Wishlist = usecase.NewWishlistService(
			wishlistClient,
			cachemem.NewSlot[[]domain.WishlistEntry]("wishlist", wishlistTTL, sysClock),
			sysClock,
			logg,
		)
		st.Search = lookup.NewSearchDebouncer(searchClient, sysClock, logg, quiet, st.Suggest.Put)
		return st
	}, cfg.Session.IdleTTL, sysClock, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(
		catalogService,
		cartService,
		resolver,
		sessions,
		logg,
		cfg.Search.PageSize,
		cfg.Search.MaxPageSize,
		cfg.Bank.Currency,
		cfg.HTTP.HandlerTimeout,
	)
	router := rest.NewRouter(httpHandler, cfg.Tracing.Enabled, cfg.Tracing.ServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Sessions:        sessions,
		sweepInterval:   cfg.Session.SweepInterval,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновую вычистку сессий; ждёт отмены
// контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Вычистка простаивающих сессий.
	go func() {
		a.Sessions.RunSweeper(ctx, a.sweepInterval)
	}()

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
		a.Logger.Warnf(ctx, "background error: %v", err)
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

	a.Logger.Infof(ctx, "service stopped")
	return nil
}

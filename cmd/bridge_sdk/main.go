package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bridge_sdk/internal/app/provider"
	"bridge_sdk/internal/app/service"
	"bridge_sdk/internal/app/state"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/infrastructure/configloader"
	"bridge_sdk/internal/infrastructure/directoryloader"
	clientprovider "bridge_sdk/internal/infrastructure/network/client"
	"bridge_sdk/internal/infrastructure/restapi"
	"bridge_sdk/internal/infrastructure/walletloader"
	"bridge_sdk/internal/pkg/logger"
	"bridge_sdk/internal/pkg/metrics"

	"github.com/joho/godotenv"
	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultConfigPath = "config/config.yml"
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// .env необязателен: переменные могут прийти из окружения процесса.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "WARN: failed to load .env: %v\n", err)
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = defaultConfigPath
	}
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration from %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	zapLogger, err := newZapLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync() //nolint:errcheck

	slogLevel, _ := logger.ParseLevel(cfg.Logging.Level)
	slogHandler := slogzap.Option{Level: slogLevel, Logger: zapLogger}.NewZapHandler()
	logger.Use(slog.New(slogHandler))

	logger.Info("Bridge SDK service starting", "config", cfgPath)
	metrics.MustRegisterMetrics()

	appLogger := logger.NewSlogAdapter()

	// Источники справочника: URL > файл > встроенные определения.
	sources := directoryloader.SelectSources(cfg, zapLogger, logger.NewComponentAdapter("directory"))
	directory := provider.NewDirectoryProvider(
		sources.Chains,
		sources.Assets,
		time.Duration(cfg.Cache.DefaultExpirationMinutes)*time.Minute,
		time.Duration(cfg.Cache.CleanupIntervalMinutes)*time.Minute,
		logger.NewComponentAdapter("directory"),
	)

	wallets := provider.NewWalletProvider(logger.NewComponentAdapter("wallet"))
	if cfg.Wallet.AddressFile != "" {
		source := walletloader.NewWalletFileLoader(cfg.Wallet.AddressFile, appLogger.Info)
		if err := wallets.LoadInitial(source); err != nil {
			logger.Warn("Initial wallet was not loaded", "error", err)
		}
	}

	sdkState := state.NewSDKState()
	factory := clientprovider.NewBridgeSDKFactory(cfg, logger.NewComponentAdapter("sdk_factory"))

	selectors := entity.EnvironmentSelectors{
		Network:     cfg.Environment.Network,
		Environment: cfg.Environment.Environment,
	}
	initializer := service.NewSDKInitializer(
		directory.Chains(),
		directory.Assets(),
		selectors,
		factory,
		sdkState,
		logger.NewComponentAdapter(service.TaskInitializer),
		cfg.SDK.DiscardStaleResults,
	)
	synchronizer := service.NewSignerSynchronizer(sdkState, wallets.Signal(), logger.NewComponentAdapter(service.TaskSignerSync))

	onTaskError := service.TaskErrorHandler(appLogger)
	initEffect := initializer.Effect(onTaskError)
	syncEffect := synchronizer.Effect(onTaskError)

	router := restapi.SetupRouter(
		cfg.Server,
		restapi.NewSDKHandler(sdkState, initializer, appLogger),
		restapi.NewWalletHandler(wallets, appLogger),
	)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return initEffect.Watch(gctx, initializer.Sources()...)
	})
	g.Go(func() error {
		return syncEffect.Watch(gctx, synchronizer.Sources()...)
	})
	g.Go(func() error {
		interval := time.Duration(cfg.Directory.RefreshIntervalSeconds) * time.Second
		return directory.Run(gctx, interval)
	})
	g.Go(func() error {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Bridge SDK service stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Bridge SDK service stopped")
}

func newZapLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapCfg.Level = atomicLevel
	return zapCfg.Build()
}

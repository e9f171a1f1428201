package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"bridge_sdk/internal/app/provider"
	"bridge_sdk/internal/app/service"
	"bridge_sdk/internal/domain/entity"
	"bridge_sdk/internal/infrastructure/configloader"
	"bridge_sdk/internal/infrastructure/directoryloader"
	"bridge_sdk/internal/pkg/logger"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"gopkg.in/yaml.v3"
)

var (
	configPath  string
	network     string
	environment string
	format      string
	loadTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "configdump",
	Short: "Print the SDK client config built from the chain and asset directory",
	Long: `Loads the chain and asset lists once, resolves the network and environment
selectors and prints the resulting client config.

Selectors given as flags take precedence over PUBLIC_NETWORK / PUBLIC_ENVIRONMENT
and the config file.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to the YAML config file (default $CONFIG_PATH or config/config.yml)")
	rootCmd.Flags().StringVar(&network, "network", "", "Network selector override (testnet, mainnet, local)")
	rootCmd.Flags().StringVar(&environment, "environment", "", "Environment selector override (staging, production)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "yaml", "Output format: yaml or json")
	rootCmd.Flags().DurationVar(&loadTimeout, "timeout", 30*time.Second, "Timeout for loading the directory")
}

func main() {
	// Собственный вывод утилиты идет через logrus в stderr, stdout остается под конфиг.
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("Failed to load .env: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("configdump failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	path := configPath
	if path == "" {
		path = envOr("CONFIG_PATH", "config/config.yml")
	}
	cfg, err := configloader.Load(path)
	if err != nil {
		return err
	}
	if network != "" {
		cfg.Environment.Network = network
	}
	if environment != "" {
		cfg.Environment.Environment = environment
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	if lvl, err := zap.ParseAtomicLevel(cfg.Logging.Level); err == nil {
		zapCfg.Level = lvl
	}
	zapLogger, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize zap logger: %w", err)
	}
	defer zapLogger.Sync() //nolint:errcheck
	logger.Use(slog.New(zapslog.NewHandler(zapLogger.Core())))

	appLogger := logger.NewSlogAdapter()
	sources := directoryloader.SelectSources(cfg, zapLogger, appLogger)
	directory := provider.NewDirectoryProvider(sources.Chains, sources.Assets, time.Minute, time.Minute, appLogger)

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()
	if err := directory.Refresh(loadCtx); err != nil {
		return fmt.Errorf("failed to load directory: %w", err)
	}

	clientCfg := service.BuildClientConfig(
		directory.Chains().Load(),
		directory.Assets().Load(),
		entity.EnvironmentSelectors{Network: cfg.Environment.Network, Environment: cfg.Environment.Environment},
		appLogger,
	)

	data, err := renderConfig(clientCfg, format)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}

func renderConfig(cfg entity.ClientConfig, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config as yaml: %w", err)
		}
		return data, nil
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config as json: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/itemplate/itemplate/internal/config"
	"github.com/itemplate/itemplate/pkg/engine"
	"github.com/itemplate/itemplate/pkg/events"
	"github.com/itemplate/itemplate/pkg/item"
	"github.com/itemplate/itemplate/pkg/modifier"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set at build time
	Version = "dev"
	// BuildTime is set at build time
	BuildTime = "unknown"
)

func main() {
	varsFile := flag.String("vars", "", "variable map JSON file (enables variable-map mode)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting itemplate",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	// Log configuration (without sensitive data)
	logger.Info("configuration loaded", zap.String("config", cfg.String()))

	// Load items
	data, err := os.ReadFile(cfg.ItemsFile)
	if err != nil {
		logger.Fatal("failed to read items file",
			zap.String("file", cfg.ItemsFile),
			zap.Error(err),
		)
	}
	items, err := item.FromJSON(data)
	if err != nil {
		logger.Fatal("failed to parse items file",
			zap.String("file", cfg.ItemsFile),
			zap.Error(err),
		)
	}
	logger.Info("items loaded",
		zap.String("file", cfg.ItemsFile),
		zap.Int("count", len(items)),
	)

	mode, err := modifier.ParseMode(cfg.ModifierMode)
	if err != nil {
		logger.Fatal("invalid modifier mode", zap.Error(err))
	}

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithLocale(cfg.Locale),
		engine.WithMode(mode),
	}

	// Wire Redis event publishing when configured
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		logger.Info("connected to redis", zap.String("addr", cfg.RedisAddr))

		opts = append(opts, engine.WithPublisher(
			events.NewRedisPublisher(redisClient, cfg.EventStream, logger),
		))
	}

	// Initialize engine
	eng, err := engine.New(items, opts...)
	if err != nil {
		logger.Fatal("failed to initialize engine", zap.Error(err))
	}

	if cfg.CELEnabled {
		eng.RegisterModifier(modifier.NewExpr())
	}

	// Read the template from arguments or stdin
	template, err := readTemplate(flag.Args())
	if err != nil {
		logger.Fatal("failed to read template", zap.Error(err))
	}

	// Process
	var output string
	if *varsFile != "" {
		variables, err := loadVariables(*varsFile)
		if err != nil {
			logger.Fatal("failed to load variable map",
				zap.String("file", *varsFile),
				zap.Error(err),
			)
		}
		output, err = eng.ProcessVariables(template, variables)
		if err != nil {
			logger.Fatal("template processing failed", zap.Error(err))
		}
	} else {
		output, err = eng.ProcessTemplate(template)
		if err != nil {
			logger.Fatal("template processing failed", zap.Error(err))
		}
	}

	fmt.Println(output)
}

// readTemplate returns the template from the remaining arguments, falling
// back to stdin when none are given.
func readTemplate(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// loadVariables parses a variable map JSON file
func loadVariables(path string) (map[string]engine.VariableSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var variables map[string]engine.VariableSpec
	if err := json.Unmarshal(data, &variables); err != nil {
		return nil, fmt.Errorf("failed to parse variable map: %w", err)
	}

	return variables, nil
}

// initLogger initializes the logger
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

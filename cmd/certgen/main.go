package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"certgen/internal/certificates"
	"certgen/internal/config"
)

var (
	variantArg = flag.String("variant", "", "certificate variant: reference, status or draftboard")
	fieldsArg  = flag.String("fields", "", "path to the JSON field bundle")
	outArg     = flag.String("out", "certificate.pdf", "destination PDF path")
	configArg  = flag.String("config", "config.json", "path to the configuration file")
)

func main() {
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig(*configArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Initialize logger
	logger := buildLogger(cfg.Logging.Level)
	defer logger.Sync()

	style, err := cfg.Style()
	if err != nil {
		logger.Fatal("Failed to load font", zap.Error(err))
	}

	bundle, err := loadBundle(certificates.Variant(*variantArg), *fieldsArg)
	if err != nil {
		logger.Fatal("Failed to load field bundle", zap.Error(err))
	}

	generator := certificates.NewGenerator(style, logger)
	if err := generator.Generate(bundle, *outArg); err != nil {
		logger.Fatal("Failed to generate certificate", zap.Error(err))
	}
}

// buildLogger creates a development logger at the configured level.
func buildLogger(level string) *zap.Logger {
	zcfg := zap.NewDevelopmentConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, _ := zcfg.Build()
	return logger
}

// loadBundle decodes the selected variant's field bundle from a JSON file.
func loadBundle(variant certificates.Variant, path string) (certificates.Bundle, error) {
	if path == "" {
		return nil, fmt.Errorf("missing -fields: a JSON field bundle is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch variant {
	case certificates.VariantReference:
		var d certificates.ReferenceData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse field bundle: %w", err)
		}
		return d, nil
	case certificates.VariantStudyStatus:
		var d certificates.StudyStatusData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse field bundle: %w", err)
		}
		return d, nil
	case certificates.VariantDraftBoard:
		var d certificates.DraftBoardData
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to parse field bundle: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown variant %q (want reference, status or draftboard)", variant)
	}
}

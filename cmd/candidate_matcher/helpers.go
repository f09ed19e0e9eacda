package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jonathan/candidate-matcher/internal/config"
	"github.com/jonathan/candidate-matcher/internal/embedding"
	"github.com/jonathan/candidate-matcher/internal/extraction"
	"github.com/jonathan/candidate-matcher/internal/logger"
	"github.com/jonathan/candidate-matcher/internal/matching"
	"github.com/jonathan/candidate-matcher/internal/parsing"
	"github.com/jonathan/candidate-matcher/internal/types"
	"go.uber.org/zap"
)

// loadConfig loads the config selected by the --config flag.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	cfg.JSONLogs = cfg.JSONLogs || jsonLogs
	cfg.Debug = cfg.Debug || debug
	return cfg, nil
}

// newLogger builds the zap logger from the effective config.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.JSONLogs, cfg.Debug)
}

// newEngine builds a matching engine over a lazily-initialized Gemini
// embedder. The embedder is created on first use and shared across every
// match in the process.
func newEngine(cfg *config.Config) *matching.Engine {
	apiKey := cfg.ResolveAPIKey()
	model := cfg.EmbeddingModel

	lazy := embedding.NewLazy(func(ctx context.Context) (embedding.Embedder, error) {
		return embedding.NewGeminiEmbedder(ctx, apiKey, model)
	})

	return matching.NewEngine(lazy).
		WithHeatmapThreshold(cfg.HeatmapThreshold).
		WithHeatmapLimit(cfg.HeatmapLimit)
}

// embedContext returns a context bounded by the configured embedding timeout.
func embedContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	if cfg.EmbedTimeoutSeconds <= 0 {
		return context.Background(), func() {}
	}
	return context.WithTimeout(context.Background(), time.Duration(cfg.EmbedTimeoutSeconds)*time.Second)
}

// loadResume loads a parsed resume either from a source document (extract then
// parse) or from a pre-parsed JSON file. Extraction is best-effort: an empty
// or failed extraction is logged and parsing proceeds on empty text, yielding
// a resume with empty fields rather than aborting the command.
func loadResume(cfg *config.Config, log *zap.Logger, docPath, jsonPath string) (*types.ParsedResume, error) {
	if jsonPath != "" {
		var resume types.ParsedResume
		if err := readJSONFile(jsonPath, &resume); err != nil {
			return nil, err
		}
		return &resume, nil
	}

	cat, err := cfg.Catalog()
	if err != nil {
		return nil, err
	}

	outcome := extraction.ExtractText(docPath)
	switch outcome.Status {
	case extraction.StatusError:
		log.Warn("text extraction failed, continuing with empty fields",
			zap.String("file", docPath), zap.Error(outcome.Err))
	case extraction.StatusEmpty:
		log.Warn("document contained no extractable text", zap.String("file", docPath))
	}

	return parsing.NewFieldExtractor(cat).Extract(outcome.TextOrEmpty()), nil
}

// readJSONFile decodes a JSON file into out.
func readJSONFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// writeResult writes v as indented JSON to the given path, or to stdout when
// the path is empty.
func writeResult(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if path == "" {
		fmt.Fprintln(os.Stdout, string(data))
		return nil
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

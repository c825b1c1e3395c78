package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/talent-match/internal/embedding"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/schemas"
	"github.com/jonathan/talent-match/internal/similarity"
)

// readJSONFile reads and unmarshals a JSON file into v.
func readJSONFile(path string, v any) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from %s: %w", path, err)
	}
	return nil
}

// writeJSONFile marshals v with indentation and writes it to path, creating
// parent directories as needed.
func writeJSONFile(path string, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}

	if err := os.WriteFile(path, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// validateInput validates a JSON file against a named schema and fails on a
// non-conforming document. A missing schema file skips validation.
func validateInput(schemaName, jsonPath string) error {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName))
	if schemaPath == "" {
		return nil
	}
	if err := schemas.ValidateFile(schemaPath, jsonPath); err != nil {
		return fmt.Errorf("input %s failed schema validation: %w", jsonPath, err)
	}
	return nil
}

// warnOutput validates a written output file against a named schema.
// Output validation is a safety check, not a requirement, so failures
// only produce a warning.
func warnOutput(schemaName, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(filepath.Join("schemas", schemaName))
	if schemaPath == "" {
		return
	}
	if err := schemas.ValidateFile(schemaPath, jsonPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Output validation failed: %v\n", err)
	}
}

// buildEmbedder wires the embedding service from the resolved configuration:
// Gemini provider when an API key is present, the local fallback otherwise,
// plus the optional PostgreSQL cache tier. The returned cleanup closes the
// store connection.
func buildEmbedder(ctx context.Context, apiKey, databaseURL string) (*embedding.Service, func(), error) {
	embedCfg := embedding.ConfigFromEnv()
	if apiKey != "" {
		embedCfg.APIKey = apiKey
	}

	provider, err := embedding.NewProvider(ctx, embedCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	var store embedding.Store
	cleanup := func() {}
	if databaseURL != "" {
		pgStore, err := embedding.ConnectPGStore(ctx, databaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to embedding store: %w", err)
		}
		store = pgStore
		cleanup = pgStore.Close
	}

	return embedding.NewService(nil, store, provider, embedCfg), cleanup, nil
}

// buildMatcher assembles the full ranking pipeline on top of buildEmbedder.
func buildMatcher(ctx context.Context, apiKey, databaseURL string, workers int) (*matching.Orchestrator, func(), error) {
	embedder, cleanup, err := buildEmbedder(ctx, apiKey, databaseURL)
	if err != nil {
		return nil, nil, err
	}
	engine := similarity.NewEngine(workers)
	return matching.New(embedder, engine), cleanup, nil
}

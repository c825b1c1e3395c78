package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/embedding"
	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/textnorm"
)

var embedCmd = &cobra.Command{
	Use:   "embed",
	Short: "Embed a batch of texts through the caching service",
	Long:  "Reads texts (one per line), resolves each to an embedding vector through the cache and provider, and writes the vectors with their content fingerprints as JSON.",
	RunE:  runEmbed,
}

var (
	embedInput       string
	embedOutput      string
	embedKind        string
	embedAPIKey      string
	embedDatabaseURL string
	embedVerbose     bool
)

// embedEntry is one line of embed output: the text's fingerprint and vector.
type embedEntry struct {
	Fingerprint string           `json:"fingerprint"`
	Vector      embedding.Vector `json:"vector"`
}

// embedOutputDoc is the embed command's output document.
type embedOutputDoc struct {
	Dimension int          `json:"dimension"`
	Entries   []embedEntry `json:"entries"`
}

func init() {
	embedCmd.Flags().StringVarP(&embedInput, "in", "i", "", "Path to input text file, one text per line (required)")
	embedCmd.Flags().StringVarP(&embedOutput, "out", "o", "", "Path to output JSON file (required)")
	embedCmd.Flags().StringVar(&embedKind, "kind", "profile", "Cache lifetime kind: profile (24h) or session (1h)")
	embedCmd.Flags().StringVar(&embedAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	embedCmd.Flags().StringVar(&embedDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	embedCmd.Flags().BoolVarP(&embedVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := embedCmd.MarkFlagRequired("in"); err != nil {
		panic(fmt.Sprintf("failed to mark in flag as required: %v", err))
	}
	if err := embedCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(embedCmd)
}

func runEmbed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	// 1. Read input texts, one per line, skipping blanks
	content, err := os.ReadFile(embedInput)
	if err != nil {
		return fmt.Errorf("failed to read input file %s: %w", embedInput, err)
	}

	var texts []string
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			texts = append(texts, line)
		}
	}
	if len(texts) == 0 {
		return fmt.Errorf("input file %s contains no texts", embedInput)
	}

	// 2. Resolve the kind
	kind := embedding.KindProfile
	switch embedKind {
	case "profile":
	case "session":
		kind = embedding.KindSession
	default:
		return fmt.Errorf("invalid kind %q: must be profile or session", embedKind)
	}

	// 3. Build the embedding service
	apiKey := embedAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	databaseURL := embedDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	embedder, cleanup, err := buildEmbedder(ctx, apiKey, databaseURL)
	if err != nil {
		return err
	}
	defer cleanup()

	// 4. Embed
	kinds := make([]embedding.TextKind, len(texts))
	for i := range kinds {
		kinds[i] = kind
	}
	vectors, err := embedder.EmbedBatch(ctx, texts, kinds)
	if err != nil {
		return fmt.Errorf("failed to embed texts: %w", err)
	}

	// 5. Write output
	doc := embedOutputDoc{
		Dimension: embedder.Dimension(),
		Entries:   make([]embedEntry, len(texts)),
	}
	for i, text := range texts {
		doc.Entries[i] = embedEntry{
			Fingerprint: textnorm.FingerprintRaw(text),
			Vector:      vectors[i],
		}
	}
	if err := writeJSONFile(embedOutput, doc); err != nil {
		return err
	}

	if embedVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintEmbedSummary(len(texts), embedder.Dimension(), embedder.Cache().Len())
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully embedded %d texts to %s\n", len(texts), embedOutput)

	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/server"
)

var (
	servePort        int
	serveAPIKey      string
	serveDatabaseURL string
	serveWorkers     int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for ranking, skill matching, weight calculation, and embedding.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().IntVar(&serveWorkers, "workers", 0, "Similarity worker count (defaults to CPU count)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	apiKey := serveAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		_, _ = fmt.Fprintln(os.Stderr, "Warning: no API key configured, embeddings use the local fallback generator")
	}

	databaseURL := serveDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}

	port := servePort
	if !cmd.Flags().Changed("port") {
		if raw := os.Getenv("PORT"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				return fmt.Errorf("invalid PORT environment variable %q: %w", raw, err)
			}
			port = parsed
		}
	}

	cfg := server.Config{
		Port:        port,
		APIKey:      apiKey,
		DatabaseURL: databaseURL,
		Workers:     serveWorkers,
	}

	srv, err := server.New(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

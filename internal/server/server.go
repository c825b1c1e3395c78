// Package server provides the HTTP REST API for the matching engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/talent-match/internal/embedding"
	"github.com/jonathan/talent-match/internal/matching"
	"github.com/jonathan/talent-match/internal/similarity"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	matcher    *matching.Orchestrator
	embedder   *embedding.Service
	store      *embedding.PGStore // optional persistent cache tier
}

// Config holds server configuration
type Config struct {
	Port        int
	APIKey      string
	Model       string
	Dimension   int
	DatabaseURL string
	Workers     int
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	embedCfg := embedding.DefaultConfig()
	embedCfg.APIKey = cfg.APIKey
	if cfg.Model != "" {
		embedCfg.Model = cfg.Model
	}
	if cfg.Dimension > 0 {
		embedCfg.Dimension = cfg.Dimension
	}

	provider, err := embedding.NewProvider(ctx, embedCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	// The persistent cache is optional; without a database URL the in-memory
	// tier alone serves the process lifetime.
	var store *embedding.PGStore
	if cfg.DatabaseURL != "" {
		store, err = embedding.ConnectPGStore(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to embedding store: %w", err)
		}
	}

	embedder := embedding.NewService(nil, storeOrNil(store), provider, embedCfg)
	engine := similarity.NewEngine(cfg.Workers)
	matcher := matching.New(embedder, engine)

	s := &Server{
		matcher:  matcher,
		embedder: embedder,
		store:    store,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/rank", s.handleRank)
	mux.HandleFunc("POST /api/v1/skill-match", s.handleSkillMatch)
	mux.HandleFunc("POST /api/v1/weights", s.handleWeights)
	mux.HandleFunc("POST /api/v1/embed", s.handleEmbed)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Ranking large pools can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// storeOrNil converts a typed nil *PGStore into a nil Store interface.
func storeOrNil(store *embedding.PGStore) embedding.Store {
	if store == nil {
		return nil
	}
	return store
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.store != nil {
		s.store.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

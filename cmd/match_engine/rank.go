// Package main implements the match_engine CLI tool for candidate-role ranking.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/config"
	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank a candidate pool against a role profile",
	Long: `Scores every candidate against a role by blending a structured skill-match
score with embedding-based contextual similarity, producing a MatchResults JSON
sorted by final score descending.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runRank,
}

var (
	rankConfigPath  string
	rankRole        string
	rankCandidates  string
	rankCatalog     string
	rankOutput      string
	rankAPIKey      string
	rankDatabaseURL string
	rankWorkers     int
	rankVerbose     bool
)

func init() {
	rankCmd.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rankCmd.Flags().StringVarP(&rankRole, "role", "r", "", "Path to input RoleProfile JSON file")
	rankCmd.Flags().StringVarP(&rankCandidates, "candidates", "c", "", "Path to input CandidateProfiles JSON file")
	rankCmd.Flags().StringVar(&rankCatalog, "catalog", "", "Path to input SkillCatalog JSON file (optional)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output MatchResults JSON file")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "Similarity worker count (defaults to CPU count)")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	rankCmd.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for the persistent embedding cache
	rankCmd.Flags().StringVar(&rankDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if rankConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if rankVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", rankConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("role") {
		cfg.Role = rankRole
	}
	if cmd.Flags().Changed("candidates") {
		cfg.Candidates = rankCandidates
	}
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = rankCatalog
	}
	if cmd.Flags().Changed("out") {
		cfg.Output = rankOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = rankAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = rankDatabaseURL
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = rankWorkers
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rankVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{})

	// Step 4: Validate required fields
	if cfg.Role == "" {
		return fmt.Errorf("--role must be provided (via flag or config)")
	}
	if cfg.Candidates == "" {
		return fmt.Errorf("--candidates must be provided (via flag or config)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("--out must be provided (via flag or config)")
	}

	// Step 5: API key and database URL fall back to the environment. Both are
	// optional: without a key the local embedding fallback is used, and without
	// a database the cache is in-memory only.
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 6: Load and validate inputs
	if err := validateInput("role_profile.schema.json", cfg.Role); err != nil {
		return err
	}
	var role types.RoleProfile
	if err := readJSONFile(cfg.Role, &role); err != nil {
		return err
	}

	if err := validateInput("candidate_profiles.schema.json", cfg.Candidates); err != nil {
		return err
	}
	var candidates []types.CandidateProfile
	if err := readJSONFile(cfg.Candidates, &candidates); err != nil {
		return err
	}

	var catalog types.SkillCatalog
	if cfg.Catalog != "" {
		if err := validateInput("skill_catalog.schema.json", cfg.Catalog); err != nil {
			return err
		}
		if err := readJSONFile(cfg.Catalog, &catalog); err != nil {
			return err
		}
	}

	// Step 7: Run the ranking pipeline
	matcher, cleanup, err := buildMatcher(ctx, cfg.APIKey, cfg.DatabaseURL, cfg.Workers)
	if err != nil {
		return err
	}
	defer cleanup()

	req := types.RankRequest{
		Role:       role,
		Candidates: candidates,
		Catalog:    catalog,
	}

	results, err := matcher.RankCandidates(ctx, &req)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	// Step 8: Write output
	if err := writeJSONFile(cfg.Output, results); err != nil {
		return err
	}
	warnOutput("match_results.schema.json", cfg.Output)

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRoleProfile(&role, catalog)
		printer.PrintWeights(matcher.Weights(role, catalog))
		printer.PrintMatchResults(results)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully ranked %d candidates to %s\n", len(results), cfg.Output)

	return nil
}

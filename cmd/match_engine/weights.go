package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/types"
	"github.com/jonathan/talent-match/internal/weights"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Compute the technical/contextual weight distribution for a role",
	Long:  "Analyzes a role's description and skill requirements to compute the alpha/beta blend applied when combining skill-match and contextual scores.",
	RunE:  runWeights,
}

var (
	weightsRole    string
	weightsCatalog string
	weightsOutput  string
	weightsVerbose bool
)

func init() {
	weightsCmd.Flags().StringVarP(&weightsRole, "role", "r", "", "Path to input RoleProfile JSON file (required)")
	weightsCmd.Flags().StringVar(&weightsCatalog, "catalog", "", "Path to input SkillCatalog JSON file (optional)")
	weightsCmd.Flags().StringVarP(&weightsOutput, "out", "o", "", "Path to output JSON file (optional, prints to stdout if omitted)")
	weightsCmd.Flags().BoolVarP(&weightsVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := weightsCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(weightsCmd)
}

func runWeights(_ *cobra.Command, _ []string) error {
	// 1. Load role profile
	if err := validateInput("role_profile.schema.json", weightsRole); err != nil {
		return err
	}
	var role types.RoleProfile
	if err := readJSONFile(weightsRole, &role); err != nil {
		return err
	}

	// 2. Load skill catalog if provided
	var catalog types.SkillCatalog
	if weightsCatalog != "" {
		if err := validateInput("skill_catalog.schema.json", weightsCatalog); err != nil {
			return err
		}
		if err := readJSONFile(weightsCatalog, &catalog); err != nil {
			return err
		}
	}

	// 3. Compute weights
	pair := weights.Compute(role.Description, role.Requirements, catalog)

	if weightsVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintRoleProfile(&role, catalog)
		printer.PrintWeights(pair)
	}

	// 4. Write or print the result
	if weightsOutput != "" {
		if err := writeJSONFile(weightsOutput, pair); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Weights written to %s\n", weightsOutput)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "alpha=%.2f beta=%.2f\n", pair.Alpha, pair.Beta)
	return nil
}

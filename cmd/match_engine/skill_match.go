package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-match/internal/observability"
	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/types"
)

var skillMatchCmd = &cobra.Command{
	Use:   "skill-match",
	Short: "Score a single candidate's skills against role requirements",
	Long:  "Computes the structured skill-match score for one candidate against a role's requirements, weighing proficiency and years of experience by requirement importance.",
	RunE:  runSkillMatch,
}

var (
	skillMatchCandidate string
	skillMatchRole      string
	skillMatchOutput    string
	skillMatchVerbose   bool
)

func init() {
	skillMatchCmd.Flags().StringVarP(&skillMatchCandidate, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	skillMatchCmd.Flags().StringVarP(&skillMatchRole, "role", "r", "", "Path to input RoleProfile JSON file (required)")
	skillMatchCmd.Flags().StringVarP(&skillMatchOutput, "out", "o", "", "Path to output JSON file (optional, prints to stdout if omitted)")
	skillMatchCmd.Flags().BoolVarP(&skillMatchVerbose, "verbose", "v", false, "Print detailed debug information")

	if err := skillMatchCmd.MarkFlagRequired("candidate"); err != nil {
		panic(fmt.Sprintf("failed to mark candidate flag as required: %v", err))
	}
	if err := skillMatchCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(skillMatchCmd)
}

func runSkillMatch(_ *cobra.Command, _ []string) error {
	// 1. Load candidate profile
	var candidate types.CandidateProfile
	if err := readJSONFile(skillMatchCandidate, &candidate); err != nil {
		return err
	}

	// 2. Load role profile
	if err := validateInput("role_profile.schema.json", skillMatchRole); err != nil {
		return err
	}
	var role types.RoleProfile
	if err := readJSONFile(skillMatchRole, &role); err != nil {
		return err
	}

	// 3. Score
	score := scoring.SkillMatch(candidate.Skills, role.Requirements)

	if skillMatchVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintSkillMatch(candidate.ID, score)
	}

	// 4. Write or print the result
	result := map[string]any{
		"candidate_id": candidate.ID,
		"role_id":      role.ID,
		"score":        score,
	}

	if skillMatchOutput != "" {
		if err := writeJSONFile(skillMatchOutput, result); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Skill match score written to %s\n", skillMatchOutput)
		return nil
	}

	_, _ = fmt.Fprintf(os.Stdout, "Skill match score: %d\n", score)
	return nil
}

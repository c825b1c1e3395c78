// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRoleProfile outputs a human-readable summary of the role being matched.
func (p *Printer) PrintRoleProfile(role *types.RoleProfile, catalog types.SkillCatalog) {
	if role == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Role:  %s\n", role.Title))
	desc := role.Description
	if len(desc) > 50 {
		desc = desc[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("About: %s\n", desc))
	sb.WriteString("\n")

	if len(role.Requirements) > 0 {
		sb.WriteString("Requirements:\n")
		count := min(len(role.Requirements), maxItemsToShow)
		for i := 0; i < count; i++ {
			req := role.Requirements[i]
			name := req.SkillID
			if skill, ok := catalog.Lookup(req.SkillID); ok {
				name = skill.Name
			}
			sb.WriteString(fmt.Sprintf("  • %s (importance %.1f)", name, req.EffectiveImportance()))
			if req.RequiredYears > 0 {
				sb.WriteString(fmt.Sprintf(", %gy", req.RequiredYears))
			}
			sb.WriteString("\n")
		}
		if len(role.Requirements) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(role.Requirements)-maxItemsToShow))
		}
	}

	p.printBox("ROLE PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWeights outputs the calculated weight distribution for a role.
func (p *Printer) PrintWeights(pair types.WeightPair) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Technical (alpha):  %.2f\n", pair.Alpha))
	sb.WriteString(fmt.Sprintf("Contextual (beta):  %.2f", pair.Beta))
	p.printBox("WEIGHT DISTRIBUTION", sb.String())
}

// PrintMatchResults outputs the top N ranked candidates with their score breakdown.
func (p *Printer) PrintMatchResults(results []types.MatchResult) {
	if len(results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total candidates ranked: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, r.CandidateID))
		sb.WriteString(fmt.Sprintf("    Final: %d  (skills: %d, context: %d)\n",
			r.FinalScore, r.TechnicalScore, r.ContextualScore))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more candidates", len(results)-maxItemsToShow))
	}

	p.printBox("RANKED CANDIDATES", sb.String())
}

// PrintSkillMatch outputs a standalone skill-match score.
func (p *Printer) PrintSkillMatch(candidateLabel string, score int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", candidateLabel))
	sb.WriteString(fmt.Sprintf("Score:     %d / 100", score))
	p.printBox("SKILL MATCH", sb.String())
}

// PrintEmbedSummary outputs cache statistics after an embedding run.
func (p *Printer) PrintEmbedSummary(texts, dimension, cached int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Texts embedded:  %d\n", texts))
	sb.WriteString(fmt.Sprintf("Dimension:       %d\n", dimension))
	sb.WriteString(fmt.Sprintf("Cache entries:   %d", cached))
	p.printBox("EMBEDDING SUMMARY", sb.String())
}

package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/talent-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRoleProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	role := &types.RoleProfile{
		ID:          "role-1",
		Title:       "Senior Backend Engineer",
		Description: "Build distributed services in Go",
		Requirements: []types.RoleSkillRequirement{
			{SkillID: "go", Importance: 2, RequiredYears: 3},
			{SkillID: "kubernetes"},
		},
	}
	catalog := types.SkillCatalog{
		"go": {ID: "go", Name: "Go", Category: "technical"},
	}

	p.PrintRoleProfile(role, catalog)
	output := buf.String()

	assert.Contains(t, output, "ROLE PROFILE")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "Go")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "3y")
}

func TestPrintRoleProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoleProfile(nil, nil)

	assert.Empty(t, buf.String())
}

func TestPrintWeights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWeights(types.WeightPair{Alpha: 0.9, Beta: 0.1})
	output := buf.String()

	assert.Contains(t, output, "WEIGHT DISTRIBUTION")
	assert.Contains(t, output, "0.90")
	assert.Contains(t, output, "0.10")
}

func TestPrintMatchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.MatchResult{
		{CandidateID: "cand-1", FinalScore: 87, TechnicalScore: 90, ContextualScore: 80},
		{CandidateID: "cand-2", FinalScore: 64, TechnicalScore: 60, ContextualScore: 75},
	}

	p.PrintMatchResults(results)
	output := buf.String()

	assert.Contains(t, output, "RANKED CANDIDATES")
	assert.Contains(t, output, "cand-1")
	assert.Contains(t, output, "Final: 87")
	assert.Contains(t, output, "skills: 90, context: 80")
	assert.Contains(t, output, "cand-2")
}

func TestPrintMatchResults_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatchResults(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatchResults_Truncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.MatchResult, 8)
	for i := range results {
		results[i] = types.MatchResult{CandidateID: "cand", FinalScore: 50}
	}

	p.PrintMatchResults(results)
	output := buf.String()

	assert.Contains(t, output, "... and 3 more candidates")
}

func TestPrintSkillMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillMatch("cand-7", 73)
	output := buf.String()

	assert.Contains(t, output, "SKILL MATCH")
	assert.Contains(t, output, "cand-7")
	assert.Contains(t, output, "73 / 100")
}

func TestPrintEmbedSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintEmbedSummary(12, 1536, 12)
	output := buf.String()

	assert.Contains(t, output, "EMBEDDING SUMMARY")
	assert.Contains(t, output, "12")
	assert.Contains(t, output, "1536")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	role := &types.RoleProfile{
		Title:       "Senior Staff Principal Distinguished Engineer Level 99",
		Description: "A very long description that should be truncated to fit inside the output box",
	}

	p.PrintRoleProfile(role, nil)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}

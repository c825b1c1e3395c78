// Package scoring computes the structured technical compatibility score
// between a candidate's skill records and a role's skill requirements.
package scoring

import (
	"log"
	"math"
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// Blend of the two per-skill signals: how long the candidate has used the
// skill versus how well they know it.
const (
	yearsWeight       = 0.3
	proficiencyWeight = 0.7
)

// proficiencyScores maps a normalized proficiency rating to its score.
// Unrecognized ratings fall back to the Low score.
var proficiencyScores = map[string]float64{
	"expert":       1.00,
	"advanced":     0.85,
	"high":         0.70,
	"intermediate": 0.60,
	"medium":       0.50,
	"low":          0.30,
}

const unknownProficiencyScore = 0.30

// ProficiencyScore returns the score for a proficiency rating, tolerant of
// case and surrounding whitespace.
func ProficiencyScore(proficiency string) float64 {
	if score, ok := proficiencyScores[strings.ToLower(strings.TrimSpace(proficiency))]; ok {
		return score
	}
	return unknownProficiencyScore
}

// Scorer computes skill-match scores, logging per-run summaries through logf.
type Scorer struct {
	logf func(format string, args ...any)
}

// NewScorer creates a scorer logging through the standard logger.
func NewScorer() *Scorer {
	return &Scorer{logf: log.Printf}
}

// SetLogf replaces the logger. Intended for tests.
func (s *Scorer) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		s.logf = logf
	}
}

// Score computes a 0-100 technical compatibility score. Requirements the
// candidate lacks contribute importance but no score, so missing skills drag
// the result down proportionally. Either list empty yields 0. The labels only
// feed log output.
func (s *Scorer) Score(employee []types.EmployeeSkillRecord, role []types.RoleSkillRequirement, candidateLabel, roleLabel string) int {
	score := SkillMatch(employee, role)
	s.logf("skill match %s vs %s: %d (requirements=%d, candidate skills=%d)",
		candidateLabel, roleLabel, score, len(role), len(employee))
	return score
}

// SkillMatch is the pure scoring function behind Scorer.Score.
func SkillMatch(employee []types.EmployeeSkillRecord, role []types.RoleSkillRequirement) int {
	if len(employee) == 0 || len(role) == 0 {
		return 0
	}

	bySkill := make(map[string]types.EmployeeSkillRecord, len(employee))
	for _, record := range employee {
		bySkill[record.SkillID] = record
	}

	var matchScore, totalImportance float64
	for _, req := range role {
		importance := req.EffectiveImportance()
		totalImportance += importance

		record, ok := bySkill[req.SkillID]
		if !ok {
			continue
		}

		// A requirement of zero years counts as one to avoid dividing by zero;
		// partially met year requirements scale proportionally.
		requiredYears := math.Max(req.RequiredYears, 1)
		yearsMatch := math.Min(record.Years/requiredYears, 1)

		skillScore := (yearsMatch*yearsWeight + ProficiencyScore(record.Proficiency)*proficiencyWeight) * importance
		matchScore += skillScore
	}

	if totalImportance == 0 {
		return 0
	}
	return int(math.Floor(100 * matchScore / totalImportance))
}

// Package weights derives the technical/contextual blend applied when
// combining skill-overlap and embedding-similarity scores for a role.
package weights

import (
	"strings"

	"github.com/jonathan/talent-match/internal/types"
)

// Blend policy. The contextual signal is capped at 30% influence unless an
// explicit description marker overrides the computed pair.
const (
	DefaultAlpha = 0.7
	DefaultBeta  = 0.3

	alphaFloor  = 0.7
	betaCeiling = 0.3

	// minClassifiedRequirements is how many catalog-classified requirements a
	// role needs before importance sums outrank description keywords.
	minClassifiedRequirements = 3

	// softKeywordBoost compensates for the typically sparser soft-skill vocabulary.
	softKeywordBoost = 1.5
)

// technicalKeywords and softKeywords drive the description scan used when a
// role has too few classified skill requirements.
var technicalKeywords = []string{
	"programming", "development", "engineering", "architecture", "algorithm",
	"technical", "coding", "software", "database", "infrastructure", "api",
	"cloud", "devops", "backend", "frontend",
}

var softKeywords = []string{
	"communication", "collaboration", "mentoring", "interpersonal",
	"stakeholder", "presentation", "facilitation", "empathy", "coaching",
	"negotiation",
}

// Description markers that force a fixed pair, checked after the generic
// computation. The technical marker wins when both appear.
var (
	highlyTechnicalMarkers = []string{"highly technical"}
	culturalFitMarkers     = []string{"cultural fit", "soft skills", "teamwork", "leadership"}
)

// Compute derives the weight pair for a role. It has no failure mode: empty
// description and empty requirements yield the default (0.7, 0.3).
func Compute(description string, requirements []types.RoleSkillRequirement, catalog types.SkillCatalog) types.WeightPair {
	pair := types.WeightPair{Alpha: DefaultAlpha, Beta: DefaultBeta}

	technical, soft := importanceByCategory(requirements, catalog)
	if technical+soft == 0 {
		technical, soft = keywordSignal(description)
	}

	if total := technical + soft; total > 0 {
		pair = clampAndRenormalize(technical/total, soft/total)
	}

	return applyOverrides(description, pair)
}

// importanceByCategory sums requirement importance into technical and soft
// buckets using the catalog's skill categories. Roles with fewer than three
// classified requirements return zero sums, deferring to the keyword scan.
func importanceByCategory(requirements []types.RoleSkillRequirement, catalog types.SkillCatalog) (technical, soft float64) {
	classified := 0
	var tech, sft float64
	for _, req := range requirements {
		skill, ok := catalog.Lookup(req.SkillID)
		if !ok {
			continue
		}
		switch types.ClassifyCategory(skill.Category) {
		case types.CategoryTechnical:
			tech += req.EffectiveImportance()
			classified++
		case types.CategorySoft:
			sft += req.EffectiveImportance()
			classified++
		}
	}
	if classified < minClassifiedRequirements {
		return 0, 0
	}
	return tech, sft
}

// keywordSignal scans the description for fixed technical and soft keyword
// lists. Soft hits are boosted because soft-skill vocabulary is sparser.
func keywordSignal(description string) (technical, soft float64) {
	lower := strings.ToLower(description)
	if lower == "" {
		return 0, 0
	}
	for _, kw := range technicalKeywords {
		if strings.Contains(lower, kw) {
			technical++
		}
	}
	for _, kw := range softKeywords {
		if strings.Contains(lower, kw) {
			soft += softKeywordBoost
		}
	}
	return technical, soft
}

// clampAndRenormalize enforces the floor/ceiling policy and restores the
// Alpha + Beta == 1 invariant.
func clampAndRenormalize(alpha, beta float64) types.WeightPair {
	if alpha < alphaFloor {
		alpha = alphaFloor
	}
	if beta > betaCeiling {
		beta = betaCeiling
	}
	total := alpha + beta
	return types.WeightPair{Alpha: alpha / total, Beta: beta / total}
}

// applyOverrides replaces the computed pair when the description carries an
// explicit marker. Technical markers are evaluated first and win ties.
func applyOverrides(description string, pair types.WeightPair) types.WeightPair {
	lower := strings.ToLower(description)
	for _, marker := range highlyTechnicalMarkers {
		if strings.Contains(lower, marker) {
			return types.WeightPair{Alpha: 0.9, Beta: 0.1}
		}
	}
	for _, marker := range culturalFitMarkers {
		if strings.Contains(lower, marker) {
			return types.WeightPair{Alpha: 0.7, Beta: 0.3}
		}
	}
	return pair
}

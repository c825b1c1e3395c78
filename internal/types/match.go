package types

import (
	"github.com/go-playground/validator/v10"
)

// WeightPair holds the technical/contextual blend used when combining scores.
// Invariant: Alpha + Beta == 1 and Alpha >= 0.7 unless an explicit override applies.
type WeightPair struct {
	Alpha float64 `json:"alpha"`
	Beta  float64 `json:"beta"`
}

// RoleProfile is the role side of a matching request.
type RoleProfile struct {
	ID           string                 `json:"id" validate:"required"`
	Title        string                 `json:"title,omitempty"`
	Description  string                 `json:"description,omitempty"`
	Requirements []RoleSkillRequirement `json:"requirements,omitempty"`
}

// CandidateProfile is one candidate side of a matching request.
type CandidateProfile struct {
	ID      string                `json:"id" validate:"required"`
	Name    string                `json:"name,omitempty"`
	Summary string                `json:"summary,omitempty"`
	Skills  []EmployeeSkillRecord `json:"skills,omitempty"`
}

// MatchResult is the per-candidate outcome of a ranking run. All scores are
// integers in [0, 100]; FinalScore blends the other two by the run's weights.
type MatchResult struct {
	CandidateID     string `json:"candidate_id"`
	FinalScore      int    `json:"final_score"`
	TechnicalScore  int    `json:"technical_score"`
	ContextualScore int    `json:"contextual_score"`
}

// RankRequest bundles everything a ranking run needs. It is the boundary type
// validated before the orchestrator does any work.
type RankRequest struct {
	Role       RoleProfile        `json:"role" validate:"required"`
	Candidates []CandidateProfile `json:"candidates" validate:"required,min=1,dive"`
	Catalog    SkillCatalog       `json:"catalog,omitempty"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

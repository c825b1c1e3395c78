package scoring

import (
	"testing"

	"github.com/jonathan/talent-match/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSkillMatch_PerfectMatch(t *testing.T) {
	employee := []types.EmployeeSkillRecord{
		{SkillID: "skill1", Proficiency: "Expert", Years: 5},
	}
	role := []types.RoleSkillRequirement{
		{SkillID: "skill1", Importance: 1, RequiredYears: 3},
	}

	// min(5/3, 1)*0.3 + 1.0*0.7 = 1.0 with totalImportance 1 => 100.
	assert.Equal(t, 100, SkillMatch(employee, role))
}

func TestSkillMatch_EmptyInputs(t *testing.T) {
	employee := []types.EmployeeSkillRecord{{SkillID: "skill1"}}
	role := []types.RoleSkillRequirement{{SkillID: "skill1"}}

	assert.Equal(t, 0, SkillMatch(nil, role))
	assert.Equal(t, 0, SkillMatch(employee, nil))
	assert.Equal(t, 0, SkillMatch(nil, nil))
}

func TestSkillMatch_MissingSkillDragsScore(t *testing.T) {
	employee := []types.EmployeeSkillRecord{
		{SkillID: "go", Proficiency: "Expert", Years: 10},
	}
	role := []types.RoleSkillRequirement{
		{SkillID: "go", Importance: 1, RequiredYears: 2},
		{SkillID: "rust", Importance: 1, RequiredYears: 2},
	}

	// One fully met requirement out of two equally important ones.
	assert.Equal(t, 50, SkillMatch(employee, role))
}

func TestSkillMatch_ImportanceWeighting(t *testing.T) {
	employee := []types.EmployeeSkillRecord{
		{SkillID: "go", Proficiency: "Expert", Years: 10},
	}
	role := []types.RoleSkillRequirement{
		{SkillID: "go", Importance: 3, RequiredYears: 2},
		{SkillID: "rust", Importance: 1, RequiredYears: 2},
	}

	// 3 of 4 importance points fully met => 75.
	assert.Equal(t, 75, SkillMatch(employee, role))
}

func TestSkillMatch_PartialYears(t *testing.T) {
	employee := []types.EmployeeSkillRecord{
		{SkillID: "go", Proficiency: "Expert", Years: 1},
	}
	role := []types.RoleSkillRequirement{
		{SkillID: "go", Importance: 1, RequiredYears: 4},
	}

	// (0.25*0.3 + 1.0*0.7) * 100 = 77.5 => floor 77.
	assert.Equal(t, 77, SkillMatch(employee, role))
}

func TestSkillMatch_ZeroRequiredYearsTreatedAsOne(t *testing.T) {
	employee := []types.EmployeeSkillRecord{
		{SkillID: "go", Proficiency: "Expert", Years: 2},
	}
	role := []types.RoleSkillRequirement{
		{SkillID: "go", Importance: 1, RequiredYears: 0},
	}

	assert.Equal(t, 100, SkillMatch(employee, role))
}

func TestSkillMatch_UnrecognizedProficiencyTreatedAsLow(t *testing.T) {
	employee := []types.EmployeeSkillRecord{
		{SkillID: "go", Proficiency: "wizard", Years: 5},
	}
	role := []types.RoleSkillRequirement{
		{SkillID: "go", Importance: 1, RequiredYears: 1},
	}

	// (1.0*0.3 + 0.30*0.7) * 100 = 51.
	assert.Equal(t, 51, SkillMatch(employee, role))
}

func TestSkillMatch_Boundedness(t *testing.T) {
	employee := []types.EmployeeSkillRecord{
		{SkillID: "a", Proficiency: "Expert", Years: 50},
		{SkillID: "b", Proficiency: "Low", Years: 0},
	}
	role := []types.RoleSkillRequirement{
		{SkillID: "a", Importance: 10, RequiredYears: 1},
		{SkillID: "b", Importance: 0.5},
		{SkillID: "c", Importance: 2},
	}

	score := SkillMatch(employee, role)
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestProficiencyScore_Table(t *testing.T) {
	cases := map[string]float64{
		"Expert":       1.00,
		"advanced":     0.85,
		" High ":       0.70,
		"INTERMEDIATE": 0.60,
		"medium":       0.50,
		"Low":          0.30,
		"unknown":      0.30,
		"":             0.30,
	}
	for input, want := range cases {
		assert.InDelta(t, want, ProficiencyScore(input), 1e-9, "proficiency %q", input)
	}
}

func TestScorer_LogsSummary(t *testing.T) {
	scorer := NewScorer()
	var logged string
	scorer.SetLogf(func(format string, args ...any) { logged = format })

	employee := []types.EmployeeSkillRecord{{SkillID: "go", Proficiency: "Expert", Years: 5}}
	role := []types.RoleSkillRequirement{{SkillID: "go", RequiredYears: 3}}

	score := scorer.Score(employee, role, "candidate-1", "role-1")
	assert.Equal(t, 100, score)
	assert.NotEmpty(t, logged)
}

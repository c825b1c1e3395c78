package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankRequest_Validate(t *testing.T) {
	req := &RankRequest{
		Role: RoleProfile{ID: "role-1"},
		Candidates: []CandidateProfile{
			{ID: "cand-1"},
		},
	}

	assert.NoError(t, req.Validate())
}

func TestRankRequest_Validate_MissingRoleID(t *testing.T) {
	req := &RankRequest{
		Candidates: []CandidateProfile{{ID: "cand-1"}},
	}

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ID")
}

func TestRankRequest_Validate_EmptyCandidates(t *testing.T) {
	req := &RankRequest{
		Role: RoleProfile{ID: "role-1"},
	}

	assert.Error(t, req.Validate())
}

func TestRankRequest_Validate_CandidateMissingID(t *testing.T) {
	req := &RankRequest{
		Role:       RoleProfile{ID: "role-1"},
		Candidates: []CandidateProfile{{Summary: "no id"}},
	}

	assert.Error(t, req.Validate())
}

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		category string
		want     string
	}{
		{"technical", CategoryTechnical},
		{"Hard Skills", CategoryTechnical},
		{"TECH", CategoryTechnical},
		{"soft", CategorySoft},
		{"Personal Skills", CategorySoft},
		{"", CategoryUnknown},
		{"domain", CategoryUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCategory(tt.category), "category %q", tt.category)
	}
}

func TestEffectiveImportance(t *testing.T) {
	assert.Equal(t, 1.0, RoleSkillRequirement{SkillID: "go"}.EffectiveImportance())
	assert.Equal(t, 1.0, RoleSkillRequirement{SkillID: "go", Importance: -2}.EffectiveImportance())
	assert.Equal(t, 2.5, RoleSkillRequirement{SkillID: "go", Importance: 2.5}.EffectiveImportance())
}

func TestSkillCatalog_Lookup(t *testing.T) {
	catalog := SkillCatalog{
		"go": {ID: "go", Name: "Go", Category: "technical"},
	}

	skill, ok := catalog.Lookup("go")
	require.True(t, ok)
	assert.Equal(t, "Go", skill.Name)

	_, ok = catalog.Lookup("rust")
	assert.False(t, ok)
}

package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/talent-match/internal/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	schemaFiles := []string{
		"role_profile.schema.json",
		"candidate_profiles.schema.json",
		"skill_catalog.schema.json",
		"match_results.schema.json",
	}

	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestRoleProfileSchema_AcceptsValidRole(t *testing.T) {
	schema, err := os.ReadFile("role_profile.schema.json")
	require.NoError(t, err)

	doc := `{
		"id": "role-1",
		"title": "Backend Engineer",
		"description": "Highly technical backend role",
		"requirements": [
			{"skill_id": "go", "importance": 2, "required_years": 3}
		]
	}`
	assert.NoError(t, schemas.ValidateBytes(schema, []byte(doc)))
}

func TestRoleProfileSchema_RejectsMissingID(t *testing.T) {
	schema, err := os.ReadFile("role_profile.schema.json")
	require.NoError(t, err)

	assert.Error(t, schemas.ValidateBytes(schema, []byte(`{"title": "No ID"}`)))
}

func TestMatchResultsSchema_RejectsOutOfRangeScore(t *testing.T) {
	schema, err := os.ReadFile("match_results.schema.json")
	require.NoError(t, err)

	doc := `[{"candidate_id": "c1", "final_score": 120, "technical_score": 50, "contextual_score": 50}]`
	assert.Error(t, schemas.ValidateBytes(schema, []byte(doc)))
}

func TestCandidateProfilesSchema_AcceptsPool(t *testing.T) {
	schema, err := os.ReadFile("candidate_profiles.schema.json")
	require.NoError(t, err)

	doc := `[
		{"id": "c1", "summary": "Go developer", "skills": [{"skill_id": "go", "proficiency": "Expert", "years": 5}]},
		{"id": "c2"}
	]`
	assert.NoError(t, schemas.ValidateBytes(schema, []byte(doc)))
}

// Package types provides type definitions for structured data used throughout the talent-match system.
package types

import "strings"

// Skill represents a catalog entry describing a single skill.
type Skill struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category,omitempty"`
	Importance float64 `json:"importance,omitempty"`
}

// SkillCatalog is a lookup of skills by their identifier. The catalog is owned
// by the external data store; the engine only reads snapshots passed in per request.
type SkillCatalog map[string]Skill

// Lookup returns the skill for the given id, if present.
func (c SkillCatalog) Lookup(id string) (Skill, bool) {
	s, ok := c[id]
	return s, ok
}

// Category classification results for tolerant matching of catalog categories.
const (
	CategoryTechnical = "technical"
	CategorySoft      = "soft"
	CategoryUnknown   = ""
)

// ClassifyCategory maps a free-form category label onto technical/soft.
// Labels containing "tech" or "hard" count as technical; "soft" or "personal"
// count as soft. Anything else is unknown.
func ClassifyCategory(category string) string {
	lower := strings.ToLower(strings.TrimSpace(category))
	if lower == "" {
		return CategoryUnknown
	}
	if strings.Contains(lower, "tech") || strings.Contains(lower, "hard") {
		return CategoryTechnical
	}
	if strings.Contains(lower, "soft") || strings.Contains(lower, "personal") {
		return CategorySoft
	}
	return CategoryUnknown
}

// RoleSkillRequirement describes one skill a role asks for.
type RoleSkillRequirement struct {
	SkillID       string  `json:"skill_id"`
	Importance    float64 `json:"importance,omitempty"` // defaults to 1 when zero
	RequiredYears float64 `json:"required_years,omitempty"`
}

// EffectiveImportance returns the requirement importance, defaulting to 1.
func (r RoleSkillRequirement) EffectiveImportance() float64 {
	if r.Importance <= 0 {
		return 1
	}
	return r.Importance
}

// EmployeeSkillRecord describes one skill held by a candidate.
type EmployeeSkillRecord struct {
	SkillID     string  `json:"skill_id"`
	Proficiency string  `json:"proficiency,omitempty"`
	Years       float64 `json:"years,omitempty"`
}

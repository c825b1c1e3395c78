package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/talent-match/internal/embedding"
	"github.com/jonathan/talent-match/internal/types"
)

// RankResponse represents the response for /api/v1/rank
type RankResponse struct {
	Results []types.MatchResult `json:"results"`
}

// SkillMatchRequest represents the request body for /api/v1/skill-match
type SkillMatchRequest struct {
	CandidateSkills []types.EmployeeSkillRecord  `json:"candidate_skills"`
	Requirements    []types.RoleSkillRequirement `json:"requirements"`
}

// SkillMatchResponse represents the response for /api/v1/skill-match
type SkillMatchResponse struct {
	Score int `json:"score"`
}

// WeightsRequest represents the request body for /api/v1/weights
type WeightsRequest struct {
	Role    types.RoleProfile  `json:"role"`
	Catalog types.SkillCatalog `json:"catalog,omitempty"`
}

// EmbedRequest represents the request body for /api/v1/embed
type EmbedRequest struct {
	Texts []string `json:"texts"`
	Kind  string   `json:"kind,omitempty"` // "profile" (default) or "session"
}

// EmbedResponse represents the response for /api/v1/embed
type EmbedResponse struct {
	Dimension int                `json:"dimension"`
	Vectors   []embedding.Vector `json:"vectors"`
}

// handleRank ranks a candidate pool against a role
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req types.RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	results, err := s.matcher.RankCandidates(r.Context(), &req)
	if err != nil {
		// The orchestrator only errors on invalid input; everything downstream
		// degrades instead of failing.
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, RankResponse{Results: results})
}

// handleSkillMatch scores a single candidate against role requirements
func (s *Server) handleSkillMatch(w http.ResponseWriter, r *http.Request) {
	var req SkillMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Requirements) == 0 {
		err := &ErrValidation{Field: "requirements", Message: "at least one requirement is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	score := s.matcher.SkillMatch(req.CandidateSkills, req.Requirements)
	s.jsonResponse(w, http.StatusOK, SkillMatchResponse{Score: score})
}

// handleWeights computes the weight distribution for a role
func (s *Server) handleWeights(w http.ResponseWriter, r *http.Request) {
	var req WeightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	pair := s.matcher.Weights(req.Role, req.Catalog)
	s.jsonResponse(w, http.StatusOK, pair)
}

// handleEmbed embeds a batch of texts through the caching service
func (s *Server) handleEmbed(w http.ResponseWriter, r *http.Request) {
	var req EmbedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if len(req.Texts) == 0 {
		err := &ErrValidation{Field: "texts", Message: "at least one text is required"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	kind := embedding.KindProfile
	switch req.Kind {
	case "", string(embedding.KindProfile):
	case string(embedding.KindSession):
		kind = embedding.KindSession
	default:
		err := &ErrValidation{Field: "kind", Message: "must be profile or session"}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	kinds := make([]embedding.TextKind, len(req.Texts))
	for i := range kinds {
		kinds[i] = kind
	}

	vectors, err := s.embedder.EmbedBatch(r.Context(), req.Texts, kinds)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, EmbedResponse{
		Dimension: s.embedder.Dimension(),
		Vectors:   vectors,
	})
}

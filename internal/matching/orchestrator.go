// Package matching composes text normalization, embeddings, similarity
// scoring, skill matching, and dynamic weighting into candidate rankings.
package matching

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/jonathan/talent-match/internal/embedding"
	"github.com/jonathan/talent-match/internal/scoring"
	"github.com/jonathan/talent-match/internal/similarity"
	"github.com/jonathan/talent-match/internal/types"
	"github.com/jonathan/talent-match/internal/weights"
)

// Orchestrator runs the full ranking pipeline. It owns no authoritative data:
// role, candidates, and catalog are snapshots passed in per request.
type Orchestrator struct {
	embedder *embedding.Service
	engine   *similarity.Engine
	scorer   *scoring.Scorer
	logf     func(format string, args ...any)
}

// New creates an orchestrator over the given embedding service and similarity
// engine.
func New(embedder *embedding.Service, engine *similarity.Engine) *Orchestrator {
	return &Orchestrator{
		embedder: embedder,
		engine:   engine,
		scorer:   scoring.NewScorer(),
		logf:     log.Printf,
	}
}

// SetLogf replaces the logger on the orchestrator and its scorer. Intended for tests.
func (o *Orchestrator) SetLogf(logf func(format string, args ...any)) {
	if logf != nil {
		o.logf = logf
		o.scorer.SetLogf(logf)
	}
}

// RankCandidates scores every candidate against the role and returns results
// ordered by final score descending. Candidate order is preserved end-to-end
// before the final sort; ties keep input order. The only errors returned are
// invalid-argument rejections at this boundary: every downstream failure
// degrades to a defined fallback instead of propagating.
func (o *Orchestrator) RankCandidates(ctx context.Context, req *types.RankRequest) ([]types.MatchResult, error) {
	if req == nil {
		return nil, fmt.Errorf("rank request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rank request: %w", err)
	}
	if err := checkCandidateIDs(req.Candidates); err != nil {
		return nil, err
	}

	runID := uuid.New().String()
	o.logf("ranking run %s: role=%s candidates=%d", runID, req.Role.ID, len(req.Candidates))

	contextual := o.contextualScores(ctx, req.Role, req.Candidates)
	pair := weights.Compute(req.Role.Description, req.Role.Requirements, req.Catalog)

	results := make([]types.MatchResult, len(req.Candidates))
	for i, candidate := range req.Candidates {
		technical := o.scorer.Score(candidate.Skills, req.Role.Requirements, candidate.ID, req.Role.ID)
		final := blend(pair, technical, contextual[i])
		results[i] = types.MatchResult{
			CandidateID:     candidate.ID,
			FinalScore:      final,
			TechnicalScore:  technical,
			ContextualScore: contextual[i],
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FinalScore > results[j].FinalScore
	})

	o.logf("ranking run %s: complete, alpha=%.2f beta=%.2f", runID, pair.Alpha, pair.Beta)
	return results, nil
}

// Weights exposes the dynamic weight computation for callers that only need
// the blend, without running a full ranking.
func (o *Orchestrator) Weights(role types.RoleProfile, catalog types.SkillCatalog) types.WeightPair {
	return weights.Compute(role.Description, role.Requirements, catalog)
}

// SkillMatch exposes the structured technical score for a single pairing.
func (o *Orchestrator) SkillMatch(employee []types.EmployeeSkillRecord, role []types.RoleSkillRequirement) int {
	return scoring.SkillMatch(employee, role)
}

// contextualScores embeds the role description and candidate summaries, then
// scores them through the similarity engine. Embedding failures have already
// degraded inside the service, so the result always covers every candidate.
func (o *Orchestrator) contextualScores(ctx context.Context, role types.RoleProfile, candidates []types.CandidateProfile) []int {
	texts := make([]string, 0, len(candidates)+1)
	kinds := make([]embedding.TextKind, 0, len(candidates)+1)
	texts = append(texts, role.Description)
	kinds = append(kinds, embedding.KindProfile)
	for _, candidate := range candidates {
		texts = append(texts, candidate.Summary)
		kinds = append(kinds, embedding.KindProfile)
	}

	vectors, err := o.embedder.EmbedBatch(ctx, texts, kinds)
	if err != nil {
		// Only reachable through caller misuse of the service; treat as a
		// degenerate batch rather than failing the ranking.
		o.logf("embedding batch rejected, scoring candidates as neutral: %v", err)
		return make([]int, len(candidates))
	}

	return o.engine.Scores(ctx, vectors[0], vectors[1:])
}

// blend combines the two scores with the weight pair, rounded to the nearest
// integer and clamped to [0, 100].
func blend(pair types.WeightPair, technical, contextual int) int {
	final := int(math.Round(pair.Alpha*float64(technical) + pair.Beta*float64(contextual)))
	if final < 0 {
		return 0
	}
	if final > 100 {
		return 100
	}
	return final
}

func checkCandidateIDs(candidates []types.CandidateProfile) error {
	seen := make(map[string]struct{}, len(candidates))
	for i, candidate := range candidates {
		if candidate.ID == "" {
			return fmt.Errorf("candidate at index %d has no id", i)
		}
		if _, dup := seen[candidate.ID]; dup {
			return fmt.Errorf("duplicate candidate id: %s", candidate.ID)
		}
		seen[candidate.ID] = struct{}{}
	}
	return nil
}

package similarity

import (
	"context"
	"testing"

	"github.com/jonathan/talent-match/internal/embedding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(workers int) *Engine {
	e := NewEngine(workers)
	e.SetLogf(func(string, ...any) {})
	return e
}

func TestEngine_Scores_OrderAndBounds(t *testing.T) {
	engine := testEngine(4)
	reference := embedding.Vector{1, 0, 0}
	candidates := []embedding.Vector{
		{1, 0, 0},     // identical
		{0, 1, 0},     // orthogonal
		{-1, 0, 0},    // opposite
		{0.5, 0.5, 0}, // partial
	}

	scores := engine.Scores(context.Background(), reference, candidates)
	require.Len(t, scores, len(candidates))
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
	// Identical candidate must not score below the orthogonal one.
	assert.Greater(t, scores[0], scores[1])
}

func TestEngine_Scores_EmptyCandidates(t *testing.T) {
	engine := testEngine(2)
	scores := engine.Scores(context.Background(), embedding.Vector{1}, nil)
	assert.Empty(t, scores)
}

func TestEngine_Scores_MatchesSynchronousPath(t *testing.T) {
	engine := testEngine(3)
	reference := embedding.Vector{0.2, 0.8, 0.1, 0.5}
	candidates := make([]embedding.Vector, 17)
	for i := range candidates {
		candidates[i] = embedding.Vector{float32(i), 1, float32(i % 3), 0.25}
	}

	parallel, err := engine.parallelScores(context.Background(), reference, candidates)
	require.NoError(t, err)
	assert.Equal(t, engine.syncScores(reference, candidates), parallel)
}

func TestEngine_Scores_WorkerFailureFallsBackToSync(t *testing.T) {
	engine := testEngine(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // dispatch fails immediately

	reference := embedding.Vector{1, 0}
	candidates := []embedding.Vector{{1, 0}, {0, 1}, {1, 1}}

	scores := engine.Scores(ctx, reference, candidates)
	require.Len(t, scores, len(candidates), "fallback must preserve the one-score-per-candidate contract")
	for _, s := range scores {
		assert.GreaterOrEqual(t, s, 0)
		assert.LessOrEqual(t, s, 100)
	}
}

func TestEngine_VarianceCorrection_SpreadsFlatScores(t *testing.T) {
	engine := testEngine(1)

	flat := []int{70, 71, 70, 69, 70, 71}
	spread := engine.correctVariance(append([]int(nil), flat...))

	require.Len(t, spread, len(flat))
	distinct := make(map[int]struct{})
	for _, s := range spread {
		assert.GreaterOrEqual(t, s, 30)
		assert.LessOrEqual(t, s, 95)
		distinct[s] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1, "flat batch must not stay a flat tie")
}

func TestEngine_VarianceCorrection_LeavesVariedScoresAlone(t *testing.T) {
	engine := testEngine(1)
	varied := []int{10, 60, 95, 30}
	assert.Equal(t, varied, engine.correctVariance(append([]int(nil), varied...)))
}

func TestEngine_VarianceCorrection_Deterministic(t *testing.T) {
	engine := testEngine(1)
	flat := []int{50, 50, 50, 50}
	first := engine.correctVariance(append([]int(nil), flat...))
	second := engine.correctVariance(append([]int(nil), flat...))
	assert.Equal(t, first, second)
}

// file: internals/features/proposals/evaluations/service/scoring_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "hibahku_backend/internals/features/proposals/evaluations/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

func f(v float64) *float64 { return &v }

func rubric(weights []float64, maxScore float64) []CriterionSpec {
	out := make([]CriterionSpec, 0, len(weights))
	names := []string{"Inovasi", "Metodologi", "Dampak", "Kelayakan"}
	for i, w := range weights {
		name := "Criterion"
		if i < len(names) {
			name = names[i]
		}
		out = append(out, CriterionSpec{
			ID:       uuid.New(),
			Name:     name,
			Weight:   w,
			MaxScore: maxScore,
		})
	}
	return out
}

func entriesFor(criteria []CriterionSpec, scores []float64) []model.RubricEntry {
	out := make([]model.RubricEntry, 0, len(criteria))
	for i, c := range criteria {
		out = append(out, model.RubricEntry{CriterionID: c.ID, Score: f(scores[i])})
	}
	return out
}

func TestComputeWeightedScoreEqualWeights(t *testing.T) {
	criteria := rubric([]float64{25, 25, 25, 25}, 5)
	entries := entriesFor(criteria, []float64{4, 4, 3, 3})

	got := ComputeWeightedScore(entries, criteria)
	assert.InDelta(t, 70.0, got, 0.001)
}

func TestComputeWeightedScoreUnequalWeights(t *testing.T) {
	criteria := rubric([]float64{60, 40}, 10)
	entries := entriesFor(criteria, []float64{10, 5})

	// 0.6*1.0 + 0.4*0.5 = 0.8 → 80
	got := ComputeWeightedScore(entries, criteria)
	assert.InDelta(t, 80.0, got, 0.001)
}

func TestComputeWeightedScoreZeroWeightFallback(t *testing.T) {
	criteria := rubric([]float64{0, 0}, 5)
	entries := entriesFor(criteria, []float64{4, 2})

	// fallback raw: (4+2)/(5+5)*100 = 60
	got := ComputeWeightedScore(entries, criteria)
	assert.InDelta(t, 60.0, got, 0.001)
}

func TestComputeWeightedScoreClampsOutOfRange(t *testing.T) {
	criteria := rubric([]float64{50, 50}, 5)
	entries := entriesFor(criteria, []float64{9, -3}) // di-clamp ke 5 dan 0

	got := ComputeWeightedScore(entries, criteria)
	assert.InDelta(t, 50.0, got, 0.001)
}

func TestComputeWeightedScoreIgnoresUnknownAndNilEntries(t *testing.T) {
	criteria := rubric([]float64{50, 50}, 5)
	entries := []model.RubricEntry{
		{CriterionID: criteria[0].ID, Score: f(5)},
		{CriterionID: criteria[1].ID, Score: nil}, // draft kosong
		{CriterionID: uuid.New(), Score: f(5)},    // criterion asing
	}

	// hanya criterion pertama yang masuk: 5/5*50 / 50 * 100 = 100
	got := ComputeWeightedScore(entries, criteria)
	assert.InDelta(t, 100.0, got, 0.001)
}

func TestComputeWeightedScoreEmpty(t *testing.T) {
	assert.Zero(t, ComputeWeightedScore(nil, nil))
	assert.Zero(t, ComputeWeightedScore(nil, rubric([]float64{25}, 5)))
}

func TestComputeWeightedScoreRange(t *testing.T) {
	criteria := rubric([]float64{10, 35, 55}, 7)
	for _, scores := range [][]float64{
		{0, 0, 0},
		{7, 7, 7},
		{1, 6, 3},
		{100, -50, 3.5},
	} {
		got := ComputeWeightedScore(entriesFor(criteria, scores), criteria)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
	}
}

func TestValidateForSubmitOK(t *testing.T) {
	criteria := rubric([]float64{25, 25, 25, 25}, 5)
	entries := entriesFor(criteria, []float64{4, 4, 3, 3})

	assert.NoError(t, ValidateForSubmit(entries, criteria, model.RecommendApprove))
}

func TestValidateForSubmitMissingRecommendation(t *testing.T) {
	criteria := rubric([]float64{100}, 5)
	entries := entriesFor(criteria, []float64{4})

	err := ValidateForSubmit(entries, criteria, "")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = ValidateForSubmit(entries, criteria, "maybe-later")
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestValidateForSubmitUnscoredCriterion(t *testing.T) {
	criteria := rubric([]float64{50, 50}, 5)
	entries := []model.RubricEntry{
		{CriterionID: criteria[0].ID, Score: f(3)},
		{CriterionID: criteria[1].ID, Score: nil},
	}

	err := ValidateForSubmit(entries, criteria, model.RecommendReject)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	assert.Contains(t, err.Error(), criteria[1].Name)
}

func TestValidateForSubmitScoreOutOfRange(t *testing.T) {
	criteria := rubric([]float64{100}, 5)

	err := ValidateForSubmit(entriesFor(criteria, []float64{6}), criteria, model.RecommendApprove)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	err = ValidateForSubmit(entriesFor(criteria, []float64{-1}), criteria, model.RecommendApprove)
	require.Error(t, err)
}

func TestEnsureDraftWritable(t *testing.T) {
	assert.NoError(t, EnsureDraftWritable(nil), "belum ada record = bebas ditulis")

	draft := &model.EvaluationModel{}
	assert.NoError(t, EnsureDraftWritable(draft))
}

func TestEnsureDraftWritableSubmittedFrozen(t *testing.T) {
	// submit menang atas flush autosave yang datang terlambat
	now := time.Now()
	submitted := &model.EvaluationModel{EvaluationCompletedAt: &now}

	err := EnsureDraftWritable(submitted)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

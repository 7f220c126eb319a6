// file: internals/features/proposals/decisions/service/summary_service_test.go
package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	assignmentModel "hibahku_backend/internals/features/proposals/assignments/model"
	evaluationModel "hibahku_backend/internals/features/proposals/evaluations/model"
	evaluationService "hibahku_backend/internals/features/proposals/evaluations/service"
	proposalModel "hibahku_backend/internals/features/proposals/proposals/model"
)

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func assignment(evaluatorID uuid.UUID, status string) assignmentModel.AssignmentModel {
	return assignmentModel.AssignmentModel{
		AssignmentID:          uuid.New(),
		AssignmentEvaluatorID: evaluatorID,
		AssignmentStatus:      status,
	}
}

func submittedEvaluation(t *testing.T, evaluatorID uuid.UUID, overall float64, rec string, entries []evaluationModel.RubricEntry) evaluationModel.EvaluationModel {
	t.Helper()
	b, err := json.Marshal(entries)
	require.NoError(t, err)
	now := time.Now()
	return evaluationModel.EvaluationModel{
		EvaluationID:             uuid.New(),
		EvaluationEvaluatorID:    evaluatorID,
		EvaluationEntries:        datatypes.JSON(b),
		EvaluationRecommendation: s(rec),
		EvaluationOverallScore:   f(overall),
		EvaluationCompletedAt:    &now,
	}
}

func TestBuildSummaryCounts(t *testing.T) {
	p := &proposalModel.ProposalModel{
		ProposalID:     uuid.New(),
		ProposalTitle:  "Proposal Uji",
		ProposalStatus: proposalModel.ProposalStatusUnderReview,
	}

	evPending := uuid.New()
	evInProgress := uuid.New()
	evDone := uuid.New()
	evDeclined := uuid.New()

	assignments := []assignmentModel.AssignmentModel{
		assignment(evPending, assignmentModel.StatusPending),
		assignment(evInProgress, assignmentModel.StatusAccepted),
		assignment(evDone, assignmentModel.StatusAccepted),
		assignment(evDeclined, assignmentModel.StatusDeclined),
	}
	evaluations := []evaluationModel.EvaluationModel{
		submittedEvaluation(t, evDone, 70, evaluationModel.RecommendApprove, nil),
		// draft milik evInProgress: belum dihitung submitted
		{EvaluationID: uuid.New(), EvaluationEvaluatorID: evInProgress},
	}

	names := map[uuid.UUID]string{
		evPending:    "Pending P",
		evInProgress: "Progress P",
		evDone:       "Done P",
	}

	got := BuildSummary(p, 2, assignments, evaluations, nil, names)

	assert.Equal(t, 3, got.AssignedCount, "declined tidak dihitung assigned")
	assert.Equal(t, 1, got.PendingCount)
	assert.Equal(t, 1, got.InProgressCount)
	assert.Equal(t, 1, got.SubmittedCount)
	assert.False(t, got.ThresholdMet)

	require.Len(t, got.PendingEvaluators, 2)
	require.NotNil(t, got.OverallAverage)
	assert.InDelta(t, 70.0, *got.OverallAverage, 0.001)
	assert.Equal(t, 1, got.Recommendations[evaluationModel.RecommendApprove])
}

func TestBuildSummaryCriterionAverages(t *testing.T) {
	p := &proposalModel.ProposalModel{ProposalID: uuid.New(), ProposalStatus: proposalModel.ProposalStatusUnderReview}

	c1 := evaluationService.CriterionSpec{ID: uuid.New(), Name: "Inovasi", Weight: 50, MaxScore: 5}
	c2 := evaluationService.CriterionSpec{ID: uuid.New(), Name: "Dampak", Weight: 50, MaxScore: 5}

	evA, evB := uuid.New(), uuid.New()
	assignments := []assignmentModel.AssignmentModel{
		assignment(evA, assignmentModel.StatusAccepted),
		assignment(evB, assignmentModel.StatusAccepted),
	}
	evaluations := []evaluationModel.EvaluationModel{
		submittedEvaluation(t, evA, 80, evaluationModel.RecommendApprove, []evaluationModel.RubricEntry{
			{CriterionID: c1.ID, Score: f(4)},
			{CriterionID: c2.ID, Score: f(4)},
		}),
		submittedEvaluation(t, evB, 60, evaluationModel.RecommendRevise, []evaluationModel.RubricEntry{
			{CriterionID: c1.ID, Score: f(2)},
			{CriterionID: c2.ID, Score: f(4)},
		}),
	}

	got := BuildSummary(p, 2, assignments, evaluations, []evaluationService.CriterionSpec{c1, c2}, nil)

	assert.Equal(t, 2, got.SubmittedCount)
	assert.True(t, got.ThresholdMet)
	require.NotNil(t, got.OverallAverage)
	assert.InDelta(t, 70.0, *got.OverallAverage, 0.001)

	require.Len(t, got.CriterionAverages, 2)
	byName := map[string]CriterionAverage{}
	for _, ca := range got.CriterionAverages {
		byName[ca.CriterionName] = ca
	}
	assert.InDelta(t, 3.0, byName["Inovasi"].Average, 0.001)
	assert.InDelta(t, 4.0, byName["Dampak"].Average, 0.001)
	assert.Equal(t, 2, byName["Inovasi"].ScoreCount)

	assert.Equal(t, 1, got.Recommendations[evaluationModel.RecommendApprove])
	assert.Equal(t, 1, got.Recommendations[evaluationModel.RecommendRevise])
}

func TestBuildSummaryNoSubmissions(t *testing.T) {
	p := &proposalModel.ProposalModel{ProposalID: uuid.New(), ProposalStatus: proposalModel.ProposalStatusSubmitted}

	got := BuildSummary(p, 2, nil, nil, nil, nil)

	assert.Zero(t, got.AssignedCount)
	assert.Zero(t, got.SubmittedCount)
	assert.Nil(t, got.OverallAverage)
	assert.Empty(t, got.CriterionAverages)
	assert.False(t, got.ThresholdMet)
}

func TestBuildSummaryThresholdExactlyMet(t *testing.T) {
	p := &proposalModel.ProposalModel{ProposalID: uuid.New(), ProposalStatus: proposalModel.ProposalStatusUnderReview}

	evA, evB := uuid.New(), uuid.New()
	assignments := []assignmentModel.AssignmentModel{
		assignment(evA, assignmentModel.StatusAccepted),
		assignment(evB, assignmentModel.StatusAccepted),
	}
	evaluations := []evaluationModel.EvaluationModel{
		submittedEvaluation(t, evA, 75, evaluationModel.RecommendApprove, nil),
		submittedEvaluation(t, evB, 65, evaluationModel.RecommendReject, nil),
	}

	got := BuildSummary(p, 2, assignments, evaluations, nil, nil)
	assert.True(t, got.ThresholdMet)
	assert.Empty(t, got.PendingEvaluators)
}

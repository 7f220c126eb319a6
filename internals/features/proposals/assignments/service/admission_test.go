// file: internals/features/proposals/assignments/service/admission_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "hibahku_backend/internals/features/proposals/assignments/model"
	matching "hibahku_backend/internals/features/proposals/matching/service"
	apperr "hibahku_backend/internals/helpers/apperr"
)

func TestCheckAdmissionOK(t *testing.T) {
	err := CheckAdmission(AdmissionInput{
		CurrentLoad:      2,
		MaxCapacity:      4,
		ConflictSeverity: matching.SeverityAdvisory,
	})
	assert.NoError(t, err, "advisory COI tidak memblokir")
}

func TestCheckAdmissionDuplicate(t *testing.T) {
	err := CheckAdmission(AdmissionInput{
		ActiveExists:     true,
		CurrentLoad:      0,
		MaxCapacity:      4,
		ConflictSeverity: matching.SeverityNone,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCheckAdmissionAtCapacity(t *testing.T) {
	err := CheckAdmission(AdmissionInput{
		CurrentLoad:      4,
		MaxCapacity:      4,
		ConflictSeverity: matching.SeverityNone,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCheckAdmissionBlockingCOI(t *testing.T) {
	err := CheckAdmission(AdmissionInput{
		CurrentLoad:      0,
		MaxCapacity:      4,
		ConflictSeverity: matching.SeverityBlocking,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCheckAdmissionOrderDuplicateFirst(t *testing.T) {
	// duplikat dicek sebelum kapasitas dan COI
	err := CheckAdmission(AdmissionInput{
		ActiveExists:     true,
		CurrentLoad:      9,
		MaxCapacity:      4,
		ConflictSeverity: matching.SeverityBlocking,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assignment aktif")
}

func TestResolveResponseAccept(t *testing.T) {
	next, err := ResolveResponse(model.StatusPending, true)
	require.NoError(t, err)
	assert.Equal(t, model.StatusAccepted, next)
}

func TestResolveResponseDecline(t *testing.T) {
	next, err := ResolveResponse(model.StatusPending, false)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDeclined, next)
}

func TestResolveResponseAlreadyResponded(t *testing.T) {
	for _, current := range []string{model.StatusAccepted, model.StatusDeclined} {
		_, err := ResolveResponse(current, true)
		require.Error(t, err, "status %s tidak boleh direspon lagi", current)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	}
}

func TestDeclinedReleasesLoadAndPair(t *testing.T) {
	next, err := ResolveResponse(model.StatusPending, false)
	require.NoError(t, err)

	// declined keluar dari beban aktif evaluator
	declined := model.AssignmentModel{AssignmentStatus: next}
	assert.False(t, declined.IsActive())
	assert.NotContains(t, model.ActiveStatuses, next)

	// dan pasangan proposal-evaluator boleh ditugaskan ulang
	err = CheckAdmission(AdmissionInput{
		ActiveExists:     false,
		CurrentLoad:      1,
		MaxCapacity:      4,
		ConflictSeverity: matching.SeverityNone,
	})
	assert.NoError(t, err)
}

func TestDiffEvaluators(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	toAdd, toRemove := DiffEvaluators([]uuid.UUID{a, b, c}, []uuid.UUID{b, c, d})
	assert.Equal(t, []uuid.UUID{d}, toAdd)
	assert.Equal(t, []uuid.UUID{a}, toRemove)
}

func TestDiffEvaluatorsNoChanges(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	toAdd, toRemove := DiffEvaluators([]uuid.UUID{a, b}, []uuid.UUID{a, b})
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffEvaluatorsEmptySets(t *testing.T) {
	a := uuid.New()

	toAdd, toRemove := DiffEvaluators(nil, []uuid.UUID{a})
	assert.Equal(t, []uuid.UUID{a}, toAdd)
	assert.Empty(t, toRemove)

	toAdd, toRemove = DiffEvaluators([]uuid.UUID{a}, nil)
	assert.Empty(t, toAdd)
	assert.Equal(t, []uuid.UUID{a}, toRemove)
}

// file: internals/features/proposals/decisions/service/decision_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	proposalModel "hibahku_backend/internals/features/proposals/proposals/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

func TestCheckDecisionThresholdBelow(t *testing.T) {
	for _, decision := range []string{
		proposalModel.ProposalStatusApproved,
		proposalModel.ProposalStatusRejected,
	} {
		err := CheckDecisionThreshold(decision, 1, 2)
		require.Error(t, err, "keputusan %s di bawah ambang harus ditolak", decision)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		assert.Contains(t, err.Error(), "1 dari 2")
	}
}

func TestCheckDecisionThresholdMet(t *testing.T) {
	assert.NoError(t, CheckDecisionThreshold(proposalModel.ProposalStatusApproved, 2, 2))
	assert.NoError(t, CheckDecisionThreshold(proposalModel.ProposalStatusRejected, 3, 2))
}

func TestCheckDecisionThresholdReviseExempt(t *testing.T) {
	// revise_and_resubmit boleh kapan saja, termasuk tanpa satu pun evaluasi
	assert.NoError(t, CheckDecisionThreshold(proposalModel.ProposalStatusRevise, 0, 2))
}

func TestFinalizeRejectsUnknownDecision(t *testing.T) {
	// validasi decision jalan sebelum menyentuh DB
	for _, bad := range []string{"", "maybe", "submitted", "under_review", "APPROVED"} {
		_, err := Finalize(context.Background(), nil, uuid.New(), uuid.New(), bad, nil)
		require.Error(t, err, "decision %q harus ditolak", bad)
		assert.True(t, apperr.IsKind(err, apperr.KindValidation))
	}
}

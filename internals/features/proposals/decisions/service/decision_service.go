// file: internals/features/proposals/decisions/service/decision_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	evaluationModel "hibahku_backend/internals/features/proposals/evaluations/model"
	proposalModel "hibahku_backend/internals/features/proposals/proposals/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

// CheckDecisionThreshold memutuskan boleh-tidaknya sebuah keputusan final:
// approved/rejected butuh minimal `required` evaluasi tersubmit;
// revise_and_resubmit dibebaskan dari ambang (proposal toh kembali ke
// antrian penulis).
func CheckDecisionThreshold(decision string, submitted, required int) error {
	if decision == proposalModel.ProposalStatusRevise {
		return nil
	}
	if submitted < required {
		return apperr.Validation(
			"baru %d dari %d evaluasi tersubmit; keputusan %s butuh ambang terpenuhi",
			submitted, required, decision,
		)
	}
	return nil
}

// Finalize menulis keputusan akhir ke slot keputusan proposal.
// Finalize ulang menimpa keputusan sebelumnya — keputusan terakhir yang
// berlaku. Gagal ambang = transaksi batal, status proposal tidak tersentuh.
func Finalize(ctx context.Context, db *gorm.DB, proposalID, decidedBy uuid.UUID, decision string, note *string) (*proposalModel.ProposalModel, error) {
	if !proposalModel.IsDecisionStatus(decision) {
		return nil, apperr.Validation("keputusan %q tidak dikenal", decision)
	}

	var out proposalModel.ProposalModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p proposalModel.ProposalModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("proposal_id = ?", proposalID).
			First(&p).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("proposal tidak ditemukan")
			}
			return err
		}

		required, err := requiredEvaluatorsFor(tx, p.ProposalCallID)
		if err != nil {
			return err
		}

		var submitted int64
		if err := tx.Model(&evaluationModel.EvaluationModel{}).
			Where("evaluation_proposal_id = ? AND evaluation_completed_at IS NOT NULL", proposalID).
			Count(&submitted).Error; err != nil {
			return err
		}

		if err := CheckDecisionThreshold(decision, int(submitted), required); err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"proposal_status":        decision,
			"proposal_decided_by":    decidedBy,
			"proposal_decided_at":    now,
			"proposal_decision_note": note,
			"proposal_updated_at":    now,
		}
		if err := tx.Model(&proposalModel.ProposalModel{}).
			Where("proposal_id = ?", proposalID).
			Updates(updates).Error; err != nil {
			return err
		}

		return tx.Where("proposal_id = ?", proposalID).First(&out).Error
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

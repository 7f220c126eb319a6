// file: internals/features/proposals/evaluations/service/evaluation_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	criterionModel "hibahku_backend/internals/features/calls/criteria/model"
	directory "hibahku_backend/internals/features/evaluators/directory/service"
	assignmentModel "hibahku_backend/internals/features/proposals/assignments/model"
	model "hibahku_backend/internals/features/proposals/evaluations/model"
	proposalModel "hibahku_backend/internals/features/proposals/proposals/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

// DraftInput: payload draft/submit dari evaluator.
type DraftInput struct {
	Entries              []model.RubricEntry
	Recommendation       *string
	PublicComments       *string
	ConfidentialComments *string
	AIAssistanceUsed     *bool
}

func marshalEntries(entries []model.RubricEntry) (datatypes.JSON, error) {
	b, err := json.Marshal(entries)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func UnmarshalEntries(js datatypes.JSON) []model.RubricEntry {
	var out []model.RubricEntry
	if len(js) == 0 {
		return out
	}
	_ = json.Unmarshal(js, &out)
	return out
}

// CriteriaForProposal memuat rubrik call milik proposal.
func CriteriaForProposal(tx *gorm.DB, proposalID uuid.UUID) ([]CriterionSpec, error) {
	var p proposalModel.ProposalModel
	if err := tx.Where("proposal_id = ?", proposalID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("proposal tidak ditemukan")
		}
		return nil, err
	}

	var rows []criterionModel.CriterionModel
	if err := tx.
		Where("criterion_call_id = ?", p.ProposalCallID).
		Order("criterion_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	specs := make([]CriterionSpec, 0, len(rows))
	for i := range rows {
		specs = append(specs, CriterionSpec{
			ID:       rows[i].CriterionID,
			Name:     rows[i].CriterionName,
			Weight:   rows[i].CriterionWeight,
			MaxScore: rows[i].CriterionMaxScore,
		})
	}
	return specs, nil
}

// resolveAcceptedEvaluator memastikan user adalah evaluator dengan
// assignment accepted pada proposal tsb.
func resolveAcceptedEvaluator(tx *gorm.DB, proposalID, evaluatorUserID uuid.UUID) (directory.EvaluatorView, error) {
	ev, err := directory.GetViewByUserID(tx, evaluatorUserID)
	if err != nil {
		return ev, err
	}

	var n int64
	if err := tx.Model(&assignmentModel.AssignmentModel{}).
		Where("assignment_proposal_id = ? AND assignment_evaluator_id = ? AND assignment_status = ?",
			proposalID, ev.ID, assignmentModel.StatusAccepted).
		Count(&n).Error; err != nil {
		return ev, err
	}
	if n == 0 {
		return ev, apperr.Conflict("belum ada assignment accepted untuk proposal ini")
	}
	return ev, nil
}

// SaveDraft: upsert draft evaluasi (last-write-wins antar flush autosave).
// Ditolak keras begitu evaluasi sudah tersubmit — submit selalu menang
// atas draft-save yang datang terlambat.
func SaveDraft(ctx context.Context, db *gorm.DB, proposalID, evaluatorUserID uuid.UUID, in DraftInput) (*model.EvaluationModel, error) {
	var saved model.EvaluationModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ev, err := resolveAcceptedEvaluator(tx, proposalID, evaluatorUserID)
		if err != nil {
			return err
		}

		var existing model.EvaluationModel
		found := true
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("evaluation_proposal_id = ? AND evaluation_evaluator_id = ?", proposalID, ev.ID).
			First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		}

		if found {
			if err := EnsureDraftWritable(&existing); err != nil {
				return err
			}
		}

		entriesJSON, err := marshalEntries(in.Entries)
		if err != nil {
			return apperr.Validation("rubric entries tidak valid")
		}

		now := time.Now()
		if !found {
			saved = model.EvaluationModel{
				EvaluationProposalID:  proposalID,
				EvaluationEvaluatorID: ev.ID,
				EvaluationEntries:     entriesJSON,
				EvaluationCreatedAt:   now,
				EvaluationUpdatedAt:   now,
			}
			applyDraftFields(&saved, in)
			return tx.Create(&saved).Error
		}

		updates := map[string]interface{}{
			"evaluation_entries":    entriesJSON,
			"evaluation_updated_at": now,
		}
		if in.Recommendation != nil {
			updates["evaluation_recommendation"] = *in.Recommendation
		}
		if in.PublicComments != nil {
			updates["evaluation_public_comments"] = *in.PublicComments
		}
		if in.ConfidentialComments != nil {
			updates["evaluation_confidential_comments"] = *in.ConfidentialComments
		}
		if in.AIAssistanceUsed != nil {
			updates["evaluation_ai_assistance_used"] = *in.AIAssistanceUsed
		}

		if err := tx.Model(&model.EvaluationModel{}).
			Where("evaluation_id = ?", existing.EvaluationID).
			Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("evaluation_id = ?", existing.EvaluationID).First(&saved).Error
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func applyDraftFields(m *model.EvaluationModel, in DraftInput) {
	if in.Recommendation != nil {
		m.EvaluationRecommendation = in.Recommendation
	}
	if in.PublicComments != nil {
		m.EvaluationPublicComments = in.PublicComments
	}
	if in.ConfidentialComments != nil {
		m.EvaluationConfidentialComments = in.ConfidentialComments
	}
	if in.AIAssistanceUsed != nil {
		m.EvaluationAIAssistanceUsed = *in.AIAssistanceUsed
	}
}

// Submit: validasi penuh lalu bekukan evaluasi. Satu-satunya jalur yang
// menulis evaluation_overall_score, dihitung dari nilai final.
func Submit(ctx context.Context, db *gorm.DB, proposalID, evaluatorUserID uuid.UUID, in DraftInput) (*model.EvaluationModel, error) {
	var submitted model.EvaluationModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ev, err := resolveAcceptedEvaluator(tx, proposalID, evaluatorUserID)
		if err != nil {
			return err
		}

		criteria, err := CriteriaForProposal(tx, proposalID)
		if err != nil {
			return err
		}
		if len(criteria) == 0 {
			return apperr.Validation("call belum punya rubrik; evaluasi tidak bisa disubmit")
		}

		rec := ""
		if in.Recommendation != nil {
			rec = *in.Recommendation
		}
		if err := ValidateForSubmit(in.Entries, criteria, rec); err != nil {
			return err
		}

		var existing model.EvaluationModel
		found := true
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("evaluation_proposal_id = ? AND evaluation_evaluator_id = ?", proposalID, ev.ID).
			First(&existing).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			found = false
		}
		if found {
			if err := EnsureDraftWritable(&existing); err != nil {
				return err
			}
		}

		entriesJSON, err := marshalEntries(in.Entries)
		if err != nil {
			return apperr.Validation("rubric entries tidak valid")
		}

		now := time.Now()
		overall := ComputeWeightedScore(in.Entries, criteria)

		if !found {
			submitted = model.EvaluationModel{
				EvaluationProposalID:   proposalID,
				EvaluationEvaluatorID:  ev.ID,
				EvaluationEntries:      entriesJSON,
				EvaluationOverallScore: &overall,
				EvaluationCompletedAt:  &now,
				EvaluationCreatedAt:    now,
				EvaluationUpdatedAt:    now,
			}
			applyDraftFields(&submitted, in)
			return tx.Create(&submitted).Error
		}

		updates := map[string]interface{}{
			"evaluation_entries":        entriesJSON,
			"evaluation_recommendation": rec,
			"evaluation_overall_score":  overall,
			"evaluation_completed_at":   now,
			"evaluation_updated_at":     now,
		}
		if in.PublicComments != nil {
			updates["evaluation_public_comments"] = *in.PublicComments
		}
		if in.ConfidentialComments != nil {
			updates["evaluation_confidential_comments"] = *in.ConfidentialComments
		}
		if in.AIAssistanceUsed != nil {
			updates["evaluation_ai_assistance_used"] = *in.AIAssistanceUsed
		}

		if err := tx.Model(&model.EvaluationModel{}).
			Where("evaluation_id = ?", existing.EvaluationID).
			Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("evaluation_id = ?", existing.EvaluationID).First(&submitted).Error
	})
	if err != nil {
		return nil, err
	}
	return &submitted, nil
}

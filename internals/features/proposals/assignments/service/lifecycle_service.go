// file: internals/features/proposals/assignments/service/lifecycle_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	callModel "hibahku_backend/internals/features/calls/calls/model"
	directory "hibahku_backend/internals/features/evaluators/directory/service"
	model "hibahku_backend/internals/features/proposals/assignments/model"
	matching "hibahku_backend/internals/features/proposals/matching/service"
	proposalModel "hibahku_backend/internals/features/proposals/proposals/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

/* ========================================================
   Helper intra-transaksi
   Semua mutasi assignment untuk satu proposal diserialisasi
   lewat row lock proposal, supaya dua admin tidak sama-sama
   lolos cek kapasitas lalu overshoot (lihat re-check di bawah).
======================================================== */

func lockProposal(tx *gorm.DB, proposalID uuid.UUID) (*proposalModel.ProposalModel, error) {
	var p proposalModel.ProposalModel
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("proposal_id = ?", proposalID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("proposal tidak ditemukan")
		}
		return nil, err
	}
	return &p, nil
}

// ActiveLoad: beban aktif evaluator (pending+accepted) lintas proposal.
func ActiveLoad(tx *gorm.DB, evaluatorID uuid.UUID) (int, error) {
	var n int64
	err := tx.Model(&model.AssignmentModel{}).
		Where("assignment_evaluator_id = ? AND assignment_status IN ?", evaluatorID, model.ActiveStatuses).
		Count(&n).Error
	return int(n), err
}

func activePairExists(tx *gorm.DB, proposalID, evaluatorID uuid.UUID) (bool, error) {
	var n int64
	err := tx.Model(&model.AssignmentModel{}).
		Where("assignment_proposal_id = ? AND assignment_evaluator_id = ? AND assignment_status IN ?",
			proposalID, evaluatorID, model.ActiveStatuses).
		Count(&n).Error
	return n > 0, err
}

func hasSubmittedEvaluation(tx *gorm.DB, proposalID, evaluatorID uuid.UUID) (bool, error) {
	var n int64
	err := tx.Table("evaluations").
		Where("evaluation_proposal_id = ? AND evaluation_evaluator_id = ? AND evaluation_completed_at IS NOT NULL AND evaluation_deleted_at IS NULL",
			proposalID, evaluatorID).
		Count(&n).Error
	return n > 0, err
}

// touchProposal menandai mutasi assignment terakhir (dipakai flag stale matrix).
func touchProposal(tx *gorm.DB, proposalID uuid.UUID, now time.Time) error {
	return tx.Model(&proposalModel.ProposalModel{}).
		Where("proposal_id = ?", proposalID).
		Updates(map[string]interface{}{
			"proposal_assignments_touched_at": now,
			"proposal_updated_at":             now,
		}).Error
}

func toProposalInfo(p *proposalModel.ProposalModel) matching.ProposalInfo {
	dept, campus, ptype := "", "", ""
	if p.ProposalDepartment != nil {
		dept = *p.ProposalDepartment
	}
	if p.ProposalCampus != nil {
		campus = *p.ProposalCampus
	}
	if p.ProposalProjectType != nil {
		ptype = *p.ProposalProjectType
	}
	return matching.ProposalInfo{
		ID:          p.ProposalID,
		Title:       p.ProposalTitle,
		ProjectType: ptype,
		Keywords:    []string(p.ProposalKeywords),
		Department:  dept,
		Campus:      campus,
		AuthorIDs:   []string(p.ProposalAuthorIDs),
	}
}

func conflictSeverityFor(tx *gorm.DB, p *proposalModel.ProposalModel, ev directory.EvaluatorView) (string, error) {
	var call callModel.CallModel
	policies := []string(nil)
	if err := tx.Where("call_id = ?", p.ProposalCallID).First(&call).Error; err == nil {
		policies = []string(call.CallConflictPolicies)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	_, severity := matching.DetectConflicts(toProposalInfo(p), ev, policies)
	return severity, nil
}

// admitPair jalankan seluruh cek admission untuk satu pasangan DI DALAM Tx.
func admitPair(tx *gorm.DB, p *proposalModel.ProposalModel, evaluatorID uuid.UUID) (directory.EvaluatorView, error) {
	ev, err := directory.GetView(tx, evaluatorID)
	if err != nil {
		return ev, err
	}

	exists, err := activePairExists(tx, p.ProposalID, evaluatorID)
	if err != nil {
		return ev, err
	}
	load, err := ActiveLoad(tx, evaluatorID)
	if err != nil {
		return ev, err
	}
	severity, err := conflictSeverityFor(tx, p, ev)
	if err != nil {
		return ev, err
	}

	return ev, CheckAdmission(AdmissionInput{
		ActiveExists:     exists,
		CurrentLoad:      load,
		MaxCapacity:      ev.MaxCapacity,
		ConflictSeverity: severity,
	})
}

/* ========================================================
   Operasi lifecycle
======================================================== */

// QuickAssign: create assignment pending dengan admission gate.
// Idempotent-safe terhadap retry client: duplikat aktif selalu ConflictError.
func QuickAssign(ctx context.Context, db *gorm.DB, proposalID, evaluatorID uuid.UUID, method string, coiDeclared bool) (*model.AssignmentModel, error) {
	if method == "" {
		method = callModel.AssignMethodManual
	}

	var created model.AssignmentModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockProposal(tx, proposalID)
		if err != nil {
			return err
		}

		if _, err := admitPair(tx, p, evaluatorID); err != nil {
			return err
		}

		now := time.Now()
		created = model.AssignmentModel{
			AssignmentProposalID:  proposalID,
			AssignmentEvaluatorID: evaluatorID,
			AssignmentMethod:      method,
			AssignmentStatus:      model.StatusPending,
			AssignmentAssignedAt:  now,
			AssignmentCOIDeclared: coiDeclared,
			AssignmentCreatedAt:   now,
			AssignmentUpdatedAt:   now,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		// Proposal masuk tahap review begitu punya assignment pertama
		if p.ProposalStatus == proposalModel.ProposalStatusSubmitted {
			if err := tx.Model(&proposalModel.ProposalModel{}).
				Where("proposal_id = ?", proposalID).
				Update("proposal_status", proposalModel.ProposalStatusUnderReview).Error; err != nil {
				return err
			}
		}

		return touchProposal(tx, proposalID, now)
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Respond: transisi pending → accepted|declined oleh evaluator pemilik.
// Record declined tidak dihapus (audit) tapi keluar dari hitungan beban.
func Respond(ctx context.Context, db *gorm.DB, assignmentID, evaluatorUserID uuid.UUID, accept bool, reason, comment *string) (*model.AssignmentModel, error) {
	var updated model.AssignmentModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.AssignmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("assignment_id = ?", assignmentID).
			First(&a).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("assignment tidak ditemukan")
			}
			return err
		}

		ev, err := directory.GetViewByUserID(tx, evaluatorUserID)
		if err != nil {
			return err
		}
		if ev.ID != a.AssignmentEvaluatorID {
			return apperr.Authorization("assignment ini bukan milik Anda")
		}

		next, err := ResolveResponse(a.AssignmentStatus, accept)
		if err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]interface{}{
			"assignment_status":       next,
			"assignment_responded_at": now,
			"assignment_updated_at":   now,
		}
		if next == model.StatusDeclined {
			if reason != nil {
				updates["assignment_decline_reason"] = *reason
			}
			if comment != nil {
				updates["assignment_decline_comment"] = *comment
			}
		}

		if err := tx.Model(&model.AssignmentModel{}).
			Where("assignment_id = ?", assignmentID).
			Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("assignment_id = ?", assignmentID).First(&updated).Error; err != nil {
			return err
		}

		return touchProposal(tx, a.AssignmentProposalID, now)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Remove: aksi admin melepas assignment (accepted → unassigned).
// Ditolak kalau evaluator sudah submit evaluasi.
func Remove(ctx context.Context, db *gorm.DB, assignmentID uuid.UUID) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.AssignmentModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("assignment_id = ?", assignmentID).
			First(&a).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("assignment tidak ditemukan")
			}
			return err
		}

		submitted, err := hasSubmittedEvaluation(tx, a.AssignmentProposalID, a.AssignmentEvaluatorID)
		if err != nil {
			return err
		}
		if submitted {
			return apperr.Conflict("evaluator sudah submit evaluasi; assignment tidak bisa dilepas")
		}

		if err := tx.Delete(&a).Error; err != nil {
			return err
		}
		return touchProposal(tx, a.AssignmentProposalID, time.Now())
	})
}

// Reconcile (setAssignedEvaluators): samakan assignment aktif dengan set
// evaluator yang diminta. All-or-nothing: satu pasangan gagal admission atau
// satu pelepasan menabrak evaluasi tersubmit → seluruh operasi batal.
func Reconcile(ctx context.Context, db *gorm.DB, proposalID uuid.UUID, evaluatorIDs []uuid.UUID, method string) ([]model.AssignmentModel, error) {
	if method == "" {
		method = callModel.AssignMethodManual
	}

	var result []model.AssignmentModel
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockProposal(tx, proposalID)
		if err != nil {
			return err
		}

		var active []model.AssignmentModel
		if err := tx.
			Where("assignment_proposal_id = ? AND assignment_status IN ?", proposalID, model.ActiveStatuses).
			Find(&active).Error; err != nil {
			return err
		}

		current := make([]uuid.UUID, 0, len(active))
		byEvaluator := make(map[uuid.UUID]*model.AssignmentModel, len(active))
		for i := range active {
			current = append(current, active[i].AssignmentEvaluatorID)
			byEvaluator[active[i].AssignmentEvaluatorID] = &active[i]
		}

		toAdd, toRemove := DiffEvaluators(current, evaluatorIDs)

		// Pelepasan dulu, supaya kapasitas yang terbebas bisa dipakai penambahan
		for _, evID := range toRemove {
			submitted, err := hasSubmittedEvaluation(tx, proposalID, evID)
			if err != nil {
				return err
			}
			if submitted {
				return apperr.Conflict("evaluator %s sudah submit evaluasi dan tidak bisa dilepas", evID)
			}
			if err := tx.Delete(byEvaluator[evID]).Error; err != nil {
				return err
			}
		}

		now := time.Now()
		for _, evID := range toAdd {
			if _, err := admitPair(tx, p, evID); err != nil {
				return err
			}
			a := model.AssignmentModel{
				AssignmentProposalID:  proposalID,
				AssignmentEvaluatorID: evID,
				AssignmentMethod:      method,
				AssignmentStatus:      model.StatusPending,
				AssignmentAssignedAt:  now,
				AssignmentCreatedAt:   now,
				AssignmentUpdatedAt:   now,
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
		}

		if err := touchProposal(tx, proposalID, now); err != nil {
			return err
		}

		return tx.
			Where("assignment_proposal_id = ? AND assignment_status IN ?", proposalID, model.ActiveStatuses).
			Order("assignment_assigned_at ASC").
			Find(&result).Error
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

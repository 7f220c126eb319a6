// file: internals/features/proposals/decisions/service/summary_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	directory "hibahku_backend/internals/features/evaluators/directory/service"
	assignmentModel "hibahku_backend/internals/features/proposals/assignments/model"
	evaluationModel "hibahku_backend/internals/features/proposals/evaluations/model"
	evaluationService "hibahku_backend/internals/features/proposals/evaluations/service"
	proposalModel "hibahku_backend/internals/features/proposals/proposals/model"
	apperr "hibahku_backend/internals/helpers/apperr"
)

// CriterionAverage: rata-rata skor satu criterion lintas evaluasi tersubmit.
type CriterionAverage struct {
	CriterionID   uuid.UUID `json:"criterion_id"`
	CriterionName string    `json:"criterion_name"`
	Average       float64   `json:"average"`
	ScoreCount    int       `json:"score_count"`
}

// PendingEvaluator: evaluator yang masih ditunggu hasilnya.
type PendingEvaluator struct {
	EvaluatorID   uuid.UUID `json:"evaluator_id"`
	EvaluatorName string    `json:"evaluator_name"`
	Status        string    `json:"status"` // pending | in_progress
}

// ReviewSummary: agregat progres review satu proposal, bahan panel keputusan.
type ReviewSummary struct {
	ProposalID     uuid.UUID `json:"proposal_id"`
	ProposalTitle  string    `json:"proposal_title"`
	ProposalStatus string    `json:"proposal_status"`

	RequiredEvaluators int `json:"required_evaluators"`
	AssignedCount      int `json:"assigned_count"`
	PendingCount       int `json:"pending_count"`
	InProgressCount    int `json:"in_progress_count"`
	SubmittedCount     int `json:"submitted_count"`

	OverallAverage    *float64           `json:"overall_average"`
	CriterionAverages []CriterionAverage `json:"criterion_averages"`

	Recommendations   map[string]int     `json:"recommendations"`
	PendingEvaluators []PendingEvaluator `json:"pending_evaluators"`

	ThresholdMet bool `json:"threshold_met"`
}

// BuildSummary: murni — seluruh input sudah dimuat pemanggil.
// in_progress = assignment accepted tanpa evaluasi tersubmit.
func BuildSummary(
	p *proposalModel.ProposalModel,
	requiredEvaluators int,
	assignments []assignmentModel.AssignmentModel,
	evaluations []evaluationModel.EvaluationModel,
	criteria []evaluationService.CriterionSpec,
	evaluatorNames map[uuid.UUID]string,
) ReviewSummary {
	out := ReviewSummary{
		ProposalID:         p.ProposalID,
		ProposalTitle:      p.ProposalTitle,
		ProposalStatus:     p.ProposalStatus,
		RequiredEvaluators: requiredEvaluators,
		Recommendations:    map[string]int{},
		CriterionAverages:  []CriterionAverage{},
		PendingEvaluators:  []PendingEvaluator{},
	}

	submittedBy := make(map[uuid.UUID]*evaluationModel.EvaluationModel, len(evaluations))
	for i := range evaluations {
		if evaluations[i].IsSubmitted() {
			submittedBy[evaluations[i].EvaluationEvaluatorID] = &evaluations[i]
		}
	}

	for i := range assignments {
		a := &assignments[i]
		switch a.AssignmentStatus {
		case assignmentModel.StatusPending:
			out.AssignedCount++
			out.PendingCount++
			out.PendingEvaluators = append(out.PendingEvaluators, PendingEvaluator{
				EvaluatorID:   a.AssignmentEvaluatorID,
				EvaluatorName: evaluatorNames[a.AssignmentEvaluatorID],
				Status:        "pending",
			})
		case assignmentModel.StatusAccepted:
			out.AssignedCount++
			if _, done := submittedBy[a.AssignmentEvaluatorID]; done {
				out.SubmittedCount++
			} else {
				out.InProgressCount++
				out.PendingEvaluators = append(out.PendingEvaluators, PendingEvaluator{
					EvaluatorID:   a.AssignmentEvaluatorID,
					EvaluatorName: evaluatorNames[a.AssignmentEvaluatorID],
					Status:        "in_progress",
				})
			}
		}
	}

	// Rata-rata skor per criterion + rata-rata overall dari evaluasi tersubmit
	type acc struct {
		sum float64
		n   int
	}
	perCriterion := make(map[uuid.UUID]*acc, len(criteria))

	var overallSum float64
	var overallN int
	for _, ev := range submittedBy {
		if ev.EvaluationOverallScore != nil {
			overallSum += *ev.EvaluationOverallScore
			overallN++
		}
		if ev.EvaluationRecommendation != nil {
			out.Recommendations[*ev.EvaluationRecommendation]++
		}
		for _, e := range evaluationService.UnmarshalEntries(ev.EvaluationEntries) {
			if e.Score == nil {
				continue
			}
			a, ok := perCriterion[e.CriterionID]
			if !ok {
				a = &acc{}
				perCriterion[e.CriterionID] = a
			}
			a.sum += *e.Score
			a.n++
		}
	}
	if overallN > 0 {
		avg := overallSum / float64(overallN)
		out.OverallAverage = &avg
	}

	for _, c := range criteria {
		a, ok := perCriterion[c.ID]
		if !ok || a.n == 0 {
			continue
		}
		out.CriterionAverages = append(out.CriterionAverages, CriterionAverage{
			CriterionID:   c.ID,
			CriterionName: c.Name,
			Average:       a.sum / float64(a.n),
			ScoreCount:    a.n,
		})
	}

	out.ThresholdMet = out.SubmittedCount >= requiredEvaluators
	return out
}

// LoadSummary memuat seluruh bahan lalu merakit ReviewSummary.
func LoadSummary(ctx context.Context, db *gorm.DB, proposalID uuid.UUID) (*ReviewSummary, error) {
	tx := db.WithContext(ctx)

	var p proposalModel.ProposalModel
	if err := tx.Where("proposal_id = ?", proposalID).First(&p).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperr.NotFound("proposal tidak ditemukan")
		}
		return nil, err
	}

	required, err := requiredEvaluatorsFor(tx, p.ProposalCallID)
	if err != nil {
		return nil, err
	}

	var assignments []assignmentModel.AssignmentModel
	if err := tx.
		Where("assignment_proposal_id = ?", proposalID).
		Find(&assignments).Error; err != nil {
		return nil, err
	}

	var evaluations []evaluationModel.EvaluationModel
	if err := tx.
		Where("evaluation_proposal_id = ?", proposalID).
		Find(&evaluations).Error; err != nil {
		return nil, err
	}

	criteria, err := evaluationService.CriteriaForProposal(tx, proposalID)
	if err != nil {
		return nil, err
	}

	names, err := evaluatorNamesFor(tx, assignments)
	if err != nil {
		return nil, err
	}

	s := BuildSummary(&p, required, assignments, evaluations, criteria, names)
	return &s, nil
}

func requiredEvaluatorsFor(tx *gorm.DB, callID uuid.UUID) (int, error) {
	var row struct {
		CallRequiredEvaluators int
	}
	if err := tx.Table("calls").
		Select("call_required_evaluators").
		Where("call_id = ? AND call_deleted_at IS NULL", callID).
		Take(&row).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, apperr.NotFound("call tidak ditemukan")
		}
		return 0, err
	}
	return row.CallRequiredEvaluators, nil
}

func evaluatorNamesFor(tx *gorm.DB, assignments []assignmentModel.AssignmentModel) (map[uuid.UUID]string, error) {
	names := make(map[uuid.UUID]string, len(assignments))
	for i := range assignments {
		id := assignments[i].AssignmentEvaluatorID
		if _, ok := names[id]; ok {
			continue
		}
		v, err := directory.GetView(tx, id)
		if err != nil {
			if apperr.IsKind(err, apperr.KindNotFound) {
				names[id] = ""
				continue
			}
			return nil, err
		}
		names[id] = v.Name
	}
	return names, nil
}

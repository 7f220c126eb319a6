// file: internals/features/proposals/evaluations/dto/evaluation_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "hibahku_backend/internals/features/proposals/evaluations/model"
)

type RubricEntryRequest struct {
	CriterionID uuid.UUID `json:"criterion_id" validate:"required"`
	Score       *float64  `json:"score" validate:"omitempty,gte=0"`
	Comments    string    `json:"comments" validate:"omitempty"`
	Strengths   []string  `json:"strengths" validate:"omitempty,dive,max=500"`
	Weaknesses  []string  `json:"weaknesses" validate:"omitempty,dive,max=500"`
}

type SaveEvaluationRequest struct {
	Entries              []RubricEntryRequest `json:"entries" validate:"omitempty,dive"`
	Recommendation       *string              `json:"recommendation" validate:"omitempty,oneof=approve approve_with_modifications reject revise_and_resubmit"`
	PublicComments       *string              `json:"public_comments" validate:"omitempty"`
	ConfidentialComments *string              `json:"confidential_comments" validate:"omitempty"`
	AIAssistanceUsed     *bool                `json:"ai_assistance_used" validate:"omitempty"`
}

func (r *SaveEvaluationRequest) ToEntries() []model.RubricEntry {
	out := make([]model.RubricEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, model.RubricEntry{
			CriterionID: e.CriterionID,
			Score:       e.Score,
			Comments:    e.Comments,
			Strengths:   e.Strengths,
			Weaknesses:  e.Weaknesses,
		})
	}
	return out
}

type EvaluationResponse struct {
	EvaluationID          uuid.UUID           `json:"evaluation_id"`
	EvaluationProposalID  uuid.UUID           `json:"evaluation_proposal_id"`
	EvaluationEvaluatorID uuid.UUID           `json:"evaluation_evaluator_id"`
	Entries               []model.RubricEntry `json:"entries"`
	Recommendation        *string             `json:"recommendation"`
	PublicComments        *string             `json:"public_comments"`
	ConfidentialComments  *string             `json:"confidential_comments"`
	AIAssistanceUsed      bool                `json:"ai_assistance_used"`
	OverallScore          *float64            `json:"overall_score"`
	Submitted             bool                `json:"submitted"`
	CompletedAt           *time.Time          `json:"completed_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

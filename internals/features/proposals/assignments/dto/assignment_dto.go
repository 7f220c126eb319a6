// file: internals/features/proposals/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type QuickAssignRequest struct {
	AssignmentEvaluatorID uuid.UUID `json:"assignment_evaluator_id" validate:"required"`
	AssignmentMethod      *string   `json:"assignment_method" validate:"omitempty,oneof=manual auto-balanced ai-matched"`
	AssignmentCOIDeclared *bool     `json:"assignment_coi_declared" validate:"omitempty"`
}

type ReconcileRequest struct {
	EvaluatorIDs     []uuid.UUID `json:"evaluator_ids" validate:"required"`
	AssignmentMethod *string     `json:"assignment_method" validate:"omitempty,oneof=manual auto-balanced ai-matched"`
}

type RespondRequest struct {
	Decision string  `json:"decision" validate:"required,oneof=accept decline"`
	Reason   *string `json:"reason" validate:"omitempty,max=120"`
	Comment  *string `json:"comment" validate:"omitempty"`
}

type AssignmentResponse struct {
	AssignmentID             uuid.UUID  `json:"assignment_id"`
	AssignmentProposalID     uuid.UUID  `json:"assignment_proposal_id"`
	AssignmentEvaluatorID    uuid.UUID  `json:"assignment_evaluator_id"`
	AssignmentMethod         string     `json:"assignment_method"`
	AssignmentStatus         string     `json:"assignment_status"`
	AssignmentAssignedAt     time.Time  `json:"assignment_assigned_at"`
	AssignmentRespondedAt    *time.Time `json:"assignment_responded_at"`
	AssignmentDeclineReason  *string    `json:"assignment_decline_reason"`
	AssignmentDeclineComment *string    `json:"assignment_decline_comment"`
	AssignmentCOIDeclared    bool       `json:"assignment_coi_declared"`
}

// Lane = pengelompokan assignment per tahap lifecycle (untuk tampilan beban)
type AssignmentLanes struct {
	Pending  []AssignmentResponse `json:"pending"`
	Accepted []AssignmentResponse `json:"accepted"`
	Declined []AssignmentResponse `json:"declined"`
}

type ListAssignmentResponse struct {
	Data  []AssignmentResponse `json:"data"`
	Lanes AssignmentLanes      `json:"lanes"`
	Total int                  `json:"total"`
}

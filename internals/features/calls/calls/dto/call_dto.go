// file: internals/features/calls/calls/dto/call_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCallRequest struct {
	CallTitle              string   `json:"call_title" validate:"required,min=3,max=180"`
	CallDescription        *string  `json:"call_description" validate:"omitempty"`
	CallStatus             *string  `json:"call_status" validate:"omitempty,oneof=draft open closed"`
	CallRequiredEvaluators *int     `json:"call_required_evaluators" validate:"omitempty,min=1,max=20"`
	CallAssignmentMethod   *string  `json:"call_assignment_method" validate:"omitempty,oneof=manual auto-balanced ai-matched"`
	CallConflictPolicies   []string `json:"call_conflict_policies" validate:"omitempty,dive,min=1"`
}

type PatchCallRequest struct {
	CallTitle              *string   `json:"call_title" validate:"omitempty,min=3,max=180"`
	CallDescription        *string   `json:"call_description" validate:"omitempty"`
	CallStatus             *string   `json:"call_status" validate:"omitempty,oneof=draft open closed"`
	CallRequiredEvaluators *int      `json:"call_required_evaluators" validate:"omitempty,min=1,max=20"`
	CallAssignmentMethod   *string   `json:"call_assignment_method" validate:"omitempty,oneof=manual auto-balanced ai-matched"`
	CallConflictPolicies   *[]string `json:"call_conflict_policies" validate:"omitempty,dive,min=1"`
}

type CallResponse struct {
	CallID                 uuid.UUID  `json:"call_id"`
	CallTitle              string     `json:"call_title"`
	CallDescription        *string    `json:"call_description"`
	CallStatus             string     `json:"call_status"`
	CallRequiredEvaluators int        `json:"call_required_evaluators"`
	CallAssignmentMethod   string     `json:"call_assignment_method"`
	CallConflictPolicies   []string   `json:"call_conflict_policies"`
	CallCreatedAt          time.Time  `json:"call_created_at"`
	CallUpdatedAt          time.Time  `json:"call_updated_at"`
	CallDeletedAt          *time.Time `json:"call_deleted_at,omitempty"`
}

type ListCallResponse struct {
	Data       []CallResponse `json:"data"`
	Pagination interface{}    `json:"pagination,omitempty"`
}

// file: internals/features/proposals/proposals/dto/proposal_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProposalRequest struct {
	ProposalCallID      uuid.UUID `json:"proposal_call_id" validate:"required"`
	ProposalTitle       string    `json:"proposal_title" validate:"required,min=3,max=200"`
	ProposalAbstract    *string   `json:"proposal_abstract" validate:"omitempty"`
	ProposalProjectType *string   `json:"proposal_project_type" validate:"omitempty,max=80"`
	ProposalKeywords    []string  `json:"proposal_keywords" validate:"omitempty,dive,min=1"`
	ProposalDepartment  *string   `json:"proposal_department" validate:"omitempty,max=120"`
	ProposalCampus      *string   `json:"proposal_campus" validate:"omitempty,max=120"`
	ProposalAuthorIDs   []string  `json:"proposal_author_ids" validate:"omitempty,dive,uuid4|uuid"`
}

type PatchProposalRequest struct {
	ProposalTitle       *string   `json:"proposal_title" validate:"omitempty,min=3,max=200"`
	ProposalAbstract    *string   `json:"proposal_abstract" validate:"omitempty"`
	ProposalProjectType *string   `json:"proposal_project_type" validate:"omitempty,max=80"`
	ProposalKeywords    *[]string `json:"proposal_keywords" validate:"omitempty,dive,min=1"`
	ProposalDepartment  *string   `json:"proposal_department" validate:"omitempty,max=120"`
	ProposalCampus      *string   `json:"proposal_campus" validate:"omitempty,max=120"`
	ProposalAuthorIDs   *[]string `json:"proposal_author_ids" validate:"omitempty,dive,uuid4|uuid"`
}

type ProposalResponse struct {
	ProposalID           uuid.UUID  `json:"proposal_id"`
	ProposalCallID       uuid.UUID  `json:"proposal_call_id"`
	ProposalTitle        string     `json:"proposal_title"`
	ProposalAbstract     *string    `json:"proposal_abstract"`
	ProposalProjectType  *string    `json:"proposal_project_type"`
	ProposalKeywords     []string   `json:"proposal_keywords"`
	ProposalDepartment   *string    `json:"proposal_department"`
	ProposalCampus       *string    `json:"proposal_campus"`
	ProposalAuthorIDs    []string   `json:"proposal_author_ids"`
	ProposalStatus       string     `json:"proposal_status"`
	ProposalDecidedBy    *uuid.UUID `json:"proposal_decided_by"`
	ProposalDecidedAt    *time.Time `json:"proposal_decided_at"`
	ProposalDecisionNote *string    `json:"proposal_decision_note"`
	ProposalCreatedAt    time.Time  `json:"proposal_created_at"`
	ProposalUpdatedAt    time.Time  `json:"proposal_updated_at"`
}

type ListProposalResponse struct {
	Data       []ProposalResponse `json:"data"`
	Pagination interface{}        `json:"pagination,omitempty"`
}

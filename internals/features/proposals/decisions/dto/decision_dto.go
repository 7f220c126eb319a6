// file: internals/features/proposals/decisions/dto/decision_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type FinalizeDecisionRequest struct {
	Decision string  `json:"decision" validate:"required,oneof=approved rejected revise_and_resubmit"`
	Note     *string `json:"note" validate:"omitempty,max=2000"`
}

type DecisionResponse struct {
	ProposalID           uuid.UUID  `json:"proposal_id"`
	ProposalStatus       string     `json:"proposal_status"`
	ProposalDecidedBy    *uuid.UUID `json:"proposal_decided_by"`
	ProposalDecidedAt    *time.Time `json:"proposal_decided_at"`
	ProposalDecisionNote *string    `json:"proposal_decision_note"`
}

// file: internals/features/proposals/proposals/model/proposal_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Status proposal. approved/rejected/revise_and_resubmit hanya lewat decision engine.
const (
	ProposalStatusSubmitted   = "submitted"
	ProposalStatusUnderReview = "under_review"
	ProposalStatusApproved    = "approved"
	ProposalStatusRejected    = "rejected"
	ProposalStatusRevise      = "revise_and_resubmit"
)

// DecisionStatuses: status yang boleh ditulis lewat finalizeDecision.
var DecisionStatuses = []string{
	ProposalStatusApproved,
	ProposalStatusRejected,
	ProposalStatusRevise,
}

func IsDecisionStatus(s string) bool {
	for _, d := range DecisionStatuses {
		if s == d {
			return true
		}
	}
	return false
}

// ProposalModel merepresentasikan tabel `proposals`.
// Assignment dan Evaluation dimiliki aggregate proposal (hapus proposal = cascade).
type ProposalModel struct {
	ProposalID uuid.UUID `json:"proposal_id" gorm:"column:proposal_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	ProposalCallID uuid.UUID `json:"proposal_call_id" gorm:"column:proposal_call_id;type:uuid;not null;index:idx_proposals_call"`

	ProposalTitle    string  `json:"proposal_title" gorm:"column:proposal_title;type:varchar(200);not null"`
	ProposalAbstract *string `json:"proposal_abstract" gorm:"column:proposal_abstract;type:text"`

	ProposalProjectType *string `json:"proposal_project_type" gorm:"column:proposal_project_type;type:varchar(80)"`

	ProposalKeywords pq.StringArray `json:"proposal_keywords" gorm:"column:proposal_keywords;type:text[]"`

	ProposalDepartment *string `json:"proposal_department" gorm:"column:proposal_department;type:varchar(120)"`
	ProposalCampus     *string `json:"proposal_campus" gorm:"column:proposal_campus;type:varchar(120)"`

	// user_id para pengusul (string UUID)
	ProposalAuthorIDs pq.StringArray `json:"proposal_author_ids" gorm:"column:proposal_author_ids;type:text[]"`

	ProposalStatus string `json:"proposal_status" gorm:"column:proposal_status;type:varchar(30);not null;default:'submitted';index:idx_proposals_status"`

	// Slot keputusan tunggal: finalize berikutnya menimpa (last decision wins)
	ProposalDecidedBy    *uuid.UUID `json:"proposal_decided_by" gorm:"column:proposal_decided_by;type:uuid"`
	ProposalDecidedAt    *time.Time `json:"proposal_decided_at" gorm:"column:proposal_decided_at;type:timestamptz"`
	ProposalDecisionNote *string    `json:"proposal_decision_note" gorm:"column:proposal_decision_note;type:text"`

	// Penanda mutasi assignment terakhir; dipakai matching engine untuk flag stale
	ProposalAssignmentsTouchedAt *time.Time `json:"proposal_assignments_touched_at" gorm:"column:proposal_assignments_touched_at;type:timestamptz"`

	ProposalCreatedAt time.Time      `json:"proposal_created_at" gorm:"column:proposal_created_at;not null;autoCreateTime;index:idx_proposals_created_at,sort:desc"`
	ProposalUpdatedAt time.Time      `json:"proposal_updated_at" gorm:"column:proposal_updated_at;not null;autoUpdateTime"`
	ProposalDeletedAt gorm.DeletedAt `json:"proposal_deleted_at" gorm:"column:proposal_deleted_at;index"`
}

func (ProposalModel) TableName() string {
	return "proposals"
}

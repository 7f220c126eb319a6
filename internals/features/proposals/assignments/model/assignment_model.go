// file: internals/features/proposals/assignments/model/assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status assignment: unassigned → pending → {accepted | declined}.
// declined bisa di-assign ulang; accepted hanya lepas lewat aksi admin.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// ActiveStatuses: status yang dihitung sebagai beban aktif evaluator.
var ActiveStatuses = []string{StatusPending, StatusAccepted}

// AssignmentModel merepresentasikan tabel `assignments`.
// Invariant: maksimal satu assignment non-declined per (proposal, evaluator);
// pasangan yang declined boleh dibuat ulang.
type AssignmentModel struct {
	AssignmentID uuid.UUID `json:"assignment_id" gorm:"column:assignment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	AssignmentProposalID  uuid.UUID `json:"assignment_proposal_id" gorm:"column:assignment_proposal_id;type:uuid;not null;index:idx_assignments_proposal"`
	AssignmentEvaluatorID uuid.UUID `json:"assignment_evaluator_id" gorm:"column:assignment_evaluator_id;type:uuid;not null;index:idx_assignments_evaluator"`

	// manual | auto-balanced | ai-matched
	AssignmentMethod string `json:"assignment_method" gorm:"column:assignment_method;type:varchar(20);not null;default:'manual'"`

	AssignmentStatus string `json:"assignment_status" gorm:"column:assignment_status;type:varchar(15);not null;default:'pending';index:idx_assignments_status"`

	AssignmentAssignedAt  time.Time  `json:"assignment_assigned_at" gorm:"column:assignment_assigned_at;type:timestamptz;not null"`
	AssignmentRespondedAt *time.Time `json:"assignment_responded_at" gorm:"column:assignment_responded_at;type:timestamptz"`

	AssignmentDeclineReason  *string `json:"assignment_decline_reason" gorm:"column:assignment_decline_reason;type:varchar(120)"`
	AssignmentDeclineComment *string `json:"assignment_decline_comment" gorm:"column:assignment_decline_comment;type:text"`

	AssignmentCOIDeclared bool `json:"assignment_coi_declared" gorm:"column:assignment_coi_declared;not null;default:false"`

	AssignmentCreatedAt time.Time      `json:"assignment_created_at" gorm:"column:assignment_created_at;not null;autoCreateTime"`
	AssignmentUpdatedAt time.Time      `json:"assignment_updated_at" gorm:"column:assignment_updated_at;not null;autoUpdateTime"`
	AssignmentDeletedAt gorm.DeletedAt `json:"assignment_deleted_at" gorm:"column:assignment_deleted_at;index"`
}

func (AssignmentModel) TableName() string {
	return "assignments"
}

func (m *AssignmentModel) IsActive() bool {
	return m.AssignmentStatus == StatusPending || m.AssignmentStatus == StatusAccepted
}

// file: internals/features/calls/calls/model/call_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Status call pendanaan
const (
	CallStatusDraft  = "draft"
	CallStatusOpen   = "open"
	CallStatusClosed = "closed"
)

// Metode penugasan default untuk call
const (
	AssignMethodManual       = "manual"
	AssignMethodAutoBalanced = "auto-balanced"
	AssignMethodAIMatched    = "ai-matched"
)

// Prefix aturan COI institusional yang bersifat blocking
const HardPolicyPrefix = "hard:"

// CallModel merepresentasikan tabel `calls`
type CallModel struct {
	CallID uuid.UUID `json:"call_id" gorm:"column:call_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CallTitle       string  `json:"call_title" gorm:"column:call_title;type:varchar(180);not null"`
	CallDescription *string `json:"call_description" gorm:"column:call_description;type:text"`

	CallStatus string `json:"call_status" gorm:"column:call_status;type:varchar(20);not null;default:'draft';index:idx_calls_status"`

	// Ambang keputusan: minimal evaluasi tersubmit sebelum approve/reject
	CallRequiredEvaluators int `json:"call_required_evaluators" gorm:"column:call_required_evaluators;not null;default:2"`

	CallAssignmentMethod string `json:"call_assignment_method" gorm:"column:call_assignment_method;type:varchar(20);not null;default:'manual'"`

	// Aturan COI per call; entri berprefix "hard:" memblokir penugasan
	CallConflictPolicies pq.StringArray `json:"call_conflict_policies" gorm:"column:call_conflict_policies;type:text[]"`

	CallCreatedAt time.Time      `json:"call_created_at" gorm:"column:call_created_at;not null;autoCreateTime"`
	CallUpdatedAt time.Time      `json:"call_updated_at" gorm:"column:call_updated_at;not null;autoUpdateTime"`
	CallDeletedAt gorm.DeletedAt `json:"call_deleted_at" gorm:"column:call_deleted_at;index"`
}

func (CallModel) TableName() string {
	return "calls"
}

// IsHardPolicy: policy berprefix "hard:" = blocking
func IsHardPolicy(policy string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(policy)), HardPolicyPrefix)
}

// PolicyRule membuang prefix hard: dan menormalkan rule-nya
func PolicyRule(policy string) string {
	p := strings.ToLower(strings.TrimSpace(policy))
	return strings.TrimPrefix(p, HardPolicyPrefix)
}

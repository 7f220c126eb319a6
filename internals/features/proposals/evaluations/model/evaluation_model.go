// file: internals/features/proposals/evaluations/model/evaluation_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Rekomendasi evaluator
const (
	RecommendApprove         = "approve"
	RecommendApproveWithMods = "approve_with_modifications"
	RecommendReject          = "reject"
	RecommendRevise          = "revise_and_resubmit"
)

var Recommendations = []string{
	RecommendApprove,
	RecommendApproveWithMods,
	RecommendReject,
	RecommendRevise,
}

func IsRecommendation(s string) bool {
	for _, r := range Recommendations {
		if s == r {
			return true
		}
	}
	return false
}

// RubricEntry: satu baris rubrik di kolom JSON evaluation_entries.
// Score nullable selama masih draft.
type RubricEntry struct {
	CriterionID uuid.UUID `json:"criterion_id"`
	Score       *float64  `json:"score"`
	Comments    string    `json:"comments,omitempty"`
	Strengths   []string  `json:"strengths,omitempty"`
	Weaknesses  []string  `json:"weaknesses,omitempty"`
}

// EvaluationModel merepresentasikan tabel `evaluations`.
// Satu record per (proposal, evaluator): mutable selama draft, beku begitu
// evaluation_completed_at terisi (submit), dan tidak pernah dihapus kecuali
// cascade proposal.
type EvaluationModel struct {
	EvaluationID uuid.UUID `json:"evaluation_id" gorm:"column:evaluation_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	EvaluationProposalID  uuid.UUID `json:"evaluation_proposal_id" gorm:"column:evaluation_proposal_id;type:uuid;not null;uniqueIndex:uq_evaluations_pair,priority:1"`
	EvaluationEvaluatorID uuid.UUID `json:"evaluation_evaluator_id" gorm:"column:evaluation_evaluator_id;type:uuid;not null;uniqueIndex:uq_evaluations_pair,priority:2"`

	// []RubricEntry
	EvaluationEntries datatypes.JSON `json:"evaluation_entries" gorm:"column:evaluation_entries;type:jsonb"`

	EvaluationRecommendation *string `json:"evaluation_recommendation" gorm:"column:evaluation_recommendation;type:varchar(40)"`

	EvaluationPublicComments       *string `json:"evaluation_public_comments" gorm:"column:evaluation_public_comments;type:text"`
	EvaluationConfidentialComments *string `json:"evaluation_confidential_comments" gorm:"column:evaluation_confidential_comments;type:text"`

	EvaluationAIAssistanceUsed bool `json:"evaluation_ai_assistance_used" gorm:"column:evaluation_ai_assistance_used;not null;default:false"`

	// Terisi hanya lewat submit, pakai nilai final
	EvaluationOverallScore *float64 `json:"evaluation_overall_score" gorm:"column:evaluation_overall_score;type:numeric(5,2)"`

	// NULL = masih draft
	EvaluationCompletedAt *time.Time `json:"evaluation_completed_at" gorm:"column:evaluation_completed_at;type:timestamptz;index:idx_evaluations_completed"`

	EvaluationCreatedAt time.Time      `json:"evaluation_created_at" gorm:"column:evaluation_created_at;not null;autoCreateTime"`
	EvaluationUpdatedAt time.Time      `json:"evaluation_updated_at" gorm:"column:evaluation_updated_at;not null;autoUpdateTime"`
	EvaluationDeletedAt gorm.DeletedAt `json:"evaluation_deleted_at" gorm:"column:evaluation_deleted_at;index"`
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}

func (m *EvaluationModel) IsSubmitted() bool {
	return m.EvaluationCompletedAt != nil
}

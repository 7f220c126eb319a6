// file: internals/features/evaluators/directory/model/evaluator_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Kapasitas default kalau evaluator belum dikonfigurasi
const DefaultMaxCapacity = 4

// EvaluatorModel merepresentasikan tabel `evaluators`.
// Tabel ini disinkronkan dari direktori kepegawaian (sumber eksternal);
// backend ini memperlakukannya read-only.
type EvaluatorModel struct {
	EvaluatorID uuid.UUID `json:"evaluator_id" gorm:"column:evaluator_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Identitas user di identity service
	EvaluatorUserID uuid.UUID `json:"evaluator_user_id" gorm:"column:evaluator_user_id;type:uuid;not null;index:idx_evaluators_user"`

	EvaluatorName       string  `json:"evaluator_name" gorm:"column:evaluator_name;type:varchar(120);not null"`
	EvaluatorRole       string  `json:"evaluator_role" gorm:"column:evaluator_role;type:varchar(40);not null;default:'evaluator'"`
	EvaluatorDepartment *string `json:"evaluator_department" gorm:"column:evaluator_department;type:varchar(120)"`
	EvaluatorCampus     *string `json:"evaluator_campus" gorm:"column:evaluator_campus;type:varchar(120)"`

	// Bidang keahlian yang dideklarasikan
	EvaluatorExpertise pq.StringArray `json:"evaluator_expertise" gorm:"column:evaluator_expertise;type:text[]"`

	// NULL = pakai DefaultMaxCapacity
	EvaluatorMaxCapacity *int `json:"evaluator_max_capacity" gorm:"column:evaluator_max_capacity"`

	// Daftar proposal_id yang dideklarasikan konflik oleh evaluator sendiri
	EvaluatorDeclaredCOI pq.StringArray `json:"evaluator_declared_coi" gorm:"column:evaluator_declared_coi;type:text[]"`

	EvaluatorCreatedAt time.Time      `json:"evaluator_created_at" gorm:"column:evaluator_created_at;not null;autoCreateTime"`
	EvaluatorUpdatedAt time.Time      `json:"evaluator_updated_at" gorm:"column:evaluator_updated_at;not null;autoUpdateTime"`
	EvaluatorDeletedAt gorm.DeletedAt `json:"evaluator_deleted_at" gorm:"column:evaluator_deleted_at;index"`
}

func (EvaluatorModel) TableName() string {
	return "evaluators"
}

// MaxCapacityOrDefault mengembalikan kapasitas efektif.
func (m *EvaluatorModel) MaxCapacityOrDefault() int {
	if m.EvaluatorMaxCapacity != nil && *m.EvaluatorMaxCapacity > 0 {
		return *m.EvaluatorMaxCapacity
	}
	return DefaultMaxCapacity
}

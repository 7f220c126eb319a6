// file: internals/features/calls/criteria/model/criterion_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScaleLevel adalah satu anak tangga skala penilaian (score → deskriptor).
// Disimpan berurutan di kolom JSON criterion_scale.
type ScaleLevel struct {
	Score      float64 `json:"score"`
	Descriptor string  `json:"descriptor"`
}

// CriterionModel merepresentasikan tabel `criteria` (rubrik per call).
// Setelah ada evaluasi tersubmit yang memakai criterion ini, bobot/skor
// maksimumnya tidak boleh diubah lagi (dicek di controller).
type CriterionModel struct {
	CriterionID uuid.UUID `json:"criterion_id" gorm:"column:criterion_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	CriterionCallID uuid.UUID `json:"criterion_call_id" gorm:"column:criterion_call_id;type:uuid;not null;index:idx_criteria_call"`

	CriterionName        string  `json:"criterion_name" gorm:"column:criterion_name;type:varchar(120);not null"`
	CriterionDescription *string `json:"criterion_description" gorm:"column:criterion_description;type:text"`

	// Bobot persentase 0–100
	CriterionWeight float64 `json:"criterion_weight" gorm:"column:criterion_weight;type:numeric(5,2);not null;default:0"`

	CriterionMaxScore float64 `json:"criterion_max_score" gorm:"column:criterion_max_score;type:numeric(5,2);not null;default:5"`

	// Skala ber-urutan: [{score, descriptor}, ...]
	CriterionScale datatypes.JSON `json:"criterion_scale" gorm:"column:criterion_scale;type:jsonb"`

	CriterionCategory *string `json:"criterion_category" gorm:"column:criterion_category;type:varchar(60)"`

	CriterionCreatedAt time.Time      `json:"criterion_created_at" gorm:"column:criterion_created_at;not null;autoCreateTime"`
	CriterionUpdatedAt time.Time      `json:"criterion_updated_at" gorm:"column:criterion_updated_at;not null;autoUpdateTime"`
	CriterionDeletedAt gorm.DeletedAt `json:"criterion_deleted_at" gorm:"column:criterion_deleted_at;index"`
}

func (CriterionModel) TableName() string {
	return "criteria"
}

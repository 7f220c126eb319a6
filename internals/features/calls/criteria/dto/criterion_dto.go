// file: internals/features/calls/criteria/dto/criterion_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "hibahku_backend/internals/features/calls/criteria/model"
)

type CreateCriterionRequest struct {
	CriterionCallID      uuid.UUID          `json:"criterion_call_id" validate:"required"`
	CriterionName        string             `json:"criterion_name" validate:"required,min=2,max=120"`
	CriterionDescription *string            `json:"criterion_description" validate:"omitempty"`
	CriterionWeight      *float64           `json:"criterion_weight" validate:"omitempty,gte=0,lte=100"`
	CriterionMaxScore    *float64           `json:"criterion_max_score" validate:"omitempty,gt=0"`
	CriterionScale       []model.ScaleLevel `json:"criterion_scale" validate:"omitempty,dive"`
	CriterionCategory    *string            `json:"criterion_category" validate:"omitempty,max=60"`
}

type PatchCriterionRequest struct {
	CriterionName        *string             `json:"criterion_name" validate:"omitempty,min=2,max=120"`
	CriterionDescription *string             `json:"criterion_description" validate:"omitempty"`
	CriterionWeight      *float64            `json:"criterion_weight" validate:"omitempty,gte=0,lte=100"`
	CriterionMaxScore    *float64            `json:"criterion_max_score" validate:"omitempty,gt=0"`
	CriterionScale       *[]model.ScaleLevel `json:"criterion_scale" validate:"omitempty,dive"`
	CriterionCategory    *string             `json:"criterion_category" validate:"omitempty,max=60"`
}

type CriterionResponse struct {
	CriterionID          uuid.UUID      `json:"criterion_id"`
	CriterionCallID      uuid.UUID      `json:"criterion_call_id"`
	CriterionName        string         `json:"criterion_name"`
	CriterionDescription *string        `json:"criterion_description"`
	CriterionWeight      float64        `json:"criterion_weight"`
	CriterionMaxScore    float64        `json:"criterion_max_score"`
	CriterionScale       datatypes.JSON `json:"criterion_scale"`
	CriterionCategory    *string        `json:"criterion_category"`
	CriterionCreatedAt   time.Time      `json:"criterion_created_at"`
	CriterionUpdatedAt   time.Time      `json:"criterion_updated_at"`
}

type ListCriterionResponse struct {
	Data []CriterionResponse `json:"data"`
}

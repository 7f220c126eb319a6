// file: internals/features/calls/criteria/controller/criterion_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "hibahku_backend/internals/features/calls/criteria/dto"
	model "hibahku_backend/internals/features/calls/criteria/model"
	helper "hibahku_backend/internals/helpers"
)

type CriterionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCriterionController(db *gorm.DB) *CriterionController {
	return &CriterionController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toResponse(m *model.CriterionModel) dto.CriterionResponse {
	return dto.CriterionResponse{
		CriterionID:          m.CriterionID,
		CriterionCallID:      m.CriterionCallID,
		CriterionName:        m.CriterionName,
		CriterionDescription: m.CriterionDescription,
		CriterionWeight:      m.CriterionWeight,
		CriterionMaxScore:    m.CriterionMaxScore,
		CriterionScale:       m.CriterionScale,
		CriterionCategory:    m.CriterionCategory,
		CriterionCreatedAt:   m.CriterionCreatedAt,
		CriterionUpdatedAt:   m.CriterionUpdatedAt,
	}
}

// Criterion yang sudah dirujuk evaluasi tersubmit bersifat immutable:
// bobot/skor maksimum tidak boleh berubah diam-diam di bawah skor historis.
func (ctl *CriterionController) isReferencedBySubmitted(criterionID uuid.UUID) (bool, error) {
	var n int64
	needle := fmt.Sprintf(`[{"criterion_id":%q}]`, criterionID.String())
	err := ctl.DB.Table("evaluations").
		Where("evaluation_completed_at IS NOT NULL AND evaluation_deleted_at IS NULL AND evaluation_entries @> ?::jsonb", needle).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func marshalScale(scale []model.ScaleLevel) (datatypes.JSON, error) {
	b, err := json.Marshal(scale)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

/* ========================================================
   Handlers
======================================================== */

// GET /calls/:call_id/criteria
func (ctl *CriterionController) ListByCall(c *fiber.Ctx) error {
	callID, err := helper.ParseUUIDParam(c, "call_id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "call_id tidak valid")
	}

	var rows []model.CriterionModel
	if err := ctl.DB.
		Where("criterion_call_id = ?", callID).
		Order("criterion_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.CriterionResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}

	return helper.Success(c, "OK", dto.ListCriterionResponse{Data: out})
}

// POST /criteria
func (ctl *CriterionController) Create(c *fiber.Ctx) error {
	var req dto.CreateCriterionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	row := model.CriterionModel{
		CriterionCallID:    req.CriterionCallID,
		CriterionName:      strings.TrimSpace(req.CriterionName),
		CriterionWeight:    0,
		CriterionMaxScore:  5,
		CriterionCreatedAt: now,
		CriterionUpdatedAt: now,
	}

	if req.CriterionDescription != nil {
		d := strings.TrimSpace(*req.CriterionDescription)
		row.CriterionDescription = &d
	}
	if req.CriterionWeight != nil {
		row.CriterionWeight = *req.CriterionWeight
	}
	if req.CriterionMaxScore != nil {
		row.CriterionMaxScore = *req.CriterionMaxScore
	}
	if req.CriterionCategory != nil {
		cat := strings.TrimSpace(*req.CriterionCategory)
		row.CriterionCategory = &cat
	}
	if len(req.CriterionScale) > 0 {
		js, err := marshalScale(req.CriterionScale)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "criterion_scale tidak valid")
		}
		row.CriterionScale = js
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Criterion berhasil dibuat", toResponse(&row))
}

// PATCH /criteria/:id (partial; ditolak jika sudah dirujuk evaluasi tersubmit)
func (ctl *CriterionController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "criterion_id tidak valid")
	}

	var req dto.PatchCriterionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.CriterionModel
	if err := ctl.DB.
		Where("criterion_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	referenced, err := ctl.isReferencedBySubmitted(id)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if referenced {
		return helper.Error(c, http.StatusConflict, "Criterion sudah dirujuk evaluasi tersubmit dan tidak boleh diubah")
	}

	updates := map[string]interface{}{}

	if req.CriterionName != nil {
		updates["criterion_name"] = strings.TrimSpace(*req.CriterionName)
	}
	if req.CriterionDescription != nil {
		updates["criterion_description"] = strings.TrimSpace(*req.CriterionDescription)
	}
	if req.CriterionWeight != nil {
		updates["criterion_weight"] = *req.CriterionWeight
	}
	if req.CriterionMaxScore != nil {
		updates["criterion_max_score"] = *req.CriterionMaxScore
	}
	if req.CriterionCategory != nil {
		updates["criterion_category"] = strings.TrimSpace(*req.CriterionCategory)
	}
	if req.CriterionScale != nil {
		js, err := marshalScale(*req.CriterionScale)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "criterion_scale tidak valid")
		}
		updates["criterion_scale"] = js
	}

	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", toResponse(&existing))
	}

	updates["criterion_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.CriterionModel{}).
		Where("criterion_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var after model.CriterionModel
	if err := ctl.DB.
		Where("criterion_id = ?", id).
		First(&after).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Criterion berhasil diperbarui", toResponse(&after))
}

// DELETE /criteria/:id (soft delete; ditolak jika sudah dirujuk evaluasi tersubmit)
func (ctl *CriterionController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "criterion_id tidak valid")
	}

	var row model.CriterionModel
	if err := ctl.DB.
		Where("criterion_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	referenced, err := ctl.isReferencedBySubmitted(id)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	if referenced {
		return helper.Error(c, http.StatusConflict, "Criterion sudah dirujuk evaluasi tersubmit dan tidak boleh dihapus")
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusNoContent, "Criterion dihapus", nil)
}

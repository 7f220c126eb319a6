// file: internals/features/calls/calls/controller/call_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "hibahku_backend/internals/features/calls/calls/dto"
	model "hibahku_backend/internals/features/calls/calls/model"
	helper "hibahku_backend/internals/helpers"
)

/* ========================================================
   Controller
======================================================== */
type CallController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCallController(db *gorm.DB) *CallController {
	return &CallController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toResponse(m *model.CallModel) dto.CallResponse {
	var deletedAt *time.Time
	if m.CallDeletedAt.Valid {
		t := m.CallDeletedAt.Time
		deletedAt = &t
	}

	return dto.CallResponse{
		CallID:                 m.CallID,
		CallTitle:              m.CallTitle,
		CallDescription:        m.CallDescription,
		CallStatus:             m.CallStatus,
		CallRequiredEvaluators: m.CallRequiredEvaluators,
		CallAssignmentMethod:   m.CallAssignmentMethod,
		CallConflictPolicies:   []string(m.CallConflictPolicies),
		CallCreatedAt:          m.CallCreatedAt,
		CallUpdatedAt:          m.CallUpdatedAt,
		CallDeletedAt:          deletedAt,
	}
}

/* ========================================================
   Handlers
======================================================== */

// GET /calls
// Query (opsional): status, q, page, per_page
func (ctl *CallController) List(c *fiber.Ctx) error {
	var (
		statusStr = strings.TrimSpace(c.Query("status"))
		qStr      = strings.TrimSpace(c.Query("q"))
	)
	paging := helper.ResolvePaging(c, 20, 100)

	qry := ctl.DB.Model(&model.CallModel{})

	if statusStr != "" {
		qry = qry.Where("call_status = ?", strings.ToLower(statusStr))
	}
	if qStr != "" {
		q := "%" + strings.ToLower(qStr) + "%"
		qry = qry.Where("(LOWER(call_title) LIKE ? OR LOWER(COALESCE(call_description, '')) LIKE ?)", q, q)
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.CallModel
	if err := qry.
		Order("call_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.CallResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}

	return helper.Success(c, "OK", dto.ListCallResponse{
		Data:       out,
		Pagination: helper.BuildPagination(total, paging, len(out)),
	})
}

// GET /calls/:id
func (ctl *CallController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "call_id tidak valid")
	}

	var row model.CallModel
	if err := ctl.DB.
		Where("call_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", toResponse(&row))
}

// POST /calls
func (ctl *CallController) Create(c *fiber.Ctx) error {
	var req dto.CreateCallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	row := model.CallModel{
		CallTitle:              strings.TrimSpace(req.CallTitle),
		CallStatus:             model.CallStatusDraft,
		CallRequiredEvaluators: 2,
		CallAssignmentMethod:   model.AssignMethodManual,
		CallCreatedAt:          now,
		CallUpdatedAt:          now,
	}

	if req.CallDescription != nil {
		d := strings.TrimSpace(*req.CallDescription)
		row.CallDescription = &d
	}
	if req.CallStatus != nil {
		row.CallStatus = *req.CallStatus
	}
	if req.CallRequiredEvaluators != nil {
		row.CallRequiredEvaluators = *req.CallRequiredEvaluators
	}
	if req.CallAssignmentMethod != nil {
		row.CallAssignmentMethod = *req.CallAssignmentMethod
	}
	if len(req.CallConflictPolicies) > 0 {
		row.CallConflictPolicies = pq.StringArray(req.CallConflictPolicies)
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Call berhasil dibuat", toResponse(&row))
}

// PATCH /calls/:id (partial)
func (ctl *CallController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "call_id tidak valid")
	}

	var req dto.PatchCallRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.CallModel
	if err := ctl.DB.
		Where("call_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}

	if req.CallTitle != nil {
		updates["call_title"] = strings.TrimSpace(*req.CallTitle)
	}
	if req.CallDescription != nil {
		updates["call_description"] = strings.TrimSpace(*req.CallDescription)
	}
	if req.CallStatus != nil {
		updates["call_status"] = *req.CallStatus
	}
	if req.CallRequiredEvaluators != nil {
		updates["call_required_evaluators"] = *req.CallRequiredEvaluators
	}
	if req.CallAssignmentMethod != nil {
		updates["call_assignment_method"] = *req.CallAssignmentMethod
	}
	if req.CallConflictPolicies != nil {
		updates["call_conflict_policies"] = pq.StringArray(*req.CallConflictPolicies)
	}

	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", toResponse(&existing))
	}

	updates["call_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.CallModel{}).
		Where("call_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var after model.CallModel
	if err := ctl.DB.
		Where("call_id = ?", id).
		First(&after).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Call berhasil diperbarui", toResponse(&after))
}

// DELETE /calls/:id (soft delete)
func (ctl *CallController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "call_id tidak valid")
	}

	var row model.CallModel
	if err := ctl.DB.
		Where("call_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Delete(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusNoContent, "Call dihapus", nil)
}

// file: internals/features/proposals/proposals/controller/proposal_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	dto "hibahku_backend/internals/features/proposals/proposals/dto"
	model "hibahku_backend/internals/features/proposals/proposals/model"
	helper "hibahku_backend/internals/helpers"
)

type ProposalController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProposalController(db *gorm.DB) *ProposalController {
	return &ProposalController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toResponse(m *model.ProposalModel) dto.ProposalResponse {
	return dto.ProposalResponse{
		ProposalID:           m.ProposalID,
		ProposalCallID:       m.ProposalCallID,
		ProposalTitle:        m.ProposalTitle,
		ProposalAbstract:     m.ProposalAbstract,
		ProposalProjectType:  m.ProposalProjectType,
		ProposalKeywords:     []string(m.ProposalKeywords),
		ProposalDepartment:   m.ProposalDepartment,
		ProposalCampus:       m.ProposalCampus,
		ProposalAuthorIDs:    []string(m.ProposalAuthorIDs),
		ProposalStatus:       m.ProposalStatus,
		ProposalDecidedBy:    m.ProposalDecidedBy,
		ProposalDecidedAt:    m.ProposalDecidedAt,
		ProposalDecisionNote: m.ProposalDecisionNote,
		ProposalCreatedAt:    m.ProposalCreatedAt,
		ProposalUpdatedAt:    m.ProposalUpdatedAt,
	}
}

/* ========================================================
   Handlers
======================================================== */

// GET /proposals
// Query (opsional): call_id, status, q, page, per_page
func (ctl *ProposalController) List(c *fiber.Ctx) error {
	var (
		callIDStr = strings.TrimSpace(c.Query("call_id"))
		statusStr = strings.TrimSpace(c.Query("status"))
		qStr      = strings.TrimSpace(c.Query("q"))
	)
	paging := helper.ResolvePaging(c, 20, 100)

	qry := ctl.DB.Model(&model.ProposalModel{})

	if callIDStr != "" {
		callID, err := uuid.Parse(callIDStr)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "call_id tidak valid")
		}
		qry = qry.Where("proposal_call_id = ?", callID)
	}
	if statusStr != "" {
		qry = qry.Where("proposal_status = ?", strings.ToLower(statusStr))
	}
	if qStr != "" {
		q := "%" + strings.ToLower(qStr) + "%"
		qry = qry.Where("(LOWER(proposal_title) LIKE ? OR LOWER(COALESCE(proposal_abstract, '')) LIKE ?)", q, q)
	}

	var total int64
	if err := qry.Count(&total).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var rows []model.ProposalModel
	if err := qry.
		Order("proposal_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ProposalResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}

	return helper.Success(c, "OK", dto.ListProposalResponse{
		Data:       out,
		Pagination: helper.BuildPagination(total, paging, len(out)),
	})
}

// GET /proposals/:id
func (ctl *ProposalController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var row model.ProposalModel
	if err := ctl.DB.
		Where("proposal_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", toResponse(&row))
}

// POST /proposals
func (ctl *ProposalController) Create(c *fiber.Ctx) error {
	var req dto.CreateProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	now := time.Now()
	row := model.ProposalModel{
		ProposalCallID:    req.ProposalCallID,
		ProposalTitle:     strings.TrimSpace(req.ProposalTitle),
		ProposalStatus:    model.ProposalStatusSubmitted,
		ProposalCreatedAt: now,
		ProposalUpdatedAt: now,
	}

	if req.ProposalAbstract != nil {
		a := strings.TrimSpace(*req.ProposalAbstract)
		row.ProposalAbstract = &a
	}
	if req.ProposalProjectType != nil {
		p := strings.TrimSpace(*req.ProposalProjectType)
		row.ProposalProjectType = &p
	}
	if req.ProposalDepartment != nil {
		d := strings.TrimSpace(*req.ProposalDepartment)
		row.ProposalDepartment = &d
	}
	if req.ProposalCampus != nil {
		k := strings.TrimSpace(*req.ProposalCampus)
		row.ProposalCampus = &k
	}
	if len(req.ProposalKeywords) > 0 {
		row.ProposalKeywords = pq.StringArray(req.ProposalKeywords)
	}
	if len(req.ProposalAuthorIDs) > 0 {
		row.ProposalAuthorIDs = pq.StringArray(req.ProposalAuthorIDs)
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}
	return helper.SuccessWithCode(c, http.StatusCreated, "Proposal berhasil dibuat", toResponse(&row))
}

// PATCH /proposals/:id (partial; metadata saja — status hanya lewat decision engine)
func (ctl *ProposalController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var req dto.PatchProposalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.ProposalModel
	if err := ctl.DB.
		Where("proposal_id = ?", id).
		First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}

	if req.ProposalTitle != nil {
		updates["proposal_title"] = strings.TrimSpace(*req.ProposalTitle)
	}
	if req.ProposalAbstract != nil {
		updates["proposal_abstract"] = strings.TrimSpace(*req.ProposalAbstract)
	}
	if req.ProposalProjectType != nil {
		updates["proposal_project_type"] = strings.TrimSpace(*req.ProposalProjectType)
	}
	if req.ProposalDepartment != nil {
		updates["proposal_department"] = strings.TrimSpace(*req.ProposalDepartment)
	}
	if req.ProposalCampus != nil {
		updates["proposal_campus"] = strings.TrimSpace(*req.ProposalCampus)
	}
	if req.ProposalKeywords != nil {
		updates["proposal_keywords"] = pq.StringArray(*req.ProposalKeywords)
	}
	if req.ProposalAuthorIDs != nil {
		updates["proposal_author_ids"] = pq.StringArray(*req.ProposalAuthorIDs)
	}

	if len(updates) == 0 {
		return helper.Success(c, "Tidak ada perubahan", toResponse(&existing))
	}

	updates["proposal_updated_at"] = time.Now()

	if err := ctl.DB.Model(&model.ProposalModel{}).
		Where("proposal_id = ?", id).
		Updates(updates).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var after model.ProposalModel
	if err := ctl.DB.
		Where("proposal_id = ?", id).
		First(&after).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Proposal berhasil diperbarui", toResponse(&after))
}

// DELETE /proposals/:id
// Soft delete + cascade ke assignments & evaluations (aggregate proposal).
func (ctl *ProposalController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var row model.ProposalModel
	if err := ctl.DB.
		Where("proposal_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Data tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	now := time.Now()
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Table("assignments").
			Where("assignment_proposal_id = ? AND assignment_deleted_at IS NULL", id).
			Update("assignment_deleted_at", now).Error; err != nil {
			return err
		}
		if err := tx.Table("evaluations").
			Where("evaluation_proposal_id = ? AND evaluation_deleted_at IS NULL", id).
			Update("evaluation_deleted_at", now).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	}); err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, http.StatusNoContent, "Proposal dihapus", nil)
}

// file: internals/features/proposals/assignments/controller/assignment_controller.go
package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	directory "hibahku_backend/internals/features/evaluators/directory/service"
	dto "hibahku_backend/internals/features/proposals/assignments/dto"
	model "hibahku_backend/internals/features/proposals/assignments/model"
	service "hibahku_backend/internals/features/proposals/assignments/service"
	helper "hibahku_backend/internals/helpers"
)

type AssignmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toResponse(m *model.AssignmentModel) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		AssignmentID:             m.AssignmentID,
		AssignmentProposalID:     m.AssignmentProposalID,
		AssignmentEvaluatorID:    m.AssignmentEvaluatorID,
		AssignmentMethod:         m.AssignmentMethod,
		AssignmentStatus:         m.AssignmentStatus,
		AssignmentAssignedAt:     m.AssignmentAssignedAt,
		AssignmentRespondedAt:    m.AssignmentRespondedAt,
		AssignmentDeclineReason:  m.AssignmentDeclineReason,
		AssignmentDeclineComment: m.AssignmentDeclineComment,
		AssignmentCOIDeclared:    m.AssignmentCOIDeclared,
	}
}

func buildList(rows []model.AssignmentModel) dto.ListAssignmentResponse {
	out := dto.ListAssignmentResponse{
		Data: make([]dto.AssignmentResponse, 0, len(rows)),
	}
	for i := range rows {
		r := toResponse(&rows[i])
		out.Data = append(out.Data, r)
		switch rows[i].AssignmentStatus {
		case model.StatusPending:
			out.Lanes.Pending = append(out.Lanes.Pending, r)
		case model.StatusAccepted:
			out.Lanes.Accepted = append(out.Lanes.Accepted, r)
		case model.StatusDeclined:
			out.Lanes.Declined = append(out.Lanes.Declined, r)
		}
	}
	out.Total = len(out.Data)
	return out
}

/* ========================================================
   Handlers
======================================================== */

// GET /proposals/:id/assignments
func (ctl *AssignmentController) ListByProposal(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var rows []model.AssignmentModel
	if err := ctl.DB.
		Where("assignment_proposal_id = ?", id).
		Order("assignment_assigned_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", buildList(rows))
}

// GET /assignments/mine (evaluator)
func (ctl *AssignmentController) MyAssignments(c *fiber.Ctx) error {
	userID, ok := helper.GetUserIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	ev, err := directory.GetViewByUserID(ctl.DB, userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var rows []model.AssignmentModel
	if err := ctl.DB.
		Where("assignment_evaluator_id = ?", ev.ID).
		Order("assignment_assigned_at DESC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", buildList(rows))
}

// POST /proposals/:id/assignments (quickAssign)
func (ctl *AssignmentController) QuickAssign(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var req dto.QuickAssignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	method := ""
	if req.AssignmentMethod != nil {
		method = *req.AssignmentMethod
	}
	coiDeclared := req.AssignmentCOIDeclared != nil && *req.AssignmentCOIDeclared

	created, err := service.QuickAssign(c.UserContext(), ctl.DB, id, req.AssignmentEvaluatorID, method, coiDeclared)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.SuccessWithCode(c, http.StatusCreated, "Evaluator berhasil ditugaskan", toResponse(created))
}

// PUT /proposals/:id/assignments (setAssignedEvaluators, bulk reconcile)
func (ctl *AssignmentController) Reconcile(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var req dto.ReconcileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	method := ""
	if req.AssignmentMethod != nil {
		method = *req.AssignmentMethod
	}

	rows, err := service.Reconcile(c.UserContext(), ctl.DB, id, req.EvaluatorIDs, method)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "Assignment berhasil direkonsiliasi", buildList(rows))
}

// POST /assignments/:id/respond (evaluator)
func (ctl *AssignmentController) Respond(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assignment_id tidak valid")
	}

	userID, ok := helper.GetUserIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	var req dto.RespondRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	updated, err := service.Respond(c.UserContext(), ctl.DB, id, userID, req.Decision == "accept", req.Reason, req.Comment)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	msg := "Assignment diterima"
	if req.Decision == "decline" {
		msg = "Assignment ditolak"
	}
	return helper.Success(c, msg, toResponse(updated))
}

// DELETE /assignments/:id (admin melepas assignment)
func (ctl *AssignmentController) Remove(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "assignment_id tidak valid")
	}

	if err := service.Remove(c.UserContext(), ctl.DB, id); err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.SuccessWithCode(c, http.StatusNoContent, "Assignment dilepas", nil)
}

// file: internals/features/proposals/decisions/controller/decision_controller.go
package controller

import (
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "hibahku_backend/internals/features/proposals/decisions/dto"
	service "hibahku_backend/internals/features/proposals/decisions/service"
	helper "hibahku_backend/internals/helpers"
)

type DecisionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDecisionController(db *gorm.DB) *DecisionController {
	return &DecisionController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* ========================================================
   Handlers
======================================================== */

// GET /proposals/:id/summary (admin)
func (ctl *DecisionController) Summary(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	summary, err := service.LoadSummary(c.UserContext(), ctl.DB, id)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "OK", summary)
}

// POST /proposals/:id/decision (admin)
func (ctl *DecisionController) Finalize(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	userID, ok := helper.GetUserIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	var req dto.FinalizeDecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Jejak audit: siapa (dan role apa) yang memfinalisasi keputusan
	log.Printf("[INFO] finalisasi keputusan %s untuk proposal %s oleh %s (role: %s)",
		req.Decision, id, userID, helper.GetRoleFromLocals(c))

	p, err := service.Finalize(c.UserContext(), ctl.DB, id, userID, req.Decision, req.Note)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "Keputusan tersimpan", dto.DecisionResponse{
		ProposalID:           p.ProposalID,
		ProposalStatus:       p.ProposalStatus,
		ProposalDecidedBy:    p.ProposalDecidedBy,
		ProposalDecidedAt:    p.ProposalDecidedAt,
		ProposalDecisionNote: p.ProposalDecisionNote,
	})
}

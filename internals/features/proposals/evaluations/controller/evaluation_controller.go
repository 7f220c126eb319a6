// file: internals/features/proposals/evaluations/controller/evaluation_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	directory "hibahku_backend/internals/features/evaluators/directory/service"
	dto "hibahku_backend/internals/features/proposals/evaluations/dto"
	model "hibahku_backend/internals/features/proposals/evaluations/model"
	service "hibahku_backend/internals/features/proposals/evaluations/service"
	helper "hibahku_backend/internals/helpers"
)

type EvaluationController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEvaluationController(db *gorm.DB) *EvaluationController {
	return &EvaluationController{
		DB:        db,
		Validator: validator.New(),
	}
}

func toResponse(m *model.EvaluationModel) dto.EvaluationResponse {
	return dto.EvaluationResponse{
		EvaluationID:          m.EvaluationID,
		EvaluationProposalID:  m.EvaluationProposalID,
		EvaluationEvaluatorID: m.EvaluationEvaluatorID,
		Entries:               service.UnmarshalEntries(m.EvaluationEntries),
		Recommendation:        m.EvaluationRecommendation,
		PublicComments:        m.EvaluationPublicComments,
		ConfidentialComments:  m.EvaluationConfidentialComments,
		AIAssistanceUsed:      m.EvaluationAIAssistanceUsed,
		OverallScore:          m.EvaluationOverallScore,
		Submitted:             m.IsSubmitted(),
		CompletedAt:           m.EvaluationCompletedAt,
		UpdatedAt:             m.EvaluationUpdatedAt,
	}
}

func (ctl *EvaluationController) parseBody(c *fiber.Ctx) (*dto.SaveEvaluationRequest, error) {
	var req dto.SaveEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, helper.Error(c, http.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return nil, helper.ValidationError(c, err)
	}
	return &req, nil
}

/* ========================================================
   Handlers
======================================================== */

// PUT /proposals/:id/evaluation/draft (evaluator)
func (ctl *EvaluationController) SaveDraft(c *fiber.Ctx) error {
	proposalID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}
	userID, ok := helper.GetUserIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	req, err := ctl.parseBody(c)
	if err != nil {
		return err
	}

	saved, err := service.SaveDraft(c.UserContext(), ctl.DB, proposalID, userID, service.DraftInput{
		Entries:              req.ToEntries(),
		Recommendation:       req.Recommendation,
		PublicComments:       req.PublicComments,
		ConfidentialComments: req.ConfidentialComments,
		AIAssistanceUsed:     req.AIAssistanceUsed,
	})
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "Draft evaluasi tersimpan", toResponse(saved))
}

// POST /proposals/:id/evaluation/submit (evaluator)
func (ctl *EvaluationController) Submit(c *fiber.Ctx) error {
	proposalID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}
	userID, ok := helper.GetUserIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	req, err := ctl.parseBody(c)
	if err != nil {
		return err
	}

	submitted, err := service.Submit(c.UserContext(), ctl.DB, proposalID, userID, service.DraftInput{
		Entries:              req.ToEntries(),
		Recommendation:       req.Recommendation,
		PublicComments:       req.PublicComments,
		ConfidentialComments: req.ConfidentialComments,
		AIAssistanceUsed:     req.AIAssistanceUsed,
	})
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "Evaluasi berhasil disubmit", toResponse(submitted))
}

// GET /proposals/:id/evaluation (evaluator melihat draft/hasil miliknya)
func (ctl *EvaluationController) GetMine(c *fiber.Ctx) error {
	proposalID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}
	userID, ok := helper.GetUserIDFromLocals(c)
	if !ok {
		return helper.Error(c, http.StatusUnauthorized, "User ID tidak ditemukan di token")
	}

	ev, err := directory.GetViewByUserID(ctl.DB, userID)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	var row model.EvaluationModel
	if err := ctl.DB.
		Where("evaluation_proposal_id = ? AND evaluation_evaluator_id = ?", proposalID, ev.ID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Evaluasi tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", toResponse(&row))
}

// GET /proposals/:id/evaluations (admin)
func (ctl *EvaluationController) ListByProposal(c *fiber.Ctx) error {
	proposalID, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var rows []model.EvaluationModel
	if err := ctl.DB.
		Where("evaluation_proposal_id = ?", proposalID).
		Order("evaluation_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	out := make([]dto.EvaluationResponse, 0, len(rows))
	for i := range rows {
		out = append(out, toResponse(&rows[i]))
	}
	return helper.Success(c, "OK", fiber.Map{
		"data":  out,
		"total": len(out),
	})
}

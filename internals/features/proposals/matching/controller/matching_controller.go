// file: internals/features/proposals/matching/controller/matching_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	callModel "hibahku_backend/internals/features/calls/calls/model"
	directory "hibahku_backend/internals/features/evaluators/directory/service"
	service "hibahku_backend/internals/features/proposals/matching/service"
	proposalModel "hibahku_backend/internals/features/proposals/proposals/model"
	helper "hibahku_backend/internals/helpers"
)

// MatchingController: read-only, tanpa side effect — aman dihitung untuk
// cross-product proposals × evaluators (bulk matrix view).
type MatchingController struct {
	DB *gorm.DB
}

func NewMatchingController(db *gorm.DB) *MatchingController {
	return &MatchingController{DB: db}
}

func toProposalInfo(p *proposalModel.ProposalModel) service.ProposalInfo {
	dept, campus, ptype := "", "", ""
	if p.ProposalDepartment != nil {
		dept = *p.ProposalDepartment
	}
	if p.ProposalCampus != nil {
		campus = *p.ProposalCampus
	}
	if p.ProposalProjectType != nil {
		ptype = *p.ProposalProjectType
	}
	return service.ProposalInfo{
		ID:                   p.ProposalID,
		Title:                p.ProposalTitle,
		ProjectType:          ptype,
		Keywords:             []string(p.ProposalKeywords),
		Department:           dept,
		Campus:               campus,
		AuthorIDs:            []string(p.ProposalAuthorIDs),
		AssignmentsTouchedAt: p.ProposalAssignmentsTouchedAt,
	}
}

func (ctl *MatchingController) loadPolicies(callID uuid.UUID) ([]string, error) {
	var call callModel.CallModel
	if err := ctl.DB.Where("call_id = ?", callID).First(&call).Error; err != nil {
		return nil, err
	}
	return []string(call.CallConflictPolicies), nil
}

// GET /proposals/:id/match-candidates
// Query (opsional): available_only
func (ctl *MatchingController) MatchCandidates(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "proposal_id tidak valid")
	}

	var proposal proposalModel.ProposalModel
	if err := ctl.DB.Where("proposal_id = ?", id).First(&proposal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, http.StatusNotFound, "Proposal tidak ditemukan")
		}
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	policies, err := ctl.loadPolicies(proposal.ProposalCallID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	evs, err := directory.Snapshot(ctl.DB)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	availableOnly := strings.EqualFold(c.Query("available_only"), "true") || c.Query("available_only") == "1"
	cells := service.BuildRow(toProposalInfo(&proposal), evs, policies, availableOnly)

	return helper.Success(c, "OK", fiber.Map{
		"proposal_id": proposal.ProposalID,
		"cells":       cells,
	})
}

// GET /match-matrix
// Query (opsional): call_id, available_only
// Mengembalikan proposals[], evaluators[], dan cells[][] (urutan proposal-major).
func (ctl *MatchingController) MatchMatrix(c *fiber.Ctx) error {
	qry := ctl.DB.Model(&proposalModel.ProposalModel{}).
		Where("proposal_status IN ?", []string{
			proposalModel.ProposalStatusSubmitted,
			proposalModel.ProposalStatusUnderReview,
		})

	var policies []string
	if callIDStr := strings.TrimSpace(c.Query("call_id")); callIDStr != "" {
		callID, err := uuid.Parse(callIDStr)
		if err != nil {
			return helper.Error(c, http.StatusBadRequest, "call_id tidak valid")
		}
		qry = qry.Where("proposal_call_id = ?", callID)
		if pols, err := ctl.loadPolicies(callID); err == nil {
			policies = pols
		}
	}

	var proposals []proposalModel.ProposalModel
	if err := qry.Order("proposal_created_at ASC").Find(&proposals).Error; err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	evs, err := directory.Snapshot(ctl.DB)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	// availableOnly di matrix memfilter kolom evaluator di muka, bukan per
	// baris, supaya cells[i][j] tetap sejajar dengan evaluators[j].
	availableOnly := strings.EqualFold(c.Query("available_only"), "true") || c.Query("available_only") == "1"
	if availableOnly {
		kept := make([]directory.EvaluatorView, 0, len(evs))
		for _, ev := range evs {
			if ev.Available() {
				kept = append(kept, ev)
			}
		}
		evs = kept
	}

	// Tanpa filter call_id, policy diambil per call proposal (cache ringan per request)
	policyCache := map[uuid.UUID][]string{}
	policyFor := func(callID uuid.UUID) []string {
		if policies != nil {
			return policies
		}
		if p, ok := policyCache[callID]; ok {
			return p
		}
		p, err := ctl.loadPolicies(callID)
		if err != nil {
			p = nil
		}
		policyCache[callID] = p
		return p
	}

	type proposalHead struct {
		ProposalID uuid.UUID `json:"proposal_id"`
		Title      string    `json:"proposal_title"`
	}

	heads := make([]proposalHead, 0, len(proposals))
	cells := make([][]service.MatchCell, 0, len(proposals))
	for i := range proposals {
		p := toProposalInfo(&proposals[i])
		heads = append(heads, proposalHead{ProposalID: p.ID, Title: p.Title})
		cells = append(cells, service.BuildMatrixRow(p, evs, policyFor(proposals[i].ProposalCallID)))
	}

	return helper.Success(c, "OK", fiber.Map{
		"proposals":  heads,
		"evaluators": evs,
		"cells":      cells,
	})
}

// file: internals/features/evaluators/directory/controller/evaluator_controller.go
package controller

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "hibahku_backend/internals/features/evaluators/directory/service"
	helper "hibahku_backend/internals/helpers"
)

// EvaluatorController: view read-only atas direktori evaluator.
// Sinkronisasi data direktori dilakukan sistem kepegawaian, bukan di sini.
type EvaluatorController struct {
	DB *gorm.DB
}

func NewEvaluatorController(db *gorm.DB) *EvaluatorController {
	return &EvaluatorController{DB: db}
}

// GET /evaluators
// Query (opsional): q (nama/bidang), department, available_only
func (ctl *EvaluatorController) List(c *fiber.Ctx) error {
	views, err := service.Snapshot(ctl.DB)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	var (
		qStr          = strings.ToLower(strings.TrimSpace(c.Query("q")))
		deptStr       = strings.ToLower(strings.TrimSpace(c.Query("department")))
		availableOnly = strings.EqualFold(c.Query("available_only"), "true") || c.Query("available_only") == "1"
	)

	out := make([]service.EvaluatorView, 0, len(views))
	for _, v := range views {
		if availableOnly && !v.Available() {
			continue
		}
		if deptStr != "" && strings.ToLower(v.Department) != deptStr {
			continue
		}
		if qStr != "" && !matchesQuery(v, qStr) {
			continue
		}
		out = append(out, v)
	}

	return helper.Success(c, "OK", fiber.Map{"data": out, "total": len(out)})
}

func matchesQuery(v service.EvaluatorView, q string) bool {
	if strings.Contains(strings.ToLower(v.Name), q) {
		return true
	}
	for _, e := range v.Expertise {
		if strings.Contains(strings.ToLower(e), q) {
			return true
		}
	}
	return false
}

// GET /evaluators/:id
func (ctl *EvaluatorController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return helper.Error(c, http.StatusBadRequest, "evaluator_id tidak valid")
	}

	view, err := service.GetView(ctl.DB, id)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.Success(c, "OK", view)
}

// GET /evaluators/workload-summary
// Distribusi beban: per evaluator → load, kapasitas, utilisasi.
func (ctl *EvaluatorController) WorkloadSummary(c *fiber.Ctx) error {
	views, err := service.Snapshot(ctl.DB)
	if err != nil {
		return helper.Error(c, http.StatusInternalServerError, err.Error())
	}

	type workloadRow struct {
		EvaluatorID string  `json:"evaluator_id"`
		Name        string  `json:"evaluator_name"`
		CurrentLoad int     `json:"current_load"`
		MaxCapacity int     `json:"max_capacity"`
		Utilization float64 `json:"utilization"`
		Available   bool    `json:"available"`
	}

	rows := make([]workloadRow, 0, len(views))
	totalLoad, totalCap, atCapacity := 0, 0, 0
	for _, v := range views {
		rows = append(rows, workloadRow{
			EvaluatorID: v.ID.String(),
			Name:        v.Name,
			CurrentLoad: v.CurrentLoad,
			MaxCapacity: v.MaxCapacity,
			Utilization: v.Utilization(),
			Available:   v.Available(),
		})
		totalLoad += v.CurrentLoad
		totalCap += v.MaxCapacity
		if !v.Available() {
			atCapacity++
		}
	}

	return helper.Success(c, "OK", fiber.Map{
		"data": rows,
		"summary": fiber.Map{
			"evaluator_count": len(views),
			"total_load":      totalLoad,
			"total_capacity":  totalCap,
			"at_capacity":     atCapacity,
		},
	})
}

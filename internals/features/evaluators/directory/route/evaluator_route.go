// file: internals/features/evaluators/directory/route/evaluator_route.go
package route

import (
	evaluatorController "hibahku_backend/internals/features/evaluators/directory/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin: direktori evaluator + ringkasan beban kerja
func EvaluatorAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evaluatorController.NewEvaluatorController(db)

	evaluators := r.Group("/evaluators")
	evaluators.Get("/", ctl.List)
	evaluators.Get("/workload-summary", ctl.WorkloadSummary)
	evaluators.Get("/:id", ctl.GetByID)
}

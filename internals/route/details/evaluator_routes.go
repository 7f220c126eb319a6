// file: internals/route/details/evaluator_routes.go
package details

import (
	EvaluatorRoute "hibahku_backend/internals/features/evaluators/directory/route"
	AssignmentRoute "hibahku_backend/internals/features/proposals/assignments/route"
	EvaluationRoute "hibahku_backend/internals/features/proposals/evaluations/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EvaluatorAdminRoutes(r fiber.Router, db *gorm.DB) {
	EvaluatorRoute.EvaluatorAdminRoutes(r, db)
}

// Workbench evaluator: assignment miliknya + form evaluasi
func EvaluatorSelfRoutes(r fiber.Router, db *gorm.DB) {
	AssignmentRoute.AssignmentEvaluatorRoutes(r, db)
	EvaluationRoute.EvaluationEvaluatorRoutes(r, db)
}

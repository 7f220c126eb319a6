// file: internals/features/proposals/evaluations/route/evaluation_route.go
package route

import (
	evaluationController "hibahku_backend/internals/features/proposals/evaluations/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Evaluator: draft (autosave flush) + submit final
func EvaluationEvaluatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evaluationController.NewEvaluationController(db)

	r.Get("/proposals/:id/evaluation", ctl.GetMine)
	r.Put("/proposals/:id/evaluation/draft", ctl.SaveDraft)
	r.Post("/proposals/:id/evaluation/submit", ctl.Submit)
}

// Admin: lihat seluruh evaluasi sebuah proposal
func EvaluationAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := evaluationController.NewEvaluationController(db)

	r.Get("/proposals/:id/evaluations", ctl.ListByProposal)
}

// file: internals/features/proposals/assignments/route/assignment_route.go
package route

import (
	assignmentController "hibahku_backend/internals/features/proposals/assignments/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin: penugasan evaluator (quick assign, bulk reconcile, lepas)
func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewAssignmentController(db)

	r.Get("/proposals/:id/assignments", ctl.ListByProposal)
	r.Post("/proposals/:id/assignments", ctl.QuickAssign)
	r.Put("/proposals/:id/assignments", ctl.Reconcile)
	r.Delete("/assignments/:id", ctl.Remove)
}

// Evaluator: lihat penugasan sendiri + accept/decline
func AssignmentEvaluatorRoutes(r fiber.Router, db *gorm.DB) {
	ctl := assignmentController.NewAssignmentController(db)

	r.Get("/assignments/mine", ctl.MyAssignments)
	r.Post("/assignments/:id/respond", ctl.Respond)
}

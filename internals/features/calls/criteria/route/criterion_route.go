// file: internals/features/calls/criteria/route/criterion_route.go
package route

import (
	criterionController "hibahku_backend/internals/features/calls/criteria/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Publik: rubrik call bisa dilihat pengusul & evaluator
func CriterionPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := criterionController.NewCriterionController(db)

	r.Get("/calls/:call_id/criteria", ctl.ListByCall)
}

// Admin: kelola rubrik (criteria terkunci begitu direferensikan evaluasi tersubmit)
func CriterionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := criterionController.NewCriterionController(db)

	r.Get("/calls/:call_id/criteria", ctl.ListByCall)
	r.Post("/criteria", ctl.Create)
	r.Patch("/criteria/:id", ctl.Patch)
	r.Delete("/criteria/:id", ctl.Delete)
}

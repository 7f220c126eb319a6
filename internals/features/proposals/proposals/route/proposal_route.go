// file: internals/features/proposals/proposals/route/proposal_route.go
package route

import (
	proposalController "hibahku_backend/internals/features/proposals/proposals/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin: kelola proposal masuk
func ProposalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := proposalController.NewProposalController(db)

	proposals := r.Group("/proposals")
	proposals.Get("/", ctl.List)
	proposals.Get("/:id", ctl.GetByID)
	proposals.Post("/", ctl.Create)
	proposals.Patch("/:id", ctl.Patch)
	proposals.Delete("/:id", ctl.Delete)
}

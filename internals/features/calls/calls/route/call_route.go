// file: internals/features/calls/calls/route/call_route.go
package route

import (
	callController "hibahku_backend/internals/features/calls/calls/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Publik: katalog call pendanaan (read-only)
func CallPublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := callController.NewCallController(db)

	calls := r.Group("/calls")
	calls.Get("/", ctl.List)
	calls.Get("/:id", ctl.GetByID)
}

// Admin: kelola call pendanaan
func CallAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := callController.NewCallController(db)

	calls := r.Group("/calls")
	calls.Get("/", ctl.List)
	calls.Get("/:id", ctl.GetByID)
	calls.Post("/", ctl.Create)
	calls.Patch("/:id", ctl.Patch)
	calls.Delete("/:id", ctl.Delete)
}

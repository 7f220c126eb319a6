// file: internals/features/proposals/decisions/route/decision_route.go
package route

import (
	decisionController "hibahku_backend/internals/features/proposals/decisions/controller"
	middlewares "hibahku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin: panel keputusan (summary + finalize)
func DecisionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := decisionController.NewDecisionController(db)

	r.Get("/proposals/:id/summary", ctl.Summary)
	r.Post("/proposals/:id/decision", middlewares.DecisionRateLimiter(), ctl.Finalize)
}

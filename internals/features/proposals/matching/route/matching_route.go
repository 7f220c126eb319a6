// file: internals/features/proposals/matching/route/matching_route.go
package route

import (
	matchingController "hibahku_backend/internals/features/proposals/matching/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Admin: matching engine (kandidat per proposal + matrix per call)
func MatchingAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := matchingController.NewMatchingController(db)

	r.Get("/proposals/:id/match-candidates", ctl.MatchCandidates)
	r.Get("/match-matrix", ctl.MatchMatrix)
}

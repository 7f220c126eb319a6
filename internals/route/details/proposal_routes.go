// file: internals/route/details/proposal_routes.go
package details

import (
	AssignmentRoute "hibahku_backend/internals/features/proposals/assignments/route"
	DecisionRoute "hibahku_backend/internals/features/proposals/decisions/route"
	EvaluationRoute "hibahku_backend/internals/features/proposals/evaluations/route"
	MatchingRoute "hibahku_backend/internals/features/proposals/matching/route"
	ProposalRoute "hibahku_backend/internals/features/proposals/proposals/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProposalAdminRoutes(r fiber.Router, db *gorm.DB) {
	ProposalRoute.ProposalAdminRoutes(r, db)
	MatchingRoute.MatchingAdminRoutes(r, db)
	AssignmentRoute.AssignmentAdminRoutes(r, db)
	EvaluationRoute.EvaluationAdminRoutes(r, db)
	DecisionRoute.DecisionAdminRoutes(r, db)
}

// file: internals/route/details/call_routes.go
package details

import (
	CallRoute "hibahku_backend/internals/features/calls/calls/route"
	CriterionRoute "hibahku_backend/internals/features/calls/criteria/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CallPublicRoutes(r fiber.Router, db *gorm.DB) {
	CallRoute.CallPublicRoutes(r, db)
	CriterionRoute.CriterionPublicRoutes(r, db)
}

func CallAdminRoutes(r fiber.Router, db *gorm.DB) {
	CallRoute.CallAdminRoutes(r, db)
	CriterionRoute.CriterionAdminRoutes(r, db)
}

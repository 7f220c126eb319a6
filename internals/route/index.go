// file: internals/route/index.go
package routes

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	constants "hibahku_backend/internals/constants"
	authMiddleware "hibahku_backend/internals/middlewares/auth"
	routeDetails "hibahku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → tanpa JWT (katalog call + rubrik)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// EVALUATOR → JWT + role evaluator ke atas
	log.Println("[INFO] Setting up EVALUATOR group (Auth + RoleCheck)...")
	evaluator := app.Group("/api/e",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles(
			constants.RoleErrorEvaluator("workbench evaluator"),
			constants.EvaluatorAndAbove...,
		),
	)

	// ADMIN → JWT + role admin/owner
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
		authMiddleware.OnlyRoles(
			constants.RoleErrorAdmin("review engine"),
			constants.AdminAndAbove...,
		),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Call routes...")
	routeDetails.CallPublicRoutes(public, db)
	routeDetails.CallAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Evaluator routes...")
	routeDetails.EvaluatorAdminRoutes(admin, db)
	routeDetails.EvaluatorSelfRoutes(evaluator, db)

	log.Println("[INFO] Mounting Proposal routes...")
	routeDetails.ProposalAdminRoutes(admin, db)
}

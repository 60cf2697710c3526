// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	approvalRoute "agencyhub_backend/internals/features/approvals/route"
	budgetRoute "agencyhub_backend/internals/features/finance/budgets/route"
	notificationRoute "agencyhub_backend/internals/features/notifications/route"
	phaseRoute "agencyhub_backend/internals/features/projects/phases/route"
	pipelineRoute "agencyhub_backend/internals/features/projects/pipeline/route"
	teamRoute "agencyhub_backend/internals/features/projects/teams/route"
	authMW "agencyhub_backend/internals/middlewares/auth"
)

// SetupRoutes mounts base routes plus the authed /api/a group every
// feature hangs off.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app)

	api := app.Group("/api/a", authMW.AuthMiddleware())

	pipelineRoute.PipelineRoutes(api, db)
	phaseRoute.PhaseRoutes(api, db)
	teamRoute.TeamRoutes(api, db)
	budgetRoute.BudgetRoutes(api, db)
	approvalRoute.ApprovalRoutes(api, db)
	notificationRoute.NotificationRoutes(api, db)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencyhub_backend/internals/constants"
	"agencyhub_backend/internals/features/finance/budgets/controller"
	authMW "agencyhub_backend/internals/middlewares/auth"
)

// BudgetRoutes mounts budget + ledger endpoints under the authed group.
// Status approval is gated at the route; the remaining writes take any staff
// role and are checked inside the controllers.
func BudgetRoutes(r fiber.Router, db *gorm.DB) {
	budgetCtl := controller.NewProjectBudgetController(db)
	eventCtl := controller.NewBudgetEventController(db)
	approveEvents := authMW.OnlyRoles("only project managers can approve budget events", constants.DecisionMakerRoles...)

	g := r.Group("/projects/:project_id")

	g.Put("/budget", budgetCtl.Upsert)
	g.Patch("/budget", budgetCtl.Patch)
	g.Get("/budget", budgetCtl.Get)
	g.Delete("/budget", budgetCtl.Delete)

	g.Post("/budget-events", eventCtl.Append)
	g.Get("/budget-events", eventCtl.List)
	g.Patch("/budget-events/:event_id/status", approveEvents, eventCtl.UpdateStatus)

	g.Get("/budget-threshold", eventCtl.Threshold)
	g.Get("/budget-summary", eventCtl.CategorySummary)
}

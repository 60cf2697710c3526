package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/approvals/controller"
)

func ApprovalRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewApprovalController(db)

	g := r.Group("/approvals")
	g.Post("/", ctl.Submit)
	g.Get("/", ctl.List)
	g.Get("/:approval_id", ctl.Get)
	g.Post("/:approval_id/decision", ctl.Decide)
	g.Post("/:approval_id/resubmit", ctl.Resubmit)
}

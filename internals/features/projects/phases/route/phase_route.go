package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/projects/phases/controller"
)

func PhaseRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewPhaseController(db)

	r.Get("/projects/:project_id/phases", ctl.List)
	r.Get("/projects/:project_id/progress", ctl.OverallProgress)
	r.Patch("/phase-items/:item_id", ctl.ToggleItem)
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencyhub_backend/internals/constants"
	"agencyhub_backend/internals/features/projects/pipeline/controller"
	authMW "agencyhub_backend/internals/middlewares/auth"
)

func PipelineRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewProjectController(db)

	g := r.Group("/projects")
	g.Post("/", ctl.Create)
	g.Get("/", ctl.List)
	g.Get("/:project_id", ctl.Get)
	g.Patch("/:project_id", ctl.Update)
	g.Post("/:project_id/decision",
		authMW.OnlyRoles("only project managers can decide", constants.DecisionMakerRoles...),
		ctl.Decide)
	g.Patch("/:project_id/stage", ctl.AdvanceStage)
}

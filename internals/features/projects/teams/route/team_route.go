package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencyhub_backend/internals/constants"
	"agencyhub_backend/internals/features/projects/teams/controller"
	authMW "agencyhub_backend/internals/middlewares/auth"
)

func TeamRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTeamController(db)
	manageTeam := authMW.OnlyRoles("only project managers can manage the team", constants.DecisionMakerRoles...)

	g := r.Group("/projects/:project_id/team")
	g.Get("/", ctl.List)
	g.Post("/", manageTeam, ctl.Add)
	g.Delete("/:member_id", manageTeam, ctl.Remove)
}

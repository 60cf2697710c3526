package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/projects/teams/dto"
	"agencyhub_backend/internals/features/projects/teams/model"
	helper "agencyhub_backend/internals/helpers"
)

type TeamController struct {
	DB *gorm.DB
}

func NewTeamController(db *gorm.DB) *TeamController {
	return &TeamController{DB: db}
}

// GET /api/a/projects/:project_id/team
func (ctl *TeamController) List(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	var list []model.ProjectTeamMember
	if err := ctl.DB.
		Where("project_team_member_project_id = ?", projectID).
		Order("project_team_member_joined_at ASC").
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToTeamMemberResponses(list))
}

// POST /api/a/projects/:project_id/team
func (ctl *TeamController) Add(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	var in dto.TeamMemberAddDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	// one row per (project, user)
	var count int64
	if err := ctl.DB.Model(&model.ProjectTeamMember{}).
		Where("project_team_member_project_id = ? AND project_team_member_user_id = ?",
			projectID, in.ProjectTeamMemberUserID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "user is already on this project team")
	}

	m := model.ProjectTeamMember{
		ProjectTeamMemberProjectID: projectID,
		ProjectTeamMemberUserID:    in.ProjectTeamMemberUserID,
		ProjectTeamMemberRole:      in.ProjectTeamMemberRole,
		ProjectTeamMemberTags:      in.ProjectTeamMemberTags,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "team member added", dto.ToTeamMemberResponse(m))
}

// DELETE /api/a/projects/:project_id/team/:member_id
func (ctl *TeamController) Remove(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid member_id")
	}
	res := ctl.DB.
		Where("project_team_member_id = ? AND project_team_member_project_id = ?", memberID, projectID).
		Delete(&model.ProjectTeamMember{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "team member not found on this project")
	}
	return helper.JsonDeleted(c, "team member removed", fiber.Map{"member_id": memberID})
}

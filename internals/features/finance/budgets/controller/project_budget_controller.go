package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agencyhub_backend/internals/features/finance/budgets/dto"
	"agencyhub_backend/internals/features/finance/budgets/model"
	projectModel "agencyhub_backend/internals/features/projects/pipeline/model"
	helper "agencyhub_backend/internals/helpers"
	helperAuth "agencyhub_backend/internals/helpers/auth"
)

type ProjectBudgetController struct {
	DB *gorm.DB
}

func NewProjectBudgetController(db *gorm.DB) *ProjectBudgetController {
	return &ProjectBudgetController{DB: db}
}

func mustProjectID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("project_id"))
}

func ensureProjectExists(db *gorm.DB, projectID uuid.UUID) error {
	var count int64
	if err := db.Model(&projectModel.Project{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fiber.NewError(fiber.StatusNotFound, "project not found")
	}
	return nil
}

// PUT /api/a/projects/:project_id/budget
func (ctl *ProjectBudgetController) Upsert(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	if err := helperAuth.EnsureDecisionMaker(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ensureProjectExists(ctl.DB, projectID); err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.ProjectBudgetUpsertDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m := in.ToModel(projectID)
	if err := ctl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "project_budget_project_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"project_budget_total", "project_budget_monthly",
			"project_budget_fixed_ad_fee", "project_budget_ad_service_fee",
			"project_budget_content_fee", "project_budget_design_fee",
			"project_budget_media_fee", "project_budget_other_fee",
			"project_budget_pacing", "project_budget_updated_at",
		}),
	}).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// re-read so the response carries the surviving row (id, timestamps)
	var out model.ProjectBudget
	if err := ctl.DB.First(&out, "project_budget_project_id = ?", projectID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "budget saved", dto.ToProjectBudgetResponse(out))
}

// PATCH /api/a/projects/:project_id/budget
func (ctl *ProjectBudgetController) Patch(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	if err := helperAuth.EnsureDecisionMaker(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.ProjectBudgetPatchDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.ProjectBudget
	if err := ctl.DB.First(&m, "project_budget_project_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "budget not found for this project")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyProjectBudgetPatch(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "budget updated", dto.ToProjectBudgetResponse(m))
}

// GET /api/a/projects/:project_id/budget
func (ctl *ProjectBudgetController) Get(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	var m model.ProjectBudget
	if err := ctl.DB.First(&m, "project_budget_project_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "budget not found for this project")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToProjectBudgetResponse(m))
}

// DELETE /api/a/projects/:project_id/budget
func (ctl *ProjectBudgetController) Delete(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	if err := helperAuth.EnsureDecisionMaker(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctl.DB.Where("project_budget_project_id = ?", projectID).Delete(&model.ProjectBudget{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "budget not found for this project")
	}
	return helper.JsonDeleted(c, "budget deleted", fiber.Map{"project_id": projectID})
}

package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/projects/phases/dto"
	"agencyhub_backend/internals/features/projects/phases/model"
	"agencyhub_backend/internals/features/projects/phases/service"
	helper "agencyhub_backend/internals/helpers"
	helperAuth "agencyhub_backend/internals/helpers/auth"
)

type PhaseController struct {
	DB *gorm.DB
}

func NewPhaseController(db *gorm.DB) *PhaseController {
	return &PhaseController{DB: db}
}

func (ctl *PhaseController) loadPhases(projectID uuid.UUID) ([]model.ProjectPhase, error) {
	var phases []model.ProjectPhase
	err := ctl.DB.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("phase_item_order_index ASC")
		}).
		Where("project_phase_project_id = ?", projectID).
		Order("project_phase_order_index ASC").
		Find(&phases).Error
	return phases, err
}

// GET /api/a/projects/:project_id/phases
func (ctl *PhaseController) List(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	phases, err := ctl.loadPhases(projectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToPhaseResponses(phases))
}

// GET /api/a/projects/:project_id/progress
//
// Overall = weighted average of per-phase progress; recomputed on every
// read, nothing cached.
func (ctl *PhaseController) OverallProgress(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	phases, err := ctl.loadPhases(projectID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	weighted := make([]service.WeightedProgress, 0, len(phases))
	for _, p := range phases {
		weighted = append(weighted, service.WeightedProgress{
			Weight:   p.ProjectPhaseWeight,
			Progress: service.ComputePhaseProgress(p.Items),
		})
	}

	return helper.JsonOK(c, "", dto.OverallProgressResponse{
		ProjectID:       projectID,
		OverallProgress: service.ComputeOverallProgress(weighted),
	})
}

// PATCH /api/a/phase-items/:item_id
func (ctl *PhaseController) ToggleItem(c *fiber.Ctx) error {
	itemID, err := uuid.Parse(c.Params("item_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid item_id")
	}
	if err := helperAuth.EnsureStaff(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.PhaseItemToggleDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}

	var item model.PhaseItem
	if err := ctl.DB.First(&item, "phase_item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "phase item not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	item.PhaseItemIsComplete = in.PhaseItemIsComplete
	if err := ctl.DB.Model(&model.PhaseItem{}).
		Where("phase_item_id = ?", itemID).
		Update("phase_item_is_complete", in.PhaseItemIsComplete).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "phase item updated", dto.ToPhaseItemResponse(item))
}

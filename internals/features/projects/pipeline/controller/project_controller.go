package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/projects/pipeline/dto"
	"agencyhub_backend/internals/features/projects/pipeline/model"
	"agencyhub_backend/internals/features/projects/pipeline/service"
	helper "agencyhub_backend/internals/helpers"
	helperAuth "agencyhub_backend/internals/helpers/auth"
)

type ProjectController struct {
	DB       *gorm.DB
	Decision *service.DecisionService
}

func NewProjectController(db *gorm.DB) *ProjectController {
	return &ProjectController{
		DB:       db,
		Decision: &service.DecisionService{DB: db},
	}
}

// POST /api/a/projects
func (ctl *ProjectController) Create(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.ProjectCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m := in.ToModel(actor)
	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "pipeline entry created", dto.ToProjectResponse(m))
}

// GET /api/a/projects/:project_id
func (ctl *ProjectController) Get(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	var m model.Project
	if err := ctl.DB.First(&m, "project_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToProjectResponse(m))
}

// GET /api/a/projects
func (ctl *ProjectController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Project{})

	if st := c.Query("stage"); st != "" {
		q = q.Where("project_stage = ?", st)
	}
	if d := c.Query("decision"); d != "" {
		q = q.Where("project_decision = ?", d)
	}
	if tier := c.Query("client_tier"); tier != "" {
		q = q.Where("project_client_tier = ?", tier)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Project
	if err := q.Order("project_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToProjectResponses(list),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

// PATCH /api/a/projects/:project_id
func (ctl *ProjectController) Update(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	if err := helperAuth.EnsureStaff(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.ProjectUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.Project
	if err := ctl.DB.First(&m, "project_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "project not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyProjectUpdate(&m, in)
	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "project updated", dto.ToProjectResponse(m))
}

// POST /api/a/projects/:project_id/decision
//
// The accept/decline gate. The route mounts the decision-maker role gate;
// a second decision on the same project answers 409.
func (ctl *ProjectController) Decide(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.DecisionDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	out, err := ctl.Decision.Decide(projectID, in.Decision, in.Note, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "decision recorded", dto.ToProjectResponse(out))
}

// PATCH /api/a/projects/:project_id/stage
func (ctl *ProjectController) AdvanceStage(c *fiber.Ctx) error {
	projectID, err := uuid.Parse(c.Params("project_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	if err := helperAuth.EnsureStaff(c); err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.StageAdvanceDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	out, err := ctl.Decision.AdvanceStage(projectID, in.Stage, in.Progress)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "stage updated", dto.ToProjectResponse(out))
}

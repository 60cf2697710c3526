package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/finance/budgets/dto"
	"agencyhub_backend/internals/features/finance/budgets/model"
	"agencyhub_backend/internals/features/finance/budgets/service"
	helper "agencyhub_backend/internals/helpers"
	helperAuth "agencyhub_backend/internals/helpers/auth"
)

type BudgetEventController struct {
	DB     *gorm.DB
	Ledger *service.LedgerService
}

func NewBudgetEventController(db *gorm.DB) *BudgetEventController {
	return &BudgetEventController{
		DB:     db,
		Ledger: &service.LedgerService{DB: db},
	}
}

// POST /api/a/projects/:project_id/budget-events
func (ctl *BudgetEventController) Append(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	if err := helperAuth.EnsureStaff(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ensureProjectExists(ctl.DB, projectID); err != nil {
		return helper.FromFiberError(c, err)
	}

	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.BudgetEventCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	ev, err := ctl.Ledger.Append(projectID, in, actor)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "budget event recorded", dto.ToBudgetEventResponse(ev))
}

// PATCH /api/a/projects/:project_id/budget-events/:event_id/status
func (ctl *BudgetEventController) UpdateStatus(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}
	eventID, err := uuid.Parse(c.Params("event_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid event_id")
	}
	var in dto.BudgetEventStatusUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	ev, err := ctl.Ledger.UpdateStatus(eventID, projectID, in.BudgetEventStatus)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "budget event status updated", dto.ToBudgetEventResponse(ev))
}

// GET /api/a/projects/:project_id/budget-events
func (ctl *BudgetEventController) List(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.BudgetEvent{}).
		Where("budget_event_project_id = ?", projectID)

	if st := c.Query("status"); st != "" {
		q = q.Where("budget_event_status = ?", st)
	}
	if ty := c.Query("type"); ty != "" {
		q = q.Where("budget_event_type = ?", ty)
	}
	if cat := c.Query("category"); cat != "" {
		q = q.Where("budget_event_category = ?", cat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.BudgetEvent
	if err := q.Order("budget_event_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToBudgetEventResponses(list),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

// GET /api/a/projects/:project_id/budget-threshold
func (ctl *BudgetEventController) Threshold(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	out, err := ctl.Ledger.ComputeThreshold(projectID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", out)
}

// GET /api/a/projects/:project_id/budget-summary
func (ctl *BudgetEventController) CategorySummary(c *fiber.Ctx) error {
	projectID, err := mustProjectID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid project_id")
	}

	rows, err := ctl.Ledger.SummarizeByCategory(projectID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", rows)
}

package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/approvals/dto"
	"agencyhub_backend/internals/features/approvals/model"
	notifModel "agencyhub_backend/internals/features/notifications/model"
	notifService "agencyhub_backend/internals/features/notifications/service"
	helper "agencyhub_backend/internals/helpers"
	helperAuth "agencyhub_backend/internals/helpers/auth"
)

type ApprovalController struct {
	DB         *gorm.DB
	Dispatcher *notifService.Dispatcher
}

func NewApprovalController(db *gorm.DB) *ApprovalController {
	return &ApprovalController{
		DB:         db,
		Dispatcher: &notifService.Dispatcher{DB: db},
	}
}

// POST /api/a/approvals
func (ctl *ApprovalController) Submit(c *fiber.Ctx) error {
	if err := helperAuth.EnsureStaff(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.ApprovalSubmitDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	m := model.Approval{
		ApprovalProjectID:   in.ApprovalProjectID,
		ApprovalType:        in.ApprovalType,
		ApprovalTitle:       in.ApprovalTitle,
		ApprovalStatus:      model.ApprovalStatusPending,
		ApprovalSubmittedBy: actor,
		ApprovalDeadline:    in.ApprovalDeadline,
	}
	if err := m.AppendHistory(model.HistoryEntry{
		Status: model.ApprovalStatusPending,
		Actor:  actor,
		Note:   "submitted",
		At:     time.Now(),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "approval submitted", dto.ToApprovalResponse(m))
}

// POST /api/a/approvals/:approval_id/decision
//
// APPROVED and REJECTED are terminal; CHANGES_REQUESTED sends the request
// back to the submitter for another round.
func (ctl *ApprovalController) Decide(c *fiber.Ctx) error {
	approvalID, err := uuid.Parse(c.Params("approval_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid approval_id")
	}
	if err := helperAuth.EnsureDecisionMaker(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var in dto.ApprovalDecisionDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid json")
	}
	if err := helper.ValidateStruct(c, in); err != nil {
		return err
	}

	var m model.Approval
	if err := ctl.DB.First(&m, "approval_id = ?", approvalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "approval not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if m.ApprovalStatus.Terminal() {
		return helper.JsonError(c, fiber.StatusConflict, "approval has already been decided")
	}

	m.ApprovalStatus = in.Status
	if in.Status == model.ApprovalStatusApproved {
		m.ApprovalApprovedBy = &actor
	}
	if err := m.AppendHistory(model.HistoryEntry{
		Status: in.Status,
		Actor:  actor,
		Note:   in.Note,
		At:     time.Now(),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// fire-and-forget: a notify failure never rolls back the decision
	if err := ctl.Dispatcher.Notify(m.ApprovalSubmittedBy,
		notifModel.NotificationKindApprovalDecided,
		"Approval "+string(in.Status),
		m.ApprovalTitle); err != nil {
		log.Printf("[APPROVAL] notify failed for %s: %v", m.ApprovalID, err)
	}

	return helper.JsonUpdated(c, "approval decision recorded", dto.ToApprovalResponse(m))
}

// POST /api/a/approvals/:approval_id/resubmit
//
// Only valid from CHANGES_REQUESTED; back to PENDING with history appended.
func (ctl *ApprovalController) Resubmit(c *fiber.Ctx) error {
	approvalID, err := uuid.Parse(c.Params("approval_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid approval_id")
	}
	if err := helperAuth.EnsureStaff(c); err != nil {
		return helper.FromFiberError(c, err)
	}
	actor, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.Approval
	if err := ctl.DB.First(&m, "approval_id = ?", approvalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "approval not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if m.ApprovalStatus != model.ApprovalStatusChangesRequested {
		return helper.JsonError(c, fiber.StatusConflict, "only approvals with requested changes can be resubmitted")
	}

	m.ApprovalStatus = model.ApprovalStatusPending
	if err := m.AppendHistory(model.HistoryEntry{
		Status: model.ApprovalStatusPending,
		Actor:  actor,
		Note:   "resubmitted",
		At:     time.Now(),
	}); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "approval resubmitted", dto.ToApprovalResponse(m))
}

// GET /api/a/approvals
func (ctl *ApprovalController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Approval{})
	if pid := c.Query("project_id"); pid != "" {
		if id, err := uuid.Parse(pid); err == nil {
			q = q.Where("approval_project_id = ?", id)
		}
	}
	if st := c.Query("status"); st != "" {
		q = q.Where("approval_status = ?", st)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Approval
	if err := q.Order("approval_submitted_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", dto.ToApprovalResponses(list),
		helper.BuildPagination(total, p.Page, p.PerPage))
}

// GET /api/a/approvals/:approval_id
func (ctl *ApprovalController) Get(c *fiber.Ctx) error {
	approvalID, err := uuid.Parse(c.Params("approval_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid approval_id")
	}

	var m model.Approval
	if err := ctl.DB.First(&m, "approval_id = ?", approvalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "approval not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", dto.ToApprovalResponse(m))
}

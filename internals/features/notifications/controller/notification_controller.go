package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/notifications/model"
	helper "agencyhub_backend/internals/helpers"
	helperAuth "agencyhub_backend/internals/helpers/auth"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/a/notifications — the caller's own inbox
func (ctl *NotificationController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Notification{}).
		Where("notification_recipient_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_read_at IS NULL")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Notification
	if err := q.Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&list).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", list, helper.BuildPagination(total, p.Page, p.PerPage))
}

// PATCH /api/a/notifications/:notification_id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	notifID, err := uuid.Parse(c.Params("notification_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification_id")
	}

	now := time.Now()
	res := ctl.DB.Model(&model.Notification{}).
		Where("notification_id = ? AND notification_recipient_id = ?", notifID, userID).
		Update("notification_read_at", now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "notification not found")
	}
	return helper.JsonUpdated(c, "notification marked read", fiber.Map{"notification_id": notifID})
}

package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/notifications/controller"
)

func NotificationRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	g := r.Group("/notifications")
	g.Get("/", ctl.ListMine)
	g.Patch("/:notification_id/read", ctl.MarkRead)
}

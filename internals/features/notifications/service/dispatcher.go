package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/notifications/model"
)

// Dispatcher is the fire-and-forget notification side channel. Callers must
// treat a returned error as log-and-continue; a failed notification never
// blocks the state transition that triggered it.
type Dispatcher struct {
	DB *gorm.DB
}

var defaultChannels = []string{"in_app"}

func (d *Dispatcher) Notify(recipient uuid.UUID, kind model.NotificationKind, title, body string) error {
	n := model.Notification{
		NotificationRecipientID: recipient,
		NotificationKind:        kind,
		NotificationTitle:       title,
		NotificationBody:        body,
		NotificationChannels:    defaultChannels,
	}
	return d.DB.Create(&n).Error
}

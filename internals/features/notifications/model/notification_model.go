package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type NotificationKind string

const (
	NotificationKindApprovalEscalated NotificationKind = "APPROVAL_ESCALATED"
	NotificationKindApprovalDecided   NotificationKind = "APPROVAL_DECIDED"
	NotificationKindBudgetThreshold   NotificationKind = "BUDGET_THRESHOLD"
)

type Notification struct {
	NotificationID          uuid.UUID        `json:"notification_id" gorm:"column:notification_id;type:uuid;default:gen_random_uuid();primaryKey"`
	NotificationRecipientID uuid.UUID        `json:"notification_recipient_id" gorm:"column:notification_recipient_id;type:uuid;not null;index:idx_notifications_recipient"`
	NotificationKind        NotificationKind `json:"notification_kind" gorm:"column:notification_kind;type:varchar(30);not null"`
	NotificationTitle       string           `json:"notification_title" gorm:"column:notification_title;type:varchar(160);not null"`
	NotificationBody        string           `json:"notification_body" gorm:"column:notification_body;type:text;not null"`
	NotificationChannels    pq.StringArray   `json:"notification_channels" gorm:"column:notification_channels;type:text[]"`
	NotificationReadAt      *time.Time       `json:"notification_read_at,omitempty" gorm:"column:notification_read_at;type:timestamptz"`
	NotificationCreatedAt   time.Time        `json:"notification_created_at" gorm:"column:notification_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (Notification) TableName() string { return "notifications" }

package model

import (
	"time"

	"github.com/google/uuid"
)

// --- ENUMS -------------------------------------------------------------------

type BudgetEventType string

const (
	BudgetEventTypeAlloc  BudgetEventType = "ALLOC"
	BudgetEventTypeSpend  BudgetEventType = "SPEND"
	BudgetEventTypeAdjust BudgetEventType = "ADJUST"
)

type BudgetCategory string

const (
	BudgetCategoryFixedAd   BudgetCategory = "FIXED_AD"
	BudgetCategoryAdService BudgetCategory = "AD_SERVICE"
	BudgetCategoryContent   BudgetCategory = "CONTENT"
	BudgetCategoryDesign    BudgetCategory = "DESIGN"
	BudgetCategoryMedia     BudgetCategory = "MEDIA"
	BudgetCategoryOther     BudgetCategory = "OTHER"
)

type BudgetEventStatus string

const (
	BudgetEventStatusPending  BudgetEventStatus = "PENDING"
	BudgetEventStatusApproved BudgetEventStatus = "APPROVED"
	BudgetEventStatusRejected BudgetEventStatus = "REJECTED"
	BudgetEventStatusPaid     BudgetEventStatus = "PAID"
)

// --- MODEL budget_events -----------------------------------------------------
//
// Append-only audit trail: rows are never updated except for their status,
// and never deleted. Only APPROVED SPEND rows count toward spend aggregates.
type BudgetEvent struct {
	BudgetEventID        uuid.UUID         `json:"budget_event_id" gorm:"column:budget_event_id;type:uuid;default:gen_random_uuid();primaryKey"`
	BudgetEventProjectID uuid.UUID         `json:"budget_event_project_id" gorm:"column:budget_event_project_id;type:uuid;not null;index:idx_budget_events_project"`
	BudgetEventType      BudgetEventType   `json:"budget_event_type" gorm:"column:budget_event_type;type:varchar(10);not null"`
	BudgetEventCategory  BudgetCategory    `json:"budget_event_category" gorm:"column:budget_event_category;type:varchar(20);not null;index:idx_budget_events_category"`
	BudgetEventAmount    float64           `json:"budget_event_amount" gorm:"column:budget_event_amount;type:numeric(18,2);not null"`
	BudgetEventStatus    BudgetEventStatus `json:"budget_event_status" gorm:"column:budget_event_status;type:varchar(10);not null;default:'PENDING';index:idx_budget_events_status"`
	BudgetEventStage     *string           `json:"budget_event_stage,omitempty" gorm:"column:budget_event_stage;type:varchar(60)"`
	BudgetEventNote      *string           `json:"budget_event_note,omitempty" gorm:"column:budget_event_note;type:text"`
	BudgetEventCreatedBy uuid.UUID         `json:"budget_event_created_by" gorm:"column:budget_event_created_by;type:uuid;not null"`
	BudgetEventCreatedAt time.Time         `json:"budget_event_created_at" gorm:"column:budget_event_created_at;type:timestamptz;not null;autoCreateTime"`
}

func (BudgetEvent) TableName() string { return "budget_events" }

func (t BudgetEventType) Valid() bool {
	switch t {
	case BudgetEventTypeAlloc, BudgetEventTypeSpend, BudgetEventTypeAdjust:
		return true
	}
	return false
}

func (cat BudgetCategory) Valid() bool {
	switch cat {
	case BudgetCategoryFixedAd, BudgetCategoryAdService, BudgetCategoryContent,
		BudgetCategoryDesign, BudgetCategoryMedia, BudgetCategoryOther:
		return true
	}
	return false
}

func (s BudgetEventStatus) Valid() bool {
	switch s {
	case BudgetEventStatusPending, BudgetEventStatusApproved,
		BudgetEventStatusRejected, BudgetEventStatusPaid:
		return true
	}
	return false
}

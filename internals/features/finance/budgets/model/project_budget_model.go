package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- MODEL project_budgets ---------------------------------------------------
//
// One row per project (1:1). Created/replaced via upsert keyed by project_id.
// project_budget_spent_amount is a snapshot only refreshed by explicit budget
// updates; the threshold endpoint recomputes spend from budget_events.
type ProjectBudget struct {
	ProjectBudgetID        uuid.UUID `json:"project_budget_id" gorm:"column:project_budget_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectBudgetProjectID uuid.UUID `json:"project_budget_project_id" gorm:"column:project_budget_project_id;type:uuid;not null;uniqueIndex:uq_project_budgets_project"`

	ProjectBudgetTotal       float64 `json:"project_budget_total" gorm:"column:project_budget_total;type:numeric(18,2);not null;default:0"`
	ProjectBudgetMonthly     float64 `json:"project_budget_monthly" gorm:"column:project_budget_monthly;type:numeric(18,2);not null;default:0"`
	ProjectBudgetSpentAmount float64 `json:"project_budget_spent_amount" gorm:"column:project_budget_spent_amount;type:numeric(18,2);not null;default:0"`

	// Per-category fee breakdown
	ProjectBudgetFixedAdFee   float64 `json:"project_budget_fixed_ad_fee" gorm:"column:project_budget_fixed_ad_fee;type:numeric(18,2);not null;default:0"`
	ProjectBudgetAdServiceFee float64 `json:"project_budget_ad_service_fee" gorm:"column:project_budget_ad_service_fee;type:numeric(18,2);not null;default:0"`
	ProjectBudgetContentFee   float64 `json:"project_budget_content_fee" gorm:"column:project_budget_content_fee;type:numeric(18,2);not null;default:0"`
	ProjectBudgetDesignFee    float64 `json:"project_budget_design_fee" gorm:"column:project_budget_design_fee;type:numeric(18,2);not null;default:0"`
	ProjectBudgetMediaFee     float64 `json:"project_budget_media_fee" gorm:"column:project_budget_media_fee;type:numeric(18,2);not null;default:0"`
	ProjectBudgetOtherFee     float64 `json:"project_budget_other_fee" gorm:"column:project_budget_other_fee;type:numeric(18,2);not null;default:0"`

	ProjectBudgetPacing *string `json:"project_budget_pacing,omitempty" gorm:"column:project_budget_pacing;type:varchar(30)"`

	ProjectBudgetCreatedAt time.Time      `json:"project_budget_created_at" gorm:"column:project_budget_created_at;type:timestamptz;not null;autoCreateTime"`
	ProjectBudgetUpdatedAt time.Time      `json:"project_budget_updated_at" gorm:"column:project_budget_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ProjectBudgetDeletedAt gorm.DeletedAt `json:"project_budget_deleted_at,omitempty" gorm:"column:project_budget_deleted_at;type:timestamptz;index"`
}

func (ProjectBudget) TableName() string { return "project_budgets" }

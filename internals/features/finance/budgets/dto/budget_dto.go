package dto

import (
	"time"

	"github.com/google/uuid"

	"agencyhub_backend/internals/features/finance/budgets/model"
)

/* ===============================
   PROJECT BUDGET — DTO
=================================*/

// Upsert (PUT) — full replace keyed by project_id
type ProjectBudgetUpsertDTO struct {
	ProjectBudgetTotal   float64 `json:"project_budget_total" validate:"min=0"`
	ProjectBudgetMonthly float64 `json:"project_budget_monthly" validate:"min=0"`

	ProjectBudgetFixedAdFee   float64 `json:"project_budget_fixed_ad_fee" validate:"min=0"`
	ProjectBudgetAdServiceFee float64 `json:"project_budget_ad_service_fee" validate:"min=0"`
	ProjectBudgetContentFee   float64 `json:"project_budget_content_fee" validate:"min=0"`
	ProjectBudgetDesignFee    float64 `json:"project_budget_design_fee" validate:"min=0"`
	ProjectBudgetMediaFee     float64 `json:"project_budget_media_fee" validate:"min=0"`
	ProjectBudgetOtherFee     float64 `json:"project_budget_other_fee" validate:"min=0"`

	ProjectBudgetPacing *string `json:"project_budget_pacing,omitempty" validate:"omitempty,max=30"`
}

// Patch (partial)
type ProjectBudgetPatchDTO struct {
	ProjectBudgetTotal       *float64 `json:"project_budget_total,omitempty" validate:"omitempty,min=0"`
	ProjectBudgetMonthly     *float64 `json:"project_budget_monthly,omitempty" validate:"omitempty,min=0"`
	ProjectBudgetSpentAmount *float64 `json:"project_budget_spent_amount,omitempty" validate:"omitempty,min=0"`

	ProjectBudgetFixedAdFee   *float64 `json:"project_budget_fixed_ad_fee,omitempty" validate:"omitempty,min=0"`
	ProjectBudgetAdServiceFee *float64 `json:"project_budget_ad_service_fee,omitempty" validate:"omitempty,min=0"`
	ProjectBudgetContentFee   *float64 `json:"project_budget_content_fee,omitempty" validate:"omitempty,min=0"`
	ProjectBudgetDesignFee    *float64 `json:"project_budget_design_fee,omitempty" validate:"omitempty,min=0"`
	ProjectBudgetMediaFee     *float64 `json:"project_budget_media_fee,omitempty" validate:"omitempty,min=0"`
	ProjectBudgetOtherFee     *float64 `json:"project_budget_other_fee,omitempty" validate:"omitempty,min=0"`

	ProjectBudgetPacing *string `json:"project_budget_pacing,omitempty" validate:"omitempty,max=30"`
}

type ProjectBudgetResponse struct {
	ProjectBudgetID        uuid.UUID `json:"project_budget_id"`
	ProjectBudgetProjectID uuid.UUID `json:"project_budget_project_id"`

	ProjectBudgetTotal       float64 `json:"project_budget_total"`
	ProjectBudgetMonthly     float64 `json:"project_budget_monthly"`
	ProjectBudgetSpentAmount float64 `json:"project_budget_spent_amount"`

	ProjectBudgetFixedAdFee   float64 `json:"project_budget_fixed_ad_fee"`
	ProjectBudgetAdServiceFee float64 `json:"project_budget_ad_service_fee"`
	ProjectBudgetContentFee   float64 `json:"project_budget_content_fee"`
	ProjectBudgetDesignFee    float64 `json:"project_budget_design_fee"`
	ProjectBudgetMediaFee     float64 `json:"project_budget_media_fee"`
	ProjectBudgetOtherFee     float64 `json:"project_budget_other_fee"`

	ProjectBudgetPacing *string `json:"project_budget_pacing,omitempty"`

	ProjectBudgetCreatedAt time.Time `json:"project_budget_created_at"`
	ProjectBudgetUpdatedAt time.Time `json:"project_budget_updated_at"`
}

func ToProjectBudgetResponse(m model.ProjectBudget) ProjectBudgetResponse {
	return ProjectBudgetResponse{
		ProjectBudgetID:           m.ProjectBudgetID,
		ProjectBudgetProjectID:    m.ProjectBudgetProjectID,
		ProjectBudgetTotal:        m.ProjectBudgetTotal,
		ProjectBudgetMonthly:      m.ProjectBudgetMonthly,
		ProjectBudgetSpentAmount:  m.ProjectBudgetSpentAmount,
		ProjectBudgetFixedAdFee:   m.ProjectBudgetFixedAdFee,
		ProjectBudgetAdServiceFee: m.ProjectBudgetAdServiceFee,
		ProjectBudgetContentFee:   m.ProjectBudgetContentFee,
		ProjectBudgetDesignFee:    m.ProjectBudgetDesignFee,
		ProjectBudgetMediaFee:     m.ProjectBudgetMediaFee,
		ProjectBudgetOtherFee:     m.ProjectBudgetOtherFee,
		ProjectBudgetPacing:       m.ProjectBudgetPacing,
		ProjectBudgetCreatedAt:    m.ProjectBudgetCreatedAt,
		ProjectBudgetUpdatedAt:    m.ProjectBudgetUpdatedAt,
	}
}

func (in ProjectBudgetUpsertDTO) ToModel(projectID uuid.UUID) model.ProjectBudget {
	return model.ProjectBudget{
		ProjectBudgetProjectID:    projectID,
		ProjectBudgetTotal:        in.ProjectBudgetTotal,
		ProjectBudgetMonthly:      in.ProjectBudgetMonthly,
		ProjectBudgetFixedAdFee:   in.ProjectBudgetFixedAdFee,
		ProjectBudgetAdServiceFee: in.ProjectBudgetAdServiceFee,
		ProjectBudgetContentFee:   in.ProjectBudgetContentFee,
		ProjectBudgetDesignFee:    in.ProjectBudgetDesignFee,
		ProjectBudgetMediaFee:     in.ProjectBudgetMediaFee,
		ProjectBudgetOtherFee:     in.ProjectBudgetOtherFee,
		ProjectBudgetPacing:       in.ProjectBudgetPacing,
	}
}

func ApplyProjectBudgetPatch(m *model.ProjectBudget, in ProjectBudgetPatchDTO) {
	if in.ProjectBudgetTotal != nil {
		m.ProjectBudgetTotal = *in.ProjectBudgetTotal
	}
	if in.ProjectBudgetMonthly != nil {
		m.ProjectBudgetMonthly = *in.ProjectBudgetMonthly
	}
	if in.ProjectBudgetSpentAmount != nil {
		m.ProjectBudgetSpentAmount = *in.ProjectBudgetSpentAmount
	}
	if in.ProjectBudgetFixedAdFee != nil {
		m.ProjectBudgetFixedAdFee = *in.ProjectBudgetFixedAdFee
	}
	if in.ProjectBudgetAdServiceFee != nil {
		m.ProjectBudgetAdServiceFee = *in.ProjectBudgetAdServiceFee
	}
	if in.ProjectBudgetContentFee != nil {
		m.ProjectBudgetContentFee = *in.ProjectBudgetContentFee
	}
	if in.ProjectBudgetDesignFee != nil {
		m.ProjectBudgetDesignFee = *in.ProjectBudgetDesignFee
	}
	if in.ProjectBudgetMediaFee != nil {
		m.ProjectBudgetMediaFee = *in.ProjectBudgetMediaFee
	}
	if in.ProjectBudgetOtherFee != nil {
		m.ProjectBudgetOtherFee = *in.ProjectBudgetOtherFee
	}
	if in.ProjectBudgetPacing != nil {
		m.ProjectBudgetPacing = in.ProjectBudgetPacing
	}
}

/* ===============================
   BUDGET EVENTS — DTO
=================================*/

type BudgetEventCreateDTO struct {
	BudgetEventType     model.BudgetEventType `json:"budget_event_type" validate:"required,oneof=ALLOC SPEND ADJUST"`
	BudgetEventCategory model.BudgetCategory  `json:"budget_event_category" validate:"required,oneof=FIXED_AD AD_SERVICE CONTENT DESIGN MEDIA OTHER"`
	BudgetEventAmount   float64               `json:"budget_event_amount" validate:"min=0"`

	// Optional initial status for system-originated events; defaults to
	// PENDING when empty.
	BudgetEventStatus *model.BudgetEventStatus `json:"budget_event_status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED PAID"`

	BudgetEventStage *string `json:"budget_event_stage,omitempty" validate:"omitempty,max=60"`
	BudgetEventNote  *string `json:"budget_event_note,omitempty"`
}

type BudgetEventStatusUpdateDTO struct {
	BudgetEventStatus model.BudgetEventStatus `json:"budget_event_status" validate:"required,oneof=PENDING APPROVED REJECTED PAID"`
}

type BudgetEventResponse struct {
	BudgetEventID        uuid.UUID               `json:"budget_event_id"`
	BudgetEventProjectID uuid.UUID               `json:"budget_event_project_id"`
	BudgetEventType      model.BudgetEventType   `json:"budget_event_type"`
	BudgetEventCategory  model.BudgetCategory    `json:"budget_event_category"`
	BudgetEventAmount    float64                 `json:"budget_event_amount"`
	BudgetEventStatus    model.BudgetEventStatus `json:"budget_event_status"`
	BudgetEventStage     *string                 `json:"budget_event_stage,omitempty"`
	BudgetEventNote      *string                 `json:"budget_event_note,omitempty"`
	BudgetEventCreatedBy uuid.UUID               `json:"budget_event_created_by"`
	BudgetEventCreatedAt time.Time               `json:"budget_event_created_at"`
}

func ToBudgetEventResponse(m model.BudgetEvent) BudgetEventResponse {
	return BudgetEventResponse{
		BudgetEventID:        m.BudgetEventID,
		BudgetEventProjectID: m.BudgetEventProjectID,
		BudgetEventType:      m.BudgetEventType,
		BudgetEventCategory:  m.BudgetEventCategory,
		BudgetEventAmount:    m.BudgetEventAmount,
		BudgetEventStatus:    m.BudgetEventStatus,
		BudgetEventStage:     m.BudgetEventStage,
		BudgetEventNote:      m.BudgetEventNote,
		BudgetEventCreatedBy: m.BudgetEventCreatedBy,
		BudgetEventCreatedAt: m.BudgetEventCreatedAt,
	}
}

func ToBudgetEventResponses(list []model.BudgetEvent) []BudgetEventResponse {
	out := make([]BudgetEventResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToBudgetEventResponse(m))
	}
	return out
}

/* ===============================
   DERIVED AGGREGATES — DTO
=================================*/

type BudgetThresholdResponse struct {
	ProjectID   uuid.UUID `json:"project_id"`
	TotalBudget float64   `json:"total_budget"`
	SpentAmount float64   `json:"spent_amount"`
	Percent     float64   `json:"percent"`
	Level       string    `json:"level"` // ok | warning | critical
}

type CategorySummaryRow struct {
	Category model.BudgetCategory `json:"category"`
	Total    float64              `json:"total"`
}

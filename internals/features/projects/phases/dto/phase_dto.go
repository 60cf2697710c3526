package dto

import (
	"time"

	"github.com/google/uuid"

	"agencyhub_backend/internals/features/projects/phases/model"
	"agencyhub_backend/internals/features/projects/phases/service"
)

type PhaseItemToggleDTO struct {
	PhaseItemIsComplete bool `json:"phase_item_is_complete"`
}

type PhaseItemResponse struct {
	PhaseItemID         uuid.UUID `json:"phase_item_id"`
	PhaseItemPhaseID    uuid.UUID `json:"phase_item_phase_id"`
	PhaseItemName       string    `json:"phase_item_name"`
	PhaseItemWeight     int       `json:"phase_item_weight"`
	PhaseItemIsComplete bool      `json:"phase_item_is_complete"`
	PhaseItemOrderIndex int       `json:"phase_item_order_index"`
	PhaseItemUpdatedAt  time.Time `json:"phase_item_updated_at"`
}

type PhaseResponse struct {
	ProjectPhaseID         uuid.UUID       `json:"project_phase_id"`
	ProjectPhaseProjectID  uuid.UUID       `json:"project_phase_project_id"`
	ProjectPhaseType       model.PhaseType `json:"project_phase_type"`
	ProjectPhaseName       string          `json:"project_phase_name"`
	ProjectPhaseWeight     int             `json:"project_phase_weight"`
	ProjectPhaseOrderIndex int             `json:"project_phase_order_index"`

	// Derived from items on read
	ProjectPhaseProgress int `json:"project_phase_progress"`

	Items []PhaseItemResponse `json:"items"`
}

type OverallProgressResponse struct {
	ProjectID       uuid.UUID `json:"project_id"`
	OverallProgress int       `json:"overall_progress"`
}

func ToPhaseItemResponse(m model.PhaseItem) PhaseItemResponse {
	return PhaseItemResponse{
		PhaseItemID:         m.PhaseItemID,
		PhaseItemPhaseID:    m.PhaseItemPhaseID,
		PhaseItemName:       m.PhaseItemName,
		PhaseItemWeight:     m.PhaseItemWeight,
		PhaseItemIsComplete: m.PhaseItemIsComplete,
		PhaseItemOrderIndex: m.PhaseItemOrderIndex,
		PhaseItemUpdatedAt:  m.PhaseItemUpdatedAt,
	}
}

func ToPhaseResponse(m model.ProjectPhase) PhaseResponse {
	items := make([]PhaseItemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, ToPhaseItemResponse(it))
	}
	return PhaseResponse{
		ProjectPhaseID:         m.ProjectPhaseID,
		ProjectPhaseProjectID:  m.ProjectPhaseProjectID,
		ProjectPhaseType:       m.ProjectPhaseType,
		ProjectPhaseName:       m.ProjectPhaseName,
		ProjectPhaseWeight:     m.ProjectPhaseWeight,
		ProjectPhaseOrderIndex: m.ProjectPhaseOrderIndex,
		ProjectPhaseProgress:   service.ComputePhaseProgress(m.Items),
		Items:                  items,
	}
}

func ToPhaseResponses(list []model.ProjectPhase) []PhaseResponse {
	out := make([]PhaseResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToPhaseResponse(m))
	}
	return out
}

package dto

import (
	"time"

	"github.com/google/uuid"

	"agencyhub_backend/internals/features/approvals/model"
)

type ApprovalSubmitDTO struct {
	ApprovalProjectID uuid.UUID  `json:"approval_project_id" validate:"required"`
	ApprovalType      string     `json:"approval_type" validate:"required,max=40"`
	ApprovalTitle     string     `json:"approval_title" validate:"required,max=160"`
	ApprovalDeadline  *time.Time `json:"approval_deadline,omitempty"`
}

type ApprovalDecisionDTO struct {
	// APPROVED | REJECTED | CHANGES_REQUESTED
	Status model.ApprovalStatus `json:"status" validate:"required,oneof=APPROVED REJECTED CHANGES_REQUESTED"`
	Note   string               `json:"note,omitempty"`
}

type ApprovalResponse struct {
	ApprovalID        uuid.UUID            `json:"approval_id"`
	ApprovalProjectID uuid.UUID            `json:"approval_project_id"`
	ApprovalType      string               `json:"approval_type"`
	ApprovalTitle     string               `json:"approval_title"`
	ApprovalStatus    model.ApprovalStatus `json:"approval_status"`

	ApprovalEscalationLevel int        `json:"approval_escalation_level"`
	ApprovalEscalatedAt     *time.Time `json:"approval_escalated_at,omitempty"`

	ApprovalSubmittedBy uuid.UUID  `json:"approval_submitted_by"`
	ApprovalApprovedBy  *uuid.UUID `json:"approval_approved_by,omitempty"`
	ApprovalDeadline    *time.Time `json:"approval_deadline,omitempty"`

	ApprovalHistory []model.HistoryEntry `json:"approval_history"`

	ApprovalSubmittedAt time.Time `json:"approval_submitted_at"`
	ApprovalUpdatedAt   time.Time `json:"approval_updated_at"`
}

func ToApprovalResponse(m model.Approval) ApprovalResponse {
	history, err := m.HistoryEntries()
	if err != nil {
		history = nil
	}
	return ApprovalResponse{
		ApprovalID:              m.ApprovalID,
		ApprovalProjectID:       m.ApprovalProjectID,
		ApprovalType:            m.ApprovalType,
		ApprovalTitle:           m.ApprovalTitle,
		ApprovalStatus:          m.ApprovalStatus,
		ApprovalEscalationLevel: m.ApprovalEscalationLevel,
		ApprovalEscalatedAt:     m.ApprovalEscalatedAt,
		ApprovalSubmittedBy:     m.ApprovalSubmittedBy,
		ApprovalApprovedBy:      m.ApprovalApprovedBy,
		ApprovalDeadline:        m.ApprovalDeadline,
		ApprovalHistory:         history,
		ApprovalSubmittedAt:     m.ApprovalSubmittedAt,
		ApprovalUpdatedAt:       m.ApprovalUpdatedAt,
	}
}

func ToApprovalResponses(list []model.Approval) []ApprovalResponse {
	out := make([]ApprovalResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToApprovalResponse(m))
	}
	return out
}

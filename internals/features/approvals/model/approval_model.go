package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// --- ENUM approval status ----------------------------------------------------

type ApprovalStatus string

const (
	ApprovalStatusPending          ApprovalStatus = "PENDING"
	ApprovalStatusApproved         ApprovalStatus = "APPROVED"
	ApprovalStatusRejected         ApprovalStatus = "REJECTED"
	ApprovalStatusChangesRequested ApprovalStatus = "CHANGES_REQUESTED"
)

func (s ApprovalStatus) Terminal() bool {
	return s == ApprovalStatusApproved || s == ApprovalStatusRejected
}

// MaxEscalationLevel caps how far the checker will raise a stale approval.
const MaxEscalationLevel = 3

// --- MODEL approvals ---------------------------------------------------------
//
// History is an append-only JSONB list of status transitions; the
// escalation level only ever goes up.
type Approval struct {
	ApprovalID        uuid.UUID      `json:"approval_id" gorm:"column:approval_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ApprovalProjectID uuid.UUID      `json:"approval_project_id" gorm:"column:approval_project_id;type:uuid;not null;index:idx_approvals_project"`
	ApprovalType      string         `json:"approval_type" gorm:"column:approval_type;type:varchar(40);not null"`
	ApprovalTitle     string         `json:"approval_title" gorm:"column:approval_title;type:varchar(160);not null"`
	ApprovalStatus    ApprovalStatus `json:"approval_status" gorm:"column:approval_status;type:varchar(20);not null;default:'PENDING';index:idx_approvals_status"`

	ApprovalEscalationLevel int        `json:"approval_escalation_level" gorm:"column:approval_escalation_level;type:int;not null;default:0"`
	ApprovalEscalatedAt     *time.Time `json:"approval_escalated_at,omitempty" gorm:"column:approval_escalated_at;type:timestamptz"`

	ApprovalSubmittedBy uuid.UUID  `json:"approval_submitted_by" gorm:"column:approval_submitted_by;type:uuid;not null"`
	ApprovalApprovedBy  *uuid.UUID `json:"approval_approved_by,omitempty" gorm:"column:approval_approved_by;type:uuid"`
	ApprovalDeadline    *time.Time `json:"approval_deadline,omitempty" gorm:"column:approval_deadline;type:timestamptz"`

	ApprovalHistory datatypes.JSON `json:"approval_history" gorm:"column:approval_history;type:jsonb;not null;default:'[]'"`

	ApprovalSubmittedAt time.Time `json:"approval_submitted_at" gorm:"column:approval_submitted_at;type:timestamptz;not null;autoCreateTime"`
	ApprovalUpdatedAt   time.Time `json:"approval_updated_at" gorm:"column:approval_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (Approval) TableName() string { return "approvals" }

// --- History entries ---------------------------------------------------------

type HistoryEntry struct {
	Status ApprovalStatus `json:"status"`
	Actor  uuid.UUID      `json:"actor"`
	Note   string         `json:"note,omitempty"`
	At     time.Time      `json:"at"`
}

// AppendHistory adds one transition entry; the existing list is never
// rewritten, only extended.
func (a *Approval) AppendHistory(entry HistoryEntry) error {
	var entries []HistoryEntry
	if len(a.ApprovalHistory) > 0 {
		if err := json.Unmarshal(a.ApprovalHistory, &entries); err != nil {
			return err
		}
	}
	entries = append(entries, entry)
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	a.ApprovalHistory = datatypes.JSON(raw)
	return nil
}

func (a *Approval) HistoryEntries() ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if len(a.ApprovalHistory) == 0 {
		return entries, nil
	}
	err := json.Unmarshal(a.ApprovalHistory, &entries)
	return entries, err
}

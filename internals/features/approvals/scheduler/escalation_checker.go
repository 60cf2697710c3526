package scheduler

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"agencyhub_backend/internals/configs"
	"agencyhub_backend/internals/features/approvals/model"
	notifModel "agencyhub_backend/internals/features/notifications/model"
	notifService "agencyhub_backend/internals/features/notifications/service"
)

// EscalationChecker periodically raises the escalation level of stale
// pending approvals and pings the stakeholders.
type EscalationChecker struct {
	DB         *gorm.DB
	Dispatcher *notifService.Dispatcher
	SLAWindow  time.Duration
}

func NewEscalationChecker(db *gorm.DB) *EscalationChecker {
	slaHours := 48
	if v := configs.GetEnv("APPROVAL_SLA_HOURS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			slaHours = parsed
		}
	}
	return &EscalationChecker{
		DB:         db,
		Dispatcher: &notifService.Dispatcher{DB: db},
		SLAWindow:  time.Duration(slaHours) * time.Hour,
	}
}

// StartEscalationScheduler wires the checker into a cron schedule
// (default every 10 minutes) and starts it on its own goroutine.
func StartEscalationScheduler(db *gorm.DB) *cron.Cron {
	spec := configs.GetEnv("APPROVAL_ESCALATION_CRON", "*/10 * * * *")
	checker := NewEscalationChecker(db)

	c := cron.New()
	if _, err := c.AddFunc(spec, func() { checker.RunCheck(time.Now()) }); err != nil {
		log.Printf("[ESCALATION] invalid cron spec %q, falling back to default: %v", spec, err)
		_, _ = c.AddFunc("*/10 * * * *", func() { checker.RunCheck(time.Now()) })
	}
	c.Start()
	log.Printf("[ESCALATION] scheduler started (spec=%q, sla=%s)", spec, checker.SLAWindow)
	return c
}

// ShouldEscalate decides whether one approval is due for escalation at
// time now.
//
// A PENDING approval below the level cap escalates when its deadline has
// passed, or — with no deadline — when it has sat longer than the SLA
// window. Rows that were already escalated only go up again once
// escalated_at itself is older than the SLA window; that is what keeps two
// back-to-back runs from double-incrementing.
func ShouldEscalate(a model.Approval, now time.Time, slaWindow time.Duration) bool {
	if a.ApprovalStatus != model.ApprovalStatusPending {
		return false
	}
	if a.ApprovalEscalationLevel >= model.MaxEscalationLevel {
		return false
	}

	if a.ApprovalEscalationLevel > 0 {
		if a.ApprovalEscalatedAt == nil {
			return false
		}
		return now.Sub(*a.ApprovalEscalatedAt) >= slaWindow
	}

	if a.ApprovalDeadline != nil {
		return now.After(*a.ApprovalDeadline)
	}
	return now.Sub(a.ApprovalSubmittedAt) >= slaWindow
}

// RunCheck scans pending approvals and escalates the stale ones. A failure
// on one row (update or notify) is logged and the scan moves on; the next
// scheduled run naturally re-evaluates whatever is still pending.
func (ec *EscalationChecker) RunCheck(now time.Time) {
	var pending []model.Approval
	if err := ec.DB.
		Where("approval_status = ?", model.ApprovalStatusPending).
		Where("approval_escalation_level < ?", model.MaxEscalationLevel).
		Find(&pending).Error; err != nil {
		log.Printf("[ESCALATION] query failed: %v", err)
		return
	}

	escalated := 0
	for _, a := range pending {
		if !ShouldEscalate(a, now, ec.SLAWindow) {
			continue
		}

		newLevel := a.ApprovalEscalationLevel + 1
		// conditional on the level we read, so a concurrent bump loses cleanly
		res := ec.DB.Model(&model.Approval{}).
			Where("approval_id = ? AND approval_escalation_level = ?", a.ApprovalID, a.ApprovalEscalationLevel).
			Updates(map[string]any{
				"approval_escalation_level": newLevel,
				"approval_escalated_at":     now,
			})
		if res.Error != nil {
			log.Printf("[ESCALATION] update failed for %s: %v", a.ApprovalID, res.Error)
			continue
		}
		if res.RowsAffected == 0 {
			continue
		}
		escalated++

		// notification is best-effort; the level bump above already stands
		if err := ec.Dispatcher.Notify(a.ApprovalSubmittedBy,
			notifModel.NotificationKindApprovalEscalated,
			fmt.Sprintf("Approval escalated to level %d", newLevel),
			a.ApprovalTitle); err != nil {
			log.Printf("[ESCALATION] notify failed for %s: %v", a.ApprovalID, err)
		}
	}

	if escalated > 0 {
		log.Printf("[ESCALATION] %d approval(s) escalated", escalated)
	}
}

package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/features/finance/budgets/dto"
	"agencyhub_backend/internals/features/finance/budgets/model"
)

// LedgerService records budget events and derives spend aggregates.
// Each operation is a single synchronous write/read; append never touches
// the project_budgets spent snapshot (the two are deliberately not linked).
type LedgerService struct {
	DB *gorm.DB
}

// Append creates a new budget event. Status defaults to PENDING unless the
// caller supplies an initial status (system-originated SPEND rows).
func (s *LedgerService) Append(projectID uuid.UUID, in dto.BudgetEventCreateDTO, actor uuid.UUID) (model.BudgetEvent, error) {
	if in.BudgetEventAmount < 0 {
		return model.BudgetEvent{}, fiber.NewError(fiber.StatusBadRequest, "budget event amount must not be negative")
	}

	status := model.BudgetEventStatusPending
	if in.BudgetEventStatus != nil {
		status = *in.BudgetEventStatus
	}

	ev := model.BudgetEvent{
		BudgetEventProjectID: projectID,
		BudgetEventType:      in.BudgetEventType,
		BudgetEventCategory:  in.BudgetEventCategory,
		BudgetEventAmount:    in.BudgetEventAmount,
		BudgetEventStatus:    status,
		BudgetEventStage:     in.BudgetEventStage,
		BudgetEventNote:      in.BudgetEventNote,
		BudgetEventCreatedBy: actor,
	}
	if err := s.DB.Create(&ev).Error; err != nil {
		return model.BudgetEvent{}, err
	}
	return ev, nil
}

// UpdateStatus sets the status of an event owned by projectID.
func (s *LedgerService) UpdateStatus(eventID, projectID uuid.UUID, newStatus model.BudgetEventStatus) (model.BudgetEvent, error) {
	var ev model.BudgetEvent
	if err := s.DB.First(&ev,
		"budget_event_id = ? AND budget_event_project_id = ?",
		eventID, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.BudgetEvent{}, fiber.NewError(fiber.StatusNotFound, "budget event not found for this project")
		}
		return model.BudgetEvent{}, err
	}

	ev.BudgetEventStatus = newStatus
	if err := s.DB.Model(&model.BudgetEvent{}).
		Where("budget_event_id = ?", eventID).
		Update("budget_event_status", newStatus).Error; err != nil {
		return model.BudgetEvent{}, err
	}
	return ev, nil
}

// ApprovedSpend sums APPROVED SPEND events for a project.
func (s *LedgerService) ApprovedSpend(projectID uuid.UUID) (float64, error) {
	var total float64
	err := s.DB.Model(&model.BudgetEvent{}).
		Where("budget_event_project_id = ?", projectID).
		Where("budget_event_type = ?", model.BudgetEventTypeSpend).
		Where("budget_event_status = ?", model.BudgetEventStatusApproved).
		Select("COALESCE(SUM(budget_event_amount), 0)").
		Scan(&total).Error
	return total, err
}

// ComputeThreshold reads the project budget total and the approved spend sum
// and derives the consumption level.
func (s *LedgerService) ComputeThreshold(projectID uuid.UUID) (dto.BudgetThresholdResponse, error) {
	var budget model.ProjectBudget
	totalBudget := 0.0
	if err := s.DB.First(&budget, "project_budget_project_id = ?", projectID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.BudgetThresholdResponse{}, err
		}
		// no budget row yet — treated the same as total = 0
	} else {
		totalBudget = budget.ProjectBudgetTotal
	}

	spent, err := s.ApprovedSpend(projectID)
	if err != nil {
		return dto.BudgetThresholdResponse{}, err
	}

	percent := SpendPercent(totalBudget, spent)
	return dto.BudgetThresholdResponse{
		ProjectID:   projectID,
		TotalBudget: totalBudget,
		SpentAmount: spent,
		Percent:     percent,
		Level:       ThresholdLevel(percent),
	}, nil
}

// SummarizeByCategory groups APPROVED SPEND events by category. Chart food,
// not correctness-critical.
func (s *LedgerService) SummarizeByCategory(projectID uuid.UUID) ([]dto.CategorySummaryRow, error) {
	rows := []dto.CategorySummaryRow{}
	err := s.DB.Model(&model.BudgetEvent{}).
		Where("budget_event_project_id = ?", projectID).
		Where("budget_event_type = ?", model.BudgetEventTypeSpend).
		Where("budget_event_status = ?", model.BudgetEventStatusApproved).
		Select("budget_event_category AS category, COALESCE(SUM(budget_event_amount), 0) AS total").
		Group("budget_event_category").
		Order("budget_event_category").
		Scan(&rows).Error
	return rows, err
}

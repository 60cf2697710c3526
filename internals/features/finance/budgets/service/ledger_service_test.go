package service

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"agencyhub_backend/internals/features/finance/budgets/dto"
	"agencyhub_backend/internals/features/finance/budgets/model"
)

// A negative amount must be rejected before anything is written; the
// service holds no DB here, so reaching the store would panic the test.
func TestAppendRejectsNegativeAmount(t *testing.T) {
	s := &LedgerService{}

	_, err := s.Append(uuid.New(), dto.BudgetEventCreateDTO{
		BudgetEventType:     model.BudgetEventTypeSpend,
		BudgetEventCategory: model.BudgetCategoryContent,
		BudgetEventAmount:   -1,
	}, uuid.New())
	if err == nil {
		t.Fatal("Append accepted a negative amount")
	}

	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected a fiber error, got %T: %v", err, err)
	}
	if fe.Code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", fe.Code, fiber.StatusBadRequest)
	}
}

package service

import (
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"agencyhub_backend/internals/features/projects/pipeline/model"
)

func TestCanDecide(t *testing.T) {
	cases := []struct {
		current model.ProjectDecision
		want    bool
	}{
		{model.DecisionPending, true},
		{model.DecisionAccepted, false},
		{model.DecisionDeclined, false},
	}
	for _, tc := range cases {
		if got := CanDecide(tc.current); got != tc.want {
			t.Errorf("CanDecide(%s) = %v, want %v", tc.current, got, tc.want)
		}
	}
}

func TestValidDecisionValue(t *testing.T) {
	cases := []struct {
		decision model.ProjectDecision
		want     bool
	}{
		{model.DecisionAccepted, true},
		{model.DecisionDeclined, true},
		{model.DecisionPending, false},
		{model.ProjectDecision("MAYBE"), false},
		{model.ProjectDecision(""), false},
	}
	for _, tc := range cases {
		if got := ValidDecisionValue(tc.decision); got != tc.want {
			t.Errorf("ValidDecisionValue(%q) = %v, want %v", tc.decision, got, tc.want)
		}
	}
}

// An unknown decision value must fail before the store is touched; the
// service holds no DB here.
func TestDecideRejectsUnknownDecisionValue(t *testing.T) {
	s := &DecisionService{}

	_, err := s.Decide(uuid.New(), model.ProjectDecision("MAYBE"), nil, uuid.New())
	if err == nil {
		t.Fatal("Decide accepted an unknown decision value")
	}

	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected a fiber error, got %T: %v", err, err)
	}
	if fe.Code != fiber.StatusBadRequest {
		t.Errorf("status = %d, want %d", fe.Code, fiber.StatusBadRequest)
	}
}

func TestBuildDecisionUpdates(t *testing.T) {
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	existing := "DL-2024-ABCDEF"

	t.Run("accepted without deal code", func(t *testing.T) {
		u := buildDecisionUpdates(model.Project{}, model.DecisionAccepted, nil, now)
		if u["project_decision"] != model.DecisionAccepted {
			t.Errorf("decision = %v", u["project_decision"])
		}
		if u["project_stage"] != model.StagePlanning {
			t.Errorf("stage = %v, want PLANNING", u["project_stage"])
		}
		code, ok := u["project_deal_code"].(string)
		if !ok || code == "" {
			t.Error("accepted project should get a deal code minted")
		}
	})

	t.Run("accepted keeps existing deal code", func(t *testing.T) {
		p := model.Project{ProjectDealCode: &existing}
		u := buildDecisionUpdates(p, model.DecisionAccepted, nil, now)
		if _, ok := u["project_deal_code"]; ok {
			t.Error("existing deal code must not be overwritten")
		}
	})

	t.Run("declined leaves the stage alone", func(t *testing.T) {
		note := "budget mismatch"
		u := buildDecisionUpdates(model.Project{}, model.DecisionDeclined, &note, now)
		if _, ok := u["project_stage"]; ok {
			t.Error("declined must not move the stage")
		}
		if _, ok := u["project_deal_code"]; ok {
			t.Error("declined must not mint a deal code")
		}
		if u["project_decision_note"] != &note {
			t.Errorf("note = %v, want %v", u["project_decision_note"], &note)
		}
	})
}

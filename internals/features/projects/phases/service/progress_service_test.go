package service

import (
	"testing"

	"github.com/google/uuid"

	"agencyhub_backend/internals/features/projects/phases/model"
)

func TestComputeOverallProgress(t *testing.T) {
	cases := []struct {
		name   string
		phases []WeightedProgress
		want   int
	}{
		{"empty", nil, 0},
		{"total weight zero", []WeightedProgress{{0, 100}, {0, 50}}, 0},
		{"fifty-fifty", []WeightedProgress{{50, 100}, {50, 0}}, 50},
		{"all done", []WeightedProgress{{50, 100}, {10, 100}, {30, 100}, {10, 100}}, 100},
		{"default template mix", []WeightedProgress{{50, 100}, {10, 0}, {30, 50}, {10, 0}}, 65},
		{"weights not summing to 100", []WeightedProgress{{3, 100}, {1, 0}}, 75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeOverallProgress(tc.phases); got != tc.want {
				t.Errorf("ComputeOverallProgress = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestComputePhaseProgress(t *testing.T) {
	item := func(weight int, done bool) model.PhaseItem {
		return model.PhaseItem{PhaseItemWeight: weight, PhaseItemIsComplete: done}
	}

	cases := []struct {
		name  string
		items []model.PhaseItem
		want  int
	}{
		{"no items", nil, 0},
		{"zero weights", []model.PhaseItem{item(0, true)}, 0},
		{"half done by weight", []model.PhaseItem{item(50, true), item(50, false)}, 50},
		{"uneven weights", []model.PhaseItem{item(20, true), item(40, true), item(40, false)}, 60},
		{"weights not summing to 100", []model.PhaseItem{item(1, true), item(2, false)}, 33},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputePhaseProgress(tc.items); got != tc.want {
				t.Errorf("ComputePhaseProgress = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestBuildDefaultPhases(t *testing.T) {
	projectID := uuid.New()
	phases := BuildDefaultPhases(projectID)

	if len(phases) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(phases))
	}

	wantWeights := []int{50, 10, 30, 10}
	sum := 0
	for i, p := range phases {
		if p.ProjectPhaseWeight != wantWeights[i] {
			t.Errorf("phase %d weight = %d, want %d", i, p.ProjectPhaseWeight, wantWeights[i])
		}
		if p.ProjectPhaseProjectID != projectID {
			t.Errorf("phase %d has wrong project id", i)
		}
		if p.ProjectPhaseOrderIndex != i {
			t.Errorf("phase %d order index = %d", i, p.ProjectPhaseOrderIndex)
		}
		if len(p.Items) == 0 {
			t.Errorf("phase %d has no default items", i)
		}
		sum += p.ProjectPhaseWeight
	}
	if sum != 100 {
		t.Fatalf("phase weights sum = %d, want 100", sum)
	}
}

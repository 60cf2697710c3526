package service

import (
	"math"

	"github.com/google/uuid"

	"agencyhub_backend/internals/features/projects/phases/model"
)

// WeightedProgress is the {weight, progress} pair the overall computation
// consumes; it keeps the math decoupled from the GORM structs.
type WeightedProgress struct {
	Weight   int
	Progress int
}

// ComputeOverallProgress returns round(Σ(weight×progress) / Σ(weight)).
// Total weight 0 yields 0.
func ComputeOverallProgress(phases []WeightedProgress) int {
	totalWeight := 0
	weighted := 0
	for _, p := range phases {
		totalWeight += p.Weight
		weighted += p.Weight * p.Progress
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(float64(weighted) / float64(totalWeight)))
}

// ComputePhaseProgress derives a phase's percentage from its items:
// round(Σ(item.weight × (done?100:0)) / Σ(item.weight)). No items yields 0.
// Item weights need not sum to 100 — this is a weighted average.
func ComputePhaseProgress(items []model.PhaseItem) int {
	totalWeight := 0
	weighted := 0
	for _, it := range items {
		totalWeight += it.PhaseItemWeight
		if it.PhaseItemIsComplete {
			weighted += it.PhaseItemWeight * 100
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(float64(weighted) / float64(totalWeight)))
}

/* ===============================
   Default phase template
=================================*/

type defaultItem struct {
	Name   string
	Weight int
}

type defaultPhase struct {
	Type   model.PhaseType
	Name   string
	Weight int
	Items  []defaultItem
}

// Weights sum to 100; instantiated once at pipeline acceptance.
var defaultTemplate = []defaultPhase{
	{
		Type: model.PhaseTypeSetup, Name: "Setup & Kickoff", Weight: 50,
		Items: []defaultItem{
			{Name: "Kickoff meeting", Weight: 20},
			{Name: "Brief & scope sign-off", Weight: 40},
			{Name: "Accounts & tracking setup", Weight: 40},
		},
	},
	{
		Type: model.PhaseTypeProduction, Name: "Production", Weight: 10,
		Items: []defaultItem{
			{Name: "Content production", Weight: 60},
			{Name: "Design assets", Weight: 40},
		},
	},
	{
		Type: model.PhaseTypeDistribution, Name: "Distribution", Weight: 30,
		Items: []defaultItem{
			{Name: "Campaign launch", Weight: 50},
			{Name: "Optimization rounds", Weight: 50},
		},
	},
	{
		Type: model.PhaseTypeReporting, Name: "Reporting & Handover", Weight: 10,
		Items: []defaultItem{
			{Name: "Monthly report", Weight: 50},
			{Name: "Final handover", Weight: 50},
		},
	},
}

// BuildDefaultPhases instantiates the template for a project.
func BuildDefaultPhases(projectID uuid.UUID) []model.ProjectPhase {
	phases := make([]model.ProjectPhase, 0, len(defaultTemplate))
	for i, tpl := range defaultTemplate {
		phase := model.ProjectPhase{
			ProjectPhaseProjectID:  projectID,
			ProjectPhaseType:       tpl.Type,
			ProjectPhaseName:       tpl.Name,
			ProjectPhaseWeight:     tpl.Weight,
			ProjectPhaseOrderIndex: i,
		}
		for j, it := range tpl.Items {
			phase.Items = append(phase.Items, model.PhaseItem{
				PhaseItemName:       it.Name,
				PhaseItemWeight:     it.Weight,
				PhaseItemOrderIndex: j,
			})
		}
		phases = append(phases, phase)
	}
	return phases
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM lifecycle stage ----------------------------------------------------

type ProjectStage string

const (
	StageIntake        ProjectStage = "INTAKE"
	StageDiscovery     ProjectStage = "DISCOVERY"
	StagePlanning      ProjectStage = "PLANNING"
	StageUnderReview   ProjectStage = "UNDER_REVIEW"
	StageProposalPitch ProjectStage = "PROPOSAL_PITCH"
	StageOngoing       ProjectStage = "ONGOING"
	StageOptimization  ProjectStage = "OPTIMIZATION"
	StageCompleted     ProjectStage = "COMPLETED"
	StageClosed        ProjectStage = "CLOSED"
	// LOST is a display state for declined pipelines, reachable only via the
	// decision gate, never via advanceStage.
	StageLost ProjectStage = "LOST"
)

func (s ProjectStage) Valid() bool {
	switch s {
	case StageIntake, StageDiscovery, StagePlanning, StageUnderReview,
		StageProposalPitch, StageOngoing, StageOptimization,
		StageCompleted, StageClosed:
		return true
	}
	return false
}

// --- ENUM decision -----------------------------------------------------------

type ProjectDecision string

const (
	DecisionPending  ProjectDecision = "PENDING"
	DecisionAccepted ProjectDecision = "ACCEPTED"
	DecisionDeclined ProjectDecision = "DECLINED"
)

// --- MODEL projects ----------------------------------------------------------
//
// A row is a sales pipeline entry until the decision gate accepts it; the
// decision is terminal once set (guarded by a conditional update, see
// DecisionService.Decide).
type Project struct {
	ProjectID       uuid.UUID `json:"project_id" gorm:"column:project_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectDealCode *string   `json:"project_deal_code,omitempty" gorm:"column:project_deal_code;type:varchar(30);uniqueIndex:uq_projects_deal_code"`
	ProjectName     string    `json:"project_name" gorm:"column:project_name;type:varchar(160);not null"`

	ProjectStage         ProjectStage `json:"project_stage" gorm:"column:project_stage;type:varchar(20);not null;default:'INTAKE';index:idx_projects_stage"`
	ProjectStageProgress int          `json:"project_stage_progress" gorm:"column:project_stage_progress;type:int;not null;default:0"`

	ProjectDecision     ProjectDecision `json:"project_decision" gorm:"column:project_decision;type:varchar(10);not null;default:'PENDING';index:idx_projects_decision"`
	ProjectDecisionNote *string         `json:"project_decision_note,omitempty" gorm:"column:project_decision_note;type:text"`
	ProjectDecisionDate *time.Time      `json:"project_decision_date,omitempty" gorm:"column:project_decision_date;type:timestamptz"`

	// Cost breakdown (proposal-side estimates)
	ProjectCostNSQC   float64 `json:"project_cost_nsqc" gorm:"column:project_cost_nsqc;type:numeric(18,2);not null;default:0"`
	ProjectCostDesign float64 `json:"project_cost_design" gorm:"column:project_cost_design;type:numeric(18,2);not null;default:0"`
	ProjectCostMedia  float64 `json:"project_cost_media" gorm:"column:project_cost_media;type:numeric(18,2);not null;default:0"`
	ProjectCostKOL    float64 `json:"project_cost_kol" gorm:"column:project_cost_kol;type:numeric(18,2);not null;default:0"`
	ProjectCostOther  float64 `json:"project_cost_other" gorm:"column:project_cost_other;type:numeric(18,2);not null;default:0"`

	ProjectClientTier *string `json:"project_client_tier,omitempty" gorm:"column:project_client_tier;type:varchar(10);index:idx_projects_client_tier"`

	// Evaluation (filled after completion)
	ProjectEvaluationScore *int    `json:"project_evaluation_score,omitempty" gorm:"column:project_evaluation_score;type:int"`
	ProjectEvaluationNote  *string `json:"project_evaluation_note,omitempty" gorm:"column:project_evaluation_note;type:text"`

	ProjectCreatedBy uuid.UUID      `json:"project_created_by" gorm:"column:project_created_by;type:uuid;not null"`
	ProjectCreatedAt time.Time      `json:"project_created_at" gorm:"column:project_created_at;type:timestamptz;not null;autoCreateTime"`
	ProjectUpdatedAt time.Time      `json:"project_updated_at" gorm:"column:project_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ProjectDeletedAt gorm.DeletedAt `json:"project_deleted_at,omitempty" gorm:"column:project_deleted_at;type:timestamptz;index"`
}

func (Project) TableName() string { return "projects" }

// DisplayStage folds the DECLINED decision into the LOST display state.
func (p Project) DisplayStage() ProjectStage {
	if p.ProjectDecision == DecisionDeclined {
		return StageLost
	}
	return p.ProjectStage
}

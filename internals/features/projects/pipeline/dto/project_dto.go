package dto

import (
	"time"

	"github.com/google/uuid"

	"agencyhub_backend/internals/features/projects/pipeline/model"
)

/* ===============================
   PIPELINE / PROJECT — DTO
=================================*/

type ProjectCreateDTO struct {
	ProjectName string `json:"project_name" validate:"required,max=160"`

	ProjectCostNSQC   float64 `json:"project_cost_nsqc" validate:"min=0"`
	ProjectCostDesign float64 `json:"project_cost_design" validate:"min=0"`
	ProjectCostMedia  float64 `json:"project_cost_media" validate:"min=0"`
	ProjectCostKOL    float64 `json:"project_cost_kol" validate:"min=0"`
	ProjectCostOther  float64 `json:"project_cost_other" validate:"min=0"`

	ProjectClientTier *string `json:"project_client_tier,omitempty" validate:"omitempty,oneof=A B C D"`
}

type ProjectUpdateDTO struct {
	ProjectName *string `json:"project_name,omitempty" validate:"omitempty,max=160"`

	ProjectCostNSQC   *float64 `json:"project_cost_nsqc,omitempty" validate:"omitempty,min=0"`
	ProjectCostDesign *float64 `json:"project_cost_design,omitempty" validate:"omitempty,min=0"`
	ProjectCostMedia  *float64 `json:"project_cost_media,omitempty" validate:"omitempty,min=0"`
	ProjectCostKOL    *float64 `json:"project_cost_kol,omitempty" validate:"omitempty,min=0"`
	ProjectCostOther  *float64 `json:"project_cost_other,omitempty" validate:"omitempty,min=0"`

	ProjectClientTier *string `json:"project_client_tier,omitempty" validate:"omitempty,oneof=A B C D"`

	ProjectEvaluationScore *int    `json:"project_evaluation_score,omitempty" validate:"omitempty,min=0,max=100"`
	ProjectEvaluationNote  *string `json:"project_evaluation_note,omitempty"`
}

type DecisionDTO struct {
	Decision model.ProjectDecision `json:"decision" validate:"required,oneof=ACCEPTED DECLINED"`
	Note     *string               `json:"note,omitempty"`
}

type StageAdvanceDTO struct {
	Stage    model.ProjectStage `json:"stage" validate:"required"`
	Progress *int               `json:"progress,omitempty"`
}

type ProjectResponse struct {
	ProjectID       uuid.UUID `json:"project_id"`
	ProjectDealCode *string   `json:"project_deal_code,omitempty"`
	ProjectName     string    `json:"project_name"`

	ProjectStage         model.ProjectStage `json:"project_stage"`
	ProjectDisplayStage  model.ProjectStage `json:"project_display_stage"`
	ProjectStageProgress int                `json:"project_stage_progress"`

	ProjectDecision     model.ProjectDecision `json:"project_decision"`
	ProjectDecisionNote *string               `json:"project_decision_note,omitempty"`
	ProjectDecisionDate *time.Time            `json:"project_decision_date,omitempty"`

	ProjectCostNSQC   float64 `json:"project_cost_nsqc"`
	ProjectCostDesign float64 `json:"project_cost_design"`
	ProjectCostMedia  float64 `json:"project_cost_media"`
	ProjectCostKOL    float64 `json:"project_cost_kol"`
	ProjectCostOther  float64 `json:"project_cost_other"`

	ProjectClientTier *string `json:"project_client_tier,omitempty"`

	ProjectEvaluationScore *int    `json:"project_evaluation_score,omitempty"`
	ProjectEvaluationNote  *string `json:"project_evaluation_note,omitempty"`

	ProjectCreatedBy uuid.UUID `json:"project_created_by"`
	ProjectCreatedAt time.Time `json:"project_created_at"`
	ProjectUpdatedAt time.Time `json:"project_updated_at"`
}

func ToProjectResponse(m model.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:              m.ProjectID,
		ProjectDealCode:        m.ProjectDealCode,
		ProjectName:            m.ProjectName,
		ProjectStage:           m.ProjectStage,
		ProjectDisplayStage:    m.DisplayStage(),
		ProjectStageProgress:   m.ProjectStageProgress,
		ProjectDecision:        m.ProjectDecision,
		ProjectDecisionNote:    m.ProjectDecisionNote,
		ProjectDecisionDate:    m.ProjectDecisionDate,
		ProjectCostNSQC:        m.ProjectCostNSQC,
		ProjectCostDesign:      m.ProjectCostDesign,
		ProjectCostMedia:       m.ProjectCostMedia,
		ProjectCostKOL:         m.ProjectCostKOL,
		ProjectCostOther:       m.ProjectCostOther,
		ProjectClientTier:      m.ProjectClientTier,
		ProjectEvaluationScore: m.ProjectEvaluationScore,
		ProjectEvaluationNote:  m.ProjectEvaluationNote,
		ProjectCreatedBy:       m.ProjectCreatedBy,
		ProjectCreatedAt:       m.ProjectCreatedAt,
		ProjectUpdatedAt:       m.ProjectUpdatedAt,
	}
}

func ToProjectResponses(list []model.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToProjectResponse(m))
	}
	return out
}

func (in ProjectCreateDTO) ToModel(actor uuid.UUID) model.Project {
	return model.Project{
		ProjectName:       in.ProjectName,
		ProjectStage:      model.StageIntake,
		ProjectDecision:   model.DecisionPending,
		ProjectCostNSQC:   in.ProjectCostNSQC,
		ProjectCostDesign: in.ProjectCostDesign,
		ProjectCostMedia:  in.ProjectCostMedia,
		ProjectCostKOL:    in.ProjectCostKOL,
		ProjectCostOther:  in.ProjectCostOther,
		ProjectClientTier: in.ProjectClientTier,
		ProjectCreatedBy:  actor,
	}
}

func ApplyProjectUpdate(m *model.Project, in ProjectUpdateDTO) {
	if in.ProjectName != nil {
		m.ProjectName = *in.ProjectName
	}
	if in.ProjectCostNSQC != nil {
		m.ProjectCostNSQC = *in.ProjectCostNSQC
	}
	if in.ProjectCostDesign != nil {
		m.ProjectCostDesign = *in.ProjectCostDesign
	}
	if in.ProjectCostMedia != nil {
		m.ProjectCostMedia = *in.ProjectCostMedia
	}
	if in.ProjectCostKOL != nil {
		m.ProjectCostKOL = *in.ProjectCostKOL
	}
	if in.ProjectCostOther != nil {
		m.ProjectCostOther = *in.ProjectCostOther
	}
	if in.ProjectClientTier != nil {
		m.ProjectClientTier = in.ProjectClientTier
	}
	if in.ProjectEvaluationScore != nil {
		m.ProjectEvaluationScore = in.ProjectEvaluationScore
	}
	if in.ProjectEvaluationNote != nil {
		m.ProjectEvaluationNote = in.ProjectEvaluationNote
	}
}

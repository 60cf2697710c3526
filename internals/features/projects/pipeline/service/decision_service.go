package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"agencyhub_backend/internals/constants"
	phaseModel "agencyhub_backend/internals/features/projects/phases/model"
	phaseService "agencyhub_backend/internals/features/projects/phases/service"
	"agencyhub_backend/internals/features/projects/pipeline/model"
	teamModel "agencyhub_backend/internals/features/projects/teams/model"
)

// DecisionService gates the pipeline → active-project transition.
type DecisionService struct {
	DB *gorm.DB
}

// ValidDecisionValue reports whether the requested decision is one of the
// two terminal answers a caller may record.
func ValidDecisionValue(d model.ProjectDecision) bool {
	return d == model.DecisionAccepted || d == model.DecisionDeclined
}

// CanDecide reports whether a project in the given decision state is still
// open for a decision. It mirrors the WHERE clause of the conditional update
// in Decide; the update remains the authoritative guard under concurrency.
func CanDecide(current model.ProjectDecision) bool {
	return current == model.DecisionPending
}

// buildDecisionUpdates assembles the column set a winning decision writes.
// ACCEPTED moves the stage to PLANNING and mints a deal code when the
// project has none; DECLINED leaves the stage untouched (DisplayStage folds
// it into LOST).
func buildDecisionUpdates(project model.Project, decision model.ProjectDecision, note *string, now time.Time) map[string]any {
	updates := map[string]any{
		"project_decision":      decision,
		"project_decision_note": note,
		"project_decision_date": now,
	}
	if decision == model.DecisionAccepted {
		updates["project_stage"] = model.StagePlanning
		if project.ProjectDealCode == nil || *project.ProjectDealCode == "" {
			updates["project_deal_code"] = GenerateDealCode(now)
		}
	}
	return updates
}

// Decide accepts or declines a PENDING pipeline entry.
//
// The PENDING precondition is enforced with a conditional UPDATE (decision
// checked in the WHERE clause), so two concurrent calls cannot both win:
// the loser sees RowsAffected == 0 and gets the "already decided" conflict.
// This also makes a second call on an already-decided project fail loudly
// instead of silently regenerating phases or teams.
func (s *DecisionService) Decide(projectID uuid.UUID, decision model.ProjectDecision, note *string, actor uuid.UUID) (model.Project, error) {
	if !ValidDecisionValue(decision) {
		return model.Project{}, fiber.NewError(fiber.StatusBadRequest, "decision must be ACCEPTED or DECLINED")
	}

	var project model.Project
	if err := s.DB.First(&project, "project_id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Project{}, fiber.NewError(fiber.StatusNotFound, "project not found")
		}
		return model.Project{}, err
	}
	if !CanDecide(project.ProjectDecision) {
		return model.Project{}, fiber.NewError(fiber.StatusConflict, "project has already been decided")
	}

	now := time.Now()
	updates := buildDecisionUpdates(project, decision, note, now)

	res := s.DB.Model(&model.Project{}).
		Where("project_id = ? AND project_decision = ?", projectID, model.DecisionPending).
		Updates(updates)
	if res.Error != nil {
		return model.Project{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Project{}, fiber.NewError(fiber.StatusConflict, "project has already been decided")
	}

	if decision == model.DecisionAccepted {
		if err := s.instantiateDefaults(projectID, actor); err != nil {
			// The decision itself stands; defaults can be backfilled manually.
			log.Printf("[DECISION] defaults for project %s partially applied: %v", projectID, err)
		}
	}

	var out model.Project
	if err := s.DB.First(&out, "project_id = ?", projectID).Error; err != nil {
		return model.Project{}, err
	}
	return out, nil
}

// instantiateDefaults creates the default phases and the starter team entry
// for a freshly accepted project. Both creations are skipped when rows
// already exist (re-accept after a partial failure must not duplicate).
func (s *DecisionService) instantiateDefaults(projectID, actor uuid.UUID) error {
	var phaseCount int64
	if err := s.DB.Model(&phaseModel.ProjectPhase{}).
		Where("project_phase_project_id = ?", projectID).
		Count(&phaseCount).Error; err != nil {
		return err
	}
	if phaseCount == 0 {
		phases := phaseService.BuildDefaultPhases(projectID)
		if err := s.DB.Create(&phases).Error; err != nil {
			return err
		}
	}

	var teamCount int64
	if err := s.DB.Model(&teamModel.ProjectTeamMember{}).
		Where("project_team_member_project_id = ?", projectID).
		Count(&teamCount).Error; err != nil {
		return err
	}
	if teamCount == 0 {
		starter := teamModel.ProjectTeamMember{
			ProjectTeamMemberProjectID: projectID,
			ProjectTeamMemberUserID:    actor,
			ProjectTeamMemberRole:      constants.RolePM,
		}
		if err := s.DB.Create(&starter).Error; err != nil {
			return err
		}
	}
	return nil
}

// AdvanceStage sets the lifecycle stage and clamped progress. Any known
// stage value is accepted — backward moves included; there is deliberately
// no forward-only state machine here.
func (s *DecisionService) AdvanceStage(projectID uuid.UUID, stage model.ProjectStage, progress *int) (model.Project, error) {
	if !stage.Valid() {
		return model.Project{}, fiber.NewError(fiber.StatusBadRequest, "unknown stage value")
	}

	updates := map[string]any{"project_stage": stage}
	if progress != nil {
		updates["project_stage_progress"] = ClampProgress(*progress)
	}

	res := s.DB.Model(&model.Project{}).
		Where("project_id = ?", projectID).
		Updates(updates)
	if res.Error != nil {
		return model.Project{}, res.Error
	}
	if res.RowsAffected == 0 {
		return model.Project{}, fiber.NewError(fiber.StatusNotFound, "project not found")
	}

	var out model.Project
	if err := s.DB.First(&out, "project_id = ?", projectID).Error; err != nil {
		return model.Project{}, err
	}
	return out, nil
}

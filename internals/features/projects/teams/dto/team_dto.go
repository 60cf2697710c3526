package dto

import (
	"time"

	"github.com/google/uuid"

	"agencyhub_backend/internals/features/projects/teams/model"
)

type TeamMemberAddDTO struct {
	ProjectTeamMemberUserID uuid.UUID `json:"project_team_member_user_id" validate:"required"`
	ProjectTeamMemberRole   string    `json:"project_team_member_role" validate:"required,oneof=pm member client"`
	ProjectTeamMemberTags   []string  `json:"project_team_member_tags,omitempty" validate:"omitempty,dive,max=30"`
}

type TeamMemberResponse struct {
	ProjectTeamMemberID        uuid.UUID `json:"project_team_member_id"`
	ProjectTeamMemberProjectID uuid.UUID `json:"project_team_member_project_id"`
	ProjectTeamMemberUserID    uuid.UUID `json:"project_team_member_user_id"`
	ProjectTeamMemberRole      string    `json:"project_team_member_role"`
	ProjectTeamMemberTags      []string  `json:"project_team_member_tags"`
	ProjectTeamMemberJoinedAt  time.Time `json:"project_team_member_joined_at"`
}

func ToTeamMemberResponse(m model.ProjectTeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ProjectTeamMemberID:        m.ProjectTeamMemberID,
		ProjectTeamMemberProjectID: m.ProjectTeamMemberProjectID,
		ProjectTeamMemberUserID:    m.ProjectTeamMemberUserID,
		ProjectTeamMemberRole:      m.ProjectTeamMemberRole,
		ProjectTeamMemberTags:      m.ProjectTeamMemberTags,
		ProjectTeamMemberJoinedAt:  m.ProjectTeamMemberJoinedAt,
	}
}

func ToTeamMemberResponses(list []model.ProjectTeamMember) []TeamMemberResponse {
	out := make([]TeamMemberResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToTeamMemberResponse(m))
	}
	return out
}

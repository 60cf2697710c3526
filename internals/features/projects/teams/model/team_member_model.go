package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// --- MODEL project_team_members ----------------------------------------------
//
// A starter row for the accepting PM is created automatically at the
// decision gate; the rest is managed through the team endpoints.
type ProjectTeamMember struct {
	ProjectTeamMemberID        uuid.UUID `json:"project_team_member_id" gorm:"column:project_team_member_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectTeamMemberProjectID uuid.UUID `json:"project_team_member_project_id" gorm:"column:project_team_member_project_id;type:uuid;not null;index:idx_project_team_members_project"`
	ProjectTeamMemberUserID    uuid.UUID `json:"project_team_member_user_id" gorm:"column:project_team_member_user_id;type:uuid;not null;index:idx_project_team_members_user"`

	ProjectTeamMemberRole string         `json:"project_team_member_role" gorm:"column:project_team_member_role;type:varchar(30);not null;default:'member'"`
	ProjectTeamMemberTags pq.StringArray `json:"project_team_member_tags" gorm:"column:project_team_member_tags;type:text[]"`

	ProjectTeamMemberJoinedAt  time.Time      `json:"project_team_member_joined_at" gorm:"column:project_team_member_joined_at;type:timestamptz;not null;autoCreateTime"`
	ProjectTeamMemberDeletedAt gorm.DeletedAt `json:"project_team_member_deleted_at,omitempty" gorm:"column:project_team_member_deleted_at;type:timestamptz;index"`
}

func (ProjectTeamMember) TableName() string { return "project_team_members" }

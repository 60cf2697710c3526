package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// --- ENUM phase_type ---------------------------------------------------------

type PhaseType string

const (
	PhaseTypeSetup        PhaseType = "SETUP"
	PhaseTypeProduction   PhaseType = "PRODUCTION"
	PhaseTypeDistribution PhaseType = "DISTRIBUTION"
	PhaseTypeReporting    PhaseType = "REPORTING"
)

// --- MODEL project_phases ----------------------------------------------------
//
// Phases come from the fixed default template at acceptance; their weights
// sum to 100 by construction. Progress is derived from items on read, never
// stored.
type ProjectPhase struct {
	ProjectPhaseID         uuid.UUID `json:"project_phase_id" gorm:"column:project_phase_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ProjectPhaseProjectID  uuid.UUID `json:"project_phase_project_id" gorm:"column:project_phase_project_id;type:uuid;not null;index:idx_project_phases_project"`
	ProjectPhaseType       PhaseType `json:"project_phase_type" gorm:"column:project_phase_type;type:varchar(20);not null"`
	ProjectPhaseName       string    `json:"project_phase_name" gorm:"column:project_phase_name;type:varchar(120);not null"`
	ProjectPhaseWeight     int       `json:"project_phase_weight" gorm:"column:project_phase_weight;type:int;not null;default:0"`
	ProjectPhaseOrderIndex int       `json:"project_phase_order_index" gorm:"column:project_phase_order_index;type:int;not null;default:0"`

	ProjectPhaseCreatedAt time.Time      `json:"project_phase_created_at" gorm:"column:project_phase_created_at;type:timestamptz;not null;autoCreateTime"`
	ProjectPhaseUpdatedAt time.Time      `json:"project_phase_updated_at" gorm:"column:project_phase_updated_at;type:timestamptz;not null;autoUpdateTime"`
	ProjectPhaseDeletedAt gorm.DeletedAt `json:"project_phase_deleted_at,omitempty" gorm:"column:project_phase_deleted_at;type:timestamptz;index"`

	Items []PhaseItem `json:"items,omitempty" gorm:"foreignKey:PhaseItemPhaseID;references:ProjectPhaseID"`
}

func (ProjectPhase) TableName() string { return "project_phases" }

// --- MODEL phase_items -------------------------------------------------------

type PhaseItem struct {
	PhaseItemID         uuid.UUID `json:"phase_item_id" gorm:"column:phase_item_id;type:uuid;default:gen_random_uuid();primaryKey"`
	PhaseItemPhaseID    uuid.UUID `json:"phase_item_phase_id" gorm:"column:phase_item_phase_id;type:uuid;not null;index:idx_phase_items_phase"`
	PhaseItemName       string    `json:"phase_item_name" gorm:"column:phase_item_name;type:varchar(160);not null"`
	PhaseItemWeight     int       `json:"phase_item_weight" gorm:"column:phase_item_weight;type:int;not null;default:0"`
	PhaseItemIsComplete bool      `json:"phase_item_is_complete" gorm:"column:phase_item_is_complete;type:boolean;not null;default:false"`
	PhaseItemOrderIndex int       `json:"phase_item_order_index" gorm:"column:phase_item_order_index;type:int;not null;default:0"`

	PhaseItemCreatedAt time.Time `json:"phase_item_created_at" gorm:"column:phase_item_created_at;type:timestamptz;not null;autoCreateTime"`
	PhaseItemUpdatedAt time.Time `json:"phase_item_updated_at" gorm:"column:phase_item_updated_at;type:timestamptz;not null;autoUpdateTime"`
}

func (PhaseItem) TableName() string { return "phase_items" }

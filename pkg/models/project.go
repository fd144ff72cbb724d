package models

import (
	"time"

	"github.com/autoforge-dev/autoforge/ent"
)

// CreateProjectRequest contains fields for registering a new project
type CreateProjectRequest struct {
	Name        string         `json:"name"`
	SpecContent string         `json:"spec_content,omitempty"`
	SpecPath    string         `json:"spec_path,omitempty"`
	Settings    map[string]any `json:"settings,omitempty"`
}

// RenameProjectRequest carries the new project name
type RenameProjectRequest struct {
	Name string `json:"name"`
}

// UpdateSettingsRequest carries a full replacement settings document
type UpdateSettingsRequest struct {
	Settings map[string]any `json:"settings"`
}

// ProjectFilters contains filtering options for listing projects
type ProjectFilters struct {
	Status string `json:"status,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// ProjectListResponse contains a paginated project list
type ProjectListResponse struct {
	Projects   []*ent.Project `json:"projects"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// ProjectProgress summarizes work-tree completion for a project
type ProjectProgress struct {
	ProjectID       string     `json:"project_id"`
	EpicsTotal      int        `json:"epics_total"`
	EpicsCompleted  int        `json:"epics_completed"`
	TasksTotal      int        `json:"tasks_total"`
	TasksDone       int        `json:"tasks_done"`
	TestsTotal      int        `json:"tests_total"`
	TestsPassing    int        `json:"tests_passing"`
	AllEpicsDone    bool       `json:"all_epics_done"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	ActiveSessionID string     `json:"active_session_id,omitempty"`
}

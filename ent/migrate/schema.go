// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentSessionsColumns holds the columns for the "agent_sessions" table.
	AgentSessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "session_number", Type: field.TypeInt},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"initializer", "coding", "review"}},
		{Name: "model", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "error", "interrupted"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "interruption_reason", Type: field.TypeString, Nullable: true},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "max_iterations", Type: field.TypeInt, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// AgentSessionsTable holds the schema information for the "agent_sessions" table.
	AgentSessionsTable = &schema.Table{
		Name:       "agent_sessions",
		Columns:    AgentSessionsColumns,
		PrimaryKey: []*schema.Column{AgentSessionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_sessions_projects_sessions",
				Columns:    []*schema.Column{AgentSessionsColumns[12]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentsession_project_id_session_number",
				Unique:  true,
				Columns: []*schema.Column{AgentSessionsColumns[12], AgentSessionsColumns[1]},
			},
			{
				Name:    "agentsession_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[12], AgentSessionsColumns[4]},
			},
			{
				Name:    "agentsession_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{AgentSessionsColumns[4], AgentSessionsColumns[6]},
			},
		},
	}
	// EpicsColumns holds the columns for the "epics" table.
	EpicsColumns = []*schema.Column{
		{Name: "epic_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed"}, Default: "pending"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// EpicsTable holds the schema information for the "epics" table.
	EpicsTable = &schema.Table{
		Name:       "epics",
		Columns:    EpicsColumns,
		PrimaryKey: []*schema.Column{EpicsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "epics_projects_epics",
				Columns:    []*schema.Column{EpicsColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "epic_project_id",
				Unique:  false,
				Columns: []*schema.Column{EpicsColumns[6]},
			},
			{
				Name:    "epic_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{EpicsColumns[6], EpicsColumns[4]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "spec_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "spec_path", Type: field.TypeString, Nullable: true},
		{Name: "local_path", Type: field.TypeString, Nullable: true},
		{Name: "settings", Type: field.TypeJSON, Nullable: true},
		{Name: "env_configured", Type: field.TypeBool, Default: false},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  true,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
			{
				Name:    "project_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[8]},
			},
		},
	}
	// PromptAnalysesColumns holds the columns for the "prompt_analyses" table.
	PromptAnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "projects_analyzed", Type: field.TypeJSON, Nullable: true},
		{Name: "sandbox_type", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "triggered_by", Type: field.TypeString, Default: "manual"},
		{Name: "date_range_start", Type: field.TypeTime, Nullable: true},
		{Name: "date_range_end", Type: field.TypeTime, Nullable: true},
		{Name: "sessions_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "patterns", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_impact_estimate", Type: field.TypeFloat64, Default: 0},
		{Name: "notes", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// PromptAnalysesTable holds the schema information for the "prompt_analyses" table.
	PromptAnalysesTable = &schema.Table{
		Name:       "prompt_analyses",
		Columns:    PromptAnalysesColumns,
		PrimaryKey: []*schema.Column{PromptAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptanalysis_status",
				Unique:  false,
				Columns: []*schema.Column{PromptAnalysesColumns[3]},
			},
			{
				Name:    "promptanalysis_created_at",
				Unique:  false,
				Columns: []*schema.Column{PromptAnalysesColumns[11]},
			},
		},
	}
	// PromptProposalsColumns holds the columns for the "prompt_proposals" table.
	PromptProposalsColumns = []*schema.Column{
		{Name: "proposal_id", Type: field.TypeString, Unique: true},
		{Name: "prompt_file", Type: field.TypeString},
		{Name: "section_name", Type: field.TypeString},
		{Name: "change_type", Type: field.TypeEnum, Enums: []string{"addition", "modification", "deletion"}},
		{Name: "original_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "proposed_text", Type: field.TypeString, Size: 2147483647},
		{Name: "rationale", Type: field.TypeString, Size: 2147483647},
		{Name: "evidence", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeInt},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"proposed", "accepted", "rejected", "implemented"}, Default: "proposed"},
		{Name: "applied_at", Type: field.TypeTime, Nullable: true},
		{Name: "applied_by", Type: field.TypeString, Nullable: true},
		{Name: "prompt_version_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "analysis_id", Type: field.TypeString},
	}
	// PromptProposalsTable holds the schema information for the "prompt_proposals" table.
	PromptProposalsTable = &schema.Table{
		Name:       "prompt_proposals",
		Columns:    PromptProposalsColumns,
		PrimaryKey: []*schema.Column{PromptProposalsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompt_proposals_prompt_analyses_proposals",
				Columns:    []*schema.Column{PromptProposalsColumns[14]},
				RefColumns: []*schema.Column{PromptAnalysesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "promptproposal_analysis_id",
				Unique:  false,
				Columns: []*schema.Column{PromptProposalsColumns[14]},
			},
			{
				Name:    "promptproposal_analysis_id_status",
				Unique:  false,
				Columns: []*schema.Column{PromptProposalsColumns[14], PromptProposalsColumns[9]},
			},
		},
	}
	// PromptVersionsColumns holds the columns for the "prompt_versions" table.
	PromptVersionsColumns = []*schema.Column{
		{Name: "version_id", Type: field.TypeString, Unique: true},
		{Name: "prompt_file", Type: field.TypeString},
		{Name: "version_label", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "active", Type: field.TypeBool, Default: false},
		{Name: "is_default", Type: field.TypeBool, Default: false},
		{Name: "performance", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// PromptVersionsTable holds the schema information for the "prompt_versions" table.
	PromptVersionsTable = &schema.Table{
		Name:       "prompt_versions",
		Columns:    PromptVersionsColumns,
		PrimaryKey: []*schema.Column{PromptVersionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "promptversion_prompt_file",
				Unique:  false,
				Columns: []*schema.Column{PromptVersionsColumns[1]},
			},
			{
				Name:    "promptversion_prompt_file_version_label",
				Unique:  true,
				Columns: []*schema.Column{PromptVersionsColumns[1], PromptVersionsColumns[2]},
			},
		},
	}
	// QualityChecksColumns holds the columns for the "quality_checks" table.
	QualityChecksColumns = []*schema.Column{
		{Name: "check_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"quick", "deep"}},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed"}, Default: "completed"},
		{Name: "overall_rating", Type: field.TypeInt},
		{Name: "metrics", Type: field.TypeJSON, Nullable: true},
		{Name: "critical_issues", Type: field.TypeJSON, Nullable: true},
		{Name: "warnings", Type: field.TypeJSON, Nullable: true},
		{Name: "review_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "prompt_improvements", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// QualityChecksTable holds the schema information for the "quality_checks" table.
	QualityChecksTable = &schema.Table{
		Name:       "quality_checks",
		Columns:    QualityChecksColumns,
		PrimaryKey: []*schema.Column{QualityChecksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "quality_checks_agent_sessions_quality_checks",
				Columns:    []*schema.Column{QualityChecksColumns[10]},
				RefColumns: []*schema.Column{AgentSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "qualitycheck_session_id_kind",
				Unique:  true,
				Columns: []*schema.Column{QualityChecksColumns[10], QualityChecksColumns[1]},
			},
			{
				Name:    "qualitycheck_kind_created_at",
				Unique:  false,
				Columns: []*schema.Column{QualityChecksColumns[1], QualityChecksColumns[9]},
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "task_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "action", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "done"}, Default: "pending"},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "epic_id", Type: field.TypeString},
		{Name: "project_id", Type: field.TypeString},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_epics_tasks",
				Columns:    []*schema.Column{TasksColumns[7]},
				RefColumns: []*schema.Column{EpicsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_epic_id",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7]},
			},
			{
				Name:    "task_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[8], TasksColumns[3]},
			},
			{
				Name:    "task_epic_id_sort_order",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[7], TasksColumns[4]},
			},
		},
	}
	// TestCasesColumns holds the columns for the "test_cases" table.
	TestCasesColumns = []*schema.Column{
		{Name: "test_id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "passing", "failing"}, Default: "pending"},
		{Name: "last_result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TestCasesTable holds the schema information for the "test_cases" table.
	TestCasesTable = &schema.Table{
		Name:       "test_cases",
		Columns:    TestCasesColumns,
		PrimaryKey: []*schema.Column{TestCasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_cases_tasks_tests",
				Columns:    []*schema.Column{TestCasesColumns[6]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testcase_task_id",
				Unique:  false,
				Columns: []*schema.Column{TestCasesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentSessionsTable,
		EpicsTable,
		ProjectsTable,
		PromptAnalysesTable,
		PromptProposalsTable,
		PromptVersionsTable,
		QualityChecksTable,
		TasksTable,
		TestCasesTable,
	}
)

func init() {
	AgentSessionsTable.ForeignKeys[0].RefTable = ProjectsTable
	EpicsTable.ForeignKeys[0].RefTable = ProjectsTable
	PromptProposalsTable.ForeignKeys[0].RefTable = PromptAnalysesTable
	QualityChecksTable.ForeignKeys[0].RefTable = AgentSessionsTable
	TasksTable.ForeignKeys[0].RefTable = EpicsTable
	TasksTable.ForeignKeys[1].RefTable = ProjectsTable
	TestCasesTable.ForeignKeys[0].RefTable = TasksTable
}

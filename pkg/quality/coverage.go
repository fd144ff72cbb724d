package quality

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/autoforge-dev/autoforge/pkg/services"
)

// EpicCoverage is the per-epic slice of a coverage report.
type EpicCoverage struct {
	EpicID          string  `json:"epic_id"`
	Name            string  `json:"name"`
	TotalTasks      int     `json:"total_tasks"`
	TasksWithTests  int     `json:"tasks_with_tests"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// CoverageReport summarizes how much of the generated work tree carries
// test cases. Produced once, after a successful initializer session.
type CoverageReport struct {
	TotalTasks      int            `json:"total_tasks"`
	TasksWithTests  int            `json:"tasks_with_tests"`
	CoveragePercent float64        `json:"coverage_percent"`
	Epics           []EpicCoverage `json:"epics"`
	Warnings        []string       `json:"warnings"`
}

// AnalyzeCoverage walks the project's epic/task/test tree and builds the
// coverage report. Epics where more than half the tasks lack tests get a
// warning.
func AnalyzeCoverage(ctx context.Context, items *services.WorkItemService, projectID string) (*CoverageReport, error) {
	epics, err := items.ListEpics(ctx, projectID)
	if err != nil {
		return nil, err
	}

	report := &CoverageReport{}
	for _, epic := range epics {
		tasks, err := items.ListTasks(ctx, epic.ID)
		if err != nil {
			return nil, err
		}

		ec := EpicCoverage{EpicID: epic.ID, Name: epic.Name, TotalTasks: len(tasks)}
		for _, task := range tasks {
			tests, err := items.ListTestCases(ctx, task.ID)
			if err != nil {
				return nil, err
			}
			if len(tests) > 0 {
				ec.TasksWithTests++
			}
		}
		if ec.TotalTasks > 0 {
			ec.CoveragePercent = float64(ec.TasksWithTests) / float64(ec.TotalTasks) * 100
		}
		if ec.TotalTasks > 0 && ec.CoveragePercent < 50 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("epic %q: %d of %d tasks have no test cases",
					epic.Name, ec.TotalTasks-ec.TasksWithTests, ec.TotalTasks))
		}

		report.TotalTasks += ec.TotalTasks
		report.TasksWithTests += ec.TasksWithTests
		report.Epics = append(report.Epics, ec)
	}

	if report.TotalTasks > 0 {
		report.CoveragePercent = float64(report.TasksWithTests) / float64(report.TotalTasks) * 100
	}
	return report, nil
}

// SaveCoverage stores the report under the project metadata key
// "test_coverage", preserving other metadata entries.
func SaveCoverage(ctx context.Context, projects *services.ProjectService, projectID string, report *CoverageReport) error {
	project, err := projects.GetProject(ctx, projectID)
	if err != nil {
		return err
	}

	// JSON round trip so the stored value matches what API reads return.
	raw, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode coverage report: %w", err)
	}
	var asMap map[string]any
	if err := json.Unmarshal(raw, &asMap); err != nil {
		return fmt.Errorf("failed to encode coverage report: %w", err)
	}

	metadata := project.Metadata
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata["test_coverage"] = asMap
	return projects.SetMetadata(ctx, projectID, metadata)
}

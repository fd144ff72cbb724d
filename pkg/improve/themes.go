// Package improve aggregates deep-review recommendations across projects
// and turns recurring themes into concrete prompt-change proposals.
package improve

import "strings"

// Theme taxonomy for bucketing recommendations.
const (
	ThemeBrowserVerification = "browser_verification"
	ThemeErrorHandling       = "error_handling"
	ThemeGitCommits          = "git_commits"
	ThemeTesting             = "testing"
	ThemeDocker              = "docker"
	ThemeParallelExecution   = "parallel_execution"
	ThemeTaskManagement      = "task_management"
	ThemeDocumentation       = "documentation"
	ThemeGeneral             = "general"
)

// themeKeywords buckets a recommendation into themes by substring match.
var themeKeywords = map[string][]string{
	ThemeBrowserVerification: {"browser", "playwright", "screenshot", "visual", "ui verification"},
	ThemeErrorHandling:       {"error handling", "exception", "retry", "failure", "error message"},
	ThemeGitCommits:          {"git", "commit", "version control"},
	ThemeTesting:             {"test", "assertion", "coverage"},
	ThemeDocker:              {"docker", "container", "image"},
	ThemeParallelExecution:   {"parallel", "concurrent", "simultaneously"},
	ThemeTaskManagement:      {"task", "epic", "todo", "work item", "priorit"},
	ThemeDocumentation:       {"document", "readme", "comment", "explain"},
}

// promptSections maps each theme to the prompt section a proposal
// targets.
var promptSections = map[string]string{
	ThemeBrowserVerification: "Browser Verification",
	ThemeErrorHandling:       "Error Handling",
	ThemeGitCommits:          "Version Control",
	ThemeTesting:             "Testing",
	ThemeDocker:              "Environment",
	ThemeParallelExecution:   "Workflow",
	ThemeTaskManagement:      "Task Management",
	ThemeDocumentation:       "Documentation",
	ThemeGeneral:             "General Guidance",
}

// BucketRecommendation assigns a recommendation to every matching theme;
// no match means general.
func BucketRecommendation(rec string) []string {
	lower := strings.ToLower(rec)
	var themes []string
	for theme, keywords := range themeKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				themes = append(themes, theme)
				break
			}
		}
	}
	if len(themes) == 0 {
		return []string{ThemeGeneral}
	}
	return themes
}

// SectionFor returns the prompt section a theme's proposals target.
func SectionFor(theme string) string {
	if s, ok := promptSections[theme]; ok {
		return s
	}
	return promptSections[ThemeGeneral]
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/autoforge-dev/autoforge/ent/agentsession"
	"github.com/autoforge-dev/autoforge/ent/epic"
	"github.com/autoforge-dev/autoforge/ent/project"
	"github.com/autoforge-dev/autoforge/ent/promptanalysis"
	"github.com/autoforge-dev/autoforge/ent/promptproposal"
	"github.com/autoforge-dev/autoforge/ent/promptversion"
	"github.com/autoforge-dev/autoforge/ent/qualitycheck"
	"github.com/autoforge-dev/autoforge/ent/schema"
	"github.com/autoforge-dev/autoforge/ent/task"
	"github.com/autoforge-dev/autoforge/ent/testcase"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentsessionFields := schema.AgentSession{}.Fields()
	_ = agentsessionFields
	// agentsessionDescCreatedAt is the schema descriptor for created_at field.
	agentsessionDescCreatedAt := agentsessionFields[6].Descriptor()
	// agentsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentsession.DefaultCreatedAt = agentsessionDescCreatedAt.Default.(func() time.Time)
	epicFields := schema.Epic{}.Fields()
	_ = epicFields
	// epicDescPriority is the schema descriptor for priority field.
	epicDescPriority := epicFields[4].Descriptor()
	// epic.DefaultPriority holds the default value on creation for the priority field.
	epic.DefaultPriority = epicDescPriority.Default.(int)
	// epicDescCreatedAt is the schema descriptor for created_at field.
	epicDescCreatedAt := epicFields[6].Descriptor()
	// epic.DefaultCreatedAt holds the default value on creation for the created_at field.
	epic.DefaultCreatedAt = epicDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.NameValidator is a validator for the "name" field. It is called by the builders before save.
	project.NameValidator = projectDescName.Validators[0].(func(string) error)
	// projectDescEnvConfigured is the schema descriptor for env_configured field.
	projectDescEnvConfigured := projectFields[6].Descriptor()
	// project.DefaultEnvConfigured holds the default value on creation for the env_configured field.
	project.DefaultEnvConfigured = projectDescEnvConfigured.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[8].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[9].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	promptanalysisFields := schema.PromptAnalysis{}.Fields()
	_ = promptanalysisFields
	// promptanalysisDescTriggeredBy is the schema descriptor for triggered_by field.
	promptanalysisDescTriggeredBy := promptanalysisFields[4].Descriptor()
	// promptanalysis.DefaultTriggeredBy holds the default value on creation for the triggered_by field.
	promptanalysis.DefaultTriggeredBy = promptanalysisDescTriggeredBy.Default.(string)
	// promptanalysisDescSessionsAnalyzed is the schema descriptor for sessions_analyzed field.
	promptanalysisDescSessionsAnalyzed := promptanalysisFields[7].Descriptor()
	// promptanalysis.DefaultSessionsAnalyzed holds the default value on creation for the sessions_analyzed field.
	promptanalysis.DefaultSessionsAnalyzed = promptanalysisDescSessionsAnalyzed.Default.(int)
	// promptanalysisDescQualityImpactEstimate is the schema descriptor for quality_impact_estimate field.
	promptanalysisDescQualityImpactEstimate := promptanalysisFields[9].Descriptor()
	// promptanalysis.DefaultQualityImpactEstimate holds the default value on creation for the quality_impact_estimate field.
	promptanalysis.DefaultQualityImpactEstimate = promptanalysisDescQualityImpactEstimate.Default.(float64)
	// promptanalysisDescCreatedAt is the schema descriptor for created_at field.
	promptanalysisDescCreatedAt := promptanalysisFields[11].Descriptor()
	// promptanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptanalysis.DefaultCreatedAt = promptanalysisDescCreatedAt.Default.(func() time.Time)
	promptproposalFields := schema.PromptProposal{}.Fields()
	_ = promptproposalFields
	// promptproposalDescConfidence is the schema descriptor for confidence field.
	promptproposalDescConfidence := promptproposalFields[9].Descriptor()
	// promptproposal.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	promptproposal.ConfidenceValidator = promptproposalDescConfidence.Validators[0].(func(int) error)
	// promptproposalDescCreatedAt is the schema descriptor for created_at field.
	promptproposalDescCreatedAt := promptproposalFields[14].Descriptor()
	// promptproposal.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptproposal.DefaultCreatedAt = promptproposalDescCreatedAt.Default.(func() time.Time)
	promptversionFields := schema.PromptVersion{}.Fields()
	_ = promptversionFields
	// promptversionDescActive is the schema descriptor for active field.
	promptversionDescActive := promptversionFields[4].Descriptor()
	// promptversion.DefaultActive holds the default value on creation for the active field.
	promptversion.DefaultActive = promptversionDescActive.Default.(bool)
	// promptversionDescIsDefault is the schema descriptor for is_default field.
	promptversionDescIsDefault := promptversionFields[5].Descriptor()
	// promptversion.DefaultIsDefault holds the default value on creation for the is_default field.
	promptversion.DefaultIsDefault = promptversionDescIsDefault.Default.(bool)
	// promptversionDescCreatedAt is the schema descriptor for created_at field.
	promptversionDescCreatedAt := promptversionFields[7].Descriptor()
	// promptversion.DefaultCreatedAt holds the default value on creation for the created_at field.
	promptversion.DefaultCreatedAt = promptversionDescCreatedAt.Default.(func() time.Time)
	qualitycheckFields := schema.QualityCheck{}.Fields()
	_ = qualitycheckFields
	// qualitycheckDescOverallRating is the schema descriptor for overall_rating field.
	qualitycheckDescOverallRating := qualitycheckFields[4].Descriptor()
	// qualitycheck.OverallRatingValidator is a validator for the "overall_rating" field. It is called by the builders before save.
	qualitycheck.OverallRatingValidator = qualitycheckDescOverallRating.Validators[0].(func(int) error)
	// qualitycheckDescCreatedAt is the schema descriptor for created_at field.
	qualitycheckDescCreatedAt := qualitycheckFields[10].Descriptor()
	// qualitycheck.DefaultCreatedAt holds the default value on creation for the created_at field.
	qualitycheck.DefaultCreatedAt = qualitycheckDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescSortOrder is the schema descriptor for sort_order field.
	taskDescSortOrder := taskFields[6].Descriptor()
	// task.DefaultSortOrder holds the default value on creation for the sort_order field.
	task.DefaultSortOrder = taskDescSortOrder.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[8].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	testcaseFields := schema.TestCase{}.Fields()
	_ = testcaseFields
	// testcaseDescCreatedAt is the schema descriptor for created_at field.
	testcaseDescCreatedAt := testcaseFields[5].Descriptor()
	// testcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	testcase.DefaultCreatedAt = testcaseDescCreatedAt.Default.(func() time.Time)
	// testcaseDescUpdatedAt is the schema descriptor for updated_at field.
	testcaseDescUpdatedAt := testcaseFields[6].Descriptor()
	// testcase.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	testcase.DefaultUpdatedAt = testcaseDescUpdatedAt.Default.(func() time.Time)
	// testcase.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	testcase.UpdateDefaultUpdatedAt = testcaseDescUpdatedAt.UpdateDefault.(func() time.Time)
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentSession is the predicate function for agentsession builders.
type AgentSession func(*sql.Selector)

// Epic is the predicate function for epic builders.
type Epic func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// PromptAnalysis is the predicate function for promptanalysis builders.
type PromptAnalysis func(*sql.Selector)

// PromptProposal is the predicate function for promptproposal builders.
type PromptProposal func(*sql.Selector)

// PromptVersion is the predicate function for promptversion builders.
type PromptVersion func(*sql.Selector)

// QualityCheck is the predicate function for qualitycheck builders.
type QualityCheck func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TestCase is the predicate function for testcase builders.
type TestCase func(*sql.Selector)

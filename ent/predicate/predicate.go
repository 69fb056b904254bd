// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentRecord is the predicate function for agentrecord builders.
type AgentRecord func(*sql.Selector)

// AnalysisJob is the predicate function for analysisjob builders.
type AnalysisJob func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/dealdesk/dealdesk/ent/agentrecord"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
	"github.com/dealdesk/dealdesk/ent/event"
	"github.com/dealdesk/dealdesk/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentrecordFields := schema.AgentRecord{}.Fields()
	_ = agentrecordFields
	// agentrecordDescCreatedAt is the schema descriptor for created_at field.
	agentrecordDescCreatedAt := agentrecordFields[11].Descriptor()
	// agentrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentrecord.DefaultCreatedAt = agentrecordDescCreatedAt.Default.(func() time.Time)
	analysisjobFields := schema.AnalysisJob{}.Fields()
	_ = analysisjobFields
	// analysisjobDescCreatedAt is the schema descriptor for created_at field.
	analysisjobDescCreatedAt := analysisjobFields[6].Descriptor()
	// analysisjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysisjob.DefaultCreatedAt = analysisjobDescCreatedAt.Default.(func() time.Time)
	// analysisjobDescProgressPercent is the schema descriptor for progress_percent field.
	analysisjobDescProgressPercent := analysisjobFields[11].Descriptor()
	// analysisjob.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	analysisjob.DefaultProgressPercent = analysisjobDescProgressPercent.Default.(int)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[3].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/home-central/backend/internal/validation"
)

func violatedFields(fields []validation.FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, fe := range fields {
		names = append(names, fe.Field)
	}
	return names
}

func TestProjectCreateValid(t *testing.T) {
	cost := 89.99
	req := ProjectCreate{
		Title:    "Replace kitchen faucet",
		Status:   StatusInProgress,
		Priority: PriorityHigh,
		Instructions: []InstructionStep{
			{Step: 1, Text: "Turn off water supply"},
			{Step: 2, Text: "Remove old faucet"},
		},
		Materials: []MaterialItem{
			{Name: "Moen faucet", Cost: &cost},
		},
	}

	assert.Nil(t, validation.Struct(&req))
}

func TestProjectCreateTitleRequired(t *testing.T) {
	req := ProjectCreate{}
	fields := validation.Struct(&req)
	require.NotEmpty(t, fields)
	assert.Contains(t, violatedFields(fields), "title")
}

func TestProjectCreateTitleTooLong(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'x'
	}

	req := ProjectCreate{Title: string(long)}
	fields := validation.Struct(&req)
	require.Len(t, fields, 1)
	assert.Equal(t, "max", fields[0].Rule)
}

func TestProjectCreateRejectsUnknownEnums(t *testing.T) {
	req := ProjectCreate{Title: "ok", Status: "paused", Priority: "urgent"}
	fields := validation.Struct(&req)
	require.Len(t, fields, 2)
	assert.ElementsMatch(t, []string{"status", "priority"}, violatedFields(fields))
}

func TestProjectCreateRejectsNegativeNumbers(t *testing.T) {
	negative := -1.0
	req := ProjectCreate{
		Title:                  "ok",
		EstimatedDurationHours: &negative,
		EstimatedCost:          &negative,
	}
	fields := validation.Struct(&req)
	assert.ElementsMatch(t,
		[]string{"estimated_duration_hours", "estimated_cost"},
		violatedFields(fields))
}

func TestProjectCreateValidatesNestedLists(t *testing.T) {
	negative := -5.0
	req := ProjectCreate{
		Title: "ok",
		Instructions: []InstructionStep{
			{Step: 0, Text: "missing step number"},
			{Step: 2, Text: ""},
		},
		Materials: []MaterialItem{
			{Name: "", Cost: &negative},
		},
	}

	fields := validation.Struct(&req)
	names := violatedFields(fields)
	assert.Contains(t, names, "instructions[0].step")
	assert.Contains(t, names, "instructions[1].text")
	assert.Contains(t, names, "materials[0].name")
	assert.Contains(t, names, "materials[0].cost")
}

func TestProjectCreateAggregatesAllViolations(t *testing.T) {
	negative := -2.5
	req := ProjectCreate{
		Status:        "paused",
		EstimatedCost: &negative,
	}
	fields := validation.Struct(&req)
	assert.GreaterOrEqual(t, len(fields), 3)
}

func TestApplyDefaults(t *testing.T) {
	req := ProjectCreate{Title: "Minimal project"}
	req.ApplyDefaults()

	assert.Equal(t, StatusPlanning, req.Status)
	assert.Equal(t, PriorityMedium, req.Priority)
	assert.NotNil(t, req.Instructions)
	assert.Empty(t, req.Instructions)
	assert.NotNil(t, req.Materials)
	assert.Empty(t, req.Materials)
}

func TestApplyDefaultsKeepsExplicitValues(t *testing.T) {
	zero := 0.0
	req := ProjectCreate{
		Title:     "Painted fence",
		Status:    StatusCompleted,
		Priority:  PriorityLow,
		Materials: []MaterialItem{{Name: "Paint", Quantity: &zero}},
	}
	req.ApplyDefaults()

	assert.Equal(t, StatusCompleted, req.Status)
	assert.Equal(t, PriorityLow, req.Priority)
	require.NotNil(t, req.Materials[0].Quantity)
	assert.Equal(t, 0.0, *req.Materials[0].Quantity)
}

func TestApplyDefaultsMaterialQuantity(t *testing.T) {
	req := ProjectCreate{
		Title:     "ok",
		Materials: []MaterialItem{{Name: "Screws"}},
	}
	req.ApplyDefaults()

	require.NotNil(t, req.Materials[0].Quantity)
	assert.Equal(t, 1.0, *req.Materials[0].Quantity)
}

func TestRecordForcesUserID(t *testing.T) {
	req := ProjectCreate{Title: "ok"}
	req.ApplyDefaults()

	record := req.Record("caller-id")
	assert.Equal(t, "caller-id", record["user_id"])
}

func TestRecordOmitsAbsentOptionalFields(t *testing.T) {
	req := ProjectCreate{Title: "ok"}
	req.ApplyDefaults()

	record := req.Record("caller-id")
	assert.NotContains(t, record, "description")
	assert.NotContains(t, record, "estimated_cost")
	assert.NotContains(t, record, "estimated_duration_hours")
}

func TestProjectUpdateAllFieldsOptional(t *testing.T) {
	req := ProjectUpdate{}
	assert.Nil(t, validation.Struct(&req))
}

func TestProjectUpdateRejectsEmptyTitle(t *testing.T) {
	empty := ""
	req := ProjectUpdate{Title: &empty}
	fields := validation.Struct(&req)
	require.Len(t, fields, 1)
	assert.Equal(t, "title", fields[0].Field)
}

func TestProjectUpdateRejectsUnknownStatus(t *testing.T) {
	bad := Status("archived")
	req := ProjectUpdate{Status: &bad}
	fields := validation.Struct(&req)
	require.Len(t, fields, 1)
	assert.Equal(t, "oneof", fields[0].Rule)
}

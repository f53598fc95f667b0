package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heyfarai/simplyteams/internal/domain"
	"github.com/heyfarai/simplyteams/internal/recurrence"
	"github.com/heyfarai/simplyteams/pkg/ptr"
)

func generatedProgram() *domain.Program {
	return &domain.Program{
		ID:             42,
		Name:           "Summer Hoops Camp",
		Type:           domain.ProgramCamp,
		StartDate:      time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
		StartTime:      "09:00",
		EndTime:        "15:00",
		Repeats:        true,
		Frequency:      domain.FrequencyDaily,
		RecurrenceEnds: domain.RecurrenceEndsNever,
		FacilityID:     ptr.Ptr(int64(7)),
	}
}

func TestBuildPlan_GeneratedProgram(t *testing.T) {
	plan, err := BuildPlan(generatedProgram(), false)
	require.NoError(t, err)

	assert.True(t, plan.DeleteExisting)
	assert.False(t, plan.ReplacesCustom)
	require.Len(t, plan.Creates, 5)

	for i, session := range plan.Creates {
		assert.Equal(t, int64(42), session.ProgramID)
		assert.Equal(t, time.Date(2024, time.January, 1+i, 0, 0, 0, 0, time.UTC), session.Date)
		assert.Equal(t, "09:00", session.StartTime.String())
		assert.Equal(t, "15:00", session.EndTime.String())
		require.NotNil(t, session.FacilityID)
		assert.Equal(t, int64(7), *session.FacilityID)
	}
}

func TestBuildPlan_CustomSessionsUntouched(t *testing.T) {
	program := generatedProgram()
	program.CustomSessions = true

	plan, err := BuildPlan(program, true)
	require.NoError(t, err)

	assert.True(t, plan.IsNoop())
}

func TestBuildPlan_CustomToGeneratedPurges(t *testing.T) {
	plan, err := BuildPlan(generatedProgram(), true)
	require.NoError(t, err)

	assert.True(t, plan.DeleteExisting)
	assert.True(t, plan.ReplacesCustom)
	assert.Len(t, plan.Creates, 5)
}

// Regenerating twice with identical parameters must produce the same final
// session set: the plan always replaces the full owned set, so applying it
// repeatedly cannot accumulate duplicates.
func TestBuildPlan_RegenerationIdempotent(t *testing.T) {
	program := generatedProgram()

	first, err := BuildPlan(program, false)
	require.NoError(t, err)

	second, err := BuildPlan(program, false)
	require.NoError(t, err)

	assert.True(t, second.DeleteExisting)
	assert.Equal(t, first.Creates, second.Creates)
}

func TestBuildPlan_InvalidRecurrence(t *testing.T) {
	program := generatedProgram()
	program.StartTime = ""

	_, err := BuildPlan(program, false)
	require.ErrorIs(t, err, recurrence.ErrInvalidInput)
}

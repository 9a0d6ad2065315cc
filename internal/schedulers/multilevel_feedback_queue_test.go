package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultilevelFeedbackQueueDemotesAfterFullSlice(t *testing.T) {
	specs := []core.ProcessSpec{proc("P1", 0, 8), proc("P2", 1, 3)}
	result, err := ScheduleMultilevelFeedbackQueue(specs, []int{2, 4})
	require.NoError(t, err)
	assertResultInvariants(t, specs, result)

	assert.Equal(t, []core.TimelineSegment{
		seg("P1", 0, 2), seg("P2", 2, 4), seg("P1", 4, 8), seg("P2", 8, 9), seg("P1", 9, 11),
	}, result.Timeline)
	assert.Equal(t, 11, resultByID(t, result, "P1").CompletionTime)
	assert.Equal(t, 9, resultByID(t, result, "P2").CompletionTime)
	assert.Equal(t, 4, result.ContextSwitches)
}

func TestMultilevelFeedbackQueueTextbook(t *testing.T) {
	specs := textbookProcesses()
	result, err := ScheduleMultilevelFeedbackQueue(specs, []int{2, 4})
	require.NoError(t, err)
	assertResultInvariants(t, specs, result)

	assert.Equal(t, []core.TimelineSegment{
		seg("P1", 0, 2), seg("P2", 2, 4), seg("P3", 4, 6),
		seg("P1", 6, 9), seg("P2", 9, 10), seg("P3", 10, 14), seg("P3", 14, 16),
	}, result.Timeline)
	assert.InDelta(t, 16.0/3.0, result.AverageWaitingTime, 1e-9)
}

func TestMultilevelFeedbackQueueWithoutLevelsIsFCFS(t *testing.T) {
	specs := textbookProcesses()
	fcfs, err := ScheduleFirstComeFirstServe(specs)
	require.NoError(t, err)
	mlfq, err := ScheduleMultilevelFeedbackQueue(specs, nil)
	require.NoError(t, err)
	assert.Equal(t, fcfs, mlfq)
}

func TestMultilevelFeedbackQueueRejectsBadLevels(t *testing.T) {
	_, err := ScheduleMultilevelFeedbackQueue(textbookProcesses(), []int{2, 0})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
	assert.Contains(t, err.Error(), "level 1")
}

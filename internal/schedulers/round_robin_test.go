package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundRobinScenario(t *testing.T) {
	specs := textbookProcesses()
	result, err := ScheduleRoundRobin(specs, 2)
	require.NoError(t, err)
	assertResultInvariants(t, specs, result)

	// P2 and P3 arrive during P1's first slice and are queued ahead of it
	assert.Equal(t, []core.TimelineSegment{
		seg("P1", 0, 2), seg("P2", 2, 4), seg("P3", 4, 6),
		seg("P1", 6, 8), seg("P2", 8, 9), seg("P3", 9, 11),
		seg("P1", 11, 12), seg("P3", 12, 14), seg("P3", 14, 16),
	}, result.Timeline)

	assert.Equal(t, 12, resultByID(t, result, "P1").CompletionTime)
	assert.Equal(t, 9, resultByID(t, result, "P2").CompletionTime)
	assert.Equal(t, 16, resultByID(t, result, "P3").CompletionTime)
	assert.InDelta(t, 6.0, result.AverageWaitingTime, 1e-9)
	assert.Equal(t, 7, result.ContextSwitches)
}

func TestRoundRobinArrivalsQueueBeforePreemptedProcess(t *testing.T) {
	specs := []core.ProcessSpec{proc("P1", 0, 4), proc("P2", 2, 2)}
	result, err := ScheduleRoundRobin(specs, 2)
	require.NoError(t, err)

	assert.Equal(t, []core.TimelineSegment{
		seg("P1", 0, 2), seg("P2", 2, 4), seg("P1", 4, 6),
	}, result.Timeline)
}

func TestRoundRobinWithLargeQuantumMatchesFCFS(t *testing.T) {
	specs := []core.ProcessSpec{proc("P3", 2, 8), proc("P1", 0, 5), proc("P2", 1, 3), proc("P4", 20, 2)}

	fcfs, err := ScheduleFirstComeFirstServe(specs)
	require.NoError(t, err)
	for _, quantum := range []int{8, 9, 100} {
		rr, err := ScheduleRoundRobin(specs, quantum)
		require.NoError(t, err)
		assert.Equal(t, fcfs, rr, "quantum %d", quantum)
	}
}

func TestRoundRobinRejectsNonPositiveQuantum(t *testing.T) {
	for _, quantum := range []int{0, -1} {
		_, err := ScheduleRoundRobin(textbookProcesses(), quantum)
		assert.ErrorIs(t, err, core.ErrInvalidInput)
	}
}

func TestRoundRobinEmptyInput(t *testing.T) {
	result, err := ScheduleRoundRobin(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, result.Timeline)
	assert.Empty(t, result.ProcessResults)
	assert.Zero(t, result.TotalTime)
}

package schedulers

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestRemainingTimeFirstScenario(t *testing.T) {
	specs := textbookProcesses()
	result, err := ScheduleShortestRemainingTimeFirst(specs)
	require.NoError(t, err)
	assertResultInvariants(t, specs, result)

	assert.Equal(t, []core.TimelineSegment{
		seg("P1", 0, 1), seg("P2", 1, 4), seg("P1", 4, 8), seg("P3", 8, 16),
	}, result.Timeline)
	assert.Equal(t, []string{"P1", "P2", "P3"}, resultIDs(result))

	assert.Equal(t, 8, resultByID(t, result, "P1").CompletionTime)
	assert.Equal(t, 4, resultByID(t, result, "P2").CompletionTime)
	assert.Equal(t, 16, resultByID(t, result, "P3").CompletionTime)
	assert.InDelta(t, 3.0, result.AverageWaitingTime, 1e-9)
	assert.Equal(t, 3, result.ContextSwitches)
}

func TestShortestRemainingTimeFirstTextbook(t *testing.T) {
	specs := []core.ProcessSpec{proc("P1", 0, 7), proc("P2", 2, 4), proc("P3", 4, 1), proc("P4", 5, 4)}
	result, err := ScheduleShortestRemainingTimeFirst(specs)
	require.NoError(t, err)
	assertResultInvariants(t, specs, result)

	assert.Equal(t, []core.TimelineSegment{
		seg("P1", 0, 2), seg("P2", 2, 4), seg("P3", 4, 5),
		seg("P2", 5, 7), seg("P4", 7, 11), seg("P1", 11, 16),
	}, result.Timeline)
	assert.InDelta(t, 3.0, result.AverageWaitingTime, 1e-9)
}

func TestShortestRemainingTimeFirstIdleTicks(t *testing.T) {
	specs := []core.ProcessSpec{proc("P1", 0, 2), proc("P2", 5, 1)}
	result, err := ScheduleShortestRemainingTimeFirst(specs)
	require.NoError(t, err)

	assert.Equal(t, []core.TimelineSegment{seg("P1", 0, 2), seg("P2", 5, 6)}, result.Timeline)
	assert.Equal(t, 6, result.TotalTime)
}

func TestShortestRemainingTimeFirstMatchesSJFWithoutPreemption(t *testing.T) {
	cases := map[string][]core.ProcessSpec{
		"single process":   {proc("P1", 3, 4)},
		"all arrive at 0":  {proc("P1", 0, 6), proc("P2", 0, 2), proc("P3", 0, 4), proc("P4", 0, 2)},
		"arrive when idle": {proc("P1", 0, 2), proc("P2", 4, 3), proc("P3", 10, 1)},
	}
	for name, specs := range cases {
		t.Run(name, func(t *testing.T) {
			sjf, err := ScheduleShortestJobFirst(specs)
			require.NoError(t, err)
			srtf, err := ScheduleShortestRemainingTimeFirst(specs)
			require.NoError(t, err)

			assert.Equal(t, sjf.Timeline, srtf.Timeline)
			assert.Equal(t, sortedResults(sjf), sortedResults(srtf))
			assert.Equal(t, sjf.AverageWaitingTime, srtf.AverageWaitingTime)
			assert.Equal(t, sjf.TotalTime, srtf.TotalTime)
		})
	}
}

package schedulers

import (
	"sort"
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func proc(id string, arrival, burst int) core.ProcessSpec {
	return core.ProcessSpec{ID: id, ArrivalTime: arrival, BurstTime: burst}
}

func procWithPriority(id string, arrival, burst, priority int) core.ProcessSpec {
	return core.ProcessSpec{ID: id, ArrivalTime: arrival, BurstTime: burst, Priority: intPtr(priority)}
}

func seg(id string, start, end int) core.TimelineSegment {
	return core.TimelineSegment{ProcessID: id, StartTime: start, EndTime: end}
}

// textbookProcesses is P1(0,5) P2(1,3) P3(2,8).
func textbookProcesses() []core.ProcessSpec {
	return []core.ProcessSpec{proc("P1", 0, 5), proc("P2", 1, 3), proc("P3", 2, 8)}
}

func resultIDs(result *core.SimulationResult) []string {
	ids := make([]string, 0, len(result.ProcessResults))
	for _, r := range result.ProcessResults {
		ids = append(ids, r.ID)
	}
	return ids
}

func resultByID(t *testing.T, result *core.SimulationResult, id string) core.ProcessResult {
	t.Helper()
	for _, r := range result.ProcessResults {
		if r.ID == id {
			return r
		}
	}
	require.Failf(t, "missing process", "no result for %s", id)
	return core.ProcessResult{}
}

func sortedResults(result *core.SimulationResult) []core.ProcessResult {
	out := append([]core.ProcessResult(nil), result.ProcessResults...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// assertResultInvariants checks the properties every algorithm must satisfy.
func assertResultInvariants(t *testing.T, specs []core.ProcessSpec, result *core.SimulationResult) {
	t.Helper()
	require.NotNil(t, result)
	require.Len(t, result.ProcessResults, len(specs))

	totalBurst := 0
	for _, spec := range specs {
		totalBurst += spec.BurstTime
	}

	busy := 0
	firstRun := map[string]int{}
	for i, s := range result.Timeline {
		assert.Greater(t, s.EndTime, s.StartTime, "segment %d is empty", i)
		if i > 0 {
			assert.GreaterOrEqual(t, s.StartTime, result.Timeline[i-1].EndTime, "segment %d overlaps", i)
		}
		if _, seen := firstRun[s.ProcessID]; !seen {
			firstRun[s.ProcessID] = s.StartTime
		}
		busy += s.Duration()
	}
	assert.Equal(t, totalBurst, busy)

	maxCompletion := 0
	seen := map[string]bool{}
	for _, r := range result.ProcessResults {
		assert.False(t, seen[r.ID], "duplicate result for %s", r.ID)
		seen[r.ID] = true

		assert.Equal(t, r.CompletionTime-r.ArrivalTime, r.TurnaroundTime)
		assert.Equal(t, r.TurnaroundTime-r.BurstTime, r.WaitingTime)
		assert.Equal(t, r.StartTime-r.ArrivalTime, r.ResponseTime)
		assert.GreaterOrEqual(t, r.WaitingTime, 0)
		assert.GreaterOrEqual(t, r.TurnaroundTime, r.BurstTime)
		assert.Equal(t, firstRun[r.ID], r.StartTime, "start time of %s", r.ID)
		if r.CompletionTime > maxCompletion {
			maxCompletion = r.CompletionTime
		}
	}
	assert.Equal(t, maxCompletion, result.TotalTime)
	if len(result.Timeline) > 0 {
		assert.Equal(t, result.Timeline[len(result.Timeline)-1].EndTime, result.TotalTime)
	}
	assert.Equal(t, result.TotalTime-totalBurst, result.IdleTime)
}

package schedulers

import (
	"fmt"
	"math/rand"
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomProcesses(rng *rand.Rand) []core.ProcessSpec {
	n := 1 + rng.Intn(8)
	specs := make([]core.ProcessSpec, n)
	for i := range specs {
		specs[i] = core.ProcessSpec{
			ID:          fmt.Sprintf("P%d", i+1),
			ArrivalTime: rng.Intn(12),
			BurstTime:   1 + rng.Intn(6),
		}
		if rng.Intn(5) > 0 {
			specs[i].Priority = intPtr(1 + rng.Intn(4))
		}
	}
	return specs
}

// tickReference advances one time unit per iteration and re-selects the minimum
// key every tick, extending the last segment when the same process keeps the CPU.
func tickReference(specs []core.ProcessSpec, key func(spec core.ProcessSpec, remaining int) int) ([]core.TimelineSegment, map[string]int) {
	remaining := make([]int, len(specs))
	for i, s := range specs {
		remaining[i] = s.BurstTime
	}
	completion := map[string]int{}
	timeline := []core.TimelineSegment{}
	last := -1

	for clock := 0; len(completion) < len(specs); clock++ {
		pick := -1
		for i, s := range specs {
			if s.ArrivalTime > clock || remaining[i] == 0 {
				continue
			}
			if pick < 0 {
				pick = i
				continue
			}
			ki, kp := key(s, remaining[i]), key(specs[pick], remaining[pick])
			if ki < kp || (ki == kp && s.ArrivalTime < specs[pick].ArrivalTime) {
				pick = i
			}
		}
		if pick < 0 {
			continue
		}

		if pick == last {
			timeline[len(timeline)-1].EndTime++
		} else {
			timeline = append(timeline, core.TimelineSegment{ProcessID: specs[pick].ID, StartTime: clock, EndTime: clock + 1})
			last = pick
		}
		remaining[pick]--
		if remaining[pick] == 0 {
			completion[specs[pick].ID] = clock + 1
		}
	}
	return timeline, completion
}

func TestPreemptiveSchedulersMatchTickSimulation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	remaining := func(_ core.ProcessSpec, remaining int) int { return remaining }
	priority := func(spec core.ProcessSpec, _ int) int {
		if spec.Priority == nil {
			return 0
		}
		return *spec.Priority
	}

	for i := 0; i < 200; i++ {
		specs := randomProcesses(rng)

		srtf, err := ScheduleShortestRemainingTimeFirst(specs)
		require.NoError(t, err)
		wantTimeline, wantCompletion := tickReference(specs, remaining)
		require.Equal(t, wantTimeline, srtf.Timeline, "srtf input %+v", specs)
		for _, r := range srtf.ProcessResults {
			assert.Equal(t, wantCompletion[r.ID], r.CompletionTime)
		}

		pp, err := SchedulePriorityPreemptive(specs)
		require.NoError(t, err)
		wantTimeline, wantCompletion = tickReference(specs, priority)
		require.Equal(t, wantTimeline, pp.Timeline, "priority input %+v", specs)
		for _, r := range pp.ProcessResults {
			assert.Equal(t, wantCompletion[r.ID], r.CompletionTime)
		}
	}
}

func TestInvariantsHoldForRandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		specs := randomProcesses(rng)
		opts := Options{TimeQuantum: 1 + rng.Intn(4), LevelsTimeQuantum: []int{1 + rng.Intn(3), 2 + rng.Intn(4)}}

		for _, algorithm := range Algorithms() {
			result, err := Simulate(specs, algorithm, opts)
			require.NoError(t, err)
			assertResultInvariants(t, specs, result)
		}
	}
}

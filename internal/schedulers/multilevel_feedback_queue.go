package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleMultilevelFeedbackQueue runs one round robin level per entry of
// levelsTimeQuantum followed by a final FCFS level. New processes enter the top
// level; a process that uses its whole slice without finishing drops one level.
// The highest non-empty level is always served and slices are never interrupted.
// Results are in arrival order.
func ScheduleMultilevelFeedbackQueue(processes []core.ProcessSpec, levelsTimeQuantum []int) (*core.SimulationResult, error) {
	for i, quantum := range levelsTimeQuantum {
		if err := core.ValidateQuantum(fmt.Sprintf("level %d time quantum", i), quantum); err != nil {
			return nil, fmt.Errorf("mlfq: %w", err)
		}
	}
	table, err := core.NewProcessTable(processes)
	if err != nil {
		return nil, err
	}

	lastLevel := len(levelsTimeQuantum)
	levels := make([]*core.FIFOQueue, lastLevel+1)
	for i := range levels {
		levels[i] = core.NewFIFOQueue()
	}
	admit := func(p *core.Process) {
		p.Level = 0
		levels[0].PushBack(p)
	}

	cpu := core.NewCPU(false)
	jobs := table.ByArrival()
	feed := core.NewArrivalFeed(jobs)
	done := 0

	for done < table.Len() {
		feed.AdmitUntil(cpu.Clock(), admit)

		level := highestNonEmpty(levels)
		if level < 0 {
			next, ok := feed.NextArrival()
			if !ok {
				break
			}
			cpu.IdleUntil(next)
			continue
		}

		p := levels[level].PopFront()
		slice := p.Remaining
		if level < lastLevel {
			slice = min(levelsTimeQuantum[level], p.Remaining)
		}
		cpu.Execute(p, slice)

		feed.AdmitUntil(cpu.Clock(), admit)

		if p.Done() {
			done++
			continue
		}
		// only reachable when the whole quantum was used
		if p.Level < lastLevel {
			p.Level++
		}
		levels[p.Level].PushBack(p)
	}

	return generateResult(table, cpu, jobs), nil
}

func highestNonEmpty(levels []*core.FIFOQueue) int {
	for i, queue := range levels {
		if queue.Len() > 0 {
			return i
		}
	}
	return -1
}

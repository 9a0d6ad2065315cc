package schedulers

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

// ScheduleRoundRobin serves a FIFO ready queue with slices of at most timeQuantum.
// Processes arriving during a slice are queued before the preempted process is put
// back. Every slice is its own segment. Results are in arrival order.
func ScheduleRoundRobin(processes []core.ProcessSpec, timeQuantum int) (*core.SimulationResult, error) {
	if err := core.ValidateQuantum("time quantum", timeQuantum); err != nil {
		return nil, fmt.Errorf("round robin: %w", err)
	}
	table, err := core.NewProcessTable(processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU(false)
	jobs := table.ByArrival()
	feed := core.NewArrivalFeed(jobs)
	queue := core.NewFIFOQueue()
	done := 0

	for done < table.Len() {
		feed.AdmitUntil(cpu.Clock(), queue.PushBack)

		if queue.Len() == 0 {
			next, ok := feed.NextArrival()
			if !ok {
				break
			}
			cpu.IdleUntil(next)
			continue
		}

		p := queue.PopFront()
		cpu.Execute(p, min(timeQuantum, p.Remaining))

		// arrivals go ahead of the process that just used its slice
		feed.AdmitUntil(cpu.Clock(), queue.PushBack)

		if p.Done() {
			done++
		} else {
			queue.PushBack(p)
		}
	}

	return generateResult(table, cpu, jobs), nil
}

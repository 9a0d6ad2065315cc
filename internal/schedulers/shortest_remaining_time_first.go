package schedulers

import "cpu-scheduler/internal/core"

// ScheduleShortestRemainingTimeFirst is preemptive SJF. The eligible process with the
// least remaining time holds the CPU; contiguous runs of one process form a single
// segment. Results are in input order.
func ScheduleShortestRemainingTimeFirst(processes []core.ProcessSpec) (*core.SimulationResult, error) {
	return schedulePreemptive(processes, remainingKey)
}

func remainingKey(p *core.Process) int {
	return p.Remaining
}

// schedulePreemptive produces the same timeline as a one-unit-per-tick simulation
// that re-selects the minimum key every tick. Between two arrivals the running
// process stays the minimum (its key only shrinks or is fixed), so the choice is
// re-evaluated only at arrival and completion events.
func schedulePreemptive(processes []core.ProcessSpec, key func(*core.Process) int) (*core.SimulationResult, error) {
	table, err := core.NewProcessTable(processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU(true)
	feed := core.NewArrivalFeed(table.ByArrival())
	ready := core.NewReadyHeap(key)
	done := 0

	for done < table.Len() {
		feed.AdmitUntil(cpu.Clock(), ready.Push)

		next, pending := feed.NextArrival()
		if ready.Len() == 0 {
			if !pending {
				break
			}
			cpu.IdleUntil(next)
			continue
		}

		p := ready.Pop()
		run := p.Remaining
		if pending && next-cpu.Clock() < run {
			run = next - cpu.Clock()
		}
		cpu.Execute(p, run)

		if p.Done() {
			done++
		} else {
			ready.Push(p)
		}
	}

	return generateResult(table, cpu, table.Ordered()), nil
}

package schedulers

import "cpu-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive: at every decision point the eligible
// process with the smallest burst runs to completion. Results are in completion order.
func ScheduleShortestJobFirst(processes []core.ProcessSpec) (*core.SimulationResult, error) {
	return scheduleNonPreemptive(processes, burstKey)
}

func burstKey(p *core.Process) int {
	return p.Spec.BurstTime
}

// scheduleNonPreemptive repeatedly picks the eligible process with the smallest key
// (then earliest arrival, then input order) and runs it to completion.
func scheduleNonPreemptive(processes []core.ProcessSpec, key func(*core.Process) int) (*core.SimulationResult, error) {
	table, err := core.NewProcessTable(processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU(false)
	feed := core.NewArrivalFeed(table.ByArrival())
	ready := core.NewReadyHeap(key)
	completed := make([]*core.Process, 0, table.Len())

	for len(completed) < table.Len() {
		feed.AdmitUntil(cpu.Clock(), ready.Push)

		if ready.Len() == 0 {
			next, ok := feed.NextArrival()
			if !ok {
				break
			}
			cpu.IdleUntil(next)
			continue
		}

		p := ready.Pop()
		cpu.Execute(p, p.Remaining)
		completed = append(completed, p)
	}

	return generateResult(table, cpu, completed), nil
}

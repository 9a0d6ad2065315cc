package schedulers

import "cpu-scheduler/internal/core"

// SchedulePriorityNonPreemptive runs the eligible process with the lowest priority
// number to completion. A missing priority counts as 0. Results are in completion order.
func SchedulePriorityNonPreemptive(processes []core.ProcessSpec) (*core.SimulationResult, error) {
	return scheduleNonPreemptive(processes, priorityKey)
}

// SchedulePriorityPreemptive lets a newly arrived process with a lower priority number
// take the CPU immediately. Results are in input order.
func SchedulePriorityPreemptive(processes []core.ProcessSpec) (*core.SimulationResult, error) {
	return schedulePreemptive(processes, priorityKey)
}

func priorityKey(p *core.Process) int {
	return p.PriorityValue()
}

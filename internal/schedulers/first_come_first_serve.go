package schedulers

import "cpu-scheduler/internal/core"

// ScheduleFirstComeFirstServe runs processes to completion in arrival order,
// ties broken by input order. Results are reported in that same order.
func ScheduleFirstComeFirstServe(processes []core.ProcessSpec) (*core.SimulationResult, error) {
	table, err := core.NewProcessTable(processes)
	if err != nil {
		return nil, err
	}

	cpu := core.NewCPU(false)
	jobs := table.ByArrival()
	for _, p := range jobs {
		cpu.IdleUntil(p.Spec.ArrivalTime)
		cpu.Execute(p, p.Remaining)
	}

	return generateResult(table, cpu, jobs), nil
}

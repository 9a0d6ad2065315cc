package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/util"
)

// generateResult derives per-process metrics in the given order and the aggregate
// statistics of the run.
func generateResult(table *core.ProcessTable, cpu *core.CPU, order []*core.Process) *core.SimulationResult {
	details := make([]core.ProcessResult, 0, len(order))
	totalTime := 0
	for _, p := range order {
		details = append(details, p.Result())
		if p.CompletionTime > totalTime {
			totalTime = p.CompletionTime
		}
	}

	averageWaitingTime, averageResponseTime, averageTurnaroundTime := util.CalculateAverage(details)
	timeline := cpu.Timeline()

	result := &core.SimulationResult{
		ProcessResults:        details,
		Timeline:              timeline,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnaroundTime: averageTurnaroundTime,
		AverageResponseTime:   averageResponseTime,
		TotalTime:             totalTime,
		IdleTime:              totalTime - table.TotalBurst(),
		ContextSwitches:       countContextSwitches(timeline),
	}
	if totalTime > 0 {
		result.CPUUtilization = float64(cpu.BusyTime()) / float64(totalTime)
		result.Throughput = float64(table.Len()) / float64(totalTime)
	}
	return result
}

func countContextSwitches(timeline []core.TimelineSegment) int {
	switches := 0
	for i := 1; i < len(timeline); i++ {
		if timeline[i].ProcessID != timeline[i-1].ProcessID {
			switches++
		}
	}
	return switches
}

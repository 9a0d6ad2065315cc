package util

import "cpu-scheduler/internal/core"

// CalculateAverage returns the mean waiting, response and turnaround times.
// An empty set yields zero averages.
func CalculateAverage(processDetails []core.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnaroundTime float64) {
	if len(processDetails) == 0 {
		return 0, 0, 0
	}

	var waitingTimeSum int
	var responseTimeSum int
	var turnaroundTimeSum int

	for _, process := range processDetails {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnaroundTimeSum += process.TurnaroundTime
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnaroundTime = float64(turnaroundTimeSum) / processCount
	return
}

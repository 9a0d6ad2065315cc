package responses

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
	"github.com/google/uuid"
)

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       *int   `json:"priority,omitempty"`
	StartTime      int    `json:"start_time"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

type TimelineSegment struct {
	ProcessId string `json:"process_id"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id"`
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches"`
	Details               []ProcessResponse `json:"details"`
	Timeline              []TimelineSegment `json:"timeline"`
}

type CompareResponse struct {
	RunId              string             `json:"run_id"`
	Results            []ScheduleResponse `json:"results"`
	BestWaitingTime    string             `json:"best_waiting_time"`
	BestTurnAroundTime string             `json:"best_turn_around_time"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewRunId returns the identifier attached to every simulation response.
func NewRunId() string {
	return uuid.New().String()
}

func NewScheduleResponse(runId string, algorithm schedulers.Algorithm, result *core.SimulationResult) ScheduleResponse {
	details := make([]ProcessResponse, 0, len(result.ProcessResults))
	for _, p := range result.ProcessResults {
		details = append(details, ProcessResponse{
			ProcessId:      p.ID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			StartTime:      p.StartTime,
			CompletionTime: p.CompletionTime,
			TurnAroundTime: p.TurnaroundTime,
			WaitingTime:    p.WaitingTime,
			ResponseTime:   p.ResponseTime,
		})
	}

	timeline := make([]TimelineSegment, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		timeline = append(timeline, TimelineSegment{
			ProcessId: s.ProcessID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	return ScheduleResponse{
		RunId:                 runId,
		Algorithm:             string(algorithm),
		TotalTime:             result.TotalTime,
		IdleTime:              result.IdleTime,
		AverageWaitingTime:    result.AverageWaitingTime,
		AverageResponseTime:   result.AverageResponseTime,
		AverageTurnAroundTime: result.AverageTurnaroundTime,
		CpuUtilization:        result.CPUUtilization,
		CpuThroughput:         result.Throughput,
		ContextSwitches:       result.ContextSwitches,
		Details:               details,
		Timeline:              timeline,
	}
}

func NewCompareResponse(runId string, comparisons []schedulers.Comparison) CompareResponse {
	response := CompareResponse{
		RunId:   runId,
		Results: make([]ScheduleResponse, 0, len(comparisons)),
	}
	for _, c := range comparisons {
		response.Results = append(response.Results, NewScheduleResponse(runId, c.Algorithm, c.Result))
	}
	if best, ok := schedulers.Best(comparisons, schedulers.MetricWaitingTime); ok {
		response.BestWaitingTime = string(best.Algorithm)
	}
	if best, ok := schedulers.Best(comparisons, schedulers.MetricTurnaroundTime); ok {
		response.BestTurnAroundTime = string(best.Algorithm)
	}
	return response
}

package requests

import (
	"fmt"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
)

type Process struct {
	ProcessId   string `json:"process_id" yaml:"process_id"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
}

type ScheduleRequest struct {
	Algorithm         string    `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	TimeQuantum       int       `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	LevelsTimeQuantum []int     `json:"levels_time_quantum,omitempty" yaml:"levels_time_quantum,omitempty"`
	Processes         []Process `json:"processes" yaml:"processes"`
}

// Specs converts the request processes to engine descriptors, keeping input order.
func (r *ScheduleRequest) Specs() []core.ProcessSpec {
	specs := make([]core.ProcessSpec, 0, len(r.Processes))
	for _, p := range r.Processes {
		specs = append(specs, core.ProcessSpec{
			ID:          p.ProcessId,
			ArrivalTime: p.ArrivalTime,
			BurstTime:   p.BurstTime,
			Priority:    p.Priority,
		})
	}
	return specs
}

// Options returns the algorithm parameters carried by the request.
func (r *ScheduleRequest) Options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:       r.TimeQuantum,
		LevelsTimeQuantum: r.LevelsTimeQuantum,
	}
}

// Validate rejects user input before it reaches the engine. On top of the engine's
// own checks it requires a priority >= 1 for priority algorithms.
func (r *ScheduleRequest) Validate(algorithm schedulers.Algorithm) error {
	if err := core.ValidateProcesses(r.Specs()); err != nil {
		return err
	}
	if algorithm.UsesTimeQuantum() {
		if err := core.ValidateQuantum("time quantum", r.TimeQuantum); err != nil {
			return err
		}
	}
	if algorithm.UsesPriority() {
		for _, p := range r.Processes {
			if p.Priority == nil {
				return &core.InputError{ProcessID: p.ProcessId, Field: "priority", Reason: "is required"}
			}
			if *p.Priority < 1 {
				return &core.InputError{ProcessID: p.ProcessId, Field: "priority", Reason: "must be >= 1"}
			}
		}
	}
	if algorithm == schedulers.MultilevelFeedbackQueue {
		for i, quantum := range r.LevelsTimeQuantum {
			if err := core.ValidateQuantum(fmt.Sprintf("level %d time quantum", i), quantum); err != nil {
				return err
			}
		}
	}
	return nil
}

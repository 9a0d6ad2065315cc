package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cpu-scheduler/internal/core"
)

// Algorithm names a scheduling policy.
type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "FCFS"
	ShortestJobFirst           Algorithm = "SJF"
	ShortestRemainingTimeFirst Algorithm = "SRTF"
	RoundRobin                 Algorithm = "RR"
	PriorityNonPreemptive      Algorithm = "Priority-NonPreemptive"
	PriorityPreemptive         Algorithm = "Priority-Preemptive"
	MultilevelFeedbackQueue    Algorithm = "MLFQ"
)

// ErrUnknownAlgorithm is returned when an algorithm name is not recognised.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithms lists every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{
		FirstComeFirstServe,
		ShortestJobFirst,
		ShortestRemainingTimeFirst,
		RoundRobin,
		PriorityNonPreemptive,
		PriorityPreemptive,
		MultilevelFeedbackQueue,
	}
}

// ParseAlgorithm resolves a name case-insensitively. A few common aliases are accepted.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return FirstComeFirstServe, nil
	case "sjf":
		return ShortestJobFirst, nil
	case "srtf":
		return ShortestRemainingTimeFirst, nil
	case "rr", "round-robin":
		return RoundRobin, nil
	case "priority-nonpreemptive", "priority", "priority-np":
		return PriorityNonPreemptive, nil
	case "priority-preemptive", "priority-p":
		return PriorityPreemptive, nil
	case "mlfq":
		return MultilevelFeedbackQueue, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// UsesPriority reports whether the algorithm orders processes by priority.
func (a Algorithm) UsesPriority() bool {
	return a == PriorityNonPreemptive || a == PriorityPreemptive
}

// UsesTimeQuantum reports whether the algorithm needs Options.TimeQuantum.
func (a Algorithm) UsesTimeQuantum() bool {
	return a == RoundRobin
}

// Options carries algorithm parameters.
type Options struct {
	// TimeQuantum is the Round Robin slice length.
	TimeQuantum int
	// LevelsTimeQuantum are the MLFQ round robin levels, a final FCFS level is implied.
	LevelsTimeQuantum []int
}

// Simulate runs the selected algorithm over processes. The input is never mutated
// and every call is independent of every other.
func Simulate(processes []core.ProcessSpec, algorithm Algorithm, opts Options) (*core.SimulationResult, error) {
	slog.Debug("running scheduler",
		"algorithm", string(algorithm),
		"processes", len(processes),
		"time_quantum", opts.TimeQuantum)

	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, opts.TimeQuantum)
	case PriorityNonPreemptive:
		return SchedulePriorityNonPreemptive(processes)
	case PriorityPreemptive:
		return SchedulePriorityPreemptive(processes)
	case MultilevelFeedbackQueue:
		return ScheduleMultilevelFeedbackQueue(processes, opts.LevelsTimeQuantum)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
}

package core

import "sort"

// ProcessSpec is a caller supplied process descriptor.
type ProcessSpec struct {
	ID          string
	ArrivalTime int
	BurstTime   int
	// Priority is optional. Lower value means higher priority.
	Priority *int
}

// ProcessResult is a ProcessSpec with the metrics derived by a simulation.
type ProcessResult struct {
	ProcessSpec
	StartTime      int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

// TimelineSegment is a contiguous run of one process on the CPU.
type TimelineSegment struct {
	ProcessID string
	StartTime int
	EndTime   int
}

// Duration returns the number of time units covered by the segment.
func (s TimelineSegment) Duration() int {
	return s.EndTime - s.StartTime
}

type SimulationResult struct {
	ProcessResults        []ProcessResult
	Timeline              []TimelineSegment
	AverageWaitingTime    float64
	AverageTurnaroundTime float64
	AverageResponseTime   float64
	TotalTime             int
	IdleTime              int
	CPUUtilization        float64
	Throughput            float64
	ContextSwitches       int
}

// Process is the mutable simulation state of one submitted process.
type Process struct {
	Spec  ProcessSpec
	Index int // position in the caller's input

	Remaining      int
	Started        bool
	StartTime      int
	CompletionTime int

	// Level is the feedback queue level, only used by MLFQ.
	Level int
}

// PriorityValue returns the process priority, a missing priority counts as 0.
func (p *Process) PriorityValue() int {
	if p.Spec.Priority == nil {
		return 0
	}
	return *p.Spec.Priority
}

func (p *Process) Done() bool {
	return p.Remaining == 0
}

// Result derives the per-process metrics. Only meaningful once Done.
func (p *Process) Result() ProcessResult {
	turnaround := p.CompletionTime - p.Spec.ArrivalTime
	return ProcessResult{
		ProcessSpec:    p.Spec,
		StartTime:      p.StartTime,
		CompletionTime: p.CompletionTime,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.Spec.BurstTime,
		ResponseTime:   p.StartTime - p.Spec.ArrivalTime,
	}
}

// ProcessTable owns the simulation state of every submitted process, keyed by id.
type ProcessTable struct {
	byID    map[string]*Process
	ordered []*Process
}

// NewProcessTable validates specs and clones them into fresh simulation state.
// The caller's slice and priority pointers are never retained.
func NewProcessTable(specs []ProcessSpec) (*ProcessTable, error) {
	if err := ValidateProcesses(specs); err != nil {
		return nil, err
	}

	table := &ProcessTable{
		byID:    make(map[string]*Process, len(specs)),
		ordered: make([]*Process, 0, len(specs)),
	}
	for i, spec := range specs {
		if spec.Priority != nil {
			priority := *spec.Priority
			spec.Priority = &priority
		}
		process := &Process{
			Spec:      spec,
			Index:     i,
			Remaining: spec.BurstTime,
		}
		table.byID[spec.ID] = process
		table.ordered = append(table.ordered, process)
	}
	return table, nil
}

func (t *ProcessTable) Len() int {
	return len(t.ordered)
}

// Get returns the state of the process with the given id.
func (t *ProcessTable) Get(id string) (*Process, bool) {
	p, ok := t.byID[id]
	return p, ok
}

// Ordered returns the processes in input order.
func (t *ProcessTable) Ordered() []*Process {
	out := make([]*Process, len(t.ordered))
	copy(out, t.ordered)
	return out
}

// ByArrival returns the processes ordered by arrival time, ties by input order.
func (t *ProcessTable) ByArrival() []*Process {
	out := t.Ordered()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Spec.ArrivalTime != out[j].Spec.ArrivalTime {
			return out[i].Spec.ArrivalTime < out[j].Spec.ArrivalTime
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// TotalBurst returns the CPU time required by all processes.
func (t *ProcessTable) TotalBurst() int {
	total := 0
	for _, p := range t.ordered {
		total += p.Spec.BurstTime
	}
	return total
}

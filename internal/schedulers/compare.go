package schedulers

import (
	"fmt"
	"sync"

	"cpu-scheduler/internal/core"
)

// Comparison is the outcome of one algorithm in a side-by-side run.
type Comparison struct {
	Algorithm Algorithm
	Result    *core.SimulationResult
}

// CompareAlgorithms runs each algorithm on the same process set concurrently.
// With no algorithms given, every supported algorithm is run. The first error in
// the requested order is returned and no comparisons are produced.
func CompareAlgorithms(processes []core.ProcessSpec, opts Options, algorithms ...Algorithm) ([]Comparison, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms()
	}

	comparisons := make([]Comparison, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm Algorithm) {
			defer wg.Done()
			result, err := Simulate(processes, algorithm, opts)
			comparisons[i] = Comparison{Algorithm: algorithm, Result: result}
			errs[i] = err
		}(i, algorithm)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithms[i], err)
		}
	}
	return comparisons, nil
}

// Metric selects the statistic Best minimises.
type Metric string

const (
	MetricWaitingTime    Metric = "waiting"
	MetricTurnaroundTime Metric = "turnaround"
	MetricResponseTime   Metric = "response"
)

// Best returns the comparison with the lowest value of metric. Ties keep the
// earliest entry. ok is false for an empty slice.
func Best(comparisons []Comparison, metric Metric) (best Comparison, ok bool) {
	for _, c := range comparisons {
		if !ok || metricValue(c.Result, metric) < metricValue(best.Result, metric) {
			best, ok = c, true
		}
	}
	return best, ok
}

func metricValue(result *core.SimulationResult, metric Metric) float64 {
	switch metric {
	case MetricTurnaroundTime:
		return result.AverageTurnaroundTime
	case MetricResponseTime:
		return result.AverageResponseTime
	default:
		return result.AverageWaitingTime
	}
}

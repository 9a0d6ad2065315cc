package metrics

import (
	"cpu-scheduler/internal/core"
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder exports statistics about the simulations served.
type Recorder struct {
	simulations       *prometheus.CounterVec
	failures          *prometheus.CounterVec
	processes         prometheus.Histogram
	averageWaiting    *prometheus.GaugeVec
	averageTurnaround *prometheus.GaugeVec
	cpuUtilization    *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		simulations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulations_total",
			Help: "Completed simulations by algorithm",
		}, []string{"algorithm"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "scheduler_simulation_failures_total",
			Help: "Rejected simulations by algorithm",
		}, []string{"algorithm"}),
		processes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "scheduler_simulation_processes",
			Help:    "Number of processes per simulation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
		averageWaiting: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_last_average_waiting_time",
			Help: "Average waiting time of the latest simulation",
		}, []string{"algorithm"}),
		averageTurnaround: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_last_average_turnaround_time",
			Help: "Average turnaround time of the latest simulation",
		}, []string{"algorithm"}),
		cpuUtilization: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "scheduler_last_cpu_utilization",
			Help: "CPU utilization (0-1) of the latest simulation",
		}, []string{"algorithm"}),
	}

	reg.MustRegister(
		r.simulations,
		r.failures,
		r.processes,
		r.averageWaiting,
		r.averageTurnaround,
		r.cpuUtilization,
	)
	return r
}

func (r *Recorder) ObserveSimulation(algorithm string, result *core.SimulationResult) {
	r.simulations.WithLabelValues(algorithm).Inc()
	r.processes.Observe(float64(len(result.ProcessResults)))
	r.averageWaiting.WithLabelValues(algorithm).Set(result.AverageWaitingTime)
	r.averageTurnaround.WithLabelValues(algorithm).Set(result.AverageTurnaroundTime)
	r.cpuUtilization.WithLabelValues(algorithm).Set(result.CPUUtilization)
}

func (r *Recorder) ObserveFailure(algorithm string) {
	r.failures.WithLabelValues(algorithm).Inc()
}

package metrics

import (
	"testing"

	"cpu-scheduler/internal/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)

	result := &core.SimulationResult{
		ProcessResults:        make([]core.ProcessResult, 3),
		AverageWaitingTime:    3,
		AverageTurnaroundTime: 8.5,
		CPUUtilization:        0.75,
	}
	r.ObserveSimulation("SRTF", result)
	r.ObserveSimulation("SRTF", result)
	r.ObserveFailure("RR")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.simulations.WithLabelValues("SRTF")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("RR")))
	assert.Equal(t, 3.0, testutil.ToFloat64(r.averageWaiting.WithLabelValues("SRTF")))
	assert.Equal(t, 8.5, testutil.ToFloat64(r.averageTurnaround.WithLabelValues("SRTF")))
	assert.Equal(t, 0.75, testutil.ToFloat64(r.cpuUtilization.WithLabelValues("SRTF")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.processes))
}

// Package report renders simulation results for terminals.
package report

import (
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"
	"github.com/olekukonko/tablewriter"
)

// RenderSchedule writes a title, the Gantt chart and the per-process table.
func RenderSchedule(w io.Writer, title string, result *core.SimulationResult) {
	_, _ = fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("-", len(title)))
	RenderGantt(w, result.Timeline)
	RenderTable(w, result)
}

// RenderGantt draws one cell per timeline segment with the boundaries below.
// Idle gaps show up as a jump between consecutive boundaries.
func RenderGantt(w io.Writer, timeline []core.TimelineSegment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprint(w, "(empty)\n\n")
		return
	}

	var bars, ticks strings.Builder
	bars.WriteString("|")
	for i, s := range timeline {
		if i > 0 && timeline[i-1].EndTime != s.StartTime {
			bars.WriteString(" idle |")
			ticks.WriteString(fmt.Sprintf("%-7d", timeline[i-1].EndTime))
		}
		label := centre(s.ProcessID, 6)
		bars.WriteString(label + "|")
		ticks.WriteString(fmt.Sprintf("%-7d", s.StartTime))
	}
	ticks.WriteString(fmt.Sprint(timeline[len(timeline)-1].EndTime))

	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintf(w, "%s\n\n", ticks.String())
}

// RenderTable writes the per-process metrics with the averages as footer.
func RenderTable(w io.Writer, result *core.SimulationResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround", "Response"})
	for _, p := range result.ProcessResults {
		priority := "-"
		if p.Priority != nil {
			priority = fmt.Sprint(*p.Priority)
		}
		table.Append([]string{
			p.ID,
			priority,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ResponseTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Total %d", result.TotalTime),
		fmt.Sprintf("Avg %.2f", result.AverageWaitingTime),
		fmt.Sprintf("Avg %.2f", result.AverageTurnaroundTime),
		fmt.Sprintf("Avg %.2f", result.AverageResponseTime),
	})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, throughput %.3f/t, context switches %d, idle %d\n\n",
		result.CPUUtilization*100, result.Throughput, result.ContextSwitches, result.IdleTime)
}

// RenderComparison writes one row per algorithm.
func RenderComparison(w io.Writer, comparisons []schedulers.Comparison) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Total", "Switches", "Utilization"})
	for _, c := range comparisons {
		table.Append([]string{
			string(c.Algorithm),
			fmt.Sprintf("%.2f", c.Result.AverageWaitingTime),
			fmt.Sprintf("%.2f", c.Result.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", c.Result.AverageResponseTime),
			fmt.Sprint(c.Result.TotalTime),
			fmt.Sprint(c.Result.ContextSwitches),
			fmt.Sprintf("%.2f%%", c.Result.CPUUtilization*100),
		})
	}
	table.Render()

	if best, ok := schedulers.Best(comparisons, schedulers.MetricWaitingTime); ok {
		_, _ = fmt.Fprintf(w, "Best average waiting time: %s (%.2f)\n", best.Algorithm, best.Result.AverageWaitingTime)
	}
	if best, ok := schedulers.Best(comparisons, schedulers.MetricTurnaroundTime); ok {
		_, _ = fmt.Fprintf(w, "Best average turnaround time: %s (%.2f)\n", best.Algorithm, best.Result.AverageTurnaroundTime)
	}
}

func centre(s string, width int) string {
	if len(s) >= width {
		return " " + s + " "
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}

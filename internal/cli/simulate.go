package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"github.com/spf13/cobra"
)

type runFlags struct {
	file    string
	quantum int
	levels  []int
	output  string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Process set file (.csv, .json, .yaml)")
	cmd.Flags().IntVarP(&f.quantum, "quantum", "q", 0, "Round Robin time quantum (default from config)")
	cmd.Flags().IntSliceVar(&f.levels, "levels", nil, "MLFQ level time quanta (default from config)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "table", "Output format (table, json)")
	_ = cmd.MarkFlagRequired("file")
}

// load reads the process file and resolves parameters: flags win over the file,
// the file wins over config.
func (f *runFlags) load() (*requests.ScheduleRequest, error) {
	request, err := loader.LoadFile(f.file)
	if err != nil {
		return nil, err
	}
	if f.quantum != 0 {
		request.TimeQuantum = f.quantum
	} else if request.TimeQuantum == 0 {
		request.TimeQuantum = cfg.RoundRobinTimeQuantum
	}
	if f.levels != nil {
		request.LevelsTimeQuantum = f.levels
	} else if request.LevelsTimeQuantum == nil {
		request.LevelsTimeQuantum = cfg.MultilevelFeedbackQueueLevelsTimeQuantum
	}
	return request, nil
}

func newSimulateCmd() *cobra.Command {
	var (
		flags     runFlags
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scheduling algorithm over a process set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := flags.load()
			if err != nil {
				return err
			}
			if algorithm == "" {
				algorithm = request.Algorithm
			}
			alg, err := schedulers.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			if err := request.Validate(alg); err != nil {
				return err
			}

			result, err := schedulers.Simulate(request.Specs(), alg, request.Options())
			if err != nil {
				return err
			}
			logger.Debug("simulated", "algorithm", string(alg), "processes", len(request.Processes))

			out := cmd.OutOrStdout()
			if flags.output == "json" {
				return writeJSON(out, responses.NewScheduleResponse(responses.NewRunId(), alg, result))
			}
			report.RenderSchedule(out, string(alg), result)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "Algorithm: fcfs, sjf, srtf, rr, priority, priority-preemptive, mlfq")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

package cli

import (
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over a process set and compare averages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := flags.load()
			if err != nil {
				return err
			}

			algorithms := make([]schedulers.Algorithm, 0, len(schedulers.Algorithms()))
			for _, alg := range schedulers.Algorithms() {
				if err := request.Validate(alg); err != nil {
					if alg.UsesPriority() {
						logger.Warn("skipping algorithm", "algorithm", string(alg), "reason", err)
						continue
					}
					return err
				}
				algorithms = append(algorithms, alg)
			}

			comparisons, err := schedulers.CompareAlgorithms(request.Specs(), request.Options(), algorithms...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.output == "json" {
				return writeJSON(out, responses.NewCompareResponse(responses.NewRunId(), comparisons))
			}
			report.RenderComparison(out, comparisons)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

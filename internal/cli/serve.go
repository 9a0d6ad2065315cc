package cli

import (
	"fmt"

	"cpu-scheduler/api"
	"cpu-scheduler/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			reg := prometheus.NewRegistry()
			handler := api.NewSchedulerHandlerImpl(cfg, logger, metrics.NewRecorder(reg))
			app := api.NewApp(handler, reg, logger)

			addr := fmt.Sprintf(":%d", cfg.Port)
			logger.Info("listening", "addr", addr,
				"round_robin_time_quantum", cfg.RoundRobinTimeQuantum,
				"mlfq_levels_time_quantum", cfg.MultilevelFeedbackQueueLevelsTimeQuantum)
			return app.Listen(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (overrides config)")
	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cpu-scheduler/api"
	"cpu-scheduler/config"
	"cpu-scheduler/internal/loader"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var (
	flagConfig    string
	flagQuantum   int
	flagAlgorithm string
	flagChart     string
	flagJSON      bool
	flagPort      int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Simulate and compare FCFS, SJF and Round Robin CPU scheduling",
		Long: `scheduler runs a fixed set of processes through first-come-first-served,
non-preemptive shortest-job-first and round robin scheduling and reports
per-process completion, waiting and turnaround times with their averages.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")

	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

func loadConfig() (*config.SchedulerConfig, error) {
	return config.Load(flagConfig)
}

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [processes-file]",
		Short: "Run the schedulers over a pid,arrival,burst CSV file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := cfg.InputFile
			if len(args) == 1 {
				path = args[0]
			}
			processes, err := loader.LoadFile(path)
			if err != nil {
				return err
			}

			quantum := cfg.RoundRobinTimeQuantum
			if cmd.Flags().Changed("quantum") {
				quantum = flagQuantum
			}

			var results []*schedulers.Result
			if strings.EqualFold(flagAlgorithm, "all") {
				results, err = schedulers.CompareAll(processes, quantum)
			} else {
				var alg schedulers.Algorithm
				alg, err = schedulers.ParseAlgorithm(flagAlgorithm)
				if err != nil {
					return err
				}
				var result *schedulers.Result
				result, err = schedulers.Schedule(alg, processes, quantum)
				results = []*schedulers.Result{result}
			}
			if err != nil {
				return fmt.Errorf("simulate %s: %w", path, err)
			}

			comparison, err := schedulers.GenerateComparison(results)
			if err != nil {
				return err
			}

			if flagJSON {
				return outputJSON(cmd.OutOrStdout(), comparison)
			}

			out := cmd.OutOrStdout()
			for i, response := range comparison {
				report.OutputSchedule(out, results[i].Algorithm.Title(), response)
			}
			if len(comparison) > 1 {
				report.OutputComparison(out, comparison)
			}

			chart := cfg.ChartFile
			if cmd.Flags().Changed("chart") {
				chart = flagChart
			}
			if chart != "" {
				if err := report.SaveChart(chart, comparison); err != nil {
					return err
				}
				fmt.Fprintf(out, "\n📊 Chart saved to %s\n", report.Bold(chart))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flagQuantum, "quantum", 0, "Round robin time quantum (default from config)")
	cmd.Flags().StringVar(&flagAlgorithm, "algorithm", "all", "Algorithm to run: all, fcfs, sjf or rr")
	cmd.Flags().StringVar(&flagChart, "chart", "", "Save a comparison chart (png, svg, pdf)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")

	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the scheduling API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			port := cfg.Port
			if cmd.Flags().Changed("port") {
				port = flagPort
			}

			app := api.NewApp(cfg)
			log.Printf("listening on :%d (round robin quantum %d)", port, cfg.RoundRobinTimeQuantum)
			return app.Listen(fmt.Sprintf(":%d", port))
		},
	}

	cmd.Flags().IntVar(&flagPort, "port", 0, "Port to listen on (default from config)")

	return cmd
}

func outputJSON(w io.Writer, v []responses.ScheduleResponse) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	dataDir    string
	verbose    bool
	method     string
	steps      int
	tol        float64
	t0         float64
	tf         float64
	configFile string
	preset     string
	params     map[string]string
	component  int
	ns         []int
	plotHeight int
	xComp      int
	yComp      int
	outFile    string
	svgWidth   int
	svgHeight  int
	svgColor   string
)

// main registers the odekit commands and executes the root command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "odekit",
		Short: "initial-value problem integrators",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".odekit", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [problem]",
		Short: "integrate a problem and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProblem,
	}
	addSolveFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	compareCmd := &cobra.Command{
		Use:   "compare [problem] [method...]",
		Short: "compare methods on the same problem",
		Args:  cobra.MinimumNArgs(1),
		RunE:  compareMethods,
	}
	addSolveFlags(compareCmd)

	convergeCmd := &cobra.Command{
		Use:   "converge [problem] [method]",
		Short: "measure the observed order of accuracy",
		Args:  cobra.ExactArgs(2),
		RunE:  convergeMethod,
	}
	convergeCmd.Flags().IntSliceVar(&ns, "ns", []int{10, 20, 40, 80, 160}, "step counts")
	convergeCmd.Flags().StringToStringVar(&params, "param", nil, "parameter override (name=value)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot each state component of a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "dominant frequency of a fixed-step run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().IntVar(&component, "component", 0, "state component")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON on stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render a run as an svg path",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().IntVar(&xComp, "x", -1, "horizontal component (-1 plots against time)")
	exportSVGCmd.Flags().IntVar(&yComp, "y", 0, "vertical component")
	exportSVGCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")
	exportSVGCmd.Flags().StringVar(&svgColor, "color", "#00ff00", "stroke color")

	presetsCmd := &cobra.Command{
		Use:   "presets [problem]",
		Short: "list available presets for a problem",
		Args:  cobra.ExactArgs(1),
		RunE:  listPresets,
	}

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "list problems and methods",
		RunE:  showCatalog,
	}

	rootCmd.AddCommand(runCmd, compareCmd, convergeCmd, listCmd, plotCmd, analyzeCmd, exportJSONCmd, exportSVGCmd, presetsCmd, catalogCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, errorStyle.Render("error: "+err.Error()))
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&method, "method", "rk4", "integration method")
	cmd.Flags().IntVarP(&steps, "steps", "n", 100, "number of steps (fixed-step methods)")
	cmd.Flags().Float64Var(&tol, "tol", 1e-6, "error tolerance (rk23)")
	cmd.Flags().Float64Var(&t0, "t0", 0, "start time (default: problem span)")
	cmd.Flags().Float64Var(&tf, "tf", 0, "end time (default: problem span)")
	cmd.Flags().StringToStringVar(&params, "param", nil, "parameter override (name=value)")
}

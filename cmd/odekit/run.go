package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/odekit/internal/config"
	"github.com/san-kum/odekit/internal/dynamo"
	"github.com/san-kum/odekit/internal/integrators"
	"github.com/san-kum/odekit/internal/metrics"
	"github.com/san-kum/odekit/internal/problems"
	"github.com/san-kum/odekit/internal/storage"
	"github.com/spf13/cobra"
)

func parseParams(raw map[string]string) (map[string]float64, error) {
	out := make(map[string]float64, len(raw))
	for name, val := range raw {
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("param %s: %w", name, err)
		}
		out[name] = v
	}
	return out, nil
}

// buildConfig layers defaults, preset, config file and changed flags, in that order.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Problem = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Problem, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Problem))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) > 0 && loaded.Problem != args[0] {
			slog.Warn("problem argument overrides config file", "config", loaded.Problem, "arg", args[0])
			loaded.Problem = args[0]
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("method") {
		cfg.Method = method
	}
	if flags.Changed("steps") {
		cfg.N = steps
	}
	if flags.Changed("tol") {
		cfg.Tol = tol
	}
	if flags.Changed("param") {
		overrides, err := parseParams(params)
		if err != nil {
			return nil, err
		}
		if cfg.Params == nil {
			cfg.Params = make(map[string]float64)
		}
		for k, v := range overrides {
			cfg.Params[k] = v
		}
	}
	return cfg, nil
}

// applySpanFlags overrides the span endpoints given on the command line.
func applySpanFlags(cmd *cobra.Command, prob *problems.Problem) {
	if cmd.Flags().Changed("t0") {
		prob.Span.T0 = t0
	}
	if cmd.Flags().Changed("tf") {
		prob.Span.Tf = tf
	}
}

func runProblem(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}
	prob, err := cfg.Resolve()
	if err != nil {
		return err
	}
	applySpanFlags(cmd, prob)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	reg := integrators.NewRegistry(slog.Default())
	slog.Debug("integrating", "problem", prob.Name, "method", cfg.Method, "n", cfg.N, "tol", cfg.Tol, "span", prob.Span)

	start := time.Now()
	tr, err := reg.Solve(cfg.Method, prob.Rate, prob.U0, prob.Span, prob.Params, cfg.Control())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Problem: prob.Name,
		Method:  cfg.Method,
		Span:    prob.Span,
		U0:      prob.U0,
		Params:  prob.Params,
	}
	if reg.IsAdaptive(cfg.Method) {
		meta.Tol = cfg.Tol
	} else {
		meta.N = cfg.N
	}
	runID, err := st.Save(meta, tr)
	if err != nil {
		return err
	}

	fmt.Println(title(fmt.Sprintf("%s / %s", prob.Name, cfg.Method)))
	fmt.Println(panelStyle.Render(summary(runID, prob, tr, elapsed)))
	if tr.Stats.Aborted {
		fmt.Println(warnStyle.Render("integration stopped early: step size underflow"))
	}
	return nil
}

func summary(runID string, prob *problems.Problem, tr *dynamo.Trajectory, elapsed time.Duration) string {
	tEnd, uEnd := tr.Final()
	vals := trajectoryMetrics(prob, tr)
	lines := []string{
		fmt.Sprintf("%s %s", label("run id:     "), runID),
		fmt.Sprintf("%s %v", label("elapsed:    "), elapsed),
		fmt.Sprintf("%s %d", label("points:     "), tr.Len()),
		fmt.Sprintf("%s %d accepted, %d rejected", label("steps:      "), tr.Stats.Steps, tr.Stats.Rejected),
		fmt.Sprintf("%s %d", label("evaluations:"), tr.Stats.Evaluations),
		fmt.Sprintf("%s u(%.6g) = %s", label("final:      "), tEnd, formatState(uEnd)),
	}
	if exact, err := prob.ExactAt(tEnd); err == nil {
		lines = append(lines, fmt.Sprintf("%s %.3e", label("error:      "), uEnd.Sub(exact).NormInf()))
	}
	for _, name := range metricNames {
		if v, ok := vals[name]; ok {
			lines = append(lines, fmt.Sprintf("%s %.3e", label(fmt.Sprintf("%-12s", name+":")), v))
		}
	}
	return strings.Join(lines, "\n")
}

// stabilityBound is the magnitude above which a state component counts as blown up.
const stabilityBound = 1e6

var metricNames = []string{"energy_drift", "stability"}

func trajectoryMetrics(prob *problems.Problem, tr *dynamo.Trajectory) map[string]float64 {
	ms := []metrics.Metric{metrics.NewStability(stabilityBound)}
	if prob.Energy != nil {
		ms = append(ms, metrics.NewEnergyDrift(prob.Energy, prob.Params))
	}
	return metrics.Evaluate(tr, ms...)
}

func formatState(u dynamo.State) string {
	parts := make([]string, len(u))
	for i, v := range u {
		parts[i] = strconv.FormatFloat(v, 'g', 8, 64)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

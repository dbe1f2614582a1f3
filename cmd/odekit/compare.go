package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/odekit/internal/analysis"
	"github.com/san-kum/odekit/internal/config"
	"github.com/san-kum/odekit/internal/integrators"
	"github.com/spf13/cobra"
)

func compareMethods(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args[:1])
	if err != nil {
		return err
	}
	prob, err := cfg.Resolve()
	if err != nil {
		return err
	}
	applySpanFlags(cmd, prob)

	reg := integrators.NewRegistry(slog.Default())
	methods := args[1:]
	if len(methods) == 0 {
		methods = reg.Names()
	}

	exact, exactErr := prob.ExactAt(prob.Span.Tf)

	fmt.Println(title(fmt.Sprintf("comparing on %s, t in [%g, %g]", prob.Name, prob.Span.T0, prob.Span.Tf)))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	results, err := reg.SolveAll(cmd.Context(), methods, prob.Rate, prob.U0, prob.Span, prob.Params, cfg.Control())
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "method\tpoints\tevals\tfinal\terror\tenergy drift")
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(w, "%s\t-\t-\t%v\t-\t-\n", res.Method, res.Err)
			continue
		}
		tr := res.Trajectory
		_, u := tr.Final()
		errStr := "-"
		if exactErr == nil {
			errStr = fmt.Sprintf("%.3e", u.Sub(exact).NormInf())
		}
		driftStr := "-"
		if d, ok := trajectoryMetrics(prob, tr)["energy_drift"]; ok {
			driftStr = fmt.Sprintf("%.3e", d)
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\n", res.Method, tr.Len(), tr.Stats.Evaluations, formatState(u), errStr, driftStr)
	}
	return w.Flush()
}

func convergeMethod(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	cfg.Problem = args[0]
	if cmd.Flags().Changed("param") {
		overrides, err := parseParams(params)
		if err != nil {
			return err
		}
		cfg.Params = overrides
	}
	prob, err := cfg.Resolve()
	if err != nil {
		return err
	}

	reg := integrators.NewRegistry(slog.Default())
	study, err := analysis.Convergence(reg, args[1], prob, ns)
	if err != nil {
		return err
	}

	fmt.Println(title(fmt.Sprintf("convergence of %s on %s (nominal order %d)", study.Method, study.Problem, reg.Order(study.Method))))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "n\th\terror\torder\tevals")
	for _, s := range study.Samples {
		order := "-"
		if !math.IsNaN(s.Order) {
			order = fmt.Sprintf("%.2f", s.Order)
		}
		fmt.Fprintf(w, "%d\t%.3e\t%.3e\t%s\t%d\n", s.N, s.H, s.Error, order, s.Evaluations)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("%s %.2f\n\n", label("fitted order:"), study.FittedOrder())

	logErr := make([]float64, 0, len(study.Samples))
	for _, e := range study.Errors() {
		if e > 0 {
			logErr = append(logErr, math.Log10(e))
		}
	}
	if len(logErr) > 1 {
		fmt.Println(asciigraph.Plot(logErr,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("log10 error vs refinement"),
		))
	}
	return nil
}

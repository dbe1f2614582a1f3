package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/odekit/internal/analysis"
	"github.com/san-kum/odekit/internal/config"
	"github.com/san-kum/odekit/internal/export"
	"github.com/san-kum/odekit/internal/integrators"
	"github.com/san-kum/odekit/internal/problems"
	"github.com/san-kum/odekit/internal/storage"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "id\tproblem\tmethod\tspan\tpoints\ttimestamp")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%g, %g]\t%d\t%s\n",
			r.ID, r.Problem, r.Method, r.Span.T0, r.Span.Tf, r.Points, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		return fmt.Errorf("run %s has no states", args[0])
	}

	fmt.Println(title(fmt.Sprintf("%s / %s", meta.Problem, meta.Method)))
	for i := range tr.States[0] {
		caption := fmt.Sprintf("u%d over t in [%g, %g]", i, meta.Span.T0, meta.Span.Tf)
		graph := asciigraph.Plot(tr.Component(i),
			asciigraph.Height(plotHeight),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	freq, err := analysis.DominantFrequency(tr, component)
	if err != nil {
		return err
	}

	data := tr.Component(component)
	ps := analysis.PowerSpectrum(data[:len(data)-1])
	if len(ps) > 80 {
		ps = ps[:80]
	}
	fmt.Println(asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("power spectrum (u%d)", component)),
	))
	fmt.Printf("\n%s %.6g (period %.6g)\n", label("dominant frequency:"), freq, 1/freq)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, *meta, tr)
}

func listPresets(cmd *cobra.Command, args []string) error {
	presets := config.ListPresets(args[0])
	if len(presets) == 0 {
		fmt.Printf("no presets for problem: %s\n", args[0])
		return nil
	}
	fmt.Printf("presets for %s:\n", args[0])
	for _, name := range presets {
		p := config.GetPreset(args[0], name)
		fmt.Printf("  %-12s %s\n", name, label(fmt.Sprintf("method=%s n=%d tol=%g", p.Method, p.N, p.Tol)))
	}
	return nil
}

func showCatalog(cmd *cobra.Command, args []string) error {
	fmt.Println(title("problems"))
	for _, name := range problems.Names() {
		prob, _ := problems.Get(name)
		exact := ""
		if prob.HasExact() {
			exact = label("(exact)")
		}
		fmt.Printf("  %-12s %s %s\n", name, prob.Description, exact)
	}

	reg := integrators.NewRegistry(nil)
	fmt.Println(title("methods"))
	for _, name := range reg.Names() {
		kind := "fixed"
		if reg.IsAdaptive(name) {
			kind = "adaptive"
		}
		fmt.Printf("  %-6s order %d, %s\n", name, reg.Order(name), kind)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	tr, err := st.LoadTrajectory(args[0])
	if err != nil {
		return err
	}

	var pts []export.Point
	if xComp < 0 {
		pts, err = export.SeriesPoints(tr, yComp)
	} else {
		pts, err = export.PhasePoints(tr, xComp, yComp)
	}
	if err != nil {
		return err
	}

	if outFile == "" {
		return export.WriteSVG(os.Stdout, pts, svgWidth, svgHeight, svgColor)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.WriteSVG(f, pts, svgWidth, svgHeight, svgColor); err != nil {
		return err
	}
	slog.Info("wrote svg", "path", outFile, "points", len(pts))
	return nil
}

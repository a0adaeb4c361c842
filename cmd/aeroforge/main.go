package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/config"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/flight"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/montecarlo"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/report"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/storage"
	"github.com/gemini001100/Aeroforge-Ultra-Range-Electric-Aviation/internal/viz"
)

var (
	dataDir    string
	runs       int
	seed       int64
	evaluator  string
	backendCmd string
	configFile string
	preset     string
	outPath    string
	// eval flags
	evalParams = flight.DefaultNominal()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "aeroforge",
		Short: "electric aircraft range analysis under uncertainty",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".aeroforge", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run Monte-Carlo range analysis",
		RunE:  runAnalysis,
	}
	addAnalysisFlags(runCmd)

	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "evaluate the range model for one parameter set",
		RunE:  evalOnce,
	}
	evalCmd.Flags().Float64Var(&evalParams.EtaSystem, "eta", evalParams.EtaSystem, "system efficiency")
	evalCmd.Flags().Float64Var(&evalParams.PackDensity, "epack", evalParams.PackDensity, "pack energy density (Wh/kg)")
	evalCmd.Flags().Float64Var(&evalParams.BatteryMass, "m-batt", evalParams.BatteryMass, "battery mass (kg)")
	evalCmd.Flags().Float64Var(&evalParams.TotalMass, "m-total", evalParams.TotalMass, "total mass (kg)")
	evalCmd.Flags().Float64Var(&evalParams.Gravity, "gravity", evalParams.Gravity, "gravity (m/s^2)")
	evalCmd.Flags().Float64Var(&evalParams.LiftToDrag, "l-over-d", evalParams.LiftToDrag, "lift-to-drag ratio")
	evalCmd.Flags().Float64Var(&evalParams.SFCEq, "sfc", evalParams.SFCEq, "equivalent specific consumption")
	evalCmd.Flags().Float64Var(&evalParams.HarvestKW, "harvest", evalParams.HarvestKW, "harvesting power (kW)")
	evalCmd.Flags().Float64Var(&evalParams.SicGain, "sic-gain", evalParams.SicGain, "SiC efficiency gain")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored analyses",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "terminal histogram of a stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export analysis as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export ensemble table as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	reportCmd := &cobra.Command{
		Use:   "report [run_id]",
		Short: "render PDF report for a stored analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  renderReport,
	}
	reportCmd.Flags().StringVar(&outPath, "out", "", "output path (default <run_id>.pdf)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run analysis with live terminal visualization",
		RunE:  runLive,
	}
	addAnalysisFlags(liveCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available analysis presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, evalCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, reportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "number of Monte-Carlo samples")
	cmd.Flags().Int64Var(&seed, "seed", config.DefaultSeed, "random seed")
	cmd.Flags().StringVar(&evaluator, "evaluator", "breguet", "range evaluator (breguet, external)")
	cmd.Flags().StringVar(&backendCmd, "backend", "", "external backend command (evaluator=external)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, and CLI flags, flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("runs") {
		cfg.Runs = runs
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("evaluator") {
		cfg.Evaluator = evaluator
	}
	if cmd.Flags().Changed("backend") {
		cfg.ExternalCommand = backendCmd
	}

	return cfg, nil
}

func runAnalysis(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ev, err := cfg.SelectEvaluator()
	if err != nil {
		return err
	}

	dc := cfg.DriverConfig()
	drv, err := montecarlo.NewDriver(dc, ev)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running Monte-Carlo analysis (%d samples, seed %d, %s)...\n",
		cfg.Runs, cfg.Seed, ev.Name())
	start := time.Now()

	res, err := drv.Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Seed, ev.Name(), cfg.Nominal, res)
	if err != nil {
		return err
	}

	figPath := filepath.Join(dataDir, runID, "analysis.png")
	if err := report.WriteFigure(figPath, res.Ensemble, res.Summary, dc.SampledFields()); err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("figure: %s\n\n", figPath)
	fmt.Print(viz.RenderSummary(res.Summary))

	return nil
}

func evalOnce(cmd *cobra.Command, args []string) error {
	km := flight.NewBreguet().Evaluate(evalParams)
	fmt.Printf("range: %.3f km\n", km)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ev, err := cfg.SelectEvaluator()
	if err != nil {
		return err
	}

	dc := cfg.DriverConfig()
	drv, err := montecarlo.NewDriver(dc, ev)
	if err != nil {
		return err
	}

	m, err := viz.NewLiveModel(drv, dc)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	metas, err := st.List()
	if err != nil {
		return err
	}

	if len(metas) == 0 {
		fmt.Println("no analyses found")
		return nil
	}

	return printRunsTable(os.Stdout, metas)
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	ensemble, err := st.LoadEnsemble(args[0])
	if err != nil {
		return err
	}
	if len(ensemble) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(ensemble))
	fmt.Println(viz.RenderHistogram(ensemble.Ranges(), "range (km) distribution"))
	fmt.Print(viz.RenderSummary(meta.Summary))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	ensemble, err := st.LoadEnsemble(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, *meta, ensemble)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	ensemble, err := st.LoadEnsemble(args[0])
	if err != nil {
		return err
	}
	if len(ensemble) == 0 {
		return fmt.Errorf("no data to export")
	}

	return storage.WriteResultsCSV(os.Stdout, ensemble)
}

func renderReport(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	ensemble, err := st.LoadEnsemble(args[0])
	if err != nil {
		return err
	}

	// The ranked correlations carry the sampled field names.
	fields := make([]string, 0, len(meta.Summary.Correlations))
	for _, c := range meta.Summary.Correlations {
		fields = append(fields, c.Field)
	}

	panels, err := report.BuildPanels(ensemble, meta.Summary, fields)
	if err != nil {
		return err
	}
	fig, err := report.RenderFigure(panels, 3)
	if err != nil {
		return err
	}

	out := outPath
	if out == "" {
		out = meta.ID + ".pdf"
	}
	if err := report.WritePDF(out, meta.ID, meta.Timestamp, meta.Summary, fig); err != nil {
		return err
	}

	fmt.Printf("report: %s\n", out)
	return nil
}

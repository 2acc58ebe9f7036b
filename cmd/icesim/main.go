package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/icesim/internal/config"
	"github.com/san-kum/icesim/internal/dualrun"
	"github.com/san-kum/icesim/internal/export"
	"github.com/san-kum/icesim/internal/icesheet"
	"github.com/san-kum/icesim/internal/metrics"
	"github.com/san-kum/icesim/internal/registry"
	"github.com/san-kum/icesim/internal/storage"
	"github.com/san-kum/icesim/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string

	forcingName string
	rateModel   string
	growthRate  float64
	decayRate   float64
	period      int
	timeMax     int
	start       string
	stepLength  float64

	// Second run
	secondRun       bool
	secondTransform string
	periodFactor    int
	amplitudeFactor float64
	amplitudeCenter float64
	multiplyGrowth  float64
	multiplyDecay   float64
	startSecond     string

	// Presentation
	lastCycle     bool
	frameRate     int
	stepsPerFrame int
	svgOut        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "icesim",
		Short: "conceptual ice sheet variability model",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".icesim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [curve]",
		Short: "run simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addRunFlags(runCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	phaseCmd := &cobra.Command{
		Use:   "phase [run_id]",
		Short: "volume vs control hysteresis plot",
		Args:  cobra.ExactArgs(1),
		RunE:  phasePlot,
	}
	phaseCmd.Flags().BoolVar(&lastCycle, "last-cycle", false, "show only the final forcing cycle")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run data to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [run_id]",
		Short: "export hysteresis trajectory to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&svgOut, "out", "o", "", "output path (default <run_id>_phase.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets [curve]",
		Short: "list available presets for a curve family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for curve: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [curve]",
		Short: "run simulation with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsPerFrame, "steps-per-frame", 4, "model steps per frame")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, phaseCmd, exportCmd, exportCSVCmd,
		exportJSONCmd, svgCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&forcingName, "forcing", config.DefaultForcing, "control parameter evolution (triangle, orbital)")
	cmd.Flags().StringVar(&rateModel, "rates", "", "rate model (constant, empirical)")
	cmd.Flags().Float64Var(&growthRate, "growth", config.DefaultGrowthRate, "growth rate (constant model)")
	cmd.Flags().Float64Var(&decayRate, "decay", config.DefaultDecayRate, "decay rate (constant model)")
	cmd.Flags().IntVar(&period, "period", config.DefaultPeriod, "forcing cycle length in steps")
	cmd.Flags().IntVar(&timeMax, "time-max", 0, "run horizon in steps (default 5 cycles)")
	cmd.Flags().StringVar(&start, "start", config.DefaultStart, "start policy (zero, warm, cold)")
	cmd.Flags().Float64Var(&stepLength, "step-length", config.DefaultStepLength, "time axis scale per step")
	cmd.Flags().BoolVar(&secondRun, "second-run", false, "run a transformed comparison run")
	cmd.Flags().StringVar(&secondTransform, "transform", "same", "second run transform (same, amplitude_reduced, period_reduced)")
	cmd.Flags().IntVar(&periodFactor, "period-factor", 2, "period reduction factor")
	cmd.Flags().Float64Var(&amplitudeFactor, "amplitude-factor", 0.5, "amplitude reduction factor")
	cmd.Flags().Float64Var(&amplitudeCenter, "amplitude-center", 0.5, "center of the reduced amplitude")
	cmd.Flags().Float64Var(&multiplyGrowth, "multiply-growth", 1.0, "second run growth rate multiplier")
	cmd.Flags().Float64Var(&multiplyDecay, "multiply-decay", 1.0, "second run decay rate multiplier")
	cmd.Flags().StringVar(&startSecond, "start-2nd", config.DefaultStart, "second run start policy")
}

// resolveConfig layers preset, config file, and changed CLI flags, in
// increasing precedence, over the defaults.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Curve = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg.Curve, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Curve))
		}
		// Presets only pin the primary run; keep second-run defaults.
		secondDefaults := cfg.SecondRun
		*cfg = *p
		cfg.SecondRun = secondDefaults
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		curve := cfg.Curve
		cfg = loaded
		if len(args) > 0 {
			cfg.Curve = curve
		}
	}

	flags := cmd.Flags()
	if flags.Changed("forcing") {
		cfg.Forcing = forcingName
	}
	if flags.Changed("rates") {
		cfg.RateModel = rateModel
	}
	if flags.Changed("growth") {
		cfg.GrowthRate = growthRate
	}
	if flags.Changed("decay") {
		cfg.DecayRate = decayRate
	}
	if flags.Changed("period") {
		cfg.Period = period
	}
	if flags.Changed("time-max") {
		cfg.TimeMax = timeMax
	}
	if flags.Changed("start") {
		cfg.Start = start
	}
	if flags.Changed("step-length") {
		cfg.StepLength = stepLength
	}
	if flags.Changed("second-run") {
		cfg.SecondRun.Enabled = secondRun
	}
	if flags.Changed("transform") {
		cfg.SecondRun.Transform = secondTransform
	}
	if flags.Changed("period-factor") {
		cfg.SecondRun.PeriodFactor = periodFactor
	}
	if flags.Changed("amplitude-factor") {
		cfg.SecondRun.AmplitudeFactor = amplitudeFactor
	}
	if flags.Changed("amplitude-center") {
		cfg.SecondRun.AmplitudeCenter = amplitudeCenter
	}
	if flags.Changed("multiply-growth") {
		cfg.SecondRun.GrowthFactor = multiplyGrowth
	}
	if flags.Changed("multiply-decay") {
		cfg.SecondRun.DecayFactor = multiplyDecay
	}
	if flags.Changed("start-2nd") {
		cfg.SecondRun.Start = startSecond
	}

	return cfg, nil
}

type runSetup struct {
	curve  icesheet.Curve
	series icesheet.Series
	rates  icesheet.RateModel
	core   icesheet.Config
}

func buildRun(cfg *config.Config) (*runSetup, error) {
	reg := registry.NewRegistry()

	curve, err := reg.GetCurve(cfg.Curve)
	if err != nil {
		return nil, err
	}
	series, err := reg.GetForcing(cfg.Forcing, cfg)
	if err != nil {
		return nil, err
	}
	rm, err := reg.GetRateModel(cfg.EffectiveRateModel(), cfg)
	if err != nil {
		return nil, err
	}
	initial, err := config.StartVolume(cfg.Start)
	if err != nil {
		return nil, err
	}

	return &runSetup{
		curve:  curve,
		series: series,
		rates:  rm,
		core: icesheet.Config{
			TimeMax:       cfg.EffectiveTimeMax(),
			StepLength:    cfg.StepLength,
			InitialVolume: initial,
		},
	}, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	setup, err := buildRun(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("running %s simulation (%s forcing, %d steps)...\n",
		cfg.Curve, cfg.Forcing, setup.core.TimeMax)
	startTime := time.Now()

	var primary, secondary *icesheet.Result

	if cfg.SecondRun.Enabled {
		secondInitial, err := config.StartVolume(cfg.SecondRun.Start)
		if err != nil {
			return err
		}
		pair, err := dualrun.NewPair(setup.curve, setup.series, setup.rates, setup.core, dualrun.Config{
			Transform:       dualrun.Transform(cfg.SecondRun.Transform),
			AmplitudeFactor: cfg.SecondRun.AmplitudeFactor,
			AmplitudeCenter: cfg.SecondRun.AmplitudeCenter,
			PeriodFactor:    cfg.SecondRun.PeriodFactor,
			GrowthFactor:    cfg.SecondRun.GrowthFactor,
			DecayFactor:     cfg.SecondRun.DecayFactor,
			PhaseFlip:       cfg.Start != cfg.SecondRun.Start,
			InitialVolume:   secondInitial,
		})
		if err != nil {
			return err
		}
		results, err := pair.Run(context.Background())
		if err != nil {
			return err
		}
		primary, secondary = results.Primary, results.Secondary
	} else {
		primary, err = icesheet.New(setup.curve, setup.series, setup.rates, setup.core).Run(context.Background())
		if err != nil {
			return err
		}
	}

	elapsed := time.Since(startTime)

	summary := metrics.Summarize(primary)
	summaryMap := map[string]float64{
		"final_volume": summary.FinalVolume,
		"min_volume":   summary.MinVolume,
		"max_volume":   summary.MaxVolume,
		"growth_steps": float64(summary.GrowthSteps),
		"decay_steps":  float64(summary.DecaySteps),
		"hold_steps":   float64(summary.HoldSteps),
		"loop_area":    summary.LoopArea,
	}

	runID, err := st.Save(storage.RunMetadata{
		Curve:      cfg.Curve,
		Forcing:    cfg.Forcing,
		RateModel:  cfg.EffectiveRateModel(),
		Period:     cfg.Period,
		TimeMax:    setup.core.TimeMax,
		StepLength: cfg.StepLength,
		Start:      cfg.Start,
		Summary:    summaryMap,
	}, primary, secondary)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", primary.Len())
	fmt.Println("\nsummary:")
	fmt.Print(viz.SummaryLines(summaryMap, []string{
		"final_volume", "min_volume", "max_volume",
		"growth_steps", "decay_steps", "hold_steps", "loop_area",
	}))

	return nil
}

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
	fmt.Fprintln(w, "ID\tCURVE\tFORCING\tRATES\tTIME\tSTEPS\tSTART\tDUAL")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%v\n",
			run.ID,
			run.Curve,
			run.Forcing,
			run.RateModel,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TimeMax,
			run.Start,
			run.DualRun,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	primary, secondary, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("curve: %s, forcing: %s\n", meta.Curve, meta.Forcing)
	fmt.Printf("samples: %d\n\n", primary.Len())

	fmt.Println(viz.ControlPlot(primary, secondary))
	fmt.Println(viz.VolumePlot(primary, secondary))

	return nil
}

func phasePlot(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	primary, secondary, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	from := 1
	if lastCycle {
		from = lastCycleStart(primary.Len(), meta.Period)
	}

	fmt.Printf("hysteresis plot: %s\n", meta.ID)
	fmt.Printf("curve: %s\n\n", meta.Curve)

	fmt.Print(viz.PhaseScatter(primary.Controls[from:], primary.Volumes[from:], 70, 20))

	if secondary != nil {
		fmt.Printf("\nsecond run:\n\n")
		fmt.Print(viz.PhaseScatter(secondary.Controls[from:], secondary.Volumes[from:], 70, 20))
	}

	return nil
}

// lastCycleStart opens the plot window one sample before the final
// forcing cycle so the loop closes on itself, without reaching back to
// the seed sample at index 0.
func lastCycleStart(n, period int) int {
	if period > 0 && n > period+1 {
		return n - period - 1
	}
	return 1
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	primary, secondary, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{"time", "control", "eq_top", "eq_bottom", "volume"}
	if secondary != nil {
		header = append(header, "control_2nd", "eq_top_2nd", "eq_bottom_2nd", "volume_2nd")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for t := 0; t < primary.Len(); t++ {
		row := []string{
			strconv.FormatFloat(primary.Times[t], 'f', 6, 64),
			strconv.FormatFloat(primary.Controls[t], 'f', 6, 64),
			strconv.FormatFloat(primary.EqTop[t], 'f', 6, 64),
			strconv.FormatFloat(primary.EqBottom[t], 'f', 6, 64),
			strconv.FormatFloat(primary.Volumes[t], 'f', 6, 64),
		}
		if secondary != nil {
			row = append(row,
				strconv.FormatFloat(secondary.Controls[t], 'f', 6, 64),
				strconv.FormatFloat(secondary.EqTop[t], 'f', 6, 64),
				strconv.FormatFloat(secondary.EqBottom[t], 'f', 6, 64),
				strconv.FormatFloat(secondary.Volumes[t], 'f', 6, 64),
			)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	primary, secondary, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, meta, primary, secondary)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	primary, _, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	doc := export.TrajectorySVG(primary.Controls[1:], primary.Volumes[1:], 800, 500, "#00ff00")
	if doc == "" {
		return fmt.Errorf("not enough data to export")
	}

	out := svgOut
	if out == "" {
		out = filepath.Base(runID) + "_phase.svg"
	}
	if err := os.WriteFile(out, []byte(doc), 0644); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}

	setup, err := buildRun(cfg)
	if err != nil {
		return err
	}

	// Fail fast on bad setups before the TUI takes the terminal over.
	if err := icesheet.New(setup.curve, setup.series, setup.rates, setup.core).Validate(); err != nil {
		return err
	}

	m := viz.NewModel(cfg.Curve, setup.curve, setup.series, setup.rates, setup.core, frameRate, stepsPerFrame)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

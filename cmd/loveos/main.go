package main

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/circuit"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/config"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/drive"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/energy"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/force"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/storage"
	"github.com/love-os-architect/Love-OS-The-Physics-of-Relationships/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	cutoff     float64
	configFile string
	preset     string
	series     string
	// force command inputs
	potentialA    float64
	potentialB    float64
	vectorA       string
	vectorB       string
	rScore        float64
	compatibility float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loveos",
		Short: "relationship physics lab: RLC regimes and attraction forces",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".loveos", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "simulate a drive regime (ego|soul)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	addDriveFlags(runCmd)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run ego and soul side by side",
		RunE:  compareScenarios,
	}
	addDriveFlags(compareCmd)

	forceCmd := &cobra.Command{
		Use:   "force",
		Short: "compute the relationship force between two entities",
		RunE:  computeForce,
	}
	forceCmd.Flags().Float64Var(&potentialA, "potential-a", 0.5, "potential of entity A [0,1]")
	forceCmd.Flags().Float64Var(&potentialB, "potential-b", 0.5, "potential of entity B [0,1]")
	forceCmd.Flags().StringVar(&vectorA, "vector-a", "", "value vector of entity A (comma-separated)")
	forceCmd.Flags().StringVar(&vectorB, "vector-b", "", "value vector of entity B (comma-separated)")
	forceCmd.Flags().Float64Var(&rScore, "r", 0.5, "distance/friction score (lower is closer)")
	forceCmd.Flags().Float64Var(&compatibility, "compatibility", 0.5, "instinctive match gate [0,1]")
	forceCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored run series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "voltage,current,eta", "comma-separated series names")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "dump run series to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "dump a full run to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list available presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			sort.Strings(names)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "play a simulation back in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addDriveFlags(liveCmd)

	rootCmd.AddCommand(runCmd, compareCmd, forceCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addDriveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", circuit.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", circuit.DefaultDuration, "duration")
	cmd.Flags().Float64Var(&cutoff, "cutoff", drive.DefaultCutoff, "soul source cutoff fraction of the horizon")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig layers preset, config file, then CLI flag overrides.
func resolveConfig(cmd *cobra.Command, scenario string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenario))
		}
		c := *p // presets are shared
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("cutoff") {
		cfg.Cutoff = cutoff
	}

	cfg.Scenario = scenario
	cfg.Normalize()
	return cfg, nil
}

func buildDrive(scenario string, circ circuit.Config, cut float64) (drive.Series, error) {
	switch scenario {
	case "ego":
		return drive.Ego(circ), nil
	case "soul":
		return drive.Soul(circ, cut), nil
	default:
		return drive.Series{}, fmt.Errorf("unknown scenario: %s (want ego or soul)", scenario)
	}
}

func summarize(res *circuit.Result, dt float64) map[string]float64 {
	last := len(res.Times) - 1

	peak := 0.0
	for _, v := range res.Current {
		peak = math.Max(peak, math.Abs(v))
	}

	return map[string]float64{
		"peak_current":      peak,
		"final_efficiency":  res.EfficiencyMA[last],
		"cum_input_energy":  energy.Total(res.PowerIn, dt),
		"cum_joule_loss":    energy.Total(res.PowerLoss, dt),
		"cum_stored_energy": energy.Total(energy.Stored(res.PowerIn, res.PowerLoss), dt),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	scenario := args[0]

	cfg, err := resolveConfig(cmd, scenario)
	if err != nil {
		return err
	}

	circ := cfg.CircuitParams()
	drv, err := buildDrive(scenario, circ, cfg.Cutoff)
	if err != nil {
		return err
	}

	fmt.Printf("running %s simulation...\n", scenario)
	res, err := circuit.Simulate(circ, drv.Voltage, drv.Resistance)
	if err != nil {
		return err
	}

	metrics := summarize(res, circ.Dt)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(scenario, circ.Dt, circ.Duration, metrics, drv, res)
	if err != nil {
		return err
	}

	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(res.Times))
	finalR := drv.Resistance[len(drv.Resistance)-1]
	fmt.Printf("regime at end: %s (omega0=%.3f, tau=%.1fs)\n", circ.Regime(finalR), circ.NaturalFrequency(), circ.TimeConstant(finalR))
	fmt.Println("\nmetrics:")

	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, metrics[name])
	}

	return nil
}

func compareScenarios(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, "soul")
	if err != nil {
		return err
	}
	circ := cfg.CircuitParams()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tPEAK_I\tCUM_IN\tCUM_LOSS\tCUM_STORED\tFINAL_ETA")

	graphs := make([]string, 0, 2)
	for _, scenario := range []string{"ego", "soul"} {
		drv, err := buildDrive(scenario, circ, cfg.Cutoff)
		if err != nil {
			return err
		}
		res, err := circuit.Simulate(circ, drv.Voltage, drv.Resistance)
		if err != nil {
			return err
		}

		m := summarize(res, circ.Dt)
		fmt.Fprintf(w, "%s\t%.4f\t%.3f\t%.3f\t%.3f\t%.4f\n",
			scenario,
			m["peak_current"],
			m["cum_input_energy"],
			m["cum_joule_loss"],
			m["cum_stored_energy"],
			m["final_efficiency"],
		)

		graphs = append(graphs, asciigraph.Plot(res.EfficiencyMA,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("%s: efficiency η (smoothed)", scenario)),
		))
	}

	if err := w.Flush(); err != nil {
		return err
	}
	for _, g := range graphs {
		fmt.Println()
		fmt.Println(g)
	}
	return nil
}

func computeForce(cmd *cobra.Command, args []string) error {
	engine := force.NewEngine()
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg.Normalize()
		engine = &force.Engine{K: cfg.Force.K, N: cfg.Force.N, RMin: cfg.Force.RMin}
	}

	va, err := parseVector(vectorA)
	if err != nil {
		return fmt.Errorf("bad --vector-a: %w", err)
	}
	vb, err := parseVector(vectorB)
	if err != nil {
		return fmt.Errorf("bad --vector-b: %w", err)
	}

	a := force.NewEntity(potentialA, va)
	b := force.NewEntity(potentialB, vb)

	res := engine.ComputeForce(a, b, rScore, compatibility)

	fmt.Printf("force: %.4f\n", res.Force)
	fmt.Printf("state: %s\n\n", res.Description)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	names := make([]string, 0, len(res.Components))
	for name := range res.Components {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, res.Components[name])
	}
	return w.Flush()
}

func parseVector(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
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

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tDURATION\tDT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2fs\t%.4fs\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
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
	data, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}
	if len(data.Times) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("samples: %d\n\n", len(data.Times))

	captions := map[string]string{
		"voltage":    "drive voltage V",
		"resistance": "resistance R",
		"current":    "current I",
		"charge":     "charge q",
		"didt":       "dI/dt",
		"p_in":       "input power V·I",
		"p_r":        "Joule loss I²R",
		"e_l":        "inductor energy",
		"e_c":        "capacitor energy",
		"eta":        "efficiency η",
	}

	for _, name := range strings.Split(series, ",") {
		name = strings.TrimSpace(name)
		col := data.Column(name)
		if col == nil {
			fmt.Printf("unknown series: %s (available: %s)\n\n", name, strings.Join(data.Names, ", "))
			continue
		}

		caption := captions[name]
		if caption == "" {
			caption = name
		}
		fmt.Println(asciigraph.Plot(col,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(caption),
		))
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	data, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(data.Times) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write(append([]string{"time"}, data.Names...)); err != nil {
		return err
	}
	for i := range data.Times {
		row := make([]string, 0, len(data.Names)+1)
		row = append(row, strconv.FormatFloat(data.Times[i], 'f', 6, 64))
		for j := range data.Names {
			row = append(row, strconv.FormatFloat(data.Columns[j][i], 'f', 6, 64))
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
	data, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, data)
}

func runLive(cmd *cobra.Command, args []string) error {
	scenario := args[0]

	cfg, err := resolveConfig(cmd, scenario)
	if err != nil {
		return err
	}

	circ := cfg.CircuitParams()
	drv, err := buildDrive(scenario, circ, cfg.Cutoff)
	if err != nil {
		return err
	}
	res, err := circuit.Simulate(circ, drv.Voltage, drv.Resistance)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(scenario, circ, res))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

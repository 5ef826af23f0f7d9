package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/strarray/internal/config"
	"github.com/san-kum/strarray/internal/export"
	"github.com/san-kum/strarray/internal/script"
	"github.com/san-kum/strarray/internal/strarray"
	"github.com/san-kum/strarray/internal/tui"
	"github.com/san-kum/strarray/internal/viz"
	"github.com/spf13/cobra"
)

// exitContractViolation is the status used when an insert is called with an
// index outside [0, count].
const exitContractViolation = 2

var (
	configFile string
	capacity   int
	theme      string
	logLevel   string
	printEach  bool
	preset     string
	jsonOut    bool
	outFile    string
	withTrace  bool
	chartH     int
	chartW     int
)

// main registers the commands and executes the root command. Ordinary
// command errors exit with status 1, insert contract violations with 2.
func main() {
	defer exitOnContractViolation()

	rootCmd := &cobra.Command{
		Use:           "strarray",
		Short:         "growable string array playground",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			preset = "reference"
			return runScript(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().IntVar(&capacity, "capacity", config.DefaultCapacity, "initial capacity")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "run a yaml operation script",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScript,
	}
	runCmd.Flags().BoolVar(&printEach, "print-each", false, "print the array after every step")
	runCmd.Flags().StringVar(&preset, "preset", "", "run a built-in script")
	runCmd.Flags().BoolVar(&jsonOut, "json", false, "write a json snapshot to stdout")
	runCmd.Flags().StringVar(&outFile, "out", "", "write a json snapshot to file")
	runCmd.Flags().BoolVar(&withTrace, "trace", false, "include the step trace in json output")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run the reference insert/append/remove sequence",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			preset = "reference"
			return runScript(cmd, nil)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scripts",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	inspectCmd := &cobra.Command{
		Use:   "inspect [script]",
		Short: "run a script and draw the resulting slots",
		Args:  cobra.MaximumNArgs(1),
		RunE:  inspect,
	}
	inspectCmd.Flags().StringVar(&preset, "preset", "", "use a built-in script")

	growthCmd := &cobra.Command{
		Use:   "growth [appends]",
		Short: "plot capacity against count while appending",
		Args:  cobra.MaximumNArgs(1),
		RunE:  growth,
	}
	growthCmd.Flags().IntVar(&chartH, "height", 10, "chart height")
	growthCmd.Flags().IntVar(&chartW, "width", 60, "chart width")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive editor",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}

	rootCmd.AddCommand(runCmd, demoCmd, presetsCmd, inspectCmd, growthCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func exitOnContractViolation() {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok || !strarray.IsFatal(err) {
		panic(r)
	}
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(exitContractViolation)
}

// loadConfig reads the config file if given. Flags override file values
// only when set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if configFile == "" || flags.Changed("capacity") {
		cfg.InitialCapacity = capacity
	}
	if configFile == "" || flags.Changed("theme") {
		cfg.Theme = theme
	}
	if configFile == "" || flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Lookup("print-each") != nil && flags.Changed("print-each") {
		cfg.PrintAfterEach = printEach
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadScript(args []string) (*script.Script, error) {
	if preset != "" {
		s := script.GetPreset(preset)
		if s == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, script.ListPresets())
		}
		return s, nil
	}
	if len(args) == 0 {
		return nil, errors.New("a script path or --preset is required")
	}
	return script.LoadScript(args[0])
}

// execute builds an array for s and runs it, writing step output to out.
func execute(cmd *cobra.Command, args []string, out io.Writer) (*script.Result, *strarray.Array, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, nil, err
	}

	s, err := loadScript(args)
	if err != nil {
		return nil, nil, nil, err
	}
	reg := script.NewRegistry()
	if err := s.Validate(reg); err != nil {
		return nil, nil, nil, err
	}

	c := s.Capacity
	if c == 0 || cmd.Flags().Changed("capacity") {
		c = cfg.InitialCapacity
	}
	arr, err := strarray.New(c, strarray.WithLogger(logger))
	if err != nil {
		return nil, nil, nil, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("running script", "name", s.Name, "steps", len(s.Steps), "capacity", c)
	result, err := script.Run(ctx, s, arr, reg, script.Options{Out: out, PrintAfterEach: cfg.PrintAfterEach})
	if err != nil {
		return result, arr, cfg, err
	}
	return result, arr, cfg, nil
}

func runScript(cmd *cobra.Command, args []string) error {
	var out io.Writer = os.Stdout
	if jsonOut {
		out = io.Discard
	}

	result, arr, _, err := execute(cmd, args, out)
	if err != nil {
		return err
	}
	defer arr.Destroy()

	snap := export.NewSnapshot(result, withTrace)
	if outFile != "" {
		if err := export.ExportJSON(outFile, snap); err != nil {
			return err
		}
	}
	if jsonOut {
		return export.WriteJSON(os.Stdout, snap)
	}

	if result.Misses > 0 {
		fmt.Fprintf(os.Stderr, "%d lookup miss(es)\n", result.Misses)
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCAPACITY\tSTEPS\tDESCRIPTION")
	for _, name := range script.ListPresets() {
		s := script.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s.Name, s.Capacity, len(s.Steps), s.Description)
	}
	return w.Flush()
}

func inspect(cmd *cobra.Command, args []string) error {
	result, arr, cfg, err := execute(cmd, args, io.Discard)
	if err != nil {
		return err
	}
	defer arr.Destroy()

	th := viz.GetTheme(cfg.Theme)
	fmt.Println(th.Title().Render(result.Name))
	fmt.Println(viz.RenderSlots(arr, th))
	return nil
}

func growth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	n := 32
	if len(args) == 1 {
		n, err = strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid append count: %s", args[0])
		}
	}

	rec, err := viz.SimulateGrowth(n, cfg.InitialCapacity)
	if err != nil {
		return err
	}

	fmt.Println(viz.GrowthChart(rec, chartH, chartW))
	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AT COUNT\tFROM\tTO")
	for _, g := range rec.Grows {
		fmt.Fprintf(w, "%d\t%d\t%d\n", g.Count, g.From, g.To)
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	events := tui.NewEventLog()
	// diagnostics go to the status line, not the terminal
	arr, err := strarray.New(cfg.InitialCapacity,
		strarray.WithObserver(events),
		strarray.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		return err
	}
	defer arr.Destroy()

	return tui.Run(arr, viz.GetTheme(cfg.Theme), events)
}

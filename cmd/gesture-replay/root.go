package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/gesture"
	"github.com/phanxgames/gesture/internal/logging"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type options struct {
	configPath string
	verbose    int
	metrics    bool
	state      bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "gesture-replay <script>",
		Short: "Replay a scripted touch session through the gesture recognizer",
		Long: `gesture-replay loads a YAML (or JSON) touch script and feeds it through
the gesture recognizer, printing every host command issued per step:
scrolls, zoom sequences, undo, redo and floating-menu requests.

Recognizer settings come from --config, overridden by GESTURE_* environment
variables.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", envOrDefault("GESTURE_CONFIG", ""), "recognizer config file (env: GESTURE_CONFIG)")
	cmd.Flags().CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug, -vvv trace every event)")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print gesture counters after the replay")
	cmd.Flags().BoolVar(&opts.state, "state", false, "print the recognizer state after every step")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	return cmd
}

func run(ctx context.Context, w io.Writer, scriptPath string, opts options) error {
	logger := logging.SetupWriter(os.Stderr, opts.verbose, opts.noColor)

	cfg, err := gesture.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.verbose >= 3 {
		cfg.Debug = true
	}

	data, err := os.ReadFile(scriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	runner, err := gesture.LoadScript(data)
	if err != nil {
		return err
	}

	host := &gesture.Recorder{}
	rec := gesture.NewRecognizer(host, cfg)
	cfg.Apply(rec)
	rec.SetLogger(logging.GetLogger("recognizer"))

	var reader *sdkmetric.ManualReader
	if opts.metrics {
		reader = sdkmetric.NewManualReader()
		mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
		defer func() { _ = mp.Shutdown(ctx) }()
		otel.SetMeterProvider(mp)

		m, err := gesture.NewMetrics()
		if err != nil {
			return fmt.Errorf("create metrics: %w", err)
		}
		rec.SetMetrics(m)
	}

	logger.Info().
		Str("script", scriptPath).
		Int("steps", runner.Len()).
		Str("config", cfg.ConfigFile).
		Msg("Replaying script")

	st := newStyles(opts.noColor)
	gate := gesture.NewGate(rec)
	step := 0
	for {
		mark := len(host.Calls)
		res, ok := runner.Step(gate)
		if !ok {
			break
		}
		step++
		printStep(w, st, step, res, host.Calls[mark:])
		if opts.state {
			printState(w, st, rec.State())
		}
	}

	if reader != nil {
		if err := printMetrics(ctx, w, st, reader); err != nil {
			return err
		}
	}
	return nil
}

type styles struct {
	step     lipgloss.Style
	call     lipgloss.Style
	dim      lipgloss.Style
	rejected lipgloss.Style
	heading  lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{step: plain, call: plain, dim: plain, rejected: plain, heading: plain}
	}
	return styles{
		step:     lipgloss.NewStyle().Bold(true),
		call:     lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#005F87", Dark: "#5FD7FF"}),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#6C6C6C"}),
		rejected: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}),
		heading:  lipgloss.NewStyle().Bold(true).Underline(true),
	}
}

func printStep(w io.Writer, st styles, n int, res gesture.StepResult, calls []gesture.HostCall) {
	header := st.step.Render(fmt.Sprintf("%3d %-8s", n, res.Action))
	counts := fmt.Sprintf("%d/%d consumed", res.Consumed, res.Events)
	if res.Consumed < res.Events {
		counts = st.rejected.Render(counts)
	} else {
		counts = st.dim.Render(counts)
	}
	fmt.Fprintf(w, "%s %s\n", header, counts)
	for _, c := range calls {
		fmt.Fprintf(w, "      %s\n", st.call.Render(c.String()))
	}
}

func printState(w io.Writer, st styles, s gesture.State) {
	fmt.Fprintln(w, st.dim.Render(fmt.Sprintf("      valid=%v invalid=%v zooming=%v armed=%v blocked=%v",
		s.Valid, s.Invalid, s.Zooming, s.ZoomArmed, s.ZoomBlocked)))
}

func printMetrics(ctx context.Context, w io.Writer, st styles, reader *sdkmetric.ManualReader) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}

	totals := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			sum, ok := md.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[md.Name] += dp.Value
			}
		}
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w)
	fmt.Fprintln(w, st.heading.Render("Metrics"))
	for _, name := range names {
		fmt.Fprintf(w, "  %-26s %d\n", name, totals[name])
	}
	return nil
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func runReplay(t *testing.T, script string, opts options) string {
	t.Helper()
	prev := zerolog.GlobalLevel()
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	opts.noColor = true
	var out bytes.Buffer
	if err := run(context.Background(), &out, script, opts); err != nil {
		t.Fatalf("run: %v", err)
	}
	return out.String()
}

func TestReplaySession(t *testing.T) {
	out := runReplay(t, filepath.Join("testdata", "session.yaml"), options{})

	counts := map[string]int{
		"Scroll(":            5,
		"ZoomSequenceBegin(": 1,
		"ZoomSequenceChange": 7,
		"ZoomSequenceEnd()":  1,
		"Undo()":             2,
		"Redo()":             1,
		"ShowFloatingMenu":   0,
	}
	for call, want := range counts {
		if got := strings.Count(out, call); got != want {
			t.Errorf("%s appears %d times, want %d\n%s", call, got, want, out)
		}
	}
	if !strings.Contains(out, "  1 drag") {
		t.Errorf("missing first step header:\n%s", out)
	}
}

func TestReplayMetrics(t *testing.T) {
	out := runReplay(t, filepath.Join("testdata", "session.yaml"), options{metrics: true})

	for _, line := range []string{"Metrics", "gesture.taps", "gesture.desyncs", "gesture.pan.events"} {
		if !strings.Contains(out, line) {
			t.Errorf("output missing %q:\n%s", line, out)
		}
	}
}

func TestReplayState(t *testing.T) {
	out := runReplay(t, filepath.Join("testdata", "session.yaml"), options{state: true})
	if !strings.Contains(out, "valid=[] invalid=[]") {
		t.Errorf("state lines missing:\n%s", out)
	}
}

func TestReplayCountGatedConfig(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "gesture.yaml")
	if err := os.WriteFile(cfgPath, []byte("tap_mode: count\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "moved-tap.yaml")
	data := []byte(`
steps:
  - {action: press, seq: 1, x: 0, y: 0}
  - {action: press, seq: 2, x: 50, y: 0}
  - {action: move, seq: 2, x: 80, y: 0}
  - {action: release, seq: 1, x: 0, y: 0}
  - {action: release, seq: 2, x: 80, y: 0}
`)
	if err := os.WriteFile(script, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if out := runReplay(t, script, options{}); strings.Contains(out, "Undo()") {
		t.Errorf("movement-gated default tapped after a 30px move:\n%s", out)
	}
	if out := runReplay(t, script, options{configPath: cfgPath}); !strings.Contains(out, "Undo()") {
		t.Errorf("count-gated config did not tap:\n%s", out)
	}
}

func TestReplayErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("steps: [{action: jump}]"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		script string
		opts   options
	}{
		{"missing script", filepath.Join(dir, "nope.yaml"), options{}},
		{"bad script", bad, options{}},
		{"missing config", filepath.Join("testdata", "session.yaml"), options{configPath: filepath.Join(dir, "nope.yaml")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			tt.opts.noColor = true
			if err := run(context.Background(), &out, tt.script, tt.opts); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRootCmdRequiresScript(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error without a script argument")
	}
}

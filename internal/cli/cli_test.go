package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/observability"
	"github.com/matzehuels/stackchart/pkg/pipeline"
)

const testChart = `
title = "load"
width = 400
height = 200

[data]
path = "load.csv"
x = "time"

[[series]]
column = "cpu"

[[edge]]
edge = "left"
item = "ticks"

[[edge]]
edge = "bottom"
item = "ticks"
`

func writeChart(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "load.csv"), []byte("time,cpu\n0,10\n1,30\n2,20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(path, []byte(testChart), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		input    string
		format   string
		multiple bool
		want     string
	}{
		{"default from input", "", "charts/load.toml", "svg", false, "charts/load.svg"},
		{"explicit single", "out.svg", "load.toml", "svg", false, "out.svg"},
		{"multiple from input", "", "load.toml", "png", true, "load.png"},
		{"multiple strips known ext", "out/chart.svg", "load.toml", "pdf", true, "out/chart.pdf"},
		{"multiple keeps unknown ext", "out/chart.v2", "load.toml", "svg", true, "out/chart.v2.svg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(tt.output, tt.input, tt.format, tt.multiple); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePointer(t *testing.T) {
	tests := []struct {
		in      string
		x, y    float64
		wantErr bool
	}{
		{"10,20", 10, 20, false},
		{" 1.5 , 2 ", 1.5, 2, false},
		{"10", 0, 0, true},
		{"a,b", 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := parsePointer(tt.in)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("parsePointer(%q) error = %v, want INVALID_INPUT", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePointer(%q) error = %v", tt.in, err)
			}
			if !p.Active || p.X != tt.x || p.Y != tt.y {
				t.Errorf("parsePointer(%q) = %+v", tt.in, p)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "svg"},
		{"png", "png"},
		{"svg,pdf", "svg|pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := strings.Join(parseFormats(tt.in), "|"); got != tt.want {
				t.Errorf("parseFormats(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRootCommand(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := map[string]bool{"render": false, "ticks": false, "graph": false, "cache": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing --verbose flag")
	}
}

func TestVerboseSetsDebugLevel(t *testing.T) {
	defer observability.Reset()

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"-v", "cache", "path"})
	root.SetOut(io.Discard)
	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestRenderCommand(t *testing.T) {
	path := writeChart(t)
	out := filepath.Join(t.TempDir(), "load.svg")

	c := New(io.Discard, LogDebug)
	root := c.RootCommand()
	root.SetArgs([]string{"render", path, "--no-cache", "-o", out, "--width", "300"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !bytes.Contains(data, []byte(`viewBox="0 0 300 150"`)) {
		t.Errorf("output does not use the width override:\n%s", data)
	}
}

func TestRenderCommandBadPointer(t *testing.T) {
	path := writeChart(t)
	root := New(io.Discard, LogDebug).RootCommand()
	root.SetArgs([]string{"render", path, "--no-cache", "--pointer", "nope"})
	root.SetErr(io.Discard)
	if err := root.Execute(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestPrintTicks(t *testing.T) {
	ctx := context.Background()
	runner := pipeline.NewRunner(nil, log.New(io.Discard))
	opts := pipeline.Options{Config: writeChart(t)}

	loaded, err := runner.Load(ctx, opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m, err := runner.Mount(loaded, opts)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}

	var buf bytes.Buffer
	printTicks(&buf, m.State)
	out := buf.String()
	for _, want := range []string{"Inner area", "Axis", "Label", "Pixel", "20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"completion", "fish"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion error = %v", err)
	}
	if !strings.Contains(buf.String(), "stackchart") {
		t.Errorf("completion script does not mention stackchart")
	}
}

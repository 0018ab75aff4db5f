package pipeline

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/stackchart/pkg/cache"
	"github.com/matzehuels/stackchart/pkg/errors"
	"github.com/matzehuels/stackchart/pkg/observability"
	"github.com/matzehuels/stackchart/pkg/watch"
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
edge = "bottom"
item = "ticks"

[[inner]]
item = "guide-line-x"
`

func writeChart(t *testing.T) string {
	t.Helper()
	return writeDescription(t, testChart)
}

func writeDescription(t *testing.T, desc string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "load.csv"), []byte("time,cpu\n0,10\n1,30\n2,20\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "chart.toml")
	if err := os.WriteFile(path, []byte(desc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietLogger() *log.Logger { return log.New(io.Discard) }

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		formats []string
		wantErr bool
	}{
		{[]string{"svg", "png"}, false},
		{[]string{"PDF"}, false},
		{[]string{"svg", "json"}, true},
		{nil, false},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.formats, ","), func(t *testing.T) {
			err := ValidateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Config: "chart.toml", Formats: []string{" SVG "}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if opts.Formats[0] != "svg" || opts.Scale != DefaultScale || opts.Logger == nil {
		t.Errorf("defaults not applied: %+v", opts)
	}

	if err := (&Options{}).ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("missing config error = %v", err)
	}
	if err := (&Options{Config: "c", Width: -5}).ValidateAndSetDefaults(); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("negative width error = %v", err)
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	plain := Options{Scale: 2}
	pointer := watch.PointerAt(10, 10)
	withPointer := Options{Scale: 2, Pointer: &pointer}

	if plain.ArtifactKeyOpts("svg") == withPointer.ArtifactKeyOpts("svg") {
		t.Error("pointer should change the artifact key")
	}
	if plain.ArtifactKeyOpts("svg").Scale != 0 {
		t.Error("scale only matters for png")
	}
	if plain.ArtifactKeyOpts("png").Scale != 2 {
		t.Error("png key lost its scale")
	}
}

func TestExecute(t *testing.T) {
	path := writeChart(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, quietLogger())
	ctx := context.Background()

	first, err := r.Execute(ctx, Options{Config: path})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	svg := string(first.Artifacts["svg"])
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, `class="series"`) {
		t.Errorf("unexpected svg: %.200s", svg)
	}
	if first.CacheInfo.RenderHit || first.Stats.Rows != 3 || first.Stats.Series != 1 {
		t.Errorf("first run = %+v", first)
	}

	second, err := r.Execute(ctx, Options{Config: path})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !second.CacheInfo.RenderHit || string(second.Artifacts["svg"]) != svg {
		t.Error("second run should come from cache")
	}

	refreshed, err := r.Execute(ctx, Options{Config: path, Refresh: true})
	if err != nil || refreshed.CacheInfo.RenderHit {
		t.Errorf("refresh = %+v, %v", refreshed.CacheInfo, err)
	}

	// Changing the data changes the key.
	dataPath := filepath.Join(filepath.Dir(path), "load.csv")
	if err := os.WriteFile(dataPath, []byte("time,cpu\n0,1\n1,2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	third, err := r.Execute(ctx, Options{Config: path})
	if err != nil || third.CacheInfo.RenderHit || third.DataHash == first.DataHash {
		t.Errorf("after data change = %+v, %v", third.CacheInfo, err)
	}
}

func TestExecuteErrors(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	ctx := context.Background()

	if _, err := r.Execute(ctx, Options{Config: filepath.Join(t.TempDir(), "none.toml")}); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing config error = %v", err)
	}

	path := writeChart(t)
	if _, err := r.Execute(ctx, Options{Config: path, Data: filepath.Join(t.TempDir(), "none.csv")}); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing data error = %v", err)
	}
	if _, err := r.Execute(ctx, Options{Config: path, Formats: []string{"gif"}}); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("bad format error = %v", err)
	}
}

func TestMountOverrides(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	opts := Options{Config: writeChart(t), Width: 600, Debug: true}
	loaded, err := r.Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m, err := r.Mount(loaded, opts)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	outer := m.State.Outer.Get()
	if outer.Width() != 600 || outer.Height() != 300 {
		t.Errorf("outer = %v, want 600x300 (ratio kept)", outer)
	}
	if !m.State.Pre.Debug.Get() {
		t.Error("debug override not applied")
	}
}

func TestPointerDrawsGuideLine(t *testing.T) {
	r := NewRunner(nil, quietLogger())
	path := writeChart(t)
	p := watch.PointerAt(200, 80)

	plain, err := r.Execute(context.Background(), Options{Config: path})
	if err != nil {
		t.Fatal(err)
	}
	hover, err := r.Execute(context.Background(), Options{Config: path, Pointer: &p})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(hover.Artifacts["svg"]), "<line") <= strings.Count(string(plain.Artifacts["svg"]), "<line") {
		t.Error("pointer inside the inner area should add a guide line")
	}
}

func TestPointerOnLargeChart(t *testing.T) {
	desc := strings.Replace(testChart, "width = 400\nheight = 200", "width = 1200\nheight = 600", 1)
	r := NewRunner(nil, quietLogger())
	opts := Options{Config: writeDescription(t, desc)}
	p := watch.PointerAt(1000, 300)
	opts.Pointer = &p

	loaded, err := r.Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	m, err := r.Mount(loaded, opts)
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if outer := m.State.Outer.Get(); outer.Width() != 1200 || outer.Height() != 600 {
		t.Errorf("outer = %v, want 1200x600", outer)
	}
	cur := m.State.Cursor.Get()
	if !cur.Hover || !cur.Inner {
		t.Errorf("cursor = %+v, want hover inside the inner area", cur)
	}
}

type renderHooks struct {
	observability.NoopPipelineHooks
	starts, completes int
}

func (h *renderHooks) OnRenderStart(context.Context, []string) { h.starts++ }
func (h *renderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {
	h.completes++
}

func TestRenderHooks(t *testing.T) {
	hooks := &renderHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	r := NewRunner(nil, quietLogger())
	if _, err := r.Execute(context.Background(), Options{Config: writeChart(t)}); err != nil {
		t.Fatal(err)
	}
	if hooks.starts != 1 || hooks.completes != 1 {
		t.Errorf("hooks = %+v", *hooks)
	}
}

func TestWatchRerenders(t *testing.T) {
	path := writeChart(t)
	r := NewRunner(nil, quietLogger())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runs := make(chan *Result, 4)
	done := make(chan error, 1)
	go func() {
		done <- r.Watch(ctx, Options{Config: path}, 20*time.Millisecond, func(res *Result, err error) {
			if err != nil {
				t.Errorf("run error = %v", err)
			}
			runs <- res
		})
	}()

	first := <-runs
	dataPath := filepath.Join(filepath.Dir(path), "load.csv")
	if err := os.WriteFile(dataPath, []byte("time,cpu\n0,5\n1,6\n2,7\n3,8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case second := <-runs:
		if second.Stats.Rows != 4 || second.DataHash == first.DataHash {
			t.Errorf("second run = %+v", second.Stats)
		}
	case <-ctx.Done():
		t.Fatal("no re-render after data change")
	}

	cancel()
	if err := <-done; err != context.Canceled {
		t.Errorf("Watch() = %v, want context.Canceled", err)
	}
}

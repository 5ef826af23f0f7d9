package viz

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/san-kum/strarray/internal/strarray"
)

func TestRenderSlots(t *testing.T) {
	arr, err := strarray.New(2, strarray.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	arr.Append("alpha")
	arr.Append("beta")
	arr.Append("gamma")

	out := RenderSlots(arr, GetTheme("minimal"))
	for _, want := range []string{"alpha", "beta", "gamma", "·", "count 3 / capacity 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 12, "short"},
		{"abcdefghijklmnop", 5, "abcd…"},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("nonexistent").Name != "default" {
		t.Error("expected fallback to default theme")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}

func TestSimulateGrowth(t *testing.T) {
	rec, err := SimulateGrowth(9, 1)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}

	if len(rec.Counts) != 9 {
		t.Fatalf("expected 9 samples, got %d", len(rec.Counts))
	}
	if rec.Capacities[8] != 16 {
		t.Errorf("expected final capacity 16, got %v", rec.Capacities[8])
	}
	wantGrows := []GrowEvent{{1, 2, 1}, {2, 4, 2}, {4, 8, 4}, {8, 16, 8}}
	if len(rec.Grows) != len(wantGrows) {
		t.Fatalf("expected %d grows, got %d", len(wantGrows), len(rec.Grows))
	}
	for i, g := range wantGrows {
		if rec.Grows[i] != g {
			t.Errorf("grow %d = %+v, want %+v", i, rec.Grows[i], g)
		}
	}

	chart := GrowthChart(rec, 8, 40)
	if !strings.Contains(chart, "capacity") {
		t.Errorf("chart missing caption:\n%s", chart)
	}
}

func TestSimulateGrowth_InvalidCapacity(t *testing.T) {
	if _, err := SimulateGrowth(3, 0); err == nil {
		t.Error("expected error for zero capacity")
	}
}

func TestFillBar(t *testing.T) {
	if ThemeMinimal.FillBar(1, 0, 10) != "" {
		t.Error("expected empty bar for zero capacity")
	}
	bar := ThemeMinimal.FillBar(2, 4, 10)
	if strings.Count(bar, "█") != 5 || strings.Count(bar, "░") != 5 {
		t.Errorf("unexpected bar %q", bar)
	}
}

package viz

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/strarray/internal/strarray"
)

type GrowEvent struct {
	From, To int
	Count    int
}

// GrowthRecorder tracks the count and capacity of an array after every
// insertion.
type GrowthRecorder struct {
	Counts     []float64
	Capacities []float64
	Grows      []GrowEvent
	capacity   int
}

func NewGrowthRecorder(initialCapacity int) *GrowthRecorder {
	return &GrowthRecorder{capacity: initialCapacity}
}

func (g *GrowthRecorder) OnGrow(from, to int) {
	g.capacity = to
	g.Grows = append(g.Grows, GrowEvent{From: from, To: to, Count: from})
}

func (g *GrowthRecorder) OnInsert(index, count int) {
	g.Counts = append(g.Counts, float64(count))
	g.Capacities = append(g.Capacities, float64(g.capacity))
}

func (g *GrowthRecorder) OnRemove(index, count int) {
	g.Counts = append(g.Counts, float64(count))
	g.Capacities = append(g.Capacities, float64(g.capacity))
}

// SimulateGrowth appends n values to a fresh array of the given capacity
// and returns what the recorder saw.
func SimulateGrowth(n, capacity int) (*GrowthRecorder, error) {
	rec := NewGrowthRecorder(capacity)
	arr, err := strarray.New(capacity,
		strarray.WithObserver(rec),
		strarray.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		return nil, err
	}
	defer arr.Destroy()

	for i := 0; i < n; i++ {
		arr.Append(fmt.Sprintf("v%d", i))
	}
	return rec, nil
}

// GrowthChart plots capacity and count against the number of appends.
func GrowthChart(rec *GrowthRecorder, height, width int) string {
	if len(rec.Counts) == 0 {
		return "no insertions recorded"
	}
	return asciigraph.PlotMany([][]float64{rec.Capacities, rec.Counts},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(asciigraph.Green, asciigraph.Yellow),
		asciigraph.Caption("capacity (green) vs count (yellow)"),
	)
}

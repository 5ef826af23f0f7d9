package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/strarray/internal/script"
)

type Snapshot struct {
	Name     string              `json:"name"`
	Capacity int                 `json:"capacity"`
	Count    int                 `json:"count"`
	Elements []string            `json:"elements"`
	Misses   int                 `json:"misses"`
	Steps    int                 `json:"steps"`
	Trace    []script.StepResult `json:"trace,omitempty"`
}

func NewSnapshot(result *script.Result, withTrace bool) Snapshot {
	snap := Snapshot{
		Name:     result.Name,
		Capacity: result.Capacity,
		Count:    result.Count,
		Elements: make([]string, len(result.Elements)),
		Misses:   result.Misses,
		Steps:    len(result.Trace),
	}
	copy(snap.Elements, result.Elements)
	if withTrace {
		snap.Trace = result.Trace
	}
	return snap
}

func WriteJSON(w io.Writer, snap Snapshot) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snap)
}

func ExportJSON(path string, snap Snapshot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, snap)
}

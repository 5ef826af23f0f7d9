package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/san-kum/strarray/internal/strarray"
	"gopkg.in/yaml.v3"
)

// Script is a named sequence of array operations.
type Script struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Capacity    int    `yaml:"capacity"`
	Steps       []Step `yaml:"steps"`
}

// Step is a single operation. Index is used by insert and read, Value by
// insert, append and remove.
type Step struct {
	Op    string `yaml:"op"`
	Value string `yaml:"value,omitempty"`
	Index int    `yaml:"index,omitempty"`
}

type StepResult struct {
	Op     string `json:"op"`
	Value  string `json:"value,omitempty"`
	Index  int    `json:"index"`
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`
	Array  string `json:"array"`
}

type Result struct {
	Name     string       `json:"name"`
	Capacity int          `json:"capacity"`
	Count    int          `json:"count"`
	Elements []string     `json:"elements"`
	Trace    []StepResult `json:"trace"`
	Misses   int          `json:"misses"`
}

type Options struct {
	Out            io.Writer
	PrintAfterEach bool
}

func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Name == "" {
		s.Name = path
	}

	return &s, nil
}

// Validate checks that every step names a registered op.
func (s *Script) Validate(reg *Registry) error {
	if s.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", s.Capacity)
	}
	for i, step := range s.Steps {
		if _, err := reg.Get(step.Op); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

// Run executes the steps of s against arr in order. Lookup misses from read
// and remove are recorded and the run continues; any other error stops it.
// Insert contract violations panic out of Run unchanged.
func Run(ctx context.Context, s *Script, arr *strarray.Array, reg *Registry, opts Options) (*Result, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	result := &Result{
		Name:  s.Name,
		Trace: make([]StepResult, 0, len(s.Steps)),
	}
	finish := func() {
		result.Capacity = arr.Cap()
		result.Count = arr.Len()
		result.Elements = arr.Elements()
	}

	for i, step := range s.Steps {
		select {
		case <-ctx.Done():
			finish()
			return result, ctx.Err()
		default:
		}

		h, err := reg.Get(step.Op)
		if err != nil {
			finish()
			return result, fmt.Errorf("step %d: %w", i+1, err)
		}

		output, err := h(arr, step, out)
		sr := StepResult{
			Op:     step.Op,
			Value:  step.Value,
			Index:  step.Index,
			Output: output,
			Array:  arr.String(),
		}
		if err != nil {
			if !isMiss(err) {
				finish()
				return result, fmt.Errorf("step %d %s: %w", i+1, step.Op, err)
			}
			sr.Error = err.Error()
			result.Misses++
		}
		result.Trace = append(result.Trace, sr)

		if opts.PrintAfterEach && step.Op != "print" {
			if err := arr.Print(out); err != nil {
				finish()
				return result, err
			}
		}
	}

	finish()
	return result, nil
}

func isMiss(err error) bool {
	return errors.Is(err, strarray.ErrValueNotFound) ||
		(errors.Is(err, strarray.ErrIndexOutOfRange) && !strarray.IsFatal(err))
}

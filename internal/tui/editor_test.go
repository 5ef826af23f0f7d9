package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/strarray/internal/strarray"
	"github.com/san-kum/strarray/internal/viz"
)

func newEditor(t *testing.T) (Model, *strarray.Array) {
	t.Helper()
	events := NewEventLog()
	arr, err := strarray.New(1,
		strarray.WithObserver(events),
		strarray.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	return NewEditor(arr, viz.ThemeMinimal, events), arr
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestEditorAppendInsertRemove(t *testing.T) {
	m, arr := newEditor(t)

	m = press(m, "a", "o", "n", "e", "enter")
	m = press(m, "a", "t", "w", "o", "enter")
	if arr.String() != "[one,two]" {
		t.Fatalf("after appends: %s", arr.String())
	}

	m = press(m, "left", "i", "x", "enter")
	if arr.String() != "[one,x,two]" {
		t.Fatalf("after insert: %s", arr.String())
	}

	m = press(m, "d")
	if arr.String() != "[one,two]" {
		t.Fatalf("after remove at cursor: %s", arr.String())
	}
	if !strings.Contains(m.status, "removed") {
		t.Errorf("unexpected status %q", m.status)
	}
}

func TestEditorRemoveMissing(t *testing.T) {
	m, arr := newEditor(t)
	m = press(m, "a", "k", "enter")
	m = press(m, "r", "z", "enter")

	if !m.statusErr || !strings.Contains(m.status, "not found") {
		t.Errorf("expected not-found status, got %q", m.status)
	}
	if arr.Len() != 1 {
		t.Errorf("array mutated: %s", arr.String())
	}
}

func TestEditorCursorBounds(t *testing.T) {
	m, arr := newEditor(t)
	m = press(m, "left", "left")
	if m.cursor != 0 {
		t.Errorf("cursor went below zero: %d", m.cursor)
	}
	m = press(m, "right", "right")
	if m.cursor != arr.Len() {
		t.Errorf("cursor beyond len: %d", m.cursor)
	}
	m = press(m, "i", "y", "enter")
	if arr.String() != "[y]" {
		t.Errorf("insert at end failed: %s", arr.String())
	}
}

func TestEditorInputEditing(t *testing.T) {
	m, arr := newEditor(t)
	m = press(m, "a", "a", "b", "backspace", "c", "enter")
	if arr.String() != "[ac]" {
		t.Errorf("expected [ac], got %s", arr.String())
	}
	m = press(m, "a", "q", "esc")
	if arr.Len() != 1 || m.mode != modeBrowse {
		t.Errorf("escape should cancel input: %s", arr.String())
	}
}

func TestEditorView(t *testing.T) {
	m, _ := newEditor(t)
	m = press(m, "a", "v", "enter", "a", "w", "enter")
	view := m.View()
	for _, want := range []string{"strarray editor", "count 2 / capacity 2", "grow 1 -> 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestEditorRemoveEmpty(t *testing.T) {
	m, _ := newEditor(t)
	m = press(m, "d")
	if !m.statusErr {
		t.Error("expected error status on empty array")
	}
}

package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/strarray/internal/strarray"
	"github.com/san-kum/strarray/internal/viz"
)

const maxEvents = 6

const (
	modeBrowse = iota
	modeInput
)

const (
	inputAppend = iota
	inputInsert
	inputRemove
)

type eventLog struct {
	lines []string
}

func (e *eventLog) add(format string, args ...any) {
	e.lines = append(e.lines, fmt.Sprintf(format, args...))
	if len(e.lines) > maxEvents {
		e.lines = e.lines[len(e.lines)-maxEvents:]
	}
}

func (e *eventLog) OnGrow(from, to int)       { e.add("grow %d -> %d", from, to) }
func (e *eventLog) OnInsert(index, count int) { e.add("insert @%d (count %d)", index, count) }
func (e *eventLog) OnRemove(index, count int) { e.add("remove @%d (count %d)", index, count) }

type Model struct {
	arr       *strarray.Array
	events    *eventLog
	theme     viz.Theme
	mode      int
	inputKind int
	cursor    int
	buf       string
	status    string
	statusErr bool
}

// NewEditor returns an editor over arr. The returned observer must be
// registered on arr for the event log to fill.
func NewEditor(arr *strarray.Array, theme viz.Theme, events strarray.Observer) Model {
	log, ok := events.(*eventLog)
	if !ok {
		log = &eventLog{}
	}
	return Model{arr: arr, events: log, theme: theme}
}

// NewEventLog returns an observer suitable for NewEditor.
func NewEventLog() strarray.Observer { return &eventLog{} }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.mode == modeInput {
			return m.inputKey(msg)
		}
		return m.browseKey(msg)
	}
	return m, nil
}

func (m Model) browseKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < m.arr.Len() {
			m.cursor++
		}
	case "a":
		m.mode, m.inputKind, m.buf = modeInput, inputAppend, ""
	case "i":
		m.mode, m.inputKind, m.buf = modeInput, inputInsert, ""
	case "r":
		m.mode, m.inputKind, m.buf = modeInput, inputRemove, ""
	case "d", "x":
		m.removeAtCursor()
	case "p":
		m.setStatus(m.arr.String(), false)
	}
	return m, nil
}

func (m Model) inputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.mode, m.buf = modeBrowse, ""
	case tea.KeyEnter:
		m.commit()
		m.mode, m.buf = modeBrowse, ""
	case tea.KeyBackspace:
		if r := []rune(m.buf); len(r) > 0 {
			m.buf = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		m.buf += " "
	case tea.KeyRunes:
		m.buf += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) commit() {
	switch m.inputKind {
	case inputAppend:
		m.arr.Append(m.buf)
		m.cursor = m.arr.Len()
		m.setStatus(fmt.Sprintf("appended %q", m.buf), false)
	case inputInsert:
		// the cursor never exceeds Len, so Insert cannot hit its fatal path
		idx := min(m.cursor, m.arr.Len())
		m.arr.Insert(m.buf, idx)
		m.setStatus(fmt.Sprintf("inserted %q at %d", m.buf, idx), false)
	case inputRemove:
		m.remove(m.buf)
	}
}

func (m *Model) removeAtCursor() {
	v, err := m.arr.Read(m.cursor)
	if err != nil {
		m.setStatus("no element under cursor", true)
		return
	}
	m.remove(v)
}

func (m *Model) remove(v string) {
	if err := m.arr.Remove(v); err != nil {
		if errors.Is(err, strarray.ErrValueNotFound) {
			m.setStatus(fmt.Sprintf("%q not found", v), true)
			return
		}
		m.setStatus(err.Error(), true)
		return
	}
	if m.cursor > m.arr.Len() {
		m.cursor = m.arr.Len()
	}
	m.setStatus(fmt.Sprintf("removed %q", v), false)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status, m.statusErr = s, isErr
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title().Render("strarray editor"))
	sb.WriteString("\n\n")
	sb.WriteString(viz.RenderSlots(m.arr, m.theme))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("cursor: %d\n\n", m.cursor))

	if m.mode == modeInput {
		prompt := map[int]string{inputAppend: "append", inputInsert: fmt.Sprintf("insert at %d", m.cursor), inputRemove: "remove"}[m.inputKind]
		sb.WriteString(fmt.Sprintf("%s> %s_\n", prompt, m.buf))
	} else if m.status != "" {
		if m.statusErr {
			sb.WriteString(m.theme.ErrorText().Render(m.status))
		} else {
			sb.WriteString(m.status)
		}
		sb.WriteString("\n")
	}

	if len(m.events.lines) > 0 {
		sb.WriteString("\n")
		for _, l := range m.events.lines {
			sb.WriteString(m.theme.IndexLabel().Render("  " + l))
			sb.WriteString("\n")
		}
	}

	sb.WriteString(m.theme.IndexLabel().Render("\n←/→ move  a append  i insert  r remove value  d remove at cursor  p print  q quit"))
	return sb.String()
}

func Run(arr *strarray.Array, theme viz.Theme, events strarray.Observer) error {
	_, err := tea.NewProgram(NewEditor(arr, theme, events), tea.WithAltScreen()).Run()
	return err
}

package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/strarray/internal/strarray"
)

// RenderSlots draws every slot of arr, live or empty, with its index
// underneath and a count/capacity footer.
func RenderSlots(arr *strarray.Array, theme Theme) string {
	elems := arr.Elements()
	capacity := arr.Cap()

	cells := make([]string, 0, capacity)
	for i := 0; i < capacity; i++ {
		var box string
		if i < len(elems) {
			v := elems[i]
			if v == "" {
				v = `""`
			}
			box = theme.LiveCell().Render(truncate(v, maxCellWidth))
		} else {
			box = theme.EmptyCell().Render("·")
		}
		label := theme.IndexLabel().Render(fmt.Sprintf("%d", i))
		cells = append(cells, lipgloss.JoinVertical(lipgloss.Center, box, label))
	}

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("count %d / capacity %d  ", len(elems), capacity))
	sb.WriteString(theme.FillBar(len(elems), capacity, 20))
	return sb.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/pullrefresh/pkg/content"
)

// View renders the header, content and footer.
func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.bodyView(), m.statusView(), m.help.View(m.keys))
}

// bodyRows is the number of rows left for the container.
func (m *Model) bodyRows() int {
	return max(1, m.height-1-lipgloss.Height(m.help.View(m.keys)))
}

func (m *Model) bodyView() string {
	rows := m.bodyRows()
	movement := m.container.Movement()
	lines := make([]string, 0, rows)
	for r := range rows {
		top := r * cellHeight
		if top < movement {
			lines = append(lines, m.headerLine(top, movement))
			continue
		}
		lines = append(lines, m.contentLine(r, top-movement))
	}
	return strings.Join(lines, "\n")
}

// headerLine draws the indicator on the lowest visible header row and
// fills the rest with the header background.
func (m *Model) headerLine(top, movement int) string {
	if top+cellHeight < movement {
		return headerStyle.Width(m.width).Render("")
	}
	indicator := m.header.Indicator
	if indicator.Indeterminate {
		return headerStyle.Width(m.width).Render("  " + m.spinner.View() + " refreshing")
	}
	label := "pull to refresh"
	style := headerStyle
	if hh := m.container.HeaderHeight(); hh > 0 && movement > hh {
		label = "release to refresh"
		style = armedStyle
	}
	bar := m.progress.ViewAs(indicator.Fraction())
	return style.Width(m.width).Render(fmt.Sprintf("  %s %s", bar, label))
}

// contentLine draws the content row whose top is y pixels below the
// content's own top edge.
func (m *Model) contentLine(row, y int) string {
	style := rowStyle
	if row%2 == 1 {
		style = rowAltStyle
	}
	switch c := m.container.Content().(type) {
	case *content.ScrollList:
		idx := (c.Offset() + y) / max(1, c.ItemExtent)
		if idx >= c.ItemCount {
			return ""
		}
		return style.Width(m.width).Render(m.itemLabel(idx))
	case *content.Recycler:
		return style.Width(m.width).Render(m.recyclerRow(c, y))
	case *content.Static:
		if row == m.bodyRows()/2 {
			return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, labelStyle.Render(c.Label))
		}
	}
	return ""
}

func (m *Model) recyclerRow(r *content.Recycler, y int) string {
	switch lm := r.LayoutManager().(type) {
	case *content.LinearLayoutManager:
		idx := (r.Offset() + y) / max(1, lm.ItemExtent)
		if idx >= r.ItemCount {
			return ""
		}
		return m.itemLabel(idx)
	case *content.GridLayoutManager:
		span := max(1, lm.SpanCount)
		first := (r.Offset() + y) / max(1, lm.RowExtent) * span
		colWidth := max(1, m.width/span)
		var b strings.Builder
		for i := first; i < min(first+span, r.ItemCount); i++ {
			b.WriteString(lipgloss.NewStyle().Width(colWidth).Render(m.itemLabel(i)))
		}
		return b.String()
	}
	return ""
}

func (m *Model) itemLabel(idx int) string {
	return fmt.Sprintf("  item %03d  (refresh #%d)", idx, m.refreshes)
}

func (m *Model) statusView() string {
	c := m.container
	state := "idle"
	switch {
	case c.IsRefreshing():
		state = accentStyle.Render("refreshing")
	case c.IsDragging():
		state = "dragging"
	}
	line := fmt.Sprintf("%s  movement %dpx  progress %d%%  %s content",
		state, c.Movement(), c.Progress(), c.ContentKind())
	if m.status != "" {
		msg := statusStyle.Render(m.status)
		if m.statusErr {
			msg = errorStyle.Render(m.status)
		}
		line += "  " + msg
	}
	return statusStyle.Render(line)
}

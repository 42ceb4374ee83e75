package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkuhnert/chartflow/pkg/chart"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ChartListModel - Interactive chart selection
// =============================================================================

// chartItem is one selectable row in the picker.
type chartItem struct {
	Name string
	Type string
	Data string
}

// ChartListModel is the bubbletea model for interactive chart selection.
type ChartListModel struct {
	Items    []chartItem
	Cursor   int
	Selected string
	Height   int
	Offset   int
}

// NewChartListModel creates a picker over the charts in a config file.
func NewChartListModel(file *chart.File) ChartListModel {
	items := make([]chartItem, 0, len(file.Charts))
	for _, name := range file.Names() {
		cfg := file.Charts[name]
		typ := cfg.Type
		if typ == "" {
			typ = chart.TypeSankey
		}
		items = append(items, chartItem{Name: name, Type: typ, Data: cfg.Data})
	}
	return ChartListModel{
		Items:  items,
		Height: 15,
	}
}

func (m ChartListModel) Init() tea.Cmd {
	return nil
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			m.Selected = m.Items[m.Cursor].Name
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ChartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Items) {
		end = len(m.Items)
	}

	for i := m.Offset; i < end; i++ {
		item := m.Items[i]

		cursor := "  "
		style := listNormalStyle
		if i == m.Cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		b.WriteString(cursor)
		b.WriteString(style.Render(item.Name))
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s · %s", item.Type, item.Data)))
		b.WriteString("\n")
	}

	return b.String()
}

// pickChart runs the interactive picker and returns the chosen chart
// name. An empty string means the user quit without choosing.
func pickChart(file *chart.File) (string, error) {
	p := tea.NewProgram(NewChartListModel(file))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("chart picker: %w", err)
	}
	m, ok := final.(ChartListModel)
	if !ok {
		return "", nil
	}
	return m.Selected, nil
}

package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/pipeline"
	"github.com/mc3abe-oss/MC3-Conveyor-Console-sub000/pkg/schema"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ResultModel - Interactive result browsing
// =============================================================================

// outputRow is one output field in the browser.
type outputRow struct {
	Name  string
	Value string
}

// ResultModel is the bubbletea model for browsing a calculation result.
// Output fields are listed in a scrollable table; findings for the
// selected field (and global findings) are shown beneath it.
type ResultModel struct {
	Result pipeline.Result
	Rows   []outputRow
	Cursor int
	Height int
	Offset int
}

// NewResultModel creates a result browser over every populated output.
func NewResultModel(result pipeline.Result) ResultModel {
	var rows []outputRow
	if result.Outputs != nil {
		fields := result.Outputs.Fields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rows = append(rows, outputRow{Name: name, Value: formatValue(fields[name])})
		}
	}
	return ResultModel{
		Result: result,
		Rows:   rows,
		Height: 15,
	}
}

func (m ResultModel) Init() tea.Cmd {
	return nil
}

func (m ResultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "g", "home":
			m.Cursor = 0
			m.Offset = 0
		case "G", "end":
			m.Cursor = len(m.Rows) - 1
			if m.Cursor >= m.Height {
				m.Offset = m.Cursor - m.Height + 1
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 10
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ResultModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Calculation Result"))
	b.WriteString("  ")
	if m.Result.Success {
		b.WriteString(StyleSuccess.Render("passed"))
	} else {
		b.WriteString(styleIconError.Render(fmt.Sprintf("%d errors", len(m.Result.Errors))))
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Rows) {
		end = len(m.Rows)
	}

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		flag := ""
		if f := findingFor(m.Result, r.Name); f != nil {
			switch f.Severity {
			case schema.SeverityError:
				flag = iconError
			case schema.SeverityWarning:
				flag = iconWarning
			default:
				flag = iconInfo
			}
		}
		rows = append(rows, []string{cursor, r.Name, r.Value, flag})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Output", "Value", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx == m.Cursor {
				return listSelectedStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))
	b.WriteString("\n\n")

	b.WriteString(m.findingsView())

	return b.String()
}

// findingsView renders the findings for the selected field, falling back
// to the overall finding counts.
func (m ResultModel) findingsView() string {
	var b strings.Builder

	if len(m.Rows) > 0 {
		name := m.Rows[m.Cursor].Name
		if f := findingFor(m.Result, name); f != nil {
			switch f.Severity {
			case schema.SeverityError:
				b.WriteString(styleIconError.Render(iconError + " " + f.Message))
			case schema.SeverityWarning:
				b.WriteString(StyleWarning.Render(iconWarning + " " + f.Message))
			default:
				b.WriteString(listDimStyle.Render(iconInfo + " " + f.Message))
			}
			b.WriteString("\n")
			return b.String()
		}
	}

	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d errors · %d warnings",
		len(m.Result.Errors), len(m.Result.Warnings))))
	b.WriteString("\n")
	return b.String()
}

// findingFor returns the first finding attached to the named field.
func findingFor(result pipeline.Result, field string) *schema.Finding {
	for i := range result.Errors {
		if result.Errors[i].Field == field {
			return &result.Errors[i]
		}
	}
	for i := range result.Warnings {
		if result.Warnings[i].Field == field {
			return &result.Warnings[i]
		}
	}
	return nil
}

package cli

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ericfisherdev/tasktracker/internal/domain/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	idStyle     = cellStyle.Faint(true).Width(6)
	titleStyle  = cellStyle.Width(22)
	rightStyle  = cellStyle.Align(lipgloss.Right)
)

// renderTaskTable lays tasks out in the Id/Task/Description/Status table.
func renderTaskTable(tasks []model.Task) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Id", "Task", "Description", "Status").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			switch col {
			case 0:
				return idStyle
			case 1:
				return titleStyle
			default:
				return rightStyle
			}
		})

	for _, task := range tasks {
		t.Row(strconv.FormatInt(task.ID, 10), task.Title, task.Description, task.Status())
	}

	return t.Render()
}

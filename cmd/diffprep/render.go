package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Cyclone1070/diffprep/internal/tool/directory"
)

var (
	listingTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	listingHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	listingCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	listingDirStyle    = listingCellStyle.Foreground(lipgloss.Color("39"))
	listingBinaryStyle = listingCellStyle.Foreground(lipgloss.Color("241")) // Dim gray
)

// renderListing draws a directory listing as a table: directories first,
// then files with size, modification time and the binary-only marker.
func renderListing(resp *directory.ListDirResponse) string {
	rows := make([][]string, 0, len(resp.Dirs)+len(resp.Files))
	for _, dir := range resp.Dirs {
		rows = append(rows, []string{dir + "/", "", "", ""})
	}
	for _, f := range resp.Files {
		binaryOnly := ""
		if f.BinaryComparisonOnly {
			binaryOnly = "binary"
		}
		rows = append(rows, []string{f.Name, f.HumanReadableSize, f.LastModified, binaryOnly})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("NAME", "SIZE", "MODIFIED", "COMPARE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return listingHeaderStyle
			case row < len(resp.Dirs):
				return listingDirStyle
			case rows[row][3] != "":
				return listingBinaryStyle
			default:
				return listingCellStyle
			}
		})

	return listingTitleStyle.Render(resp.CurrentDir) + "\n" + t.Render()
}

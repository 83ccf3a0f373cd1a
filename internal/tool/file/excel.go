package file

import (
	"strings"

	"github.com/Cyclone1070/diffprep/internal/tool/spreadsheet"
)

// ExcelContent flattens one side of a spreadsheet diff. Each segment renders
// as its title followed by the position marker and text of every line, one
// per row; segments are separated by a newline.
func ExcelContent(segments []spreadsheet.Segment) ReadContent {
	blocks := make([]string, 0, len(segments))
	for _, segment := range segments {
		rows := []string{segment.Title}
		for _, line := range segment.Lines {
			if line.Pos != nil {
				rows = append(rows, *line.Pos)
			}
			if line.Text != nil {
				rows = append(rows, *line.Text)
			}
		}
		blocks = append(blocks, strings.Join(rows, "\n"))
	}
	return ReadContent{
		Charset: ExcelCharset,
		Content: strings.Join(blocks, "\n"),
	}
}

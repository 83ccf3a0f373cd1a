package file

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cyclone1070/diffprep/internal/tool/spreadsheet"
)

func TestExcelContent(t *testing.T) {
	tests := []struct {
		name     string
		segments []spreadsheet.Segment
		expected string
	}{
		{
			name:     "no segments",
			segments: nil,
			expected: "",
		},
		{
			name:     "title only",
			segments: []spreadsheet.Segment{{Title: "--- Sheet1"}},
			expected: "--- Sheet1",
		},
		{
			name: "absent fields are skipped",
			segments: []spreadsheet.Segment{{
				Title: "+++ Sheet1",
				Lines: []spreadsheet.Line{
					{Pos: strPtr("@@ row 1 @@")},
					{Text: strPtr("+ x")},
					{Pos: strPtr("@@ row 3 @@"), Text: strPtr("+ y")},
					{},
				},
			}},
			expected: "+++ Sheet1\n@@ row 1 @@\n+ x\n@@ row 3 @@\n+ y",
		},
		{
			name: "segments are newline separated",
			segments: []spreadsheet.Segment{
				{Title: "--- A", Lines: []spreadsheet.Line{{Text: strPtr("- 1")}}},
				{Title: "--- B"},
			},
			expected: "--- A\n- 1\n--- B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExcelContent(tt.segments)
			assert.Equal(t, ReadContent{Charset: "(Excel)", Content: tt.expected}, got)
		})
	}
}

package spreadsheet

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// workbookReader loads the sheets of a workbook.
type workbookReader interface {
	Sheets(path string) ([]Sheet, error)
}

// cellEscaper keeps every row on one line of the rendered sheet.
var cellEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`)

// Differ compares two workbooks sheet by sheet, row by row.
type Differ struct {
	reader workbookReader
}

// NewDiffer creates a Differ that reads workbooks with excelize.
func NewDiffer() *Differ {
	return &Differ{reader: NewExcelizeReader()}
}

// NewDifferWithReader creates a Differ with a custom workbook reader (for testing).
func NewDifferWithReader(reader workbookReader) *Differ {
	return &Differ{reader: reader}
}

// Diff returns one segment per changed sheet on each side. Sheets are taken
// in the old workbook's order, followed by sheets that only exist in the new
// one. A sheet missing from one side is compared against an empty sheet.
func (d *Differ) Diff(oldPath, newPath string) (*Split, error) {
	oldSheets, err := d.reader.Sheets(oldPath)
	if err != nil {
		return nil, &WorkbookError{Path: oldPath, Cause: err}
	}
	newSheets, err := d.reader.Sheets(newPath)
	if err != nil {
		return nil, &WorkbookError{Path: newPath, Cause: err}
	}

	oldRows := make(map[string][][]string, len(oldSheets))
	newRows := make(map[string][][]string, len(newSheets))
	var order []string
	for _, s := range oldSheets {
		oldRows[s.Name] = s.Rows
		order = append(order, s.Name)
	}
	for _, s := range newSheets {
		newRows[s.Name] = s.Rows
		if _, ok := oldRows[s.Name]; !ok {
			order = append(order, s.Name)
		}
	}

	split := &Split{Old: []Segment{}, New: []Segment{}}
	for _, name := range order {
		oldSeg, newSeg, changed := diffSheet(name, oldRows[name], newRows[name])
		if !changed {
			continue
		}
		split.Old = append(split.Old, oldSeg)
		split.New = append(split.New, newSeg)
	}
	return split, nil
}

// diffSheet diffs the rendered rows of one sheet. Unchanged rows are left out
// of both segments.
func diffSheet(name string, oldRows, newRows [][]string) (oldSeg, newSeg Segment, changed bool) {
	oldSeg = Segment{Title: "--- " + name, Lines: []Line{}}
	newSeg = Segment{Title: "+++ " + name, Lines: []Line{}}

	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(renderRows(oldRows), renderRows(newRows))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(oldChars, newChars, false), lineArray)

	oldRow, newRow := 1, 1
	for _, diff := range diffs {
		rows := diffRows(diff.Text)
		switch diff.Type {
		case diffmatchpatch.DiffEqual:
			oldRow += len(rows)
			newRow += len(rows)
		case diffmatchpatch.DiffDelete:
			for _, row := range rows {
				oldSeg.Lines = append(oldSeg.Lines, newLine(oldRow, "- "+row))
				oldRow++
			}
			changed = true
		case diffmatchpatch.DiffInsert:
			for _, row := range rows {
				newSeg.Lines = append(newSeg.Lines, newLine(newRow, "+ "+row))
				newRow++
			}
			changed = true
		}
	}
	return oldSeg, newSeg, changed
}

func renderRows(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte('\t')
			}
			b.WriteString(cellEscaper.Replace(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// diffRows splits a line-mode diff chunk back into rows. Chunks always end
// with the row terminator written by renderRows.
func diffRows(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func newLine(row int, text string) Line {
	pos := fmt.Sprintf("@@ row %d @@", row)
	return Line{Pos: &pos, Text: &text}
}

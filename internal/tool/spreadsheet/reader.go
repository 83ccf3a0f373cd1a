package spreadsheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ExcelizeReader loads workbooks from disk.
type ExcelizeReader struct{}

// NewExcelizeReader creates a new ExcelizeReader.
func NewExcelizeReader() *ExcelizeReader {
	return &ExcelizeReader{}
}

// Sheets returns every worksheet of the workbook at path in workbook order.
func (ExcelizeReader) Sheets(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := f.GetSheetList()
	sheets := make([]Sheet, 0, len(names))
	for _, name := range names {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Rows: rows})
	}
	return sheets, nil
}

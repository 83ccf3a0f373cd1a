package spreadsheet

// Line is one row of a sheet diff. Either field may be absent.
type Line struct {
	Pos  *string `json:"pos,omitempty"`
	Text *string `json:"text,omitempty"`
}

// Segment is the diff of a single sheet as seen from one side.
type Segment struct {
	Title string `json:"title"`
	Lines []Line `json:"lines"`
}

// Split holds the per-sheet segments of both sides of a workbook diff.
// Old and New always have the same length and the same sheet order.
type Split struct {
	Old []Segment `json:"old"`
	New []Segment `json:"new"`
}

// Sheet is the cell text of one worksheet, row by row.
type Sheet struct {
	Name string
	Rows [][]string
}

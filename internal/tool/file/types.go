package file

// Charset sentinels for content that was not decoded as text.
const (
	NotTextfileCharset = "(bytes array)"
	ExcelCharset       = "(Excel)"
	BinaryCharset      = "(binary)"
)

// SpreadsheetExtension is the default extension routed to the spreadsheet differ.
const SpreadsheetExtension = "xlsx"

// ReadContent is one side of a comparison after decoding.
// The zero value stands for a side with no file at all.
type ReadContent struct {
	Charset string `json:"charset"`
	Content string `json:"content"`
}

// ComparisonMode is how a pair of paths is compared. It is derived once per
// request by DetectMode.
type ComparisonMode int

const (
	ModeTextText ComparisonMode = iota
	ModeTextEmpty
	ModeEmptyText
	ModeSpreadsheetSpreadsheet
	ModeBinaryBinary
)

func (m ComparisonMode) String() string {
	switch m {
	case ModeTextText:
		return "text/text"
	case ModeTextEmpty:
		return "text/empty"
	case ModeEmptyText:
		return "empty/text"
	case ModeSpreadsheetSpreadsheet:
		return "spreadsheet/spreadsheet"
	case ModeBinaryBinary:
		return "binary/binary"
	default:
		return "unknown"
	}
}

// -- Save --

// SaveRequest carries the arguments of a save operation.
type SaveRequest struct {
	Path    string `json:"path"`
	Content string `json:"content"`
	Charset string `json:"charset"`
}

func (r *SaveRequest) Validate() error {
	if r.Path == "" {
		return ErrPathRequired
	}
	return nil
}

// SaveResponse reports what was written.
type SaveResponse struct {
	Path         string `json:"path"`
	Charset      string `json:"charset"`
	BytesWritten int    `json:"bytes_written"`
}

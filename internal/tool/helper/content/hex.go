package content

import "strings"

// HexRowLength is the number of bytes rendered per hex dump line.
const HexRowLength = 16

const hexDigits = "0123456789ABCDEF"

// HexDump renders data as rows of HexRowLength uppercase hex pairs separated by
// single spaces. Every row, including a short final row, ends with a newline.
func HexDump(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	rows := (len(data) + HexRowLength - 1) / HexRowLength
	var b strings.Builder
	// Three characters per byte covers the pair plus its separator or newline.
	b.Grow(len(data)*3 + rows)

	for start := 0; start < len(data); start += HexRowLength {
		end := min(start+HexRowLength, len(data))
		for i, c := range data[start:end] {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(hexDigits[c>>4])
			b.WriteByte(hexDigits[c&0x0F])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package content

import "bytes"

// IsBinaryContent reports whether content holds a NUL byte anywhere.
// Unlike a sampled check, the whole buffer is scanned: a NUL past the
// first few kilobytes still marks the content as binary.
func IsBinaryContent(content []byte) bool {
	return bytes.IndexByte(content, 0x00) >= 0
}

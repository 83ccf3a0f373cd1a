package content

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

const (
	// UTF8Charset labels content that was valid UTF-8 as read.
	UTF8Charset = "UTF-8"
	// FallbackCharset is used when the detector has no usable answer.
	FallbackCharset = "windows-1252"
)

// Guess is the outcome of charset sniffing.
type Guess struct {
	Name     string
	Encoding encoding.Encoding
}

// GuessEncoding runs a statistical charset detector over the whole buffer and
// returns its best guess. A fresh detector is used per call, so the result
// depends on data alone.
func GuessEncoding(data []byte) Guess {
	fallback := Guess{Name: FallbackCharset, Encoding: charmap.Windows1252}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil || result == nil {
		return fallback
	}

	enc, ok := LookupEncoding(result.Charset)
	if !ok {
		return fallback
	}
	return Guess{Name: EncodingName(enc, result.Charset), Encoding: enc}
}

// EncodingName returns the preferred name of the encoding actually used, so a
// label such as ISO-8859-1 that resolves to windows-1252 is reported as the
// latter. fallback is returned when enc has no registered name.
func EncodingName(enc encoding.Encoding, fallback string) string {
	if name, err := ianaindex.MIME.Name(enc); err == nil && name != "" {
		return name
	}
	if name, err := htmlindex.Name(enc); err == nil && name != "" {
		return name
	}
	return fallback
}

// LookupEncoding resolves a charset label. WHATWG labels are tried first,
// then IANA names, then the label with hyphens removed (detectors report
// names such as "GB-18030").
func LookupEncoding(label string) (encoding.Encoding, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, false
	}

	if enc, err := htmlindex.Get(label); err == nil {
		return enc, true
	}
	// ianaindex reports known but unsupported encodings as nil without an error.
	if enc, err := ianaindex.IANA.Encoding(label); err == nil && enc != nil {
		return enc, true
	}
	if compact := strings.ReplaceAll(label, "-", ""); compact != label {
		return LookupEncoding(compact)
	}
	return nil, false
}

// Decode converts data to UTF-8 using enc, substituting U+FFFD for sequences
// the encoding cannot map. lossy reports whether any substitution happened.
func Decode(data []byte, enc encoding.Encoding) (text string, lossy bool) {
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), string(utf8.RuneError)), true
	}
	return string(decoded), bytes.ContainsRune(decoded, utf8.RuneError)
}

// Encode converts text to the byte form of enc. Runes the encoding cannot
// represent are written as HTML numeric character references.
func Encode(text string, enc encoding.Encoding) ([]byte, error) {
	if enc == unicode.UTF8 {
		return []byte(text), nil
	}
	return encoding.HTMLEscapeUnsupported(enc.NewEncoder()).Bytes([]byte(text))
}

package file

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Cyclone1070/diffprep/internal/tool/helper/content"
)

// TextfileContent reads path and decodes it for display.
//
// Content holding a NUL byte is shown as a hex dump. Valid UTF-8 is returned
// verbatim. Anything else goes through charset sniffing and is decoded with
// replacement characters where needed, so content never causes an error;
// only I/O does.
func (r *Resolver) TextfileContent(path string) (ReadContent, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		return ReadContent{}, &ReadError{Path: path, Cause: err}
	}

	if content.IsBinaryContent(data) {
		return ReadContent{
			Charset: NotTextfileCharset,
			Content: content.HexDump(data),
		}, nil
	}

	if utf8.Valid(data) {
		return ReadContent{
			Charset: content.UTF8Charset,
			Content: string(data),
		}, nil
	}

	guess := content.GuessEncoding(data)
	text, lossy := content.Decode(data, guess.Encoding)
	if lossy {
		r.logger.Warn("Content is not binary, not UTF-8 and not cleanly decodable",
			zap.String("path", path),
			zap.String("charset", guess.Name),
		)
	}
	return ReadContent{
		Charset: guess.Name,
		Content: text,
	}, nil
}

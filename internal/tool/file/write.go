package file

import (
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"

	"github.com/Cyclone1070/diffprep/internal/tool/helper/content"
)

// Saver writes edited content back to disk in a requested charset.
type Saver struct {
	fs     fileWriter
	logger *zap.Logger
}

// NewSaver creates a new Saver with injected dependencies.
func NewSaver(fs fileWriter, logger *zap.Logger) *Saver {
	return &Saver{
		fs:     fs,
		logger: logger,
	}
}

// Save encodes req.Content in req.Charset and replaces the file at req.Path
// with the result. Unknown charset labels, including the non-text sentinels,
// fall back to UTF-8. The file is truncated, never appended to.
func (s *Saver) Save(req *SaveRequest) (*SaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	charset := req.Charset
	enc, ok := content.LookupEncoding(charset)
	if !ok {
		s.logger.Debug("Unknown charset label, saving as UTF-8", zap.String("charset", charset))
		enc = unicode.UTF8
		charset = content.UTF8Charset
	}

	encoded, err := content.Encode(req.Content, enc)
	if err != nil {
		return nil, &EncodeError{Charset: charset, Cause: err}
	}

	if err := s.fs.WriteFile(req.Path, encoded); err != nil {
		return nil, &WriteError{Path: req.Path, Cause: err}
	}

	return &SaveResponse{
		Path:         req.Path,
		Charset:      charset,
		BytesWritten: len(encoded),
	}, nil
}

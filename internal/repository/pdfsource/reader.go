// Package pdfsource decodes PDF trade agreements into plain text.
package pdfsource

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"

	"github.com/clearstone-io/tradematch/internal/domain"
)

// Reader extracts the text layer of a PDF file. The narrative extractor
// consumes the result; no parsing happens here.
type Reader struct{}

// New creates a PDF reader.
func New() *Reader {
	return &Reader{}
}

// ReadText returns the plain text of the PDF at path. A missing file maps
// to domain.ErrSourceNotFound, a broken one to domain.ErrSourceUnreadable.
func (r *Reader) ReadText(_ context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("trade agreement %s: %w", path, domain.ErrSourceNotFound)
		}
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %v: %w", path, err, domain.ErrSourceUnreadable)
	}
	defer func() { _ = f.Close() }()

	content, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text %s: %v: %w", path, err, domain.ErrSourceUnreadable)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(content); err != nil {
		return "", fmt.Errorf("read pdf text %s: %v: %w", path, err, domain.ErrSourceUnreadable)
	}
	return buf.String(), nil
}

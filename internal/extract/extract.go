// Package extract converts fetched attachment bytes into plain text using a
// format-specific strategy.
package extract

import (
	"errors"
	"fmt"

	"github.com/govbids/harvester/internal/classify"
)

// ErrUnknownFormat is returned when no extractor exists for the classified
// format. Callers record the document with no text rather than failing the
// batch.
var ErrUnknownFormat = errors.New("no extractor for format")

// Text extracts plain text from data according to format. Failures are scoped
// to the one document: parser panics are recovered and surfaced as errors.
func Text(format classify.Format, data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("extract %s: parser panic: %v", format, r)
		}
	}()
	switch format {
	case classify.FormatPDF:
		return fromPDF(data)
	case classify.FormatXLSX:
		return fromWorkbook(data)
	case classify.FormatDocx:
		return fromDocx(data)
	case classify.FormatCSV:
		return fromDelimited(data), nil
	default:
		return "", ErrUnknownFormat
	}
}

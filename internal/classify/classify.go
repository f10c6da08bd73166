// Package classify maps declared content types to attachment formats.
package classify

// Format identifies how an attachment's bytes should be interpreted.
type Format string

const (
	FormatPDF     Format = "pdf"
	FormatXLSX    Format = "xlsx"
	FormatDocx    Format = "docx"
	FormatCSV     Format = "csv"
	FormatUnknown Format = "unknown"
)

// mimeFormats is the fixed classification table. Built once at init and never
// mutated, so it is safe to share across goroutines without locking.
var mimeFormats = map[string]Format{
	"application/pdf": FormatPDF,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":   FormatXLSX,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDocx,
	"text/csv":        FormatCSV,
	"application/csv": FormatCSV,
}

// Classify maps a declared Content-Type value to a Format. The lookup is an
// exact string match; anything unmapped yields FormatUnknown. Classification
// by file extension happens earlier, at link discovery, and decides whether a
// link is enqueued at all; this lookup decides how the fetched bytes are
// extracted.
func Classify(contentType string) Format {
	if f, ok := mimeFormats[contentType]; ok {
		return f
	}
	return FormatUnknown
}

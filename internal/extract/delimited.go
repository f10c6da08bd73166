package extract

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// fromDelimited returns the response body verbatim. Bodies that are not valid
// UTF-8 are decoded as Windows-1252, the usual encoding of legacy government
// CSV exports; undecodable bytes surface as replacement characters rather
// than an error.
func fromDelimited(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(data)
	if err != nil {
		return string(data)
	}
	return string(decoded)
}

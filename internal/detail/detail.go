// Package detail parses a solicitation detail page: the fixed-position
// metadata row, the attachments table, and the attachment links themselves.
// The page layout is an external contract; when it deviates, extraction fails
// loudly rather than returning partially-wrong data.
package detail

import (
	"errors"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ErrMetadataNotFound reports that the designated metadata row or attachments
// table is absent from the page. Fatal for the solicitation, never patched
// over with partial data.
var ErrMetadataNotFound = errors.New("solicitation metadata not found in page")

// Candidate is one attachment link discovered on a detail page.
type Candidate struct {
	URL        string
	Label      string
	PostedDate string
}

// Metadata holds the fixed-position cell values of the solicitation row plus
// the posted date read from the attachments table.
type Metadata struct {
	Number        string
	Description   string
	Agency        string
	DeliveryPoint string
	DueDateTime   string
	IssueDate     string
}

// Parse builds a queryable document from detail-page markup.
func Parse(r io.Reader) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(r)
}

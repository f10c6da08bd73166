package detail

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The solicitation row is marked by this background style and its value cells
// by this exact font style. Positions within the row are significant:
// 0 number, 1 description, 2 agency, 3 delivery point, 4 due date/time.
const (
	rowMarker    = "background-color:#E0E0E0"
	cellSelector = `td[style="font-family:'Arial';font-size:8pt"]`

	attachmentsHeader = "Attachment Name"
)

// ExtractMetadata reads the solicitation metadata row and the issue date from
// the attachments table. A page missing either yields ErrMetadataNotFound.
func ExtractMetadata(doc *goquery.Document) (Metadata, error) {
	var row *goquery.Selection
	doc.Find("tr[style]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		style, _ := s.Attr("style")
		if strings.Contains(style, rowMarker) {
			row = s
			return false
		}
		return true
	})
	if row == nil {
		return Metadata{}, fmt.Errorf("metadata row: %w", ErrMetadataNotFound)
	}

	cells := row.Find(cellSelector)
	if cells.Length() < 5 {
		return Metadata{}, fmt.Errorf("metadata row has %d cells, want 5: %w", cells.Length(), ErrMetadataNotFound)
	}
	cell := func(i int) string { return strings.TrimSpace(cells.Eq(i).Text()) }

	m := Metadata{
		Number:        cell(0),
		Description:   cell(1),
		Agency:        cell(2),
		DeliveryPoint: cell(3),
		DueDateTime:   cell(4),
	}

	var table *goquery.Selection
	doc.Find("table").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), attachmentsHeader) {
			table = s
			return false
		}
		return true
	})
	if table == nil {
		return Metadata{}, fmt.Errorf("attachments table: %w", ErrMetadataNotFound)
	}

	rows := table.Find("tr")
	lastCells := rows.Eq(rows.Length() - 1).Find("td")
	if lastCells.Length() == 0 {
		return Metadata{}, fmt.Errorf("attachments table has no date cell: %w", ErrMetadataNotFound)
	}
	m.IssueDate = strings.TrimSpace(lastCells.Eq(lastCells.Length() - 1).Text())

	return m, nil
}

package detail

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// attachmentExts are the anchor title extensions worth enqueueing. Fixed at
// init, read-only afterwards.
var attachmentExts = []string{".pdf", ".csv", ".docx", ".doc", ".zip", ".xlsx", ".png"}

// Attachments scans the page for anchors whose title attribute ends with a
// recognized extension, resolves each href against base, and pairs it with
// the anchor's visible text and the posted date in the next table cell.
// Duplicates of the full (url, label, date) tuple are dropped while
// preserving discovery order, so downstream text ordering is deterministic.
func Attachments(doc *goquery.Document, base *url.URL) []Candidate {
	seen := make(map[Candidate]struct{})
	var out []Candidate

	doc.Find("a[href][title]").Each(func(_ int, a *goquery.Selection) {
		title, _ := a.Attr("title")
		if !hasAttachmentExt(title) {
			return
		}
		href, _ := a.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		c := Candidate{
			URL:        base.ResolveReference(ref).String(),
			Label:      strings.TrimSpace(a.Text()),
			PostedDate: strings.TrimSpace(nextCellText(a)),
		}
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	})

	return out
}

// nextCellText returns the text of the first td sibling after the anchor's
// containing cell, where the page puts the posted date.
func nextCellText(a *goquery.Selection) string {
	cell := a.Closest("td")
	if cell.Length() == 0 {
		return ""
	}
	return cell.NextAllFiltered("td").First().Text()
}

func hasAttachmentExt(title string) bool {
	t := strings.ToLower(strings.TrimSpace(title))
	for _, ext := range attachmentExts {
		if strings.HasSuffix(t, ext) {
			return true
		}
	}
	return false
}

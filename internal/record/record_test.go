package record

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/govbids/harvester/internal/detail"
)

func TestAssemble(t *testing.T) {
	meta := detail.Metadata{
		Number:        "SC-1001",
		Description:   "Road Repair",
		Agency:        "DOT",
		DeliveryPoint: "Columbia, SC",
		DueDateTime:   "06/15/2024 17:00",
		IssueDate:     "06/01/2024",
	}
	rec := Assemble(meta, []string{"doc one text", "doc two text"}, "https://example.gov/detail?id=1", "SouthCarolina")

	if rec.ID != "SC-1001" {
		t.Fatalf("id: got %q", rec.ID)
	}
	if rec.MainTitle != "Road Repair" {
		t.Fatalf("main title: got %q", rec.MainTitle)
	}
	if rec.DueCloseDateEST != rec.DueDateTime || rec.DueDateTime != "06/15/2024 17:00" {
		t.Fatalf("due dates: got %q / %q", rec.DueCloseDateEST, rec.DueDateTime)
	}
	if rec.Miscellaneous.DeliveryPoint != "Columbia, SC" {
		t.Fatalf("delivery point: got %q", rec.Miscellaneous.DeliveryPoint)
	}
	if len(rec.PDFTexts) != 2 || rec.PDFTexts[0] != "doc one text" {
		t.Fatalf("texts must keep discovery order: %+v", rec.PDFTexts)
	}
	if rec.Link != "https://example.gov/detail?id=1" {
		t.Fatalf("link: got %q", rec.Link)
	}
}

func TestSolicitation_WireFieldNames(t *testing.T) {
	rec := Assemble(detail.Metadata{Number: "SC-1"}, nil, "https://example.gov", "SouthCarolina")
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(b)

	// The serialized names are a downstream contract.
	for _, field := range []string{
		`"state":"SouthCarolina"`,
		`"main_category":"N/A"`,
		`"solicitation_type":"Bid"`,
		`"id":"SC-1"`,
		`"alternate_id":null`,
		`"status":"Open"`,
		`"procurement_officer_buyer_name":null`,
		`"pdf_texts":[]`,
		`"project_cost_class":"N/A"`,
		`"miscellaneous":{"delivery_point":""}`,
	} {
		if !strings.Contains(out, field) {
			t.Fatalf("expected %s in serialized record, got %s", field, out)
		}
	}
}

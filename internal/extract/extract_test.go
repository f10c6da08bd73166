package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/govbids/harvester/internal/classify"
)

func makePDF(t *testing.T, lines ...string) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()
	for _, line := range lines {
		doc.CellFormat(0, 8, line, "", 1, "L", false, 0, "")
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("generate pdf fixture: %v", err)
	}
	return buf.Bytes()
}

func makeDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	docXML := `<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(docXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func makeWorkbook(t *testing.T) []byte {
	t.Helper()
	wb := excelize.NewFile()
	for cell, value := range map[string]any{
		"A1": "Item", "B1": "Qty",
		"A2": "Widget", "B2": 3,
	} {
		if err := wb.SetCellValue("Sheet1", cell, value); err != nil {
			t.Fatalf("set cell %s: %v", cell, err)
		}
	}
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook fixture: %v", err)
	}
	return buf.Bytes()
}

func TestText_PDF(t *testing.T) {
	data := makePDF(t, "Road Repair Project", "Sealed bids due June 15")
	text, err := Text(classify.FormatPDF, data)
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	if !strings.Contains(text, "Road Repair Project") {
		t.Fatalf("expected first line in extracted text, got %q", text)
	}
	if !strings.Contains(text, "Sealed bids due June 15") {
		t.Fatalf("expected second line in extracted text, got %q", text)
	}
}

func TestText_PDFCorrupt(t *testing.T) {
	if _, err := Text(classify.FormatPDF, []byte("%PDF-1.4 truncated garbage")); err == nil {
		t.Fatalf("expected error for corrupt pdf")
	}
}

func TestText_Docx(t *testing.T) {
	data := makeDocx(t, "First paragraph", "Second paragraph")
	text, err := Text(classify.FormatDocx, data)
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if text != "First paragraph\nSecond paragraph" {
		t.Fatalf("expected paragraphs joined by newline, got %q", text)
	}
}

func TestText_DocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("other.xml")
	_, _ = w.Write([]byte("<x/>"))
	_ = zw.Close()

	if _, err := Text(classify.FormatDocx, buf.Bytes()); err == nil {
		t.Fatalf("expected error for archive without word/document.xml")
	}
}

func TestText_Workbook(t *testing.T) {
	text, err := Text(classify.FormatXLSX, makeWorkbook(t))
	if err != nil {
		t.Fatalf("extract workbook: %v", err)
	}
	if !strings.Contains(text, "Item,Qty\n") {
		t.Fatalf("expected header row in csv rendering, got %q", text)
	}
	if !strings.Contains(text, "Widget,3\n") {
		t.Fatalf("expected data row in csv rendering, got %q", text)
	}
}

func TestText_WorkbookMalformed(t *testing.T) {
	if _, err := Text(classify.FormatXLSX, []byte("not a workbook")); err == nil {
		t.Fatalf("expected error for malformed workbook")
	}
}

func TestText_DelimitedVerbatim(t *testing.T) {
	body := "col1,col2\nval1,val2\n"
	text, err := Text(classify.FormatCSV, []byte(body))
	if err != nil {
		t.Fatalf("extract csv: %v", err)
	}
	if text != body {
		t.Fatalf("csv body must pass through verbatim, got %q", text)
	}
}

func TestText_DelimitedLegacyEncoding(t *testing.T) {
	// "café" in Windows-1252: é is 0xE9, not valid UTF-8 on its own.
	text, err := Text(classify.FormatCSV, []byte{'c', 'a', 'f', 0xE9})
	if err != nil {
		t.Fatalf("delimited extraction must not fail: %v", err)
	}
	if text != "café" {
		t.Fatalf("expected Windows-1252 fallback decoding, got %q", text)
	}
}

func TestText_UnknownFormat(t *testing.T) {
	_, err := Text(classify.FormatUnknown, []byte("anything"))
	if !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

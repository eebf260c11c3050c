package export

import (
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
)

// The core PDF fonts are cp1252, which has no rupee sign.
var pdfReplacer = strings.NewReplacer("₹", "Rs. ")

// WritePDF writes s as a landscape A4 table.
func WritePDF(w io.Writer, s Sheet) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(s.Title, true)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(v string) string { return tr(pdfReplacer.Replace(v)) }

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 9, text(s.Title))
	pdf.Ln(9)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 5, text(s.generatedLine()))
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range s.Info {
		if line == strings.ToUpper(line) && line != "" {
			pdf.SetFont("Helvetica", "B", 10)
		}
		pdf.Cell(0, 5, text(line))
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "", 10)
	}
	pdf.Ln(3)

	if len(s.Headers) > 0 {
		pageW, _ := pdf.GetPageSize()
		left, _, right, _ := pdf.GetMargins()
		colW := (pageW - left - right) / float64(len(s.Headers))

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range s.Headers {
			pdf.CellFormat(colW, 7, text(h), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, r := range s.Rows {
			for _, v := range r {
				pdf.CellFormat(colW, 6, fit(pdf, text(v), colW-2), "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	return pdf.Output(w)
}

// fit trims v so it renders within width mm, marking the cut with "..".
func fit(pdf *gofpdf.Fpdf, v string, width float64) string {
	if pdf.GetStringWidth(v) <= width {
		return v
	}
	for len(v) > 0 && pdf.GetStringWidth(v+"..") > width {
		v = v[:len(v)-1]
	}
	return v + ".."
}

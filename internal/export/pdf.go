package export

import (
	"bytes"

	"github.com/go-pdf/fpdf"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
)

const (
	pdfMargin     = 20.0
	pdfTitleSize  = 18.0
	pdfHeaderSize = 13.0
	pdfBodySize   = 11.0
	pdfMetaSize   = 9.0
)

// PDFRenderer renders summaries with a bundled PDF engine. The core
// fonts carry no Cyrillic glyphs, so all text is transliterated first.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render produces the PDF document for a summary
func (r *PDFRenderer) Render(s *model.Summary) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(true, pdfMargin)
	doc.AddPage()

	pageWidth, _ := doc.GetPageSize()
	contentWidth := pageWidth - 2*pdfMargin

	doc.SetFont("Helvetica", "B", pdfTitleSize)
	doc.MultiCell(contentWidth, 8, Transliterate(s.VideoTitle), "", "L", false)
	doc.Ln(4)

	doc.SetFont("Helvetica", "", pdfMetaSize)
	doc.SetTextColor(100, 100, 100)
	for _, line := range []string{
		"Istochnik: " + s.YoutubeURL,
		"Kanal: " + Transliterate(orUnknown(s.ChannelTitle, "Неизвестный канал")),
		"Data sozdaniya: " + Transliterate(formatDateRU(s.CreatedAt)),
	} {
		doc.MultiCell(contentWidth, 5, line, "", "L", false)
	}
	doc.Ln(6)

	doc.SetTextColor(0, 0, 0)
	doc.SetFont("Helvetica", "B", pdfHeaderSize)
	doc.MultiCell(contentWidth, 7, "II-annotatsiya", "", "L", false)
	doc.Ln(2)

	doc.SetFont("Helvetica", "", pdfBodySize)
	doc.MultiCell(contentWidth, 6, Transliterate(PlainText(s.SummaryText)), "", "L", false)
	doc.Ln(8)

	doc.SetFont("Helvetica", "", pdfMetaSize)
	doc.SetTextColor(100, 100, 100)
	doc.MultiCell(contentWidth, 5, "ID video: "+s.VideoID, "", "L", false)
	doc.MultiCell(contentWidth, 5, "Dlitelnost: "+Transliterate(orUnknown(s.Duration, "Неизвестно")), "", "L", false)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to render PDF")
	}
	return buf.Bytes(), nil
}

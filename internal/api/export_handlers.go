package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vidnotes/vidnotes/internal/export"
	"github.com/vidnotes/vidnotes/internal/model"
)

// attachmentHeaders sets the download headers. The filename is encoded
// per RFC 5987 so Cyrillic-derived names survive in every browser.
func attachmentHeaders(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	c.Header("Cache-Control", "no-cache")
}

// loadSummaryForExport fetches the summary addressed by the :id param
func (h *Handler) loadSummaryForExport(c *gin.Context) (*model.Summary, bool) {
	id, err := parseIDParam(c)
	if err != nil {
		respondError(c, err)
		return nil, false
	}

	summary, err := h.summaries.GetSummary(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	return summary, true
}

// exportMarkdown streams the summary as a Markdown document
func (h *Handler) exportMarkdown(c *gin.Context) {
	summary, ok := h.loadSummaryForExport(c)
	if !ok {
		return
	}

	content := export.Markdown(summary)
	attachmentHeaders(c, export.MarkdownFilename(summary))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))

	h.recordExport(c, summary.ID, "markdown")
}

// exportPDF streams the summary as a PDF rendered without a browser
func (h *Handler) exportPDF(c *gin.Context) {
	summary, ok := h.loadSummaryForExport(c)
	if !ok {
		return
	}

	pdf, err := h.pdf.Render(summary)
	if err != nil {
		respondError(c, err)
		return
	}

	attachmentHeaders(c, export.PDFFilename(summary))
	c.Data(http.StatusOK, "application/pdf", pdf)

	h.recordExport(c, summary.ID, "pdf")
}

// exportPDFBrowser streams the summary as a browser-rendered PDF,
// falling back to the plain renderer when no browser is available.
func (h *Handler) exportPDFBrowser(c *gin.Context) {
	summary, ok := h.loadSummaryForExport(c)
	if !ok {
		return
	}

	pdf, err := h.browserPDF.Render(c.Request.Context(), summary)
	if err != nil {
		h.logger.Warn("browser PDF export failed, using fallback renderer", "summary_id", summary.ID, "error", err)
		pdf, err = h.pdf.Render(summary)
		if err != nil {
			respondError(c, err)
			return
		}
	}

	attachmentHeaders(c, export.PDFFilename(summary))
	c.Data(http.StatusOK, "application/pdf", pdf)

	h.recordExport(c, summary.ID, "pdf")
}

func (h *Handler) recordExport(c *gin.Context, summaryID uuid.UUID, format string) {
	h.summaries.RecordExport(c.Request.Context(), currentUserID(c), summaryID, format)
	h.logger.Info("summary exported", "summary_id", summaryID, "format", format)
}

package api

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/vidnotes/vidnotes/internal/model"
	summarysvc "github.com/vidnotes/vidnotes/internal/service/summary"
)

// PDFRenderer renders a summary to PDF without a browser
type PDFRenderer interface {
	Render(s *model.Summary) ([]byte, error)
}

// BrowserPDFRenderer renders a summary to PDF through a headless browser
type BrowserPDFRenderer interface {
	Render(ctx context.Context, s *model.Summary) ([]byte, error)
}

// Handler bundles the dependencies of the HTTP handlers
type Handler struct {
	summaries  summarysvc.Service
	pdf        PDFRenderer
	browserPDF BrowserPDFRenderer
	logger     *slog.Logger
}

// NewHandler creates a new API handler
func NewHandler(summaries summarysvc.Service, pdf PDFRenderer, browserPDF BrowserPDFRenderer, logger *slog.Logger) *Handler {
	return &Handler{
		summaries:  summaries,
		pdf:        pdf,
		browserPDF: browserPDF,
		logger:     logger,
	}
}

// RegisterRoutes wires all endpoints onto the engine
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.Use(CORSMiddleware())

	r.GET("/health", h.healthCheck)

	v1 := r.Group("/api/v1")
	v1.Use(AuthMiddleware())
	{
		v1.POST("/summaries", h.createSummary)
		v1.GET("/summaries", h.listSummaries)
		v1.GET("/summaries/exists", h.summaryExists)
		v1.GET("/summaries/:id", h.getSummary)
		v1.DELETE("/summaries/:id", h.deleteSummary)
		v1.PATCH("/summaries/:id/tags", h.updateTags)
		v1.PATCH("/summaries/:id/favorite", h.setFavorite)
		v1.GET("/summaries/:id/export/markdown", h.exportMarkdown)
		v1.GET("/summaries/:id/export/pdf", h.exportPDF)
		v1.GET("/summaries/:id/export/pdf-v2", h.exportPDFBrowser)
		v1.GET("/related", h.relatedVideos)
	}
}

func (h *Handler) healthCheck(c *gin.Context) {
	respondSuccess(c, 200, gin.H{
		"status":  "ok",
		"service": "vidnotes",
	})
}

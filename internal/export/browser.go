package export

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"log/slog"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	apperrors "github.com/vidnotes/vidnotes/internal/errors"
	"github.com/vidnotes/vidnotes/internal/model"
)

const pdfPageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
body { font-family: Arial, sans-serif; line-height: 1.6; margin: 0; padding: 20px; color: #333; }
.header { border-bottom: 2px solid #e0e0e0; padding-bottom: 20px; margin-bottom: 30px; }
.title { font-size: 24px; font-weight: bold; margin-bottom: 15px; color: #2c3e50; }
.metadata { background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px; font-size: 14px; }
.metadata div { margin-bottom: 5px; }
.content { font-size: 16px; line-height: 1.8; }
.footer { margin-top: 40px; padding-top: 20px; border-top: 1px solid #e0e0e0; font-size: 12px; color: #666; }
</style>
</head>
<body>
<div class="header"><div class="title">%s</div></div>
<div class="metadata">
<div><strong>Источник:</strong> %s</div>
<div><strong>Канал:</strong> %s</div>
<div><strong>Дата создания:</strong> %s</div>
<div><strong>Время обработки:</strong> %dс</div>
</div>
<div class="content"><h2>ИИ-аннотация</h2>%s</div>
<div class="footer">
<div><strong>ID видео:</strong> %s</div>
<div><strong>Длительность:</strong> %s</div>
<div><strong>Создано с помощью:</strong> Аннотация видео (ИИ-сервис)</div>
</div>
</body>
</html>`

// BrowserPDFRenderer renders summaries to PDF through a headless
// browser, which keeps Cyrillic text and Markdown formatting intact.
type BrowserPDFRenderer struct {
	markdown goldmark.Markdown
	logger   *slog.Logger
}

// NewBrowserPDFRenderer creates a new browser-backed PDF renderer
func NewBrowserPDFRenderer(logger *slog.Logger) *BrowserPDFRenderer {
	return &BrowserPDFRenderer{
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger:   logger,
	}
}

// buildHTML renders the summary into the printable HTML page
func (r *BrowserPDFRenderer) buildHTML(s *model.Summary) (string, error) {
	var body bytes.Buffer
	if err := r.markdown.Convert([]byte(s.SummaryText), &body); err != nil {
		return "", apperrors.Wrap(err, apperrors.CodeInternal, "failed to render summary markdown")
	}

	return fmt.Sprintf(pdfPageTemplate,
		html.EscapeString(s.VideoTitle),
		html.EscapeString(s.YoutubeURL),
		html.EscapeString(orUnknown(s.ChannelTitle, "Неизвестный канал")),
		formatDateRU(s.CreatedAt),
		(s.ProcessingTimeMs+500)/1000,
		body.String(),
		s.VideoID,
		html.EscapeString(orUnknown(s.Duration, "Неизвестно")),
	), nil
}

// Render produces the PDF document for a summary
func (r *BrowserPDFRenderer) Render(ctx context.Context, s *model.Summary) ([]byte, error) {
	content, err := r.buildHTML(s)
	if err != nil {
		return nil, err
	}

	browserCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, content).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			return err
		}),
	)
	if err != nil {
		r.logger.Warn("browser PDF rendering failed", "video_id", s.VideoID, "error", err)
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "failed to render PDF in browser")
	}

	return pdf, nil
}

package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/vidnotes/vidnotes/internal/model"
)

var ruMonths = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// formatDateRU renders a timestamp the way Russian locale dates are
// written, e.g. "1 июня 2025 г., 12:00".
func formatDateRU(t time.Time) string {
	return fmt.Sprintf("%d %s %d г., %02d:%02d",
		t.Day(), ruMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

func orUnknown(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// Markdown renders a summary as a standalone Markdown document with a
// source header, the annotation body and a metadata footer.
func Markdown(s *model.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", s.VideoTitle)
	fmt.Fprintf(&b, "> **Источник**: [YouTube видео](%s)  \n", s.YoutubeURL)
	fmt.Fprintf(&b, "> **Канал**: %s  \n", orUnknown(s.ChannelTitle, "Неизвестный канал"))
	fmt.Fprintf(&b, "> **Дата создания**: %s  \n", formatDateRU(s.CreatedAt))
	fmt.Fprintf(&b, "> **Время обработки**: %dс\n\n", (s.ProcessingTimeMs+500)/1000)
	b.WriteString("---\n\n")
	b.WriteString("## ИИ-аннотация\n\n")
	b.WriteString(s.SummaryText)
	b.WriteString("\n\n---\n\n")
	b.WriteString("## Метаданные\n\n")
	fmt.Fprintf(&b, "- **ID видео**: %s\n", s.VideoID)
	fmt.Fprintf(&b, "- **Длительность видео**: %s\n", orUnknown(s.Duration, "Неизвестно"))
	b.WriteString("- **Создано с помощью**: Аннотация видео (ИИ-сервис)\n")
	b.WriteString("- **Теги**: #youtube #ai-annotation #summary\n\n")
	b.WriteString("---\n\n")
	b.WriteString("*Эта аннотация была создана автоматически с помощью ИИ на основе транскрипта YouTube видео.*\n")

	return b.String()
}

// MarkdownFilename builds the download filename for a Markdown export
func MarkdownFilename(s *model.Summary) string {
	return Filename(s.VideoTitle, "md", s.CreatedAt)
}

// PDFFilename builds the download filename for a PDF export
func PDFFilename(s *model.Summary) string {
	return Filename(s.VideoTitle, "pdf", s.CreatedAt)
}

package summarizer

import "fmt"

// buildPrompt renders the fixed instruction template for the primary
// summarization call. The transcript itself travels as a separate text
// part to avoid re-encoding the whole prompt.
func buildPrompt(videoTitle string) string {
	return fmt.Sprintf(`Проанализируйте следующий транскрипт YouTube видео "%s" и создайте:
1. Короткое название (2-4 слова)
2. Краткое изложение основных моментов

Требования к изложению:
- Используйте формат Markdown, заголовки не выше уровня ####
- Не повторяйте название видео в тексте изложения
- Структурируйте текст абзацами и списками
- Пишите на русском языке

Формат ответа:
Название: [название]
Изложение: [текст изложения]

Транскрипт:`, videoTitle)
}

// buildFallbackPrompt is the simplified prompt used when the primary
// model is overloaded; no title extraction is attempted on its output.
func buildFallbackPrompt() string {
	return "Кратко опишите основные моменты и ключевые мысли этого транскрипта:"
}

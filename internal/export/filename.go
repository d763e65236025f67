// Package export renders stored summaries into downloadable documents.
package export

import (
	"regexp"
	"strings"
	"time"
)

const maxFilenameTitleLength = 50

var cyrillicMap = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "e",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
	'А': "A", 'Б': "B", 'В': "V", 'Г': "G", 'Д': "D", 'Е': "E", 'Ё': "E",
	'Ж': "Zh", 'З': "Z", 'И': "I", 'Й': "Y", 'К': "K", 'Л': "L", 'М': "M",
	'Н': "N", 'О': "O", 'П': "P", 'Р': "R", 'С': "S", 'Т': "T", 'У': "U",
	'Ф': "F", 'Х': "H", 'Ц': "Ts", 'Ч': "Ch", 'Ш': "Sh", 'Щ': "Sch",
	'Ъ': "", 'Ы': "Y", 'Ь': "", 'Э': "E", 'Ю': "Yu", 'Я': "Ya",
}

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Transliterate maps Cyrillic letters to their Latin equivalents,
// leaving other characters untouched.
func Transliterate(text string) string {
	var b strings.Builder
	for _, r := range text {
		if latin, ok := cyrillicMap[r]; ok {
			b.WriteString(latin)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Filename builds a download filename from a summary title: the creation
// date, up to five transliterated title words joined with underscores,
// and the extension.
func Filename(title, extension string, date time.Time) string {
	clean := nonWordRe.ReplaceAllString(Transliterate(title), " ")

	words := strings.Fields(clean)
	if len(words) > 5 {
		words = words[:5]
	}
	short := strings.Join(words, "_")
	if len(short) <= 3 {
		short = "annotation_" + short
		short = strings.TrimSuffix(short, "_")
	}
	if len(short) > maxFilenameTitleLength {
		short = short[:maxFilenameTitleLength]
	}

	return date.Format("2006-01-02") + "_" + short + "." + extension
}

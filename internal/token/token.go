package token

import (
	"fmt"

	"sysdl/internal/source"
)

// Token представляет один лексический элемент с позицией в исходнике.
// Text — уже декодированное значение: содержимое строки без кавычек и без
// обратных слэшей, тело комментария без // и /* */ ограничителей, точный
// срез исходника для остальных видов. Для Number дополнительно заполнен Num.
// Токены создаются лексером один раз и дальше не изменяются.
type Token struct {
	Kind Kind
	Text string
	Num  float64 // только для Kind == Number
	Span source.Span
	Line uint32 // 1-based, позиция первого символа токена
	Col  uint32 // 1-based
}

// IsEOF reports whether the token terminates the stream.
func (t Token) IsEOF() bool { return t.Kind == EOF }

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// HasText reports whether the token carries exactly the given text,
// regardless of kind. Используется для контекстных слов вроде "specializes"
// и "case", которые грамматика сверяет по тексту, а не по виду токена.
func (t Token) HasText(text string) bool {
	return t.Kind != EOF && t.Text == text
}

// Describe returns a short human-readable form for diagnostics.
func (t Token) Describe() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return fmt.Sprintf("%s %q", t.Kind, t.Text)
}

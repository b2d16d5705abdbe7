package lexer

import (
	"strings"

	"sysdl/internal/token"
)

// scanString сканирует строковый литерал в одинарных или двойных кавычках.
// Закрывающая кавычка должна совпадать с открывающей. Обратный слэш экранирует
// следующий символ буквально: он добавляется в значение как есть, без перевода
// \n, \t и прочих последовательностей. Незакрытая строка отдаёт накопленное —
// лексер не поднимает ошибок.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	var value strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			lx.cursor.Bump()
			break
		}
		if b == '\\' {
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			value.WriteByte(lx.cursor.Bump())
			continue
		}
		value.WriteByte(lx.cursor.Bump())
	}

	return token.Token{
		Kind: token.String,
		Text: value.String(),
		Span: lx.cursor.SpanFrom(start),
		Line: start.Line,
		Col:  start.Col,
	}
}

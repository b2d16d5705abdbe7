package lexer

import (
	"sysdl/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через IsKeyword.
// Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	kind := token.Ident
	if token.IsKeyword(text) {
		kind = token.Keyword
	}
	return token.Token{
		Kind: kind,
		Text: text,
		Span: sp,
		Line: start.Line,
		Col:  start.Col,
	}
}

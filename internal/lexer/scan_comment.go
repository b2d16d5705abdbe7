package lexer

import (
	"sysdl/internal/token"
)

// scanComment сканирует // или /* */ комментарий. Text — тело без
// ограничителей. Незакрытый блочный комментарий молча заканчивается на EOF —
// это не ошибка.
func (lx *Lexer) scanComment() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	if lx.cursor.Eat('/') {
		// строчный комментарий: до '\n', сам '\n' не потребляем
		bodyStart := lx.cursor.Off
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		return token.Token{
			Kind: token.Comment,
			Text: string(lx.file.Content[bodyStart:sp.End]),
			Span: sp,
			Line: start.Line,
			Col:  start.Col,
		}
	}

	lx.cursor.Bump() // '*'
	bodyStart := lx.cursor.Off
	bodyEnd := bodyStart
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			bodyEnd = lx.cursor.Off
			lx.cursor.Bump()
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{
				Kind: token.Comment,
				Text: string(lx.file.Content[bodyStart:bodyEnd]),
				Span: sp,
				Line: start.Line,
				Col:  start.Col,
			}
		}
		lx.cursor.Bump()
	}

	// EOF без закрывающего */
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: token.Comment,
		Text: string(lx.file.Content[bodyStart:sp.End]),
		Span: sp,
		Line: start.Line,
		Col:  start.Col,
	}
}

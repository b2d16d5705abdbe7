package lexer

import (
	"math"
	"strconv"

	"sysdl/internal/token"
)

// scanNumber жадно съедает цифры и точки. Жадность намеренно допускает
// испорченные формы вроде "1.2.3" — такой текст не парсится как число,
// и вместо ошибки значением становится NaN.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for {
		b := lx.cursor.Peek()
		if !isDec(b) && b != '.' {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		num = math.NaN()
	}

	return token.Token{
		Kind: token.Number,
		Text: text,
		Num:  num,
		Span: sp,
		Line: start.Line,
		Col:  start.Col,
	}
}

package lexer

import (
	"sysdl/internal/source"
	"sysdl/internal/token"
)

// Lexer — посимвольный сканер одного файла. Тотальная функция: любой вход,
// каким бы испорченным он ни был, даёт поток токенов, завершающийся ровно
// одним EOF. Лексер никогда не репортит и не падает; все сигналы об ошибках
// живут на уровне парсера.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // 1-элементный буфер для Peek
}

// New creates a lexer over the given file.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next возвращает следующий токен. После EOF всегда возвращает EOF.
// Комментарии — полноценные токены потока (их фильтрует парсер).
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipWhitespace()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Line: lx.cursor.Line,
			Col:  lx.cursor.Col,
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '/' && lx.isCommentStart():
		return lx.scanComment()

	case ch == '"' || ch == '\'':
		return lx.scanString()

	case isDec(ch):
		return lx.scanNumber()

	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case isPunctByte(ch):
		return lx.scanSingle(token.Punct)

	case isOperatorByte(ch):
		// сюда же попадает одиночный '/', за которым нет '/' или '*'
		return lx.scanSingle(token.Operator)

	default:
		// защитный catch-all: неизвестный байт становится
		// одно-символьным Ident, а не ошибкой лексера
		return lx.scanSingle(token.Ident)
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize прогоняет файл целиком и возвращает все токены, включая EOF.
func Tokenize(file *source.File) []token.Token {
	lx := New(file)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func (lx *Lexer) skipWhitespace() {
	for {
		b := lx.cursor.Peek()
		if b == ' ' || b == '\t' || b == '\n' {
			lx.cursor.Bump()
			continue
		}
		return
	}
}

func (lx *Lexer) isCommentStart() bool {
	_, b1, ok := lx.cursor.Peek2()
	return ok && (b1 == '/' || b1 == '*')
}

// scanSingle потребляет один байт как токен указанного вида.
func (lx *Lexer) scanSingle(kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Text: string(lx.file.Content[sp.Start:sp.End]),
		Span: sp,
		Line: start.Line,
		Col:  start.Col,
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

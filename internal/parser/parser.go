package parser

import (
	"sysdl/internal/ast"
	"sysdl/internal/diag"
	"sysdl/internal/token"
)

// Options настраивают один вызов ParseFile.
type Options struct {
	// Reporter — побочный канал для сообщения о сбое разбора.
	// Ошибка наружу не возвращается: её видно только здесь.
	Reporter diag.Reporter
}

// Result — результат разбора одного файла.
type Result struct {
	// Root — синтетический корень; его дети — top-level элементы,
	// разобранные до первого сбоя.
	Root ast.NodeID
}

// Parser — состояние разбора одного файла: срез токенов и единственный
// монотонно растущий индекс. Уже потреблённый индекс никогда не
// перечитывается.
type Parser struct {
	toks    []token.Token
	pos     int
	builder *ast.Builder
	opts    Options
}

// ParseFile разбирает поток токенов в дерево. Политика сбоев: весь верхний
// цикл обёрнут одной границей восстановления — первое же несовпадение expect
// останавливает разбор, элемент в работе отбрасывается вместе с уже
// собранными детьми, возвращается корень со всеми целиком разобранными
// предыдущими элементами. Ресинхронизации по statement нет.
func ParseFile(toks []token.Token, builder *ast.Builder, opts Options) Result {
	p := Parser{
		toks:    toks,
		builder: builder,
		opts:    opts,
	}

	root := builder.NewNode(ast.NodeRoot, p.cur().Span)
	for !p.cur().IsEOF() {
		before := p.pos
		id, err := p.parseElement()
		if err != nil {
			p.reportFailure(err)
			break
		}
		builder.PushChild(root, id)
		builder.CoverSpan(root, builder.Get(id).Span)
		if p.pos == before {
			// нулевой прогресс (например, голая '}' на верхнем уровне):
			// съедаем токен, иначе цикл не завершится
			p.advance()
		}
	}
	return Result{Root: root}
}

// cur возвращает текущий значимый токен, пропуская комментарии.
// За концом среза ведёт себя как EOF (лексер гарантирует замыкающий EOF).
func (p *Parser) cur() token.Token {
	for p.pos < len(p.toks) && p.toks[p.pos].Kind == token.Comment {
		p.pos++
	}
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

// advance потребляет текущий токен. EOF не потребляется никогда.
func (p *Parser) advance() token.Token {
	tok := p.cur()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

// at reports whether the current token has the given kind.
func (p *Parser) at(k token.Kind) bool {
	return p.cur().Kind == k
}

// atText reports whether the current token is kind k with exact text.
func (p *Parser) atText(k token.Kind, text string) bool {
	t := p.cur()
	return t.Kind == k && t.Text == text
}

// expect проверяет и потребляет токен заданного вида; text != "" требует
// ещё и точного совпадения текста. Несовпадение — *SyntaxError.
func (p *Parser) expect(k token.Kind, text string) (token.Token, error) {
	t := p.cur()
	if t.Kind == k && (text == "" || t.Text == text) {
		return p.advance(), nil
	}
	expected := k.String()
	if text != "" {
		expected = expected + " \"" + text + "\""
	}
	return token.Token{}, &SyntaxError{Expected: expected, Actual: t}
}

// reportFailure — граница восстановления: превращает размотавшуюся ошибку
// в запись побочного канала.
func (p *Parser) reportFailure(err error) {
	if p.opts.Reporter == nil {
		return
	}
	code := diag.SynUnexpectedToken
	sp := p.cur().Span
	if se, ok := err.(*SyntaxError); ok {
		sp = se.Actual.Span
		if se.Actual.Kind == token.EOF {
			code = diag.SynUnexpectedEOF
		}
	}
	p.opts.Reporter.Report(code, diag.SevError, sp, err.Error(), nil)
}

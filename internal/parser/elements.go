package parser

import (
	"sysdl/internal/ast"
	"sysdl/internal/token"
)

// parseElement выбирает правило по тексту ключевого слова. Ключевые слова без
// выделенного правила (block, interface, state, actor и остальные) и любой
// не-Keyword токен уходят в generic fallback.
func (p *Parser) parseElement() (ast.NodeID, error) {
	t := p.cur()
	if t.Kind == token.Keyword {
		switch t.Text {
		case "package":
			return p.parsePackage()
		case "part":
			return p.parsePart()
		case "attribute":
			return p.parseAttribute()
		case "port":
			return p.parsePort()
		case "connection":
			return p.parseConnection()
		case "requirement":
			return p.parseRequirement()
		case "use":
			return p.parseUseCase()
		}
	}
	return p.parseGeneric()
}

// package IDENT? ('{' element* '}')?
// Тело без терминатора — валидно; тело целиком опускается, если следующий
// токен не '{'.
func (p *Parser) parsePackage() (ast.NodeID, error) {
	kw, err := p.expect(token.Keyword, "package")
	if err != nil {
		return ast.NoNodeID, err
	}
	id := p.builder.NewNode(ast.NodePackage, kw.Span)
	p.captureName(id)
	if err := p.parseOptionalBody(id); err != nil {
		return ast.NoNodeID, err
	}
	return id, nil
}

// part IDENT? ('specializes' IDENT)? ('{' element* '}' | ';')
// 'specializes' сверяется по тексту токена, не по виду.
func (p *Parser) parsePart() (ast.NodeID, error) {
	kw, err := p.expect(token.Keyword, "part")
	if err != nil {
		return ast.NoNodeID, err
	}
	id := p.builder.NewNode(ast.NodePart, kw.Span)
	p.captureName(id)

	if p.cur().HasText("specializes") {
		p.advance()
		target, err := p.expect(token.Ident, "")
		if err != nil {
			return ast.NoNodeID, err
		}
		p.builder.SetStr(id, ast.PropSpecializes, target.Text)
		p.builder.CoverSpan(id, target.Span)
	}

	if p.atText(token.Punct, "{") {
		if err := p.parseBody(id); err != nil {
			return ast.NoNodeID, err
		}
	} else if p.atText(token.Punct, ";") {
		p.advance()
	}
	return id, nil
}

// attribute IDENT? (':' IDENT)? ('=' (NUMBER|STRING))? ';'?
// Аннотация типа после ':' принимается только если это токен Ident;
// ключевое слово на месте типа молча пропускается.
func (p *Parser) parseAttribute() (ast.NodeID, error) {
	kw, err := p.expect(token.Keyword, "attribute")
	if err != nil {
		return ast.NoNodeID, err
	}
	id := p.builder.NewNode(ast.NodeAttribute, kw.Span)
	p.captureName(id)
	p.captureTypeAnnotation(id)

	if p.atText(token.Operator, "=") {
		p.advance()
		switch p.cur().Kind {
		case token.Number:
			val := p.advance()
			p.builder.SetNum(id, ast.PropDefault, val.Num)
			p.builder.CoverSpan(id, val.Span)
		case token.String:
			val := p.advance()
			p.builder.SetStr(id, ast.PropDefault, val.Text)
			p.builder.CoverSpan(id, val.Span)
		}
	}

	p.eatSemicolon(id)
	return id, nil
}

// port IDENT? (':' IDENT)? ';'?
func (p *Parser) parsePort() (ast.NodeID, error) {
	kw, err := p.expect(token.Keyword, "port")
	if err != nil {
		return ast.NoNodeID, err
	}
	id := p.builder.NewNode(ast.NodePort, kw.Span)
	p.captureName(id)
	p.captureTypeAnnotation(id)
	p.eatSemicolon(id)
	return id, nil
}

// connection IDENT? (':' IDENT IDENT?)? ';'?
// После ':' первый идентификатор — конец "from", второй, идущий сразу
// следом, — конец "to". Квалифицированные имена через '.' не
// поддерживаются: точка и хвост остаются непотреблёнными и на следующем
// цикле диспетчеризации дают безымянный generic-узел рядом. Это
// зафиксированная граница поведения, не чините её поддержкой точечных путей.
func (p *Parser) parseConnection() (ast.NodeID, error) {
	kw, err := p.expect(token.Keyword, "connection")
	if err != nil {
		return ast.NoNodeID, err
	}
	id := p.builder.NewNode(ast.NodeConnection, kw.Span)
	p.captureName(id)

	if p.atText(token.Punct, ":") {
		p.advance()
		if p.at(token.Ident) {
			from := p.advance()
			p.builder.SetStr(id, ast.PropFrom, from.Text)
			p.builder.CoverSpan(id, from.Span)
			if p.at(token.Ident) {
				to := p.advance()
				p.builder.SetStr(id, ast.PropTo, to.Text)
				p.builder.CoverSpan(id, to.Span)
			}
		}
	}

	p.eatSemicolon(id)
	return id, nil
}

// requirement IDENT? ('{' element* '}')?
// Формы с ';' нет: без тела правило возвращается сразу, терминатор не
// потребляется.
func (p *Parser) parseRequirement() (ast.NodeID, error) {
	kw, err := p.expect(token.Keyword, "requirement")
	if err != nil {
		return ast.NoNodeID, err
	}
	id := p.builder.NewNode(ast.NodeRequirement, kw.Span)
	p.captureName(id)
	if err := p.parseOptionalBody(id); err != nil {
		return ast.NoNodeID, err
	}
	return id, nil
}

// use ('case')? IDENT? ('{' element* '}')?
// 'case' — необязательное голое слово, сверяется по тексту и потребляется,
// если есть; отсутствие — не ошибка.
func (p *Parser) parseUseCase() (ast.NodeID, error) {
	kw, err := p.expect(token.Keyword, "use")
	if err != nil {
		return ast.NoNodeID, err
	}
	id := p.builder.NewNode(ast.NodeUseCase, kw.Span)
	if p.cur().HasText("case") {
		p.advance()
	}
	p.captureName(id)
	if err := p.parseOptionalBody(id); err != nil {
		return ast.NoNodeID, err
	}
	return id, nil
}

// generic fallback: IDENT?, затем скип всех токенов до ближайшего ';' или
// '}' (не включая), затем хвостовой ';', если есть. Если сюда попало
// нераспознанное ключевое слово, захват имени не срабатывает (вид токена не
// Ident) и само слово молча съедается скип-циклом — узел не несёт ни имени,
// ни структурного смысла, кроме «один statement пропущен». '}' это правило
// не потребляет никогда: её съест цикл объемлющего тела.
func (p *Parser) parseGeneric() (ast.NodeID, error) {
	id := p.builder.NewNode(ast.NodeGeneric, p.cur().Span)
	p.captureName(id)
	for {
		if p.at(token.EOF) || p.atText(token.Punct, ";") || p.atText(token.Punct, "}") {
			break
		}
		p.builder.CoverSpan(id, p.cur().Span)
		p.advance()
	}
	p.eatSemicolon(id)
	return id, nil
}

// parseOptionalBody разбирает '{' element* '}', если тело присутствует.
func (p *Parser) parseOptionalBody(id ast.NodeID) error {
	if !p.atText(token.Punct, "{") {
		return nil
	}
	return p.parseBody(id)
}

// parseBody разбирает '{' element* '}' и вешает детей на id.
// Несбалансированная '{' приводит к отказу expect('}') на EOF.
func (p *Parser) parseBody(id ast.NodeID) error {
	if _, err := p.expect(token.Punct, "{"); err != nil {
		return err
	}
	for !p.atText(token.Punct, "}") && !p.at(token.EOF) {
		before := p.pos
		child, err := p.parseElement()
		if err != nil {
			return err
		}
		p.builder.PushChild(id, child)
		p.builder.CoverSpan(id, p.builder.Get(child).Span)
		if p.pos == before {
			p.advance()
		}
	}
	closing, err := p.expect(token.Punct, "}")
	if err != nil {
		return err
	}
	p.builder.CoverSpan(id, closing.Span)
	return nil
}

// captureName записывает свойство name, если текущий токен — Ident.
func (p *Parser) captureName(id ast.NodeID) {
	if p.at(token.Ident) {
		name := p.advance()
		p.builder.SetStr(id, ast.PropName, name.Text)
		p.builder.CoverSpan(id, name.Span)
	}
}

// captureTypeAnnotation разбирает (':' IDENT)? с молчаливым пропуском
// не-Ident типа.
func (p *Parser) captureTypeAnnotation(id ast.NodeID) {
	if !p.atText(token.Punct, ":") {
		return
	}
	p.advance()
	if p.at(token.Ident) {
		typ := p.advance()
		p.builder.SetStr(id, ast.PropType, typ.Text)
		p.builder.CoverSpan(id, typ.Span)
	}
}

// eatSemicolon потребляет хвостовую ';', если она есть.
func (p *Parser) eatSemicolon(id ast.NodeID) {
	if p.atText(token.Punct, ";") {
		end := p.advance()
		p.builder.CoverSpan(id, end.Span)
	}
}

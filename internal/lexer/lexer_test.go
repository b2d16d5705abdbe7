package lexer_test

import (
	"math"
	"testing"

	"sysdl/internal/lexer"
	"sysdl/internal/source"
	"sysdl/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) *lexer.Lexer {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysdl", []byte(input))
	return lexer.New(fs.Get(fileID))
}

// collectAllTokens собирает все токены до EOF включительно
func collectAllTokens(input string) []token.Token {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.sysdl", []byte(input))
	return lexer.Tokenize(fs.Get(fileID))
}

// expectKinds проверяет последовательность видов токенов
func expectKinds(t *testing.T, input string, expected []token.Kind) []token.Token {
	t.Helper()
	tokens := collectAllTokens(input)
	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch for %q: got %d, want %d", input, len(tokens), len(expected))
	}
	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Errorf("token %d of %q: got %s, want %s", i, input, tokens[i].Kind, k)
		}
	}
	return tokens
}

func TestTokenizeEmptyInput(t *testing.T) {
	tokens := collectAllTokens("")
	if len(tokens) != 1 || tokens[0].Kind != token.EOF {
		t.Fatalf("empty input: got %v, want single EOF", tokens)
	}
	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Errorf("EOF position: got %d:%d, want 1:1", tokens[0].Line, tokens[0].Col)
	}
}

func TestTokenizeAlwaysEndsWithSingleEOF(t *testing.T) {
	inputs := []string{
		"",
		"package P { }",
		"\"unterminated",
		"/* unterminated",
		"1.2.3.4",
		"@#$%",
		"   \n\t  ",
	}
	for _, input := range inputs {
		tokens := collectAllTokens(input)
		eofs := 0
		for _, tok := range tokens {
			if tok.Kind == token.EOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Errorf("input %q: got %d EOF tokens, want 1", input, eofs)
		}
		if tokens[len(tokens)-1].Kind != token.EOF {
			t.Errorf("input %q: last token is %s, want EOF", input, tokens[len(tokens)-1].Kind)
		}
	}
}

func TestTokenPositionsNonDecreasing(t *testing.T) {
	input := "package Vehicle {\n  part Engine;\n  // comment\n  attribute mass : Real = 1500.0;\n}\n"
	tokens := collectAllTokens(input)

	prevLine, prevCol := uint32(0), uint32(0)
	for _, tok := range tokens {
		if tok.Line < prevLine || (tok.Line == prevLine && tok.Col < prevCol) {
			t.Errorf("token %s at %d:%d precedes previous position %d:%d",
				tok.Describe(), tok.Line, tok.Col, prevLine, prevCol)
		}
		if int(tok.Span.End) > len(input) {
			t.Errorf("token %s span end %d exceeds input length %d", tok.Describe(), tok.Span.End, len(input))
		}
		prevLine, prevCol = tok.Line, tok.Col
	}
}

func TestStringEscapeDecoding(t *testing.T) {
	tokens := expectKinds(t, `"a\"b"`, []token.Kind{token.String, token.EOF})
	if tokens[0].Text != `a"b` {
		t.Errorf("escaped string: got %q, want %q", tokens[0].Text, `a"b`)
	}
}

func TestStringEscapeIsVerbatim(t *testing.T) {
	// \n не превращается в перевод строки: экранированный символ
	// добавляется как есть
	tokens := collectAllTokens(`"a\nb"`)
	if tokens[0].Text != "anb" {
		t.Errorf("verbatim escape: got %q, want %q", tokens[0].Text, "anb")
	}
}

func TestStringQuoteKinds(t *testing.T) {
	tokens := collectAllTokens(`'single' "double"`)
	if tokens[0].Text != "single" || tokens[1].Text != "double" {
		t.Errorf("quote kinds: got %q, %q", tokens[0].Text, tokens[1].Text)
	}
}

func TestStringMismatchedQuoteDoesNotClose(t *testing.T) {
	// закрывающая кавычка должна совпадать с открывающей
	tokens := collectAllTokens(`'a"b'`)
	if tokens[0].Text != `a"b` {
		t.Errorf("mismatched quote: got %q, want %q", tokens[0].Text, `a"b`)
	}
}

func TestUnterminatedStringYieldsAccumulated(t *testing.T) {
	tokens := collectAllTokens(`"abc`)
	if len(tokens) != 2 {
		t.Fatalf("unterminated string: got %d tokens, want 2", len(tokens))
	}
	if tokens[0].Kind != token.String || tokens[0].Text != "abc" {
		t.Errorf("unterminated string: got %s %q", tokens[0].Kind, tokens[0].Text)
	}
}

func TestLineComment(t *testing.T) {
	tokens := expectKinds(t, "// hello\npackage", []token.Kind{token.Comment, token.Keyword, token.EOF})
	if tokens[0].Text != " hello" {
		t.Errorf("line comment body: got %q, want %q", tokens[0].Text, " hello")
	}
	// '\n' не потреблён комментарием: package стоит на второй строке
	if tokens[1].Line != 2 || tokens[1].Col != 1 {
		t.Errorf("token after comment at %d:%d, want 2:1", tokens[1].Line, tokens[1].Col)
	}
}

func TestBlockComment(t *testing.T) {
	tokens := expectKinds(t, "/* a\nb */ part", []token.Kind{token.Comment, token.Keyword, token.EOF})
	if tokens[0].Text != " a\nb " {
		t.Errorf("block comment body: got %q", tokens[0].Text)
	}
}

func TestUnterminatedBlockCommentSilentlyEnds(t *testing.T) {
	tokens := expectKinds(t, "/* never closed", []token.Kind{token.Comment, token.EOF})
	if tokens[0].Text != " never closed" {
		t.Errorf("unterminated block comment body: got %q", tokens[0].Text)
	}
}

func TestNumberParsing(t *testing.T) {
	tests := []struct {
		input string
		num   float64
	}{
		{"0", 0},
		{"42", 42},
		{"1500.0", 1500.0},
		{"3.14", 3.14},
	}
	for _, tt := range tests {
		tokens := collectAllTokens(tt.input)
		if tokens[0].Kind != token.Number {
			t.Errorf("%q: got %s, want Number", tt.input, tokens[0].Kind)
			continue
		}
		if tokens[0].Num != tt.num {
			t.Errorf("%q: got %v, want %v", tt.input, tokens[0].Num, tt.num)
		}
	}
}

func TestMalformedNumberIsNaN(t *testing.T) {
	tokens := expectKinds(t, "1.2.3", []token.Kind{token.Number, token.EOF})
	if !math.IsNaN(tokens[0].Num) {
		t.Errorf("malformed number: got %v, want NaN", tokens[0].Num)
	}
	if tokens[0].Text != "1.2.3" {
		t.Errorf("malformed number text: got %q", tokens[0].Text)
	}
}

func TestKeywordVersusIdent(t *testing.T) {
	tokens := collectAllTokens("package Package packages specializes")
	expected := []token.Kind{token.Keyword, token.Ident, token.Ident, token.Keyword, token.EOF}
	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, tokens[i].Kind, k)
		}
	}
}

func TestPunctAndOperators(t *testing.T) {
	expectKinds(t, "{ } ( ) ; : , .", []token.Kind{
		token.Punct, token.Punct, token.Punct, token.Punct,
		token.Punct, token.Punct, token.Punct, token.Punct, token.EOF,
	})
	expectKinds(t, "= < > ! + - * /", []token.Kind{
		token.Operator, token.Operator, token.Operator, token.Operator,
		token.Operator, token.Operator, token.Operator, token.Operator, token.EOF,
	})
}

func TestLoneSlashIsOperator(t *testing.T) {
	tokens := expectKinds(t, "a / b", []token.Kind{token.Ident, token.Operator, token.Ident, token.EOF})
	if tokens[1].Text != "/" {
		t.Errorf("lone slash text: got %q", tokens[1].Text)
	}
}

func TestUnknownByteIsCatchAllIdent(t *testing.T) {
	tokens := expectKinds(t, "@", []token.Kind{token.Ident, token.EOF})
	if tokens[0].Text != "@" {
		t.Errorf("catch-all: got %q", tokens[0].Text)
	}
}

func TestLineColTracking(t *testing.T) {
	tokens := collectAllTokens("a\n  b")
	if tokens[0].Line != 1 || tokens[0].Col != 1 {
		t.Errorf("first token at %d:%d, want 1:1", tokens[0].Line, tokens[0].Col)
	}
	if tokens[1].Line != 2 || tokens[1].Col != 3 {
		t.Errorf("second token at %d:%d, want 2:3", tokens[1].Line, tokens[1].Col)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx := makeTestLexer("part Engine")
	first := lx.Peek()
	if got := lx.Next(); got != first {
		t.Errorf("Peek/Next mismatch: %v vs %v", first, got)
	}
	if got := lx.Next(); got.Text != "Engine" {
		t.Errorf("after Peek+Next: got %q, want Engine", got.Text)
	}
}

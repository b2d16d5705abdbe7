package token_test

import (
	"testing"

	"sysdl/internal/token"
)

func TestKeywordSet(t *testing.T) {
	keywords := []string{
		"package", "part", "attribute", "port", "connection", "interface",
		"block", "requirement", "constraint", "activity", "state",
		"transition", "use", "case", "actor", "subject", "stakeholder",
		"concern", "view", "viewpoint", "rendering", "expose", "import",
		"private", "protected", "public", "abstract", "readonly", "derived",
		"end", "redefines", "specializes", "conjugates",
	}
	for _, kw := range keywords {
		if !token.IsKeyword(kw) {
			t.Errorf("%q must be a keyword", kw)
		}
	}
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	for _, s := range []string{"Package", "PART", "Use", "pArt"} {
		if token.IsKeyword(s) {
			t.Errorf("%q must not be a keyword", s)
		}
	}
}

func TestNonKeywords(t *testing.T) {
	for _, s := range []string{"", "engine", "specialize", "packages"} {
		if token.IsKeyword(s) {
			t.Errorf("%q must not be a keyword", s)
		}
	}
}

func TestHasText(t *testing.T) {
	kw := token.Token{Kind: token.Keyword, Text: "specializes"}
	if !kw.HasText("specializes") {
		t.Error("keyword text match failed")
	}
	ident := token.Token{Kind: token.Ident, Text: "specializes"}
	if !ident.HasText("specializes") {
		t.Error("HasText must ignore token kind")
	}
	eof := token.Token{Kind: token.EOF}
	if eof.HasText("") {
		t.Error("EOF must never text-match")
	}
}

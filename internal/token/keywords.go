package token

var keywords = map[string]struct{}{
	"package":     {},
	"part":        {},
	"attribute":   {},
	"port":        {},
	"connection":  {},
	"interface":   {},
	"block":       {},
	"requirement": {},
	"constraint":  {},
	"activity":    {},
	"state":       {},
	"transition":  {},
	"use":         {},
	"case":        {},
	"actor":       {},
	"subject":     {},
	"stakeholder": {},
	"concern":     {},
	"view":        {},
	"viewpoint":   {},
	"rendering":   {},
	"expose":      {},
	"import":      {},
	"private":     {},
	"protected":   {},
	"public":      {},
	"abstract":    {},
	"readonly":    {},
	"derived":     {},
	"end":         {},
	"redefines":   {},
	"specializes": {},
	"conjugates":  {},
}

// IsKeyword возвращает true, если ident — зарезервированное слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}

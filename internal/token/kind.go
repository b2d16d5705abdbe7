package token

// Kind represents the lexical category of a source token.
type Kind uint8

const (
	// EOF marks the end of the source input.
	EOF Kind = iota
	// Keyword represents one of the fixed reserved words.
	Keyword
	// Ident represents an identifier token.
	Ident
	// String represents a string literal (Text is the decoded content).
	String
	// Number represents a numeric literal (Num is the parsed value).
	Number
	// Operator represents a single-character operator.
	Operator
	// Punct represents a single-character punctuation token.
	Punct
	// Comment represents a line or block comment (Text is the body).
	Comment
)

func (k Kind) String() string {
	switch k {
	case EOF:
		return "EOF"
	case Keyword:
		return "Keyword"
	case Ident:
		return "Ident"
	case String:
		return "String"
	case Number:
		return "Number"
	case Operator:
		return "Operator"
	case Punct:
		return "Punct"
	case Comment:
		return "Comment"
	}
	return "Unknown"
}

package parser

import (
	"fmt"

	"sysdl/internal/token"
)

// SyntaxError — структурная ошибка разбора: ожидание expect не совпало с
// текущим токеном. Разматывается через все вложенные правила до единственной
// границы восстановления в ParseFile; ни одно правило ниже неё не ловит и не
// чинит ошибку локально.
type SyntaxError struct {
	Expected string
	Actual   token.Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("expected %s, got %s at %d:%d",
		e.Expected, e.Actual.Describe(), e.Actual.Line, e.Actual.Col)
}

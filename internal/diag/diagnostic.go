package diag

import (
	"sysdl/internal/source"
)

// Note — дополнительная привязка к месту в исходнике.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic — одно сообщение фазы: позиция, код, текст.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

package diag

import (
	"fmt"
)

// Code — числовой код диагностики. Лексических кодов нет намеренно:
// лексер тотален и не репортит, весь диапазон ошибок — синтаксический.
type Code uint16

const (
	// UnknownCode is the zero code.
	UnknownCode Code = 0

	// Синтаксические
	SynInfo            Code = 2000
	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002

	// I/O
	IOLoadFileError Code = 9001
)

// ID возвращает строковый идентификатор кода для вывода.
func (c Code) ID() string {
	switch c {
	case SynInfo:
		return "SYN0000"
	case SynUnexpectedToken:
		return "SYN0001"
	case SynUnexpectedEOF:
		return "SYN0002"
	case IOLoadFileError:
		return "IO0001"
	}
	return fmt.Sprintf("E%04d", uint16(c))
}

func (c Code) String() string {
	return c.ID()
}

package lexer

// ===== Классификаторы =====

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isPunctByte(b byte) bool {
	switch b {
	case '{', '}', '(', ')', ';', ':', ',', '.':
		return true
	default:
		return false
	}
}

func isOperatorByte(b byte) bool {
	switch b {
	case '=', '<', '>', '!', '+', '-', '*', '/':
		return true
	default:
		return false
	}
}

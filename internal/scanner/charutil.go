package scanner

func IsDigit[T byte | rune](b T) bool {
	return b >= '0' && b <= '9'
}

func IsNonZeroDigit[T byte | rune](b T) bool {
	return b >= '1' && b <= '9'
}

func IsHex[T byte | rune](b T) bool {
	return IsDigit(b) || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

// IsCtrl reports ASCII control characters, DEL included.
func IsCtrl[T byte | rune](b T) bool {
	return b < 32 || b == 127
}

func IsSpace[T byte | rune](b T) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

package emoji

// IsSingleUnit reports whether r fits in one UTF-16 code unit and defaults
// to emoji presentation, so that it is measured as an emoji cell.
func IsSingleUnit(r rune) bool {
	return r >= 0 && r <= 0xFFFF && isBMPEmojiPresentation(r)
}

// isBMPEmojiPresentation lists the Emoji_Presentation=Yes code points of
// the Basic Multilingual Plane.
func isBMPEmojiPresentation(r rune) bool {
	switch {
	case r == 0x231A || r == 0x231B: // watch, hourglass
		return true
	case r >= 0x23E9 && r <= 0x23EC, r == 0x23F0, r == 0x23F3:
		return true
	case r == 0x25FD || r == 0x25FE:
		return true
	case r == 0x2614 || r == 0x2615:
		return true
	case r >= 0x2648 && r <= 0x2653: // zodiac
		return true
	case r == 0x267F, r == 0x2693, r == 0x26A1, r == 0x26AA, r == 0x26AB:
		return true
	case r == 0x26BD || r == 0x26BE || r == 0x26C4 || r == 0x26C5:
		return true
	case r == 0x26CE, r == 0x26D4, r == 0x26EA, r == 0x26F2, r == 0x26F3:
		return true
	case r == 0x26F5, r == 0x26FA, r == 0x26FD:
		return true
	case r == 0x2705, r == 0x270A, r == 0x270B, r == 0x2728:
		return true
	case r == 0x274C, r == 0x274E, r >= 0x2753 && r <= 0x2755, r == 0x2757:
		return true
	case r >= 0x2795 && r <= 0x2797, r == 0x27B0, r == 0x27BF:
		return true
	case r == 0x2B1B || r == 0x2B1C || r == 0x2B50 || r == 0x2B55:
		return true
	}
	return false
}

// Package textutil makes file names and messages safe to draw on a terminal.
package textutil

import "strings"

// formattingLabel names bidi and zero-width runes. Drawn raw they reorder or
// hide parts of a name, so they are shown as a visible label instead.
func formattingLabel(r rune) (string, bool) {
	switch r {
	case 0x00AD:
		return "⟪SHY⟫", true
	case 0x061C:
		return "⟪ALM⟫", true
	case 0x180E:
		return "⟪MVS⟫", true
	case 0x200B:
		return "⟪ZWSP⟫", true
	case 0x200C:
		return "⟪ZWNJ⟫", true
	case 0x200D:
		return "⟪ZWJ⟫", true
	case 0x200E:
		return "⟪LRM⟫", true
	case 0x200F:
		return "⟪RLM⟫", true
	case 0x2028:
		return "⟪LSEP⟫", true
	case 0x2029:
		return "⟪PSEP⟫", true
	case 0x202A:
		return "⟪LRE⟫", true
	case 0x202B:
		return "⟪RLE⟫", true
	case 0x202C:
		return "⟪PDF⟫", true
	case 0x202D:
		return "⟪LRO⟫", true
	case 0x202E:
		return "⟪RLO⟫", true
	case 0x2060:
		return "⟪WJ⟫", true
	case 0x2066:
		return "⟪LRI⟫", true
	case 0x2067:
		return "⟪RLI⟫", true
	case 0x2068:
		return "⟪FSI⟫", true
	case 0x2069:
		return "⟪PDI⟫", true
	case 0xFEFF:
		return "⟪BOM⟫", true
	}
	if r >= 0x206A && r <= 0x206F {
		return "⟪DEPR⟫", true
	}
	return "", false
}

func unsafeRune(r rune) bool {
	if _, ok := formattingLabel(r); ok {
		return true
	}
	return r < 0x20 || r == 0x7f
}

// SanitizeTerminalText makes text safe to hand to the screen: whitespace
// controls become spaces, other control runes become '?', and formatting
// runes are labeled. Safe text is returned unchanged.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, unsafeRune) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if label, ok := formattingLabel(r); ok {
			b.WriteString(label)
			continue
		}
		switch {
		case r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		case r < 0x20 || r == 0x7f:
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FirstLine returns the sanitized text before the first line break. The
// info line has room for a single row.
func FirstLine(text string) string {
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		text = text[:idx]
	}
	return SanitizeTerminalText(text)
}

package parser

import "strings"

// splitHeader finds the '[' ... ']' that opens a rule chunk, tracking
// bracket depth so a nested '[' inside the header text (rare, but the
// spec allows it) doesn't close the header early. It returns the
// header text (without the brackets) and the text after the closing
// ']', or ok=false if the chunk doesn't start with '[' or the header
// is never closed.
func splitHeader(text string) (header string, rest string, ok bool) {
	runes := []rune(text)
	if len(runes) == 0 || runes[0] != '[' {
		return "", "", false
	}
	depth := 1
	for i := 1; i < len(runes); i++ {
		switch runes[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return string(runes[1:i]), string(runes[i+1:]), true
			}
		}
	}
	return "", "", false
}

// splitFirstToken splits s on its first run of whitespace, returning
// the leading token and the (untrimmed) remainder.
func splitFirstToken(s string) (token string, rest string) {
	trimmed := strings.TrimLeft(s, " \t")
	idx := strings.IndexAny(trimmed, " \t")
	if idx < 0 {
		return trimmed, ""
	}
	return trimmed[:idx], trimmed[idx:]
}

func parseKind(token string) (kind string, ok bool) {
	switch strings.ToLower(token) {
	case "order":
		return "Order", true
	case "nearstart":
		return "NearStart", true
	case "nearend":
		return "NearEnd", true
	case "note":
		return "Note", true
	case "conflict":
		return "Conflict", true
	case "requires":
		return "Requires", true
	case "patch":
		return "Patch", true
	default:
		return "", false
	}
}

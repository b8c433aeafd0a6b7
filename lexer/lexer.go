// Package lexer splits rule-body lines into tokens. It is the
// smallest piece of the pipeline, used for Order/NearStart/NearEnd
// bodies; nested expression bodies are tokenized by the parser's own
// expression reader.
package lexer

import (
	"strings"
	"unicode"
)

// Tokenize splits line into whitespace-delimited tokens, treating
// "..."-quoted segments as a single token with the quotes stripped and
// internal whitespace preserved. An unterminated quote runs to the end
// of the line as one token. Tokenize never returns an error: it is
// total over any input, including the empty string.
func Tokenize(line string) []string {
	var tokens []string
	var current strings.Builder
	inQuote := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, c := range line {
		switch {
		case c == '"':
			if inQuote {
				inQuote = false
				flush()
			} else {
				inQuote = true
			}
		case unicode.IsSpace(c) && !inQuote:
			flush()
		default:
			current.WriteRune(c)
		}
	}
	flush()

	return tokens
}

package parser

import "strings"

// rawChunk is one rule chunk: its non-blank, non-comment lines and the
// 1-based source line the chunk started on.
type rawChunk struct {
	lines     []string
	startLine int
}

// chunkLines groups text into rule chunks. Lines starting (ignoring
// leading whitespace) with ';' are comments and are dropped entirely —
// they do not end a chunk, unlike a blank line. Chunks are separated
// by one or more blank lines.
func chunkLines(text string) []rawChunk {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")

	var chunks []rawChunk
	var current []string
	currentStart := 0

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, rawChunk{lines: current, startLine: currentStart})
			current = nil
		}
	}

	for i, line := range lines {
		lineNo := i + 1
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), ";") {
			continue
		}
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if len(current) == 0 {
			currentStart = lineNo
		}
		current = append(current, line)
	}
	flush()

	return chunks
}

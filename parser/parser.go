// Package parser implements the rules-language parser: chunking by
// blank line, header dispatch, the nested-expression reader, and
// directory ingestion.
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rfuzzo/plox/diag"
	"github.com/rfuzzo/plox/lexer"
	"github.com/rfuzzo/plox/rule"
)

// Result holds the parsed rules and the diagnostics collected while
// parsing them. A malformed chunk is dropped and reported as a
// Diagnostic; it never aborts parsing of the rest of the file.
type Result struct {
	Rules       []rule.Rule
	Diagnostics []*diag.Diagnostic
}

// ParseFile reads path fully into memory and parses it. All files are
// read and fully buffered before parsing begins — no streaming, no
// descriptors held across calls.
func ParseFile(path string, logger *slog.Logger) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}
	return ParseString(string(data), path, logger), nil
}

// ParseString parses the already-buffered contents of a rules file.
// path is used only for diagnostics.
func ParseString(text string, path string, logger *slog.Logger) Result {
	if logger == nil {
		logger = slog.Default()
	}

	var res Result
	for _, c := range chunkLines(text) {
		r, ds := parseChunk(c, path)
		res.Diagnostics = append(res.Diagnostics, ds...)
		if r != nil {
			res.Rules = append(res.Rules, *r)
		}
		for _, d := range ds {
			logger.Debug("dropped rule chunk", "rule_kind", d.Kind, "path", d.Path, "line", d.Line, "reason", d.Reason)
		}
	}
	return res
}

// parseChunk dispatches one chunk's header and body. It returns at
// most one rule (Order/NearStart/NearEnd chunks collapse their whole
// name list into a single Rule; the sorter expands adjacent pairs at
// edge-construction time, see buildEdges in package sorter) plus any
// diagnostics.
func parseChunk(c rawChunk, path string) (*rule.Rule, []*diag.Diagnostic) {
	text := strings.Join(c.lines, "\n")

	header, rest, ok := splitHeader(text)
	if !ok {
		return nil, []*diag.Diagnostic{diag.New(path, c.startLine, "", "chunk does not start with a rule header")}
	}

	kindToken, headerRest := splitFirstToken(header)
	kindName, ok := parseKind(kindToken)
	if !ok {
		return nil, []*diag.Diagnostic{diag.New(path, c.startLine, "", fmt.Sprintf("unknown rule kind %q", kindToken))}
	}
	headerComment := strings.TrimSpace(headerRest)

	body, inline := splitBody(rest)

	switch kindName {
	case "Order", "NearStart", "NearEnd":
		return parseOrderLike(kindName, body, path, c.startLine)
	default:
		return parseExpressionRule(kindName, headerComment, body, inline, path, c.startLine)
	}
}

// splitBody separates the chunk remainder (everything after the
// header's closing ']') into the rule body and reports whether the
// body started inline (same line as the header) or on a later line.
func splitBody(rest string) (body string, inline bool) {
	firstLine := rest
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		firstLine = rest[:idx]
	}
	if strings.TrimSpace(firstLine) != "" {
		return rest, true
	}
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		return rest[idx+1:], false
	}
	return "", false
}

func parseOrderLike(kindName, body, path string, line int) (*rule.Rule, []*diag.Diagnostic) {
	var names []string
	for _, l := range strings.Split(body, "\n") {
		names = append(names, lexer.Tokenize(strings.TrimSpace(l))...)
	}

	kind := ruleKindFromName(kindName)
	if kind == rule.Order && len(names) < 2 {
		return nil, nil // dropped silently, per spec
	}
	if len(names) == 0 {
		return nil, nil
	}
	return &rule.Rule{Kind: kind, Names: names, Source: rule.Source{Path: path, Line: line}}, nil
}

// parseExpressionRule handles Note/Conflict/Requires/Patch: it first
// resolves the rule's comment (header trailing text, or leading
// space-indented body lines when the header had none), then reads
// the remaining body as a nested expression list.
func parseExpressionRule(kindName, headerComment, body string, inline bool, path string, line int) (*rule.Rule, []*diag.Diagnostic) {
	comment := headerComment
	if comment == "" && !inline {
		comment, body = extractCommentLines(body)
	}

	exprs := newExprReader(body).list()
	kind := ruleKindFromName(kindName)

	if kind == rule.Note {
		return &rule.Rule{Kind: rule.Note, Comment: comment, Expressions: exprs, Source: rule.Source{Path: path, Line: line}}, nil
	}

	if len(exprs) < 2 {
		return nil, []*diag.Diagnostic{diag.New(path, line, kindName, fmt.Sprintf("%s rule requires two expressions, found %d", kindName, len(exprs)))}
	}
	return &rule.Rule{Kind: kind, Comment: comment, A: exprs[0], B: exprs[1], Source: rule.Source{Path: path, Line: line}}, nil
}

// extractCommentLines pulls consecutive space-led lines off the front
// of body and concatenates them into the comment text.
func extractCommentLines(body string) (comment string, rest string) {
	lines := strings.Split(body, "\n")
	var commentLines []string
	i := 0
	for i < len(lines) && strings.HasPrefix(lines[i], " ") {
		commentLines = append(commentLines, strings.TrimSpace(lines[i]))
		i++
	}
	if len(commentLines) == 0 {
		return "", body
	}
	return strings.Join(commentLines, ""), strings.Join(lines[i:], "\n")
}

func ruleKindFromName(name string) rule.Kind {
	switch name {
	case "Order":
		return rule.Order
	case "NearStart":
		return rule.NearStart
	case "NearEnd":
		return rule.NearEnd
	case "Note":
		return rule.Note
	case "Conflict":
		return rule.Conflict
	case "Requires":
		return rule.Requires
	case "Patch":
		return rule.Patch
	default:
		return rule.Note
	}
}

// DirOptions configures directory ingestion.
type DirOptions struct {
	BaseGlob string // default "*_base.txt"
	UserGlob string // default "*_user.txt"
}

// DefaultDirOptions returns the conventional mlox/plox file-naming
// scheme.
func DefaultDirOptions() DirOptions {
	return DirOptions{BaseGlob: "*_base.txt", UserGlob: "*_user.txt"}
}

// ErrNoBaseFile is returned by ParseDir when a rules directory has no
// file matching BaseGlob — a base file is required (SPEC_FULL.md
// "Directory ingestion").
type ErrNoBaseFile struct{ Dir, Glob string }

func (e *ErrNoBaseFile) Error() string {
	return fmt.Sprintf("%s: no base rules file matching %q", e.Dir, e.Glob)
}

// ParseDir parses every file in dir matching opts.BaseGlob (required)
// followed by opts.UserGlob (optional), concatenating their rule lists
// in file order: base files first, sorted by name, then user files,
// sorted by name. A base file is required; a missing user file is not
// an error.
func ParseDir(dir string, opts DirOptions, logger *slog.Logger) (Result, error) {
	bases, err := globSorted(dir, opts.BaseGlob)
	if err != nil {
		return Result{}, err
	}
	if len(bases) == 0 {
		return Result{}, &ErrNoBaseFile{Dir: dir, Glob: opts.BaseGlob}
	}
	users, err := globSorted(dir, opts.UserGlob)
	if err != nil {
		return Result{}, err
	}

	var res Result
	for _, path := range append(bases, users...) {
		r, err := ParseFile(path, logger)
		if err != nil {
			return Result{}, err
		}
		res.Rules = append(res.Rules, r.Rules...)
		res.Diagnostics = append(res.Diagnostics, r.Diagnostics...)
	}
	return res, nil
}

func globSorted(dir, pattern string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// ParseReader is a convenience for streaming callers that already have
// the file open; it still buffers the entire contents up front.
func ParseReader(r io.Reader, path string, logger *slog.Logger) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}
	return ParseString(string(data), path, logger), nil
}

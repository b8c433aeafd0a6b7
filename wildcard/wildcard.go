// Package wildcard implements the single matching strategy used
// everywhere a rule name has to be resolved against the installed-mod
// set: warning evaluation and sorter edge expansion both call Contains,
// so the glob behavior lives in exactly one place.
package wildcard

import (
	"regexp"
	"strings"
	"sync"
)

// MatchFunc resolves pattern against names and reports the distinct
// matches, in names order. ok is false when nothing matched — callers
// must distinguish "matched nothing" from "matched everything but the
// empty set", which a plain nil slice cannot express on its own.
type MatchFunc func(names []string, pattern string) (matches []string, ok bool)

// verToken is the literal wildcard recognized inside a pattern name;
// it behaves exactly like "*".
const verToken = "<ver>"

// Contains is the default MatchFunc. It recognizes two pattern forms:
// a literal (case-insensitive equality) when pattern has no
// metacharacters, and a glob (*, ?, <ver>) otherwise.
func Contains(names []string, pattern string) ([]string, bool) {
	var matches []string
	seen := make(map[string]bool, len(names))

	if !HasWildcard(pattern) {
		lower := strings.ToLower(pattern)
		for _, n := range names {
			if strings.ToLower(n) == lower && !seen[n] {
				seen[n] = true
				matches = append(matches, n)
			}
		}
	} else {
		re := compile(pattern)
		for _, n := range names {
			if re.MatchString(n) && !seen[n] {
				seen[n] = true
				matches = append(matches, n)
			}
		}
	}

	if len(matches) == 0 {
		return nil, false
	}
	return matches, true
}

// HasWildcard reports whether pattern contains a glob metacharacter or
// the <ver> token, i.e. whether it needs glob compilation at all.
func HasWildcard(pattern string) bool {
	return strings.ContainsAny(pattern, "*?") || strings.Contains(pattern, verToken)
}

var (
	cacheMu sync.Mutex
	cache   = map[string]*regexp.Regexp{}
)

// compile turns a glob pattern into an anchored, case-insensitive
// regexp. <ver> is substituted for "*" first (it carries no version
// semantics of its own here — see SPEC_FULL.md §3 on golang.org/x/mod),
// then every rune is translated individually so literal regex
// metacharacters in mod names (., +, etc.) are not misinterpreted.
func compile(pattern string) *regexp.Regexp {
	cacheMu.Lock()
	if re, ok := cache[pattern]; ok {
		cacheMu.Unlock()
		return re
	}
	cacheMu.Unlock()

	normalized := strings.ReplaceAll(pattern, verToken, "*")

	var b strings.Builder
	b.WriteString("(?i)^")
	for _, r := range normalized {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re := regexp.MustCompile(b.String())

	cacheMu.Lock()
	cache[pattern] = re
	cacheMu.Unlock()
	return re
}

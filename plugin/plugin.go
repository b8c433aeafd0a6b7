// Package plugin defines the installed-mod data model shared by the
// rest of the engine: the parser evaluates rules against it, the
// sorter permutes it, the evaluator reports warnings about it.
package plugin

import "strings"

// Plugin is one installed mod file. Name is the case-insensitive
// comparison key and is stored canonically lowercased; Size is the
// byte count used by the SIZE expression predicate. Plugin is
// immutable after construction.
type Plugin struct {
	Name string
	Size uint64
}

// New canonicalizes name to lowercase before storing it, matching the
// "installed-mod list is canonical in lowercase" invariant.
func New(name string, size uint64) Plugin {
	return Plugin{Name: strings.ToLower(name), Size: size}
}

// Names returns the canonical (lowercased) names of installed, in the
// same order they were given — the order the user currently loads
// them in, which the sorter treats as the baseline to minimally
// perturb.
func Names(installed []Plugin) []string {
	names := make([]string, len(installed))
	for i, p := range installed {
		names[i] = p.Name
	}
	return names
}

// SizeOf returns the size of the installed plugin matching name
// (case-insensitive) and whether it was found.
func SizeOf(installed []Plugin, name string) (uint64, bool) {
	lower := strings.ToLower(name)
	for _, p := range installed {
		if p.Name == lower {
			return p.Size, true
		}
	}
	return 0, false
}

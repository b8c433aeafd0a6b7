// Package plox is the public entry point tying the rules parser,
// sorter, and evaluator together, the way runtime/parser.Parse and
// runtime/executor.New are the public entry points of their
// respective teacher packages.
package plox

import (
	"log/slog"

	"github.com/rfuzzo/plox/config"
	"github.com/rfuzzo/plox/diag"
	"github.com/rfuzzo/plox/evaluate"
	"github.com/rfuzzo/plox/parser"
	"github.com/rfuzzo/plox/plugin"
	"github.com/rfuzzo/plox/rule"
	"github.com/rfuzzo/plox/sorter"
)

// Plugin re-exports plugin.Plugin so callers need not import the
// subpackage directly for the common case.
type Plugin = plugin.Plugin

// Diagnostic re-exports diag.Diagnostic.
type Diagnostic = diag.Diagnostic

// Warning re-exports evaluate.Warning.
type Warning = evaluate.Warning

// ParseRulesFile parses a single rules file.
func ParseRulesFile(path string, logger *slog.Logger) ([]rule.Rule, []*Diagnostic, error) {
	res, err := parser.ParseFile(path, logger)
	if err != nil {
		return nil, nil, err
	}
	return res.Rules, res.Diagnostics, nil
}

// ParseRulesDir ingests every rule file in dir per cfg's globs,
// concatenating base files (sorted) then user files (sorted).
func ParseRulesDir(dir string, cfg config.IngestConfig, logger *slog.Logger) ([]rule.Rule, []*Diagnostic, error) {
	res, err := parser.ParseDir(dir, cfg.DirOptions(), logger)
	if err != nil {
		return nil, nil, err
	}
	return res.Rules, res.Diagnostics, nil
}

// Sort produces a load order for installed satisfying every order
// rule in rules, under cfg's sort mode and iteration bound.
func Sort(installed []Plugin, rules []rule.Rule, cfg config.IngestConfig) ([]string, error) {
	opts := cfg.SortOptions()
	return sorter.Sort(installed, rules, cfg.SortMode(), opts)
}

// Verify reports whether rules' order constraints are satisfiable over
// installed, without computing a full stable reorder.
func Verify(installed []Plugin, rules []rule.Rule) (bool, error) {
	return sorter.Verify(installed, rules)
}

// Evaluate runs every non-order rule in rules against installed and
// returns the warnings that fired, in declaration order.
func Evaluate(rules []rule.Rule, installed []Plugin) []Warning {
	return evaluate.Evaluate(rules, installed)
}

// SuggestSimilar returns the installed plugin names closest to
// pattern, for diagnostics alongside a rule that never fired.
func SuggestSimilar(installed []Plugin, pattern string, max int) []string {
	return evaluate.SuggestSimilar(installed, pattern, max)
}

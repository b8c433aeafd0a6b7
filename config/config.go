// Package config defines IngestConfig, the parameters governing
// directory ingestion (base/user file globs, sort mode, iteration
// bound) and its JSON Schema validation.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rfuzzo/plox/parser"
	"github.com/rfuzzo/plox/sorter"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// IngestConfig parameterizes directory ingestion: which files count as
// base vs. user rule files, and how the sorter should run.
type IngestConfig struct {
	// BaseGlob selects the distributed base rule files within a rules
	// directory, concatenated first. Defaults to "*_base.txt".
	BaseGlob string `json:"baseGlob"`
	// UserGlob selects user-authored rule files, concatenated after
	// the base files. Defaults to "*_user.txt".
	UserGlob string `json:"userGlob"`
	// Mode selects the sort algorithm by name: "unstable", "stable",
	// or "stable-full". Defaults to "stable".
	Mode string `json:"mode"`
	// MaxIterations bounds the stable sorter's fixed-point loop. Zero
	// means sorter.DefaultMaxIterations.
	MaxIterations int `json:"maxIterations"`
	// DisableNearBias turns off NearStart/NearEnd repositioning,
	// treating those rules as no-ops.
	DisableNearBias bool `json:"disableNearBias"`
}

// Default returns the zero-value-safe defaults used when a caller
// builds a config in Go rather than loading one from JSON.
func Default() IngestConfig {
	return IngestConfig{
		BaseGlob: "*_base.txt",
		UserGlob: "*_user.txt",
		Mode:     "stable",
	}
}

// DirOptions converts the config's glob fields into a parser.DirOptions
// for use with parser.ParseDir.
func (c IngestConfig) DirOptions() parser.DirOptions {
	return parser.DirOptions{BaseGlob: c.BaseGlob, UserGlob: c.UserGlob}
}

// SortOptions converts the config's sorter fields into a
// sorter.Options for use with sorter.Sort.
func (c IngestConfig) SortOptions() sorter.Options {
	return sorter.Options{MaxIterations: c.MaxIterations, DisableNearBias: c.DisableNearBias}
}

// SortMode resolves the configured Mode string to a sorter.Mode,
// defaulting to sorter.ModeStableOpt for an empty or unrecognized
// value (the schema already constrains Mode to the enum below, so an
// unrecognized value only reaches here for a hand-built literal
// config that skipped validation).
func (c IngestConfig) SortMode() sorter.Mode {
	switch c.Mode {
	case "unstable":
		return sorter.ModeUnstable
	case "stable-full":
		return sorter.ModeStableFull
	default:
		return sorter.ModeStableOpt
	}
}

// schemaDoc is the fixed JSON Schema for IngestConfig, written as a Go
// literal rather than loaded from a file: there is exactly one schema
// and it never varies at runtime.
var schemaDoc = map[string]any{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type":    "object",
	"properties": map[string]any{
		"baseGlob": map[string]any{"type": "string", "minLength": 1},
		"userGlob": map[string]any{"type": "string", "minLength": 1},
		"mode":     map[string]any{"type": "string", "enum": []any{"unstable", "stable", "stable-full"}},
		"maxIterations": map[string]any{
			"type":    "integer",
			"minimum": 0,
		},
		"disableNearBias": map[string]any{"type": "boolean"},
	},
	"additionalProperties": false,
}

func compileSchema() (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schemaDoc)
	if err != nil {
		return nil, fmt.Errorf("marshal ingest config schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	const url = "schema://ingest-config.json"
	if err := compiler.AddResource(url, bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("add ingest config schema resource: %w", err)
	}
	return compiler.Compile(url)
}

// LoadJSON validates raw against the fixed IngestConfig schema, then
// unmarshals it, filling any field absent from raw with the Default
// value. A hand-built Go literal IngestConfig never goes through this
// path and so never pays the schema-validation cost.
func LoadJSON(raw []byte) (IngestConfig, error) {
	schema, err := compileSchema()
	if err != nil {
		return IngestConfig{}, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return IngestConfig{}, fmt.Errorf("parse ingest config json: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return IngestConfig{}, fmt.Errorf("ingest config failed schema validation: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return IngestConfig{}, fmt.Errorf("decode ingest config: %w", err)
	}
	return cfg, nil
}

// Package config loads the optional column-pattern table from a TOML
// file. The pattern table is data, not code: adding a category to the
// form only requires a config edit.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"projreorg/pkg/reshape/models"
	"projreorg/pkg/reshape/pipeline"
)

// Patterns mirrors the TOML layout:
//
//	[[pattern]]
//	category = "name"
//	regex = '^Nome do Projeto(\d*)$'
type Patterns struct {
	Pattern []PatternEntry `toml:"pattern"`
}

// PatternEntry is one category/regex pair.
type PatternEntry struct {
	Category string `toml:"category"`
	Regex    string `toml:"regex"`
}

// LoadPatterns reads a pattern table from path. An empty path returns
// the built-in defaults. The file must define a non-empty "name"
// category or no group could ever be materialized.
func LoadPatterns(path string) ([]pipeline.CategoryPattern, error) {
	if path == "" {
		return pipeline.DefaultPatterns(), nil
	}

	var cfg Patterns
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot load pattern file %s: %w", path, err)
	}
	if len(cfg.Pattern) == 0 {
		return nil, fmt.Errorf("pattern file %s defines no patterns", path)
	}

	patterns := make([]pipeline.CategoryPattern, 0, len(cfg.Pattern))
	hasName := false
	for _, e := range cfg.Pattern {
		if e.Category == "" || e.Regex == "" {
			return nil, fmt.Errorf("pattern file %s: every entry needs category and regex", path)
		}
		cat := models.Category(e.Category)
		if cat == models.CategoryName {
			hasName = true
		}
		patterns = append(patterns, pipeline.CategoryPattern{Category: cat, Pattern: e.Regex})
	}
	if !hasName {
		return nil, fmt.Errorf("pattern file %s defines no %q category", path, models.CategoryName)
	}
	return patterns, nil
}

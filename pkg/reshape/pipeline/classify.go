// Package pipeline implements the three stages of the reshaper:
// column classification, row normalization, and summary aggregation.
package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"projreorg/pkg/reshape/models"
)

// CategoryPattern associates a column category with the anchored
// regular expression that recognizes its columns. The expression must
// capture the trailing numeric suffix (possibly empty) in group 1.
type CategoryPattern struct {
	Category models.Category
	Pattern  string
}

// DefaultPatterns returns the pattern table for the legacy project
// form export. The expressions are kept byte-for-byte identical to the
// ones the historical exports were matched with, including the
// unescaped dot in the status pattern.
func DefaultPatterns() []CategoryPattern {
	return []CategoryPattern{
		{models.CategoryName, `^Nome do Projeto(\d*)$`},
		{models.CategoryStatus, `^Status do Projeto.Meu projeto está:(\d*)$`},
		{models.CategoryVersion, `^Versão do Projeto(\d*)$`},
		{models.CategoryAuthor, `^Autor \(Responsável pelo Projeto\)(\d*)$`},
		{models.CategoryContinue, `^Deseja adicionar outro projeto \?(\d*)$`},
	}
}

// Classifier matches input column names against a compiled pattern
// table and assembles suffix-position column groups.
type Classifier struct {
	patterns []CategoryPattern
	compiled map[models.Category]*regexp.Regexp
}

// NewClassifier compiles the given pattern table. A malformed
// expression is reported with its category.
func NewClassifier(patterns []CategoryPattern) (*Classifier, error) {
	compiled := make(map[models.Category]*regexp.Regexp, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern for category %q: %w", p.Category, err)
		}
		compiled[p.Category] = re
	}
	return &Classifier{patterns: patterns, compiled: compiled}, nil
}

// Classify maps each category to its matching column names. Matches
// keep input order first, then each category is ordered by the parsed
// numeric suffix (empty suffix sorts as 0). Columns matching no
// pattern are ignored.
func (c *Classifier) Classify(headers []string) map[models.Category][]string {
	byCategory := make(map[models.Category][]string, len(c.patterns))
	for _, p := range c.patterns {
		re := c.compiled[p.Category]
		var cols []string
		for _, h := range headers {
			if re.MatchString(h) {
				cols = append(cols, h)
			}
		}
		sort.SliceStable(cols, func(i, j int) bool {
			return c.suffixOf(p.Category, cols[i]) < c.suffixOf(p.Category, cols[j])
		})
		byCategory[p.Category] = cols
	}
	return byCategory
}

// Groups assembles ordered column groups from a classification: the
// i-th matched column of every category forms group i. Groups without
// a project-name column are dropped.
func (c *Classifier) Groups(byCategory map[models.Category][]string) []models.ColumnGroup {
	positions := 0
	for _, cols := range byCategory {
		if len(cols) > positions {
			positions = len(cols)
		}
	}

	var groups []models.ColumnGroup
	for i := 0; i < positions; i++ {
		group := make(models.ColumnGroup)
		for _, p := range c.patterns {
			if cols := byCategory[p.Category]; i < len(cols) {
				group[p.Category] = cols[i]
			}
		}
		if _, ok := group[models.CategoryName]; !ok {
			continue
		}
		groups = append(groups, group)
	}
	return groups
}

// suffixOf parses the numeric suffix captured by the category pattern.
func (c *Classifier) suffixOf(cat models.Category, column string) int {
	m := c.compiled[cat].FindStringSubmatch(column)
	if len(m) < 2 || m[1] == "" {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

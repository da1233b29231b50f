package reshape

import (
	"log/slog"

	"projreorg/pkg/reshape/models"
	"projreorg/pkg/reshape/output"
	"projreorg/pkg/reshape/pipeline"
)

// Result summarizes a completed run.
type Result struct {
	// Records is the number of long records written.
	Records int
	// Groups is the number of column groups discovered.
	Groups int
	// OutputPath is the workbook that was written.
	OutputPath string
	// Styled reports whether presentation formatting was applied.
	// False means the workbook is complete but unstyled.
	Styled bool
}

// Run executes the full pipeline over one input file: read and decode
// the wide table, classify its columns into groups, normalize to long
// records, aggregate, and write the three-sheet workbook.
//
// Fatal errors abort before anything is written. A zero-match input is
// not fatal: it produces a workbook of empty tables with correct
// headers.
func Run(inputPath string, opts Options) (*Result, error) {
	wide, err := ReadTable(inputPath, opts.encoding())
	if err != nil {
		return nil, NewStageError("input", err)
	}

	classifier, err := pipeline.NewClassifier(opts.patterns())
	if err != nil {
		return nil, NewStageError("classify", err)
	}
	groups := classifier.Groups(classifier.Classify(wide.Headers))
	if len(groups) == 0 {
		slog.Warn("no project columns matched; writing empty tables",
			"input", inputPath)
	}

	// Inputs with no matching columns degrade to empty tables; the
	// respondent-column requirement only binds when there is
	// something to normalize.
	var records []models.LongRecord
	if len(groups) > 0 {
		records, err = pipeline.Normalize(wide, groups)
		if err != nil {
			return nil, NewStageError("normalize", err)
		}
	}

	crosstab := pipeline.CrossTabulate(records)
	totals := pipeline.CountByRespondent(records)

	outPath := opts.outputPath()
	styled, err := output.Write(outPath, records, crosstab, totals)
	if err != nil {
		return nil, NewStageError("export", err)
	}

	slog.Info("reshaping complete",
		"input", inputPath,
		"output", outPath,
		"groups", len(groups),
		"records", len(records),
		"styled", styled)

	return &Result{
		Records:    len(records),
		Groups:     len(groups),
		OutputPath: outPath,
		Styled:     styled,
	}, nil
}

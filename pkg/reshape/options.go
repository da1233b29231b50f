// Package reshape converts wide-format form exports into a normalized
// long table plus summary sheets in one styled XLSX workbook.
package reshape

import "projreorg/pkg/reshape/pipeline"

// DefaultOutputPath is the workbook written when no output path is
// given, relative to the working directory.
const DefaultOutputPath = "Projetos_Reorganizados.xlsx"

// DefaultEncoding matches the legacy regional exports this tool was
// built for.
const DefaultEncoding = "cp1252"

// Options configures one reshaping run.
type Options struct {
	// OutputPath is the XLSX file to write. Empty means
	// DefaultOutputPath.
	OutputPath string
	// Encoding is the input text encoding name (see SupportedEncodings).
	// Empty means DefaultEncoding.
	Encoding string
	// Patterns overrides the column pattern table. Nil means
	// pipeline.DefaultPatterns.
	Patterns []pipeline.CategoryPattern
}

// DefaultOptions returns options for a standard run.
func DefaultOptions() Options {
	return Options{
		OutputPath: DefaultOutputPath,
		Encoding:   DefaultEncoding,
	}
}

func (o Options) outputPath() string {
	if o.OutputPath == "" {
		return DefaultOutputPath
	}
	return o.OutputPath
}

func (o Options) encoding() string {
	if o.Encoding == "" {
		return DefaultEncoding
	}
	return o.Encoding
}

func (o Options) patterns() []pipeline.CategoryPattern {
	if o.Patterns == nil {
		return pipeline.DefaultPatterns()
	}
	return o.Patterns
}

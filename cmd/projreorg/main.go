// Package main provides the CLI entry point for projreorg.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"projreorg/pkg/reshape"
	"projreorg/pkg/reshape/config"
)

var (
	outputPath   string
	encodingName string
	patternsPath string
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "projreorg [input.csv]",
		Short: "Reshape a wide-format project form export into a styled XLSX workbook",
		Long: `projreorg reads a CSV form export with repeated project column groups
(one row per respondent), normalizes it into one row per project, and
writes the long table plus two summary sheets to a styled workbook.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", reshape.DefaultOutputPath, "Output XLSX file path")
	rootCmd.Flags().StringVarP(&encodingName, "encoding", "e", reshape.DefaultEncoding, "Input file encoding")
	rootCmd.Flags().StringVar(&patternsPath, "patterns", "", "TOML file overriding the column pattern table")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	inputPath := args[0]
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	patterns, err := config.LoadPatterns(patternsPath)
	if err != nil {
		return err
	}

	result, err := reshape.Run(inputPath, reshape.Options{
		OutputPath: outputPath,
		Encoding:   encodingName,
		Patterns:   patterns,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Found %d project(s) across %d column group(s)\n", result.Records, result.Groups)
	if !result.Styled {
		fmt.Println("Warning: workbook written without styling")
	}
	fmt.Printf("Workbook written to: %s\n", result.OutputPath)
	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/project-scout/internal/config"
	"github.com/jonathan/project-scout/internal/extraction"
	"github.com/jonathan/project-scout/internal/observability"
	"github.com/jonathan/project-scout/internal/types"
	"github.com/jonathan/project-scout/internal/validation"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Extract structured entities from decoded resume text",
	Long:  "Extract skills, experience, education, and research interests from a plain-text resume into a ResumeData JSON document. Document decoding (PDF/DOCX to text) happens upstream; this command consumes the decoded text.",
	RunE:  runParseResume,
}

var (
	parseInputFile  string
	parseOutputFile string
	parseFileName   string
	parseMaxSizeMB  int
	parseVerbose    bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to decoded resume text file (required)")
	parseResumeCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseResumeCmd.Flags().StringVar(&parseFileName, "file-name", "", "Original document name recorded in the output (default: input file name)")
	parseResumeCmd.Flags().IntVar(&parseMaxSizeMB, "max-size-mb", config.DefaultMaxFileSizeMB, "Maximum input size in megabytes")
	parseResumeCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print an extraction summary")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	info, err := os.Stat(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	if !validation.ValidFileSize(info.Size(), parseMaxSizeMB) {
		return fmt.Errorf("input file exceeds the %dMB limit", parseMaxSizeMB)
	}

	raw, err := os.ReadFile(parseInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text := validation.Sanitize(string(raw))
	entities := extraction.Extract(text)

	fileName := parseFileName
	if fileName == "" {
		fileName = filepath.Base(parseInputFile)
	}

	resume := types.ResumeData{
		ID:                uuid.NewString(),
		FileName:          fileName,
		ExtractedText:     text,
		Skills:            entities.Skills,
		Experience:        entities.Experience,
		Education:         entities.Education,
		ResearchInterests: entities.ResearchInterests,
	}

	if parseVerbose {
		observability.NewPrinter(os.Stderr).PrintResumeData(&resume)
	}

	return writeJSON(parseOutputFile, resume)
}

// writeJSON marshals v with indentation to the given path, or stdout when
// the path is empty.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

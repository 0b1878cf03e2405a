package linkcheck

import (
	"encoding/json"
	"fmt"
	"io"
)

// Formatter renders a validation Result for output.
type Formatter interface {
	Format(w io.Writer, result *Result) error
}

// NewFormatter returns the formatter for the given format ("text" or "json").
// Unknown formats fall back to text.
func NewFormatter(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return &TextFormatter{}
}

// TextFormatter renders the report as human-readable text.
type TextFormatter struct{}

// Format writes the success line, or the missing-link list in
// discovery/extraction order.
func (f *TextFormatter) Format(w io.Writer, result *Result) error {
	if result.OK() {
		_, err := fmt.Fprintln(w, "All local markdown links resolve.")
		return err
	}

	if _, err := fmt.Fprintln(w, "Missing links:"); err != nil {
		return err
	}
	for _, m := range result.Missing {
		if _, err := fmt.Fprintf(w, "- %s: %s\n", m.File, m.Target); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormatter renders the report as a single JSON object.
type JSONFormatter struct{}

type jsonMissing struct {
	File   string `json:"file"`
	Target string `json:"target"`
}

type jsonReport struct {
	FilesScanned int           `json:"files_scanned"`
	Missing      []jsonMissing `json:"missing"`
	OK           bool          `json:"ok"`
}

// Format writes the result as indented JSON.
func (f *JSONFormatter) Format(w io.Writer, result *Result) error {
	report := jsonReport{
		FilesScanned: result.FilesScanned,
		Missing:      make([]jsonMissing, 0, len(result.Missing)),
		OK:           result.OK(),
	}
	for _, m := range result.Missing {
		report.Missing = append(report.Missing, jsonMissing{File: m.File, Target: m.Target})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

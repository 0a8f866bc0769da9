// Package storage keeps a local append-only log of submitted entries so
// past exports can be inspected with the history command. The log is
// never consulted for deduplication; re-running an export over an
// overlapping range submits duplicates by design.
package storage

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application name used for config directory
	AppName = "toggl-export"
	// LogFile is the name of the JSON Lines submission log
	LogFile = "submissions.jsonl"
)

// Submission records one successfully submitted aggregated entry.
type Submission struct {
	SubmittedAt   time.Time `json:"submitted_at"`
	Repository    string    `json:"repository"`
	IssueNumber   string    `json:"issue_number"`
	Comment       string    `json:"comment"`
	Day           time.Time `json:"day"`
	DurationMs    int64     `json:"duration_ms"`
	DurationLabel string    `json:"duration_label"`
}

// ParseWarning represents a warning about a corrupted or malformed line
type ParseWarning struct {
	LineNumber int    // Line number in the file (1-indexed)
	Content    string // Raw content of the corrupted line
	Error      string // Description of the parsing error
}

// ReadResult contains the results of reading the submission log,
// including both successfully parsed submissions and any warnings about
// corrupted or malformed lines.
type ReadResult struct {
	Submissions []Submission
	Warnings    []ParseWarning
}

// GetLogPath returns the path to the submission log file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetLogPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, LogFile), nil
}

// AppendSubmissions appends submissions to the JSON Lines log file.
// Creates the file if it doesn't exist.
// Uses O_APPEND for atomic append operations.
func AppendSubmissions(path string, submissions []Submission) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	for _, s := range submissions {
		line, err := json.Marshal(s)
		if err != nil {
			return err
		}
		if _, err := file.WriteString(string(line) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// ReadSubmissionsWithWarnings reads all submissions from the JSON Lines
// log file and returns both successfully parsed submissions and warnings
// about any corrupted lines. Returns an empty ReadResult if the file
// doesn't exist (graceful handling).
func ReadSubmissionsWithWarnings(path string) (ReadResult, error) {
	result := ReadResult{
		Submissions: []Submission{},
		Warnings:    []ParseWarning{},
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return result, err
	}
	defer func() { _ = file.Close() }()

	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		lineContent := scanner.Text()

		var s Submission
		if err := json.Unmarshal([]byte(lineContent), &s); err != nil {
			result.Warnings = append(result.Warnings, ParseWarning{
				LineNumber: lineNumber,
				Content:    lineContent,
				Error:      err.Error(),
			})
			continue
		}
		result.Submissions = append(result.Submissions, s)
	}

	if err := scanner.Err(); err != nil {
		return result, err
	}

	return result, nil
}

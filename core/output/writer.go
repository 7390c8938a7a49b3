// Package output handles file naming and writing for boardtext exports.
// Export filenames are derived from the board source: the file stem for
// local boards, a sanitized host_path name for remote ones.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Writer writes rendered exports to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// WriteExport writes rendered data next to a name derived from the board
// source. Example: boards/retro.json + ".txt" → <dir>/retro.txt
func (w *Writer) WriteExport(source string, data []byte, ext string) (string, error) {
	path := filepath.Join(w.OutputDir, NameFromSource(source)+ext)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}

// NameFromSource converts a board path or URL into a flat filename stem.
// Example: https://example.com/boards/retro.json → example_com_boards_retro
func NameFromSource(source string) string {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		parsed, err := url.Parse(source)
		if err != nil {
			return sanitize(source)
		}
		parts := []string{sanitize(parsed.Host)}
		path := strings.Trim(strings.TrimSuffix(parsed.Path, filepath.Ext(parsed.Path)), "/")
		for _, seg := range strings.Split(path, "/") {
			if seg != "" {
				parts = append(parts, sanitize(seg))
			}
		}
		return strings.Join(parts, "_")
	}

	base := filepath.Base(source)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." {
		return "board"
	}
	return sanitize(stem)
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// Package cmd — export command.
// Orchestrates the export pipeline: load board → build the textual
// representation → render → write.
//
// It handles flag validation, renderer selection, and local vs remote
// board sources.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avery-linden/boardtext/core"
	"github.com/avery-linden/boardtext/core/board"
	"github.com/avery-linden/boardtext/core/fetch"
	"github.com/avery-linden/boardtext/core/output"
	"github.com/avery-linden/boardtext/core/render"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagText      bool
	flagMarkdown  bool
	flagJSON      bool
	flagPDF       bool
	flagOutputDir string
)

var exportCmd = &cobra.Command{
	Use:   "export <board.json|url>",
	Short: "Export a board's text in the specified output format",
	Long: `Export loads an idea board content file (from disk or an authoring
server URL), flattens its text cards into the plain-text representation,
and renders it in the specified output format (text, Markdown, JSON, or PDF).

Examples:
  boardtext export retro.json --text
  boardtext export retro.json --markdown --output_dir ./out
  boardtext export https://studio.example.com/boards/retro.json --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	// Output format flags (mutually exclusive).
	exportCmd.Flags().BoolVar(&flagText, "text", false, "Output plain text")
	exportCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	exportCmd.Flags().BoolVar(&flagJSON, "json", false, "Output structured JSON")
	exportCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")

	// Output directory.
	exportCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runExport(cmd *cobra.Command, args []string) error {
	source := args[0]

	renderer, err := selectRenderer()
	if err != nil {
		return err
	}

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	b, err := loadBoard(cmd.Context(), source)
	if err != nil {
		return err
	}

	text := board.Textual(b)

	data, err := renderer.Render(text, b)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	path, err := writer.WriteExport(source, data, renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	return nil
}

// loadBoard reads a board from a local path or an authoring-server URL.
func loadBoard(ctx context.Context, source string) (*core.Board, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if ctx == nil {
			ctx = context.Background()
		}
		b, err := fetch.New().Fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		return b, nil
	}
	b, err := board.Load(source)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return b, nil
}

// selectRenderer checks that exactly one output format is chosen and
// creates the appropriate Renderer.
func selectRenderer() (core.Renderer, error) {
	formatCount := 0
	for _, set := range []bool{flagText, flagMarkdown, flagJSON, flagPDF} {
		if set {
			formatCount++
		}
	}

	if formatCount == 0 {
		return nil, fmt.Errorf("exactly one output format is required: --text, --markdown, --json, or --pdf")
	}
	if formatCount > 1 {
		return nil, fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch {
	case flagText:
		return render.NewTextRenderer(), nil
	case flagMarkdown:
		return render.NewMarkdownRenderer(), nil
	case flagJSON:
		return render.NewJSONRenderer(), nil
	default:
		return render.NewPDFRenderer(), nil
	}
}

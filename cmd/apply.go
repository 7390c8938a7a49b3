// Package cmd — apply command.
// Reads an edited plain-text representation and rebuilds the board's text
// cards from it, preserving non-text cards and board settings.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/avery-linden/boardtext/core/board"
	"github.com/spf13/cobra"
)

var flagOutput string

var applyCmd = &cobra.Command{
	Use:   "apply <board.json> [textfile]",
	Short: "Rebuild a board's text cards from edited plain text",
	Long: `Apply reads an edited plain-text representation (from a file, or stdin
when no file is given) and replaces the board's text cards with one card
per paragraph. Image cards, the background, and the title are preserved.

Examples:
  boardtext apply retro.json edited.txt
  cat edited.txt | boardtext apply retro.json
  boardtext apply retro.json edited.txt --output retro-v2.json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)

	applyCmd.Flags().StringVar(&flagOutput, "output", "", "Write the updated board here instead of overwriting the input")
}

func runApply(cmd *cobra.Command, args []string) error {
	boardPath := args[0]

	text, err := readText(args)
	if err != nil {
		return err
	}

	b, err := board.Load(boardPath)
	if err != nil {
		return fmt.Errorf("load: %w", err)
	}

	board.ApplyText(b, text)

	target := boardPath
	if flagOutput != "" {
		target = flagOutput
	}
	if err := board.Save(target, b); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	textCards := 0
	for _, c := range b.Cards {
		if c.IsText() {
			textCards++
		}
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s (%d text cards)\n", target, textCards)
	return nil
}

// readText returns the edited text from the optional file argument, or
// from stdin when none is given.
func readText(args []string) (string, error) {
	if len(args) == 2 {
		data, err := os.ReadFile(args[1])
		if err != nil {
			return "", fmt.Errorf("reading text file %s: %w", args[1], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

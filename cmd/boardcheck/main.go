// Command boardcheck validates a 15x15 board snapshot and prints its phase.
//
// The board is a JSON array of 15 strings of 15 symbols ('-', 'X', 'O'), read
// from the file named by the first argument or from stdin.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:          "boardcheck [file]",
		Short:        "Validate a five-in-a-row board and classify its phase",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := readRows(cmd, args)
			if err != nil {
				return err
			}

			board, err := gomoku.ParseBoard(rows)
			if err != nil {
				return err
			}

			countA, countB := board.Count()
			phase := gomoku.ClassifyCount(&board, countA+countB)

			out := cmd.OutOrStdout()
			if quiet {
				_, err = fmt.Fprintln(out, phase)
				return err
			}

			_, err = fmt.Fprintf(out, "valid: %d %c, %d %c\nphase: %s\n\n%s",
				countA, gomoku.MarkA, countB, gomoku.MarkB, phase, board.String())
			return err
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the phase")

	return cmd
}

func readRows(cmd *cobra.Command, args []string) ([]string, error) {
	var src io.Reader = cmd.InOrStdin()

	if len(args) == 1 && args[0] != "-" {
		file, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("could not open board file: %w", err)
		}
		defer file.Close()
		src = file
	}

	var rows []string
	if err := json.NewDecoder(src).Decode(&rows); err != nil {
		return nil, fmt.Errorf("could not decode board: %w", err)
	}

	return rows, nil
}

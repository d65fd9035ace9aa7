package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku-backend/internal/gomoku"
)

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func boardJSON(t *testing.T, rows []string) string {
	t.Helper()

	data, err := json.Marshal(rows)
	require.NoError(t, err)

	return string(data)
}

func TestBoardcheck(t *testing.T) {
	t.Run("Prints the phase of a board read from stdin", func(t *testing.T) {
		// Given: an empty board on stdin
		board := gomoku.EmptyBoard()
		input := boardJSON(t, board.Rows())

		// When: running in quiet mode
		out, err := runCmd(t, input, "-q")

		// Then: only the phase is printed
		require.NoError(t, err)
		assert.Equal(t, "opening\n", out)
	})

	t.Run("Prints counts, phase and board for a file", func(t *testing.T) {
		// Given: a file with an open five for X
		board := gomoku.EmptyBoard()
		rows := board.Rows()
		rows[7] = "XXXXX----------"
		rows[14] = "O-O-O-O--------"
		path := filepath.Join(t.TempDir(), "board.json")
		require.NoError(t, os.WriteFile(path, []byte(boardJSON(t, rows)), 0o600))

		// When: running against the file
		out, err := runCmd(t, "", path)

		// Then: the summary and rendering are printed
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "valid: 5 X, 4 O\nphase: endgame\n\n"))
		assert.Contains(t, out, "X X X X X - - - - - - - - - -\n")
	})

	t.Run("Fails on an invalid board", func(t *testing.T) {
		// Given: a board with too few rows
		input := boardJSON(t, []string{"---"})

		// When: running the command
		_, err := runCmd(t, input)

		// Then: the validation error is returned
		require.ErrorIs(t, err, gomoku.ErrBadBoardSize)
	})

	t.Run("Fails on malformed JSON", func(t *testing.T) {
		_, err := runCmd(t, "not json")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not decode board")
	})
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/search"
	"github.com/mcoot/fairychess/internal/session"
	"github.com/mcoot/fairychess/internal/testutil"
)

func newTestSession(mode rules.Mode, ai bool) *session.Session {
	return session.New(session.Config{Mode: mode, AI: ai, Depth: 1}, nil, testutil.NopLogger())
}

func TestRunPlayTwoHumans(t *testing.T) {
	sess := newTestSession(rules.ModeChess, false)
	var out bytes.Buffer

	err := runPlay(strings.NewReader("4 6\n4 4\nquit\n"), &out, sess)

	require.NoError(t, err)
	assert.Equal(t, 1, sess.Plies())
	assert.Equal(t, rules.Black, sess.Board().Turn())
	assert.Contains(t, out.String(), " 4 | .   .   .   .   WP  .   .   .   |")
	assert.Contains(t, out.String(), "black to move")
	assert.NotContains(t, out.String(), "Computer played")
}

func TestRunPlayComputerAnswers(t *testing.T) {
	sess := newTestSession(rules.ModeFantasySmall, true)
	var out bytes.Buffer

	err := runPlay(strings.NewReader("3 6\n3 5\n"), &out, sess)

	require.NoError(t, err)
	assert.Equal(t, 2, sess.Plies())
	assert.Equal(t, rules.White, sess.Board().Turn())
	assert.Contains(t, out.String(), "Computer played")
}

func TestRunPlayCommands(t *testing.T) {
	sess := newTestSession(rules.ModeChess, true)
	var out bytes.Buffer

	input := strings.Join([]string{
		"moves",
		"ai off",
		"mode checkers",
		"mode shogi",
		"e4",
		"restart",
		"q",
	}, "\n")
	err := runPlay(strings.NewReader(input), &out, sess)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "(4,6)->(4,4)\n")
	assert.Equal(t, 1, strings.Count(out.String(), "(4,6)->(4,5)\n"), "duplicate moves are listed once")
	assert.Contains(t, out.String(), `unknown mode "shogi"`)
	assert.Contains(t, out.String(), "expected <x> <y>, try help")
	assert.Equal(t, rules.ModeCheckers, sess.Mode())
	assert.False(t, sess.AI())
}

func TestRunBench(t *testing.T) {
	result := runBench(rules.ModeChess, 1, 2)

	require.Len(t, result.Plies, 2)
	assert.Equal(t, "white", result.Plies[0].Side)
	assert.Equal(t, "black", result.Plies[1].Side)
	assert.Equal(t, len(search.LegalMoves(rules.NewGame(rules.ModeChess, false), rules.White)), result.Plies[0].Legal)
	assert.Equal(t, "none", result.State)
}

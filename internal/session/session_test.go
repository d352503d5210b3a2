package session_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/fairychess/internal/dependencies/mocks"
	"github.com/mcoot/fairychess/internal/geom"
	"github.com/mcoot/fairychess/internal/rules"
	"github.com/mcoot/fairychess/internal/search"
	"github.com/mcoot/fairychess/internal/session"
	"github.com/mcoot/fairychess/internal/testutil"
)

// passStrategy never finds a move
type passStrategy struct {
	calls int
}

func (p *passStrategy) ChooseMove(*rules.Board, rules.Side) (rules.PlayerMove, bool) {
	p.calls++
	return rules.PlayerMove{}, false
}

type SessionSuite struct {
	suite.Suite
	session *session.Session
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionSuite))
}

func (s *SessionSuite) SetupTest() {
	s.session = session.New(session.DefaultConfig(), nil, testutil.NopLogger())
}

func (s *SessionSuite) TestDefaultConfig() {
	cfg := session.DefaultConfig()

	s.Equal(rules.ModeFantasySmall, cfg.Mode)
	s.True(cfg.AI)
	s.Equal(2, cfg.Depth)

	s.Equal(rules.ModeFantasySmall, s.session.Mode())
	s.True(s.session.AI())
	s.Equal(rules.White, s.session.Board().Turn())
}

func (s *SessionSuite) TestStartNewGame_SameSettingsKeepsTheBoard() {
	board := s.session.Board()
	s.session.Touch(3, 6)
	s.session.Touch(3, 5)

	got := s.session.StartNewGame(rules.ModeFantasySmall, true)

	s.Same(board, got)
	s.Equal(1, s.session.Plies())
}

func (s *SessionSuite) TestStartNewGame_ChangesMode() {
	old := s.session.Board()

	got := s.session.StartNewGame(rules.ModeFantasyLarge, false)

	s.NotSame(old, got)
	s.Equal(10, got.Size())
	s.False(s.session.AI())
	s.Equal(rules.ModeFantasyLarge, s.session.Mode())
}

func (s *SessionSuite) TestRestart() {
	s.session.Touch(3, 6)
	s.session.Touch(3, 5)

	board := s.session.Restart()

	s.Equal(0, s.session.Plies())
	s.Equal(rules.White, board.Turn())
	s.NotNil(board.At(geom.Pt(3, 6)))
}

func (s *SessionSuite) TestTouch_SelectThenMove() {
	s.False(s.session.Touch(3, 6))
	snap := s.session.Snapshot()
	s.Require().NotNil(snap.Selected)
	s.Equal(geom.Pt(3, 6), snap.Selected.Square)
	s.NotEmpty(snap.Highlights)

	s.True(s.session.Touch(3, 5))

	s.Equal(rules.Black, s.session.Board().Turn())
	s.Equal(1, s.session.Plies())
	s.Empty(s.session.Snapshot().Highlights)
}

func (s *SessionSuite) TestTouch_IgnoredWhileComputerToMove() {
	s.session.Touch(3, 6)
	s.session.Touch(3, 5)
	s.Require().True(s.session.AwaitingAI())

	s.False(s.session.Touch(3, 1))

	s.Nil(s.session.Snapshot().Selected)
}

func (s *SessionSuite) TestReady_ComputerPlaysBlack() {
	s.session.Touch(3, 6)
	s.session.Touch(3, 5)

	m, ok := s.session.Ready()

	s.Require().True(ok)
	s.Equal(rules.Black, s.session.Board().At(m.Final()).Side())
	s.Equal(rules.White, s.session.Board().Turn())
	s.Equal(2, s.session.Plies())
	s.False(s.session.AwaitingAI())
}

func (s *SessionSuite) TestReady_NotComputersTurn() {
	_, ok := s.session.Ready()

	s.False(ok)
	s.Equal(rules.White, s.session.Board().Turn())
	s.Equal(0, s.session.Plies())
}

func (s *SessionSuite) TestReady_AIDisabled() {
	s.session.StartNewGame(rules.ModeChess, false)
	s.session.Touch(4, 6)
	s.session.Touch(4, 4)

	_, ok := s.session.Ready()

	s.False(ok)
	s.Equal(rules.Black, s.session.Board().Turn())
}

func (s *SessionSuite) TestReady_NoMoveLeavesTheTurn() {
	strategy := &passStrategy{}
	sess := session.New(session.Config{Mode: rules.ModeChess, AI: true}, strategy, testutil.NopLogger())
	sess.Touch(4, 6)
	sess.Touch(4, 4)
	before := sess.Board().String()

	_, ok := sess.Ready()

	s.False(ok)
	s.Equal(1, strategy.calls)
	s.Equal(rules.Black, sess.Board().Turn())
	s.Equal(before, sess.Board().String())
	s.Equal(1, sess.Plies())
}

func (s *SessionSuite) TestReady_RandomStrategy() {
	rnd := mocks.NewMockRandom()
	sess := session.New(session.Config{Mode: rules.ModeChess, AI: true}, search.NewRandomStrategy(rnd), testutil.NopLogger())
	sess.Touch(4, 6)
	sess.Touch(4, 4)

	m, ok := sess.Ready()

	s.Require().True(ok)
	s.Equal([]int{28}, rnd.Bounds)
	s.Equal(rules.White, sess.Board().Turn())
	s.Equal(rules.Black, sess.Board().At(m.Final()).Side())
}

package nim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"games/game"
)

func TestNew(t *testing.T) {
	_, err := New(0, []int{1})
	require.Error(t, err)

	_, err = New(2, nil)
	require.Error(t, err)

	_, err = New(2, []int{3, 0})
	require.ErrorContains(t, err, "pile 2 must be positive")

	piles := []int{1, 2}
	s, err := New(3, piles)
	require.NoError(t, err)
	piles[0] = 9
	require.Equal(t, []int{1, 2}, s.Piles(), "state should not alias the setup slice")
	require.Equal(t, 3, s.NumPlayers())
	require.Equal(t, game.ToMove(game.MustFromIndex(0, 3)), s.Status())
}

func TestMoves(t *testing.T) {
	s, err := New(2, []int{3, 4})
	require.NoError(t, err)

	t.Run("parse errors", func(t *testing.T) {
		_, err := s.ParseMove("one two")
		require.ErrorIs(t, err, game.ErrUnparsable)
		_, err = s.ParseMove("1 2 3")
		require.ErrorIs(t, err, game.ErrUnparsable)
	})

	t.Run("legality errors", func(t *testing.T) {
		for raw, msg := range map[string]string{
			"0 1": "pile should be between 1 and 2",
			"3 1": "pile should be between 1 and 2",
			"1 0": "at least one stick",
			"1 4": "not enough sticks",
		} {
			mv, err := s.ParseMove(raw)
			require.NoError(t, err)
			err = s.CheckMove(mv)
			require.ErrorIs(t, err, game.ErrIllegalMove, raw)
			require.ErrorContains(t, err, msg, raw)
		}
	})

	mv, err := s.ParseMove("2 4")
	require.NoError(t, err)
	s.MakeMove(mv)
	require.Equal(t, []int{3, 0}, s.Piles())
	require.Equal(t, "Piles: [3 0]\n", s.VisibleState(game.MustFromIndex(0, 2)))
	require.Equal(t, game.ToMove(game.MustFromIndex(1, 2)), s.Status())

	require.Panics(t, func() { s.MakeMove(Move{Pile: 2, Take: 1}) })
}

func TestLastStickWins(t *testing.T) {
	s, err := New(3, []int{2})
	require.NoError(t, err)
	s.MakeMove(Move{Pile: 1, Take: 1}) // player 1
	s.MakeMove(Move{Pile: 1, Take: 1}) // player 2 takes the last stick

	want := game.Won(game.MustFromIndex(1, 3))
	require.Equal(t, want, s.Status())
	require.Equal(t, want, s.Status())
	require.ErrorContains(t, s.CheckMove(Move{Pile: 1, Take: 1}), "game is over")
}

func TestRandomAgent(t *testing.T) {
	s, err := New(2, []int{3, 4, 5})
	require.NoError(t, err)
	a := NewRandomAgent(3)
	for !game.IsEnded[Move](s) {
		p, _ := game.CurrentPlayer[Move](s)
		mv := a.FindMove(s, p)
		require.NoError(t, s.CheckMove(mv))
		s.MakeMove(mv)
	}
	require.Equal(t, []int{0, 0, 0}, s.Piles())
}

package nim

import (
	"fmt"

	"games/game"
	"games/utils"
)

// Move takes sticks from one pile. Piles are numbered from 1.
type Move struct {
	Pile int
	Take int
}

func (m Move) String() string {
	return fmt.Sprintf("Take %d from pile %d", m.Take, m.Pile)
}

// State is a game of nim for any number of players. Whoever takes the last
// stick wins. All information is public.
type State struct {
	piles       []int
	totalSticks int
	toMove      game.Player
}

// New sets up a game with the given pile sizes.
func New(numPlayers int, piles []int) (*State, error) {
	first, ok := game.FromIndex(0, numPlayers)
	if !ok {
		return nil, fmt.Errorf("nim needs at least one player, got %d", numPlayers)
	}
	if len(piles) == 0 {
		return nil, fmt.Errorf("nim needs at least one pile")
	}
	total := 0
	for i, size := range piles {
		if size <= 0 {
			return nil, fmt.Errorf("pile %d must be positive, got %d", i+1, size)
		}
		total += size
	}
	return &State{
		piles:       append([]int(nil), piles...),
		totalSticks: total,
		toMove:      first,
	}, nil
}

// Piles returns a copy of the current pile sizes.
func (s *State) Piles() []int {
	return append([]int(nil), s.piles...)
}

func (s *State) NumPlayers() int {
	return s.toMove.NumPlayers()
}

func (s *State) Status() game.Status {
	if s.totalSticks == 0 {
		return game.Won(s.toMove.Prev())
	}
	return game.ToMove(s.toMove)
}

func (s *State) Query() string {
	return "Choose a pile and number of sticks: "
}

func (s *State) ParseMove(raw string) (Move, error) {
	ints, err := utils.ParseInts(raw)
	if err != nil {
		return Move{}, fmt.Errorf("%w: move should be two integers separated by a space", game.ErrUnparsable)
	}
	if len(ints) != 2 {
		return Move{}, fmt.Errorf("%w: move should be exactly two integers", game.ErrUnparsable)
	}
	return Move{Pile: ints[0], Take: ints[1]}, nil
}

func (s *State) CheckMove(mv Move) error {
	switch {
	case s.totalSticks == 0:
		return fmt.Errorf("%w: the game is over", game.ErrIllegalMove)
	case mv.Pile < 1 || mv.Pile > len(s.piles):
		return fmt.Errorf("%w: pile should be between 1 and %d", game.ErrIllegalMove, len(s.piles))
	case mv.Take < 1:
		return fmt.Errorf("%w: must take at least one stick", game.ErrIllegalMove)
	case mv.Take > s.piles[mv.Pile-1]:
		return fmt.Errorf("%w: not enough sticks in that pile", game.ErrIllegalMove)
	}
	return nil
}

func (s *State) MakeMove(mv Move) {
	if err := s.CheckMove(mv); err != nil {
		panic(fmt.Sprintf("making unchecked move %v: %v", mv, err))
	}
	s.piles[mv.Pile-1] -= mv.Take
	s.totalSticks -= mv.Take
	s.toMove = s.toMove.Next()
}

func (s *State) VisibleState(_ game.Player) string {
	return fmt.Sprintf("Piles: %v\n", s.piles)
}

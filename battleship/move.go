package battleship

import (
	"fmt"

	"games/game"
	"games/utils"
)

// Move is either a PlaceShip or a Shoot.
type Move interface {
	isMove()
	fmt.Stringer
}

// PlaceShip puts a ship of the given length on the mover's own board,
// starting at At and extending in direction Dir.
type PlaceShip struct {
	Length int
	At     Coord
	Dir    Dir
}

// Shoot fires at a square of the opponent's board.
type Shoot struct {
	At Coord
}

func (PlaceShip) isMove() {}
func (Shoot) isMove()     {}

func (m PlaceShip) String() string {
	return fmt.Sprintf("Place(%d, %s, %s)", m.Length, m.At, m.Dir)
}

func (m Shoot) String() string {
	return fmt.Sprintf("Shoot(%s)", m.At)
}

// ParseMove reads "length row col drow dcol" or "row col". Only the shape of
// the input is checked here; CheckMove decides whether the move is legal.
func ParseMove(raw string) (Move, error) {
	ints, err := utils.ParseInts(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", game.ErrUnparsable, err)
	}
	switch len(ints) {
	case 5:
		return PlaceShip{
			Length: ints[0],
			At:     Coord{Row: ints[1], Col: ints[2]},
			Dir:    Dir{DRow: ints[3], DCol: ints[4]},
		}, nil
	case 2:
		return Shoot{At: Coord{Row: ints[0], Col: ints[1]}}, nil
	default:
		return nil, fmt.Errorf("%w: expected 5 integers to place a ship or 2 to shoot, got %d", game.ErrUnparsable, len(ints))
	}
}

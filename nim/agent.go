package nim

import (
	"fmt"

	"golang.org/x/exp/rand"

	"games/game"
)

// RandomAgent takes a random number of sticks from a random non-empty pile.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(g game.Game[Move], _ game.Player) Move {
	s, ok := g.(*State)
	if !ok {
		panic(fmt.Sprintf("random nim agent cannot play %T", g))
	}
	var nonEmpty []int
	for i, size := range s.piles {
		if size > 0 {
			nonEmpty = append(nonEmpty, i)
		}
	}
	if len(nonEmpty) == 0 {
		panic("no sticks left")
	}
	pile := nonEmpty[a.rng.Intn(len(nonEmpty))]
	return Move{Pile: pile + 1, Take: 1 + a.rng.Intn(s.piles[pile])}
}

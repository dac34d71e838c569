package battleship

import (
	"fmt"

	"golang.org/x/exp/rand"

	"games/game"
)

// RandomAgent places ships at random valid spots and shoots at random
// squares it has not shot yet. It only looks at the player's Observation.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(g game.Game[Move], p game.Player) Move {
	gs, ok := g.(*GameState)
	if !ok {
		panic(fmt.Sprintf("random battleship agent cannot play %T", g))
	}
	return a.choose(gs.Observe(p))
}

func (a *RandomAgent) choose(obs Observation) Move {
	if len(obs.Pending) > 0 {
		return a.placement(obs)
	}
	return a.shot(obs)
}

var allDirs = []Dir{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

func (a *RandomAgent) placement(obs Observation) Move {
	// Longest ships first, they are the hardest to fit. Only spots that keep
	// the rest of the fleet placeable are considered.
	length := obs.Pending[len(obs.Pending)-1]
	var options []PlaceShip
	for r := 0; r < obs.Own.Rows(); r++ {
		for c := 0; c < obs.Own.Cols(); c++ {
			at := Coord{Row: r, Col: c}
			for _, dir := range allDirs {
				mv := PlaceShip{Length: length, At: at, Dir: dir}
				if obs.Own.ValidShipLine(at, dir, length) && leavesRoom(obs.Own, mv, obs.Pending) {
					options = append(options, mv)
				}
			}
		}
	}
	if len(options) == 0 {
		panic(fmt.Sprintf("no room left for a ship of length %d", length))
	}
	return options[a.rng.Intn(len(options))]
}

func (a *RandomAgent) shot(obs Observation) Move {
	var targets []Coord
	for r := 0; r < obs.Opponent.Rows(); r++ {
		for c := 0; c < obs.Opponent.Cols(); c++ {
			at := Coord{Row: r, Col: c}
			if obs.Opponent.Private(at) == Sea {
				targets = append(targets, at)
			}
		}
	}
	if len(targets) == 0 {
		panic("no unshot squares left")
	}
	return Shoot{At: targets[a.rng.Intn(len(targets))]}
}

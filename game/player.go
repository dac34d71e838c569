package game

import (
	"fmt"
	"strconv"
)

// Player identifies one of exactly n players in a game instance.
// A Player should only be created through FromIndex, MustFromIndex or ParsePlayer.
type Player struct {
	index int
	n     int
}

func (p Player) isValid() bool {
	return p.n > 0 && p.index >= 0 && p.index < p.n
}

func (p Player) mustBeValid() {
	if !p.isValid() {
		panic(fmt.Sprintf("invalid player index %d for %d players", p.index, p.n))
	}
}

// FromIndex returns the player with 0-based index idx in an n-player game.
func FromIndex(idx, n int) (Player, bool) {
	p := Player{index: idx, n: n}
	if !p.isValid() {
		return Player{}, false
	}
	return p, true
}

// MustFromIndex is FromIndex for indices known to be in range.
func MustFromIndex(idx, n int) Player {
	p, ok := FromIndex(idx, n)
	if !ok {
		panic(fmt.Sprintf("player index %d out of range for %d players", idx, n))
	}
	return p
}

// ParsePlayer reads a 1-based player number, as typed by a human.
func ParsePlayer(raw string, n int) (Player, error) {
	num, err := strconv.Atoi(raw)
	if err != nil {
		return Player{}, fmt.Errorf("not an integer: %q", raw)
	}
	if num <= 0 {
		return Player{}, fmt.Errorf("player number must be > 0")
	}
	if num > n {
		return Player{}, fmt.Errorf("player number too large: %d", num)
	}
	return MustFromIndex(num-1, n), nil
}

// Index returns the 0-based index.
func (p Player) Index() int {
	p.mustBeValid()
	return p.index
}

func (p Player) NumPlayers() int {
	return p.n
}

// Next cycles to the following player.
func (p Player) Next() Player {
	p.mustBeValid()
	return Player{index: (p.index + 1) % p.n, n: p.n}
}

// Prev cycles to the preceding player.
func (p Player) Prev() Player {
	p.mustBeValid()
	return Player{index: (p.index + p.n - 1) % p.n, n: p.n}
}

// Opponent is only defined for two-player games.
func (p Player) Opponent() Player {
	if p.n != 2 {
		panic(fmt.Sprintf("opponent is undefined with %d players", p.n))
	}
	return p.Next()
}

// Name is the human-readable name; numbering starts from 1.
func (p Player) Name() string {
	p.mustBeValid()
	return fmt.Sprintf("Player %d", p.index+1)
}

func (p Player) LowerName() string {
	p.mustBeValid()
	return fmt.Sprintf("player %d", p.index+1)
}

func (p Player) String() string {
	return p.Name()
}

// Players lists every player of an n-player game in seat order.
func Players(n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i] = MustFromIndex(i, n)
	}
	return players
}

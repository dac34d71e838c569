package game

import "fmt"

// Status is either ToMove(player) or Won(player).
// Games recompute it from their state on every call.
type Status struct {
	player Player
	won    bool
}

func ToMove(p Player) Status {
	p.mustBeValid()
	return Status{player: p}
}

func Won(p Player) Status {
	p.mustBeValid()
	return Status{player: p, won: true}
}

// Player returns the mover, or the winner once the game has ended.
func (s Status) Player() Player {
	return s.player
}

func (s Status) IsEnded() bool {
	return s.won
}

func (s Status) String() string {
	if s.won {
		return fmt.Sprintf("Won(%s)", s.player)
	}
	return fmt.Sprintf("ToMove(%s)", s.player)
}

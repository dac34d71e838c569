package game

// Game is implemented by every concrete turn-based game. M is the game's move type.
//
// Information may be hidden: VisibleState must only reveal what the given
// player is allowed to know.
type Game[M any] interface {
	// NumPlayers is constant for a game instance
	NumPlayers() int
	// Status reports who is to move, or who has won
	Status() Status
	// Query is the prompt shown when asking a human for a move
	Query() string
	// ParseMove turns raw text into a move, or an error wrapping ErrUnparsable
	ParseMove(raw string) (M, error)
	// CheckMove validates a move for the current mover, or returns an error wrapping ErrIllegalMove
	CheckMove(mv M) error
	// MakeMove applies a move. Callers must have checked it first.
	MakeMove(mv M)
	// VisibleState renders the state as seen by one player
	VisibleState(p Player) string
}

// Requery is the prompt shown after a rejected move.
func Requery() string {
	return "Try again: "
}

func IsValidMove[M any](g Game[M], mv M) bool {
	return g.CheckMove(mv) == nil
}

func IsEnded[M any](g Game[M]) bool {
	return g.Status().IsEnded()
}

// CurrentPlayer returns the mover, or false if the game has ended.
func CurrentPlayer[M any](g Game[M]) (Player, bool) {
	status := g.Status()
	if status.IsEnded() {
		return Player{}, false
	}
	return status.Player(), true
}

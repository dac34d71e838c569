package agent

import "games/game"

// Agent plays a game automatically.
//
// FindMove must only use information visible to player p, and must return a
// move that passes the game's CheckMove.
type Agent[M any] interface {
	FindMove(g game.Game[M], p game.Player) M
}

// Func adapts a plain function to the Agent interface.
type Func[M any] func(g game.Game[M], p game.Player) M

func (f Func[M]) FindMove(g game.Game[M], p game.Player) M {
	return f(g, p)
}

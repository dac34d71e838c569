package battleship

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"games/game"
	"games/meta"
)

const numPlayers = 2

// Config holds the setup parameters of a game.
type Config struct {
	Rows  int
	Cols  int
	Ships []int // lengths every player has to place
}

func DefaultConfig() Config {
	return Config{
		Rows:  meta.BOARD_ROWS,
		Cols:  meta.BOARD_COLS,
		Ships: slices.Clone(meta.STARTING_SHIPS),
	}
}

func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("invalid board size %dx%d", c.Rows, c.Cols)
	}
	if len(c.Ships) == 0 {
		return fmt.Errorf("no ships to place")
	}
	total := 0
	for _, length := range c.Ships {
		if length <= 0 || (length > c.Rows && length > c.Cols) {
			return fmt.Errorf("ship length %d does not fit a %dx%d board", length, c.Rows, c.Cols)
		}
		total += length
	}
	if total > c.Rows*c.Cols {
		return fmt.Errorf("ships need %d squares, board only has %d", total, c.Rows*c.Cols)
	}
	if !NewBoard(c.Rows, c.Cols).CanFit(c.Ships) {
		return fmt.Errorf("ships %v cannot all be placed on a %dx%d board", c.Ships, c.Rows, c.Cols)
	}
	return nil
}

// GameState is the two-player hidden ship game. Each player first places
// their ships on their own board, then players take turns shooting at the
// opponent's board.
type GameState struct {
	toMove           game.Player
	pendingPlacement [numPlayers]map[int]int // ship length -> ships of that length left to place
	boards           [numPlayers]*Board
	lastResult       *HitResult
}

// New sets up a game. It panics on an invalid config; call Config.Validate first
// for user supplied values.
func New(cfg Config) *GameState {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	gs := &GameState{toMove: game.MustFromIndex(0, numPlayers)}
	for i := 0; i < numPlayers; i++ {
		pending := make(map[int]int)
		for _, length := range cfg.Ships {
			pending[length]++
		}
		gs.pendingPlacement[i] = pending
		gs.boards[i] = NewBoard(cfg.Rows, cfg.Cols)
	}
	return gs
}

func (gs *GameState) board(p game.Player) *Board {
	return gs.boards[p.Index()]
}

func (gs *GameState) pending(p game.Player) map[int]int {
	return gs.pendingPlacement[p.Index()]
}

func (gs *GameState) hasPending(p game.Player) bool {
	return len(gs.pending(p)) > 0
}

// PendingShips lists the ship lengths a player still has to place, ascending.
func (gs *GameState) PendingShips(p game.Player) []int {
	var ships []int
	for _, length := range slices.Sorted(maps.Keys(gs.pending(p))) {
		for i := 0; i < gs.pending(p)[length]; i++ {
			ships = append(ships, length)
		}
	}
	return ships
}

func (gs *GameState) printPending(p game.Player) string {
	parts := []string{}
	for _, length := range gs.PendingShips(p) {
		parts = append(parts, strconv.Itoa(length))
	}
	return strings.Join(parts, " ")
}

// ShipSquaresLeft is the number of unhit ship squares on a player's board.
func (gs *GameState) ShipSquaresLeft(p game.Player) int {
	return gs.board(p).ShipSquaresLeft()
}

// LastResult reports the outcome of the most recent shot, if any.
func (gs *GameState) LastResult() (HitResult, bool) {
	if gs.lastResult == nil {
		return Miss, false
	}
	return *gs.lastResult, true
}

func (gs *GameState) NumPlayers() int {
	return numPlayers
}

// Status is derived from scratch on every call. Placement happens in seat
// order before any shooting.
func (gs *GameState) Status() game.Status {
	for _, p := range game.Players(numPlayers) {
		if gs.hasPending(p) {
			return game.ToMove(p)
		}
	}
	var sunk []game.Player
	for _, p := range game.Players(numPlayers) {
		if gs.board(p).ShipSquaresLeft() == 0 {
			sunk = append(sunk, p)
		}
	}
	switch len(sunk) {
	case 0:
		return game.ToMove(gs.toMove)
	case 1:
		return game.Won(sunk[0].Opponent())
	default:
		panic("both fleets sunk")
	}
}

func (gs *GameState) Query() string {
	if p, ok := game.CurrentPlayer[Move](gs); ok && gs.hasPending(p) {
		return "Place a ship (length row col drow dcol): "
	}
	return "Shoot (row col): "
}

func (gs *GameState) ParseMove(raw string) (Move, error) {
	return ParseMove(raw)
}

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", game.ErrIllegalMove, fmt.Sprintf(format, args...))
}

// CheckMove validates a move for the current mover.
func (gs *GameState) CheckMove(mv Move) error {
	p, ok := game.CurrentPlayer[Move](gs)
	if !ok {
		return illegal("the game is over")
	}
	own := gs.board(p)
	switch mv := mv.(type) {
	case PlaceShip:
		if gs.pending(p)[mv.Length] == 0 {
			if !gs.hasPending(p) {
				return illegal("you have no ships left to place")
			}
			return illegal("no ship of length %d left to place (remaining: %s)", mv.Length, gs.printPending(p))
		}
		if !own.InBounds(mv.At) {
			return illegal("%s is off the %dx%d board", mv.At, own.Rows(), own.Cols())
		}
		if !mv.Dir.IsValid() {
			return illegal("direction %s must be a step of -1, 0 or 1 on each axis and not (0, 0)", mv.Dir)
		}
		if !own.ValidShipLine(mv.At, mv.Dir, mv.Length) {
			return illegal("a ship of length %d at %s heading %s leaves the board or overlaps another ship", mv.Length, mv.At, mv.Dir)
		}
		if !leavesRoom(own, mv, gs.PendingShips(p)) {
			return illegal("a ship of length %d at %s heading %s leaves no room for the rest of your ships (remaining: %s)", mv.Length, mv.At, mv.Dir, gs.printPending(p))
		}
		return nil
	case Shoot:
		if gs.hasPending(p) {
			return illegal("place all your ships before shooting (remaining: %s)", gs.printPending(p))
		}
		target := gs.board(p.Opponent())
		if !target.InBounds(mv.At) {
			return illegal("%s is off the %dx%d board", mv.At, target.Rows(), target.Cols())
		}
		return nil
	default:
		return illegal("unknown move %v", mv)
	}
}

// leavesRoom reports whether the pending ships other than the one being
// placed still fit after the placement.
func leavesRoom(own *Board, mv PlaceShip, pending []int) bool {
	i := slices.Index(pending, mv.Length)
	rest := slices.Delete(slices.Clone(pending), i, i+1)
	next := own.Clone()
	next.PlaceShipLine(mv.At, mv.Dir, mv.Length)
	return next.CanFit(rest)
}

// MakeMove applies a move that passed CheckMove; anything else is a bug.
func (gs *GameState) MakeMove(mv Move) {
	if err := gs.CheckMove(mv); err != nil {
		panic(fmt.Sprintf("making unchecked move %v: %v", mv, err))
	}
	p := gs.Status().Player()
	switch mv := mv.(type) {
	case PlaceShip:
		if !gs.board(p).PlaceShipLine(mv.At, mv.Dir, mv.Length) {
			panic("validated ship placement failed")
		}
		pending := gs.pending(p)
		pending[mv.Length]--
		if pending[mv.Length] == 0 {
			delete(pending, mv.Length)
		}
	case Shoot:
		result := gs.board(p.Opponent()).Shoot(mv.At)
		gs.lastResult = &result
		gs.toMove = p.Opponent()
	}
}

// VisibleState shows a player their own board and, once they are done
// placing, the public view of the opponent's board.
func (gs *GameState) VisibleState(p game.Player) string {
	if gs.hasPending(p) {
		return fmt.Sprintf(
			"=== Your Board ===\n%s\n=== Ships to Place ===\n%s\n",
			gs.board(p).RenderPrivate(),
			gs.printPending(p),
		)
	}
	return fmt.Sprintf(
		"=== Your Board ===\n%s\n=== Shots ===\n%s\n",
		gs.board(p).RenderPrivate(),
		gs.board(p.Opponent()).RenderPublic(),
	)
}

// Observation is everything a player is allowed to know.
type Observation struct {
	Player   game.Player
	Own      *Board // ground truth
	Opponent *Board // public projection only
	Pending  []int
}

func (gs *GameState) Observe(p game.Player) Observation {
	return Observation{
		Player:   p,
		Own:      gs.board(p).Clone(),
		Opponent: gs.board(p.Opponent()).PublicCopy(),
		Pending:  gs.PendingShips(p),
	}
}

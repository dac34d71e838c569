package battleship

import (
	"cmp"
	"fmt"
	"slices"

	"games/game"
)

// Coord is a (row, column) position, 0-indexed from the top left.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func (c Coord) step(d Dir, times int) Coord {
	return Coord{Row: c.Row + d.DRow*times, Col: c.Col + d.DCol*times}
}

// Dir is one of the 8 unit steps, horizontal, vertical or diagonal.
type Dir struct {
	DRow int
	DCol int
}

var (
	Up    = Dir{DRow: -1}
	Down  = Dir{DRow: 1}
	Left  = Dir{DCol: -1}
	Right = Dir{DCol: 1}
)

// lineDirs reaches every straight or diagonal line once, from one of its ends.
var lineDirs = []Dir{Right, Down, {DRow: 1, DCol: 1}, {DRow: 1, DCol: -1}}

func (d Dir) IsValid() bool {
	unit := func(v int) bool { return v >= -1 && v <= 1 }
	return unit(d.DRow) && unit(d.DCol) && (d.DRow != 0 || d.DCol != 0)
}

func (d Dir) String() string {
	return fmt.Sprintf("(%d, %d)", d.DRow, d.DCol)
}

// Row is one line of a board.
type Row []Cell

func (r Row) EqualPrivate(other Row) bool {
	return game.EqualPrivateAll([]Cell(r), []Cell(other))
}

func (r Row) EqualPublic(other Row) bool {
	return game.EqualPublicAll([]Cell(r), []Cell(other))
}

func (r Row) RenderPrivate() string {
	return game.RenderPrivateAll([]Cell(r), " ")
}

func (r Row) RenderPublic() string {
	return game.RenderPublicAll([]Cell(r), " ")
}

// Board is a rows x cols grid owned by one player, together with the number
// of ship squares that have not been hit yet.
type Board struct {
	grid          []Row
	shipRemaining int
}

func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board size %dx%d", rows, cols))
	}
	grid := make([]Row, rows)
	for i := range grid {
		grid[i] = make(Row, cols)
	}
	return &Board{grid: grid}
}

func (b *Board) Rows() int {
	return len(b.grid)
}

func (b *Board) Cols() int {
	return len(b.grid[0])
}

func (b *Board) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < b.Rows() && c.Col >= 0 && c.Col < b.Cols()
}

func (b *Board) mustBeInBounds(c Coord) {
	if !b.InBounds(c) {
		panic(fmt.Sprintf("coordinate %s outside %dx%d board", c, b.Rows(), b.Cols()))
	}
}

// Private returns the ground truth about a square.
func (b *Board) Private(c Coord) Cell {
	b.mustBeInBounds(c)
	return b.grid[c.Row][c.Col]
}

// Public returns what an opponent can see of a square.
func (b *Board) Public(c Coord) Cell {
	return b.Private(c).Hide()
}

// Shoot fires at a square. The remaining counter drops once per new hit.
func (b *Board) Shoot(c Coord) HitResult {
	b.mustBeInBounds(c)
	result := b.grid[c.Row][c.Col].Shoot()
	if result == Hit {
		if b.shipRemaining <= 0 {
			panic("ship counter out of sync with board")
		}
		b.shipRemaining--
	}
	return result
}

// PlaceShipSquare puts a ship on a sea square. Returns false if a ship is
// already there. Only called before any shots are fired.
func (b *Board) PlaceShipSquare(c Coord) bool {
	b.mustBeInBounds(c)
	if b.grid[c.Row][c.Col] == Ship {
		return false
	}
	b.grid[c.Row][c.Col] = Ship
	b.shipRemaining++
	return true
}

// ValidShipLine reports whether length squares from start, stepping by dir,
// are all on the board and open sea.
func (b *Board) ValidShipLine(start Coord, dir Dir, length int) bool {
	if length < 0 || !dir.IsValid() {
		return false
	}
	for i := 0; i < length; i++ {
		c := start.step(dir, i)
		if !b.InBounds(c) || b.grid[c.Row][c.Col] != Sea {
			return false
		}
	}
	return true
}

// PlaceShipLine places a whole ship or nothing at all.
func (b *Board) PlaceShipLine(start Coord, dir Dir, length int) bool {
	if !b.ValidShipLine(start, dir, length) {
		return false
	}
	for i := 0; i < length; i++ {
		if !b.PlaceShipSquare(start.step(dir, i)) {
			panic("validated ship line was blocked")
		}
	}
	return true
}

// CanFit reports whether ships of the given lengths can all still be placed
// on the open sea of the board.
func (b *Board) CanFit(lengths []int) bool {
	sorted := slices.SortedFunc(slices.Values(lengths), func(x, y int) int { return cmp.Compare(y, x) })
	return b.Clone().fit(sorted)
}

// fit backtracks over placements of lengths, longest first. The board is
// left as it was found.
func (b *Board) fit(lengths []int) bool {
	if len(lengths) == 0 {
		return true
	}
	need := 0
	for _, length := range lengths {
		need += length
	}
	if need > b.seaSquares() {
		return false
	}
	length, rest := lengths[0], lengths[1:]
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			at := Coord{Row: r, Col: c}
			for _, dir := range lineDirs {
				if !b.PlaceShipLine(at, dir, length) {
					continue
				}
				ok := b.fit(rest)
				b.removeShipLine(at, dir, length)
				if ok {
					return true
				}
				if length <= 1 {
					break
				}
			}
		}
	}
	return false
}

func (b *Board) removeShipLine(start Coord, dir Dir, length int) {
	for i := 0; i < length; i++ {
		c := start.step(dir, i)
		b.grid[c.Row][c.Col] = Sea
		b.shipRemaining--
	}
}

func (b *Board) seaSquares() int {
	n := 0
	for _, row := range b.grid {
		for _, cell := range row {
			if cell == Sea {
				n++
			}
		}
	}
	return n
}

// ShipSquaresLeft is the number of ship squares not hit yet.
func (b *Board) ShipSquaresLeft() int {
	return b.shipRemaining
}

func (b *Board) Clone() *Board {
	cp := NewBoard(b.Rows(), b.Cols())
	for i, row := range b.grid {
		copy(cp.grid[i], row)
	}
	cp.shipRemaining = b.shipRemaining
	return cp
}

// PublicCopy returns a board holding only the public projection.
func (b *Board) PublicCopy() *Board {
	cp := NewBoard(b.Rows(), b.Cols())
	for i, row := range b.grid {
		for j, cell := range row {
			cp.grid[i][j] = cell.Hide()
		}
	}
	return cp
}

func (b *Board) EqualPrivate(other *Board) bool {
	return game.EqualPrivateAll(b.grid, other.grid)
}

func (b *Board) EqualPublic(other *Board) bool {
	return game.EqualPublicAll(b.grid, other.grid)
}

func (b *Board) RenderPrivate() string {
	return game.RenderPrivateAll(b.grid, "\n")
}

func (b *Board) RenderPublic() string {
	return game.RenderPublicAll(b.grid, "\n")
}

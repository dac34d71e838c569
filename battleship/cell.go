package battleship

// Cell is the ground truth about one square of a board.
// The zero value is open sea.
type Cell int

const (
	Sea Cell = iota
	Ship
	ShipHit
	SeaMiss
)

type HitResult int

const (
	Miss HitResult = iota
	Hit
)

func (r HitResult) String() string {
	if r == Hit {
		return "Hit"
	}
	return "Miss"
}

func (c Cell) String() string {
	switch c {
	case Sea:
		return "Sea"
	case Ship:
		return "Ship"
	case ShipHit:
		return "ShipHit"
	case SeaMiss:
		return "SeaMiss"
	default:
		return "Unknown"
	}
}

// Hide projects the cell to what an opponent can see: unshot ships look like sea.
func (c Cell) Hide() Cell {
	if c == Ship {
		return Sea
	}
	return c
}

// Shoot fires at the cell. Only a shot at an intact ship is a Hit;
// ShipHit and SeaMiss are terminal.
func (c *Cell) Shoot() HitResult {
	switch *c {
	case Ship:
		*c = ShipHit
		return Hit
	case Sea:
		*c = SeaMiss
		return Miss
	default:
		return Miss
	}
}

func (c Cell) EqualPrivate(other Cell) bool {
	return c == other
}

func (c Cell) EqualPublic(other Cell) bool {
	return c.Hide() == other.Hide()
}

func (c Cell) RenderPrivate() string {
	switch c {
	case Ship:
		return "s"
	case ShipHit:
		return "x"
	case SeaMiss:
		return "o"
	default:
		return "-"
	}
}

func (c Cell) RenderPublic() string {
	return c.Hide().RenderPrivate()
}

package metrics

import (
	"time"
)

type MoveMetric struct {
	Step     int
	Player   int    // 1-based player number
	Move     string // move as applied
	Attempts int    // inputs needed to get a legal move, 1 for agents
	Agent    bool
	Duration time.Duration
}

type GameMetric struct {
	StartingPlayer int // 1-based player number
	Winner         int // 1-based player number
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(startingPlayer int)
	AddMove(move MoveMetric)
	Complete(winner int) (GameMetric, []MoveMetric)
}

type collector struct {
	startingPlayer int
	startTime      time.Time
	moves          []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(startingPlayer int) {
	m.startingPlayer = startingPlayer
	m.startTime = time.Now()
	m.moves = nil
}

func (m *collector) AddMove(move MoveMetric) {
	m.moves = append(m.moves, move)
}

func (m *collector) Complete(winner int) (GameMetric, []MoveMetric) {
	end := time.Now()
	return GameMetric{
		StartingPlayer: m.startingPlayer,
		Winner:         winner,
		StartTime:      m.startTime,
		EndTime:        end,
		Duration:       end.Sub(m.startTime),
		TotalMoves:     len(m.moves),
	}, m.moves
}

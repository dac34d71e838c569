package engine

import (
	"fmt"
	"io"

	"games/agent"
	"games/communication"
	"games/experiments/metrics"
	"games/game"
)

type Option[M any] func(e *Engine[M])

// Engine drives a game from its first status to its winner. Each seat is
// played either by an agent or by a human answering prompts.
type Engine[M any] struct {
	Game     game.Game[M]
	agents   map[int]agent.Agent[M] // by player index
	prompter communication.Prompter
	display  io.Writer
	metrics  metrics.Collector
}

// Result describes a finished game.
type Result struct {
	Winner game.Player
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

// WithPrompter sets where human seats read their moves from.
func WithPrompter[M any](p communication.Prompter) Option[M] {
	return func(e *Engine[M]) {
		e.prompter = p
	}
}

// WithAgent lets an agent play the given seat.
func WithAgent[M any](p game.Player, a agent.Agent[M]) Option[M] {
	return func(e *Engine[M]) {
		e.agents[p.Index()] = a
	}
}

// WithDisplay sets where game state and messages for humans are written.
func WithDisplay[M any](w io.Writer) Option[M] {
	return func(e *Engine[M]) {
		if w != nil {
			e.display = w
		}
	}
}

func WithMetrics[M any](c metrics.Collector) Option[M] {
	return func(e *Engine[M]) {
		if c != nil {
			e.metrics = c
		}
	}
}

func New[M any](g game.Game[M], options ...Option[M]) *Engine[M] {
	e := &Engine[M]{ // Default values
		Game:    g,
		agents:  make(map[int]agent.Agent[M]),
		display: io.Discard,
		metrics: metrics.NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	for _, p := range game.Players(g.NumPlayers()) {
		if _, ok := e.agents[p.Index()]; !ok && e.prompter == nil {
			panic(fmt.Sprintf("%s has neither an agent nor a prompter", p))
		}
	}
	return e
}

// IsAgent reports whether a seat is played by an agent.
func (e *Engine[M]) IsAgent(p game.Player) bool {
	_, ok := e.agents[p.Index()]
	return ok
}

package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"games/experiments/metrics"
	"games/game"
)

// Run plays until the game reports a winner. Moves are applied one at a time,
// and the status is recomputed after each of them.
func (e *Engine[M]) Run() (Result, error) {
	status := e.Game.Status()
	log.Info().Msgf("%s is starting", status.Player().LowerName())
	e.metrics.Start(status.Player().Index() + 1)

	step := 0
	for !status.IsEnded() {
		mover := status.Player()
		start := time.Now()

		var (
			move     M
			attempts = 1
			err      error
		)
		if a, ok := e.agents[mover.Index()]; ok {
			move = a.FindMove(e.Game, mover)
			if err := e.Game.CheckMove(move); err != nil {
				panic(fmt.Sprintf("agent for %s returned an illegal move %v: %v", mover.LowerName(), move, err))
			}
		} else {
			move, attempts, err = e.humanMove(mover)
			if err != nil {
				return Result{}, fmt.Errorf("failed to get a move for %s: %w", mover.LowerName(), err)
			}
		}

		e.Game.MakeMove(move)
		step++
		e.metrics.AddMove(metrics.MoveMetric{
			Step:     step,
			Player:   mover.Index() + 1,
			Move:     fmt.Sprint(move),
			Attempts: attempts,
			Agent:    e.IsAgent(mover),
			Duration: time.Since(start),
		})
		log.Debug().Int("step", step).Str("player", mover.LowerName()).Msgf("played %v", move)

		status = e.Game.Status()
	}

	winner := status.Player()
	log.Info().Int("moves", step).Msgf("%s won", winner.LowerName())
	fmt.Fprintf(e.display, "%s wins!\n", winner)

	gameMetric, moveMetrics := e.metrics.Complete(winner.Index() + 1)
	return Result{Winner: winner, Game: gameMetric, Moves: moveMetrics}, nil
}

// humanMove prompts until the answer parses and is legal. Both kinds of
// error are shown to the player and never applied.
func (e *Engine[M]) humanMove(p game.Player) (M, int, error) {
	fmt.Fprintf(e.display, "=== %s ===\n%s", p, e.Game.VisibleState(p))
	query := e.Game.Query()
	for attempts := 1; ; attempts++ {
		raw, err := e.prompter.Prompt(query)
		if err != nil {
			var zero M
			return zero, attempts, err
		}
		query = game.Requery()

		move, err := e.Game.ParseMove(raw)
		if err != nil {
			fmt.Fprintln(e.display, err)
			continue
		}
		if err := e.Game.CheckMove(move); err != nil {
			fmt.Fprintln(e.display, err)
			continue
		}
		return move, attempts, nil
	}
}

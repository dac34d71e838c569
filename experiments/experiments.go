package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"games/agent"
	"games/battleship"
	"games/engine"
	"games/experiments/metrics"
	"games/game"
	"games/nim"
)

const (
	Battleship = "battleship"
	Nim        = "nim"
)

// Config describes a batch of games between random agents.
type Config struct {
	Game       string
	Games      int
	Seed       uint64
	OutDir     string // records are only written when set
	Battleship battleship.Config
	NimPlayers int
	NimPiles   []int
}

type Summary struct {
	Wins  []int  // indexed by player
	Moves int    // over all games
	Dir   string // where records were written
}

func (s Summary) String() string {
	return fmt.Sprintf("wins=%v moves=%d", s.Wins, s.Moves)
}

// newGame sets up one game and an agent per seat. Seeds for the agents are
// drawn from seeds so a whole experiment is reproducible.
type newGame[M any] func(seeds *rand.Rand) (game.Game[M], []agent.Agent[M], error)

func Run(cfg Config) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("number of games must be positive, got %d", cfg.Games)
	}
	switch cfg.Game {
	case Battleship:
		if err := cfg.Battleship.Validate(); err != nil {
			return Summary{}, fmt.Errorf("invalid battleship config: %w", err)
		}
		return runExperiment[battleship.Move](cfg, 2, func(seeds *rand.Rand) (game.Game[battleship.Move], []agent.Agent[battleship.Move], error) {
			return battleship.New(cfg.Battleship), []agent.Agent[battleship.Move]{
				battleship.NewRandomAgent(seeds.Uint64()),
				battleship.NewRandomAgent(seeds.Uint64()),
			}, nil
		})
	case Nim:
		return runExperiment[nim.Move](cfg, cfg.NimPlayers, func(seeds *rand.Rand) (game.Game[nim.Move], []agent.Agent[nim.Move], error) {
			s, err := nim.New(cfg.NimPlayers, cfg.NimPiles)
			if err != nil {
				return nil, nil, err
			}
			agents := make([]agent.Agent[nim.Move], cfg.NimPlayers)
			for i := range agents {
				agents[i] = nim.NewRandomAgent(seeds.Uint64())
			}
			return s, agents, nil
		})
	default:
		return Summary{}, fmt.Errorf("unknown game %q", cfg.Game)
	}
}

func runExperiment[M any](cfg Config, numPlayers int, setup newGame[M]) (Summary, error) {
	if numPlayers <= 0 {
		return Summary{}, fmt.Errorf("number of players must be positive, got %d", numPlayers)
	}
	seeds := rand.New(rand.NewSource(cfg.Seed))
	summary := Summary{Wins: make([]int, numPlayers)}
	gameRecords := []metrics.GameRecord{}
	agentIDs := make([]int, numPlayers) // seat i is always played by agent config i+1
	for i := range agentIDs {
		agentIDs[i] = i + 1
	}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment with %d games...", cfg.Game, cfg.Games)

	for i := 1; i <= cfg.Games; i++ {
		g, agents, err := setup(seeds)
		if err != nil {
			return Summary{}, fmt.Errorf("failed to set up game %d: %w", i, err)
		}
		options := []engine.Option[M]{}
		for j, a := range agents {
			options = append(options, engine.WithAgent[M](game.MustFromIndex(j, numPlayers), a))
		}

		result, err := engine.New(g, options...).Run()
		if err != nil {
			return Summary{}, fmt.Errorf("game %d failed: %w", i, err)
		}
		log.Debug().Msgf("game %d of %d over, winner: %s", i, cfg.Games, result.Winner)

		summary.Wins[result.Winner.Index()]++
		summary.Moves += result.Game.TotalMoves
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i,
			Agents:     agentIDs,
			GameMetric: result.Game,
		})
		for _, move := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i, MoveMetric: move})
		}
	}

	log.Info().Msgf("finished %s experiment: %s", cfg.Game, summary)

	if cfg.OutDir == "" {
		return summary, nil
	}
	dir, err := writeRecords(cfg, numPlayers, gameRecords, moveRecords)
	if err != nil {
		return Summary{}, err
	}
	summary.Dir = dir
	return summary, nil
}

func writeRecords(cfg Config, numPlayers int, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(cfg.OutDir, cfg.Game)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	configs := make([]metrics.AgentConfig, numPlayers)
	for i := range configs {
		configs[i] = metrics.AgentConfig{ID: i + 1, Kind: "random", Seed: cfg.Seed}
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	return writer.Dir(), nil
}

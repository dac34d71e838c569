package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"games/agent"
	"games/battleship"
	"games/communication"
	"games/engine"
	"games/experiments"
	"games/game"
	"games/meta"
	"games/nim"
	"games/utils"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	gameName := flag.String("game", experiments.Battleship, "Game to play: battleship or nim")
	agentSeats := flag.String("agents", "2", "Comma separated players (1-based) played by the random agent")
	seed := flag.Uint64("seed", 1, "Seed for the random agents")
	rows := flag.Int("rows", meta.BOARD_ROWS, "Battleship board rows")
	cols := flag.Int("cols", meta.BOARD_COLS, "Battleship board columns")
	ships := flag.String("ships", joinInts(meta.STARTING_SHIPS), "Battleship ship lengths")
	players := flag.Int("players", meta.NIM_PLAYERS, "Number of nim players")
	piles := flag.String("piles", joinInts(meta.NIM_PILES), "Nim pile sizes")
	numGames := flag.Int("experiment", 0, "Play this many agent-only games instead of an interactive one")
	outDir := flag.String("out", "", "Directory for experiment records")
	flag.Parse()

	shipLengths, err := utils.ParseInts(*ships)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -ships")
	}
	pileSizes, err := utils.ParseInts(*piles)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -piles")
	}
	boardConfig := battleship.Config{Rows: *rows, Cols: *cols, Ships: shipLengths}

	if *numGames > 0 {
		summary, err := experiments.Run(experiments.Config{
			Game:       *gameName,
			Games:      *numGames,
			Seed:       *seed,
			OutDir:     *outDir,
			Battleship: boardConfig,
			NimPlayers: *players,
			NimPiles:   pileSizes,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		fmt.Println(summary)
		return
	}

	switch *gameName {
	case experiments.Battleship:
		if err := boardConfig.Validate(); err != nil {
			log.Fatal().Err(err).Msg("invalid battleship setup")
		}
		seats := parseSeats(*agentSeats, 2)
		fmt.Println("======= BATTLESHIP =======")
		err = play[battleship.Move](battleship.New(boardConfig), seats, *seed, func(seed uint64) agent.Agent[battleship.Move] {
			return battleship.NewRandomAgent(seed)
		})
	case experiments.Nim:
		s, setupErr := nim.New(*players, pileSizes)
		if setupErr != nil {
			log.Fatal().Err(setupErr).Msg("invalid nim setup")
		}
		seats := parseSeats(*agentSeats, *players)
		fmt.Println("======= NIM =======")
		err = play[nim.Move](s, seats, *seed, func(seed uint64) agent.Agent[nim.Move] {
			return nim.NewRandomAgent(seed)
		})
	default:
		log.Fatal().Msgf("unknown game %q", *gameName)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func play[M any](g game.Game[M], seats []game.Player, seed uint64, newAgent func(seed uint64) agent.Agent[M]) error {
	options := []engine.Option[M]{
		engine.WithPrompter[M](communication.NewConsole(os.Stdin, os.Stdout)),
		engine.WithDisplay[M](os.Stdout),
	}
	for i, p := range seats {
		options = append(options, engine.WithAgent[M](p, newAgent(seed+uint64(i))))
	}
	_, err := engine.New(g, options...).Run()
	return err
}

func parseSeats(raw string, numPlayers int) []game.Player {
	var seats []game.Player
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := game.ParsePlayer(field, numPlayers)
		if err != nil {
			log.Fatal().Err(err).Msgf("invalid -agents entry %q", field)
		}
		seats = append(seats, p)
	}
	return seats
}

func joinInts(ints []int) string {
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ",")
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

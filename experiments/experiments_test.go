package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"games/battleship"
)

func TestRunBattleship(t *testing.T) {
	cfg := Config{
		Game:       Battleship,
		Games:      3,
		Seed:       11,
		OutDir:     t.TempDir(),
		Battleship: battleship.DefaultConfig(),
	}
	summary, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, summary.Wins, 2)
	require.Equal(t, 3, summary.Wins[0]+summary.Wins[1])
	require.Greater(t, summary.Moves, 3*(6+12))

	for _, file := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(summary.Dir, file))
		require.NoError(t, err, file)
	}
}

func TestRunNimIsReproducible(t *testing.T) {
	cfg := Config{Game: Nim, Games: 5, Seed: 3, NimPlayers: 3, NimPiles: []int{3, 4, 5}}
	first, err := Run(cfg)
	require.NoError(t, err)
	second, err := Run(cfg)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first.Wins, 3)
	require.Empty(t, first.Dir, "no records without an output directory")
}

func TestRunNimRecordsEverySeat(t *testing.T) {
	cfg := Config{Game: Nim, Games: 2, Seed: 5, OutDir: t.TempDir(), NimPlayers: 3, NimPiles: []int{2, 3}}
	summary, err := Run(cfg)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(summary.Dir, "game_records.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, "agents", rows[0][1])
	require.Equal(t, "1 2 3", rows[1][1])
	require.Equal(t, "1 2 3", rows[2][1])
}

func TestRunBattleshipOnTightBoard(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		cfg := Config{
			Game:       Battleship,
			Games:      1,
			Seed:       seed,
			Battleship: battleship.Config{Rows: 3, Cols: 3, Ships: []int{3, 3, 3}},
		}
		var summary Summary
		require.NotPanics(t, func() {
			var err error
			summary, err = Run(cfg)
			require.NoError(t, err)
		}, "seed %d", seed)
		require.Equal(t, 1, summary.Wins[0]+summary.Wins[1])
	}
}

func TestRunErrors(t *testing.T) {
	_, err := Run(Config{Game: Nim, Games: 0})
	require.Error(t, err)

	_, err = Run(Config{Game: "chess", Games: 1})
	require.ErrorContains(t, err, `unknown game "chess"`)

	_, err = Run(Config{Game: Battleship, Games: 1})
	require.ErrorContains(t, err, "invalid battleship config")

	_, err = Run(Config{Game: Nim, Games: 1, NimPlayers: 2, NimPiles: []int{0}})
	require.ErrorContains(t, err, "pile 1 must be positive")

	_, err = Run(Config{Game: Nim, Games: 1, NimPlayers: 0, NimPiles: []int{1}})
	require.Error(t, err)
}

package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(1)
	c.AddMove(MoveMetric{Step: 1, Player: 1, Move: "Shoot((0, 0))", Attempts: 2})
	c.AddMove(MoveMetric{Step: 2, Player: 2, Move: "Shoot((1, 1))", Attempts: 1, Agent: true})

	game, moves := c.Complete(2)
	require.Equal(t, 1, game.StartingPlayer)
	require.Equal(t, 2, game.Winner)
	require.Equal(t, 2, game.TotalMoves)
	require.False(t, game.EndTime.Before(game.StartTime))
	require.Len(t, moves, 2)
	require.Equal(t, 2, moves[0].Attempts)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "battleship")
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Kind: "random", Seed: 9}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		ID: 1, Agents: []int{1, 2, 3},
		GameMetric: GameMetric{StartingPlayer: 1, Winner: 2, StartTime: start, EndTime: start.Add(time.Second), Duration: time.Second, TotalMoves: 40},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game:       1,
		MoveMetric: MoveMetric{Step: 1, Player: 1, Move: "Take 1 from pile 2", Attempts: 1, Agent: true},
	}}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "kind", "seed"}, {"1", "random", "9"}}, configs)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, []string{"1", "1 2 3", "1", "2", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "40"}, games[1])
	require.Equal(t, []string{"id", "agents", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}, games[0])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, []string{"1", "1", "1", "Take 1 from pile 2", "1", "true", "0s"}, moves[1])
}

func TestWriterReportsFileErrors(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "nim")
	require.NoError(t, err)
	require.NoError(t, os.RemoveAll(w.Dir()))

	err = w.WriteGameRecords(nil)
	require.ErrorContains(t, err, "failed to create game_records.csv")
}

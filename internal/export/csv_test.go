package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tyler180/nba-roster-stats/internal/espn"
)

func readBack(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func fixturePlayers() []espn.Player {
	return []espn.Player{
		{
			ID: "3975", Name: "Stephen Curry", Team: "golden-state-warriors",
			Pos: "PG", Age: 29, Height: `6' 3"`, Weight: "190 lbs",
			College: "Davidson", SalaryRaw: "$34,382,550",
			Salary: espn.Salary{Amount: 34382550, Disclosed: true},
		},
		{
			ID: "4433", Name: "Undrafted Rookie", Team: "golden-state-warriors",
			Pos: "SG", Age: 19, Height: `6' 5"`, Weight: "200 lbs",
		},
	}
}

func fixtureCareer() map[string]espn.CareerStats {
	return map[string]espn.CareerStats{
		"3975": {PlayerID: "3975", GamesPlayed: 82, GamesStarted: 80, Minutes: 34.6, Points: 27.1},
	}
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(dir, fixturePlayers(), fixtureCareer())
	require.NoError(t, err)
	require.Len(t, paths, 3)
	require.Equal(t, filepath.Join(dir, PlayersFile), paths[0])

	players := readBack(t, paths[0])
	require.Len(t, players, 3, "header + one row per player")
	require.Equal(t, playerColumns, players[0])
	require.Equal(t, "$34,382,550", players[1][8], "raw table keeps the page's salary string")
	require.Equal(t, "", players[2][8])

	career := readBack(t, paths[1])
	require.Len(t, career, 2, "header + only players with career stats")
	require.Equal(t, "3975", career[1][0])
	require.Equal(t, "82", career[1][2], "GP column")
}

func TestWriteAll_JoinIsLeftJoin(t *testing.T) {
	dir := t.TempDir()
	paths, err := WriteAll(dir, fixturePlayers(), fixtureCareer())
	require.NoError(t, err)

	joined := readBack(t, paths[2])
	require.Len(t, joined, 3, "every player appears exactly once, matched or not")

	header := joined[0]
	require.Equal(t, "height_in", header[5])
	require.Len(t, header, 9+len(espn.CareerColumns()))

	curry := joined[1]
	require.Equal(t, "75", curry[5], "height normalized to total inches")
	require.Equal(t, "190", curry[6], "weight keeps the leading numeric token")
	require.Equal(t, "34382550", curry[8])
	require.Equal(t, "82", curry[9], "first stat column (GP)")
	require.Equal(t, "27.1", curry[len(curry)-1], "last stat column (PTS)")

	rookie := joined[2]
	require.Equal(t, "", rookie[8], "undisclosed salary is empty, never zero")
	for i := 9; i < len(rookie); i++ {
		require.Equal(t, "", rookie[i], "unmatched stat columns stay empty")
	}
}

func TestWriteAll_OverwritesPriorRun(t *testing.T) {
	dir := t.TempDir()
	_, err := WriteAll(dir, fixturePlayers(), fixtureCareer())
	require.NoError(t, err)

	// second run with a smaller roster fully replaces the first
	_, err = WriteAll(dir, fixturePlayers()[:1], nil)
	require.NoError(t, err)

	players := readBack(t, filepath.Join(dir, PlayersFile))
	require.Len(t, players, 2)
}

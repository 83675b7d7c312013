package espn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const embeddedFixture = `{"athletes":[` +
	`{"name":"Stephen Curry","href":"https://www.espn.com/nba/player/_/id/3975/stephen-curry","id":"3975","position":"PG","age":29,"height":"6' 3\"","weight":"190 lbs","college":"Davidson","salary":"$34,382,550"},` +
	`{"name":"Undrafted Rookie","href":"https://www.espn.com/nba/player/_/id/4433/undrafted-rookie","id":"4433","position":"SG","age":19,"height":"6' 5\"","weight":"200 lbs","college":"","salary":" "}` +
	`]}`

func TestParseRosterEmbedded(t *testing.T) {
	players, err := ParseRosterEmbedded(embeddedFixture, "golden-state-warriors")
	require.NoError(t, err)
	require.Len(t, players, 2, "one output record per player fragment in the markup")

	curry := players[0]
	require.Equal(t, "3975", curry.ID)
	require.Equal(t, "Stephen Curry", curry.Name)
	require.Equal(t, "golden-state-warriors", curry.Team)
	require.Equal(t, "PG", curry.Pos)
	require.Equal(t, 29, curry.Age)
	require.Equal(t, `6' 3"`, curry.Height)
	require.Equal(t, "190 lbs", curry.Weight)
	require.Equal(t, "Davidson", curry.College)
	require.True(t, curry.Salary.Disclosed)
	require.Equal(t, 34382550, curry.Salary.Amount)

	rookie := players[1]
	require.Equal(t, "4433", rookie.ID)
	require.False(t, rookie.Salary.Disclosed, "placeholder salary maps to the undisclosed sentinel")
}

func TestParseRosterEmbedded_NoMatches(t *testing.T) {
	_, err := ParseRosterEmbedded(`<html><body>not a roster</body></html>`, "t")
	require.ErrorIs(t, err, ErrNoPlayers)
}

const tableFixture = `<html><body><table>
<thead><tr><th>Name</th><th>POS</th><th>Age</th><th>HT</th><th>WT</th><th>College</th><th>Salary</th></tr></thead>
<tbody>
<tr><td><a href="http://www.espn.com/nba/player/_/id/3975/stephen-curry">Stephen Curry</a></td><td>PG</td><td>29</td><td>6' 3&quot;</td><td>190 lbs</td><td>Davidson</td><td>$34,382,550</td></tr>
<tr><td><a href="http://www.espn.com/nba/player/_/id/6440/kevon-looney">Kevon  Looney</a></td><td>C</td><td>21</td><td>6' 9&quot;</td><td>220 lbs</td><td>UCLA</td><td>&nbsp;</td></tr>
</tbody></table></body></html>`

func TestParseRosterTable(t *testing.T) {
	players, err := ParseRosterTable(tableFixture, "golden-state-warriors")
	require.NoError(t, err)
	require.Len(t, players, 2)

	curry := players[0]
	require.Equal(t, "3975", curry.ID)
	require.Equal(t, "Stephen Curry", curry.Name)
	require.Equal(t, "PG", curry.Pos)
	require.Equal(t, 29, curry.Age)
	require.Equal(t, `6' 3"`, curry.Height)
	require.Equal(t, "190 lbs", curry.Weight)
	require.Equal(t, "$34,382,550", curry.SalaryRaw)
	require.Equal(t, 34382550, curry.Salary.Amount)

	looney := players[1]
	require.Equal(t, "Kevon Looney", looney.Name, "internal whitespace collapses")
	require.False(t, looney.Salary.Disclosed)
}

func TestParseRosterTable_NoTable(t *testing.T) {
	_, err := ParseRosterTable(`<html><body><p>offseason</p></body></html>`, "t")
	require.ErrorIs(t, err, ErrNoPlayers)
}

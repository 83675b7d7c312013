package espn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSalary(t *testing.T) {
	s := ParseSalary("$34,382,550")
	require.True(t, s.Disclosed)
	require.Equal(t, 34382550, s.Amount)

	s = ParseSalary("$1,000")
	require.True(t, s.Disclosed)
	require.Equal(t, 1000, s.Amount)
}

func TestParseSalary_UndisclosedIsNeverZero(t *testing.T) {
	for _, raw := range []string{"", " ", "&nbsp;", "--", "   "} {
		s := ParseSalary(raw)
		require.False(t, s.Disclosed, "raw %q must map to the undisclosed sentinel", raw)
	}
}

func TestConvertHeight(t *testing.T) {
	h, err := ConvertHeight(`6' 3"`)
	require.NoError(t, err)
	require.Equal(t, 75.0, h)

	h, err = ConvertHeight(`7' 0"`)
	require.NoError(t, err)
	require.Equal(t, 84.0, h)

	_, err = ConvertHeight("tall")
	require.Error(t, err)
}

func TestConvertWeight(t *testing.T) {
	w, err := ConvertWeight("190 lbs")
	require.NoError(t, err)
	require.Equal(t, 190.0, w)

	_, err = ConvertWeight("")
	require.Error(t, err)
}

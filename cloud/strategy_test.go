package cloud

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{
		"sector":  SectorRings,
		"Sectors": SectorRings,
		" rings ": SectorRings,
		"SPIRAL":  AngularSpiral,
	} {
		got, err := ResolveStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ResolveStrategy("maxrects")
	assert.ErrorIs(t, err, ErrInvalidStrategy)
}

func TestStrategyText(t *testing.T) {
	text, err := AngularSpiral.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "spiral", string(text))

	var s Strategy
	require.NoError(t, s.UnmarshalText([]byte("sector")))
	assert.Equal(t, SectorRings, s)

	assert.ErrorIs(t, s.UnmarshalText([]byte("bogus")), ErrInvalidStrategy)
	_, err = Strategy(9).MarshalText()
	assert.ErrorIs(t, err, ErrInvalidStrategy)
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestResolveSort(t *testing.T) {
	for _, name := range []string{"", "none", "NONE"} {
		f, err := ResolveSort(name)
		require.NoError(t, err)
		assert.Nil(t, f)
	}

	f, err := ResolveSort("area")
	require.NoError(t, err)
	// 面积大的排在前面
	assert.Negative(t, f(NewSize(4, 4), NewSize(2, 2)))

	f, err = ResolveSort("height")
	require.NoError(t, err)
	assert.Positive(t, f(NewSize(10, 1), NewSize(1, 2)))

	_, err = ResolveSort("random")
	assert.Error(t, err)
}

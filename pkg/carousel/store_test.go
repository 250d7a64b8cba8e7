package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		index int
		count int
		want  int
	}{
		{name: "in range", index: 2, count: 4, want: 2},
		{name: "zero", index: 0, count: 4, want: 0},
		{name: "one past end", index: 4, count: 4, want: 0},
		{name: "far past end", index: 9, count: 4, want: 1},
		{name: "minus one wraps to last", index: -1, count: 4, want: 3},
		{name: "large negative", index: -9, count: 4, want: 3},
		{name: "exact negative multiple", index: -8, count: 4, want: 0},
		{name: "single item", index: -17, count: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.index, tt.count))
		})
	}
}

func TestNormalize_AlwaysInRange(t *testing.T) {
	for count := 1; count <= 7; count++ {
		for i := -50; i <= 50; i++ {
			got := Normalize(i, count)
			require.GreaterOrEqual(t, got, 0, "Normalize(%d, %d)", i, count)
			require.Less(t, got, count, "Normalize(%d, %d)", i, count)
		}
	}
}

func TestNewStore(t *testing.T) {
	_, err := NewStore(0)
	require.ErrorIs(t, err, ErrNoItems)

	_, err = NewStore(-3)
	require.ErrorIs(t, err, ErrNoItems)

	s, err := NewStore(4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, State{Active: 0, Direction: Forward}, s.State())
}

func TestStore_SetNormalizes(t *testing.T) {
	s, err := NewStore(4)
	require.NoError(t, err)

	assert.Equal(t, State{Active: 1, Direction: Forward}, s.Set(5, Forward))
	assert.Equal(t, State{Active: 3, Direction: Backward}, s.Set(-1, Backward))
	assert.Equal(t, State{Active: 3, Direction: Backward}, s.State())
}

func TestStore_SetCoercesDirection(t *testing.T) {
	s, err := NewStore(3)
	require.NoError(t, err)

	assert.Equal(t, Forward, s.Set(0, Direction(7)).Direction)
	assert.Equal(t, Backward, s.Set(0, Direction(0)).Direction)
	assert.Equal(t, Backward, s.Set(0, Direction(-4)).Direction)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "forward", Forward.String())
	assert.Equal(t, "backward", Backward.String())
	assert.Equal(t, "Direction(0)", Direction(0).String())
}

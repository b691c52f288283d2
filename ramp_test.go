package asciiart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRampLengths(t *testing.T) {
	assert.Len(t, RampCoarse, 10)
	assert.Len(t, RampMedium, 12)
	assert.Len(t, RampLong, 69)

	assert.Equal(t, RampCoarse, LevelCoarse.Ramp())
	assert.Equal(t, RampMedium, LevelMedium.Ramp())
	assert.Equal(t, RampLong, LevelFine.Ramp())
	assert.Equal(t, RampMedium, Level(7).Ramp())
}

func TestMapLuminance(t *testing.T) {
	tests := []struct {
		name string
		v    int
		ramp string
		want byte
	}{
		{name: "black coarse", v: 0, ramp: RampCoarse, want: '@'},
		{name: "white coarse", v: 255, ramp: RampCoarse, want: ' '},
		{name: "white medium", v: 255, ramp: RampMedium, want: ' '},
		{name: "black long", v: 0, ramp: RampLong, want: '$'},
		{name: "white long", v: 255, ramp: RampLong, want: ' '},
		// 85*9/255 == 3 exactly, 84*9/255 truncates to 2
		{name: "on boundary", v: 85, ramp: RampCoarse, want: '*'},
		{name: "below boundary", v: 84, ramp: RampCoarse, want: '#'},
		{name: "medium second", v: 24, ramp: RampMedium, want: '&'},
		{name: "medium first", v: 23, ramp: RampMedium, want: '@'},
		{name: "above range", v: 300, ramp: RampMedium, want: ' '},
		{name: "below range", v: -5, ramp: RampMedium, want: '@'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, string(tt.want), string(MapLuminance(tt.v, tt.ramp)))
		})
	}
}

func TestMapLuminanceMonotonic(t *testing.T) {
	for _, level := range []Level{LevelCoarse, LevelMedium, LevelFine} {
		t.Run(level.String(), func(t *testing.T) {
			ramp := level.Ramp()
			prev := 0
			for v := 0; v <= 255; v++ {
				idx := RampIndex(v, len(ramp))
				require.GreaterOrEqual(t, idx, prev, "index decreased at %d", v)
				require.Less(t, idx, len(ramp))
				prev = idx
			}
			assert.Equal(t, len(ramp)-1, prev)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      int
		want    Level
		wantErr bool
	}{
		{in: 0, want: LevelCoarse},
		{in: 1, want: LevelMedium},
		{in: 2, want: LevelFine},
		{in: 3, wantErr: true},
		{in: -1, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidOption)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "coarse", LevelCoarse.String())
	assert.Equal(t, "medium", LevelMedium.String())
	assert.Equal(t, "fine", LevelFine.String())
	assert.Equal(t, "Level(9)", Level(9).String())
}

func TestMapRows(t *testing.T) {
	values := []int{0, 255, 255, 0, 0, 255}

	rows := MapRows(values, 3, RampCoarse)
	assert.Equal(t, []string{"@  ", " @@"}, rows)

	assert.Nil(t, MapRows(values, 0, RampCoarse))
}

package band

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMHz(t *testing.T) {
	tests := []struct {
		freq    float64
		want    Band
		wantErr bool
	}{
		{174, III, false},
		{200, III, false},
		{230, III, false},
		{470, IV, false},
		{500, IV, false},
		{581.999, IV, false},
		{582, V, false}, // 582 MHz is the Band IV/V boundary, owned by V
		{700, V, false},
		{862, V, false},
		{173.999, 0, true},
		{230.001, 0, true},
		{300, 0, true}, // the 230-470 gap
		{469.999, 0, true},
		{862.001, 0, true},
		{-1, 0, true},
		{0, 0, true},
	}

	for _, tt := range tests {
		got, err := FromMHz(tt.freq)
		if tt.wantErr {
			assert.Error(t, err, "FromMHz(%g)", tt.freq)
			continue
		}
		require.NoError(t, err, "FromMHz(%g)", tt.freq)
		assert.Equal(t, tt.want, got, "FromMHz(%g)", tt.freq)
	}
}

func TestGroup(t *testing.T) {
	assert.Equal(t, VHF, III.Group())
	assert.Equal(t, UHF, IV.Group())
	assert.Equal(t, UHF, V.Group())
}

func TestString(t *testing.T) {
	assert.Equal(t, "III", III.String())
	assert.Equal(t, "IV", IV.String())
	assert.Equal(t, "V", V.String())
	assert.Equal(t, "VHF", VHF.String())
	assert.Equal(t, "UHF", UHF.String())
}

package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murzabaevb/dttb/pkg/band"
	"github.com/murzabaevb/dttb/pkg/model"
)

func TestCNRatioFullTable(t *testing.T) {
	mods := []model.Modulation{model.QPSK, model.QAM16, model.QAM64, model.QAM256}
	rates := []model.CodeRate{
		model.Rate1_2, model.Rate3_5, model.Rate2_3,
		model.Rate3_4, model.Rate4_5, model.Rate5_6,
	}

	// All 24 (modulation, code rate) pairs exist and are ordered sensibly:
	// Gaussian <= Ricean <= Rayleigh within a row, and the requirement
	// grows with code rate within a modulation.
	for _, m := range mods {
		var prev float64 = -1
		for _, r := range rates {
			cn, err := CNRatio(m, r)
			require.NoError(t, err, "CNRatio(%s, %s)", m, r)
			assert.LessOrEqual(t, cn.Gaussian, cn.Ricean, "%s %s", m, r)
			assert.Less(t, cn.Ricean, cn.Rayleigh, "%s %s", m, r)
			assert.Greater(t, cn.Rayleigh, prev, "%s %s", m, r)
			prev = cn.Rayleigh
		}
	}
}

func TestCNRatioSpotValues(t *testing.T) {
	cn, err := CNRatio(model.QAM256, model.Rate2_3)
	require.NoError(t, err)
	assert.Equal(t, CN{19.7, 20.0, 22.1}, cn)

	cn, err = CNRatio(model.QPSK, model.Rate1_2)
	require.NoError(t, err)
	assert.Equal(t, CN{2.4, 2.6, 3.4}, cn)

	cn, err = CNRatio(model.QAM64, model.Rate3_5)
	require.NoError(t, err)
	assert.InDelta(t, 15.8, cn.Rayleigh, 1e-12)
}

func TestChannelFor(t *testing.T) {
	assert.Equal(t, Ricean, ChannelFor(model.ModeFX))
	assert.Equal(t, Rayleigh, ChannelFor(model.ModePO))
	assert.Equal(t, Rayleigh, ChannelFor(model.ModePI))
	assert.Equal(t, Rayleigh, ChannelFor(model.ModeMO))
}

func TestForChannel(t *testing.T) {
	cn := CN{1, 2, 3}
	assert.Equal(t, 1.0, cn.ForChannel(Gaussian))
	assert.Equal(t, 2.0, cn.ForChannel(Ricean))
	assert.Equal(t, 3.0, cn.ForChannel(Rayleigh))
}

func TestAntennaGainFlatTables(t *testing.T) {
	tests := []struct {
		mode model.Mode
		b    band.Band
		want float64
	}{
		{model.ModeFX, band.III, 7},
		{model.ModeFX, band.IV, 10},
		{model.ModeFX, band.V, 12},
		{model.ModePO, band.III, -2},
		{model.ModePO, band.IV, 0},
		{model.ModePI, band.V, 0},
		{model.ModeMO, band.III, -5},
		{model.ModeMO, band.IV, -2},
		{model.ModeMO, band.V, -1},
	}

	for _, tt := range tests {
		got, err := AntennaGain(tt.mode, tt.b, model.Portable, 0)
		require.NoError(t, err, "%s %s", tt.mode, tt.b)
		assert.Equal(t, tt.want, got, "%s %s", tt.mode, tt.b)
	}
}

func TestHandheldAntennaGain(t *testing.T) {
	// Exact at anchors.
	g, err := AntennaGain(model.ModePO, band.IV, model.Handheld, 474)
	require.NoError(t, err)
	assert.InDelta(t, -12, g, 1e-12)

	g, err = AntennaGain(model.ModePO, band.V, model.Handheld, 698)
	require.NoError(t, err)
	assert.InDelta(t, -9, g, 1e-12)

	g, err = AntennaGain(model.ModePI, band.V, model.Handheld, 858)
	require.NoError(t, err)
	assert.InDelta(t, -7, g, 1e-12)

	// Clamped outside the outer anchors, still inside the UHF bands.
	g, err = AntennaGain(model.ModePO, band.IV, model.Handheld, 470)
	require.NoError(t, err)
	assert.InDelta(t, -12, g, 1e-12)

	g, err = AntennaGain(model.ModePI, band.V, model.Handheld, 862)
	require.NoError(t, err)
	assert.InDelta(t, -7, g, 1e-12)

	// Interpolated strictly between anchor values.
	g, err = AntennaGain(model.ModePO, band.V, model.Handheld, 650)
	require.NoError(t, err)
	assert.Greater(t, g, -12.0)
	assert.Less(t, g, -9.0)

	// Undefined for Band III and outside the UHF range.
	_, err = AntennaGain(model.ModePO, band.III, model.Handheld, 200)
	assert.Error(t, err)

	_, err = AntennaGain(model.ModePO, band.IV, model.Handheld, 465)
	assert.Error(t, err)
}

func TestFeederLoss(t *testing.T) {
	assert.Equal(t, 2.0, FeederLoss(model.ModeFX, band.III))
	assert.Equal(t, 3.0, FeederLoss(model.ModeFX, band.IV))
	assert.Equal(t, 5.0, FeederLoss(model.ModeFX, band.V))
	assert.Equal(t, 0.0, FeederLoss(model.ModePO, band.III))
	assert.Equal(t, 0.0, FeederLoss(model.ModePI, band.V))
	assert.Equal(t, 0.0, FeederLoss(model.ModeMO, band.IV))
}

func TestCategoryFor(t *testing.T) {
	assert.Equal(t, CategoryRooftop, CategoryFor(model.ModeFX, model.Portable, model.External))
	assert.Equal(t, CategoryAdapted, CategoryFor(model.ModeMO, model.Portable, model.Integrated))
	assert.Equal(t, CategoryExternal, CategoryFor(model.ModePO, model.Handheld, model.External))
	assert.Equal(t, CategoryIntegrated, CategoryFor(model.ModePO, model.Handheld, model.Integrated))
	assert.Equal(t, CategoryIntegrated, CategoryFor(model.ModePI, model.Portable, model.External))
}

func TestManMadeNoise(t *testing.T) {
	tests := []struct {
		env  model.Environment
		g    band.Group
		cat  Category
		want float64
	}{
		{model.Urban, band.VHF, CategoryRooftop, 2},
		{model.Urban, band.VHF, CategoryAdapted, 8},
		{model.Urban, band.VHF, CategoryExternal, 1},
		{model.Urban, band.UHF, CategoryAdapted, 1},
		{model.Urban, band.UHF, CategoryRooftop, 0},
		{model.Rural, band.VHF, CategoryRooftop, 2},
		{model.Rural, band.VHF, CategoryAdapted, 5},
		{model.Rural, band.UHF, CategoryAdapted, 0},
		{model.Rural, band.UHF, CategoryIntegrated, 0},
	}

	for _, tt := range tests {
		got, err := ManMadeNoise(tt.env, tt.g, tt.cat)
		require.NoError(t, err, "%s/%s/%s", tt.env, tt.g, tt.cat)
		assert.Equal(t, tt.want, got, "%s/%s/%s", tt.env, tt.g, tt.cat)
	}
}

func TestBuildingLoss(t *testing.T) {
	mean, sigma := BuildingLoss(model.BuildingHigh)
	assert.Equal(t, 7.0, mean)
	assert.Equal(t, 5.0, sigma)

	mean, sigma = BuildingLoss(model.BuildingMedium)
	assert.Equal(t, 11.0, mean)
	assert.Equal(t, 6.0, sigma)

	mean, sigma = BuildingLoss(model.BuildingLow)
	assert.Equal(t, 15.0, mean)
	assert.Equal(t, 7.0, sigma)
}

package planning

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murzabaevb/dttb/pkg/band"
	"github.com/murzabaevb/dttb/pkg/ge06"
	"github.com/murzabaevb/dttb/pkg/model"
	"github.com/murzabaevb/dttb/pkg/tables"
)

func fptr(v float64) *float64 { return &v }

// table12FX is the Band III fixed-rooftop reference chain of
// Rec. ITU-R BT.2033-2 Table 12: 200 MHz, 256QAM 2/3, 6.66 MHz bandwidth,
// explicit rooftop antenna (7 dBd, 2 dB feeder), no height/building terms.
func table12FX(t *testing.T, p float64) *Scenario {
	t.Helper()
	s, err := FX(200, model.Urban, model.QAM256, model.Rate2_3, Overrides{
		NoiseBWHz:           fptr(6.66e6),
		LocationProbability: fptr(p),
		AntennaGainDBd:      fptr(7),
		FeederLossDB:        fptr(2),
		HeightLossDB:        fptr(0),
		BuildingEntryLossDB: fptr(0),
		SigmaBuildingDB:     fptr(0),
	})
	require.NoError(t, err)
	return s
}

func TestTable12FixedRooftopChain(t *testing.T) {
	s := table12FX(t, 0.95)

	cn, err := s.CNRequired()
	require.NoError(t, err)
	assert.Equal(t, 20.0, cn) // Ricean column for FX

	assert.InDelta(t, -129.74, s.NoisePower(), 0.01)

	ps, err := s.MinReceiverPower()
	require.NoError(t, err)
	assert.InDelta(t, -109.74, ps, 0.01)

	aa, err := s.EffectiveAperture()
	require.NoError(t, err)
	assert.InDelta(t, 1.67, aa, 0.01)

	pfd, err := s.MinPFD()
	require.NoError(t, err)
	assert.InDelta(t, -109.41, pfd, 0.01)

	emin, err := s.MinFieldStrength()
	require.NoError(t, err)
	assert.InDelta(t, 36.39, emin, 0.01)

	pmmn, err := s.ManMadeNoise()
	require.NoError(t, err)
	assert.Equal(t, 2.0, pmmn) // urban VHF rooftop

	emed, err := s.EMed()
	require.NoError(t, err)
	assert.InDelta(t, 47.43, emed, 0.05)
}

func TestTable13FixedRooftopChain(t *testing.T) {
	// Bands IV/V column of Table 13: 650 MHz, 7.61 MHz bandwidth, 11 dBd
	// antenna with 4 dB feeder loss.
	s, err := FX(650, model.Urban, model.QAM256, model.Rate2_3, Overrides{
		LocationProbability: fptr(0.95),
		AntennaGainDBd:      fptr(11),
		FeederLossDB:        fptr(4),
		HeightLossDB:        fptr(0),
		BuildingEntryLossDB: fptr(0),
		SigmaBuildingDB:     fptr(0),
	})
	require.NoError(t, err)

	assert.Equal(t, band.V, s.Band())

	ps, err := s.MinReceiverPower()
	require.NoError(t, err)
	assert.InDelta(t, -109.16, ps, 0.01)

	emin, err := s.MinFieldStrength()
	require.NoError(t, err)
	assert.InDelta(t, 45.20, emin, 0.01)

	emed95, err := s.EMed()
	require.NoError(t, err)
	assert.InDelta(t, 54.25, emed95, 0.05)

	s70, err := s.WithLocationProbability(0.70)
	require.NoError(t, err)
	emed70, err := s70.EMed()
	require.NoError(t, err)
	assert.InDelta(t, 48.08, emed70, 0.05)
}

func TestIndoorSigmaAndLocationCorrection(t *testing.T) {
	// 650 MHz portable indoor, medium building class: Lb=11, sigma_b=6.
	s, err := PIPortable(650, model.Urban, model.QAM64, model.Rate2_3, model.BuildingMedium, Overrides{
		LocationProbability: fptr(0.95),
	})
	require.NoError(t, err)

	assert.Equal(t, 11.0, s.BuildingEntryLoss())
	assert.Equal(t, 6.0, s.SigmaBuilding())
	assert.InDelta(t, math.Sqrt(6*6+5.5*5.5), s.SigmaTotal(), 1e-12)
	assert.InDelta(t, 8.14, s.SigmaTotal(), 0.005)

	mu, err := s.Mu()
	require.NoError(t, err)
	qi, err := ge06.Qi(0.05)
	require.NoError(t, err)
	assert.InDelta(t, qi, mu, 1e-12)

	cl, err := s.LocationCorrection()
	require.NoError(t, err)
	assert.InDelta(t, qi*s.SigmaTotal(), cl, 1e-12)
}

func TestIndoorTermsVanishOutsidePIUHF(t *testing.T) {
	// Portable indoor in Band III: no building entry loss in VHF.
	s, err := PIPortable(200, model.Urban, model.QAM64, model.Rate2_3, model.BuildingMedium, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.BuildingEntryLoss())
	assert.Equal(t, 0.0, s.SigmaBuilding())
	assert.InDelta(t, 5.5, s.SigmaTotal(), 1e-12)

	// Portable outdoor in UHF: indoor terms do not apply either.
	s, err = POPortable(650, model.Urban, model.QAM64, model.Rate2_3, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.BuildingEntryLoss())
	assert.Equal(t, 0.0, s.SigmaBuilding())
}

func TestHeightLoss(t *testing.T) {
	mk := func(freq float64, mode model.Mode) *Scenario {
		p := DefaultParams()
		p.FreqMHz = freq
		p.Mode = mode
		p.Environment = model.Urban
		p.Modulation = model.QAM64
		p.CodeRate = model.Rate2_3
		s, err := New(p)
		require.NoError(t, err)
		return s
	}

	// FX takes no height loss.
	lh, err := mk(200, model.ModeFX).HeightLoss()
	require.NoError(t, err)
	assert.Equal(t, 0.0, lh)

	// Exact at the GE06 anchors.
	lh, err = mk(200, model.ModePO).HeightLoss()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, lh, 1e-12)

	lh, err = mk(500, model.ModeMO).HeightLoss()
	require.NoError(t, err)
	assert.InDelta(t, 16.0, lh, 1e-12)

	lh, err = mk(800, model.ModePI).HeightLoss()
	require.NoError(t, err)
	assert.InDelta(t, 18.0, lh, 1e-12)

	// Above 800 MHz the 500-800 segment keeps extrapolating, unlike the
	// clamped handheld antenna gain.
	lh, err = mk(862, model.ModePO).HeightLoss()
	require.NoError(t, err)
	assert.InDelta(t, 18.32, lh, 0.01)

	// Band III below the 200 MHz anchor extrapolates downward.
	lh, err = mk(174, model.ModePO).HeightLoss()
	require.NoError(t, err)
	assert.Less(t, lh, 12.0)
	assert.Greater(t, lh, 10.0)
}

func TestOverridesAlwaysWin(t *testing.T) {
	s, err := PIHandheldExternal(650, model.Rural, model.QAM16, model.Rate1_2, model.BuildingHigh, Overrides{
		FeederLossDB:        fptr(1.25),
		AntennaGainDBd:      fptr(3.5),
		HeightLossDB:        fptr(4.75),
		BuildingEntryLossDB: fptr(8.5),
		SigmaBuildingDB:     fptr(2.5),
	})
	require.NoError(t, err)

	assert.Equal(t, 1.25, s.FeederLoss())

	g, err := s.AntennaGain()
	require.NoError(t, err)
	assert.Equal(t, 3.5, g)

	lh, err := s.HeightLoss()
	require.NoError(t, err)
	assert.Equal(t, 4.75, lh)

	assert.Equal(t, 8.5, s.BuildingEntryLoss())
	assert.Equal(t, 2.5, s.SigmaBuilding())
	assert.InDelta(t, math.Sqrt(2.5*2.5+5.5*5.5), s.SigmaTotal(), 1e-12)

	// Overrides are honored even where the default would be fixed to zero:
	// a height-loss override applies to FX, an indoor override outside PI.
	s, err = FX(200, model.Urban, model.QPSK, model.Rate1_2, Overrides{
		HeightLossDB:        fptr(3),
		BuildingEntryLossDB: fptr(6),
		SigmaBuildingDB:     fptr(1),
	})
	require.NoError(t, err)

	lh, err = s.HeightLoss()
	require.NoError(t, err)
	assert.Equal(t, 3.0, lh)
	assert.Equal(t, 6.0, s.BuildingEntryLoss())
	assert.Equal(t, 1.0, s.SigmaBuilding())
}

func TestHandheldBandIIIErrorPropagates(t *testing.T) {
	s, err := POHandheldIntegrated(200, model.Urban, model.QAM64, model.Rate2_3, Overrides{})
	require.NoError(t, err) // construction is fine; the gain lookup is not

	_, err = s.AntennaGain()
	assert.Error(t, err)
	_, err = s.EffectiveAperture()
	assert.Error(t, err)
	_, err = s.EMed()
	assert.Error(t, err)
	_, err = s.Summarize()
	assert.Error(t, err)

	// An explicit gain override unblocks the whole chain.
	s, err = POHandheldIntegrated(200, model.Urban, model.QAM64, model.Rate2_3, Overrides{
		AntennaGainDBd: fptr(-10),
	})
	require.NoError(t, err)
	_, err = s.EMed()
	assert.NoError(t, err)
}

func TestConstructionValidation(t *testing.T) {
	base := func() Params {
		p := DefaultParams()
		p.FreqMHz = 650
		p.Mode = model.ModeFX
		p.Environment = model.Urban
		p.Modulation = model.QAM64
		p.CodeRate = model.Rate2_3
		return p
	}

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"frequency in the 230-470 gap", func(p *Params) { p.FreqMHz = 300 }},
		{"frequency above Band V", func(p *Params) { p.FreqMHz = 900 }},
		{"zero frequency", func(p *Params) { p.FreqMHz = 0 }},
		{"noise bandwidth too low", func(p *Params) { p.NoiseBWHz = 6.5e6 }},
		{"noise bandwidth too high", func(p *Params) { p.NoiseBWHz = 8.1e6 }},
		{"negative noise figure", func(p *Params) { p.NoiseFigureDB = -0.1 }},
		{"negative sigma_macro", func(p *Params) { p.SigmaMacroDB = -1 }},
		{"location probability too low", func(p *Params) { p.LocationProbability = 0.005 }},
		{"location probability too high", func(p *Params) { p.LocationProbability = 0.995 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(&p)
			_, err := New(p)
			assert.Error(t, err)
		})
	}

	_, err := New(base())
	assert.NoError(t, err)
}

func TestWithLocationProbability(t *testing.T) {
	s := table12FX(t, 0.70)

	s95, err := s.WithLocationProbability(0.95)
	require.NoError(t, err)

	// The receiver is untouched.
	assert.Equal(t, 0.70, s.LocationProbability())
	assert.Equal(t, 0.95, s95.LocationProbability())

	emed70, err := s.EMed()
	require.NoError(t, err)
	emed95, err := s95.EMed()
	require.NoError(t, err)
	assert.Greater(t, emed95, emed70)

	_, err = s.WithLocationProbability(0.999)
	assert.Error(t, err)
}

func TestParamsAreCopiedOut(t *testing.T) {
	gain := 5.0
	p := DefaultParams()
	p.FreqMHz = 650
	p.Mode = model.ModeFX
	p.Environment = model.Urban
	p.Modulation = model.QAM64
	p.CodeRate = model.Rate2_3
	p.AntennaGainDBd = &gain

	s, err := New(p)
	require.NoError(t, err)

	gain = 99 // mutating the caller's value must not reach the scenario
	g, err := s.AntennaGain()
	require.NoError(t, err)
	assert.Equal(t, 5.0, g)
}

func TestFactoryPrefill(t *testing.T) {
	s, err := POHandheldIntegrated(650, model.Urban, model.QAM64, model.Rate2_3, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, tables.CategoryIntegrated, s.Category())

	s, err = POHandheldExternal(650, model.Urban, model.QAM64, model.Rate2_3, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, tables.CategoryExternal, s.Category())

	s, err = MO(650, model.Urban, model.QAM64, model.Rate2_3, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, tables.CategoryAdapted, s.Category())

	s, err = FX(650, model.Urban, model.QAM64, model.Rate2_3, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, tables.CategoryRooftop, s.Category())
}

func TestSummarize(t *testing.T) {
	s := table12FX(t, 0.95)

	sum, err := s.Summarize()
	require.NoError(t, err)

	assert.Equal(t, band.III, sum.Band)
	assert.Equal(t, model.ModeFX, sum.Mode)
	assert.Equal(t, 20.0, sum.CNRequiredDB)
	assert.Equal(t, 7.0, sum.AntennaGainDBd)
	assert.Equal(t, 2.0, sum.FeederLossDB)
	assert.Equal(t, 0.0, sum.HeightLossDB)
	assert.InDelta(t, 47.43, sum.EMedDBuVPerM, 0.05)
	assert.Equal(t, tables.CategoryRooftop, sum.Category)

	rows := sum.Rows()
	require.NotEmpty(t, rows)
	assert.Equal(t, "freq_mhz", rows[0].Key)
	assert.Equal(t, "Emed_dbuV_per_m", rows[len(rows)-2].Key)
	assert.Equal(t, "mmn_category", rows[len(rows)-1].Key)

	// Every key appears exactly once.
	seen := map[string]bool{}
	for _, r := range rows {
		assert.False(t, seen[r.Key], "duplicate summary key %s", r.Key)
		seen[r.Key] = true
	}
}

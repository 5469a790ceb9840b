package planning

import (
	"fmt"
	"math"

	"github.com/murzabaevb/dttb/pkg/band"
	"github.com/murzabaevb/dttb/pkg/ge06"
	"github.com/murzabaevb/dttb/pkg/model"
	"github.com/murzabaevb/dttb/pkg/tables"
)

// Physical constants of the Attachment-1 chain.
const (
	boltzmann    = 1.38e-23  // J/K
	t0Kelvin     = 290.0     // reference noise temperature
	speedOfLight = 299792458 // m/s

	// Conversion from minimum power flux-density in dB(W/m2) to field
	// strength in dB(uV/m) for free space impedance.
	pfdToFieldStrength = 145.8
)

// Height-loss anchors for 1.5 m receive height (Table 3-3, Chapter 3 to
// Annex 2, GE06). Between 800 and 862 MHz the 500-800 segment keeps
// extrapolating; below 200 MHz the 200-500 segment does.
var heightLossAnchors = [3]struct {
	fMHz float64
	dB   float64
}{
	{200, 12},
	{500, 16},
	{800, 18},
}

func db10(x float64) float64 {
	return 10 * math.Log10(x)
}

// CNRequired returns the required C/N in dB from Table 2,
// Rec. ITU-R BT.2033-2, selecting the Ricean column for FX and the
// Rayleigh column for PO/PI/MO.
func (s *Scenario) CNRequired() (float64, error) {
	cn, err := tables.CNRatio(s.modulation, s.codeRate)
	if err != nil {
		return 0, err
	}
	return cn.ForChannel(tables.ChannelFor(s.mode)), nil
}

// NoisePower returns the receiver noise input power P_n in dBW:
// F + 10 log10(k T0 B).
func (s *Scenario) NoisePower() float64 {
	return s.noiseFigureDB + db10(boltzmann*t0Kelvin*s.noiseBWHz)
}

// MinReceiverPower returns the minimum receiver signal input power
// P_s,min in dBW.
func (s *Scenario) MinReceiverPower() (float64, error) {
	cn, err := s.CNRequired()
	if err != nil {
		return 0, err
	}
	return cn + s.NoisePower(), nil
}

// AntennaGain returns the receive antenna gain in dBd: the override when
// set, otherwise the table or interpolated default.
func (s *Scenario) AntennaGain() (float64, error) {
	if s.antennaGain.set {
		return s.antennaGain.value, nil
	}
	return tables.AntennaGain(s.mode, s.band, s.receiverType, s.freqMHz)
}

// FeederLoss returns the feeder loss L_f in dB.
func (s *Scenario) FeederLoss() float64 {
	return s.feederLoss.or(tables.FeederLoss(s.mode, s.band))
}

// EffectiveAperture returns the effective antenna aperture A_a in dB(m2):
// G + 10 log10(1.64 lambda^2 / 4 pi).
func (s *Scenario) EffectiveAperture() (float64, error) {
	g, err := s.AntennaGain()
	if err != nil {
		return 0, err
	}
	lambda := speedOfLight / (s.freqMHz * 1e6)
	return g + db10(1.64*lambda*lambda/(4*math.Pi)), nil
}

// MinPFD returns the minimum power flux-density Phi_min in dB(W/m2):
// P_s,min - A_a + L_f.
func (s *Scenario) MinPFD() (float64, error) {
	ps, err := s.MinReceiverPower()
	if err != nil {
		return 0, err
	}
	aa, err := s.EffectiveAperture()
	if err != nil {
		return 0, err
	}
	return ps - aa + s.FeederLoss(), nil
}

// MinFieldStrength returns the minimum equivalent field strength E_min in
// dB(uV/m).
func (s *Scenario) MinFieldStrength() (float64, error) {
	pfd, err := s.MinPFD()
	if err != nil {
		return 0, err
	}
	return pfd + pfdToFieldStrength, nil
}

// Category returns the man-made-noise receiver category derived from the
// reception scenario.
func (s *Scenario) Category() tables.Category {
	return tables.CategoryFor(s.mode, s.receiverType, s.antennaType)
}

// ManMadeNoise returns the man-made-noise allowance P_mmn in dB.
func (s *Scenario) ManMadeNoise() (float64, error) {
	return tables.ManMadeNoise(s.environment, s.band.Group(), s.Category())
}

// HeightLoss returns the height loss L_h in dB for a 1.5 m receive height.
// Fixed rooftop reception takes no height loss; the other modes
// interpolate the GE06 Table 3-3 anchors over log frequency.
func (s *Scenario) HeightLoss() (float64, error) {
	if s.heightLoss.set {
		return s.heightLoss.value, nil
	}
	if s.mode == model.ModeFX {
		return 0, nil
	}

	f := s.freqMHz
	if f < 174 || f > 862 {
		return 0, fmt.Errorf("height loss is only defined for Bands III-V (174-230 / 470-862 MHz); got %g MHz", f)
	}

	lo, mid, hi := heightLossAnchors[0], heightLossAnchors[1], heightLossAnchors[2]
	if f <= mid.fMHz {
		return ge06.LogInterp(f, lo.fMHz, lo.dB, mid.fMHz, mid.dB), nil
	}
	return ge06.LogInterp(f, mid.fMHz, mid.dB, hi.fMHz, hi.dB), nil
}

// indoorUHF reports whether building entry loss applies: portable indoor
// reception in the UHF bands.
func (s *Scenario) indoorUHF() bool {
	return s.mode == model.ModePI && s.band.Group() == band.UHF
}

// BuildingEntryLoss returns the mean building entry loss L_b in dB. It is
// zero outside portable-indoor UHF reception unless overridden.
func (s *Scenario) BuildingEntryLoss() float64 {
	if s.buildingLoss.set {
		return s.buildingLoss.value
	}
	if !s.indoorUHF() {
		return 0
	}
	mean, _ := tables.BuildingLoss(s.buildingClass)
	return mean
}

// SigmaBuilding returns the building-loss standard deviation sigma_b in dB,
// zero outside portable-indoor UHF reception unless overridden.
func (s *Scenario) SigmaBuilding() float64 {
	if s.sigmaBld.set {
		return s.sigmaBld.value
	}
	if !s.indoorUHF() {
		return 0
	}
	_, sigma := tables.BuildingLoss(s.buildingClass)
	return sigma
}

// SigmaTotal returns the total log-normal standard deviation sigma_t in dB:
// sqrt(sigma_b^2 + sigma_m^2).
func (s *Scenario) SigmaTotal() float64 {
	sb := s.SigmaBuilding()
	return math.Sqrt(sb*sb + s.sigmaMacroDB*s.sigmaMacroDB)
}

// Mu returns the location-probability distribution factor mu = Qi(1 - p).
func (s *Scenario) Mu() (float64, error) {
	return ge06.Qi(1 - s.locationProbability)
}

// LocationCorrection returns the location correction factor C_l in dB:
// mu * sigma_t.
func (s *Scenario) LocationCorrection() (float64, error) {
	mu, err := s.Mu()
	if err != nil {
		return 0, err
	}
	return mu * s.SigmaTotal(), nil
}

// EMed returns the minimum median equivalent field strength E_med in
// dB(uV/m):
//
//	FX:     E_min + P_mmn + C_l
//	PO, MO: E_min + P_mmn + C_l + L_h
//	PI:     E_min + P_mmn + C_l + L_h + L_b
func (s *Scenario) EMed() (float64, error) {
	emin, err := s.MinFieldStrength()
	if err != nil {
		return 0, err
	}
	pmmn, err := s.ManMadeNoise()
	if err != nil {
		return 0, err
	}
	cl, err := s.LocationCorrection()
	if err != nil {
		return 0, err
	}

	emed := emin + pmmn + cl
	if s.mode == model.ModeFX {
		return emed, nil
	}

	lh, err := s.HeightLoss()
	if err != nil {
		return 0, err
	}
	emed += lh
	if s.mode == model.ModePI {
		emed += s.BuildingEntryLoss()
	}
	return emed, nil
}

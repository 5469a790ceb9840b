// Package planning implements the DVB-T2 minimum field-strength
// calculation chain of Attachment 1 to Annex 1, Rec. ITU-R BT.2033-2.
//
// A Scenario is an immutable description of one receiving situation.
// Every derived quantity is a pure function of the scenario; evaluating a
// variant (for example another location probability) produces a new
// Scenario instead of mutating the old one, so distinct scenarios can be
// queried concurrently without locking.
package planning

import (
	"fmt"

	"github.com/murzabaevb/dttb/pkg/band"
	"github.com/murzabaevb/dttb/pkg/model"
)

// Params collects the inputs of a receiving scenario. The pointer fields
// are optional overrides: nil selects the table or model default, a
// non-nil value wins unconditionally over every derived default.
type Params struct {
	FreqMHz     float64
	Mode        model.Mode
	Environment model.Environment
	Modulation  model.Modulation
	CodeRate    model.CodeRate

	ReceiverType  model.ReceiverType  // PO/PI only
	AntennaType   model.AntennaType   // PO/PI handheld only
	BuildingClass model.BuildingClass // PI only

	NoiseFigureDB       float64
	NoiseBWHz           float64
	SigmaMacroDB        float64
	LocationProbability float64

	FeederLossDB        *float64
	AntennaGainDBd      *float64
	HeightLossDB        *float64
	BuildingEntryLossDB *float64
	SigmaBuildingDB     *float64
}

// DefaultParams returns the reference receiver of Rec. ITU-R BT.2033-2:
// 6 dB noise figure, 7.61 MHz noise bandwidth (8 MHz DVB-T2 channel),
// 5.5 dB macro-scale deviation and 70% location probability.
func DefaultParams() Params {
	return Params{
		ReceiverType:        model.Portable,
		AntennaType:         model.External,
		BuildingClass:       model.BuildingLow,
		NoiseFigureDB:       6.0,
		NoiseBWHz:           7.61e6,
		SigmaMacroDB:        5.5,
		LocationProbability: 0.7,
	}
}

// optional is an override that either carries a value or defers to a
// computed default.
type optional struct {
	value float64
	set   bool
}

func asOptional(p *float64) optional {
	if p == nil {
		return optional{}
	}
	return optional{value: *p, set: true}
}

// or returns the override value when set, otherwise the default.
func (o optional) or(def float64) float64 {
	if o.set {
		return o.value
	}
	return def
}

// Scenario is a validated, immutable receiving scenario. Construct it with
// New or one of the mode-specific factory constructors.
type Scenario struct {
	freqMHz     float64
	band        band.Band
	mode        model.Mode
	environment model.Environment
	modulation  model.Modulation
	codeRate    model.CodeRate

	receiverType  model.ReceiverType
	antennaType   model.AntennaType
	buildingClass model.BuildingClass

	noiseFigureDB       float64
	noiseBWHz           float64
	sigmaMacroDB        float64
	locationProbability float64

	feederLoss   optional
	antennaGain  optional
	heightLoss   optional
	buildingLoss optional
	sigmaBld     optional
}

// Accepted noise bandwidth range in Hz.
const (
	minNoiseBWHz = 6.6e6
	maxNoiseBWHz = 8.0e6
)

// New validates the parameters and returns an immutable Scenario. Override
// values are copied out of the pointers, so callers may reuse or mutate
// the Params afterwards without affecting the scenario.
func New(p Params) (*Scenario, error) {
	b, err := band.FromMHz(p.FreqMHz)
	if err != nil {
		return nil, err
	}
	if p.NoiseBWHz < minNoiseBWHz || p.NoiseBWHz > maxNoiseBWHz {
		return nil, fmt.Errorf("noise bandwidth must be within %.1e..%.1e Hz, got %g", minNoiseBWHz, maxNoiseBWHz, p.NoiseBWHz)
	}
	if p.NoiseFigureDB < 0 {
		return nil, fmt.Errorf("noise figure must be >= 0 dB, got %g", p.NoiseFigureDB)
	}
	if p.SigmaMacroDB < 0 {
		return nil, fmt.Errorf("sigma_macro must be >= 0 dB, got %g", p.SigmaMacroDB)
	}
	if p.LocationProbability < 0.01 || p.LocationProbability > 0.99 {
		return nil, fmt.Errorf("location probability must be in [0.01, 0.99], got %g", p.LocationProbability)
	}

	return &Scenario{
		freqMHz:             p.FreqMHz,
		band:                b,
		mode:                p.Mode,
		environment:         p.Environment,
		modulation:          p.Modulation,
		codeRate:            p.CodeRate,
		receiverType:        p.ReceiverType,
		antennaType:         p.AntennaType,
		buildingClass:       p.BuildingClass,
		noiseFigureDB:       p.NoiseFigureDB,
		noiseBWHz:           p.NoiseBWHz,
		sigmaMacroDB:        p.SigmaMacroDB,
		locationProbability: p.LocationProbability,
		feederLoss:          asOptional(p.FeederLossDB),
		antennaGain:         asOptional(p.AntennaGainDBd),
		heightLoss:          asOptional(p.HeightLossDB),
		buildingLoss:        asOptional(p.BuildingEntryLossDB),
		sigmaBld:            asOptional(p.SigmaBuildingDB),
	}, nil
}

// WithLocationProbability returns a copy of the scenario evaluated at
// another location probability. The receiver is left untouched.
func (s *Scenario) WithLocationProbability(p float64) (*Scenario, error) {
	if p < 0.01 || p > 0.99 {
		return nil, fmt.Errorf("location probability must be in [0.01, 0.99], got %g", p)
	}
	c := *s
	c.locationProbability = p
	return &c, nil
}

// FreqMHz returns the operating frequency in MHz.
func (s *Scenario) FreqMHz() float64 { return s.freqMHz }

// Band returns the broadcast band the frequency resolved to.
func (s *Scenario) Band() band.Band { return s.band }

// Mode returns the reception mode.
func (s *Scenario) Mode() model.Mode { return s.mode }

// Environment returns the man-made-noise environment.
func (s *Scenario) Environment() model.Environment { return s.environment }

// LocationProbability returns the location probability in [0.01, 0.99].
func (s *Scenario) LocationProbability() float64 { return s.locationProbability }

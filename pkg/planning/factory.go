package planning

import "github.com/murzabaevb/dttb/pkg/model"

// Overrides bundles the optional knobs a caller may set on top of a
// factory constructor. The zero value keeps every reference-receiver
// default. Pointer fields that stay nil defer to the computed defaults.
type Overrides struct {
	NoiseFigureDB       *float64
	NoiseBWHz           *float64
	SigmaMacroDB        *float64
	LocationProbability *float64

	FeederLossDB        *float64
	AntennaGainDBd      *float64
	HeightLossDB        *float64
	BuildingEntryLossDB *float64
	SigmaBuildingDB     *float64
}

func (ov Overrides) apply(p Params) Params {
	if ov.NoiseFigureDB != nil {
		p.NoiseFigureDB = *ov.NoiseFigureDB
	}
	if ov.NoiseBWHz != nil {
		p.NoiseBWHz = *ov.NoiseBWHz
	}
	if ov.SigmaMacroDB != nil {
		p.SigmaMacroDB = *ov.SigmaMacroDB
	}
	if ov.LocationProbability != nil {
		p.LocationProbability = *ov.LocationProbability
	}
	p.FeederLossDB = ov.FeederLossDB
	p.AntennaGainDBd = ov.AntennaGainDBd
	p.HeightLossDB = ov.HeightLossDB
	p.BuildingEntryLossDB = ov.BuildingEntryLossDB
	p.SigmaBuildingDB = ov.SigmaBuildingDB
	return p
}

func build(mode model.Mode, freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, rt model.ReceiverType, at model.AntennaType, class model.BuildingClass, ov Overrides) (*Scenario, error) {
	p := DefaultParams()
	p.FreqMHz = freqMHz
	p.Mode = mode
	p.Environment = env
	p.Modulation = mod
	p.CodeRate = rate
	p.ReceiverType = rt
	p.AntennaType = at
	p.BuildingClass = class
	return New(ov.apply(p))
}

// FX returns a fixed rooftop reception scenario.
func FX(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, ov Overrides) (*Scenario, error) {
	return build(model.ModeFX, freqMHz, env, mod, rate, model.Portable, model.External, model.BuildingLow, ov)
}

// POPortable returns a portable outdoor scenario with a portable
// (non-handheld) receiver.
func POPortable(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, ov Overrides) (*Scenario, error) {
	return build(model.ModePO, freqMHz, env, mod, rate, model.Portable, model.External, model.BuildingLow, ov)
}

// POHandheldIntegrated returns a portable outdoor scenario with a handheld
// receiver and integrated antenna.
func POHandheldIntegrated(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, ov Overrides) (*Scenario, error) {
	return build(model.ModePO, freqMHz, env, mod, rate, model.Handheld, model.Integrated, model.BuildingLow, ov)
}

// POHandheldExternal returns a portable outdoor scenario with a handheld
// receiver and external antenna.
func POHandheldExternal(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, ov Overrides) (*Scenario, error) {
	return build(model.ModePO, freqMHz, env, mod, rate, model.Handheld, model.External, model.BuildingLow, ov)
}

// PIPortable returns a portable indoor scenario with a portable
// (non-handheld) receiver.
func PIPortable(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, class model.BuildingClass, ov Overrides) (*Scenario, error) {
	return build(model.ModePI, freqMHz, env, mod, rate, model.Portable, model.Integrated, class, ov)
}

// PIHandheldIntegrated returns a portable indoor scenario with a handheld
// receiver and integrated antenna.
func PIHandheldIntegrated(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, class model.BuildingClass, ov Overrides) (*Scenario, error) {
	return build(model.ModePI, freqMHz, env, mod, rate, model.Handheld, model.Integrated, class, ov)
}

// PIHandheldExternal returns a portable indoor scenario with a handheld
// receiver and external antenna.
func PIHandheldExternal(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, class model.BuildingClass, ov Overrides) (*Scenario, error) {
	return build(model.ModePI, freqMHz, env, mod, rate, model.Handheld, model.External, class, ov)
}

// MO returns a mobile reception scenario with an adapted antenna.
func MO(freqMHz float64, env model.Environment, mod model.Modulation, rate model.CodeRate, ov Overrides) (*Scenario, error) {
	return build(model.ModeMO, freqMHz, env, mod, rate, model.Portable, model.Integrated, model.BuildingLow, ov)
}

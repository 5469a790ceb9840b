package main

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/murzabaevb/dttb/pkg/config"
	"github.com/murzabaevb/dttb/pkg/model"
	"github.com/murzabaevb/dttb/pkg/planning"
)

// optFloat is a float flag that remembers whether it was set, so an unset
// override can defer to the standard-table default.
type optFloat struct {
	v *float64
}

func (o *optFloat) String() string {
	if o == nil || o.v == nil {
		return ""
	}
	return strconv.FormatFloat(*o.v, 'g', -1, 64)
}

func (o *optFloat) Set(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	o.v = &f
	return nil
}

// options collects the shared flags of the summary/emed/debug subcommands.
type options struct {
	scenarioPath string
	logLevel     string

	mode            string
	freqMHz         float64
	environment     string
	modulation      string
	codeRate        string
	receiverType    string
	handheldAntenna string
	buildingClass   string

	noiseFigure  optFloat
	noiseBW      optFloat
	sigmaMacro   optFloat
	locationProb optFloat
	feederLoss   optFloat
	antGain      optFloat
	heightLoss   optFloat
	buildingLoss optFloat
	sigmaBld     optFloat
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.scenarioPath, "scenario", "", "Load the scenario from a YAML file instead of flags")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	fs.StringVar(&o.mode, "mode", "", "Reception mode: FX, PO, PI or MO")
	fs.Float64Var(&o.freqMHz, "freq", 0, "Frequency in MHz (Bands III, IV or V)")
	fs.StringVar(&o.environment, "environment", "", "Environment: urban or rural")
	fs.StringVar(&o.modulation, "modulation", "", "Modulation: QPSK, 16QAM, 64QAM or 256QAM")
	fs.StringVar(&o.codeRate, "code-rate", "", "Code rate: 1/2, 3/5, 2/3, 3/4, 4/5 or 5/6")
	fs.StringVar(&o.receiverType, "receiver-type", "portable", "Receiver type for PO/PI: portable or handheld")
	fs.StringVar(&o.handheldAntenna, "handheld-antenna", "integrated", "Handheld antenna type for PO/PI: integrated or external")
	fs.StringVar(&o.buildingClass, "building-class", "medium", "Building class for PI: high, medium or low")

	fs.Var(&o.noiseFigure, "noise-figure", "Override receiver noise figure F (dB)")
	fs.Var(&o.noiseBW, "noise-bw", "Override receiver noise bandwidth B (Hz)")
	fs.Var(&o.sigmaMacro, "sigma-macro", "Override macro-scale sigma_m (dB)")
	fs.Var(&o.locationProb, "location-probability", "Location probability (0.01-0.99)")
	fs.Var(&o.feederLoss, "feeder-loss", "Override feeder loss Lf (dB)")
	fs.Var(&o.antGain, "ant-gain", "Override antenna gain Gd (dBd)")
	fs.Var(&o.heightLoss, "height-loss", "Override height loss Lh (dB)")
	fs.Var(&o.buildingLoss, "building-loss", "Override building entry loss Lb (dB)")
	fs.Var(&o.sigmaBld, "sigma-building", "Override building sigma_b (dB)")
}

func (o *options) overrides() planning.Overrides {
	return planning.Overrides{
		NoiseFigureDB:       o.noiseFigure.v,
		NoiseBWHz:           o.noiseBW.v,
		SigmaMacroDB:        o.sigmaMacro.v,
		LocationProbability: o.locationProb.v,
		FeederLossDB:        o.feederLoss.v,
		AntennaGainDBd:      o.antGain.v,
		HeightLossDB:        o.heightLoss.v,
		BuildingEntryLossDB: o.buildingLoss.v,
		SigmaBuildingDB:     o.sigmaBld.v,
	}
}

// buildScenario maps the parsed flags (or the YAML scenario file) onto the
// matching factory constructor of pkg/planning.
func buildScenario(o *options) (*planning.Scenario, error) {
	if o.scenarioPath != "" {
		sc, err := config.Load(o.scenarioPath)
		if err != nil {
			return nil, err
		}
		return planning.New(sc.Params())
	}

	if o.mode == "" || o.environment == "" || o.modulation == "" || o.codeRate == "" {
		return nil, fmt.Errorf("-mode, -freq, -environment, -modulation and -code-rate are required (or use -scenario)")
	}

	mode, err := model.ParseMode(o.mode)
	if err != nil {
		return nil, err
	}
	env, err := model.ParseEnvironment(o.environment)
	if err != nil {
		return nil, err
	}
	mod, err := model.ParseModulation(o.modulation)
	if err != nil {
		return nil, err
	}
	rate, err := model.ParseCodeRate(o.codeRate)
	if err != nil {
		return nil, err
	}
	rt, err := model.ParseReceiverType(o.receiverType)
	if err != nil {
		return nil, err
	}
	at, err := model.ParseAntennaType(o.handheldAntenna)
	if err != nil {
		return nil, err
	}
	class, err := model.ParseBuildingClass(o.buildingClass)
	if err != nil {
		return nil, err
	}

	ov := o.overrides()

	switch mode {
	case model.ModeFX:
		return planning.FX(o.freqMHz, env, mod, rate, ov)
	case model.ModeMO:
		return planning.MO(o.freqMHz, env, mod, rate, ov)
	case model.ModePO:
		if rt == model.Handheld {
			if at == model.External {
				return planning.POHandheldExternal(o.freqMHz, env, mod, rate, ov)
			}
			return planning.POHandheldIntegrated(o.freqMHz, env, mod, rate, ov)
		}
		return planning.POPortable(o.freqMHz, env, mod, rate, ov)
	case model.ModePI:
		if rt == model.Handheld {
			if at == model.External {
				return planning.PIHandheldExternal(o.freqMHz, env, mod, rate, class, ov)
			}
			return planning.PIHandheldIntegrated(o.freqMHz, env, mod, rate, class, ov)
		}
		return planning.PIPortable(o.freqMHz, env, mod, rate, class, ov)
	}
	return nil, fmt.Errorf("unsupported reception mode %s", mode)
}

package planning

import (
	"fmt"

	"github.com/murzabaevb/dttb/pkg/band"
	"github.com/murzabaevb/dttb/pkg/model"
	"github.com/murzabaevb/dttb/pkg/tables"
)

// Summary carries every input and derived quantity of one evaluation,
// laid out so that Rows follows the line items of Tables 12 and 13 of
// Rec. ITU-R BT.2033-2 for direct comparison against published values.
type Summary struct {
	// Scenario identification.
	FreqMHz       float64
	Band          band.Band
	Mode          model.Mode
	Environment   model.Environment
	ReceiverType  model.ReceiverType
	AntennaType   model.AntennaType
	BuildingClass model.BuildingClass
	Modulation    model.Modulation
	CodeRate      model.CodeRate

	// System performance and receiver noise.
	CNRequiredDB        float64
	NoiseFigureDB       float64
	NoiseBWHz           float64
	NoisePowerDBW       float64
	MinReceiverPowerDBW float64

	// Antenna and feeder.
	FeederLossDB          float64
	AntennaGainDBd        float64
	EffectiveApertureDBm2 float64

	// Power flux-density and field strength.
	MinPFDDBWPerM2 float64
	EMinDBuVPerM   float64

	// Allowances and losses.
	ManMadeNoiseDB      float64
	HeightLossDB        float64
	BuildingEntryLossDB float64

	// Statistical parameters and location correction.
	SigmaBuildingDB      float64
	SigmaMacroDB         float64
	SigmaTotalDB         float64
	LocationProbability  float64
	Mu                   float64
	LocationCorrectionDB float64

	// Final planning value.
	EMedDBuVPerM float64

	// Diagnostic: which man-made-noise category was applied.
	Category tables.Category
}

// Summarize evaluates the complete chain. Any failing step aborts the
// summary with that step's error.
func (s *Scenario) Summarize() (*Summary, error) {
	cn, err := s.CNRequired()
	if err != nil {
		return nil, err
	}
	psMin, err := s.MinReceiverPower()
	if err != nil {
		return nil, err
	}
	gain, err := s.AntennaGain()
	if err != nil {
		return nil, err
	}
	aa, err := s.EffectiveAperture()
	if err != nil {
		return nil, err
	}
	pfd, err := s.MinPFD()
	if err != nil {
		return nil, err
	}
	emin, err := s.MinFieldStrength()
	if err != nil {
		return nil, err
	}
	pmmn, err := s.ManMadeNoise()
	if err != nil {
		return nil, err
	}
	lh, err := s.HeightLoss()
	if err != nil {
		return nil, err
	}
	mu, err := s.Mu()
	if err != nil {
		return nil, err
	}
	cl, err := s.LocationCorrection()
	if err != nil {
		return nil, err
	}
	emed, err := s.EMed()
	if err != nil {
		return nil, err
	}

	return &Summary{
		FreqMHz:       s.freqMHz,
		Band:          s.band,
		Mode:          s.mode,
		Environment:   s.environment,
		ReceiverType:  s.receiverType,
		AntennaType:   s.antennaType,
		BuildingClass: s.buildingClass,
		Modulation:    s.modulation,
		CodeRate:      s.codeRate,

		CNRequiredDB:        cn,
		NoiseFigureDB:       s.noiseFigureDB,
		NoiseBWHz:           s.noiseBWHz,
		NoisePowerDBW:       s.NoisePower(),
		MinReceiverPowerDBW: psMin,

		FeederLossDB:          s.FeederLoss(),
		AntennaGainDBd:        gain,
		EffectiveApertureDBm2: aa,

		MinPFDDBWPerM2: pfd,
		EMinDBuVPerM:   emin,

		ManMadeNoiseDB:      pmmn,
		HeightLossDB:        lh,
		BuildingEntryLossDB: s.BuildingEntryLoss(),

		SigmaBuildingDB:      s.SigmaBuilding(),
		SigmaMacroDB:         s.sigmaMacroDB,
		SigmaTotalDB:         s.SigmaTotal(),
		LocationProbability:  s.locationProbability,
		Mu:                   mu,
		LocationCorrectionDB: cl,

		EMedDBuVPerM: emed,

		Category: s.Category(),
	}, nil
}

// Row is one key/value line of the textual summary.
type Row struct {
	Key   string
	Value string
}

// Rows returns the summary as ordered key/value text lines mirroring the
// Table 12/13 layout.
func (sum *Summary) Rows() []Row {
	dB := func(v float64) string { return fmt.Sprintf("%.2f", v) }
	return []Row{
		{"freq_mhz", fmt.Sprintf("%g", sum.FreqMHz)},
		{"band", sum.Band.String()},
		{"reception_mode", sum.Mode.String()},
		{"environment", sum.Environment.String()},
		{"receiver_type", sum.ReceiverType.String()},
		{"handheld_antenna_type", sum.AntennaType.String()},
		{"building_class", sum.BuildingClass.String()},
		{"modulation", sum.Modulation.String()},
		{"code_rate", sum.CodeRate.String()},

		{"C/N_required_dB", dB(sum.CNRequiredDB)},
		{"noise_figure_db", fmt.Sprintf("%g", sum.NoiseFigureDB)},
		{"noise_bw_hz", fmt.Sprintf("%g", sum.NoiseBWHz)},
		{"Pn_dbw", dB(sum.NoisePowerDBW)},
		{"Ps_min_dbw", dB(sum.MinReceiverPowerDBW)},

		{"Lf_db", dB(sum.FeederLossDB)},
		{"G_dbd", dB(sum.AntennaGainDBd)},
		{"Aa_dbm2", dB(sum.EffectiveApertureDBm2)},

		{"phi_min_dbw_per_m2", dB(sum.MinPFDDBWPerM2)},
		{"Emin_dbuV_per_m", dB(sum.EMinDBuVPerM)},

		{"Pmmn_db", dB(sum.ManMadeNoiseDB)},
		{"Lh_db", dB(sum.HeightLossDB)},
		{"Lb_db", dB(sum.BuildingEntryLossDB)},

		{"sigma_b_db", dB(sum.SigmaBuildingDB)},
		{"sigma_m_db", dB(sum.SigmaMacroDB)},
		{"sigma_total_db", dB(sum.SigmaTotalDB)},
		{"location_probability", fmt.Sprintf("%g", sum.LocationProbability)},
		{"mu", fmt.Sprintf("%.3f", sum.Mu)},
		{"Cl_db", dB(sum.LocationCorrectionDB)},

		{"Emed_dbuV_per_m", dB(sum.EMedDBuVPerM)},

		{"mmn_category", sum.Category.String()},
	}
}

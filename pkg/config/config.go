// Package config loads receiving scenarios from YAML files for the CLI.
// A scenario file uses the same spellings as the command-line flags; unset
// optional fields defer to the table and model defaults of pkg/planning.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/murzabaevb/dttb/pkg/model"
	"github.com/murzabaevb/dttb/pkg/planning"
)

// Scenario is the YAML shape of one receiving scenario. Pointer fields are
// optional; nil keeps the reference-receiver or table default.
type Scenario struct {
	FreqMHz     float64           `yaml:"freq_mhz"`
	Mode        model.Mode        `yaml:"mode"`
	Environment model.Environment `yaml:"environment"`
	Modulation  model.Modulation  `yaml:"modulation"`
	CodeRate    model.CodeRate    `yaml:"code_rate"`

	ReceiverType    *model.ReceiverType  `yaml:"receiver_type,omitempty"`
	HandheldAntenna *model.AntennaType   `yaml:"handheld_antenna,omitempty"`
	BuildingClass   *model.BuildingClass `yaml:"building_class,omitempty"`

	NoiseFigureDB       *float64 `yaml:"noise_figure_db,omitempty"`
	NoiseBWHz           *float64 `yaml:"noise_bw_hz,omitempty"`
	SigmaMacroDB        *float64 `yaml:"sigma_macro_db,omitempty"`
	LocationProbability *float64 `yaml:"location_probability,omitempty"`

	FeederLossDB        *float64 `yaml:"feeder_loss_db,omitempty"`
	AntennaGainDBd      *float64 `yaml:"ant_gain_dbd,omitempty"`
	HeightLossDB        *float64 `yaml:"height_loss_db,omitempty"`
	BuildingEntryLossDB *float64 `yaml:"building_entry_loss_db,omitempty"`
	SigmaBuildingDB     *float64 `yaml:"sigma_building_db,omitempty"`
}

// Params maps the scenario file onto planning parameters, starting from
// the reference-receiver defaults.
func (sc *Scenario) Params() planning.Params {
	p := planning.DefaultParams()
	p.FreqMHz = sc.FreqMHz
	p.Mode = sc.Mode
	p.Environment = sc.Environment
	p.Modulation = sc.Modulation
	p.CodeRate = sc.CodeRate

	if sc.ReceiverType != nil {
		p.ReceiverType = *sc.ReceiverType
	}
	if sc.HandheldAntenna != nil {
		p.AntennaType = *sc.HandheldAntenna
	}
	if sc.BuildingClass != nil {
		p.BuildingClass = *sc.BuildingClass
	}
	if sc.NoiseFigureDB != nil {
		p.NoiseFigureDB = *sc.NoiseFigureDB
	}
	if sc.NoiseBWHz != nil {
		p.NoiseBWHz = *sc.NoiseBWHz
	}
	if sc.SigmaMacroDB != nil {
		p.SigmaMacroDB = *sc.SigmaMacroDB
	}
	if sc.LocationProbability != nil {
		p.LocationProbability = *sc.LocationProbability
	}

	p.FeederLossDB = sc.FeederLossDB
	p.AntennaGainDBd = sc.AntennaGainDBd
	p.HeightLossDB = sc.HeightLossDB
	p.BuildingEntryLossDB = sc.BuildingEntryLossDB
	p.SigmaBuildingDB = sc.SigmaBuildingDB
	return p
}

// Parse decodes a scenario document. Unknown keys are rejected so a typo
// in an override name cannot silently fall back to a default.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	return &sc, nil
}

// Load reads and decodes a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// defaultScenario is the template written by GenerateDefault.
const defaultScenario = `# DVB-T2 receiving scenario.
#
# mode: FX (fixed rooftop), PO (portable outdoor), PI (portable indoor),
#       MO (mobile).
freq_mhz: 650
mode: FX
environment: urban
modulation: 256QAM
code_rate: "2/3"

# PO/PI receiver options.
#receiver_type: portable       # portable | handheld
#handheld_antenna: integrated  # integrated | external
#building_class: medium        # PI only: high | medium | low

# Receiver chain; defaults are the BT.2033-2 reference receiver.
#noise_figure_db: 6.0
#noise_bw_hz: 7.61e6
#sigma_macro_db: 5.5
#location_probability: 0.95

# Optional overrides; when unset the standard tables apply.
#feeder_loss_db: 4.0
#ant_gain_dbd: 11.0
#height_loss_db: 0.0
#building_entry_loss_db: 0.0
#sigma_building_db: 0.0
`

// GenerateDefault writes a commented example scenario file, leaving an
// existing file untouched.
func GenerateDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(defaultScenario), 0o644); err != nil {
		return fmt.Errorf("failed to write scenario file: %w", err)
	}
	return nil
}

// Package model defines the closed enumerations shared by the DVB-T2
// planning calculator: reception mode, environment, modulation, code rate,
// receiver and antenna types, and building class. Every enum offers a
// String form matching the notation of Rec. ITU-R BT.2033-2 and a Parse
// function returning a descriptive error for unknown input.
package model

import (
	"fmt"
	"strings"
)

// Mode is the reception scenario.
type Mode int

const (
	ModeFX Mode = iota // fixed rooftop
	ModePO             // portable outdoor
	ModePI             // portable indoor
	ModeMO             // mobile
)

func (m Mode) String() string {
	switch m {
	case ModeFX:
		return "FX"
	case ModePO:
		return "PO"
	case ModePI:
		return "PI"
	case ModeMO:
		return "MO"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts the BT.2033-2 mode abbreviations, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FX":
		return ModeFX, nil
	case "PO":
		return ModePO, nil
	case "PI":
		return ModePI, nil
	case "MO":
		return ModeMO, nil
	}
	return 0, fmt.Errorf("unknown reception mode %q (want FX, PO, PI or MO)", s)
}

// Environment selects the man-made-noise environment.
type Environment int

const (
	Urban Environment = iota
	Rural
)

func (e Environment) String() string {
	switch e {
	case Urban:
		return "urban"
	case Rural:
		return "rural"
	}
	return fmt.Sprintf("Environment(%d)", int(e))
}

func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "urban":
		return Urban, nil
	case "rural":
		return Rural, nil
	}
	return 0, fmt.Errorf("unknown environment %q (want urban or rural)", s)
}

// Modulation is the DVB-T2 constellation.
type Modulation int

const (
	QPSK Modulation = iota
	QAM16
	QAM64
	QAM256
)

func (m Modulation) String() string {
	switch m {
	case QPSK:
		return "QPSK"
	case QAM16:
		return "16QAM"
	case QAM64:
		return "64QAM"
	case QAM256:
		return "256QAM"
	}
	return fmt.Sprintf("Modulation(%d)", int(m))
}

func ParseModulation(s string) (Modulation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "QPSK":
		return QPSK, nil
	case "16QAM", "16-QAM":
		return QAM16, nil
	case "64QAM", "64-QAM":
		return QAM64, nil
	case "256QAM", "256-QAM":
		return QAM256, nil
	}
	return 0, fmt.Errorf("unknown modulation %q (want QPSK, 16QAM, 64QAM or 256QAM)", s)
}

// CodeRate is the FEC code rate.
type CodeRate int

const (
	Rate1_2 CodeRate = iota
	Rate3_5
	Rate2_3
	Rate3_4
	Rate4_5
	Rate5_6
)

func (r CodeRate) String() string {
	switch r {
	case Rate1_2:
		return "1/2"
	case Rate3_5:
		return "3/5"
	case Rate2_3:
		return "2/3"
	case Rate3_4:
		return "3/4"
	case Rate4_5:
		return "4/5"
	case Rate5_6:
		return "5/6"
	}
	return fmt.Sprintf("CodeRate(%d)", int(r))
}

func ParseCodeRate(s string) (CodeRate, error) {
	switch strings.TrimSpace(s) {
	case "1/2":
		return Rate1_2, nil
	case "3/5":
		return Rate3_5, nil
	case "2/3":
		return Rate2_3, nil
	case "3/4":
		return Rate3_4, nil
	case "4/5":
		return Rate4_5, nil
	case "5/6":
		return Rate5_6, nil
	}
	return 0, fmt.Errorf("unknown code rate %q (want 1/2, 3/5, 2/3, 3/4, 4/5 or 5/6)", s)
}

// ReceiverType distinguishes portable from handheld receivers (PO/PI only).
type ReceiverType int

const (
	Portable ReceiverType = iota
	Handheld
)

func (r ReceiverType) String() string {
	switch r {
	case Portable:
		return "portable"
	case Handheld:
		return "handheld"
	}
	return fmt.Sprintf("ReceiverType(%d)", int(r))
}

func ParseReceiverType(s string) (ReceiverType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "portable":
		return Portable, nil
	case "handheld":
		return Handheld, nil
	}
	return 0, fmt.Errorf("unknown receiver type %q (want portable or handheld)", s)
}

// AntennaType is the handheld antenna variant.
type AntennaType int

const (
	Integrated AntennaType = iota
	External
)

func (a AntennaType) String() string {
	switch a {
	case Integrated:
		return "integrated"
	case External:
		return "external"
	}
	return fmt.Sprintf("AntennaType(%d)", int(a))
}

func ParseAntennaType(s string) (AntennaType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integrated":
		return Integrated, nil
	case "external":
		return External, nil
	}
	return 0, fmt.Errorf("unknown handheld antenna type %q (want integrated or external)", s)
}

// BuildingClass grades building entry loss for indoor reception
// (Table 27, Rec. ITU-R BT.2033-2).
type BuildingClass int

const (
	BuildingHigh BuildingClass = iota
	BuildingMedium
	BuildingLow
)

func (b BuildingClass) String() string {
	switch b {
	case BuildingHigh:
		return "high"
	case BuildingMedium:
		return "medium"
	case BuildingLow:
		return "low"
	}
	return fmt.Sprintf("BuildingClass(%d)", int(b))
}

func ParseBuildingClass(s string) (BuildingClass, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return BuildingHigh, nil
	case "medium":
		return BuildingMedium, nil
	case "low":
		return BuildingLow, nil
	}
	return 0, fmt.Errorf("unknown building class %q (want high, medium or low)", s)
}

// Package tables holds the read-only planning tables of
// Rec. ITU-R BT.2033-2 and Rec. ITU-R BT.2036-5: co-channel protection
// ratios, receive antenna gains and feeder losses, man-made noise
// allowances and building entry losses. Lookups that have no entry fail
// with a descriptive error rather than defaulting.
package tables

import (
	"fmt"

	"github.com/murzabaevb/dttb/pkg/band"
	"github.com/murzabaevb/dttb/pkg/ge06"
	"github.com/murzabaevb/dttb/pkg/model"
)

// Channel is the propagation channel model of the protection-ratio table.
type Channel int

const (
	Gaussian Channel = iota
	Ricean
	Rayleigh
)

func (c Channel) String() string {
	switch c {
	case Gaussian:
		return "Gaussian"
	case Ricean:
		return "Ricean"
	case Rayleigh:
		return "Rayleigh"
	}
	return fmt.Sprintf("Channel(%d)", int(c))
}

// CN is one row of Table 2, Rec. ITU-R BT.2033-2: the required C/N in dB
// for each channel model.
type CN struct {
	Gaussian float64
	Ricean   float64
	Rayleigh float64
}

// ForChannel selects the column for the given channel model. The Gaussian
// column is carried by the recommendation even though no reception mode of
// the documented set selects it.
func (c CN) ForChannel(ch Channel) float64 {
	switch ch {
	case Ricean:
		return c.Ricean
	case Rayleigh:
		return c.Rayleigh
	default:
		return c.Gaussian
	}
}

type cnKey struct {
	mod  model.Modulation
	rate model.CodeRate
}

// Table 2, Rec. ITU-R BT.2033-2. Values in dB.
var cnTable = map[cnKey]CN{
	{model.QPSK, model.Rate1_2}: {2.4, 2.6, 3.4},
	{model.QPSK, model.Rate3_5}: {3.6, 3.8, 4.9},
	{model.QPSK, model.Rate2_3}: {4.5, 4.8, 6.3},
	{model.QPSK, model.Rate3_4}: {5.5, 5.8, 7.6},
	{model.QPSK, model.Rate4_5}: {6.1, 6.5, 8.5},
	{model.QPSK, model.Rate5_6}: {6.6, 7.0, 9.3},

	{model.QAM16, model.Rate1_2}: {7.6, 7.8, 9.1},
	{model.QAM16, model.Rate3_5}: {9.0, 9.2, 10.7},
	{model.QAM16, model.Rate2_3}: {10.3, 10.5, 12.2},
	{model.QAM16, model.Rate3_4}: {11.4, 11.8, 13.9},
	{model.QAM16, model.Rate4_5}: {12.2, 12.6, 15.1},
	{model.QAM16, model.Rate5_6}: {12.7, 13.1, 15.9},

	{model.QAM64, model.Rate1_2}: {11.9, 12.2, 14.0},
	{model.QAM64, model.Rate3_5}: {13.8, 14.1, 15.8},
	{model.QAM64, model.Rate2_3}: {15.1, 15.4, 17.2},
	{model.QAM64, model.Rate3_4}: {16.6, 16.9, 19.3},
	{model.QAM64, model.Rate4_5}: {17.6, 18.1, 20.9},
	{model.QAM64, model.Rate5_6}: {18.2, 18.7, 21.8},

	{model.QAM256, model.Rate1_2}: {15.9, 16.3, 18.3},
	{model.QAM256, model.Rate3_5}: {18.2, 18.4, 20.5},
	{model.QAM256, model.Rate2_3}: {19.7, 20.0, 22.1},
	{model.QAM256, model.Rate3_4}: {21.7, 22.0, 24.6},
	{model.QAM256, model.Rate4_5}: {23.1, 23.6, 26.6},
	{model.QAM256, model.Rate5_6}: {23.9, 24.4, 28.0},
}

// CNRatio returns the required C/N row for a modulation / code-rate pair.
func CNRatio(mod model.Modulation, rate model.CodeRate) (CN, error) {
	cn, ok := cnTable[cnKey{mod, rate}]
	if !ok {
		return CN{}, fmt.Errorf("unsupported (modulation, code rate) combination (%s, %s)", mod, rate)
	}
	return cn, nil
}

// ChannelFor returns the channel model used for C/N selection: Ricean for
// fixed rooftop reception, Rayleigh for portable and mobile.
func ChannelFor(mode model.Mode) Channel {
	if mode == model.ModeFX {
		return Ricean
	}
	return Rayleigh
}

// Handheld UHF antenna gain anchors (Table 29, Rec. ITU-R BT.2033-2).
// Outside [474, 858] MHz the gain clamps to the nearest anchor value.
var handheldAnchors = [3]struct {
	fMHz float64
	dBd  float64
}{
	{474, -12},
	{698, -9},
	{858, -7},
}

func handheldUHFGain(freqMHz float64) (float64, error) {
	if freqMHz < 470 || freqMHz > 862 {
		return 0, fmt.Errorf("handheld UHF antenna gain is defined only for 470-862 MHz; got %g MHz", freqMHz)
	}

	lo, mid, hi := handheldAnchors[0], handheldAnchors[1], handheldAnchors[2]
	switch {
	case freqMHz <= lo.fMHz:
		return lo.dBd, nil
	case freqMHz >= hi.fMHz:
		return hi.dBd, nil
	case freqMHz <= mid.fMHz:
		return ge06.LogInterp(freqMHz, lo.fMHz, lo.dBd, mid.fMHz, mid.dBd), nil
	default:
		return ge06.LogInterp(freqMHz, mid.fMHz, mid.dBd, hi.fMHz, hi.dBd), nil
	}
}

// AntennaGain returns the default receive antenna gain in dBd.
//
// FX uses Table 26 of Rec. ITU-R BT.2036-5; PO/PI portable Table 28 and MO
// Table 30 of Rec. ITU-R BT.2033-2. PO/PI handheld gain is not a flat table
// value: in UHF it is interpolated over the Table 29 anchors with the GE06
// log-frequency rule, and it is undefined in Band III.
func AntennaGain(mode model.Mode, b band.Band, rt model.ReceiverType, freqMHz float64) (float64, error) {
	switch mode {
	case model.ModeFX:
		switch b {
		case band.III:
			return 7, nil
		case band.IV:
			return 10, nil
		default:
			return 12, nil
		}

	case model.ModePO, model.ModePI:
		if rt == model.Handheld {
			if b == band.III {
				return 0, fmt.Errorf("handheld antenna gain is not defined for Band III (Table 29, Rec. ITU-R BT.2033-2)")
			}
			return handheldUHFGain(freqMHz)
		}
		if b == band.III {
			return -2, nil
		}
		return 0, nil

	case model.ModeMO:
		switch b {
		case band.III:
			return -5, nil
		case band.IV:
			return -2, nil
		default:
			return -1, nil
		}
	}
	return 0, fmt.Errorf("antenna gain undefined for reception mode %s", mode)
}

// FeederLoss returns the default feeder loss in dB. Only fixed rooftop
// installations carry a feeder allowance (Table 27, Rec. ITU-R BT.2036-5);
// portable and mobile receivers take 0 dB.
func FeederLoss(mode model.Mode, b band.Band) float64 {
	if mode != model.ModeFX {
		return 0
	}
	switch b {
	case band.III:
		return 2
	case band.IV:
		return 3
	default:
		return 5
	}
}

// Category is the man-made-noise receiver category of Tables 31-32,
// Rec. ITU-R BT.2033-2.
type Category int

const (
	CategoryIntegrated Category = iota
	CategoryExternal
	CategoryRooftop
	CategoryAdapted
)

func (c Category) String() string {
	switch c {
	case CategoryIntegrated:
		return "integrated"
	case CategoryExternal:
		return "external"
	case CategoryRooftop:
		return "rooftop"
	case CategoryAdapted:
		return "adapted"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// CategoryFor derives the man-made-noise category from the reception
// scenario: FX uses the rooftop row, MO the adapted row, PO/PI handheld the
// row matching the antenna type and PO/PI portable the integrated row.
func CategoryFor(mode model.Mode, rt model.ReceiverType, at model.AntennaType) Category {
	switch mode {
	case model.ModeFX:
		return CategoryRooftop
	case model.ModeMO:
		return CategoryAdapted
	}
	if rt == model.Handheld && at == model.External {
		return CategoryExternal
	}
	return CategoryIntegrated
}

type mmnKey struct {
	env   model.Environment
	group band.Group
	cat   Category
}

// Tables 31-32, Rec. ITU-R BT.2033-2. Values in dB.
var mmnTable = map[mmnKey]float64{
	{model.Urban, band.VHF, CategoryIntegrated}: 0,
	{model.Urban, band.VHF, CategoryExternal}:   1,
	{model.Urban, band.VHF, CategoryRooftop}:    2,
	{model.Urban, band.VHF, CategoryAdapted}:    8,

	{model.Urban, band.UHF, CategoryIntegrated}: 0,
	{model.Urban, band.UHF, CategoryExternal}:   0,
	{model.Urban, band.UHF, CategoryRooftop}:    0,
	{model.Urban, band.UHF, CategoryAdapted}:    1,

	{model.Rural, band.VHF, CategoryIntegrated}: 0,
	{model.Rural, band.VHF, CategoryExternal}:   0,
	{model.Rural, band.VHF, CategoryRooftop}:    2,
	{model.Rural, band.VHF, CategoryAdapted}:    5,

	{model.Rural, band.UHF, CategoryIntegrated}: 0,
	{model.Rural, band.UHF, CategoryExternal}:   0,
	{model.Rural, band.UHF, CategoryRooftop}:    0,
	{model.Rural, band.UHF, CategoryAdapted}:    0,
}

// ManMadeNoise returns the man-made-noise allowance P_mmn in dB.
func ManMadeNoise(env model.Environment, g band.Group, cat Category) (float64, error) {
	v, ok := mmnTable[mmnKey{env, g, cat}]
	if !ok {
		return 0, fmt.Errorf("man-made noise allowance not defined for environment=%s, band group=%s, category=%s", env, g, cat)
	}
	return v, nil
}

// BuildingLoss returns the mean building entry loss and its standard
// deviation sigma_b in dB for a building class (Table 27, Rec. ITU-R
// BT.2033-2). Applicability (portable indoor, UHF) is the caller's rule.
func BuildingLoss(class model.BuildingClass) (mean, sigma float64) {
	switch class {
	case model.BuildingHigh:
		return 7, 5
	case model.BuildingMedium:
		return 11, 6
	default:
		return 15, 7
	}
}

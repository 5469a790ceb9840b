// Package band classifies a DVB-T2 centre frequency into the broadcast
// bands defined by the GE06 Agreement:
//
//	Band III : 174–230 MHz
//	Band IV  : 470–582 MHz
//	Band V   : 582–862 MHz
//
// Several planning tables (man-made noise, building entry loss, the
// height-loss anchors) do not distinguish Band IV from Band V; Group
// collapses the bands into VHF and UHF for those lookups.
package band

import "fmt"

// Band is one of the three DVB-T2 broadcast bands.
type Band int

const (
	III Band = iota
	IV
	V
)

// Group is the coarse VHF/UHF classification.
type Group int

const (
	VHF Group = iota
	UHF
)

// Band edges in MHz.
const (
	bandIIILow  = 174.0
	bandIIIHigh = 230.0
	bandIVLow   = 470.0
	bandIVHigh  = 582.0 // exclusive; 582 MHz belongs to Band V
	bandVHigh   = 862.0
)

func (b Band) String() string {
	switch b {
	case III:
		return "III"
	case IV:
		return "IV"
	case V:
		return "V"
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

func (g Group) String() string {
	switch g {
	case VHF:
		return "VHF"
	case UHF:
		return "UHF"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

// FromMHz resolves a frequency to its band. Frequencies outside the three
// bands (including the 230–470 MHz gap) are a domain error.
func FromMHz(freqMHz float64) (Band, error) {
	switch {
	case freqMHz >= bandIIILow && freqMHz <= bandIIIHigh:
		return III, nil
	case freqMHz >= bandIVLow && freqMHz < bandIVHigh:
		return IV, nil
	case freqMHz >= bandIVHigh && freqMHz <= bandVHigh:
		return V, nil
	}
	return 0, fmt.Errorf("frequency %g MHz is outside the DVB-T2 bands III (174-230 MHz), IV (470-582 MHz) and V (582-862 MHz)", freqMHz)
}

// Group returns VHF for Band III and UHF for Bands IV and V.
func (b Band) Group() Group {
	if b == III {
		return VHF
	}
	return UHF
}

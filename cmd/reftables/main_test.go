package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCases(t *testing.T) {
	cases, err := buildCases()
	require.NoError(t, err)
	require.Len(t, cases, 6)
	assert.Equal(t, "Table 12 - Band III, Fixed", cases[0].title)
	assert.Equal(t, "Table 13 - Bands IV/V, Portable indoor / urban", cases[5].title)
}

func TestPrintedFixedChains(t *testing.T) {
	cases, err := buildCases()
	require.NoError(t, err)

	var t12 strings.Builder
	require.NoError(t, printCase(&t12, cases[0]))
	out := t12.String()
	assert.Contains(t, out, "Pn_dbw            = -129.74 dBW")
	assert.Contains(t, out, "Ps_min_dbw        = -109.74 dBW")
	assert.Contains(t, out, "Emin_dBuV/m       = 36.39 dB(uV/m)")
	assert.Contains(t, out, "Emed(95%)         = 47.43 dB(uV/m)")

	var t13 strings.Builder
	require.NoError(t, printCase(&t13, cases[3]))
	out = t13.String()
	assert.Contains(t, out, "Emin_dBuV/m       = 45.20 dB(uV/m)")
	assert.Contains(t, out, "Emed(70%)         = 48.08 dB(uV/m)")
	assert.Contains(t, out, "Emed(95%)         = 54.25 dB(uV/m)")
}

// Command dttb computes the DVB-T2 minimum and minimum median equivalent
// field strength per Rec. ITU-R BT.2033-2 / BT.2036-5 and the GE06
// Agreement.
//
// Subcommands:
//
//	summary   full calculation chain in BT.2033-2 Table 12/13 layout
//	emed      only the final E_med in dB(µV/m)
//	debug     summary plus internal diagnostics
//	init      write a commented example scenario YAML file
//	version   print the release version
//
// Typical usage:
//
//	dttb summary -mode FX -freq 650 -environment urban \
//	     -modulation 64QAM -code-rate 3/5
//	dttb emed -scenario scenario.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/murzabaevb/dttb/pkg/config"
	"github.com/murzabaevb/dttb/pkg/logging"
	"github.com/murzabaevb/dttb/pkg/planning"
	"github.com/murzabaevb/dttb/pkg/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		usage(out)
		return fmt.Errorf("missing subcommand")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "summary", "emed", "debug":
		return runCalc(cmd, rest, out)
	case "init":
		fs := flag.NewFlagSet("init", flag.ContinueOnError)
		path := fs.String("o", "scenario.yaml", "Output path for the example scenario")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		if err := config.GenerateDefault(*path); err != nil {
			return err
		}
		fmt.Fprintf(out, "Scenario file generated: %s\n", *path)
		return nil
	case "version", "-version", "--version":
		fmt.Fprintf(out, "dttb %s\n", version.Version)
		return nil
	case "help", "-h", "--help":
		usage(out)
		return nil
	}
	usage(out)
	return fmt.Errorf("unknown subcommand %q", cmd)
}

func runCalc(cmd string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	var opts options
	opts.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	logging.Setup(opts.logLevel)

	s, err := buildScenario(&opts)
	if err != nil {
		return err
	}
	slog.Debug("scenario resolved",
		"band", s.Band().String(),
		"mode", s.Mode().String(),
		"freq_mhz", s.FreqMHz(),
	)

	switch cmd {
	case "summary":
		return printSummary(s, out)
	case "emed":
		emed, err := s.EMed()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%.2f  # E_med [dB(µV/m)]\n", emed)
		return nil
	case "debug":
		return printDebug(s, out)
	}
	return fmt.Errorf("unknown subcommand %q", cmd)
}

func printSummary(s *planning.Scenario, out io.Writer) error {
	sum, err := s.Summarize()
	if err != nil {
		return err
	}
	for _, r := range sum.Rows() {
		fmt.Fprintf(out, "%-25s: %s\n", r.Key, r.Value)
	}
	return nil
}

func printDebug(s *planning.Scenario, out io.Writer) error {
	sum, err := s.Summarize()
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "=== INPUT CONFIGURATION ===")
	fmt.Fprintf(out, "mode                : %s\n", sum.Mode)
	fmt.Fprintf(out, "freq_mhz            : %g\n", sum.FreqMHz)
	fmt.Fprintf(out, "band                : %s\n", sum.Band)
	fmt.Fprintf(out, "environment         : %s\n", sum.Environment)
	fmt.Fprintf(out, "receiver_type       : %s\n", sum.ReceiverType)
	fmt.Fprintf(out, "handheld_antenna    : %s\n", sum.AntennaType)
	fmt.Fprintf(out, "building_class      : %s\n", sum.BuildingClass)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== SUMMARY (BT.2033-2 TABLE STYLE) ===")
	for _, r := range sum.Rows() {
		fmt.Fprintf(out, "%-25s: %s\n", r.Key, r.Value)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== INTERNAL DETAILS ===")
	fmt.Fprintf(out, "mmn_category        : %s\n", sum.Category)
	fmt.Fprintf(out, "location_probability: %g\n", sum.LocationProbability)
	fmt.Fprintf(out, "sigma_total_db      : %.3f\n", sum.SigmaTotalDB)
	fmt.Fprintf(out, "mu_factor           : %.3f\n", sum.Mu)
	fmt.Fprintf(out, "location_correction : %.3f dB\n", sum.LocationCorrectionDB)
	return nil
}

func usage(out io.Writer) {
	fmt.Fprint(out, `dttb - DVB-T2 field-strength calculator (ITU-R BT.2033-2 / BT.2036-5 / GE06)

Usage:
  dttb summary [flags]   full BT.2033-2 style calculation chain
  dttb emed    [flags]   only the final E_med [dB(µV/m)]
  dttb debug   [flags]   summary plus diagnostic details
  dttb init    [-o file] write a commented example scenario file
  dttb version           print the release version

Run 'dttb summary -h' for the shared scenario flags.
`)
}

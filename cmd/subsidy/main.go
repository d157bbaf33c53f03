// Command subsidy calculates sickness subsidies from the command line.
//
//	subsidy calculate --remuneration 3000 --days 40 --qualifying --dependents 1
//	subsidy rules --json
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/warp/subsidy-engine/api"
	"github.com/warp/subsidy-engine/subsidy"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "subsidy",
		Short:        "Sickness subsidy calculator",
		SilenceUsage: true,
	}
	root.AddCommand(newCalculateCmd(), newRulesCmd())
	return root
}

// =============================================================================
// CALCULATE
// =============================================================================

type calculateOptions struct {
	remuneration string
	days         int
	illness      string
	qualifying   bool
	dependents   int
	asJSON       bool
}

func newCalculateCmd() *cobra.Command {
	var opts calculateOptions

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the subsidy owed for a spell of sick leave",
		Long: `Calculates the sickness subsidy from the gross remuneration of the last
six months and the number of days of leave.

Example:
  subsidy calculate --remuneration 3000 --days 40 --illness common --qualifying --dependents 1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.remuneration, "remuneration", "", "gross remuneration over the last six months")
	f.IntVar(&opts.days, "days", 0, "days of medical leave")
	f.StringVar(&opts.illness, "illness", string(subsidy.IllnessCommon), "illness type: common, hospitalization or tuberculosis")
	f.BoolVar(&opts.qualifying, "qualifying", false, "six months of contributions with twelve effective work days")
	f.IntVar(&opts.dependents, "dependents", 0, "family members in care")
	f.BoolVar(&opts.asJSON, "json", false, "print the full breakdown as JSON")
	_ = cmd.MarkFlagRequired("remuneration")
	_ = cmd.MarkFlagRequired("days")

	return cmd
}

func runCalculate(w io.Writer, opts calculateOptions) error {
	remuneration, err := decimal.NewFromString(strings.TrimSpace(opts.remuneration))
	if err != nil {
		return fmt.Errorf("invalid --remuneration %q: %w", opts.remuneration, err)
	}
	illness, err := subsidy.ParseIllnessType(opts.illness)
	if err != nil {
		return err
	}

	in := subsidy.NewInputs(remuneration, opts.days, opts.qualifying,
		subsidy.WithIllness(illness),
		subsidy.WithDependents(opts.dependents))
	if err := in.Validate(); err != nil {
		return err
	}

	res := subsidy.Calculate(in)

	if opts.asJSON {
		return writeJSON(w, api.NewCalculationDTO(uuid.New().String(), res))
	}
	for _, line := range subsidy.Lines(res) {
		fmt.Fprintln(w, line)
	}
	return nil
}

// =============================================================================
// RULES
// =============================================================================

func newRulesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the constants and percentage table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), api.NewRulesDTO())
			}
			return printRules(cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func printRules(w io.Writer) error {
	fmt.Fprintf(w, "IAS: %s\n", subsidy.IAS())
	fmt.Fprintf(w, "Minimum daily value: %s\n", subsidy.MinimumDaily())
	fmt.Fprintf(w, "Waiting period (common illness): %d days\n", subsidy.WaitingDays)
	fmt.Fprintf(w, "Maximum payable days: %d\n", subsidy.MaxPayableDays)
	fmt.Fprintf(w, "Dependents surcharge: +5%% (1) / +10%% (2+) after %d days\n\n", subsidy.SurchargeMinLeaveDays)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	tiers := subsidy.Tiers()

	header := []string{"ILLNESS"}
	prev := 0
	for _, tier := range tiers {
		if tier.MaxDays == 0 {
			header = append(header, fmt.Sprintf(">%d", prev))
			continue
		}
		header = append(header, fmt.Sprintf("<=%d", tier.MaxDays))
		prev = tier.MaxDays
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, illness := range subsidy.IllnessTypes {
		row := []string{illness.String()}
		for _, tier := range tiers {
			row = append(row, fmt.Sprintf("%d%%", tier.Rates[illness]))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

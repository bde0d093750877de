package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
)

// envelopeOptions are the flags of the envelope command
type envelopeOptions struct {
	beamFlags

	simplified bool
	stations   int
}

var envelopeOpts envelopeOptions

var envelopeCmd = &cobra.Command{
	Use:   "envelope",
	Short: "Find the governing NSCP load combination of a beam",
	Long: `Solve the beam once for every NSCP 2015 load combination and report
the peak moment and shear of each. The combination with the largest absolute
moment governs.

Each load carries a load case (D, L, Lr, W, E or R; default D) that selects
its factor:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  # Dead UDL and a live point load on a 6 m simple span
  beamcalc envelope -L 6 --udl 0:6:4:D --point 3:10:L

  # Gravity combinations only
  beamcalc envelope --file beam.yaml --simplified`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return envelopeOpts.run(cmd.Flags(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(envelopeCmd)
	envelopeOpts.register(envelopeCmd.Flags())
}

func (o *envelopeOptions) register(fs *pflag.FlagSet) {
	o.beamFlags.register(fs)
	fs.BoolVar(&o.simplified, "simplified", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	fs.IntVarP(&o.stations, "stations", "n", beam.DefaultStations, "Number of sampling stations")
}

// comboResult is the peak response of the beam under one combination
type comboResult struct {
	combo  nscp.LoadCombination
	moment beam.Station
	shear  beam.Station
}

func (o *envelopeOptions) run(fs *pflag.FlagSet, out io.Writer) error {
	def, err := o.definition(fs)
	if err != nil {
		return err
	}
	if def.Count() == 0 {
		return fmt.Errorf("provide at least one load")
	}

	var results []comboResult
	governing, mu, err := nscp.Governing(combinations(o.simplified), func(c nscp.LoadCombination) (float64, error) {
		b, err := def.Solve(&c)
		if err != nil {
			return 0, err
		}
		d, err := b.Sample(o.stations)
		if err != nil {
			return 0, err
		}
		e := d.Extremes()
		results = append(results, comboResult{combo: c, moment: e.PeakMoment(), shear: e.PeakShear()})
		logger.Debug("combination solved", zap.String("combo", c.ID), zap.Float64("peak_moment", e.PeakMoment().Value))
		return e.PeakMoment().Value, nil
	})
	if err != nil {
		return err
	}
	u := def.UnitLabels()

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "          NSCP 2015 LOAD COMBINATION ENVELOPE")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOAD CASES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	for _, c := range def.Cases() {
		fmt.Fprintf(out, "  %s\n", c)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tMu (%s)\tat x\tVu (%s)\tat x\n", u.Moment, u.Force)
	fmt.Fprintf(w, "  ─\t───────────\t─────────\t────\t────────\t────\n")
	for _, r := range results {
		marker := ""
		if r.combo.ID == governing.ID {
			marker = " ← GOVERNS"
		}
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.3f\t%.2f\t%.3f%s\n",
			r.combo.ID, r.combo.Description, r.moment.Value, r.moment.X, r.shear.Value, r.shear.X, marker)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Print result
	fmt.Fprintln(out, "RESULT:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	fmt.Fprintf(out, "  Governing Combination: %s (%s)\n", governing.ID, governing.Description)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  ╔═══════════════════════════════════╗\n")
	fmt.Fprintf(out, "  ║  FACTORED MOMENT (Mu) = %.2f %s  \n", mu, u.Moment)
	fmt.Fprintf(out, "  ╚═══════════════════════════════════╝\n")
	fmt.Fprintln(out)
	return nil
}

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/diagram"
	"github.com/alexiusacademia/beamcalc/internal/loadcase"
	"github.com/alexiusacademia/beamcalc/internal/nscp"
)

// solveOptions are the flags of the solve command
type solveOptions struct {
	beamFlags

	combo      string
	simplified bool
	stations   int
	at         []float64

	showDiagram bool
	chartWidth  int
	chartHeight int
	output      string
	xlsx        string
}

var solveOpts solveOptions

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Compute reactions, shear and moment of a beam",
	Long: `Solve a cantilever or a beam on two supports for its support reactions
and sample the shear force V(x) and bending moment M(x) along the span.

Sign conventions:
  - Forces and distributed loads are positive downward
  - Concentrated moments are positive clockwise
  - Reactions are positive upward
  - V and M use the free body to the left of the cut

Examples:
  # Simply supported 6 m beam with a 12 kN midspan load
  beamcalc solve --length 6 --point 3:12

  # 4 m cantilever fixed at the left with a tip load and a UDL
  beamcalc solve -L 4 --support cantilever --point 4:10 --udl 0:4:2

  # Overhanging beam, supports at 1 m and 5 m, with charts
  beamcalc solve -L 6 --a 1 --b 5 --udl 0:6:2 --point 6:10 --diagram

  # Beam file with factored loads and diagram export
  beamcalc solve --file beam.yaml --combo 2 --output beam.png`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return solveOpts.run(cmd.Flags(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveOpts.register(solveCmd.Flags())
}

func (o *solveOptions) register(fs *pflag.FlagSet) {
	o.beamFlags.register(fs)

	// Analysis flags
	fs.StringVarP(&o.combo, "combo", "c", "", "NSCP load combination ID (default: service loads)")
	fs.BoolVar(&o.simplified, "simplified", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	fs.IntVarP(&o.stations, "stations", "n", beam.DefaultStations, "Number of sampling stations")
	fs.Float64SliceVar(&o.at, "at", nil, "Positions (m) to report V and M at, comma separated")

	// Output flags
	fs.BoolVarP(&o.showDiagram, "diagram", "d", false, "Show beam schematic and V/M charts in the terminal")
	fs.IntVar(&o.chartWidth, "width", 60, "Terminal chart width")
	fs.IntVar(&o.chartHeight, "height", 12, "Terminal chart height")
	fs.StringVarP(&o.output, "output", "o", "", "Export diagrams to an image file (.png, .svg or .pdf)")
	fs.StringVar(&o.xlsx, "xlsx", "", "Export sampled V and M to an XLSX workbook")
}

func (o *solveOptions) run(fs *pflag.FlagSet, out io.Writer) error {
	def, err := o.definition(fs)
	if err != nil {
		return err
	}
	combo, err := findCombination(o.combo, o.simplified)
	if err != nil {
		return err
	}

	b, err := def.Solve(combo)
	if err != nil {
		return err
	}
	units := def.UnitLabels()
	data, err := diagram.NewBeamDiagramData(b, o.stations, units)
	if err != nil {
		return err
	}
	data.Title = def.Name
	logger.Debug("beam solved",
		zap.Float64("length", b.Length),
		zap.Stringer("support", data.Support),
		zap.Int("loads", def.Count()),
		zap.Int("stations", o.stations),
	)

	printSolution(out, def, combo, data)

	if len(o.at) > 0 {
		if err := printStations(out, b, o.at, units); err != nil {
			return err
		}
	}

	if o.showDiagram {
		fmt.Fprint(out, diagram.DrawBeamSchematic(data, o.chartWidth))
		fmt.Fprint(out, diagram.DrawForceDiagrams(data, o.chartWidth, o.chartHeight))
		fmt.Fprintln(out)
	}

	if o.output != "" {
		if err := diagram.ExportBeamDiagram(data, o.output); err != nil {
			return fmt.Errorf("export diagram: %w", err)
		}
		fmt.Fprintf(out, "  Diagram exported to: %s\n", o.output)
	}
	if o.xlsx != "" {
		if err := writeXLSXFile(o.xlsx, data); err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		fmt.Fprintf(out, "  Workbook exported to: %s\n", o.xlsx)
	}
	return nil
}

func printSolution(out io.Writer, def *loadcase.File, combo *nscp.LoadCombination, data diagram.BeamDiagramData) {
	u := data.Units

	// Print header
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out, "              BEAM STATICS - REACTIONS AND FORCES")
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)

	// Input summary
	fmt.Fprintln(out, "INPUT DATA:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if def.Name != "" {
		fmt.Fprintf(w, "  Beam:\t%s\n", def.Name)
	}
	fmt.Fprintf(w, "  Length (L):\t%.3f %s\n", data.Length, u.Length)
	fmt.Fprintf(w, "  Supports:\t%s\n", data.Support)
	if combo != nil {
		fmt.Fprintf(w, "  Load combination:\t%s (%s)\n", combo.ID, combo.Description)
	} else {
		fmt.Fprintf(w, "  Load combination:\tnone (service loads)\n")
	}
	for i, p := range data.Points {
		fmt.Fprintf(w, "  Point load P%d:\t%.2f %s at x = %.3f\n", i+1, p.Magnitude, u.Force, p.Position)
	}
	for i, d := range data.Distributed {
		fmt.Fprintf(w, "  Uniform load w%d:\t%.2f %s/%s from x = %.3f to %.3f\n", i+1, d.Intensity, u.Force, u.Length, d.Start, d.End)
	}
	for i, m := range data.Moments {
		fmt.Fprintf(w, "  Moment C%d:\t%.2f %s at x = %.3f\n", i+1, m.Magnitude, u.Moment, m.Position)
	}
	w.Flush()
	fmt.Fprintln(out)

	// Reactions
	r := data.Reactions
	var lines []string
	if _, ok := data.Support.(beam.Cantilever); ok {
		lines = []string{
			fmt.Sprintf("Reaction at fixed end (A) = %.2f %s", r.A, u.Force),
			fmt.Sprintf("Fixed-end moment (Mf)     = %.2f %s", r.FixedMoment, u.Moment),
		}
	} else {
		lines = []string{
			fmt.Sprintf("Reaction A (x = %.3f) = %.2f %s", data.Support.(beam.TwoSupport).A, r.A, u.Force),
			fmt.Sprintf("Reaction B (x = %.3f) = %.2f %s", data.Support.(beam.TwoSupport).B, r.B, u.Force),
		}
	}
	lines = append(lines, r.Format(u))
	fmt.Fprint(out, diagram.DrawSummaryBox("SUPPORT REACTIONS", lines))
	fmt.Fprintln(out)

	// Internal forces
	e := data.Extremes
	fmt.Fprintln(out, "INTERNAL FORCES:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Max shear:\t%.2f %s\tat x = %.3f\n", e.MaxShear.Value, u.Force, e.MaxShear.X)
	fmt.Fprintf(w, "  Min shear:\t%.2f %s\tat x = %.3f\n", e.MinShear.Value, u.Force, e.MinShear.X)
	fmt.Fprintf(w, "  Max moment:\t%.2f %s\tat x = %.3f\n", e.MaxMoment.Value, u.Moment, e.MaxMoment.X)
	fmt.Fprintf(w, "  Min moment:\t%.2f %s\tat x = %.3f\n", e.MinMoment.Value, u.Moment, e.MinMoment.X)
	fmt.Fprintf(w, "  Stations:\t%d\t\n", len(data.Diagram.X))
	w.Flush()
	fmt.Fprintln(out)
}

func printStations(out io.Writer, b *beam.Beam, xs []float64, u beam.Units) error {
	fmt.Fprintln(out, "FORCES AT REQUESTED POSITIONS:")
	fmt.Fprintln(out, "───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  x (%s)\tV (%s)\tM (%s)\n", u.Length, u.Force, u.Moment)
	for _, x := range xs {
		v, err := b.ShearAt(x)
		if err != nil {
			return err
		}
		m, err := b.MomentAt(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %.3f\t%.2f\t%.2f\n", x, v, m)
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func writeXLSXFile(path string, data diagram.BeamDiagramData) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := diagram.WriteXLSX(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

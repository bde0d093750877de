package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/diagram"
	"github.com/alexiusacademia/beamcalc/internal/report"
)

// reportOptions are the flags of the report command
type reportOptions struct {
	beamFlags

	combo      string
	simplified bool
	stations   int

	output  string
	title   string
	project string
	author  string
	notes   string
}

var reportOpts reportOptions

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a PDF calculation report of a beam",
	Long: `Solve the beam and write a PDF report with the input loads, support
reactions, peak internal forces and the load, shear and moment diagrams.

Examples:
  beamcalc report --file beam.yaml --project "Warehouse" --author "J. Cruz" -o beam.pdf
  beamcalc report -L 6 --udl 0:6:4:D --point 3:10:L --combo 2 -o b2.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportOpts.run(cmd.Flags(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportOpts.register(reportCmd.Flags())
}

func (o *reportOptions) register(fs *pflag.FlagSet) {
	o.beamFlags.register(fs)
	fs.StringVarP(&o.combo, "combo", "c", "", "NSCP load combination ID (default: service loads)")
	fs.BoolVar(&o.simplified, "simplified", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")
	fs.IntVarP(&o.stations, "stations", "n", beam.DefaultStations, "Number of sampling stations")

	// Report flags
	fs.StringVarP(&o.output, "output", "o", "beam-report.pdf", "Output PDF file")
	fs.StringVar(&o.title, "title", "", "Report title (default: beam name)")
	fs.StringVar(&o.project, "project", "", "Project name")
	fs.StringVar(&o.author, "author", "", "Author")
	fs.StringVar(&o.notes, "notes", "", "Free text notes")
}

func (o *reportOptions) run(fs *pflag.FlagSet, out io.Writer) error {
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
	data, err := diagram.NewBeamDiagramData(b, o.stations, def.UnitLabels())
	if err != nil {
		return err
	}
	data.Title = def.Name

	in := report.Input{
		Title:   o.title,
		Project: o.project,
		Author:  o.author,
		Notes:   o.notes,
		Data:    data,
	}
	if in.Title == "" {
		in.Title = def.Name
	}
	if combo != nil {
		in.Combination = fmt.Sprintf("%s: %s", combo.ID, combo.Description)
	}

	// Create directory if needed
	if dir := filepath.Dir(o.output); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(o.output)
	if err != nil {
		return err
	}
	if err := report.Write(f, in); err != nil {
		f.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Debug("report written", zap.String("path", o.output))
	fmt.Fprintf(out, "  Report written to: %s\n", o.output)
	return nil
}

// Package report renders a calculation sheet for a solved beam as PDF.
package report

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"github.com/alexiusacademia/beamcalc/internal/beam"
	"github.com/alexiusacademia/beamcalc/internal/diagram"
)

// Input is the content of a report
type Input struct {
	Title       string    `json:"title"`
	Project     string    `json:"project"`
	Author      string    `json:"author"`
	Notes       string    `json:"notes"`
	Combination string    `json:"combination,omitempty"`
	Date        time.Time `json:"-"`

	Data diagram.BeamDiagramData `json:"-"`
}

const (
	pageWidth = 180.0 // mm, A4 less margins
	lineH     = 6.0
)

// Write renders the report to w
func Write(w io.Writer, in Input) error {
	if in.Data.Diagram == nil {
		return fmt.Errorf("report needs a solved beam")
	}
	if in.Title == "" {
		in.Title = "Beam Analysis Report"
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	var img bytes.Buffer
	if err := diagram.WriteBeamDiagram(&img, in.Data, "png"); err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(in.Title, true)
	pdf.SetAuthor(in.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, lineH, tr("Project: "+in.Project))
		pdf.Ln(lineH)
	}
	if in.Author != "" {
		pdf.Cell(0, lineH, tr("Author: "+in.Author))
		pdf.Ln(lineH)
	}
	pdf.Cell(0, lineH, fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")))
	pdf.Ln(lineH + 4)

	d := in.Data
	u := d.Units

	section(pdf, "Beam")
	row(pdf, tr, "Length", fmt.Sprintf("%.3f %s", d.Length, u.Length))
	row(pdf, tr, "Supports", d.Support.String())
	if in.Combination != "" {
		row(pdf, tr, "Load combination", in.Combination)
	}
	pdf.Ln(4)

	section(pdf, "Loads")
	if len(d.Points)+len(d.Distributed)+len(d.Moments) == 0 {
		row(pdf, tr, "", "none")
	}
	for i, p := range d.Points {
		row(pdf, tr, fmt.Sprintf("P%d", i+1), fmt.Sprintf("%.2f %s at x = %.3f %s", p.Magnitude, u.Force, p.Position, u.Length))
	}
	for i, dl := range d.Distributed {
		row(pdf, tr, fmt.Sprintf("w%d", i+1), fmt.Sprintf("%.2f %s/%s from x = %.3f to %.3f %s",
			dl.Intensity, u.Force, u.Length, dl.Start, dl.End, u.Length))
	}
	for i, m := range d.Moments {
		row(pdf, tr, fmt.Sprintf("C%d", i+1), fmt.Sprintf("%.2f %s at x = %.3f %s", m.Magnitude, u.Moment, m.Position, u.Length))
	}
	pdf.Ln(4)

	section(pdf, "Reactions")
	r := d.Reactions
	if _, ok := d.Support.(beam.Cantilever); ok {
		row(pdf, tr, "Reaction at fixed end", fmt.Sprintf("%.2f %s", r.A, u.Force))
		row(pdf, tr, "Fixed-end moment", fmt.Sprintf("%.2f %s", r.FixedMoment, u.Moment))
	} else {
		row(pdf, tr, "Reaction A", fmt.Sprintf("%.2f %s", r.A, u.Force))
		row(pdf, tr, "Reaction B", fmt.Sprintf("%.2f %s", r.B, u.Force))
	}
	pdf.Ln(4)

	section(pdf, "Internal forces")
	e := d.Extremes
	row(pdf, tr, "Max shear", fmt.Sprintf("%.2f %s at x = %.3f %s", e.MaxShear.Value, u.Force, e.MaxShear.X, u.Length))
	row(pdf, tr, "Min shear", fmt.Sprintf("%.2f %s at x = %.3f %s", e.MinShear.Value, u.Force, e.MinShear.X, u.Length))
	row(pdf, tr, "Max moment", fmt.Sprintf("%.2f %s at x = %.3f %s", e.MaxMoment.Value, u.Moment, e.MaxMoment.X, u.Length))
	row(pdf, tr, "Min moment", fmt.Sprintf("%.2f %s at x = %.3f %s", e.MinMoment.Value, u.Moment, e.MinMoment.X, u.Length))
	row(pdf, tr, "Stations", fmt.Sprintf("%d", len(d.Diagram.X)))

	if in.Notes != "" {
		pdf.Ln(4)
		section(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, lineH, tr(in.Notes), "", "L", false)
	}

	// diagrams on their own page, 8x10 in scaled to the text width
	pdf.AddPage()
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("diagram", opts, &img)
	pdf.ImageOptions("diagram", 15, 15, pageWidth, pageWidth*10/8, false, opts, 0, "")

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, title, "B", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func row(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(55, lineH, tr(label), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, lineH, tr(value), "", 1, "L", false, 0, "")
}

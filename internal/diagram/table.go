package diagram

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/alexiusacademia/beamcalc/internal/beam"
)

const (
	diagramSheet = "Diagram"
	summarySheet = "Summary"
)

// WriteXLSX writes the sampled stations and a reactions summary as a workbook
func WriteXLSX(w io.Writer, data BeamDiagramData) error {
	if data.Diagram == nil {
		return fmt.Errorf("no sampled diagram to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", diagramSheet); err != nil {
		return err
	}
	u := data.Units
	header := []any{
		fmt.Sprintf("x (%s)", u.Length),
		fmt.Sprintf("V (%s)", u.Force),
		fmt.Sprintf("M (%s)", u.Moment),
	}
	if err := f.SetSheetRow(diagramSheet, "A1", &header); err != nil {
		return err
	}
	d := data.Diagram
	for i := range d.X {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{d.X[i], d.V[i], d.M[i]}
		if err := f.SetSheetRow(diagramSheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(diagramSheet, "A", "C", 14); err != nil {
		return err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}
	for i, row := range summaryRows(data) {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return err
	}

	return f.Write(w)
}

func summaryRows(data BeamDiagramData) [][]any {
	u := data.Units
	r := data.Reactions
	e := data.Extremes
	rows := [][]any{
		{"quantity", "value", "unit", "x"},
		{"length", data.Length, u.Length},
		{"support", data.Support.String()},
	}
	switch data.Support.(type) {
	case beam.Cantilever:
		rows = append(rows,
			[]any{"reaction_a", r.A, u.Force},
			[]any{"fixed_moment", r.FixedMoment, u.Moment},
		)
	default:
		rows = append(rows,
			[]any{"reaction_a", r.A, u.Force},
			[]any{"reaction_b", r.B, u.Force},
		)
	}
	return append(rows,
		[]any{"max_shear", e.MaxShear.Value, u.Force, e.MaxShear.X},
		[]any{"min_shear", e.MinShear.Value, u.Force, e.MinShear.X},
		[]any{"max_moment", e.MaxMoment.Value, u.Moment, e.MaxMoment.X},
		[]any{"min_moment", e.MinMoment.Value, u.Moment, e.MinMoment.X},
	)
}

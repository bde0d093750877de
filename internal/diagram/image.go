package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/beamcalc/internal/beam"
)

var (
	shearColor  = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	momentColor = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	loadColor   = color.RGBA{R: 200, G: 0, B: 0, A: 255}
	udlColor    = color.RGBA{R: 255, G: 165, B: 0, A: 130}
)

// ExportBeamDiagram exports the schematic, shear and moment diagrams to an
// image file. The format follows the extension (png, svg, pdf); other
// extensions get ".png" appended.
func ExportBeamDiagram(data BeamDiagramData, filename string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	switch format {
	case "png", "svg", "pdf":
	default:
		format = "png"
		filename += ".png"
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteBeamDiagram(f, data, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteBeamDiagram renders the three stacked panels in the given format
func WriteBeamDiagram(w io.Writer, data BeamDiagramData, format string) error {
	if data.Diagram == nil {
		return fmt.Errorf("no sampled diagram to draw")
	}

	schematic, err := schematicPlot(data)
	if err != nil {
		return err
	}
	shear, err := forcePlot(data.Diagram.X, data.Diagram.V, shearColor)
	if err != nil {
		return err
	}
	shear.Title.Text = "Shear Force Diagram"
	shear.Y.Label.Text = fmt.Sprintf("V (%s)", data.Units.Force)

	moment, err := forcePlot(data.Diagram.X, data.Diagram.M, momentColor)
	if err != nil {
		return err
	}
	moment.Title.Text = "Bending Moment Diagram"
	moment.Y.Label.Text = fmt.Sprintf("M (%s)", data.Units.Moment)
	moment.X.Label.Text = fmt.Sprintf("Position x (%s)", data.Units.Length)
	// civil engineering convention: positive moment drawn downward
	moment.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}

	width := 8 * vg.Inch
	height := 10 * vg.Inch
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return err
	}

	plots := [][]*plot.Plot{{schematic}, {shear}, {moment}}
	tiles := draw.Tiles{
		Rows:      3,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, draw.New(c))
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	_, err = c.WriteTo(w)
	return err
}

// forcePlot draws a filled internal force curve with a zero line
func forcePlot(xs, ys []float64, c color.RGBA) (*plot.Plot, error) {
	p := plot.New()
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}

	// close the area against the axis
	area := make(plotter.XYs, 0, len(pts)+2)
	area = append(area, plotter.XY{X: xs[0], Y: 0})
	area = append(area, pts...)
	area = append(area, plotter.XY{X: xs[len(xs)-1], Y: 0})
	fill, err := plotter.NewPolygon(area)
	if err != nil {
		return nil, err
	}
	fill.Color = color.RGBA{R: c.R, G: c.G, B: c.B, A: 75}
	fill.LineStyle.Width = 0
	p.Add(fill)

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	p.Add(line)

	zero, err := plotter.NewLine(plotter.XYs{{X: xs[0], Y: 0}, {X: xs[len(xs)-1], Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Width = vg.Points(1)
	zero.LineStyle.Color = color.Black
	p.Add(zero)

	return p, nil
}

// schematicPlot draws the beam line, supports and loads
func schematicPlot(data BeamDiagramData) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Beam Schematic"
	if data.Title != "" {
		p.Title.Text = data.Title
	}
	L := data.Length
	p.X.Min, p.X.Max = -0.05*L, 1.05*L
	p.Y.Min, p.Y.Max = -1, 2
	p.HideY()

	// Beam
	beamLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: L, Y: 0}})
	if err != nil {
		return nil, err
	}
	beamLine.LineStyle.Width = vg.Points(5)
	beamLine.LineStyle.Color = color.Black
	p.Add(beamLine)

	// Supports
	var supportLabels plotter.XYLabels
	switch s := data.Support.(type) {
	case beam.TwoSupport:
		pins, err := plotter.NewScatter(plotter.XYs{{X: s.A, Y: -0.15}, {X: s.B, Y: -0.15}})
		if err != nil {
			return nil, err
		}
		pins.GlyphStyle.Shape = draw.TriangleGlyph{}
		pins.GlyphStyle.Radius = vg.Points(8)
		pins.GlyphStyle.Color = color.Gray{Y: 100}
		p.Add(pins)
		supportLabels.XYs = []plotter.XY{{X: s.A, Y: -0.6}, {X: s.B, Y: -0.6}}
		supportLabels.Labels = []string{"A", "B"}
	case beam.Cantilever:
		x := 0.0
		if s.End == beam.FixedRight {
			x = L
		}
		wall, err := plotter.NewLine(plotter.XYs{{X: x, Y: -0.5}, {X: x, Y: 0.5}})
		if err != nil {
			return nil, err
		}
		wall.LineStyle.Width = vg.Points(6)
		wall.LineStyle.Color = color.Gray{Y: 100}
		p.Add(wall)
		supportLabels.XYs = []plotter.XY{{X: x, Y: -0.8}}
		supportLabels.Labels = []string{"A"}
	}
	if len(supportLabels.XYs) > 0 {
		l, err := plotter.NewLabels(supportLabels)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	u := data.Units
	var loadLabels plotter.XYLabels

	// Distributed loads
	for _, d := range data.Distributed {
		block, err := plotter.NewPolygon(plotter.XYs{
			{X: d.Start, Y: 0.1}, {X: d.End, Y: 0.1}, {X: d.End, Y: 0.4}, {X: d.Start, Y: 0.4},
		})
		if err != nil {
			return nil, err
		}
		block.Color = udlColor
		block.LineStyle.Color = color.RGBA{R: 255, G: 140, B: 0, A: 255}
		p.Add(block)
		loadLabels.XYs = append(loadLabels.XYs, plotter.XY{X: d.Centroid(), Y: 0.5})
		loadLabels.Labels = append(loadLabels.Labels, fmt.Sprintf("%g %s/%s", d.Intensity, u.Force, u.Length))
	}

	// Point loads as arrows
	head := 0.015 * L
	for _, pl := range data.Points {
		tip, tail := 0.1, 1.0
		if pl.Magnitude < 0 {
			tip, tail = tail, tip
		}
		dir := 0.25
		if pl.Magnitude < 0 {
			dir = -0.25
		}
		arrow, err := plotter.NewLine(plotter.XYs{
			{X: pl.Position, Y: tail}, {X: pl.Position, Y: tip},
			{X: pl.Position - head, Y: tip + dir}, {X: pl.Position, Y: tip},
			{X: pl.Position + head, Y: tip + dir},
		})
		if err != nil {
			return nil, err
		}
		arrow.LineStyle.Width = vg.Points(2)
		arrow.LineStyle.Color = loadColor
		p.Add(arrow)
		loadLabels.XYs = append(loadLabels.XYs, plotter.XY{X: pl.Position, Y: 1.15})
		loadLabels.Labels = append(loadLabels.Labels, fmt.Sprintf("%g %s", pl.Magnitude, u.Force))
	}

	// Concentrated moments
	if len(data.Moments) > 0 {
		pts := make(plotter.XYs, len(data.Moments))
		for i, m := range data.Moments {
			pts[i] = plotter.XY{X: m.Position, Y: 0}
			loadLabels.XYs = append(loadLabels.XYs, plotter.XY{X: m.Position, Y: 0.7})
			loadLabels.Labels = append(loadLabels.Labels, fmt.Sprintf("%g %s", m.Magnitude, u.Moment))
		}
		rings, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		rings.GlyphStyle.Shape = draw.RingGlyph{}
		rings.GlyphStyle.Radius = vg.Points(9)
		rings.GlyphStyle.Color = loadColor
		p.Add(rings)
	}

	if len(loadLabels.XYs) > 0 {
		l, err := plotter.NewLabels(loadLabels)
		if err != nil {
			return nil, err
		}
		p.Add(l)
	}

	return p, nil
}

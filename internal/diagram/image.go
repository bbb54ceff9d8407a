package diagram

import (
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goscol/internal/curve"
)

// Marker is a highlighted point on an exported chart, typically a
// single example calculation at one height.
type Marker struct {
	Height     float64
	Resistance float64
	Label      string
}

// Chart colors, matching the terminal overlay.
var (
	colorA = color.RGBA{R: 255, A: 255}               // red
	colorB = color.RGBA{R: 0, G: 128, B: 128, A: 255} // teal
	colorM = color.RGBA{R: 255, G: 165, B: 0, A: 255} // orange markers
)

// ExportComparison writes the two-column resistance chart to an image
// file. The factored axial resistance runs along the x-axis and the
// column height up the y-axis, the way column resistance tables are
// usually read. Format follows the file extension (.png, .svg, .pdf);
// anything else gets ".png" appended.
func ExportComparison(cmp curve.Comparison, markers []Marker, filename string) error {
	p := plot.New()
	p.Title.Text = "Factored Axial Resistance of Column A and Column B"
	p.X.Label.Text = "Factored axial resistance, N"
	p.Y.Label.Text = "Height of column, mm"

	lineA, err := resistanceLine(cmp.A, colorA)
	if err != nil {
		return err
	}
	p.Add(lineA)
	p.Legend.Add(cmp.A.Label, lineA)

	lineB, err := resistanceLine(cmp.B, colorB)
	if err != nil {
		return err
	}
	p.Add(lineB)
	p.Legend.Add(cmp.B.Label, lineB)

	p.Legend.Top = true

	if err := addMarkers(p, markers); err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportCurve writes a single resistance curve to an image file with
// the same orientation as the comparison chart.
func ExportCurve(c curve.Curve, markers []Marker, filename string) error {
	p := plot.New()
	p.Title.Text = "Factored Axial Resistance of " + c.Label
	p.X.Label.Text = "Factored axial resistance, N"
	p.Y.Label.Text = "Height of column, mm"

	line, err := resistanceLine(c, colorA)
	if err != nil {
		return err
	}
	p.Add(line)
	p.Legend.Add(c.Label, line)
	p.Legend.Top = true

	if err := addMarkers(p, markers); err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// resistanceLine builds the styled line for one curve, resistance on x
// and height on y.
func resistanceLine(c curve.Curve, col color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(c.Heights))
	for i := range c.Heights {
		pts[i] = plotter.XY{X: c.Resistances[i], Y: c.Heights[i]}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = col
	return line, nil
}

func addMarkers(p *plot.Plot, markers []Marker) error {
	for _, m := range markers {
		scatter, err := plotter.NewScatter(plotter.XYs{{X: m.Resistance, Y: m.Height}})
		if err != nil {
			return err
		}
		scatter.GlyphStyle.Color = colorM
		scatter.GlyphStyle.Radius = vg.Points(5)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)

		if m.Label == "" {
			continue
		}
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: m.Resistance, Y: m.Height}},
			Labels: []string{m.Label},
		})
		if err != nil {
			return err
		}
		p.Add(labels)
	}
	return nil
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

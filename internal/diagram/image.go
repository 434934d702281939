package diagram

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportPlan exports a plan view of the layers to an image file.
// The format follows the extension (.png, .svg, .pdf); any other name gets .png appended.
func ExportPlan(layers []Layer, title, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.Legend.Top = true

	for i, layer := range layers {
		if len(layer.Segments) == 0 {
			continue
		}
		c := plotutil.Color(i)

		var points plotter.XYs
		var thumb plot.Thumbnailer
		for _, s := range layer.Segments {
			if s.IsPoint() {
				points = append(points, plotter.XY{X: s.X1, Y: s.Y1})
				continue
			}
			l, err := plotter.NewLine(plotter.XYs{{X: s.X1, Y: s.Y1}, {X: s.X2, Y: s.Y2}})
			if err != nil {
				return err
			}
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Color = c
			l.LineStyle.Dashes = plotutil.Dashes(i)
			p.Add(l)
			if thumb == nil {
				thumb = l
			}
		}

		if len(points) > 0 {
			sc, err := plotter.NewScatter(points)
			if err != nil {
				return err
			}
			sc.GlyphStyle.Color = c
			sc.GlyphStyle.Radius = vg.Points(3)
			sc.GlyphStyle.Shape = draw.BoxGlyph{}
			p.Add(sc)
			if thumb == nil {
				thumb = sc
			}
		}

		p.Legend.Add(fmt.Sprintf("%s (%d)", layer.Name, len(layer.Segments)), thumb)
	}

	width := 10 * vg.Inch
	height := 8 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

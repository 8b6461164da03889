package main

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/acr/grid"
	"github.com/katalvlaran/acr/region"
)

// cellSize is the plotted edge length of one grid cell.
const cellSize = 6 * vg.Millimeter

// plotRegions draws water cells and every region outline of tree to file.
// The format follows the file extension (.png, .svg, .pdf, ...).
// Rows grow downward on the map, so y is negated to keep north up.
func plotRegions(g *grid.Grid, tree *region.Tree, file string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%d regions, hill %s", tree.Len(), tree.Hill)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "-y"
	p.X.Min, p.X.Max = 0, float64(g.Cols)
	p.Y.Min, p.Y.Max = -float64(g.Rows), 0

	water := make(plotter.XYs, 0)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if g.At(grid.Point{X: x, Y: y}) == grid.Water {
				water = append(water, plotter.XY{X: float64(x) + 0.5, Y: -float64(y) - 0.5})
			}
		}
	}
	if len(water) > 0 {
		sc, err := plotter.NewScatter(water)
		if err != nil {
			return err
		}
		sc.GlyphStyle.Color = color.RGBA{R: 40, G: 90, B: 200, A: 255}
		sc.GlyphStyle.Radius = vg.Points(2)
		p.Add(sc)
	}

	colors := generateColors(tree.Len())
	var plotErr error
	tree.Walk(func(idx int, r region.Region) bool {
		outline, err := plotter.NewPolygon(rectXYs(r.Rect))
		if err != nil {
			plotErr = err
			return false
		}
		c := colors[idx]
		outline.LineStyle.Color = c
		outline.LineStyle.Width = vg.Points(1.5)
		outline.Color = withAlpha(c, 60)
		p.Add(outline)
		if r.Order == tree.RootRegion().Order {
			p.Legend.Add(fmt.Sprintf("root %s", r.Rect), outline)
		}
		return true
	})
	if plotErr != nil {
		return plotErr
	}

	p.Legend.Top = true
	w := vg.Length(g.Cols) * cellSize
	h := vg.Length(g.Rows) * cellSize
	return p.Save(w, h, file)
}

// rectXYs returns the four outer corners of r in plot space.
func rectXYs(r grid.Rect) plotter.XYs {
	left, right := float64(r.Left), float64(r.Right+1)
	top, bottom := -float64(r.Top), -float64(r.Bottom+1)
	return plotter.XYs{
		{X: left, Y: top},
		{X: right, Y: top},
		{X: right, Y: bottom},
		{X: left, Y: bottom},
	}
}

// generateColors spreads n hues evenly around the colour wheel.
func generateColors(n int) []color.Color {
	if n <= 0 {
		return nil
	}
	colors := make([]color.Color, n)
	for i := 0; i < n; i++ {
		r, g, b := hsvToRGB(float64(i)/float64(n), 0.7, 0.85)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

// hsvToRGB converts hue, saturation and value in [0,1] to 8-bit RGB.
func hsvToRGB(h, s, v float64) (r, g, b uint8) {
	h6 := h * 6
	i := math.Floor(h6)
	f := h6 - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var rf, gf, bf float64
	switch int(i) % 6 {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}

package chart

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/arcanaland/cygni-arcana/internal/star"
)

const (
	canvasWidth  = 1600
	canvasHeight = 1200

	// Chart coordinate space, extra room on the right for labels.
	xMin = -2.4
	xMax = 3.2
	yMin = -0.8
	yMax = 0.8

	gold = "#FFD700"
)

// gridLanes are the vertical guides matching the Lane categories
var gridLanes = []float64{-2, -1, -0.5, 0, 0.5, 1, 2}

// Render draws the full chart for the given stars and theme
func Render(stars []star.Star, theme Theme) (image.Image, error) {
	labelFace, err := newFace(goregular.TTF, 17)
	if err != nil {
		return nil, fmt.Errorf("error loading label font: %v", err)
	}
	titleFace, err := newFace(gobold.TTF, 26)
	if err != nil {
		return nil, fmt.Errorf("error loading title font: %v", err)
	}
	captionFace, err := newFace(goregular.TTF, 19)
	if err != nil {
		return nil, fmt.Errorf("error loading caption font: %v", err)
	}
	markerFace, err := newFace(gobold.TTF, 22)
	if err != nil {
		return nil, fmt.Errorf("error loading marker font: %v", err)
	}

	dc := gg.NewContext(canvasWidth, canvasHeight)
	setHex(dc, theme.Background, 1)
	dc.Clear()

	drawGrid(dc, theme)
	drawRotationArrow(dc)

	dc.SetFontFace(labelFace)
	for _, p := range Project(stars) {
		drawStar(dc, p, theme)
	}

	drawCaptions(dc, theme, titleFace, captionFace, markerFace)

	return dc.Image(), nil
}

// Save writes the rendered chart to a PNG file
func Save(img image.Image, path string) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("error saving chart to %s: %v", path, err)
	}
	return nil
}

// Downscale resizes the chart to the given pixel height, keeping aspect
func Downscale(img image.Image, height uint) image.Image {
	return resize.Resize(0, height, img, resize.Lanczos3)
}

// px and py map chart coordinates to canvas pixels

func px(x float64) float64 {
	return (x - xMin) / (xMax - xMin) * canvasWidth
}

func py(y float64) float64 {
	return (1 - (y-yMin)/(yMax-yMin)) * canvasHeight
}

func newFace(ttf []byte, points float64) (font.Face, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    points,
		DPI:     96,
		Hinting: font.HintingFull,
	})
}

// setHex sets the current draw color from a hex string with an alpha.
// Colors reaching this point were validated with the catalog.
func setHex(dc *gg.Context, hex string, alpha float64) {
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	dc.SetRGBA(c.R, c.G, c.B, alpha)
}

func drawGrid(dc *gg.Context, theme Theme) {
	for _, lane := range gridLanes {
		x := px(lane)
		if lane == 0 {
			// The GC-Sol-GAC line itself.
			setHex(dc, gold, 0.8)
			dc.SetDash(8, 8)
		} else {
			setHex(dc, theme.Grid, 0.3)
			dc.SetDash()
		}
		dc.SetLineWidth(1)
		dc.DrawLine(x, py(yMax), x, py(yMin))
		dc.Stroke()
	}
	dc.SetDash()
}

// drawRotationArrow draws the curved dashed arrow marking the direction
// of galactic rotation along the bottom of the chart
func drawRotationArrow(dc *gg.Context) {
	x1, y1 := px(1.5), py(-0.65)
	x2, y2 := px(-1.5), py(-0.65)
	cx, cy := px(0), py(-0.69)

	setHex(dc, gold, 0.6)
	dc.SetLineWidth(2)
	dc.SetDash(10, 8)
	dc.MoveTo(x1, y1)
	dc.QuadraticTo(cx, cy, x2, y2)
	dc.Stroke()
	dc.SetDash()

	// Arrowhead at the leading end.
	dc.MoveTo(x2+22, y2-12)
	dc.LineTo(x2, y2)
	dc.LineTo(x2+22, y2+10)
	dc.Stroke()
}

func drawStar(dc *gg.Context, p PlacedStar, theme Theme) {
	x, y := px(p.X), py(p.Y)
	labelOffset := markerRadius(p.Size*10) + 18

	switch {
	case p.IsGalacticCenter():
		// Black hole: outer glow, event-horizon ring, dark core.
		setHex(dc, theme.BlackHoleGlow, 0.4)
		dc.DrawCircle(x, y, markerRadius(p.Size*12))
		dc.Fill()

		setHex(dc, theme.BlackHoleEdge, 1)
		dc.SetLineWidth(3)
		dc.DrawCircle(x, y, markerRadius(p.Size*10))
		dc.Stroke()

		setHex(dc, theme.Background, 1)
		dc.DrawCircle(x, y, markerRadius(p.Size*6))
		dc.FillPreserve()
		setHex(dc, theme.BlackHoleEdge, 1)
		dc.SetLineWidth(1.5)
		dc.Stroke()

		labelOffset = markerRadius(p.Size*12) + 24

	case p.IsSol():
		setHex(dc, p.Color, 0.8)
		dc.DrawCircle(x, y, markerRadius(p.Size*10))
		dc.FillPreserve()
		setHex(dc, theme.SolEdge, 1)
		dc.SetLineWidth(3)
		dc.Stroke()

	default:
		setHex(dc, p.Color, 0.8)
		dc.DrawCircle(x, y, markerRadius(p.Size*10))
		dc.FillPreserve()
		setHex(dc, theme.Text, 1)
		dc.SetLineWidth(1.5)
		dc.Stroke()
	}

	setHex(dc, theme.Text, 1)
	dc.DrawStringAnchored(p.Label(), x+labelOffset, y, 0, 0.35)
}

// markerRadius converts a marker area (matplotlib-style size units) to a
// pixel radius
func markerRadius(area float64) float64 {
	if area < 0 {
		area = 0
	}
	return 1.1 * math.Sqrt(area)
}

func drawCaptions(dc *gg.Context, theme Theme, titleFace, captionFace, markerFace font.Face) {
	dc.SetFontFace(titleFace)
	setHex(dc, theme.Text, 1)
	dc.DrawStringAnchored("Cygni Arcana - Stars Mapped to Tarot Cards by Galactic Coordinates",
		canvasWidth/2, 36, 0.5, 0.5)

	dc.SetFontFace(captionFace)
	setHex(dc, theme.Text, 1)
	dc.DrawStringAnchored("Milky Way Rotation Direction", px(0), py(-0.685)+16, 0.5, 0.5)

	// Ordinal-ranking axis caption, rotated along the left edge.
	dc.Push()
	dc.RotateAbout(-gg.Radians(90), 40, canvasHeight/2)
	dc.DrawStringAnchored("(GAC ← → GC) Ordinal Distance Ranking", 40, canvasHeight/2, 0.5, 0.5)
	dc.Pop()

	dc.SetFontFace(markerFace)
	setHex(dc, gold, 1)
	dc.DrawStringAnchored("⚛ GC", px(0), py(0.76), 0.5, 0.5)
	dc.DrawStringAnchored("★ GAC", px(0), py(-0.75), 0.5, 0.5)
}

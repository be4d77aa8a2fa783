package gomoku

import (
	"fmt"
	"image"
	"image/color"
	"strconv"

	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	CellPx     = 24
	StonePx    = 20
	SideOffset = 36
	LinePx     = 1.5
	FontSize   = 11.0
)

var (
	WoodColor    = color.RGBA{R: 220, G: 179, B: 92, A: 255}
	GridColor    = color.RGBA{R: 60, G: 40, B: 20, A: 255}
	BlackFill    = color.RGBA{R: 25, G: 25, B: 25, A: 255}
	WhiteFill    = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	OutlineColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	MarkColor    = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	LabelColor   = color.RGBA{R: 35, G: 25, B: 10, A: 255}
)

type Fonts struct {
	Font        *truetype.Font
	FontExtents draw2dimg.FontExtents
}

func NewFonts() Fonts {
	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		panic(fmt.Sprintf("could not parse bundled font: %v", err))
	}
	draw2d.RegisterFont(draw2d.FontData{Name: "goregular"}, font)
	return Fonts{
		Font:        font,
		FontExtents: draw2dimg.Extents(font, FontSize),
	}
}

// Renderer draws board snapshots as PNG-ready images. The background with the
// grid and coordinate labels is rendered once and reused per call.
type Renderer struct {
	background image.Image
	fonts      Fonts
}

func NewRenderer() Renderer {
	fonts := NewFonts()
	return Renderer{
		background: drawBackground(fonts),
		fonts:      fonts,
	}
}

// DrawBoard renders every stone on the board, circling lastMove when it is a
// placed stone.
func (r Renderer) DrawBoard(board Board, lastMove *Tile) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, r.background.Bounds().Dx(), r.background.Bounds().Dy()))
	g := draw2dimg.NewGraphicContext(img)

	g.DrawImage(r.background)

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			cell := board.At(x, y)
			if cell == Empty {
				continue
			}
			fill := WhiteFill
			if cell == Black {
				fill = BlackFill
			}
			drawStone(g, x, y, fill)
		}
	}

	if lastMove != nil && InBounds(lastMove.X, lastMove.Y) && board.At(lastMove.X, lastMove.Y) != Empty {
		g.SetStrokeColor(MarkColor)
		g.SetLineWidth(LinePx * 2)
		draw2dkit.Circle(g, pixelAt(lastMove.X), pixelAt(lastMove.Y), StonePx/2+2)
		g.Stroke()
	}

	return img
}

func pixelAt(i int) float64 {
	return float64(SideOffset + i*CellPx)
}

func drawStone(g *draw2dimg.GraphicContext, x, y int, fill color.RGBA) {
	g.SetFillColor(fill)
	g.SetStrokeColor(OutlineColor)
	g.SetLineWidth(LinePx)
	draw2dkit.Circle(g, pixelAt(x), pixelAt(y), StonePx/2)
	g.FillStroke()
}

func drawBackground(fonts Fonts) image.Image {
	side := SideOffset*2 + CellPx*(BoardSize-1)
	img := image.NewRGBA(image.Rect(0, 0, side, side))

	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			img.Set(x, y, WoodColor)
		}
	}

	g := draw2dimg.NewGraphicContext(img)
	g.SetStrokeColor(GridColor)
	g.SetLineWidth(LinePx)

	for i := 0; i < BoardSize; i++ {
		g.MoveTo(pixelAt(i), pixelAt(0))
		g.LineTo(pixelAt(i), pixelAt(BoardSize-1))
		g.Stroke()

		g.MoveTo(pixelAt(0), pixelAt(i))
		g.LineTo(pixelAt(BoardSize-1), pixelAt(i))
		g.Stroke()
	}

	// star points on the center and the quarter intersections
	g.SetFillColor(GridColor)
	quarter := Center / 2
	for _, p := range [][2]int{
		{Center, Center},
		{quarter, quarter}, {BoardSize - 1 - quarter, quarter},
		{quarter, BoardSize - 1 - quarter}, {BoardSize - 1 - quarter, BoardSize - 1 - quarter},
	} {
		draw2dkit.Circle(g, pixelAt(p[0]), pixelAt(p[1]), 3)
		g.Fill()
	}

	g.SetFillColor(LabelColor)
	for i := 0; i < BoardSize; i++ {
		text := strconv.Itoa(i)
		drawCenterString(g, fonts, text, int(pixelAt(i))-CellPx/2, 0, CellPx, SideOffset/2)
		drawCenterString(g, fonts, text, 0, int(pixelAt(i))-CellPx/2, SideOffset/2, CellPx)
	}

	return img
}

func drawCenterString(g *draw2dimg.GraphicContext, fonts Fonts, text string, x, y, width, height int) {
	g.SetFont(fonts.Font)
	g.SetFontSize(FontSize)

	left, _, right, _ := g.GetStringBounds(text)
	strWidth := right - left
	xDraw := float64(x) + (float64(width)-strWidth)/2
	yDraw := float64(y) + ((float64(height)-fonts.FontExtents.Height)/2 + fonts.FontExtents.Ascent)

	g.FillStringAt(text, xDraw, yDraw)
}

package objects

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/riverraid-go/riverraid/client/fonts"
	"github.com/riverraid-go/riverraid/pkg/engine"
	"golang.org/x/image/font"
)

type TextObject struct {
	text   string
	x      float64
	y      float64
	style  engine.TextStyle
	zIndex int
}

var _ GameObject = &TextObject{}

type NewTextObjectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the text.
	X float64
	// Y is the y-coordinate of the text.
	Y float64
	// Style controls the face, color and anchor of the text.
	Style engine.TextStyle
	// ZIndex is the z-index of the text.
	ZIndex int
}

func NewTextObject(opts NewTextObjectOptions) *TextObject {
	return &TextObject{
		text:   opts.Text,
		x:      opts.X,
		y:      opts.Y,
		style:  opts.Style,
		zIndex: opts.ZIndex,
	}
}

func (o *TextObject) GetZIndex() int {
	return o.zIndex
}

func (o *TextObject) Draw(screen *ebiten.Image) {
	f := fonts.Face(o.style.Size, o.style.Bold)
	clr := o.style.Color
	if clr == nil {
		clr = color.White
	}

	// text.Draw positions the baseline; shift by the ascent so (x, y) is the top left corner.
	x := o.x
	y := o.y + float64(f.Metrics().Ascent.Ceil())
	if o.style.Centered {
		bounds, _ := font.BoundString(f, o.text)
		x -= float64((bounds.Max.X - bounds.Min.X).Ceil()) / 2
		y -= float64(f.Metrics().Height.Ceil()) / 2
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(screen, o.text, f, op)
}

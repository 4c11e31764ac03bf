package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/riverraid-go/riverraid/pkg/engine"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

func init() {
	if err := loadFonts(); err != nil {
		panic(fmt.Sprintf("Failed to load fonts: %v", err))
	}
}

const dpi = 72

var sizes = map[engine.FontSize]float64{
	engine.FontSizeSmall:  16,
	engine.FontSizeNormal: 20,
	engine.FontSizeMedium: 32,
	engine.FontSizeLarge:  48,
}

var (
	regularFaces = map[engine.FontSize]font.Face{}
	boldFaces    = map[engine.FontSize]font.Face{}
)

func loadFonts() error {
	tt, err := opentype.Parse(fonts.MPlus1pRegular_ttf)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	ttfBold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %v", err)
	}

	for size, points := range sizes {
		face, err := opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    points,
			DPI:     dpi,
			Hinting: font.HintingVertical,
		})
		if err != nil {
			return fmt.Errorf("failed to create font face: %v", err)
		}
		regularFaces[size] = face

		boldFaces[size] = truetype.NewFace(ttfBold, &truetype.Options{
			Size:    points,
			DPI:     dpi,
			Hinting: font.HintingFull,
		})
	}

	return nil
}

// Face returns the font face for a text style. Unknown sizes fall back to normal.
func Face(size engine.FontSize, bold bool) font.Face {
	faces := regularFaces
	if bold {
		faces = boldFaces
	}
	if face, ok := faces[size]; ok {
		return face
	}
	return faces[engine.FontSizeNormal]
}

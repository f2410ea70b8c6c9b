package asset

import (
	"image"
	_ "image/png"
	"io"
)

// Image is a bitmap handle with glyph stand-ins for character-cell surfaces
// Glyphs are indexed by quarter-turn rotation; a single glyph serves all rotations
type Image struct {
	*Handle[image.Image]
	Glyphs []rune
}

// NewImage creates an unresolved PNG handle
func NewImage(path string, glyphs ...rune) *Image {
	return &Image{
		Handle: NewHandle(path, decodeImage),
		Glyphs: glyphs,
	}
}

// Glyph returns the stand-in for rotation r (quarter turns), or 0 when none is set
func (i *Image) Glyph(r int) rune {
	if i == nil || len(i.Glyphs) == 0 {
		return 0
	}
	r %= len(i.Glyphs)
	if r < 0 {
		r += len(i.Glyphs)
	}
	return i.Glyphs[r]
}

func decodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

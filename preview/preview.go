// Package preview renders the glyphs of a raw bitmap font into images and
// ASCII art, so the generated blob can be inspected without the consuming
// text renderer.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"

	"FontModules/fontbin"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
)

// sheetColumns is the number of glyph cells per row in a preview sheet.
const sheetColumns = 16

// Sheet renders every glyph of the font into a grid image, one cell per
// slot in code point order. Blank slots stay blank cells.
func Sheet(f *fontbin.Font) *image.RGBA {
	rows := (f.NumChars + sheetColumns - 1) / sheetColumns
	img := image.NewRGBA(image.Rect(0, 0, sheetColumns*f.GlyphWidth, rows*f.GlyphHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i := 0; i < f.NumChars; i++ {
		ch := f.FirstChar + byte(i)
		x := (i % sheetColumns) * f.GlyphWidth
		y := (i / sheetColumns) * f.GlyphHeight
		drawGlyph(img, f, ch, x, y)
	}
	return img
}

// RenderText renders a string left to right with a fixed advance of one
// glyph width. Characters outside the font's range advance without drawing.
func RenderText(f *fontbin.Font, text string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(text)*f.GlyphWidth, f.GlyphHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i := 0; i < len(text); i++ {
		drawGlyph(img, f, text[i], i*f.GlyphWidth, 0)
	}
	return img
}

// drawGlyph stamps one glyph record at (x, y), scanning each row byte from
// the most significant bit (leftmost pixel) down.
func drawGlyph(img *image.RGBA, f *fontbin.Font, ch byte, x, y int) {
	glyph, ok := f.Glyph(ch)
	if !ok {
		return
	}

	bytesPerRow := f.BytesPerRow()
	for row := 0; row < f.GlyphHeight; row++ {
		for byteIdx := 0; byteIdx < bytesPerRow; byteIdx++ {
			b := glyph[row*bytesPerRow+byteIdx]
			for bit := 0; bit < 8; bit++ {
				px := x + byteIdx*8 + bit
				if px >= x+f.GlyphWidth {
					break
				}
				if (b>>(7-bit))&1 == 1 {
					img.Set(px, y+row, color.Black)
				}
			}
		}
	}
}

// SaveBMP writes the image as a BMP file, scaled up by the given integer
// factor (nearest neighbour, so pixels stay crisp).
func SaveBMP(img image.Image, path string, scale int) (err error) {
	out := img
	if scale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		out = dst
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	if err = bmp.Encode(f, out); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// DumpGlyph returns the glyph's rows as strings of 'X' and spaces, one per
// scanline. Characters outside the font's range return nil.
func DumpGlyph(f *fontbin.Font, ch byte) []string {
	glyph, ok := f.Glyph(ch)
	if !ok {
		return nil
	}

	bytesPerRow := f.BytesPerRow()
	lines := make([]string, 0, f.GlyphHeight)
	for row := 0; row < f.GlyphHeight; row++ {
		var sb strings.Builder
		for bit := 0; bit < f.GlyphWidth; bit++ {
			b := glyph[row*bytesPerRow+bit/8]
			if (b>>(7-bit%8))&1 == 1 {
				sb.WriteByte('X')
			} else {
				sb.WriteByte(' ')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

package fontbin

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Font is an in-memory bitmap font: NumChars consecutive glyph records
// starting at code point FirstChar. Each record holds GlyphHeight scanlines
// of (GlyphWidth+7)/8 bytes, with the most significant bit of each byte as
// the leftmost pixel.
type Font struct {
	GlyphWidth  int
	GlyphHeight int
	FirstChar   byte
	NumChars    int
	Data        []byte
}

// FromRaw wraps a headerless blob such as assets/default_font.bin, which
// covers all 256 single-byte code points.
func FromRaw(data []byte, width, height int) *Font {
	return &Font{
		GlyphWidth:  width,
		GlyphHeight: height,
		FirstChar:   0,
		NumChars:    256,
		Data:        data,
	}
}

// BytesPerRow returns the number of bytes in one scanline.
func (f *Font) BytesPerRow() int {
	return (f.GlyphWidth + 7) / 8
}

// BytesPerGlyph returns the length of one glyph record.
func (f *Font) BytesPerGlyph() int {
	return f.BytesPerRow() * f.GlyphHeight
}

// Glyph returns the record for ch, or false when ch is outside the font's
// range or the backing data is too short.
func (f *Font) Glyph(ch byte) ([]byte, bool) {
	if ch < f.FirstChar {
		return nil, false
	}
	idx := int(ch - f.FirstChar)
	if idx >= f.NumChars {
		return nil, false
	}
	n := f.BytesPerGlyph()
	offset := idx * n
	if offset+n > len(f.Data) {
		return nil, false
	}
	return f.Data[offset : offset+n], true
}

// The headered variant prefixes the bitmap data with six bytes:
// uint16 width, uint16 height (little endian), byte first char,
// byte number of chars.

// ReadFNT reads a headered font.
func ReadFNT(r io.Reader) (*Font, error) {
	var err error

	var width, height uint16
	err = binary.Read(r, binary.LittleEndian, &width)
	if err != nil {
		return nil, fmt.Errorf("reading font width: %w", err)
	}
	err = binary.Read(r, binary.LittleEndian, &height)
	if err != nil {
		return nil, fmt.Errorf("reading font height: %w", err)
	}

	var firstChar, numChars uint8
	err = binary.Read(r, binary.LittleEndian, &firstChar)
	if err != nil {
		return nil, fmt.Errorf("reading first char: %w", err)
	}
	err = binary.Read(r, binary.LittleEndian, &numChars)
	if err != nil {
		return nil, fmt.Errorf("reading char count: %w", err)
	}

	f := &Font{
		GlyphWidth:  int(width),
		GlyphHeight: int(height),
		FirstChar:   firstChar,
		NumChars:    int(numChars),
	}
	if f.GlyphWidth <= 0 || f.GlyphHeight <= 0 {
		return nil, fmt.Errorf("invalid font dimensions %dx%d", f.GlyphWidth, f.GlyphHeight)
	}

	f.Data = make([]byte, f.NumChars*f.BytesPerGlyph())
	if _, err = io.ReadFull(r, f.Data); err != nil {
		return nil, fmt.Errorf("reading font bitmap data: %w", err)
	}
	return f, nil
}

// WriteFNT writes the font in headered form.
func (f *Font) WriteFNT(w io.Writer) error {
	var err error

	if f.NumChars > 255 {
		return fmt.Errorf("headered font supports at most 255 chars, got %d", f.NumChars)
	}
	if want := f.NumChars * f.BytesPerGlyph(); len(f.Data) != want {
		return fmt.Errorf("font data is %d bytes, want %d", len(f.Data), want)
	}

	err = binary.Write(w, binary.LittleEndian, uint16(f.GlyphWidth))
	if err != nil {
		return fmt.Errorf("writing font width: %w", err)
	}
	err = binary.Write(w, binary.LittleEndian, uint16(f.GlyphHeight))
	if err != nil {
		return fmt.Errorf("writing font height: %w", err)
	}
	err = binary.Write(w, binary.LittleEndian, f.FirstChar)
	if err != nil {
		return fmt.Errorf("writing first char: %w", err)
	}
	err = binary.Write(w, binary.LittleEndian, uint8(f.NumChars))
	if err != nil {
		return fmt.Errorf("writing char count: %w", err)
	}

	n, err := w.Write(f.Data)
	if err != nil {
		return fmt.Errorf("writing font bitmap data: %w", err)
	}
	if n != len(f.Data) {
		return fmt.Errorf("incomplete bitmap data write (%d of %d bytes)", n, len(f.Data))
	}
	return nil
}

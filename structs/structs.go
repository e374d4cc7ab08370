// project/structs/structs.go
package structs

import (
	"fmt"
	"strconv"
	"strings"
)

// FontFormat describes one raw bitmap font blob: a fixed number of glyph
// slots indexed by single-byte code point, each slot holding one row byte
// per scanline.
type FontFormat struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	GlyphWidth  int    `yaml:"glyph_width"`
	GlyphHeight int    `yaml:"glyph_height"`
	Slots       int    `yaml:"slots"`
	// Size is optional and can be an expression over the fields above,
	// e.g. "slots * glyph_height" or "BlobSize(slots, glyph_height)".
	// When present it must agree with the computed blob size.
	Size   string     `yaml:"size,omitempty"`
	Glyphs []GlyphDef `yaml:"glyphs"`
}

// GlyphDef populates one glyph slot. The slot is named either by Char
// (a single character) or by Code (an integer code point); rows not listed
// stay zero.
type GlyphDef struct {
	Char string   `yaml:"char,omitempty"`
	Code int      `yaml:"code,omitempty"`
	Rows []RowDef `yaml:"rows"`
}

// RowDef sets one scanline of a glyph record.
type RowDef struct {
	Row  int    `yaml:"row"`
	Bits string `yaml:"bits"`
}

// BytesPerGlyph returns the length of one glyph record.
func (f *FontFormat) BytesPerGlyph() int {
	return (f.GlyphWidth + 7) / 8 * f.GlyphHeight
}

// GetCode resolves the slot index for this glyph definition.
func (g *GlyphDef) GetCode() (int, error) {
	if g.Char != "" {
		if len(g.Char) != 1 {
			return 0, fmt.Errorf("glyph char %q must be a single byte character", g.Char)
		}
		return int(g.Char[0]), nil
	}
	return g.Code, nil
}

// GetBits parses the row pattern into a row byte. Three forms are accepted,
// all with the most significant bit as the leftmost pixel:
//
//	hex:    "0x3C"
//	binary: "00111100" (an optional "0b" prefix is allowed)
//	pixels: "..XXXX.." ('X' set, '.' clear, exactly 8 columns)
func (r *RowDef) GetBits() (byte, error) {
	s := strings.TrimSpace(r.Bits)
	switch {
	case s == "":
		return 0, fmt.Errorf("row %d has empty bits", r.Row)

	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		v, err := strconv.ParseUint(s[2:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid hex bits %q: %w", r.Row, r.Bits, err)
		}
		return byte(v), nil

	case strings.ContainsAny(s, "Xx."):
		if len(s) != 8 {
			return 0, fmt.Errorf("row %d: pixel bits %q must have exactly 8 columns", r.Row, r.Bits)
		}
		var v byte
		for i := 0; i < 8; i++ {
			switch s[i] {
			case 'X', 'x':
				v |= 1 << (7 - i)
			case '.':
				// clear pixel
			default:
				return 0, fmt.Errorf("row %d: invalid pixel column %q in %q", r.Row, s[i], r.Bits)
			}
		}
		return v, nil

	default:
		v, err := strconv.ParseUint(strings.TrimPrefix(s, "0b"), 2, 8)
		if err != nil {
			return 0, fmt.Errorf("row %d: invalid binary bits %q: %w", r.Row, r.Bits, err)
		}
		return byte(v), nil
	}
}

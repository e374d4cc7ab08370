package generator

import "FontModules/structs"

// DefaultFont is the built-in placeholder font for the text renderer:
// 256 slots of 8x16 glyphs with only A, H, e, l and o populated. All other
// slots render blank.
func DefaultFont() *structs.FontFormat {
	return &structs.FontFormat{
		Name:        "default",
		Description: "Placeholder 8x16 raw bitmap font with a handful of test glyphs",
		GlyphWidth:  8,
		GlyphHeight: 16,
		Slots:       256,
		Size:        "slots * glyph_height",
		Glyphs: []structs.GlyphDef{
			{Char: "A", Rows: []structs.RowDef{
				{Row: 2, Bits: "00111100"},
				{Row: 3, Bits: "01100110"},
				{Row: 4, Bits: "11000011"},
				{Row: 5, Bits: "11000011"},
				{Row: 6, Bits: "11111111"},
				{Row: 7, Bits: "11000011"},
				{Row: 8, Bits: "11000011"},
				{Row: 9, Bits: "11000011"},
			}},
			{Char: "H", Rows: []structs.RowDef{
				{Row: 2, Bits: "11000011"},
				{Row: 3, Bits: "11000011"},
				{Row: 4, Bits: "11000011"},
				{Row: 5, Bits: "11111111"},
				{Row: 6, Bits: "11000011"},
				{Row: 7, Bits: "11000011"},
				{Row: 8, Bits: "11000011"},
				{Row: 9, Bits: "11000011"},
			}},
			{Char: "e", Rows: []structs.RowDef{
				{Row: 4, Bits: "00111100"},
				{Row: 5, Bits: "01100110"},
				{Row: 6, Bits: "11111111"},
				{Row: 7, Bits: "11000000"},
				{Row: 8, Bits: "11000000"},
				{Row: 9, Bits: "01100110"},
				{Row: 10, Bits: "00111100"},
			}},
			{Char: "l", Rows: []structs.RowDef{
				{Row: 1, Bits: "00111000"},
				{Row: 2, Bits: "00011000"},
				{Row: 3, Bits: "00011000"},
				{Row: 4, Bits: "00011000"},
				{Row: 5, Bits: "00011000"},
				{Row: 6, Bits: "00011000"},
				{Row: 7, Bits: "00011000"},
				{Row: 8, Bits: "00011000"},
				{Row: 9, Bits: "00011000"},
				{Row: 10, Bits: "00111100"},
			}},
			{Char: "o", Rows: []structs.RowDef{
				{Row: 4, Bits: "00111100"},
				{Row: 5, Bits: "01100110"},
				{Row: 6, Bits: "11000011"},
				{Row: 7, Bits: "11000011"},
				{Row: 8, Bits: "11000011"},
				{Row: 9, Bits: "01100110"},
				{Row: 10, Bits: "00111100"},
			}},
		},
	}
}

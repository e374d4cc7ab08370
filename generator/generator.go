package generator

import (
	"fmt"
	"io/ioutil"
	"log"

	"FontModules/structs"
	"FontModules/utils"

	"github.com/knetic/govaluate"
	"gopkg.in/yaml.v2"
)

// LoadFormat reads and parses a YAML font definition.
func LoadFormat(yamlFile string) (*structs.FontFormat, error) {
	data, err := ioutil.ReadFile(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("error reading font definition %s: %w", yamlFile, err)
	}

	var format structs.FontFormat
	err = yaml.Unmarshal(data, &format)
	if err != nil {
		// Provide more context on YAML parsing errors
		yamlErr, ok := err.(*yaml.TypeError)
		if ok {
			for _, msg := range yamlErr.Errors {
				log.Printf("YAML unmarshal error: %s", msg)
			}
		}
		return nil, fmt.Errorf("error unmarshaling YAML from %s: %w", yamlFile, err)
	}
	return &format, nil
}

// BuildBlob validates the font definition and assembles the blob: a
// zero-filled buffer of slots * bytes-per-glyph bytes, with each defined
// glyph's sparse rows poked in at code * bytesPerGlyph + row. Rows that a
// glyph does not list stay zero, as do all undefined slots.
func BuildBlob(f *structs.FontFormat) ([]byte, error) {
	if f.GlyphWidth <= 0 || f.GlyphWidth > 8 {
		return nil, fmt.Errorf("font %q: glyph_width must be between 1 and 8 (one row byte per scanline), got %d", f.Name, f.GlyphWidth)
	}
	if f.GlyphHeight <= 0 {
		return nil, fmt.Errorf("font %q: glyph_height must be positive, got %d", f.Name, f.GlyphHeight)
	}
	if f.Slots <= 0 || f.Slots > 256 {
		return nil, fmt.Errorf("font %q: slots must be between 1 and 256, got %d", f.Name, f.Slots)
	}

	bytesPerGlyph := f.BytesPerGlyph()
	size := f.Slots * bytesPerGlyph

	// The optional size expression must agree with the computed layout.
	if f.Size != "" {
		if !utils.IsValidSizeExpression(f.Size) {
			return nil, fmt.Errorf("font %q: invalid size expression %q (cannot be empty or '...')", f.Name, f.Size)
		}
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(f.Size, utils.GetExpressionFunctions())
		if err != nil {
			return nil, fmt.Errorf("font %q: invalid size expression %q: %w", f.Name, f.Size, err)
		}
		result, err := expr.Evaluate(map[string]interface{}{
			"slots":        float64(f.Slots),
			"glyph_width":  float64(f.GlyphWidth),
			"glyph_height": float64(f.GlyphHeight),
		})
		if err != nil {
			return nil, fmt.Errorf("font %q: evaluating size expression %q: %w", f.Name, f.Size, err)
		}
		value, ok := result.(float64)
		if !ok {
			return nil, fmt.Errorf("font %q: size expression %q did not evaluate to a number", f.Name, f.Size)
		}
		if int(value) != size {
			return nil, fmt.Errorf("font %q: size expression %q evaluates to %d, but %d slots of %d bytes need %d bytes",
				f.Name, f.Size, int(value), f.Slots, bytesPerGlyph, size)
		}
	}

	if len(f.Glyphs) == 0 {
		log.Printf("Warning: font %q defines no glyphs; the blob will be all zeros.", f.Name)
	}

	blob := make([]byte, size)
	for _, g := range f.Glyphs {
		code, err := g.GetCode()
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", f.Name, err)
		}
		if code < 0 || code >= f.Slots {
			return nil, fmt.Errorf("font %q: glyph code %d is outside the 0-%d slot range", f.Name, code, f.Slots-1)
		}

		base := code * bytesPerGlyph
		seen := make(map[int]bool, len(g.Rows))
		for _, row := range g.Rows {
			if row.Row < 0 || row.Row >= f.GlyphHeight {
				return nil, fmt.Errorf("font %q: glyph %d: row %d is outside the 0-%d range", f.Name, code, row.Row, f.GlyphHeight-1)
			}
			if seen[row.Row] {
				log.Printf("Warning: font %q: glyph %d sets row %d more than once; the last value wins.", f.Name, code, row.Row)
			}
			seen[row.Row] = true

			bits, err := row.GetBits()
			if err != nil {
				return nil, fmt.Errorf("font %q: glyph %d: %w", f.Name, code, err)
			}
			blob[base+row.Row] = bits
		}
	}
	return blob, nil
}

package preview

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"FontModules/fontbin"

	"golang.org/x/image/bmp"
)

// testFont builds a 256-slot 8x16 font with an 'A' whose top defined row
// (row 2) is 0x3C.
func testFont() *fontbin.Font {
	blob := make([]byte, 256*16)
	rows := []byte{0x3C, 0x66, 0xC3, 0xC3, 0xFF, 0xC3, 0xC3, 0xC3}
	for i, b := range rows {
		blob[0x41*16+2+i] = b
	}
	return fontbin.FromRaw(blob, 8, 16)
}

func isBlack(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0 && g == 0 && b == 0
}

func TestSheetGeometryAndPixels(t *testing.T) {
	f := testFont()
	img := Sheet(f)

	b := img.Bounds()
	if b.Dx() != 16*8 || b.Dy() != 16*16 {
		t.Fatalf("sheet is %dx%d, want 128x256", b.Dx(), b.Dy())
	}

	// 'A' is slot 0x41: column 1, row 4 of the sheet grid.
	cellX, cellY := (0x41%16)*8, (0x41/16)*16

	// Row 2 is 0x3C: two clear, four set, two clear.
	wantRow := [8]bool{false, false, true, true, true, true, false, false}
	for bit, want := range wantRow {
		got := isBlack(img.At(cellX+bit, cellY+2))
		if got != want {
			t.Errorf("pixel (%d,%d) black=%v, want %v", cellX+bit, cellY+2, got, want)
		}
	}

	// Row 0 was never defined and must stay white.
	for bit := 0; bit < 8; bit++ {
		if isBlack(img.At(cellX+bit, cellY)) {
			t.Errorf("undefined row pixel (%d,%d) is black", cellX+bit, cellY)
		}
	}
}

func TestRenderText(t *testing.T) {
	f := testFont()
	img := RenderText(f, "AA")

	b := img.Bounds()
	if b.Dx() != 2*8 || b.Dy() != 16 {
		t.Fatalf("text image is %dx%d, want 16x16", b.Dx(), b.Dy())
	}

	// Both 'A' cells get the same row-2 pattern at their own advance.
	for cell := 0; cell < 2; cell++ {
		x := cell * 8
		if !isBlack(img.At(x+2, 2)) || isBlack(img.At(x+0, 2)) {
			t.Errorf("cell %d row 2 pattern wrong", cell)
		}
	}
}

func TestDumpGlyph(t *testing.T) {
	f := testFont()
	lines := DumpGlyph(f, 'A')
	if len(lines) != 16 {
		t.Fatalf("dump has %d lines, want 16", len(lines))
	}

	if lines[2] != "  XXXX  " {
		t.Errorf("row 2 = %q, want %q", lines[2], "  XXXX  ")
	}
	if lines[6] != "XXXXXXXX" {
		t.Errorf("row 6 = %q, want %q", lines[6], "XXXXXXXX")
	}
	if lines[0] != "        " {
		t.Errorf("row 0 = %q, want all blank", lines[0])
	}

	if got := DumpGlyph(&fontbin.Font{GlyphWidth: 8, GlyphHeight: 16, FirstChar: 0x20, NumChars: 96}, 0x00); got != nil {
		t.Error("DumpGlyph outside the font's range should return nil")
	}
}

func TestSaveBMP(t *testing.T) {
	f := testFont()
	path := filepath.Join(t.TempDir(), "sheet.bmp")

	if err := SaveBMP(Sheet(f), path, 2); err != nil {
		t.Fatalf("SaveBMP failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening written BMP failed: %v", err)
	}
	defer file.Close()

	decoded, err := bmp.Decode(file)
	if err != nil {
		t.Fatalf("decoding written BMP failed: %v", err)
	}
	b := decoded.Bounds()
	if b.Dx() != 2*128 || b.Dy() != 2*256 {
		t.Errorf("decoded BMP is %dx%d, want 256x512", b.Dx(), b.Dy())
	}
}

func TestSaveBMPMissingDirectory(t *testing.T) {
	f := testFont()
	path := filepath.Join(t.TempDir(), "no_such_dir", "sheet.bmp")
	if err := SaveBMP(Sheet(f), path, 1); err == nil {
		t.Error("expected SaveBMP to fail for a missing directory")
	}
}

package main

import (
	"bytes"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"FontModules/fontbin"
	"FontModules/generator"
)

// Expected blob geometry for the default font.
const (
	testBlobSize      = 256 * 16
	testBytesPerGlyph = 16
)

// TestGenerateWriteReadVerify runs the whole pipeline: build the default
// blob, write it to disk, read it back and verify the layout.
func TestGenerateWriteReadVerify(t *testing.T) {
	log.Println("Starting pipeline test (Build -> Write -> Read -> Verify)...")

	assetsDir := filepath.Join(t.TempDir(), "assets")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		t.Fatalf("failed to create assets dir: %v", err)
	}
	blobPath := filepath.Join(assetsDir, "default_font.bin")

	// --- Build Phase ---
	log.Println("Phase 1: Building default font blob...")
	format := generator.DefaultFont()
	blob, err := generator.BuildBlob(format)
	if err != nil {
		t.Fatalf("Build phase failed: %v", err)
	}
	if len(blob) != testBlobSize {
		t.Fatalf("built blob is %d bytes, want %d", len(blob), testBlobSize)
	}

	// --- Write Phase ---
	log.Println("Phase 2: Writing", blobPath)
	if err := generator.WriteBlob(blob, blobPath); err != nil {
		t.Fatalf("Write phase failed: %v", err)
	}

	// --- Read Phase ---
	log.Println("Phase 3: Reading back", blobPath)
	readBack, err := ioutil.ReadFile(blobPath)
	if err != nil {
		t.Fatalf("Read phase failed: %v", err)
	}
	if len(readBack) != testBlobSize {
		t.Fatalf("read back %d bytes, want %d", len(readBack), testBlobSize)
	}

	// --- Verification Phase ---
	log.Println("Phase 4: Verifying blob layout...")
	checks := []struct {
		offset int
		want   byte
	}{
		{0x00*testBytesPerGlyph + 0, 0x00},  // blank slot stays zero
		{0x41*testBytesPerGlyph + 2, 0x3C},  // 'A' top row
		{0x41*testBytesPerGlyph + 4, 0xC3},  // 'A' stem row
		{0x48*testBytesPerGlyph + 5, 0xFF},  // 'H' crossbar
		{0x65*testBytesPerGlyph + 7, 0xC0},  // 'e' left edge
		{0x6C*testBytesPerGlyph + 10, 0x3C}, // 'l' foot
		{0x6F*testBytesPerGlyph + 4, 0x3C},  // 'o' top row
	}
	for _, c := range checks {
		if readBack[c.offset] != c.want {
			t.Errorf("byte at offset 0x%04X is 0x%02X, want 0x%02X", c.offset, readBack[c.offset], c.want)
		}
	}
	if err := generator.ValidateBlob(blobPath, format); err != nil {
		t.Errorf("Verification FAILED: %v", err)
	}
	log.Println("Pipeline test completed.")
}

// TestRegenerationIsIdempotent re-runs the generator against the same path
// and expects byte-identical output.
func TestRegenerationIsIdempotent(t *testing.T) {
	blobPath := filepath.Join(t.TempDir(), "default_font.bin")
	format := generator.DefaultFont()

	var runs [2][]byte
	for i := range runs {
		blob, err := generator.BuildBlob(format)
		if err != nil {
			t.Fatalf("run %d: build failed: %v", i, err)
		}
		if err := generator.WriteBlob(blob, blobPath); err != nil {
			t.Fatalf("run %d: write failed: %v", i, err)
		}
		data, err := ioutil.ReadFile(blobPath)
		if err != nil {
			t.Fatalf("run %d: read back failed: %v", i, err)
		}
		runs[i] = data
	}

	if !bytes.Equal(runs[0], runs[1]) {
		t.Error("re-running the generator produced different output bytes")
	}
}

// TestMissingDirectoryFails checks that writing into a missing directory
// fails and leaves no partial file behind.
func TestMissingDirectoryFails(t *testing.T) {
	blobPath := filepath.Join(t.TempDir(), "no_such_dir", "default_font.bin")

	blob, err := generator.BuildBlob(generator.DefaultFont())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if err := generator.WriteBlob(blob, blobPath); err == nil {
		t.Fatal("expected WriteBlob to fail for a missing directory")
	}
	if _, statErr := os.Stat(blobPath); !os.IsNotExist(statErr) {
		t.Errorf("expected no file at %s after failed write, stat err: %v", blobPath, statErr)
	}
}

// TestValidateBlobDetectsCorruption flips one byte in a written blob and
// expects verification to fail.
func TestValidateBlobDetectsCorruption(t *testing.T) {
	blobPath := filepath.Join(t.TempDir(), "default_font.bin")
	format := generator.DefaultFont()

	blob, err := generator.BuildBlob(format)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	blob[0x41*testBytesPerGlyph+6] ^= 0xFF
	if err := generator.WriteBlob(blob, blobPath); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if err := generator.ValidateBlob(blobPath, format); err == nil {
		t.Error("expected ValidateBlob to report the corrupted byte")
	}
}

// TestDumpGlyphsLabelsOncePerGlyph checks the -dump output shape: one label
// line per glyph followed by its scanlines.
func TestDumpGlyphsLabelsOncePerGlyph(t *testing.T) {
	blob, err := generator.BuildBlob(generator.DefaultFont())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	font := fontbin.FromRaw(blob, 8, 16)

	var buf bytes.Buffer
	dumpGlyphs(&buf, font, "Ao")
	out := buf.String()

	if got := strings.Count(out, "A:"); got != 1 {
		t.Errorf("'A' labelled %d times, want once", got)
	}
	if got := strings.Count(out, "o:"); got != 1 {
		t.Errorf("'o' labelled %d times, want once", got)
	}
	if !strings.Contains(out, "[  XXXX  ]") {
		t.Error("dump output is missing the 'A' top row pattern")
	}

	// Two glyphs: one label line each plus 16 scanlines each.
	if got := strings.Count(out, "\n"); got != 2*(1+16) {
		t.Errorf("dump output has %d lines, want %d", got, 2*(1+16))
	}
}

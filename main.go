// project/main.go
package main

//go:generate go run . // Regenerates assets/default_font.bin

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"FontModules/fontbin"
	"FontModules/generator"
	"FontModules/preview"

	"github.com/joho/godotenv"
)

// defaultOutput matches the path the text-rendering subsystem embeds.
const defaultOutput = "assets/default_font.bin"

func main() {
	// Define flags. All of them are optional: a bare run builds the
	// built-in default font and writes it to assets/default_font.bin.
	fontFile := flag.String("font", "", "YAML font definition (empty: built-in default font)")
	output := flag.String("output", "", "output path for the font blob (default "+defaultOutput+")")
	configPath := flag.String("config", "", "fonts.json registry for batch generation")
	bootstrap := flag.Bool("bootstrap", false, "register font definitions from the 'sources' directory")
	interactive := flag.Bool("interactive", false, "prompt for selection in batch and bootstrap modes")
	previewPath := flag.String("preview", "", "write a BMP glyph sheet preview to this path")
	scale := flag.Int("scale", 1, "integer scale factor for the preview image")
	dumpChars := flag.String("dump", "", "dump the listed characters as ASCII art to stdout")
	verify := flag.Bool("verify", false, "read the written blob back and verify it against the definition")

	flag.Parse() // Parse command-line arguments

	// An optional .env may override the default output path. A missing
	// .env is fine; an explicit -output always wins.
	if err := godotenv.Load(); err == nil {
		if envOut := os.Getenv("FONTGEN_OUTPUT"); envOut != "" && *output == "" {
			*output = envOut
		}
	}
	if *output == "" {
		*output = defaultOutput
	}

	registryPath := *configPath
	if registryPath == "" {
		registryPath = "fonts.json"
	}

	if *bootstrap {
		if err := RunBootstrap(registryPath, *interactive); err != nil {
			log.Fatalf("Bootstrap failed: %v", err)
		}
		return
	}
	if *configPath != "" {
		generator.RunGeneration(*configPath, *interactive)
		return
	}

	// Single-font mode: built-in table unless a definition file is given.
	format := generator.DefaultFont()
	if *fontFile != "" {
		var err error
		format, err = generator.LoadFormat(*fontFile)
		if err != nil {
			log.Fatalf("Failed to load font definition %s: %v", *fontFile, err)
		}
	}

	blob, err := generator.BuildBlob(format)
	if err != nil {
		log.Fatalf("Failed to build font blob: %v", err)
	}
	if err := generator.WriteBlob(blob, *output); err != nil {
		log.Fatalf("Failed to write font blob: %v", err)
	}
	fmt.Println("Created", filepath.Base(*output))

	if *verify {
		if err := generator.ValidateBlob(*output, format); err != nil {
			log.Fatalf("Verification failed: %v", err)
		}
		log.Printf("Verified %s against definition %q.", *output, format.Name)
	}

	if *dumpChars == "" && *previewPath == "" {
		return
	}
	font := fontbin.FromRaw(blob, format.GlyphWidth, format.GlyphHeight)

	if *dumpChars != "" {
		dumpGlyphs(os.Stdout, font, *dumpChars)
	}
	if *previewPath != "" {
		if err := preview.SaveBMP(preview.Sheet(font), *previewPath, *scale); err != nil {
			log.Fatalf("Failed to write preview: %v", err)
		}
		log.Printf("Wrote preview sheet to %s (scale %d).", *previewPath, *scale)
	}
}

// dumpGlyphs writes ASCII art for the requested characters, one labelled
// block per glyph.
func dumpGlyphs(w io.Writer, font *fontbin.Font, chars string) {
	for i := 0; i < len(chars); i++ {
		ch := chars[i]
		fmt.Fprintf(w, "%c:\n", ch)
		for _, line := range preview.DumpGlyph(font, ch) {
			fmt.Fprintf(w, "  [%s]\n", line)
		}
	}
}

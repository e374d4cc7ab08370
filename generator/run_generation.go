package generator

import (
	"log"
	"path/filepath"

	"FontModules/config"
	"FontModules/dialogue"
	"FontModules/fontbin"
	"FontModules/preview"
	"FontModules/utils"
)

// RunGeneration builds every configured font from the JSON registry.
// When interactive is set, the user picks which fonts to generate.
func RunGeneration(configPath string, interactive bool) {
	// --- Load Config ---
	fontConfigs, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if len(fontConfigs) == 0 {
		log.Println("No fonts configured in", configPath, ". Nothing to generate.")
		log.Println("Hint: Run with -bootstrap to register font definitions from the 'sources' directory.")
		return
	}

	// --- Font Selection based on Config ---
	selectedConfigs := fontConfigs
	if interactive {
		selectedConfigs, err = dialogue.ShowFontSelection(fontConfigs)
		if err != nil {
			log.Fatalf("Font selection failed: %v", err)
		}
		if len(selectedConfigs) == 0 {
			log.Println("No fonts selected for generation.")
			return
		}
	}

	log.Printf("Processing %d font(s) for generation.", len(selectedConfigs))

	// --- Reset stale artifacts ---
	// Each output directory is cleaned once up front. Fonts often share a
	// directory, and a per-font reset would delete blobs written earlier
	// in the same run.
	cleaned := make(map[string]bool)
	for _, cfg := range selectedConfigs {
		dir := filepath.Dir(cfg.OutputPath)
		if cleaned[dir] {
			continue
		}
		cleaned[dir] = true
		utils.Reset(dir)
	}

	for _, cfg := range selectedConfigs {
		log.Printf("--- Processing font: %s ---", cfg.Name)

		// --- Load + Build ---
		format, err := LoadFormat(cfg.YAMLFile)
		if err != nil {
			log.Printf("ERROR: %s: %v. Skipping generation.", cfg.Name, err)
			continue
		}
		blob, err := BuildBlob(format)
		if err != nil {
			log.Printf("ERROR: %s: %v. Skipping generation.", cfg.Name, err)
			continue
		}

		// --- Write + read-back verification ---
		if err := WriteBlob(blob, cfg.OutputPath); err != nil {
			log.Printf("ERROR: %s: %v. Skipping verification.", cfg.Name, err)
			continue
		}
		log.Printf("%s: wrote %d bytes to %s.", cfg.Name, len(blob), cfg.OutputPath)

		if err := ValidateBlob(cfg.OutputPath, format); err != nil {
			log.Printf("ERROR: %s: verification failed: %v", cfg.Name, err)
			continue
		}
		log.Printf("%s: verification passed.", cfg.Name)

		// --- Optional preview sheet ---
		opts, err := cfg.Preview()
		if err != nil {
			log.Printf("Warning: %s: %v. Skipping preview.", cfg.Name, err)
			continue
		}
		if opts.Path == "" {
			continue
		}
		font := fontbin.FromRaw(blob, format.GlyphWidth, format.GlyphHeight)
		img := preview.Sheet(font)
		if opts.Text != "" {
			img = preview.RenderText(font, opts.Text)
		}
		if err := preview.SaveBMP(img, opts.Path, opts.Scale); err != nil {
			log.Printf("ERROR: %s: writing preview: %v", cfg.Name, err)
			continue
		}
		log.Printf("%s: wrote preview to %s (scale %d).", cfg.Name, opts.Path, opts.Scale)
	}

	log.Println("Configured font(s) processed.")
}

package main

import (
	"path/filepath"
	"testing"

	"FontModules/config"

	"github.com/google/go-cmp/cmp"
)

// TestRunBootstrapRegistersSourceDefinitions runs a non-interactive
// bootstrap over the checked-in sources directory and checks the resulting
// registry entries.
func TestRunBootstrapRegistersSourceDefinitions(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fonts.json")

	if err := RunBootstrap(configPath, false); err != nil {
		t.Fatalf("RunBootstrap failed: %v", err)
	}

	configs, err := config.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	want := []config.FontConfig{
		{
			Name:       "Default_Font",
			YAMLFile:   filepath.Join("sources", "default_font.yml"),
			OutputPath: filepath.Join("assets", "default_font.bin"),
		},
	}
	if diff := cmp.Diff(want, configs); diff != "" {
		t.Errorf("registered configurations mismatch (-want +got):\n%s", diff)
	}
}

// TestRunBootstrapIsIdempotent re-runs bootstrap against an existing
// registry and expects updated entries, not duplicates.
func TestRunBootstrapIsIdempotent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "fonts.json")

	for i := 0; i < 2; i++ {
		if err := RunBootstrap(configPath, false); err != nil {
			t.Fatalf("run %d: RunBootstrap failed: %v", i, err)
		}
	}

	configs, err := config.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if len(configs) != 1 {
		t.Fatalf("registry has %d entries after two bootstraps, want 1", len(configs))
	}
}

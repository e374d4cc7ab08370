package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
)

type FontConfig struct {
	Name       string                 `json:"name"`
	YAMLFile   string                 `json:"yamlFile"`
	OutputPath string                 `json:"outputPath"`
	Options    map[string]interface{} `json:"options,omitempty"`
}

// PreviewOptions are decoded from a FontConfig's free-form options map.
type PreviewOptions struct {
	Path  string `mapstructure:"preview"`
	Scale int    `mapstructure:"scale"`
	Text  string `mapstructure:"text"`
}

// LoadConfig reads and parses the fonts.json file.
func LoadConfig(configPath string) ([]FontConfig, error) {
	var configs []FontConfig
	configData, err := ioutil.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Configuration file '%s' not found. Returning empty configuration.", configPath)
			return configs, nil // Return empty slice, not an error
		}
		return nil, fmt.Errorf("failed to read configuration file '%s': %w", configPath, err)
	}

	err = json.Unmarshal(configData, &configs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file '%s': %w", configPath, err)
	}
	log.Printf("Loaded %d font configurations from %s.", len(configs), configPath)
	return configs, nil
}

// SaveConfig saves the font configurations back to fonts.json.
func SaveConfig(configPath string, configs []FontConfig) error {
	// Sort configs by name for consistency before saving
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})

	updatedConfigData, err := json.MarshalIndent(configs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal updated configuration: %w", err)
	}
	err = ioutil.WriteFile(configPath, updatedConfigData, 0644)
	if err != nil {
		return fmt.Errorf("failed to write updated configuration file '%s': %w", configPath, err)
	}
	return nil
}

// Preview decodes the free-form options map into typed preview options.
// Missing options mean no preview; the scale defaults to 1.
func (c *FontConfig) Preview() (PreviewOptions, error) {
	opts := PreviewOptions{Scale: 1}
	if len(c.Options) == 0 {
		return opts, nil
	}
	if err := mapstructure.Decode(c.Options, &opts); err != nil {
		return opts, fmt.Errorf("invalid options for font '%s': %w", c.Name, err)
	}
	if opts.Scale < 1 {
		opts.Scale = 1
	}
	return opts, nil
}

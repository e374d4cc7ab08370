package dialogue

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"FontModules/config"
)

// ShowSourceFileSelection prompts the user to select from available font
// definition YAML files.
func ShowSourceFileSelection(yamlFiles []string) ([]string, error) {
	if len(yamlFiles) == 0 {
		return []string{}, nil
	}
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("\nAvailable font definitions:")
	for i, file := range yamlFiles {
		fmt.Printf("%d. %s\n", i+1, file)
	}

	fmt.Print("\nSelect definition(s) to register (e.g., 1,3,4), or press Enter for all: ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return yamlFiles, nil // Return all if no selection
	}

	var selectedFiles []string
	for _, part := range strings.Split(input, ",") {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmedPart)
		if err != nil || idx < 1 || idx > len(yamlFiles) {
			return nil, fmt.Errorf("invalid selection '%s': please enter numbers between 1 and %d, separated by commas", trimmedPart, len(yamlFiles))
		}
		selectedFiles = append(selectedFiles, yamlFiles[idx-1])
	}

	// Remove duplicates if any (though unlikely with numeric input)
	uniqueFiles := make([]string, 0, len(selectedFiles))
	seen := make(map[string]bool)
	for _, file := range selectedFiles {
		if !seen[file] {
			uniqueFiles = append(uniqueFiles, file)
			seen[file] = true
		}
	}
	return uniqueFiles, nil
}

// ShowFontSelection prompts the user to select from configured fonts.
func ShowFontSelection(fontConfigs []config.FontConfig) ([]config.FontConfig, error) {
	if len(fontConfigs) == 0 {
		return []config.FontConfig{}, nil
	}
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("\nConfigured fonts:")
	for i, cfg := range fontConfigs {
		fmt.Printf("%d. %s (%s -> %s)\n", i+1, cfg.Name, cfg.YAMLFile, cfg.OutputPath)
	}

	fmt.Print("\nSelect font(s) to generate (e.g., 1,3,4), or press Enter for all: ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return fontConfigs, nil // Return all if no selection
	}

	var selectedConfigs []config.FontConfig
	for _, part := range strings.Split(input, ",") {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		idx, err := strconv.Atoi(trimmedPart)
		if err != nil || idx < 1 || idx > len(fontConfigs) {
			return nil, fmt.Errorf("invalid selection '%s': please enter numbers between 1 and %d, separated by commas", trimmedPart, len(fontConfigs))
		}
		selectedConfigs = append(selectedConfigs, fontConfigs[idx-1])
	}

	// Remove duplicates
	uniqueConfigs := make([]config.FontConfig, 0, len(selectedConfigs))
	seen := make(map[string]bool)
	for _, cfg := range selectedConfigs {
		if !seen[cfg.Name] { // Use Name as unique identifier
			uniqueConfigs = append(uniqueConfigs, cfg)
			seen[cfg.Name] = true
		}
	}
	return uniqueConfigs, nil
}

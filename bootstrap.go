package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"FontModules/config"
	"FontModules/dialogue"
	"FontModules/generator"
)

// sourceDir is scanned for font definition YAMLs during bootstrap.
const sourceDir = "sources"

// RunBootstrap scans the sources directory for font definition files,
// checks that each of them builds, and registers them in the JSON
// configuration so batch generation can pick them up.
func RunBootstrap(configPath string, interactive bool) error {
	log.Printf("Scanning '%s' directory for font definition files...", sourceDir)
	files, err := ioutil.ReadDir(sourceDir)
	if err != nil {
		return fmt.Errorf("failed to read source directory '%s': %w", sourceDir, err)
	}

	var yamlFiles []string
	for _, file := range files {
		if !file.IsDir() && (strings.HasSuffix(file.Name(), ".yml") || strings.HasSuffix(file.Name(), ".yaml")) {
			yamlFiles = append(yamlFiles, filepath.Join(sourceDir, file.Name()))
		}
	}
	sort.Strings(yamlFiles) // Sort for consistent display

	if len(yamlFiles) == 0 {
		log.Printf("No YAML files found in '%s'. Nothing to bootstrap.", sourceDir)
		return nil
	}

	selectedYamlFiles := yamlFiles
	if interactive {
		selectedYamlFiles, err = dialogue.ShowSourceFileSelection(yamlFiles)
		if err != nil {
			return fmt.Errorf("definition selection failed: %w", err)
		}
		if len(selectedYamlFiles) == 0 {
			log.Println("No definitions selected for bootstrapping.")
			return nil
		}
	}

	log.Printf("Processing %d definition file(s) for bootstrap...", len(selectedYamlFiles))

	// --- Load existing config ---
	currentConfigs, err := config.LoadConfig(configPath)
	if err != nil {
		return err // Error handled in LoadConfig
	}
	configMap := make(map[string]int) // Map source YAML path to index in currentConfigs
	for i, cfg := range currentConfigs {
		configMap[cfg.YAMLFile] = i
	}

	// --- Process selected files ---
	configUpdated := false
	for _, yamlFile := range selectedYamlFiles {
		log.Printf("--- Bootstrapping from: %s ---", yamlFile)

		// A definition that does not parse and build has no business in
		// the registry.
		format, err := generator.LoadFormat(yamlFile)
		if err != nil {
			log.Printf("ERROR: Failed to load %s: %v. Skipping configuration update.", yamlFile, err)
			continue
		}
		if _, err := generator.BuildBlob(format); err != nil {
			log.Printf("ERROR: Definition %s does not build: %v. Skipping configuration update.", yamlFile, err)
			continue
		}

		// Derive names and paths
		baseName := strings.TrimSuffix(filepath.Base(yamlFile), filepath.Ext(yamlFile))
		outputPath := filepath.Join("assets", strings.ToLower(baseName)+".bin")
		fontName := strings.Title(strings.ToLower(baseName))

		// Update or Add configuration
		if index, exists := configMap[yamlFile]; exists {
			log.Printf("Font for '%s' already exists in configuration. Updating output path.", yamlFile)
			currentConfigs[index].OutputPath = outputPath
			// Name and YAMLFile remain the same
			configUpdated = true
		} else {
			log.Printf("Adding new font '%s' to configuration.", fontName)
			newConfig := config.FontConfig{
				Name:       fontName,
				YAMLFile:   yamlFile,   // Store relative path from project root
				OutputPath: outputPath, // Store relative path from project root
			}
			currentConfigs = append(currentConfigs, newConfig)
			configUpdated = true
		}
	}

	// --- Save updated config if changes were made ---
	if configUpdated {
		err = config.SaveConfig(configPath, currentConfigs)
		if err != nil {
			return err
		}
		log.Println("Configuration file updated.")
	} else {
		log.Println("No configuration changes needed.")
	}

	return nil
}

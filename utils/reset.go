// reset.go
package utils

import (
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Reset cleans previously generated font artifacts (.bin blobs and .bmp
// previews) from the target directory. Source YAML definitions are never
// touched, and a missing directory is left missing: creating the output
// directory is the caller's problem, not ours.
func Reset(targetDir string) {
	log.Printf("Cleaning generated font artifacts in directory '%s'...", targetDir)

	dirEntries, err := ioutil.ReadDir(targetDir)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Directory '%s' does not exist, nothing to clean.", targetDir)
			return
		}
		log.Fatalf("Failed to read directory '%s': %v", targetDir, err)
	}

	filesRemoved := 0
	for _, entry := range dirEntries {
		entryName := entry.Name()
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entryName, ".bin") || strings.HasSuffix(entryName, ".bmp") {
			filePath := filepath.Join(targetDir, entryName)
			log.Printf("  Removing generated file: %s", filePath)
			if err := os.Remove(filePath); err != nil {
				log.Printf("  Warning: Failed to remove file '%s': %v", filePath, err)
			} else {
				filesRemoved++
			}
		}
	}
	log.Printf("Removed %d generated file(s) from '%s'.", filesRemoved, targetDir)
}

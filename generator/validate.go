// validate.go
package generator

import (
	"fmt"
	"io/ioutil"
	"log"

	"FontModules/structs"
)

// maxReportedMismatches limits how many byte mismatches ValidateBlob logs
// individually before falling back to the summary count.
const maxReportedMismatches = 8

// ValidateBlob reads a written blob back and verifies it against its
// definition: exact length, every defined row byte in place, and zero
// everywhere else.
func ValidateBlob(path string, f *structs.FontFormat) error {
	expected, err := BuildBlob(f)
	if err != nil {
		return fmt.Errorf("rebuilding reference blob: %w", err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading blob %s: %w", path, err)
	}
	if len(data) != len(expected) {
		return fmt.Errorf("%s: size mismatch: got %d bytes, want %d", path, len(data), len(expected))
	}

	mismatches := 0
	for i := range expected {
		if data[i] != expected[i] {
			if mismatches < maxReportedMismatches {
				log.Printf("ERROR: %s: byte 0x%04X is 0x%02X, want 0x%02X", path, i, data[i], expected[i])
			}
			mismatches++
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%s: %d byte mismatch(es) against definition %q", path, mismatches, f.Name)
	}
	return nil
}

package generator

import (
	"fmt"
	"os"
)

// WriteBlob writes the blob to path, creating or overwriting the file.
// The parent directory must already exist; a missing or unwritable
// directory fails the write and the error propagates to the caller.
func WriteBlob(data []byte, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	n, err := f.Write(data)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if n != len(data) {
		return fmt.Errorf("incomplete write to %s (%d of %d bytes)", path, n, len(data))
	}
	return nil
}

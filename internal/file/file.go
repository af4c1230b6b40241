package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveObject writes obj as indented JSON to outputFile.
// The data goes to a temporary file in the same directory which is renamed
// over outputFile, so readers never observe a partial file and a failed save
// leaves any previous file untouched.
func SaveObject(obj any, outputFile string) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal object: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(outputFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outputFile)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), outputFile); err != nil {
		return fmt.Errorf("failed to rename to %s: %w", outputFile, err)
	}
	return nil
}

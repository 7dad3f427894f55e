package openpmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteIteration writes one iteration file into dir, creating the directory
// if needed. The file name encodes the iteration number the same way the
// simulation output does. Mainly used to produce reference fixtures.
func WriteIteration(dir string, it Iteration) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating series directory %s: %w", dir, err)
	}
	data, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding iteration %d: %w", it.Iteration, err)
	}
	path := filepath.Join(dir, fmt.Sprintf("openpmd_%06d.json", it.Iteration))
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFromFile reads catalog content from a JSON file and builds a
// validated catalog.
func LoadFromFile(path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var data Data
	if err := json.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("unmarshal catalog: %w", err)
	}
	return New(data)
}

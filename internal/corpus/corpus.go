// Package corpus reads the optional style-sample file loaded into memory at
// startup.
package corpus

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kuehq/kue-brain/internal/stylemem"
)

// LoadFile parses a JSON array of {text, tag} objects. A missing file is not
// an error: the style store simply stays empty.
func LoadFile(path string) ([]stylemem.Sample, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}

	var samples []stylemem.Sample
	if err := json.Unmarshal(data, &samples); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file: %w", err)
	}

	for i := range samples {
		if samples[i].Tag == "" {
			samples[i].Tag = "general"
		}
	}
	return samples, nil
}

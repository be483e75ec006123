package engine

import (
	"encoding/json"
	"fmt"
	"strings"
)

// decodeModelJSON unmarshals JSON from a model response, with a small amount
// of robustness for cases where the model wraps the JSON in code fences or
// extra prose despite the json_object instruction.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return fmt.Errorf("empty model output")
	}

	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("model output is not JSON: %.80q", s)
	}

	if err := json.Unmarshal([]byte(s[start:end+1]), v); err != nil {
		return fmt.Errorf("failed to parse model output: %w", err)
	}
	return nil
}

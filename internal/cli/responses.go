package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/greenloop/ecotrace/internal/survey"
)

// loadResponses reads a quiz answer record from a JSON file. Unknown fields
// are tolerated so older answer files keep loading.
func loadResponses(path string) (*survey.Responses, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading responses file %s: %w", path, err)
	}

	var responses survey.Responses
	if err := json.Unmarshal(data, &responses); err != nil {
		return nil, fmt.Errorf("parsing responses file %s: %w", path, err)
	}
	return &responses, nil
}

// saveResponses writes a quiz answer record as indented JSON.
func saveResponses(path string, responses *survey.Responses) error {
	data, err := json.MarshalIndent(responses, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding responses: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0600); err != nil {
		return fmt.Errorf("writing responses file %s: %w", path, err)
	}
	return nil
}

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(out func(format string, a ...interface{}), v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	out("%s\n", data)
	return nil
}

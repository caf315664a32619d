package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenloop/ecotrace/internal/engine"
	"github.com/greenloop/ecotrace/internal/story"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Point config resolution at an empty temp location so the host's real
	// config never leaks into tests.
	t.Setenv("ECOTRACE_CONFIG", filepath.Join(t.TempDir(), "config.yaml"))

	cmd := NewRootCmd("test")
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeAnswers(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestCalculateCommandJSON(t *testing.T) {
	path := writeAnswers(t, `{
		"electricityKwh": "1000",
		"homeEfficiency": "A",
		"energyManagement": "B"
	}`)

	out, err := execute(t, "calculate", "--responses", path, "--output", "json")
	require.NoError(t, err)

	var results engine.CalculationResults
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.InDelta(t, 0.28, results.CategoryEmissions.Home, 1e-9)
	assert.Equal(t, 99, results.Score)
}

func TestCalculateCommandTable(t *testing.T) {
	path := writeAnswers(t, `{"electricityKwh": "1000"}`)

	out, err := execute(t, "calculate", "--responses", path)
	require.NoError(t, err)
	assert.Contains(t, out, "FOOTPRINT SUMMARY")
}

func TestCalculateCommandMissingFile(t *testing.T) {
	_, err := execute(t, "calculate", "--responses", "/does/not/exist.json")
	assert.Error(t, err)
}

func TestCalculateCommandBadOutputFormat(t *testing.T) {
	path := writeAnswers(t, `{}`)

	_, err := execute(t, "calculate", "--responses", path, "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestPersonalityCommandJSON(t *testing.T) {
	path := writeAnswers(t, `{
		"homeEfficiency": "A",
		"dietType": "VEGAN"
	}`)

	out, err := execute(t, "personality", "--responses", path, "--output", "json")
	require.NoError(t, err)

	var result struct {
		Personality string         `json:"personality"`
		Tally       map[string]int `json:"tally"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Sustainability Slayer", result.Personality)
	assert.Len(t, result.Tally, 7)
}

func TestStoryCommandJSON(t *testing.T) {
	path := writeAnswers(t, `{
		"name": "Riley",
		"dietType": "VEGAN"
	}`)

	out, err := execute(t, "story", "--responses", path, "--output", "json", "--habit", "cycling")
	require.NoError(t, err)

	var cards []story.Card
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	require.NotEmpty(t, cards)
	assert.Contains(t, cards[0].Content, "Riley")
}

func TestConfigInitAndValidate(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, err := execute(t, "config", "init", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Config written")

	out, err = execute(t, "config", "validate", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
}

func TestConfigValidateMissingFile(t *testing.T) {
	_, err := execute(t, "config", "validate", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestResolveOutputFormatPrecedence(t *testing.T) {
	assert.Equal(t, "json", resolveOutputFormat("json"))
	assert.NotEmpty(t, resolveOutputFormat(""))
}

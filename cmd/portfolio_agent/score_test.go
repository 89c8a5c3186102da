package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/jonathan/portfolio-composer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCommand_MissingCategoryFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "output.json")

	cmd := exec.Command(binaryPath, "score",
		"--contents", "test.json",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestScoreCommand_UnknownCategory(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	contentsFile := filepath.Join(tmpDir, "contents.json")
	outputFile := filepath.Join(tmpDir, "output.json")

	_ = os.WriteFile(contentsFile, []byte(`[]`), 0644)

	cmd := exec.Command(binaryPath, "score",
		"--contents", contentsFile,
		"--category", "gaming",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "gaming")
}

func TestScoreCommand_WritesSortedOutput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()
	contentsFile := filepath.Join(tmpDir, "contents.json")
	outputFile := filepath.Join(tmpDir, "scored.json")

	contents := `[
		{"content_id": "old-text", "type": "text", "title": "Notes", "created_at": "2020-01-01T00:00:00Z"},
		{"content_id": "fresh-video", "type": "video", "source": "youtube", "title": "Reel", "created_at": "2026-07-01T00:00:00Z"}
	]`
	require.NoError(t, os.WriteFile(contentsFile, []byte(contents), 0644))

	cmd := exec.Command(binaryPath, "score",
		"--contents", contentsFile,
		"--category", "entertainment",
		"--out", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
	assert.Contains(t, string(output), "Successfully scored 2 items")

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var scored []types.ScoredContent
	require.NoError(t, json.Unmarshal(data, &scored))
	require.Len(t, scored, 2)
	assert.Equal(t, "fresh-video", scored[0].ContentID)
	assert.GreaterOrEqual(t, scored[0].FinalScore, scored[1].FinalScore)
}

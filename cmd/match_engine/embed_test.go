package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedCommand_MissingInputFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	cmd := exec.Command(binaryPath, "embed",
		"--out", filepath.Join(tmpDir, "vectors.json"))
	cmd.Env = offlineEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required flag(s) \"in\" not set")
}

func TestEmbedCommand_InvalidKind(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	inputPath := filepath.Join(tmpDir, "texts.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte("golang engineer\n"), 0644))

	cmd := exec.Command(binaryPath, "embed",
		"--in", inputPath,
		"--out", filepath.Join(tmpDir, "vectors.json"),
		"--kind", "forever")
	cmd.Env = offlineEnv()
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "invalid kind")
}

func TestEmbedCommand_ValidInput(t *testing.T) {
	binaryPath := getBinaryPath(t)
	tmpDir := t.TempDir()

	inputPath := filepath.Join(tmpDir, "texts.txt")
	content := "golang engineer with kubernetes experience\n\nreact frontend developer\n"
	require.NoError(t, os.WriteFile(inputPath, []byte(content), 0644))

	outputFile := filepath.Join(tmpDir, "vectors.json")
	cmd := exec.Command(binaryPath, "embed",
		"--in", inputPath,
		"--out", outputFile)
	cmd.Env = offlineEnv()
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "embed command failed: %s", string(output))

	// Blank lines are skipped.
	assert.Contains(t, string(output), "Successfully embedded 2 texts")

	raw, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var doc struct {
		Dimension int `json:"dimension"`
		Entries   []struct {
			Fingerprint string    `json:"fingerprint"`
			Vector      []float32 `json:"vector"`
		} `json:"entries"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, 1536, doc.Dimension)
	for _, entry := range doc.Entries {
		assert.Len(t, entry.Fingerprint, 64)
		assert.Len(t, entry.Vector, doc.Dimension)
	}
}

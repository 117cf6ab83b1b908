package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistryYAML = `
sections:
  - slug: 06-security
    name: "F. Security"
    topics:
      - index: 56
        name: Rate-limit bypass attacks
        slug: rate-limit-bypass-attacks
  - slug: 07-observability
    name: "G. Observability"
    topics:
      - index: 58
        name: Structured logging
        slug: structured-logging
`

func writeTestRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "topics.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Flags are package state; reset what the test run may have touched.
	basePath = "."
	failFast = false
	templatePath = ""
	reportPath = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRoot_GeneratesFiles(t *testing.T) {
	regPath := writeTestRegistry(t, testRegistryYAML)
	outDir := t.TempDir()

	out, err := runRoot(t, regPath, "--base", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "CREATED:")
	assert.Contains(t, out, "2 created, 0 failed")

	content, err := os.ReadFile(filepath.Join(outDir, "06-security", "56-rate-limit-bypass-attacks.md"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Rate-limit bypass attacks")
}

func TestRoot_WritesReport(t *testing.T) {
	regPath := writeTestRegistry(t, testRegistryYAML)
	outDir := t.TempDir()
	report := filepath.Join(t.TempDir(), "report.json")

	_, err := runRoot(t, regPath, "--base", outDir, "--report", report)
	require.NoError(t, err)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"created": 2`)
}

func TestRoot_InvalidRegistryWritesNothing(t *testing.T) {
	regPath := writeTestRegistry(t, `
sections:
  - slug: 06-security
    name: Security
    topics:
      - index: 20
        name: First
        slug: first
      - index: 20
        name: Second
        slug: second
`)
	outDir := t.TempDir()

	_, err := runRoot(t, regPath, "--base", outDir)
	require.Error(t, err)

	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "validation failure must precede any write")
}

func TestValidateCmd(t *testing.T) {
	regPath := writeTestRegistry(t, testRegistryYAML)

	out, err := runRoot(t, "validate", regPath)
	require.NoError(t, err)
	assert.Contains(t, out, "registry OK: 2 topics in 2 sections")
}

func TestRoot_CustomTemplate(t *testing.T) {
	regPath := writeTestRegistry(t, testRegistryYAML)
	outDir := t.TempDir()

	tmplPath := filepath.Join(t.TempDir(), "tmpl.md")
	require.NoError(t, os.WriteFile(tmplPath, []byte("# {TOPIC_NAME} ({TOPIC_INDEX})\n"), 0o644))

	_, err := runRoot(t, regPath, "--base", outDir, "--template", tmplPath)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(outDir, "07-observability", "58-structured-logging.md"))
	require.NoError(t, err)
	assert.Equal(t, "# Structured logging (58)\n", string(content))
}

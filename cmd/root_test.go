package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nakamasato/topicgraph/config"
	"github.com/nakamasato/topicgraph/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerate_MissingCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	dir := t.TempDir()
	outputPath := filepath.Join(dir, "graph.json")
	configFile := filepath.Join(dir, "topicgraph.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: error\n"), 0600))

	_, err := run(t, "generate",
		"--config", configFile,
		"--env-file", filepath.Join(dir, "missing.env"),
		"--output", outputPath,
		"binary", "search", "trees",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrMissingCredential)
	assert.Equal(t, generator.ExitMissingCredential, generator.ExitCode(err))
	assert.NoFileExists(t, outputPath)
}

func TestGenerate_MissingCredentialWithoutTopic(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	dir := t.TempDir()
	configFile := filepath.Join(dir, "topicgraph.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: error\n"), 0600))

	_, err := run(t, "generate", "--config", configFile, "--env-file", filepath.Join(dir, "missing.env"))
	assert.ErrorIs(t, err, generator.ErrMissingCredential)
	assert.Equal(t, generator.ExitMissingCredential, generator.ExitCode(err))
}

func TestGenerate_ConfigFileNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "generate", "--config", filepath.Join(dir, "missing.yaml"), "--env-file", filepath.Join(dir, "missing.env"), "bst")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGenerate_EnvFileProvidesCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENAI_API_KEY=sk-from-env-file\n"), 0600))
	configFile := filepath.Join(dir, "topicgraph.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log_level: error\n"), 0600))

	_, err := run(t, "generate", "--config", configFile, "--env-file", envFile, "--mode", "mindmap", "bst")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate.mode")
	assert.Equal(t, "sk-from-env-file", config.GetConfig().OpenAIAPIKey)
}

func TestConfigInit(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "topicgraph.yaml")

	out, err := run(t, "config", "init", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Default configuration file created")

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "output_path: graph.json")

	out, err = run(t, "config", "init", "--config", configFile)
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

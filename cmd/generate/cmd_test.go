package generate

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nakamasato/topicgraph/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestReadTopic(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		stdin        string
		defaultTopic string
		want         string
	}{
		{name: "arguments are joined", args: []string{"binary", "search", "trees"}, stdin: "ignored", want: "binary search trees"},
		{name: "piped stdin", stdin: "  binary search trees\n", want: "binary search trees"},
		{name: "default topic", defaultTopic: "heaps", want: "heaps"},
		{name: "blank arguments fall through", args: []string{" "}, stdin: "tries", want: "tries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := readTopic(tt.args, strings.NewReader(tt.stdin), tt.defaultTopic)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadTopic_Empty(t *testing.T) {
	_, err := readTopic(nil, strings.NewReader("  \n"), "")
	assert.ErrorIs(t, err, generator.ErrEmptyTopic)
}

func TestReadTopic_StdinError(t *testing.T) {
	_, err := readTopic(nil, failingReader{}, "heaps")
	assert.Error(t, err)
}

func TestReadIfExists(t *testing.T) {
	data, err := readIfExists(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Nil(t, data)

	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	data, err = readIfExists(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

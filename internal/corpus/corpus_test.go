package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissing(t *testing.T) {
	samples, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.NoError(t, err)
	assert.Nil(t, samples)
}

func TestLoadFileEmptyPath(t *testing.T) {
	samples, err := LoadFile("")
	assert.NoError(t, err)
	assert.Nil(t, samples)
}

func TestLoadFileParsesAndDefaultsTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	content := `[
        {"text": "sounds good, on it", "tag": "Work"},
        {"text": "lol no way"}
    ]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	samples, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)

	assert.Equal(t, "Work", samples[0].Tag)
	assert.Equal(t, "general", samples[1].Tag)
	assert.Equal(t, "lol no way", samples[1].Text)
}

func TestLoadFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validation-guide/internal/capture"
)

func TestRootRegistersCommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "catalog", "timeline", "browse", "analyze"})
}

func TestCatalogRejectsUnknownCategory(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "catalog", "--category", "finance"})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "finance")
}

func TestAnalyzeRequiresInput(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "analyze"})
	assert.EqualError(t, root.Execute(), "an image file or --paste is required")
}

func TestAnalyzeRejectsNonImageFile(t *testing.T) {
	dir := t.TempDir()
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("just text"), 0o644))

	root := newRootCmd()
	root.SetArgs([]string{"--config", filepath.Join(dir, "missing.yaml"), "analyze", notes})
	assert.EqualError(t, root.Execute(), capture.NotImageMessage)
}

func TestSourceFromClipboard(t *testing.T) {
	src, err := sourceFromClipboard("  " + capture.DataURI("image/png", []byte("png")) + "\n")
	require.NoError(t, err)
	assert.Equal(t, capture.ChannelPaste, src.Channel)
	assert.Equal(t, "image/png", src.MediaType)
	body, err := io.ReadAll(src.Body)
	require.NoError(t, err)
	assert.Equal(t, "png", string(body))

	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o644))
	src, err = sourceFromClipboard(path)
	require.NoError(t, err)
	assert.Equal(t, "shot.png", src.Name)
	assert.Equal(t, capture.ChannelPaste, src.Channel)

	_, err = sourceFromClipboard("some copied words")
	assert.ErrorIs(t, err, errNoClipboardImage)
}

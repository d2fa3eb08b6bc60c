package helpers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectMediaType(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n0000")
	tests := []struct {
		name string
		file string
		data []byte
		want string
	}{
		{name: "extension wins", file: "shot.png", data: []byte("anything"), want: "image/png"},
		{name: "upper case extension", file: "SHOT.JPG", data: nil, want: "image/jpeg"},
		{name: "text file", file: "notes.txt", data: []byte("hello"), want: "text/plain"},
		{name: "sniffed without extension", file: "clipboard", data: png, want: "image/png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectMediaType(tt.file, tt.data))
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.bin")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	assert.True(t, FileExists(path))
	data, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), data)

	_, err = ReadFile(path + ".missing")
	assert.ErrorContains(t, err, "failed to read file")
	assert.False(t, FileExists(path+".missing"))
}

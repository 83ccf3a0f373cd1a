package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathWith(installed ...string) LookPathFunc {
	return func(file string) (string, error) {
		for _, name := range installed {
			if name == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		goos        string
		installed   []string
		fileManager string
	}{
		{"windows", nil, "explorer"},
		{"darwin", nil, "open"},
		{"linux", []string{"nautilus", "dolphin"}, "nautilus"},
		{"linux", []string{"thunar", "nemo"}, "nemo"},
		{"linux", []string{"dolphin"}, "dolphin"},
		{"linux", nil, "xdg-open"},
		{"freebsd", []string{"thunar"}, "thunar"},
	}

	for _, tt := range tests {
		t.Run(tt.goos+"/"+tt.fileManager, func(t *testing.T) {
			p, err := Detect(tt.goos, lookPathWith(tt.installed...))

			require.NoError(t, err)
			assert.Equal(t, tt.goos, p.Name())
			assert.Equal(t, tt.fileManager, p.FileManagerCommand())
		})
	}
}

func TestDetect_Unsupported(t *testing.T) {
	_, err := Detect("plan9", lookPathWith())

	var unsupported *UnsupportedError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "plan9", unsupported.GOOS)
}

func TestDetect_ProbesOnlyOnce(t *testing.T) {
	calls := 0
	lookPath := func(file string) (string, error) {
		calls++
		return "/usr/bin/" + file, nil
	}

	p, err := Detect("linux", lookPath)
	require.NoError(t, err)

	p.FileManagerCommand()
	p.FileManagerCommand()
	assert.Equal(t, 1, calls)
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		input    string
		expected string
	}{
		{"windows strips extended-length prefix", Windows{}, `\\?\C:\Users\me`, `C:\Users\me`},
		{"windows keeps plain path", Windows{}, `C:\Users\me`, `C:\Users\me`},
		{"windows keeps UNC path", Windows{}, `\\server\share`, `\\server\share`},
		{"darwin identity", Darwin{}, "/Users/me", "/Users/me"},
		{"unix identity", NewUnix("linux", lookPathWith()), `/home/\\?\odd`, `/home/\\?\odd`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.platform.NormalizePath(tt.input))
		})
	}
}

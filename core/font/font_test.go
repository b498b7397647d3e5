package font

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ttfwrap/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.fonts")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "Go-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0644))
	f, err := LoadOpenTypeFont(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Filepath)
	assert.Equal(t, "Go-Regular.ttf", f.Fontname)
	assert.Equal(t, len(goregular.TTF), len(f.Binary))
}

func TestLoadMissingFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.fonts")
	defer teardown()
	//
	_, err := LoadOpenTypeFont(filepath.Join(t.TempDir(), "nope.ttf"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrFontLoad), "expected font load error, got %v", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadEmptyFontFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.fonts")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "empty.ttf")
	require.NoError(t, os.WriteFile(path, nil, 0644))
	_, err := LoadOpenTypeFont(path)
	assert.True(t, errors.Is(err, core.ErrFontLoad))
}

func TestFallbackFont(t *testing.T) {
	f := FallbackFont()
	assert.Equal(t, "Go Sans", f.Fontname)
	assert.Same(t, f, FallbackFont(), "fallback font should be created once")
}

func TestNormalizeFontname(t *testing.T) {
	for in, out := range map[string]string{
		"Go Regular.ttf":   "goregular",
		" DejaVuSans.ttf ": "dejavusans",
		"Go-Mono.ttf":      "gomono",
		"go_mono":          "gomono",
		"Calibri":          "calibri",
	} {
		assert.Equal(t, out, NormalizeFontname(in))
	}
}

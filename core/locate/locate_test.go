package locate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ttfwrap/core"
	"github.com/npillmayer/ttfwrap/core/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func TestFontPathOfFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.resources")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "Go-Mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0644))
	p, err := FontPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, p)
}

func TestFontPathNotFound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.resources")
	defer teardown()
	//
	for _, name := range []string{"", "No-Such-Font-Anywhere-4711.ttf"} {
		_, err := FontPath(name)
		require.Error(t, err, "name %q", name)
		assert.Equal(t, core.EMISSING, core.Code(err))
	}
}

func TestMatchFontname(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.resources")
	defer teardown()
	//
	paths := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/go/Go-Mono.ttf",
	}
	assert.Equal(t, paths[1], matchFontname("DejaVu Sans", paths))
	assert.Equal(t, paths[0], matchFontname("dejavu_sans bold", paths))
	assert.Equal(t, paths[2], matchFontname("Go Mono", paths))
	assert.Equal(t, "", matchFontname("Go", paths))
	assert.Equal(t, "", matchFontname(" ", paths))
	assert.Equal(t, "", matchFontname("Go Mono", nil))
}

func TestResolveFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.resources")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "Go-Mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0644))
	f, err := ResolveFont(path).Font()
	require.NoError(t, err)
	assert.Equal(t, "Go-Mono.ttf", f.Fontname)
	assert.Equal(t, gomono.TTF, f.Binary)
	//
	f, err = ResolveFont("").Await(context.Background())
	require.NoError(t, err)
	assert.Same(t, font.FallbackFont(), f)
	//
	_, err = ResolveFont("No-Such-Font-Anywhere-4711.ttf").Font()
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestResolveFontCancelled(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.resources")
	defer teardown()
	//
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	promise := ResolveFont("No-Such-Font-Anywhere-4711.ttf")
	_, err := promise.Await(ctx)
	// either the context or the lookup wins the race
	if !errors.Is(err, context.Canceled) {
		assert.Equal(t, core.EMISSING, core.Code(err))
	}
}

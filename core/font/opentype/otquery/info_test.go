package otquery

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ttfwrap/internal/synthfont"
	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/gomono"
)

func TestFontType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.fonts")
	defer teardown()
	//
	otf := parseFont(t, gomono.TTF)
	assert.Equal(t, "TrueType", FontType(otf))
}

func TestNameInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.fonts")
	defer teardown()
	//
	otf := parseFont(t, gomono.TTF)
	names := NameInfo(otf)
	t.Logf("names = %v", names)
	assert.Contains(t, names["family"], "Go")
	assert.True(t, strings.Contains(FullName(otf), "Mono"), "expected full name of Go Mono to contain 'Mono'")
	//
	synth := parseFont(t, synthfont.Build(synthfont.Spec{Name: "Only Full"}))
	assert.Equal(t, "Only Full", FullName(synth))
	assert.Equal(t, map[string]string{"full": "Only Full"}, NameInfo(synth))
}

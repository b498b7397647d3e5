package ttfwrap

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ttfwrap/core/font"
	"github.com/npillmayer/ttfwrap/core/font/metrics"
	"github.com/npillmayer/ttfwrap/engine/linebreak/greedy"
	"github.com/npillmayer/ttfwrap/internal/synthfont"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type WrapperTestEnviron struct {
	suite.Suite
	dir       string
	tiny      string // synthetic font: '0' = 10, letters and space = 4
	goregular string
}

// listen for 'go test' command --> run test methods
func TestWrapper(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	suite.Run(t, new(WrapperTestEnviron))
}

// run once, before test suite methods
func (env *WrapperTestEnviron) SetupSuite() {
	env.dir = env.T().TempDir()
	env.tiny = env.writeFont("tiny.ttf", synthfont.Build(synthfont.Spec{
		Name:          "Tiny",
		UnitsPerEm:    100,
		NotdefAdvance: 50,
		Advances: map[rune]uint16{
			'0': 10, 'a': 4, 'b': 4, 'c': 4, ' ': 4, 'z': 0,
		},
	}))
	env.goregular = env.writeFont("Go-Regular.ttf", goregular.TTF)
}

func (env *WrapperTestEnviron) writeFont(name string, data []byte) string {
	path := filepath.Join(env.dir, name)
	env.Require().NoError(os.WriteFile(path, data, 0644))
	return path
}

// --- Tests -----------------------------------------------------------------

func (env *WrapperTestEnviron) TestScenario() {
	tw, err := New(env.tiny)
	env.Require().NoError(err)
	env.Equal(10.0, tw.BaseUnit())
	env.Equal(metrics.Width(30), tw.MaxWidth(3.0))
	env.Equal([]string{"aa bb", "cc"}, tw.Wrap(3.0, "aa bb cc"))
	env.Equal([]greedy.Line{{Text: "aa bb", Width: 20}, {Text: "cc", Width: 8}}, tw.WrapLines(3.0, "aa bb cc"))
}

func (env *WrapperTestEnviron) TestDescribe() {
	tw, err := New(env.tiny)
	env.Require().NoError(err)
	env.Equal(`TextWrapper font_path="`+env.tiny+`" reference_character="0"`, tw.String())
	env.Equal(env.tiny, tw.FontPath())
	env.Equal("0", tw.ReferenceCharacter())
	env.Equal("Tiny", tw.FontName())
	env.EqualValues(100, tw.UnitsPerEm())
}

func (env *WrapperTestEnviron) TestEmptyText() {
	tw, err := New(env.tiny)
	env.Require().NoError(err)
	env.Empty(tw.Wrap(10, ""))
	env.Empty(tw.Wrap(10, " \t \n "))
}

func (env *WrapperTestEnviron) TestZeroWidth() {
	tw, err := New(env.tiny)
	env.Require().NoError(err)
	env.Equal([]string{"aa", "bb", "cc"}, tw.Wrap(0, "aa bb cc"))
	env.Equal([]string{"aa", "bb", "cc"}, tw.Wrap(0.09, "aa bb cc"), "0.9 units round down to 0")
	env.Equal([]string{"aa", "bb", "cc"}, tw.Wrap(-3, "aa bb cc"))
	env.Equal([]string{"aa", "bb", "cc"}, tw.Wrap(math.NaN(), "aa bb cc"))
}

func (env *WrapperTestEnviron) TestHugeWidth() {
	tw, err := New(env.tiny)
	env.Require().NoError(err)
	env.Equal(metrics.Width(math.MaxInt64), tw.MaxWidth(math.Inf(1)))
	env.Equal(metrics.Width(math.MaxInt64), tw.MaxWidth(1e300))
	env.Equal([]string{"aa bb cc"}, tw.Wrap(math.Inf(1), "  aa \n bb\tcc "))
}

func (env *WrapperTestEnviron) TestOverflowSplit() {
	tw, err := New(env.tiny, WithOverflow(greedy.OverflowSplit))
	env.Require().NoError(err)
	env.Equal([]string{"aa", "aabb", "bb c"}, tw.Wrap(1.6, "aa aabbbb c"))
	tw, err = New(env.tiny)
	env.Require().NoError(err)
	env.Equal([]string{"aa", "aabbbb", "c"}, tw.Wrap(1.6, "aa aabbbb c"))
}

func (env *WrapperTestEnviron) TestReferenceCharacter() {
	tw, err := New(env.tiny, WithReferenceCharacter("a"))
	env.Require().NoError(err)
	env.Equal(4.0, tw.BaseUnit())
	env.Equal([]string{"aa", "bb"}, tw.Wrap(3, "aa bb"), "3 a's = 12 units")
}

func (env *WrapperTestEnviron) TestInvalidReference() {
	for _, ref := range []string{"", "ab", "00", "a "} {
		_, err := New(env.tiny, WithReferenceCharacter(ref))
		env.True(errors.Is(err, ErrInvalidConfiguration), "%q: expected invalid configuration, have %v", ref, err)
	}
	// validation happens before the font is loaded
	_, err := New(filepath.Join(env.dir, "missing.ttf"), WithReferenceCharacter("ab"))
	env.True(errors.Is(err, ErrInvalidConfiguration))
	env.False(errors.Is(err, ErrFontLoad))
}

func (env *WrapperTestEnviron) TestUnsupportedReference() {
	for _, ref := range []string{"x", "z", " ", "中"} {
		_, err := New(env.tiny, WithReferenceCharacter(ref))
		env.True(errors.Is(err, ErrUnsupportedReferenceCharacter),
			"%q: expected unsupported reference character, have %v", ref, err)
	}
	_, err := New(env.goregular, WithReferenceCharacter("中"))
	env.True(errors.Is(err, ErrUnsupportedReferenceCharacter))
}

func (env *WrapperTestEnviron) TestDecomposedReference() {
	tw, err := New(env.goregular, WithReferenceCharacter("e\u0301"))
	env.Require().NoError(err)
	env.Equal("e\u0301", tw.ReferenceCharacter(), "expected reference as configured")
	env.Contains(tw.String(), fmt.Sprintf("reference_character=%q", "e\u0301"))
	composed, err := New(env.goregular, WithReferenceCharacter("\u00e9"))
	env.Require().NoError(err)
	env.Greater(tw.BaseUnit(), 0.0)
	env.Equal(composed.BaseUnit(), tw.BaseUnit(), "expected reference to be measured NFC normalized")
}

func (env *WrapperTestEnviron) TestFontLoadErrors() {
	_, err := New(filepath.Join(env.dir, "missing.ttf"))
	env.True(errors.Is(err, ErrFontLoad))
	env.True(errors.Is(err, os.ErrNotExist))
	garbage := env.writeFont("garbage.ttf", []byte("no font in here, sorry"))
	_, err = New(garbage)
	env.True(errors.Is(err, ErrFontLoad))
	_, err = New(garbage, WithMetricsLoader(metrics.LoadSFNT))
	env.True(errors.Is(err, ErrFontLoad))
	_, err = NewFromFont(nil)
	env.True(errors.Is(err, ErrFontLoad))
}

func (env *WrapperTestEnviron) TestBackends() {
	tw1, err := New(env.goregular)
	env.Require().NoError(err)
	tw2, err := New(env.goregular, WithMetricsLoader(metrics.LoadSFNT))
	env.Require().NoError(err)
	tw3, err := NewFromFont(font.FallbackFont(), WithMetricsLoader(nil))
	env.Require().NoError(err)
	env.Greater(tw1.BaseUnit(), 0.0)
	env.Equal(tw1.BaseUnit(), tw2.BaseUnit())
	env.Equal(tw1.BaseUnit(), tw3.BaseUnit())
	text := "It was the best of times, it was the worst of times, it was the age of wisdom"
	for _, width := range []float64{0, 5, 12.5, 20, 40, 1000} {
		lines := tw1.Wrap(width, text)
		env.Equal(lines, tw2.Wrap(width, text), "backends differ at width %g", width)
		env.Equal(lines, tw3.Wrap(width, text), "fonts differ at width %g", width)
	}
	env.Equal("internal", tw3.FontPath())
}

// --- Properties ------------------------------------------------------------

func TestWrapProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	//
	tw, err := NewFromFont(font.FallbackFont())
	require.NoError(t, err)
	text := "Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor"
	normalized := strings.Join(strings.Fields(text), " ")
	assert.Equal(t, []string{normalized}, tw.Wrap(1000, text))
	prev := len(tw.Wrap(0, text))
	for width := 1.0; width <= 80; width++ {
		lines := tw.Wrap(width, text)
		assert.LessOrEqual(t, len(lines), prev, "more lines at width %g", width)
		prev = len(lines)
		assert.Equal(t, normalized, strings.Join(lines, " "))
		for _, line := range lines {
			assert.Equal(t, []string{line}, tw.Wrap(width, line), "re-wrapping %q", line)
		}
		for _, l := range tw.WrapLines(width, text) {
			if strings.Contains(l.Text, " ") {
				assert.LessOrEqual(t, l.Width, tw.MaxWidth(width))
			}
		}
	}
}

func TestConcurrentWrap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	//
	tw, err := NewFromFont(font.FallbackFont(), WithMetricsLoader(metrics.LoadSFNT),
		WithOverflow(greedy.OverflowSplit))
	require.NoError(t, err)
	text := "Pack my box with five dozen liquor jugs, supercalifragilisticexpialidocious"
	want := tw.Wrap(12, text)
	var wg sync.WaitGroup
	results := make([][]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tw.Wrap(12, text)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, want, r)
	}
}

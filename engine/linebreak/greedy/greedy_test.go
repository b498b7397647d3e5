package greedy

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/ttfwrap/core/font/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// runeWidths measures every rune with a fixed width, defaulting to 1.
type runeWidths map[rune]metrics.Width

func (rw runeWidths) Measure(text string) metrics.Width {
	var w metrics.Width
	for _, r := range text {
		if a, ok := rw[r]; ok {
			w += a
		} else {
			w++
		}
	}
	return w
}

// --- Test Suite Preparation ------------------------------------------------

type GreedyTestEnviron struct {
	suite.Suite
	engine *Engine
}

// listen for 'go test' command --> run test methods
func TestGreedyLineBreaking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	suite.Run(t, new(GreedyTestEnviron))
}

// run before each test method
func (env *GreedyTestEnviron) SetupTest() {
	// letters are 4 units wide, like the space
	env.engine = New(runeWidths{'a': 4, 'b': 4, 'c': 4, ' ': 4}, OverflowKeep)
}

// --- Tests -----------------------------------------------------------------

func (env *GreedyTestEnviron) TestScenario() {
	// base unit 10, relative width 3.0 → 30 units
	lines := env.engine.Wrap(30, "aa bb cc")
	env.Equal([]string{"aa bb", "cc"}, lines)
}

func (env *GreedyTestEnviron) TestExactFit() {
	env.Equal([]string{"aa bb"}, env.engine.Wrap(20, "aa bb"), "20 = 8+4+8 must fit")
	env.Equal([]string{"aa", "bb"}, env.engine.Wrap(19, "aa bb"))
}

func (env *GreedyTestEnviron) TestEmptyInput() {
	env.Empty(env.engine.Wrap(100, ""))
	env.Empty(env.engine.Wrap(100, " \t\n  \r\n"))
	env.Nil(env.engine.Lines(100, "   "))
}

func (env *GreedyTestEnviron) TestWhitespaceNormalization() {
	lines := env.engine.Wrap(1000, "  aa\t\tbb \n\n cc  ")
	env.Equal([]string{"aa bb cc"}, lines)
}

func (env *GreedyTestEnviron) TestZeroWidth() {
	env.Equal([]string{"aa", "bb", "cc"}, env.engine.Wrap(0, "aa bb cc"))
	env.Equal([]string{"aa", "bb"}, env.engine.Wrap(-5, "aa bb"))
}

func (env *GreedyTestEnviron) TestOverflowKeep() {
	lines := env.engine.Wrap(10, "a bbbbbb c")
	env.Equal([]string{"a", "bbbbbb", "c"}, lines, "over-long word must stay intact on its own line")
}

func (env *GreedyTestEnviron) TestLineWidths() {
	lines := env.engine.Lines(30, "aa bb cc")
	env.Equal([]Line{{"aa bb", 20}, {"cc", 8}}, lines)
	env.Equal(metrics.Width(4), env.engine.SpaceWidth())
}

func (env *GreedyTestEnviron) TestOverflowSplit() {
	e := New(runeWidths{' ': 4}, OverflowSplit) // letters are 1 unit
	env.Equal(OverflowSplit, e.Overflow())
	lines := e.Lines(3, "abcdefg h")
	env.Equal([]Line{{"abc", 3}, {"def", 3}, {"g", 1}, {"h", 1}}, lines)
	lines = e.Lines(6, "x abcdefgh yz")
	env.Equal([]string{"x", "abcdef", "gh", "yz"}, texts(lines))
}

func (env *GreedyTestEnviron) TestSplitKeepsGraphemes() {
	e := New(runeWidths{' ': 1}, OverflowSplit)
	// e + combining acute accent is one grapheme of width 2
	word := "ae\u0301e\u0301"
	lines := e.Wrap(1, word)
	env.Equal([]string{"a", "e\u0301", "e\u0301"}, lines)
	env.Equal(word, strings.Join(lines, ""))
}

// --- Properties ------------------------------------------------------------

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	//
	e := New(runeWidths{' ': 2, 'W': 3}, OverflowKeep)
	text := "The quick brown fox jumps over the lazy dog. WWW Hello, World!"
	for max := metrics.Width(0); max < 80; max += 3 {
		lines := e.Wrap(max, text)
		for _, line := range lines {
			again := e.Wrap(max, line)
			assert.Equal(t, []string{line}, again, "re-wrapping line %q at %d", line, max)
		}
		// a single wide line yields the normalized text
		assert.Equal(t, strings.Join(strings.Fields(text), " "), strings.Join(lines, " "))
	}
}

func TestMonotonicity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	//
	e := New(runeWidths{' ': 2, 'm': 3, 'i': 1}, OverflowKeep)
	text := "minimum imitation mimics in limitless ultimatum immi"
	prev := len(e.Wrap(0, text))
	for max := metrics.Width(1); max < 200; max++ {
		n := len(e.Wrap(max, text))
		assert.LessOrEqual(t, n, prev, "more lines at width %d than at width %d", max, max-1)
		prev = n
	}
	assert.Equal(t, 1, prev)
}

func TestLinesRespectMaxWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	//
	m := runeWidths{' ': 2, 'W': 5}
	e := New(m, OverflowKeep)
	text := "WW w WWW www W ww WWWW w"
	for max := metrics.Width(0); max < 40; max++ {
		for _, l := range e.Lines(max, text) {
			assert.Equal(t, m.Measure(l.Text), l.Width)
			if strings.Contains(l.Text, " ") {
				assert.LessOrEqual(t, l.Width, max, "multi-word line %q exceeds %d", l.Text, max)
			}
		}
	}
}

func TestWordSplitting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ttfwrap.wrap")
	defer teardown()
	//
	cases := []struct {
		input string
		words []string
	}{
		{"", nil},
		{"   ", nil},
		{"word", []string{"word"}},
		{"  aa\t\tbb \n\n cc  ", []string{"aa", "bb", "cc"}},
		{"a\u00a0b c", []string{"a", "b", "c"}},
		{"h\u00e9llo w\u00f6rld \U0001F44D\U0001F3FD x",
			[]string{"h\u00e9llo", "w\u00f6rld", "\U0001F44D\U0001F3FD", "x"}},
	}
	for _, c := range cases {
		words := splitWords(c.input)
		assert.Equal(t, c.words, words, "splitting %q", c.input)
		assert.Equal(t, len(strings.Fields(c.input)), len(words))
	}
}

func TestOverflowString(t *testing.T) {
	assert.Equal(t, "keep", OverflowKeep.String())
	assert.Equal(t, "split", OverflowSplit.String())
}

func texts(lines []Line) []string {
	s := make([]string, len(lines))
	for i, l := range lines {
		s[i] = l.Text
	}
	return s
}

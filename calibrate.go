package ttfwrap

import (
	"math"
	"strings"

	"github.com/npillmayer/ttfwrap/core"
	"github.com/npillmayer/ttfwrap/engine/linebreak/greedy"
	"github.com/npillmayer/ttfwrap/engine/measure"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/norm"
)

// validateReference checks that ref is exactly one grapheme and returns its
// NFC form.
func validateReference(ref string) (string, error) {
	if n := graphemeCount(ref); n != 1 {
		tracer().Errorf("reference character %q consists of %d graphemes", ref, n)
		return "", core.Error(core.EINVALID,
			"reference character needs to be exactly 1 character, is %q", ref)
	}
	return norm.NFC.String(ref), nil
}

func graphemeCount(s string) int {
	if s == "" {
		return 0
	}
	grapheme.SetupGraphemeClasses()
	onGraphemes := grapheme.NewBreaker(1)
	seg := segment.NewSegmenter(onGraphemes)
	seg.Init(strings.NewReader(s))
	n := 0
	for seg.Next() {
		n++
	}
	return n
}

// calibrate measures the reference character. It is set on a line of
// unbounded width, which has to result in exactly one line. Every character
// of ref must be contained in the font.
func calibrate(m *measure.Measurer, ref string) (float64, error) {
	name := m.Face().Name()
	lines := greedy.New(m, greedy.OverflowKeep).Lines(math.MaxInt64, ref)
	if len(lines) != 1 {
		return 0, core.Error(core.EUNSUPPORTED,
			"reference character %q cannot be measured in font %s", ref, name)
	}
	if _, ok := m.MeasureStrict(lines[0].Text); !ok {
		return 0, core.Error(core.EUNSUPPORTED, "font %s does not contain %q", name, ref)
	}
	if lines[0].Width <= 0 {
		return 0, core.Error(core.EUNSUPPORTED,
			"reference character %q has zero width in font %s", ref, name)
	}
	tracer().Debugf("base unit %q = %d font units", ref, lines[0].Width)
	return float64(lines[0].Width), nil
}

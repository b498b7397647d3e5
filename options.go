package ttfwrap

import (
	"github.com/npillmayer/ttfwrap/core/font/metrics"
	"github.com/npillmayer/ttfwrap/engine/linebreak/greedy"
)

// DefaultReferenceCharacter is the unit of line widths if not configured otherwise.
const DefaultReferenceCharacter = "0"

// Option configures a TextWrapper.
type Option func(*config)

type config struct {
	refChar  string
	loader   metrics.Loader
	overflow greedy.Overflow
}

func defaultConfig() config {
	return config{
		refChar:  DefaultReferenceCharacter,
		loader:   metrics.Default,
		overflow: greedy.OverflowKeep,
	}
}

// WithReferenceCharacter sets the character whose width is the unit of line
// widths. It must be exactly one grapheme, e.g. "0", "M", "é" or "👍🏽".
func WithReferenceCharacter(ref string) Option {
	return func(c *config) {
		c.refChar = ref
	}
}

// WithMetricsLoader selects the backend interpreting the font data.
// The default is metrics.LoadOpenType; nil restores the default.
func WithMetricsLoader(loader metrics.Loader) Option {
	return func(c *config) {
		if loader == nil {
			loader = metrics.Default
		}
		c.loader = loader
	}
}

// WithOverflow selects how words wider than a line are handled.
// The default is greedy.OverflowKeep.
func WithOverflow(overflow greedy.Overflow) Option {
	return func(c *config) {
		c.overflow = overflow
	}
}

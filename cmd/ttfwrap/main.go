/*
Command ttfwrap shows how text wraps when set in a font at a given width.

Usage:

	ttfwrap [flags] [text …]

If text is given on the command line, it is wrapped and printed. Otherwise
ttfwrap enters interactive mode, wrapping every line entered. In interactive
mode, the width may be changed with

	:width <n>

font information is displayed with

	:font           metrics and tables of the font
	:glyph <chars>  glyph index, advance and left side bearing of each character

and the session is ended with :quit or <ctrl>D.

Flags are:

	-font     font file or name of a system font (default: Go Sans)
	-ref      reference character, the unit of widths (default "0")
	-width    line width in reference characters (default 40)
	-backend  font backend, "ot" or "sfnt" (default "ot")
	-split    split words which are too wide for a line
	-size     font size for displaying line widths, e.g. "11pt" (default 10bp)
	-trace    trace level [Debug|Info|Error]
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/ttfwrap"
	"github.com/npillmayer/ttfwrap/core"
	"github.com/npillmayer/ttfwrap/core/dimen"
	"github.com/npillmayer/ttfwrap/core/font"
	"github.com/npillmayer/ttfwrap/core/font/metrics"
	"github.com/npillmayer/ttfwrap/core/font/opentype/ot"
	"github.com/npillmayer/ttfwrap/core/font/opentype/otquery"
	"github.com/npillmayer/ttfwrap/core/locate"
	"github.com/npillmayer/ttfwrap/engine/linebreak/greedy"
	"github.com/pterm/pterm"
)

// tracer traces with key 'ttfwrap.wrap'
func tracer() tracing.Trace {
	return tracing.Select("ttfwrap.wrap")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":         "go",
		"trace.ttfwrap.wrap":      "Error",
		"trace.ttfwrap.fonts":     "Error",
		"trace.ttfwrap.resources": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font file or system font to load")
	ref := flag.String("ref", ttfwrap.DefaultReferenceCharacter, "Reference character")
	width := flag.Float64("width", 40, "Line width in reference characters")
	backend := flag.String("backend", "ot", "Font backend [ot|sfnt]")
	split := flag.Bool("split", false, "Split over-long words")
	size := flag.String("size", "10bp", "Font size for displaying line widths")
	flag.Parse()
	setTraceLevel(*tlevel)
	fontsize, err := parseFontSize(*size)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	//
	// load font and set up the wrapper
	tw, f, err := makeWrapper(*fontname, *ref, *backend, *split)
	if err != nil {
		core.UserError(err)
		os.Exit(2)
	}
	pterm.Info.Printfln("%s (font %q, base unit %.0f)", tw, tw.FontName(), tw.BaseUnit())
	intp := &Intp{wrapper: tw, font: f, width: *width, fontsize: fontsize}
	if flag.NArg() > 0 { // text provided as arguments
		intp.wrap(strings.Join(flag.Args(), " "))
		return
	}
	//
	// set up REPL
	repl, err := readline.New("wrap > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                             // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level string) {
	l := tracing.LevelError
	switch strings.ToLower(level) {
	case "debug":
		l = tracing.LevelDebug
	case "info":
		l = tracing.LevelInfo
	}
	for _, key := range []string{"ttfwrap.wrap", "ttfwrap.fonts", "ttfwrap.resources"} {
		tracing.Select(key).SetTraceLevel(l)
	}
}

// parseFontSize parses an absolute, positive font size.
func parseFontSize(size string) (dimen.Dimen, error) {
	fontsize, err := dimen.ParseDimen(size)
	if err != nil {
		return dimen.Zero, core.WrapError(err, core.EINVALID, "illegal font size: %s", size)
	}
	if fontsize <= 0 {
		return dimen.Zero, core.Error(core.EINVALID, "font size must be positive: %s", size)
	}
	return fontsize, nil
}

func makeWrapper(fontname, ref, backend string, split bool) (*ttfwrap.TextWrapper, *font.ScalableFont, error) {
	var loader metrics.Loader
	switch strings.ToLower(backend) {
	case "ot", "opentype":
		loader = metrics.LoadOpenType
	case "sfnt":
		loader = metrics.LoadSFNT
	default:
		return nil, nil, core.Error(core.EINVALID, "unknown font backend %q", backend)
	}
	overflow := greedy.OverflowKeep
	if split {
		overflow = greedy.OverflowSplit
	}
	opts := []ttfwrap.Option{
		ttfwrap.WithReferenceCharacter(ref),
		ttfwrap.WithMetricsLoader(loader),
		ttfwrap.WithOverflow(overflow),
	}
	f, err := locate.ResolveFont(fontname).Font()
	if err != nil {
		return nil, nil, err
	}
	tw, err := ttfwrap.NewFromFont(f, opts...)
	return tw, f, err
}

// Intp is our interpreter object
type Intp struct {
	wrapper  *ttfwrap.TextWrapper
	font     *font.ScalableFont
	otf      *ot.Font // parsed on demand by :font and :glyph
	repl     *readline.Instance
	width    float64
	fontsize dimen.Dimen
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if !strings.HasPrefix(line, ":") {
			intp.wrap(line)
			continue
		}
		quit, err := intp.execute(strings.Fields(line[1:]))
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd []string) (bool, error) {
	tracer().Infof("cmd = %v", cmd)
	if len(cmd) == 0 {
		return false, nil
	}
	switch strings.ToLower(cmd[0]) {
	case "quit", "q":
		return true, nil
	case "width", "w":
		if len(cmd) < 2 {
			pterm.Printfln("width = %g", intp.width)
			return false, nil
		}
		w, err := strconv.ParseFloat(cmd[1], 64)
		if err != nil || w < 0 {
			return false, fmt.Errorf("width must be a non-negative number: %s", cmd[1])
		}
		intp.width = w
		pterm.Printfln("width = %g (%d font units)", w, intp.wrapper.MaxWidth(w))
	case "font", "f":
		otf, err := intp.parsedFont()
		if err != nil {
			return false, err
		}
		for _, line := range intp.fontInfo(otf) {
			pterm.Println(line)
		}
	case "glyph", "g":
		if len(cmd) < 2 {
			return false, fmt.Errorf("usage: :glyph <characters>")
		}
		otf, err := intp.parsedFont()
		if err != nil {
			return false, err
		}
		for _, line := range glyphInfo(otf, strings.Join(cmd[1:], " ")) {
			pterm.Println(line)
		}
	default:
		help()
	}
	return false, nil
}

func (intp *Intp) wrap(text string) {
	max := intp.wrapper.MaxWidth(intp.width)
	for i, line := range intp.wrapper.WrapLines(intp.width, text) {
		marker := " "
		if line.Width > max {
			marker = pterm.Red("!")
		}
		pterm.Printfln("%3d %s %s %s", i+1, marker, line.Text,
			pterm.Gray(fmt.Sprintf("(%d = %.1fbp)", line.Width, intp.points(line.Width))))
	}
}

func (intp *Intp) parsedFont() (*ot.Font, error) {
	if intp.otf == nil {
		if intp.font == nil {
			return nil, core.Error(core.EMISSING, "no font loaded")
		}
		otf, err := ot.Parse(intp.font.Binary)
		if err != nil {
			return nil, err
		}
		intp.otf = otf
	}
	return intp.otf, nil
}

// fontInfo describes the vertical metrics and the tables of a font.
func (intp *Intp) fontInfo(otf *ot.Font) []string {
	m := otquery.FontMetrics(otf)
	info := []string{
		fmt.Sprintf("font        %s (%s)", otquery.FullName(otf), otquery.FontType(otf)),
		fmt.Sprintf("units/em    %d", m.UnitsPerEm),
		fmt.Sprintf("ascent      %d", m.Ascent),
		fmt.Sprintf("descent     %d", m.Descent),
		fmt.Sprintf("line gap    %d", m.LineGap),
		fmt.Sprintf("line height %d = %.1fbp", m.LineHeight(), intp.points(metrics.Width(m.LineHeight()))),
		fmt.Sprintf("max advance %d", m.MaxAdvance),
	}
	tags := otf.TableTags()
	names := make([]string, len(tags))
	for i, tag := range tags {
		names[i] = tag.String()
	}
	return append(info, fmt.Sprintf("tables      %s", strings.Join(names, " ")))
}

// glyphInfo describes the horizontal metrics of the glyphs for text.
func glyphInfo(otf *ot.Font, text string) []string {
	var info []string
	for _, r := range text {
		gid := otquery.GlyphIndex(otf, r)
		if gid == 0 {
			info = append(info, fmt.Sprintf("%#U  .notdef", r))
			continue
		}
		gm := otquery.GlyphMetrics(otf, gid)
		info = append(info, fmt.Sprintf("%#U  glyph %5d  advance %5d  lsb %5d", r, gid, gm.Advance, gm.LSB))
	}
	return info
}

// points converts a width in font units to big points at the display font size.
func (intp *Intp) points(w metrics.Width) float64 {
	return dimen.FromFontUnits(int64(w), intp.wrapper.UnitsPerEm(), intp.fontsize).Points()
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	<text>         wrap text at the current width
	:width <n>     set line width to n reference characters
	:width         show current line width
	:font          show font metrics and tables
	:glyph <chars> show glyph metrics
	:quit          end session
	`)
}

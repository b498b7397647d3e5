package locate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/ttfwrap/core"
	"github.com/npillmayer/ttfwrap/core/font"
)

// NotFound returns an application error for a missing font.
func NotFound(name string) error {
	e := fmt.Errorf("resource missing: %v", name)
	return core.WrapError(e, core.EMISSING, "font not found: %s", name)
}

// FontPath returns the path of a font file. If name denotes an existing
// file, it is returned unchanged. Otherwise name is looked up as a system font,
// first by file name, then by comparing normalized font names, such that
// "DejaVu Sans" will find "DejaVuSans.ttf".
func FontPath(name string) (string, error) {
	if name == "" {
		return "", NotFound(name)
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	fpath, err := findfont.Find(name) // try to find as system font
	if err == nil && fpath != "" {
		tracer().Debugf("%s is a system font: %s", name, fpath)
		return fpath, nil
	}
	tracer().Debugf("no system font file %s: %v", name, err)
	if fpath = matchFontname(name, findfont.List()); fpath != "" {
		tracer().Debugf("%s matches system font %s", name, fpath)
		return fpath, nil
	}
	return "", NotFound(name)
}

// matchFontname returns the first of paths whose file name is equal to name
// after normalization, or "".
func matchFontname(name string, paths []string) string {
	needle := font.NormalizeFontname(name)
	if needle == "" {
		return ""
	}
	for _, p := range paths {
		if font.NormalizeFontname(filepath.Base(p)) == needle {
			return p
		}
	}
	return ""
}

// --- Fonts -----------------------------------------------------------------

type fontPlusErr struct {
	font *font.ScalableFont
	err  error
}

// FontPromise is the result of ResolveFont.
type FontPromise interface {
	Font() (*font.ScalableFont, error)
	Await(ctx context.Context) (*font.ScalableFont, error)
}

type fontLoader struct {
	await func(ctx context.Context) (*font.ScalableFont, error)
}

func (loader fontLoader) Font() (*font.ScalableFont, error) {
	return loader.await(context.Background())
}

func (loader fontLoader) Await(ctx context.Context) (*font.ScalableFont, error) {
	return loader.await(ctx)
}

// ResolveFont locates and loads a font in the background. An empty name
// resolves to the fallback font.
func ResolveFont(name string) FontPromise {
	ch := make(chan fontPlusErr, 1)
	go func(ch chan<- fontPlusErr) {
		defer close(ch)
		result := fontPlusErr{}
		if name == "" {
			tracer().Infof("no font given, using fallback font")
			result.font = font.FallbackFont()
			ch <- result
			return
		}
		var fpath string
		if fpath, result.err = FontPath(name); result.err == nil {
			result.font, result.err = font.LoadOpenTypeFont(fpath)
		}
		ch <- result
	}(ch)
	return fontLoader{
		await: func(ctx context.Context) (*font.ScalableFont, error) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case r := <-ch:
				return r.font, r.err
			}
		},
	}
}

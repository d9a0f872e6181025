package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/ukaji3/figplot-go/pkg/figplot/models"
)

// Context carries the text settings every chart element is drawn with. It is
// built once per run and never modified afterwards.
type Context struct {
	// Font is the text face at the global font size.
	Font font.Font
	// Handler lays out text: LaTeX or plain.
	Handler text.Handler
	// Fonts holds the Liberation faces plus any configured font files.
	Fonts *font.Cache
}

// NewContext registers the configured font files and selects the text handler.
// The first font file becomes the typeface; without one, Liberation Serif is
// used.
func NewContext(cfg models.Fonts, size float64) (*Context, error) {
	cache := font.NewCache(liberation.Collection())
	face := font.Font{Typeface: "Liberation", Variant: "Serif"}

	for i, path := range cfg.Files {
		f, err := loadFontFile(path)
		if err != nil {
			return nil, err
		}
		name := font.Typeface(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		// The LaTeX handler always looks faces up as the Serif variant.
		fnt := font.Font{Typeface: name, Variant: "Serif"}
		cache.Add(font.Collection{{Font: fnt, Face: f}})
		if i == 0 {
			face = fnt
		}
	}
	face.Size = vg.Points(size)

	var handler text.Handler = text.Plain{Fonts: cache}
	if cfg.TeXEnabled() {
		handler = text.Latex{Fonts: cache}
	}

	return &Context{Font: face, Handler: handler, Fonts: cache}, nil
}

// FontAt returns the context typeface at the given size.
func (c *Context) FontAt(size vg.Length) font.Font {
	f := c.Font
	f.Size = size
	return f
}

// TextStyle returns a black, left-aligned text style at the given size.
func (c *Context) TextStyle(size vg.Length) text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    c.FontAt(size),
		XAlign:  text.XLeft,
		YAlign:  text.YCenter,
		Handler: c.Handler,
	}
}

func loadFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".ttc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse font collection %s: %w", path, err)
		}
		return coll.Font(0)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

package rendering

import (
	stderrors "errors"
	"math"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-loom/loom/pkg/errors"
	"github.com/go-loom/loom/pkg/graphics"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
)

// TextAlignment controls horizontal placement of lines inside a layout.
type TextAlignment int

const (
	TextAlignStart TextAlignment = iota
	TextAlignCenter
	TextAlignEnd
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      graphics.Color
	FontFamily string
	FontSize   float64
	Alignment  TextAlignment
}

// FaceMetrics carries the vertical metrics of a font face in pixels.
type FaceMetrics struct {
	Ascent  float64
	Descent float64
	LineGap float64
}

// Face measures text in a single font face.
//
// Two implementations ship with the framework: BitmapFace over an
// x/image font.Face, and ShapedFace over a go-text/typesetting HarfBuzz
// shaper for caller-supplied TrueType fonts.
type Face interface {
	Metrics() FaceMetrics
	// Advance returns the total advance width of the text in pixels.
	Advance(text string) float64
}

// BitmapFace adapts an x/image font.Face for measurement and drawing.
type BitmapFace struct {
	face font.Face
}

// NewBitmapFace wraps an x/image font face.
func NewBitmapFace(face font.Face) *BitmapFace {
	return &BitmapFace{face: face}
}

// Metrics implements Face.
func (f *BitmapFace) Metrics() FaceMetrics {
	m := f.face.Metrics()
	return FaceMetrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		LineGap: math.Max(0, fixedToFloat(m.Height)-fixedToFloat(m.Ascent)-fixedToFloat(m.Descent)),
	}
}

// Advance implements Face.
func (f *BitmapFace) Advance(text string) float64 {
	return fixedToFloat(font.MeasureString(f.face, text))
}

// XFace exposes the underlying x/image face so rasterizers can draw glyphs.
func (f *BitmapFace) XFace() font.Face {
	return f.face
}

// DefaultFace returns the built-in bitmap face (basicfont 7x13).
func DefaultFace() Face {
	return NewBitmapFace(basicfont.Face7x13)
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and the face used to measure.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       graphics.Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
	face       Face
}

// Face returns the face the layout was measured with.
func (t *TextLayout) Face() Face {
	return t.face
}

// Baseline returns the distance from the layout's top edge to the first
// line's text baseline.
func (t *TextLayout) Baseline() float64 {
	return t.Ascent
}

// LineOffset returns the horizontal offset of line i given the layout's
// alignment and total width.
func (t *TextLayout) LineOffset(i int) float64 {
	if i < 0 || i >= len(t.Lines) {
		return 0
	}
	slack := t.Size.Width - t.Lines[i].Width
	switch t.Style.Alignment {
	case TextAlignCenter:
		return slack / 2
	case TextAlignEnd:
		return slack
	default:
		return 0
	}
}

// TextFactory constructs measured text layouts.
//
// A zero maxWidth means no wrapping.
type TextFactory interface {
	NewTextLayout(text string, style TextStyle, maxWidth float64) (*TextLayout, error)
}

// FontRegistry maps font family names to faces and implements TextFactory.
type FontRegistry struct {
	mu          sync.RWMutex
	faces       map[string]Face
	defaultName string
}

// NewFontRegistry creates a registry whose default face is the built-in
// bitmap face.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{faces: map[string]Face{"": DefaultFace()}}
}

var (
	defaultRegistry     *FontRegistry
	defaultRegistryOnce sync.Once
)

// DefaultFontRegistry returns a shared registry with the built-in face.
func DefaultFontRegistry() *FontRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewFontRegistry()
	})
	return defaultRegistry
}

// RegisterFace registers a face under a family name. Registering under the
// empty name replaces the default face.
func (r *FontRegistry) RegisterFace(name string, face Face) error {
	if face == nil {
		return stderrors.New("face required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces[name] = face
	return nil
}

// SetDefault selects the default family for styles without a FontFamily.
func (r *FontRegistry) SetDefault(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.faces[name]; !ok {
		return stderrors.New("unknown font family: " + name)
	}
	r.defaultName = name
	return nil
}

// Face resolves a face for the given style.
func (r *FontRegistry) Face(style TextStyle) (Face, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	family := style.FontFamily
	if family == "" {
		family = r.defaultName
	}
	if face, ok := r.faces[family]; ok {
		return face, nil
	}
	if face, ok := r.faces[""]; ok {
		return face, nil
	}
	return nil, stderrors.New("no face registered for family: " + family)
}

// NewTextLayout implements TextFactory.
func (r *FontRegistry) NewTextLayout(text string, style TextStyle, maxWidth float64) (*TextLayout, error) {
	face, err := r.Face(style)
	if err != nil {
		errors.Report(&errors.Error{
			Op:   "rendering.NewTextLayout",
			Kind: errors.KindText,
			Err:  err,
		})
		return nil, err
	}
	return layoutWithFace(text, style, face, maxWidth), nil
}

func layoutWithFace(text string, style TextStyle, face Face, maxWidth float64) *TextLayout {
	if style.FontSize <= 0 {
		style.FontSize = defaultFontSize
	}
	metrics := face.Metrics()
	lineHeight := metrics.Ascent + metrics.Descent + metrics.LineGap
	if lineHeight == 0 {
		lineHeight = metrics.Ascent + metrics.Descent
	}
	lines := layoutLines(text, maxWidth, face.Advance)
	maxLineWidth := 0.0
	for _, line := range lines {
		maxLineWidth = math.Max(maxLineWidth, line.Width)
	}
	if len(lines) == 0 {
		lines = []TextLine{{Text: "", Width: 0}}
	}
	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       graphics.Size{Width: maxLineWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     metrics.Ascent,
		Descent:    metrics.Descent,
		LineHeight: lineHeight,
		Lines:      lines,
		face:       face,
	}
}

func layoutLines(text string, maxWidth float64, measure func(string) float64) []TextLine {
	if maxWidth < 0 || math.IsInf(maxWidth, 0) {
		maxWidth = 0
	}
	paragraphs := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(paragraphs))
	for _, paragraph := range paragraphs {
		if paragraph == "" {
			lines = append(lines, TextLine{})
			continue
		}
		if maxWidth == 0 {
			lines = append(lines, TextLine{Text: paragraph, Width: measure(paragraph)})
			continue
		}
		for _, line := range wrapParagraph(paragraph, maxWidth, measure) {
			lines = append(lines, TextLine{Text: line, Width: measure(line)})
		}
	}
	return lines
}

func wrapParagraph(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	start := 0
	for start < len(text) {
		lastBreak := -1
		lastFit := -1
		for i := start; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			next := i + size
			width := measure(text[start:next])
			if width > maxWidth {
				break
			}
			lastFit = next
			if unicode.IsSpace(r) {
				lastBreak = next
			}
			i = next
		}
		if lastFit == -1 {
			// Even a single rune overflows; emit it anyway to make progress.
			_, size := utf8.DecodeRuneInString(text[start:])
			lastFit = start + size
		}
		cut := lastFit
		if lastFit < len(text) && lastBreak > start && lastBreak < lastFit {
			cut = lastBreak
		}
		line := strings.TrimRightFunc(text[start:cut], unicode.IsSpace)
		lines = append(lines, line)
		start = cut
		for start < len(text) {
			r, size := utf8.DecodeRuneInString(text[start:])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

package rendering

import (
	"bytes"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedFace measures text with HarfBuzz shaping via go-text/typesetting.
// Compared to BitmapFace it accounts for kerning, ligatures, and complex
// scripts. It is constructed from caller-supplied TrueType font bytes.
//
// ShapedFace is safe for concurrent use. The parsed font.Font is read-only;
// HarfbuzzShaper instances have internal mutable state and are pooled.
type ShapedFace struct {
	font *font.Font
	size float64

	shaperPool sync.Pool

	metricsOnce sync.Once
	metrics     FaceMetrics
}

// NewShapedFace parses TrueType font data and returns a face at the given
// pixel size.
func NewShapedFace(ttf []byte, size float64) (*ShapedFace, error) {
	parsed, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, err
	}
	return &ShapedFace{
		font: parsed.Font,
		size: size,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}, nil
}

// Metrics implements Face. Line metrics come from the shaper's line bounds.
func (f *ShapedFace) Metrics() FaceMetrics {
	f.metricsOnce.Do(func() {
		out := f.shape("x")
		f.metrics = FaceMetrics{
			Ascent:  fixedToFloat(out.LineBounds.Ascent),
			Descent: -fixedToFloat(out.LineBounds.Descent),
			LineGap: fixedToFloat(out.LineBounds.Gap),
		}
	})
	return f.metrics
}

// Advance implements Face.
func (f *ShapedFace) Advance(text string) float64 {
	if text == "" {
		return 0
	}
	return fixedToFloat(f.shape(text).Advance)
}

// Size returns the face's pixel size.
func (f *ShapedFace) Size() float64 {
	return f.size
}

func (f *ShapedFace) shape(text string) shaping.Output {
	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(f.font),
		Size:      floatToFixed(f.size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	shaper := f.shaperPool.Get().(*shaping.HarfbuzzShaper)
	out := shaper.Shape(input)
	f.shaperPool.Put(shaper)
	return out
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, callers should split runs
// by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6 (6 fractional bits).
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

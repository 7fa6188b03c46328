package charts

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// TextMetrics measures the rendered width of a string at a font size given in
// pixels.
type TextMetrics interface {
	MeasureWidth(string, float64) float64
}

// approxGlyphRatio is the average glyph width expressed as a divisor of the
// font size.
const approxGlyphRatio = 1.75

// ApproxMetrics estimates widths as runes*size/1.75. It does not look at any
// font and is the default measurer of every layout.
type ApproxMetrics struct{}

func (ApproxMetrics) MeasureWidth(text string, size float64) float64 {
	return float64(utf8.RuneCountInString(text)) * size / approxGlyphRatio
}

// FaceMetrics measures advance widths with a real font. Faces are created
// lazily per size and shared between goroutines.
type FaceMetrics struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFaceMetrics parses the given TrueType or OpenType data. Empty data
// selects the Go regular font.
func NewFaceMetrics(data []byte) (*FaceMetrics, error) {
	if len(data) == 0 {
		data = goregular.TTF
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FaceMetrics{
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

func (m *FaceMetrics) MeasureWidth(text string, size float64) float64 {
	if text == "" || size <= 0 {
		return 0
	}
	face := m.getFace(size)
	if face == nil {
		return ApproxMetrics{}.MeasureWidth(text, size)
	}
	adv := font.MeasureString(face, text)
	return float64(adv) / 64
}

// Close releases every cached face.
func (m *FaceMetrics) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
	return nil
}

func (m *FaceMetrics) getFace(size float64) font.Face {
	m.mu.Lock()
	defer m.mu.Unlock()

	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		Logger().Warn("metrics: face unavailable, falling back to estimate", "size", size, "err", err)
		return nil
	}
	m.faces[size] = face
	return face
}

func getMetrics(m TextMetrics) TextMetrics {
	if m == nil {
		return ApproxMetrics{}
	}
	return m
}

package text

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// DefaultFamily is the name under which the embedded font is registered.
const DefaultFamily = "goregular"

// Align selects the horizontal alignment of shaped lines
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Font is a parsed TrueType font at a fixed size. Lengths are in points.
type Font struct {
	Family     string
	Size       float64
	LineHeight float64
	// TTF holds the raw font program, for embedding into the output.
	TTF []byte

	face font.Face
}

// LoadFont parses ttf and prepares it at the given size. lineHeight is a
// multiple of size.
func LoadFont(family string, ttf []byte, size, lineHeight float64) (*Font, error) {
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", family, err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s face: %w", family, err)
	}
	return &Font{
		Family:     family,
		Size:       size,
		LineHeight: lineHeight,
		TTF:        ttf,
		face:       face,
	}, nil
}

// DefaultFont loads the Go Regular font that is compiled into the binary,
// so label layout does not depend on the fonts installed on the host.
func DefaultFont(size float64) (*Font, error) {
	return LoadFont(DefaultFamily, goregular.TTF, size, 1.2)
}

// Ascent returns the distance from the baseline to the top of the font.
func (f *Font) Ascent() float64 {
	return points(f.face.Metrics().Ascent)
}

// Descent returns the distance from the baseline to the bottom of the font.
func (f *Font) Descent() float64 {
	return points(f.face.Metrics().Descent)
}

// Measure returns the advance width of s.
func (f *Font) Measure(s string) float64 {
	return points(font.MeasureString(f.face, s))
}

// HasGlyph reports whether the font can draw r
func (f *Font) HasGlyph(r rune) bool {
	_, ok := f.face.GlyphAdvance(r)
	return ok
}

// Close releases the font face
func (f *Font) Close() error {
	return f.face.Close()
}

func points(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Line is one line of shaped text. X and Y locate the line's baseline start
// relative to the shaping origin, with Y growing upwards: the first line
// sits on the origin and every following line is LineHeight lower.
type Line struct {
	Text  string
	X     float64
	Y     float64
	Width float64
}

// ShapedText represents shaped text ready for rendering
type ShapedText struct {
	Text    string
	Lines   []Line
	Width   float64
	Height  float64
	Ascent  float64
	Descent float64
	LineGap float64
}

// Truncate keeps the first n lines, at least one, and reports whether
// any were dropped.
func (t *ShapedText) Truncate(n int) bool {
	n = max(n, 1)
	if len(t.Lines) <= n {
		return false
	}
	lineHeight := t.LineGap + t.Ascent + t.Descent
	t.Lines = t.Lines[:n]
	t.Height = t.Ascent + t.Descent + float64(n-1)*lineHeight
	return true
}

// TextShaper breaks text into lines that fit a width and aligns them.
type TextShaper struct {
	Font  *Font
	Align Align
}

// NewTextShaper creates a shaper that centres lines, as used for labels
func NewTextShaper(f *Font) *TextShaper {
	return &TextShaper{Font: f, Align: AlignCenter}
}

// ShapeText shapes text for rendering. Lines are wrapped at word
// boundaries to fit maxWidth; a word wider than maxWidth is split between
// characters. A maxWidth of zero or less disables wrapping. Text is NFC
// normalised first; a character missing from the font is an error.
func (s *TextShaper) ShapeText(text string, maxWidth float64) (*ShapedText, error) {
	text = norm.NFC.String(text)
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if !s.Font.HasGlyph(r) {
			return nil, fmt.Errorf("font %s has no glyph for %q in %q", s.Font.Family, r, text)
		}
	}

	lineHeight := s.Font.Size * s.Font.LineHeight
	ascent := s.Font.Ascent()
	descent := s.Font.Descent()

	shaped := &ShapedText{
		Text:    text,
		Width:   maxWidth,
		Ascent:  ascent,
		Descent: descent,
		LineGap: lineHeight - (ascent + descent),
	}

	widest := 0.0
	for i, content := range s.SplitTextToLines(text, maxWidth) {
		width := s.Font.Measure(content)
		widest = max(widest, width)

		x := 0.0
		switch s.Align {
		case AlignCenter:
			x = (maxWidth - width) / 2
		case AlignRight:
			x = maxWidth - width
		}
		if maxWidth <= 0 {
			x = 0
		}

		shaped.Lines = append(shaped.Lines, Line{
			Text:  content,
			X:     x,
			Y:     -float64(i) * lineHeight,
			Width: width,
		})
	}

	if maxWidth <= 0 {
		shaped.Width = widest
	}
	shaped.Height = ascent + descent + float64(len(shaped.Lines)-1)*lineHeight

	return shaped, nil
}

// SplitTextToLines splits text into lines based on a maximum width.
// Explicit newlines always start a new line.
func (s *TextShaper) SplitTextToLines(text string, maxWidth float64) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := splitIntoWords(paragraph)
		if maxWidth <= 0 {
			lines = append(lines, strings.Join(words, " "))
			continue
		}

		currentLine := ""
		for _, word := range words {
			for s.Font.Measure(word) > maxWidth && utf8.RuneCountInString(word) > 1 {
				if currentLine != "" {
					lines = append(lines, currentLine)
					currentLine = ""
				}
				head, tail := s.fit(word, maxWidth)
				lines = append(lines, head)
				word = tail
			}

			candidate := word
			if currentLine != "" {
				candidate = currentLine + " " + word
			}
			if currentLine != "" && s.Font.Measure(candidate) > maxWidth {
				lines = append(lines, currentLine)
				currentLine = word
			} else {
				currentLine = candidate
			}
		}
		lines = append(lines, currentLine)
	}
	return lines
}

// fit splits word after the longest prefix that fits maxWidth. The prefix
// holds at least one character.
func (s *TextShaper) fit(word string, maxWidth float64) (string, string) {
	end := 0
	for i, r := range word {
		next := i + utf8.RuneLen(r)
		if end > 0 && s.Font.Measure(word[:next]) > maxWidth {
			break
		}
		end = next
	}
	return word[:end], word[end:]
}

// splitIntoWords splits text into words
func splitIntoWords(text string) []string {
	var words []string
	var currentWord strings.Builder

	for _, r := range text {
		if unicode.IsSpace(r) {
			if currentWord.Len() > 0 {
				words = append(words, currentWord.String())
				currentWord.Reset()
			}
		} else {
			currentWord.WriteRune(r)
		}
	}

	if currentWord.Len() > 0 {
		words = append(words, currentWord.String())
	}

	return words
}

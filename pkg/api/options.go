package api

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/passqr/passqr/internal/text"
)

// ErrInvalidOptions is wrapped by every error from Options.Validate
var ErrInvalidOptions = errors.New("invalid options")

// Options represents configuration options for the entries to PDF converter.
// Lengths are in points (1/72 inch).
type Options struct {
	// Page dimensions
	PageWidth  float64
	PageHeight float64
	// Margin applies to all four sides
	Margin float64

	// Grid shape of the QR pages
	Columns int
	Rows    int
	// LabelHeight is the band above each QR code reserved for its label
	LabelHeight float64
	// FontSize of the labels
	FontSize float64
	// LabelAlign is the horizontal alignment of label lines within a cell
	LabelAlign Align

	// RecapQRSize is the requested size of the code on recap pages; it is
	// reduced to fit the workable area
	RecapQRSize float64
	// DPI of the QR images
	DPI float64

	// Debug enables debug logging when Logger is nil
	Debug bool
	// DebugDrawBoxes outlines label bands, QR bands and recap areas
	DebugDrawBoxes bool
	// Logger receives diagnostics; nil means slog.Default()
	Logger *slog.Logger

	// Resource paths searched for relative input names
	ResourcePaths []string

	// Document metadata
	Title    string
	Author   string
	Subject  string
	Keywords string
}

// Align selects how label lines sit within the cell width
type Align = text.Align

const (
	AlignLeft   = text.AlignLeft
	AlignCenter = text.AlignCenter
	AlignRight  = text.AlignRight
)

// ParseAlign returns the alignment named "left", "center" or "right"
func ParseAlign(name string) (Align, error) {
	switch name {
	case "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignCenter, fmt.Errorf("%w: unknown label alignment %q", ErrInvalidOptions, name)
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		PageWidth:  PageSizeA4Width,
		PageHeight: PageSizeA4Height,
		// 10mm
		Margin: 28.35,

		Columns:     3,
		Rows:        4,
		LabelHeight: 24,
		FontSize:    10,
		LabelAlign:  AlignCenter,

		// 130mm
		RecapQRSize: 368.5,
		DPI:         300,

		ResourcePaths: []string{},

		Title: "passqr",
	}
}

// Validate reports the first option that cannot produce a layout
func (o Options) Validate() error {
	switch {
	case o.PageWidth <= 0 || o.PageHeight <= 0:
		return fmt.Errorf("%w: page size %gx%g", ErrInvalidOptions, o.PageWidth, o.PageHeight)
	case o.Margin < 0:
		return fmt.Errorf("%w: negative margin %g", ErrInvalidOptions, o.Margin)
	case 2*o.Margin >= o.PageWidth || 2*o.Margin >= o.PageHeight:
		return fmt.Errorf("%w: margin %g leaves no workable area", ErrInvalidOptions, o.Margin)
	case o.Columns <= 0 || o.Rows <= 0:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidOptions, o.Columns, o.Rows)
	case o.LabelHeight < 0:
		return fmt.Errorf("%w: negative label height %g", ErrInvalidOptions, o.LabelHeight)
	case o.LabelHeight >= (o.PageHeight-2*o.Margin)/float64(o.Rows):
		return fmt.Errorf("%w: label height %g leaves no room for QR codes", ErrInvalidOptions, o.LabelHeight)
	case o.FontSize <= 0:
		return fmt.Errorf("%w: font size %g", ErrInvalidOptions, o.FontSize)
	case o.RecapQRSize <= 0:
		return fmt.Errorf("%w: recap QR size %g", ErrInvalidOptions, o.RecapQRSize)
	case o.DPI <= 0:
		return fmt.Errorf("%w: DPI %g", ErrInvalidOptions, o.DPI)
	case o.LabelAlign < AlignLeft || o.LabelAlign > AlignRight:
		return fmt.Errorf("%w: label alignment %d", ErrInvalidOptions, o.LabelAlign)
	}
	return nil
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithMargin sets the page margin
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithGrid sets the number of columns and rows on QR pages
func WithGrid(columns, rows int) Option {
	return func(o *Options) {
		o.Columns = columns
		o.Rows = rows
	}
}

// WithLabelHeight sets the height of the label band
func WithLabelHeight(height float64) Option {
	return func(o *Options) {
		o.LabelHeight = height
	}
}

// WithFontSize sets the label font size
func WithFontSize(size float64) Option {
	return func(o *Options) {
		o.FontSize = size
	}
}

// WithRecapQRSize sets the requested size of recap QR codes
func WithRecapQRSize(size float64) Option {
	return func(o *Options) {
		o.RecapQRSize = size
	}
}

// WithLabelAlign sets the horizontal alignment of labels
func WithLabelAlign(align Align) Option {
	return func(o *Options) {
		o.LabelAlign = align
	}
}

// WithDPI sets the DPI
func WithDPI(dpi float64) Option {
	return func(o *Options) {
		o.DPI = dpi
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithDebugDrawBoxes toggles layout overlays
func WithDebugDrawBoxes(draw bool) Option {
	return func(o *Options) {
		o.DebugDrawBoxes = draw
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithResourcePath adds a path to search for input files
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithTitle sets the document title
func WithTitle(title string) Option {
	return func(o *Options) {
		o.Title = title
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithSubject sets the document subject
func WithSubject(subject string) Option {
	return func(o *Options) {
		o.Subject = subject
	}
}

// WithKeywords sets the document keywords
func WithKeywords(keywords string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// Standard page sizes in points (1/72 inch)
const (
	// A series
	PageSizeA3Width  = 841.89
	PageSizeA3Height = 1190.55
	PageSizeA4Width  = 595.28
	PageSizeA4Height = 841.89
	PageSizeA5Width  = 419.53
	PageSizeA5Height = 595.28

	// US Letter and Legal
	PageSizeLetterWidth  = 612
	PageSizeLetterHeight = 792
	PageSizeLegalWidth   = 612
	PageSizeLegalHeight  = 1008
)

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(PageSizeA4Width, PageSizeA4Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(PageSizeLetterWidth, PageSizeLetterHeight)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(PageSizeLegalWidth, PageSizeLegalHeight)
}

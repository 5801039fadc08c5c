package passqr

import (
	"github.com/passqr/passqr/pkg/api"
)

type Converter = api.Converter
type Options = api.Options
type Option = api.Option
type Entry = api.Entry
type Entries = api.Entries
type Page = api.Page
type Align = api.Align

func New() *Converter                           { return api.New() }
func NewWithOptions(options Options) *Converter { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }
func ParseEntries(data []byte) (Entries, error) { return api.ParseEntries(data) }
func ParseAlign(name string) (Align, error)     { return api.ParseAlign(name) }

var (
	ErrInvalidOptions = api.ErrInvalidOptions
	ErrEmptySecret    = api.ErrEmptySecret
)

var (
	WithPageSize       = api.WithPageSize
	WithMargin         = api.WithMargin
	WithGrid           = api.WithGrid
	WithLabelHeight    = api.WithLabelHeight
	WithFontSize       = api.WithFontSize
	WithRecapQRSize    = api.WithRecapQRSize
	WithLabelAlign     = api.WithLabelAlign
	WithDPI            = api.WithDPI
	WithDebug          = api.WithDebug
	WithDebugDrawBoxes = api.WithDebugDrawBoxes
	WithLogger         = api.WithLogger
	WithResourcePath   = api.WithResourcePath
	WithTitle          = api.WithTitle
	WithAuthor         = api.WithAuthor
	WithSubject        = api.WithSubject
	WithKeywords       = api.WithKeywords
	WithPageSizeA4     = api.WithPageSizeA4
	WithPageSizeLetter = api.WithPageSizeLetter
	WithPageSizeLegal  = api.WithPageSizeLegal
)

const (
	AlignLeft   = api.AlignLeft
	AlignCenter = api.AlignCenter
	AlignRight  = api.AlignRight

	PageSizeA3Width  = api.PageSizeA3Width
	PageSizeA3Height = api.PageSizeA3Height
	PageSizeA4Width  = api.PageSizeA4Width
	PageSizeA4Height = api.PageSizeA4Height
	PageSizeA5Width  = api.PageSizeA5Width
	PageSizeA5Height = api.PageSizeA5Height

	PageSizeLetterWidth  = api.PageSizeLetterWidth
	PageSizeLetterHeight = api.PageSizeLetterHeight
	PageSizeLegalWidth   = api.PageSizeLegalWidth
	PageSizeLegalHeight  = api.PageSizeLegalHeight
)

package api

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/passqr/passqr/internal/layout"
	"github.com/passqr/passqr/internal/pagination"
	"github.com/passqr/passqr/internal/parser/kv"
	"github.com/passqr/passqr/internal/qr"
	"github.com/passqr/passqr/internal/render/pdf"
	"github.com/passqr/passqr/internal/res"
	"github.com/passqr/passqr/internal/text"
)

// Entry is one label/secret pair
type Entry = kv.Entry

// Entries is an ordered list of entries
type Entries = kv.List

// Page is the description of one output page
type Page = pagination.Page

// ErrEmptySecret is returned for an entry whose secret is empty; QR codes
// need at least one character.
var ErrEmptySecret = qr.ErrEmptyPayload

// ParseEntries reads ordered key/value text. Only top-level string values
// are accepted; their order is kept.
func ParseEntries(data []byte) (Entries, error) {
	return kv.NewParser().ParseBytes(data)
}

// Converter is the main API for turning entries into a PDF of QR codes
type Converter struct {
	options Options
	loader  *res.Loader
}

// New creates a new converter with default options
func New() *Converter {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new converter with the specified options
func NewWithOptions(options Options) *Converter {
	loader := res.NewLoader()
	for _, path := range options.ResourcePaths {
		loader.AddSearchPath(path)
	}
	return &Converter{
		options: options,
		loader:  loader,
	}
}

// Options returns a copy of the converter's options
func (c *Converter) Options() Options {
	return c.options
}

func (c *Converter) logger() *slog.Logger {
	if c.options.Logger != nil {
		return c.options.Logger
	}
	if c.options.Debug {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.Default()
}

// LoadEntries reads and parses the named input: a file path, "-" for
// standard input, or a data URL
func (c *Converter) LoadEntries(name string) (Entries, error) {
	resource, err := c.loader.Load(name)
	if err != nil {
		return nil, err
	}
	entries, err := kv.NewParser().Parse(resource.GetReader())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", resource.Name, err)
	}
	return entries, nil
}

// Paginate lays out entries without rendering them: a grid page and a
// recap page for every Columns×Rows entries.
func (c *Converter) Paginate(entries Entries) ([]*Page, error) {
	if err := c.options.Validate(); err != nil {
		return nil, err
	}
	font, err := text.DefaultFont(c.options.FontSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded font: %w", err)
	}
	defer font.Close()
	return c.paginate(entries, font)
}

func (c *Converter) paginate(entries Entries, font *text.Font) ([]*Page, error) {
	shaper := text.NewTextShaper(font)
	shaper.Align = c.options.LabelAlign
	engine := pagination.NewEngine(qr.NewEncoder(), shaper)
	engine.SetOptions(pagination.Options{
		Layout: layout.Options{
			PageWidth:   c.options.PageWidth,
			PageHeight:  c.options.PageHeight,
			Margin:      c.options.Margin,
			Columns:     c.options.Columns,
			Rows:        c.options.Rows,
			LabelHeight: c.options.LabelHeight,
			FontSize:    c.options.FontSize,
			FontAscent:  font.Ascent(),
			FontDescent: font.Descent(),
			LineHeight:  font.Size * font.LineHeight,
		},
		RecapQRSize: c.options.RecapQRSize,
		DPI:         c.options.DPI,
	})
	engine.Logger = c.logger()

	pages, err := engine.Paginate(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out pages: %w", err)
	}
	return pages, nil
}

// Convert renders entries to PDF and writes the result to the specified writer
func (c *Converter) Convert(entries Entries, output io.Writer) error {
	if err := c.options.Validate(); err != nil {
		return err
	}
	font, err := text.DefaultFont(c.options.FontSize)
	if err != nil {
		return fmt.Errorf("failed to load embedded font: %w", err)
	}
	defer font.Close()

	pages, err := c.paginate(entries, font)
	if err != nil {
		return err
	}

	renderer := pdf.NewRenderer(font)
	renderer.DebugDrawBoxes = c.options.DebugDrawBoxes
	renderer.Logger = c.logger()
	renderOptions := pdf.RenderOptions{
		Title:    c.options.Title,
		Author:   c.options.Author,
		Subject:  c.options.Subject,
		Keywords: c.options.Keywords,
		Creator:  "passqr",
		Producer: "passqr",
	}

	if err := renderer.Render(pages, output, renderOptions); err != nil {
		return fmt.Errorf("failed to render PDF: %w", err)
	}
	return nil
}

// ConvertToFile renders entries to the specified file. The document is
// written to a temporary file next to outputPath and moved into place only
// when complete, so a failed run leaves no output behind. The file is
// readable by its owner only.
func (c *Converter) ConvertToFile(entries Entries, outputPath string) error {
	tempFile, err := os.CreateTemp(filepath.Dir(outputPath), ".passqr-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if err := c.Convert(entries, tempFile); err != nil {
		tempFile.Close()
		return err
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", tempFile.Name(), err)
	}
	if err := os.Rename(tempFile.Name(), outputPath); err != nil {
		return fmt.Errorf("failed to move PDF into place: %w", err)
	}

	c.logger().Info("document written", "path", outputPath, "entries", len(entries))
	return nil
}

// ConvertFile converts a key/value file to PDF and writes the result to the specified file
func (c *Converter) ConvertFile(inputPath, outputPath string) error {
	entries, err := c.LoadEntries(inputPath)
	if err != nil {
		return err
	}
	return c.ConvertToFile(entries, outputPath)
}

// ConvertBytes converts key/value text to PDF bytes
func (c *Converter) ConvertBytes(input []byte) ([]byte, error) {
	entries, err := ParseEntries(input)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := c.Convert(entries, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WithOptions returns a new converter with the specified options
func (c *Converter) WithOptions(options Options) *Converter {
	return NewWithOptions(options)
}

// WithOption returns a new converter with the specified option set
func (c *Converter) WithOption(option Option) *Converter {
	newOptions := c.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

// AddResourcePath adds a path to search for input files
func (c *Converter) AddResourcePath(path string) *Converter {
	newOptions := c.options
	newOptions.ResourcePaths = append(slices.Clone(c.options.ResourcePaths), path)
	return NewWithOptions(newOptions)
}

// SetPageSize sets the page size
func (c *Converter) SetPageSize(width, height float64) *Converter {
	newOptions := c.options
	newOptions.PageWidth = width
	newOptions.PageHeight = height
	return NewWithOptions(newOptions)
}

// SetMargin sets the page margin
func (c *Converter) SetMargin(margin float64) *Converter {
	newOptions := c.options
	newOptions.Margin = margin
	return NewWithOptions(newOptions)
}

// SetGrid sets the grid shape
func (c *Converter) SetGrid(columns, rows int) *Converter {
	newOptions := c.options
	newOptions.Columns = columns
	newOptions.Rows = rows
	return NewWithOptions(newOptions)
}

// SetDPI sets the DPI
func (c *Converter) SetDPI(dpi float64) *Converter {
	newOptions := c.options
	newOptions.DPI = dpi
	return NewWithOptions(newOptions)
}

// SetDebug sets the debug mode
func (c *Converter) SetDebug(debug bool) *Converter {
	newOptions := c.options
	newOptions.Debug = debug
	return NewWithOptions(newOptions)
}

// SetDebugDrawBoxes toggles layout overlays
func (c *Converter) SetDebugDrawBoxes(draw bool) *Converter {
	newOptions := c.options
	newOptions.DebugDrawBoxes = draw
	return NewWithOptions(newOptions)
}

// SetLogger sets the logger
func (c *Converter) SetLogger(logger *slog.Logger) *Converter {
	newOptions := c.options
	newOptions.Logger = logger
	return NewWithOptions(newOptions)
}

// SetTitle sets the document title
func (c *Converter) SetTitle(title string) *Converter {
	newOptions := c.options
	newOptions.Title = title
	return NewWithOptions(newOptions)
}

// SetAuthor sets the document author
func (c *Converter) SetAuthor(author string) *Converter {
	newOptions := c.options
	newOptions.Author = author
	return NewWithOptions(newOptions)
}

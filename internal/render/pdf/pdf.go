package pdf

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"codeberg.org/go-pdf/fpdf"
	"github.com/passqr/passqr/internal/layout"
	"github.com/passqr/passqr/internal/pagination"
	"github.com/passqr/passqr/internal/text"
)

// Renderer handles rendering to PDF
type Renderer struct {
	// Font is embedded into the document and used for every label.
	Font *text.Font
	// DebugDrawBoxes outlines the layout bands of every page
	DebugDrawBoxes bool
	// Logger receives progress records; nil means slog.Default().
	Logger *slog.Logger
}

// RenderOptions contains options for rendering
type RenderOptions struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
	// CreationDate is stamped into the document; the zero value means now.
	CreationDate time.Time
}

// NewRenderer creates a new PDF renderer
func NewRenderer(font *text.Font) *Renderer {
	return &Renderer{
		Font: font,
	}
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Render draws pages in order and writes the finished document to w.
// Page coordinates have their origin at the bottom-left corner; they are
// flipped here into the top-left system used by fpdf.
func (r *Renderer) Render(pages []*pagination.Page, w io.Writer, options RenderOptions) error {
	size := fpdf.SizeType{Wd: 595.28, Ht: 841.89}
	if len(pages) > 0 {
		size = fpdf.SizeType{Wd: pages[0].Width, Ht: pages[0].Height}
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(options.Title, true)
	pdf.SetAuthor(options.Author, true)
	pdf.SetSubject(options.Subject, true)
	pdf.SetKeywords(options.Keywords, true)
	pdf.SetCreator(options.Creator, true)
	pdf.SetProducer(options.Producer, true)
	if !options.CreationDate.IsZero() {
		pdf.SetCreationDate(options.CreationDate)
	}
	r.registerFonts(pdf)

	r.logger().Debug("rendering pages", "count", len(pages))
	for n, page := range pages {
		pdf.AddPageFormat("P", fpdf.SizeType{Wd: page.Width, Ht: page.Height})

		for k, box := range page.Boxes {
			switch b := box.(type) {
			case *layout.ImageBox:
				r.renderImage(pdf, page, b, fmt.Sprintf("qr-%d-%d", n, k))
			case *layout.TextBox:
				r.renderText(pdf, page, b)
			default:
				return fmt.Errorf("page %d: unknown box type %T", n+1, box)
			}
		}

		if r.DebugDrawBoxes {
			r.renderBands(pdf, page)
		}

		if err := pdf.Error(); err != nil {
			return fmt.Errorf("failed to render %s page %d: %w", page.Kind, n+1, err)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// registerFonts embeds the label font
func (r *Renderer) registerFonts(pdf *fpdf.Fpdf) {
	pdf.AddUTF8FontFromBytes(r.Font.Family, "", r.Font.TTF)
	pdf.SetFont(r.Font.Family, "", r.Font.Size)
	pdf.SetTextColor(0, 0, 0)
}

// renderImage places a PNG image by its bottom-left corner
func (r *Renderer) renderImage(pdf *fpdf.Fpdf, page *pagination.Page, box *layout.ImageBox, name string) {
	opts := fpdf.ImageOptions{
		ImageType:             "PNG",
		AllowNegativePosition: true,
	}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(box.PNG))
	pdf.ImageOptions(name, box.X, top(page, box), box.Width, box.Height, false, opts, 0, "")
}

// top converts a box's bottom edge into fpdf's top-left coordinates
func top(page *pagination.Page, box layout.Box) float64 {
	return page.Height - box.GetY() - box.GetHeight()
}

// renderText draws every shaped line at its baseline
func (r *Renderer) renderText(pdf *fpdf.Fpdf, page *pagination.Page, box *layout.TextBox) {
	if box.Shaped == nil {
		return
	}
	for _, line := range box.Shaped.Lines {
		if line.Text == "" {
			continue
		}
		pdf.Text(box.X+line.X, page.Height-(box.Y+line.Y), line.Text)
	}
}

// renderBands outlines the layout regions of a page
func (r *Renderer) renderBands(pdf *fpdf.Fpdf, page *pagination.Page) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.5)
	for _, band := range page.Bands {
		b := band.Bounds()
		pdf.Rect(b.LLx, page.Height-b.URy, b.Dx(), b.Dy(), "D")
	}
}

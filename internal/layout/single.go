package layout

// Single centres one large QR code on the workable area of a page.
type Single struct {
	area   Rect
	qrSize float64
}

// NewSingle prepares a single-code layout. The QR target size is qrSize,
// reduced to fit the workable area if needed.
func NewSingle(options Options, qrSize float64) *Single {
	area := options.Workable()
	return &Single{
		area:   area,
		qrSize: min(qrSize, area.Size.X, area.Size.Y),
	}
}

// Area returns the workable area of the page
func (s *Single) Area() Rect { return s.area }

// QRSize returns the side of the square QR target.
func (s *Single) QRSize() float64 { return s.qrSize }

// QRPlacement returns where a QR image of the given actual size goes so
// that it is centred on the page's workable area.
func (s *Single) QRPlacement(actual Point) Point {
	return Center(s.area, actual)
}

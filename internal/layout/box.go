package layout

// Box is a positioned draw item on a page. Coordinates use the page's
// bottom-left origin.
type Box interface {
	GetX() float64
	GetY() float64
	GetWidth() float64
	GetHeight() float64
}

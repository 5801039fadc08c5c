package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrEmptyPayload is returned for an empty payload, which cannot be
// represented as a QR symbol.
var ErrEmptyPayload = errors.New("empty QR payload")

// Image is an encoded QR symbol. Width and Height are the actual pixel
// dimensions of PNG, which are a whole multiple of Modules and usually
// smaller than the size that was asked for.
type Image struct {
	PNG     []byte
	Width   int
	Height  int
	Modules int
}

// Encoder renders payloads as square PNG QR codes, quiet zone included.
type Encoder struct {
	// Level is the error correction level. The zero value of
	// qrcode.RecoveryLevel is qrcode.Low, the most compact level.
	Level qrcode.RecoveryLevel
}

// NewEncoder creates an encoder using the lowest error correction level
func NewEncoder() *Encoder {
	return &Encoder{Level: qrcode.Low}
}

// Encode renders payload into an image no larger than size pixels per side.
// Every module is drawn with the same whole number of pixels, so the result
// snaps down to a multiple of the module count. When size is below the
// module count the symbol is drawn with one pixel per module and exceeds
// size.
func (e *Encoder) Encode(payload string, size int) (*Image, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	code, err := qrcode.New(payload, e.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}

	modules := len(code.Bitmap())
	pixelsPerModule := 1
	if modules > 0 && size/modules > 1 {
		pixelsPerModule = size / modules
	}

	// A negative size asks the encoder for a fixed pixel count per module.
	data, err := code.PNG(-pixelsPerModule)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read QR image size: %w", err)
	}

	return &Image{
		PNG:     data,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Modules: modules,
	}, nil
}

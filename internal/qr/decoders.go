package qr

// The encoder hands back PNG bytes; image.DecodeConfig needs the PNG
// decoder registered to read the actual dimensions.
import (
	_ "image/png"
)

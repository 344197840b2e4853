// Package qrcode renderiza el payload SPC como imagen PNG con boombuler/barcode.
package qrcode

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"

	"github.com/jhoicas/qrbill-api/internal/domain/qrbill"
)

var _ qrbill.QrImageRenderer = (*PNGRenderer)(nil)

// DefaultSize lado de la imagen en píxeles (46 mm a 300 ppp aprox.).
const DefaultSize = 543

var (
	ErrEmptyText       = errors.New("qrcode: texto vacío")
	ErrVersionTooLarge = errors.New("qrcode: el payload excede la versión máxima")
	ErrUnknownECCLevel = errors.New("qrcode: nivel de corrección desconocido")
	ErrImageTooSmall   = errors.New("qrcode: tamaño de imagen menor que el símbolo")
)

// PNGRenderer implementa qrbill.QrImageRenderer.
type PNGRenderer struct {
	size int
}

// NewPNGRenderer construye el renderizador. size <= 0 usa DefaultSize.
func NewPNGRenderer(size int) *PNGRenderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &PNGRenderer{size: size}
}

// Render codifica text en modo byte (UTF-8) y devuelve el PNG.
// El borde se expresa en módulos y se añade alrededor del símbolo.
func (r *PNGRenderer) Render(text string, opts qrbill.QrOptions) ([]byte, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	level, err := eccLevel(opts.ErrorCorrectionLevel)
	if err != nil {
		return nil, err
	}

	code, err := qr.Encode(text, level, qr.Unicode)
	if err != nil {
		return nil, fmt.Errorf("qrcode: codificar: %w", err)
	}

	modules := code.Bounds().Dx()
	if v := Version(modules); opts.BinaryCodingVersion > 0 && v > opts.BinaryCodingVersion {
		return nil, fmt.Errorf("%w: versión %d > %d", ErrVersionTooLarge, v, opts.BinaryCodingVersion)
	}

	total := modules + 2*opts.Border
	moduleSize := r.size / total
	if moduleSize == 0 {
		return nil, fmt.Errorf("%w: %d px para %d módulos", ErrImageTooSmall, r.size, total)
	}
	scaled, err := barcode.Scale(code, modules*moduleSize, modules*moduleSize)
	if err != nil {
		return nil, fmt.Errorf("qrcode: escalar: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, withBorder(scaled, opts.Border*moduleSize)); err != nil {
		return nil, fmt.Errorf("qrcode: codificar png: %w", err)
	}
	return buf.Bytes(), nil
}

// Version deduce la versión QR a partir del número de módulos por lado.
func Version(modules int) int { return (modules - 17) / 4 }

func eccLevel(s string) (qr.ErrorCorrectionLevel, error) {
	switch s {
	case "L":
		return qr.L, nil
	case "", "M":
		return qr.M, nil
	case "Q":
		return qr.Q, nil
	case "H":
		return qr.H, nil
	}
	return qr.M, fmt.Errorf("%w: %q", ErrUnknownECCLevel, s)
}

func withBorder(img image.Image, px int) image.Image {
	if px <= 0 {
		return img
	}
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx()+2*px, b.Dy()+2*px))
	draw.Draw(out, out.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(px, px, px+b.Dx(), px+b.Dy()), img, b.Min, draw.Src)
	return out
}

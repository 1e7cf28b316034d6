package roundicon

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	"roundicon/imop"
	"roundicon/utils"
)

// The preset corner radius ratios tuned for the platform icon conventions.
// iOS applies its own mask on top of the icon, so the rounding stays subtle,
// while Android allows for a more pronounced icon shape.
const (
	DefaultRatio = 0.2
	IOSRatio     = 0.15
	AndroidRatio = 0.22
)

// Processor options
type Processor struct {
	Ratio   float64
	NewSize int
	Spinner *utils.Spinner
}

// Round applies the rounded corner pipeline over the source image:
// it derives the corner radius from the ratio, builds the alpha mask,
// replaces the image alpha channel with the mask intensities and pastes
// the result onto a fresh transparent canvas of identical size.
// The output preserves the source dimensions unless NewSize requests
// the icon to be resampled.
func (p *Processor) Round(img *image.NRGBA) (*image.NRGBA, error) {
	if p.Ratio < 0 || p.Ratio > 0.5 {
		return nil, fmt.Errorf("the radius ratio %.2f is outside of the [0.0, 0.5] interval", p.Ratio)
	}

	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()
	mask := RoundedMask(dx, dy, p.Radius(dx, dy))
	masked := imop.ApplyMask(img, mask)

	// Pasting the masked image over a transparent canvas with the
	// source-over operator uses the image's own alpha as the paste mask,
	// which guards any pre-existing transparency from being applied twice.
	canvas := imop.NewBitmap(img.Bounds())
	op := imop.InitOp()
	op.Set(imop.SrcOver)
	op.DrawBitmap(canvas, masked, canvas.Img)

	res := canvas.Img
	if p.NewSize > 0 {
		res = imaging.Resize(res, p.NewSize, p.NewSize, imaging.Lanczos)
	}
	return res, nil
}

// Process is the main entry point of the rounding operation: it decodes
// the source image, rounds its corners and encodes the new image as PNG
// into the destination writer.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	src, _, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("unable to decode the source image: %w", err)
	}

	img, err := p.Round(imgToNRGBA(src))
	if err != nil {
		return err
	}
	return encodeImg(w, img)
}

package imop

import "image"

// ApplyMask replaces the alpha channel of the source image with the
// intensity values of the grayscale mask, which must share the source
// bounds. The color channels are left untouched, so a pixel outside the
// mask shape keeps its color but becomes fully transparent. Any alpha
// already present in the source is overwritten, not intersected.
func ApplyMask(src *image.NRGBA, mask *image.Gray) *image.NRGBA {
	bounds := src.Bounds()
	dx, dy := bounds.Dx(), bounds.Dy()

	dst := image.NewNRGBA(bounds)
	copy(dst.Pix, src.Pix)

	for y := 0; y < dy; y++ {
		for x := 0; x < dx; x++ {
			dst.Pix[dst.PixOffset(x, y)+3] = mask.GrayAt(x, y).Y
		}
	}
	return dst
}

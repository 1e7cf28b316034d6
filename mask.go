package roundicon

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"roundicon/utils"
)

// Radius returns the corner radius in pixels, derived as the fraction of
// the shorter image dimension given by the radius ratio.
func (p *Processor) Radius(width, height int) int {
	return int(math.Floor(float64(utils.Min(width, height)) * p.Ratio))
}

// RoundedMask produces a single channel mask image spanning the full
// canvas: 255 inside the rounded rectangle, 0 outside, with the rasterizer
// antialiasing the arc boundaries in between. A zero radius degrades to a
// plain rectangle, which yields a fully opaque mask.
func RoundedMask(width, height, radius int) *image.Gray {
	radius = utils.Clamp(radius, 0, utils.Min(width, height)/2)

	dc := gg.NewContext(width, height)
	if radius > 0 {
		dc.DrawRoundedRectangle(0, 0, float64(width), float64(height), float64(radius))
	} else {
		dc.DrawRectangle(0, 0, float64(width), float64(height))
	}
	dc.SetRGB(1, 1, 1)
	dc.Fill()

	// The context canvas starts out fully transparent, so after the fill
	// the alpha channel holds exactly the mask coverage.
	src := dc.Image().(*image.RGBA)
	mask := image.NewGray(src.Bounds())
	for i := 0; i < len(mask.Pix); i++ {
		mask.Pix[i] = src.Pix[i*4+3]
	}
	return mask
}

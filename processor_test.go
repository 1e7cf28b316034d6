package roundicon

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeTestIcon(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

func TestRound_ShouldPreserveDimensions(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Ratio: 0.25}
	img := makeTestIcon(imgWidth, imgHeight, color.NRGBA{177, 33, 56, 255})

	res, err := p.Round(img)
	assert.NoError(err)
	assert.Equal(imgWidth, res.Bounds().Dx())
	assert.Equal(imgHeight, res.Bounds().Dy())
}

func TestRound_CornersShouldBecomeTransparent(t *testing.T) {
	p := &Processor{Ratio: 0.25}
	img := makeTestIcon(imgWidth, imgHeight, color.NRGBA{177, 33, 56, 255})

	res, err := p.Round(img)
	if err != nil {
		t.Fatalf("could not round the test icon: %v", err)
	}

	corners := [][2]int{
		{0, 0},
		{imgWidth - 1, 0},
		{0, imgHeight - 1},
		{imgWidth - 1, imgHeight - 1},
	}
	for _, c := range corners {
		if a := res.NRGBAAt(c[0], c[1]).A; a != 0 {
			t.Errorf("Corner pixel (%d,%d) expected to be transparent. Got alpha %v", c[0], c[1], a)
		}
	}
}

func TestRound_InteriorShouldRetainColors(t *testing.T) {
	assert := assert.New(t)

	col := color.NRGBA{177, 33, 56, 255}
	p := &Processor{Ratio: 0.25}

	res, err := p.Round(makeTestIcon(imgWidth, imgHeight, col))
	assert.NoError(err)

	got := res.NRGBAAt(imgWidth/2, imgHeight/2)
	assert.EqualValues(255, got.A)
	assert.InDelta(col.R, got.R, 1)
	assert.InDelta(col.G, got.G, 1)
	assert.InDelta(col.B, got.B, 1)
}

func TestRound_ZeroRatioShouldNormalizeAlpha(t *testing.T) {
	// With a zero radius the mask is a plain opaque rectangle, so any
	// pre-existing transparency gets overwritten with full opacity.
	p := &Processor{Ratio: 0.0}
	img := makeTestIcon(imgWidth, imgHeight, color.NRGBA{177, 33, 56, 128})

	res, err := p.Round(img)
	if err != nil {
		t.Fatalf("could not round the test icon: %v", err)
	}

	for x := 0; x < imgWidth; x++ {
		for y := 0; y < imgHeight; y++ {
			if a := res.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("Pixel (%d,%d) expected to be fully opaque. Got alpha %v", x, y, a)
			}
		}
	}
}

func TestRound_ShouldRejectInvalidRatio(t *testing.T) {
	assert := assert.New(t)

	for _, ratio := range []float64{-0.1, 0.51, 1.0} {
		p := &Processor{Ratio: ratio}
		_, err := p.Round(makeTestIcon(imgWidth, imgHeight, color.NRGBA{A: 255}))
		assert.Error(err)
	}
}

func TestRound_ShouldResampleToRequestedSize(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Ratio: 0.2, NewSize: 32}
	res, err := p.Round(makeTestIcon(imgWidth, imgHeight, color.NRGBA{177, 33, 56, 255}))

	assert.NoError(err)
	assert.Equal(32, res.Bounds().Dx())
	assert.Equal(32, res.Bounds().Dy())
}

func TestProcess_ShouldEncodeRoundedPNG(t *testing.T) {
	assert := assert.New(t)

	var in, out bytes.Buffer
	err := png.Encode(&in, makeTestIcon(imgWidth, imgHeight, color.NRGBA{177, 33, 56, 255}))
	assert.NoError(err)

	p := &Processor{Ratio: 0.25}
	assert.NoError(p.Process(&in, &out))

	res, format, err := image.Decode(&out)
	assert.NoError(err)
	assert.Equal("png", format)
	assert.Equal(imgWidth, res.Bounds().Dx())
	assert.Equal(imgHeight, res.Bounds().Dy())

	_, _, _, a := res.At(0, 0).RGBA()
	assert.EqualValues(0, a)
}

func TestProcess_ShouldFailOnInvalidInput(t *testing.T) {
	assert := assert.New(t)

	p := &Processor{Ratio: 0.2}
	err := p.Process(bytes.NewBufferString("not an image"), &bytes.Buffer{})
	assert.Error(err)
}

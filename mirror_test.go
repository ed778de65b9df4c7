package mirrorsvg

import (
	"image"
	"image/color"
	"image/color/palette"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	colA = color.NRGBA{R: 0xff, A: 0xff}
	colB = color.NRGBA{G: 0xff, A: 0xff}
	colC = color.NRGBA{B: 0xff, A: 0x80}
	colD = color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x00}
)

func newRaster(img image.Image) *RasterImage {
	return &RasterImage{
		Width:  img.Bounds().Dx(),
		Height: img.Bounds().Dy(),
		Pix:    img,
		Format: "png",
	}
}

func makeRow(colors ...color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, len(colors), 1))
	for x, c := range colors {
		img.SetNRGBA(x, 0, c)
	}
	return img
}

// fillPattern paints every pixel with a value derived from its position,
// so that no two columns of a row are equal.
func fillPattern(img interface {
	image.Image
	Set(x, y int, c color.Color)
}) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, color.NRGBA64{
				R: uint16(x * 4099),
				G: uint16(y * 7919),
				B: uint16((x + y) * 1021),
				A: uint16(0xffff - x*257),
			})
		}
	}
}

func TestMirror_ShouldReverseColumns(t *testing.T) {
	src := newRaster(makeRow(colA, colB, colC, colD))

	res := Mirror(src)
	dst, ok := res.Pix.(*image.NRGBA)
	require.True(t, ok, "expected *image.NRGBA, got %T", res.Pix)

	want := []color.NRGBA{colD, colC, colB, colA}
	for x, c := range want {
		assert.Equal(t, c, dst.NRGBAAt(x, 0), "pixel at column %d", x)
	}
}

func TestMirror_ShouldKeepDimensions(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 1, 1),
		image.Rect(0, 0, 7, 3),
		image.Rect(0, 0, 3, 7),
		image.Rect(0, 0, 64, 1),
	} {
		img := image.NewNRGBA(r)
		fillPattern(img)

		res := Mirror(newRaster(img))
		assert.Equal(t, r.Dx(), res.Width)
		assert.Equal(t, r.Dy(), res.Height)
		assert.Equal(t, r, res.Pix.Bounds())
	}
}

func TestMirror_TwiceShouldRestoreOriginal(t *testing.T) {
	rect := image.Rect(0, 0, 9, 5)

	paletted := image.NewPaletted(rect, palette.Plan9)
	for i := range paletted.Pix {
		paletted.Pix[i] = uint8(i % len(palette.Plan9))
	}

	testCases := []struct {
		name string
		img  image.Image
	}{
		{name: "NRGBA", img: image.NewNRGBA(rect)},
		{name: "RGBA", img: image.NewRGBA(rect)},
		{name: "NRGBA64", img: image.NewNRGBA64(rect)},
		{name: "RGBA64", img: image.NewRGBA64(rect)},
		{name: "Gray", img: image.NewGray(rect)},
		{name: "Gray16", img: image.NewGray16(rect)},
		{name: "Alpha", img: image.NewAlpha(rect)},
		{name: "Alpha16", img: image.NewAlpha16(rect)},
		{name: "CMYK", img: image.NewCMYK(rect)},
		{name: "Paletted", img: paletted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if img, ok := tc.img.(interface {
				image.Image
				Set(x, y int, c color.Color)
			}); ok && tc.name != "Paletted" {
				fillPattern(img)
			}

			once := Mirror(newRaster(tc.img))
			assert.IsType(t, tc.img, once.Pix, "pixel layout should be kept")

			twice := Mirror(once)
			assert.Equal(t, tc.img, twice.Pix)
		})
	}
}

func TestMirror_ShouldKeepPalette(t *testing.T) {
	pal := color.Palette{color.Black, color.White, colA}
	img := image.NewPaletted(image.Rect(0, 0, 3, 1), pal)
	img.Pix = []uint8{0, 1, 2}

	res := Mirror(newRaster(img)).Pix.(*image.Paletted)
	assert.Equal(t, []uint8{2, 1, 0}, res.Pix)
	assert.Equal(t, pal, res.Palette)
}

func TestMirror_ShouldFlipYCbCr(t *testing.T) {
	rgba := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	fillPattern(rgba)

	ycc := image.NewYCbCr(rgba.Bounds(), image.YCbCrSubsampleRatio444)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			c := rgba.NRGBAAt(x, y)
			ycc.Y[ycc.YOffset(x, y)], ycc.Cb[ycc.COffset(x, y)], ycc.Cr[ycc.COffset(x, y)] =
				color.RGBToYCbCr(c.R, c.G, c.B)
		}
	}

	once := Mirror(newRaster(ycc))
	flipped, ok := once.Pix.(*image.NRGBA)
	require.True(t, ok, "expected *image.NRGBA, got %T", once.Pix)

	orig := imaging.Clone(ycc)
	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			assert.Equal(t, orig.NRGBAAt(5-x, y), flipped.NRGBAAt(x, y))
		}
	}

	twice := Mirror(once)
	assert.Equal(t, orig.Pix, twice.Pix.(*image.NRGBA).Pix)
}

func TestMirror_ShouldHandleSubImages(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 6, 3))
	fillPattern(img)
	sub := img.SubImage(image.Rect(1, 1, 5, 3)).(*image.NRGBA)

	res := Mirror(newRaster(sub)).Pix.(*image.NRGBA)
	require.Equal(t, image.Rect(0, 0, 4, 2), res.Bounds())

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, sub.NRGBAAt(4-x, 1+y), res.NRGBAAt(x, y))
		}
	}
}

func TestMirror_ShouldNotAliasSource(t *testing.T) {
	src := makeRow(colA, colB)
	orig := append([]uint8(nil), src.Pix...)

	res := Mirror(newRaster(src)).Pix.(*image.NRGBA)
	for i := range res.Pix {
		res.Pix[i] = 0x42
	}
	assert.Equal(t, orig, src.Pix)
}

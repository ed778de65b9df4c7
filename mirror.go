package mirrorsvg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Mirror returns a horizontally flipped copy of img: column x of the result
// holds column width-1-x of the source, for every row.
//
// The concrete pixel layouts produced by the standard decoders are flipped
// byte for byte into a new buffer of the same type, so bit depth, alpha and
// palette survive. Any other layout (e.g. chroma subsampled YCbCr) goes
// through imaging and comes back as 8-bit NRGBA.
func Mirror(img *RasterImage) *RasterImage {
	return &RasterImage{
		Width:  img.Width,
		Height: img.Height,
		Pix:    flipH(img.Pix),
		Format: img.Format,
	}
}

func flipH(src image.Image) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	r := image.Rect(0, 0, w, h)

	switch src := src.(type) {
	case *image.NRGBA:
		dst := image.NewNRGBA(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 4)
		return dst
	case *image.RGBA:
		dst := image.NewRGBA(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 4)
		return dst
	case *image.NRGBA64:
		dst := image.NewNRGBA64(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 8)
		return dst
	case *image.RGBA64:
		dst := image.NewRGBA64(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 8)
		return dst
	case *image.Gray:
		dst := image.NewGray(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 1)
		return dst
	case *image.Gray16:
		dst := image.NewGray16(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 2)
		return dst
	case *image.Alpha:
		dst := image.NewAlpha(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 1)
		return dst
	case *image.Alpha16:
		dst := image.NewAlpha16(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 2)
		return dst
	case *image.CMYK:
		dst := image.NewCMYK(r)
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 4)
		return dst
	case *image.Paletted:
		dst := image.NewPaletted(r, append(color.Palette(nil), src.Palette...))
		flipPix(dst.Pix, src.Pix[src.PixOffset(b.Min.X, b.Min.Y):], dst.Stride, src.Stride, w, h, 1)
		return dst
	default:
		return imaging.FlipH(src)
	}
}

// flipPix copies h rows of w pixels, each bpp bytes wide, from src to dst in
// reversed column order. Both buffers start at the top-left pixel.
func flipPix(dst, src []uint8, dstStride, srcStride, w, h, bpp int) {
	for y := 0; y < h; y++ {
		si := y * srcStride
		di := y * dstStride
		for x := 0; x < w; x++ {
			s := si + (w-1-x)*bpp
			d := di + x*bpp
			copy(dst[d:d+bpp], src[s:s+bpp])
		}
	}
}

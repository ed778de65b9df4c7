package mirrorsvg

import (
	"image"
	"image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/esimov/mirrorsvg/utils"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// RasterImage is a decoded raster image together with the name of the format it was decoded from.
// The mirrored copy of an image uses the same type.
type RasterImage struct {
	Width  int
	Height int
	Pix    image.Image
	Format string
}

// Bounds returns the pixel rectangle of the image.
func (r *RasterImage) Bounds() image.Rectangle { return r.Pix.Bounds() }

// Load decodes the image found at path. The image dimensions are kept as they are.
func Load(path string) (*RasterImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newError(DecodeError, path, err, "could not open the source image")
	}
	defer file.Close()

	ctype, err := utils.DetectContentType(file)
	if err != nil {
		return nil, newError(DecodeError, path, err, "could not read the source image")
	}
	if utils.IsNonImageContent(ctype) {
		return nil, newError(DecodeError, path, errors.Errorf("content type %q", ctype), "the source should be an image file")
	}

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, newError(DecodeError, path, err, "could not decode the source image")
	}

	if format == "gif" {
		// The first frame may cover only part of the logical screen.
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return nil, newError(DecodeError, path, err, "could not rewind the source image")
		}
		g, err := gif.DecodeAll(file)
		if err != nil {
			return nil, newError(DecodeError, path, err, "could not decode the source image")
		}
		img = gifCanvas(g)
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, newError(DecodeError, path, errors.New("zero sized image"), "could not decode the source image")
	}

	return &RasterImage{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    img,
		Format: format,
	}, nil
}

// gifCanvas places the first frame of g onto a paletted image of the size of
// the logical screen. Pixels outside the frame take the transparent index of
// the frame palette, or the background index when there is no transparency.
func gifCanvas(g *gif.GIF) *image.Paletted {
	frame := g.Image[0]
	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if frame.Rect == screen {
		return frame
	}

	canvas := image.NewPaletted(screen, frame.Palette)
	fill := uint8(0)
	if g.BackgroundIndex < uint8(len(frame.Palette)) {
		fill = g.BackgroundIndex
	}
	for i, c := range frame.Palette {
		if _, _, _, a := c.RGBA(); a == 0 {
			fill = uint8(i)
			break
		}
	}
	for i := range canvas.Pix {
		canvas.Pix[i] = fill
	}

	r := frame.Rect.Intersect(screen)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := canvas.PixOffset(r.Min.X, y)
		si := frame.PixOffset(r.Min.X, y)
		copy(canvas.Pix[di:di+r.Dx()], frame.Pix[si:si+r.Dx()])
	}
	return canvas
}

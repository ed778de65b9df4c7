package mirrorsvg

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"image/png"
	"io"
	"text/template"

	"github.com/pkg/errors"
)

//go:embed templates/document.svg.tmpl
var documentTemplate string

var svgTemplate = template.Must(template.New("document").Parse(documentTemplate))

// PayloadMediaType is the media type of the raster embedded in every document.
const PayloadMediaType = "image/png"

// VectorDocument is an SVG canvas holding a single embedded PNG image
// of the same dimensions, referenced through a base64 data URI.
type VectorDocument struct {
	Width   int
	Height  int
	Payload string // base64 encoded PNG
}

// EncodePNG serializes the image as PNG, entirely in memory.
func EncodePNG(img *RasterImage) ([]byte, error) {
	return encodePNG(img, png.DefaultCompression)
}

func encodePNG(img *RasterImage, level png.CompressionLevel) ([]byte, error) {
	var buf bytes.Buffer
	enc := &png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, img.Pix); err != nil {
		return nil, newError(EncodeError, "", err, "could not encode the mirrored image as png")
	}
	return buf.Bytes(), nil
}

// NewVectorDocument encodes img as PNG and wraps it into a vector document.
func NewVectorDocument(img *RasterImage) (*VectorDocument, error) {
	return newVectorDocument(img, png.DefaultCompression)
}

func newVectorDocument(img *RasterImage, level png.CompressionLevel) (*VectorDocument, error) {
	data, err := encodePNG(img, level)
	if err != nil {
		return nil, err
	}
	return &VectorDocument{
		Width:   img.Width,
		Height:  img.Height,
		Payload: base64.StdEncoding.EncodeToString(data),
	}, nil
}

// Render writes the SVG markup of the document to w.
func (d *VectorDocument) Render(w io.Writer) error {
	return errors.Wrap(svgTemplate.Execute(w, d), "could not render the svg document")
}

// Bytes returns the rendered SVG markup.
func (d *VectorDocument) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePayload returns the PNG bytes embedded in the document.
func (d *VectorDocument) DecodePayload() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(d.Payload)
	return data, errors.Wrap(err, "invalid base64 payload")
}

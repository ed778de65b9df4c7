package mirrorsvg

import (
	"image/png"
	"time"

	"github.com/rs/zerolog"
)

// Converter holds the options of the conversion pipeline.
// It keeps no state between calls and can be shared freely.
type Converter struct {
	// Logger receives a debug event per pipeline stage. The zero value discards them.
	Logger zerolog.Logger
	// Compression is the zlib level used for the embedded PNG.
	Compression png.CompressionLevel
}

var defaultConverter = &Converter{Logger: zerolog.Nop()}

// Convert mirrors the image found at input and saves it as an SVG document
// next to it. It returns the path of the written document.
func Convert(input string) (string, error) {
	return defaultConverter.Convert(input)
}

// Convert is the main entry point of the pipeline: it decodes the source,
// flips it horizontally, embeds it into an SVG document and writes the
// document to a free output path. Nothing is written unless the document
// could be fully built in memory.
func (c *Converter) Convert(input string) (string, error) {
	now := time.Now()
	log := c.Logger.With().Str("input", input).Logger()

	src, err := Load(input)
	if err != nil {
		return "", err
	}
	log.Debug().
		Str("format", src.Format).
		Int("width", src.Width).
		Int("height", src.Height).
		Msg("image decoded")

	mirrored := Mirror(src)
	log.Debug().Msg("image mirrored")

	doc, err := newVectorDocument(mirrored, c.Compression)
	if err != nil {
		return "", err
	}
	log.Debug().Int("payload_bytes", len(doc.Payload)).Msg("image encoded")

	out, err := WriteDocument(input, doc)
	if err != nil {
		return "", err
	}
	log.Debug().
		Str("output", out).
		Dur("elapsed", time.Since(now)).
		Msg("document written")

	return out, nil
}

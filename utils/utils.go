package utils

import (
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// sniffLen is the number of bytes http.DetectContentType looks at.
const sniffLen = 512

// DetectContentType detects the content type by reading the MIME type information of the file content.
// The read offset of r is rewound to the start before returning.
func DetectContentType(r io.ReadSeeker) (string, error) {
	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", errors.Wrap(err, "could not read the file header")
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", errors.Wrap(err, "could not rewind the file")
	}

	// Always returns a valid content-type and "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer[:n]), nil
}

// IsNonImageContent reports whether the sniffed content type surely does not describe an image.
// Unrecognized binary content ("application/octet-stream") is left for the decoders to judge,
// since the sniffer does not know about every format they support (e.g. TIFF).
func IsNonImageContent(ctype string) bool {
	if strings.HasPrefix(ctype, "image/") {
		return false
	}
	return !strings.HasPrefix(ctype, "application/octet-stream")
}

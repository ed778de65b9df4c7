package mirrorsvg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

const (
	// OutputSuffix is appended to the source file stem to name the generated document.
	OutputSuffix = "_espelhado"
	// OutputExt is the extension of the generated document.
	OutputExt = ".svg"
	// MaxCollisions bounds the number of numbered candidates tried before giving up.
	MaxCollisions = 1_000_000
)

// createExclusive creates path for writing, failing if it already exists.
var createExclusive = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

// candidatePath returns the n-th output candidate for the source path.
// The first candidate (n == 0) carries no number.
func candidatePath(input string, n int) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	if n == 0 {
		return filepath.Join(dir, stem+OutputSuffix+OutputExt)
	}
	return filepath.Join(dir, fmt.Sprintf("%s%s_%d%s", stem, OutputSuffix, n, OutputExt))
}

// OutputPath returns the first candidate output path for input which is not taken yet.
// The result is only a snapshot of the filesystem; WriteDocument makes the final choice.
func OutputPath(input string) (string, error) {
	return outputPath(input, MaxCollisions)
}

func outputPath(input string, limit int) (string, error) {
	dir := filepath.Dir(input)
	fi, err := os.Stat(dir)
	if err != nil {
		return "", newError(WriteError, dir, err, "could not access the output directory")
	}
	if !fi.IsDir() {
		return "", newError(WriteError, dir, errors.New("not a directory"), "could not access the output directory")
	}

	for n := 0; n <= limit; n++ {
		path := candidatePath(input, n)
		_, err := os.Lstat(path)
		if os.IsNotExist(err) {
			return path, nil
		}
		if err != nil {
			return "", newError(WriteError, path, err, "could not check the output path")
		}
	}
	return "", newError(WriteError, input, errors.Errorf("%d candidates taken", limit+1), "no free output path")
}

// WriteDocument renders doc and writes it next to the input file, at the first
// free candidate path. Existing files are never overwritten: every candidate is
// created exclusively and a name taken in the meantime moves on to the next one.
// It returns the path of the written document.
func WriteDocument(input string, doc *VectorDocument) (string, error) {
	return writeDocument(input, doc, MaxCollisions)
}

func writeDocument(input string, doc *VectorDocument, limit int) (string, error) {
	data, err := doc.Bytes()
	if err != nil {
		return "", newError(EncodeError, input, err, "could not build the output document")
	}

	for n := 0; n <= limit; n++ {
		path := candidatePath(input, n)
		f, err := createExclusive(path)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", newError(WriteError, path, err, "unable to create the output file")
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", newError(WriteError, path, err, "unable to write the output file")
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", newError(WriteError, path, err, "unable to close the output file")
		}
		return path, nil
	}
	return "", newError(WriteError, input, errors.Errorf("%d candidates taken", limit+1), "no free output path")
}

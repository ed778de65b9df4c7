package main

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/esimov/mirrorsvg"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

func newPreviewCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "preview <image>",
		Short: "Write a thumbnail of the image as PNG",
		Long: `Write a thumbnail of the image as PNG, scaled down to fit the preview box
configured by preview.width and preview.height (200x200 by default).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return preview(args[0], out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", pipeName, "destination file (\"-\" for stdout)")

	return cmd
}

func preview(in, out string) error {
	if out == pipeName && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("`-` should be used with a pipe for stdout")
	}

	thumb, err := mirrorsvg.Preview(in, cfg.Preview.Width, cfg.Preview.Height)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("input", in).
		Int("width", thumb.Bounds().Dx()).
		Int("height", thumb.Bounds().Dy()).
		Msg("preview generated")

	if out == pipeName {
		return png.Encode(os.Stdout, thumb)
	}
	return savePNG(out, thumb)
}

// savePNG writes img to path. The file is removed if it could not be fully written.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("unable to encode the preview: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("unable to close the destination file: %w", err)
	}
	return nil
}

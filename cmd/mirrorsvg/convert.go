package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/esimov/mirrorsvg"
	"github.com/esimov/mirrorsvg/utils"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newConvertCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "convert <image>",
		Short: "Mirror the image and save it as <name>_espelhado.svg next to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				out, err := mirrorsvg.OutputPath(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			return convert(args[0])
		},
	}
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "only print the path the document would be written to")

	return cmd
}

// convert runs the conversion pipeline over the source image and reports the result.
func convert(in string) error {
	conv := &mirrorsvg.Converter{
		Logger:      logger,
		Compression: cfg.CompressionLevel(),
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ MIRRORSVG", utils.StatusMessage),
		utils.DecorateText("⇢ mirroring image...", utils.DefaultMessage),
	)
	spinner := utils.NewSpinner(spinnerText, 100*time.Millisecond)

	interactive := showSpinner(term.IsTerminal(int(os.Stderr.Fd())), logger.GetLevel())
	if interactive {
		// Capture CTRL-C signal and restore the cursor visibility back.
		release := onInterrupt(func() {
			spinner.Stop()
			os.Exit(1)
		})
		defer release()
		spinner.Start()
	}

	now := time.Now()
	out, err := conv.Convert(in)

	if interactive {
		if err != nil {
			spinner.StopMsg = fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ MIRRORSVG", utils.StatusMessage),
				utils.DecorateText("converting image failed ✘", utils.ErrorMessage),
			)
		} else {
			spinner.StopMsg = fmt.Sprintf("%s %s",
				utils.DecorateText("⚡ MIRRORSVG", utils.StatusMessage),
				utils.DecorateText("the image has been mirrored successfully ✔", utils.SuccessMessage),
			)
		}
		spinner.Stop()
	}

	if err != nil {
		logger.Error().Err(err).Str("kind", mirrorsvg.KindOf(err).String()).Msg("conversion failed")
		return fmt.Errorf("error converting the image (%s)\n\tReason: %v", mirrorsvg.KindOf(err), err)
	}

	fmt.Fprintf(os.Stderr, "\nThe mirrored image has been saved as: %s\n",
		utils.DecorateText(filepath.Base(out), utils.SuccessMessage),
	)
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
	fmt.Fprintln(os.Stdout, out)

	return nil
}

// showSpinner reports whether the progress indicator should be drawn. It needs
// a terminal, and debug logs would be interleaved with it on stderr.
func showSpinner(tty bool, level zerolog.Level) bool {
	return tty && level > zerolog.DebugLevel
}

// onInterrupt calls fn when SIGINT or SIGTERM is received, until the returned
// release function is called. release waits for the watcher goroutine to exit.
func onInterrupt(fn func()) (release func()) {
	signalChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})

	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer close(exited)
		select {
		case <-signalChan:
			fn()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signalChan)
		close(done)
		<-exited
	}
}

package roundicon

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"roundicon/utils"
)

// imgFile holds the temporary file of a downloaded source image.
var imgFile *os.File

// Ops wraps the source and destination locations of a single invocation.
type Ops struct {
	Src, Dst, PipeName string
}

// Execute executes the icon rounding process over the single source image.
// The source can be a regular file, an URL or a stdin pipe; the destination
// defaults to the source name with a "_rounded" suffix when left empty.
// Any failure is reported on stderr and terminates the process with exit
// code 1.
func (p *Processor) Execute(op *Ops) {
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ ROUNDICON", utils.StatusMessage),
		utils.DecorateText("⇢ rounding the icon corners...", utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80, true)

	// Check if the source path is a local image, an URL or a pipe name.
	if utils.IsValidUrl(op.Src) {
		src, err := utils.DownloadImage(op.Src)
		if src != nil {
			defer os.Remove(src.Name())
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		imgFile = src
	} else if op.Src != op.PipeName {
		if _, err := os.Stat(op.Src); err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	if op.Dst == "" {
		op.Dst = OutputPath(op.Src, op.PipeName)
	}

	now := time.Now()

	if err := op.process(p, op.Src, op.Dst); err != nil {
		log.Fatalf(
			utils.DecorateText("Error rounding the image: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	if op.Dst != op.PipeName {
		fmt.Fprintf(os.Stderr, "Saved as: %s\n", utils.DecorateText(op.Dst, utils.SuccessMessage))
	}
	fmt.Fprintf(os.Stderr, "Execution time: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
}

// OutputPath derives the destination path by inserting a "_rounded" suffix
// before the source extension. A pipe source defaults to a pipe destination
// and an URL source resolves to its base file name in the working directory.
func OutputPath(src, pipeName string) string {
	if src == pipeName {
		return pipeName
	}
	if utils.IsValidUrl(src) {
		src = filepath.Base(src)
	}
	ext := filepath.Ext(src)

	return strings.TrimSuffix(src, ext) + "_rounded" + ext
}

// process calls the rounding processor over the source image and returns
// the error in case it exists.
func (op *Ops) process(p *Processor, in, out string) error {
	successMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ ROUNDICON", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the icon corners have been rounded successfully ✔", utils.SuccessMessage),
	)

	errorMsg := fmt.Sprintf("%s %s %s",
		utils.DecorateText("⚡ ROUNDICON", utils.StatusMessage),
		utils.DecorateText("rounding the icon corners failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}

	defer func() {
		if img, ok := src.(*os.File); ok && img != os.Stdin {
			if err := img.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	defer func() {
		if img, ok := dst.(*os.File); ok && img != os.Stdout {
			if err := img.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	// Capture the CTRL-C signal, restore back the cursor visibility and
	// remove the partially written destination file.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		p.Spinner.RestoreCursor()
		if img, ok := dst.(*os.File); ok && img != os.Stdout {
			os.Remove(img.Name())
		}
		os.Exit(1)
	}()

	// Start the progress indicator.
	p.Spinner.Start()

	if err := p.Process(src, dst); err != nil {
		// remove the generated image file in case of an error
		if img, ok := dst.(*os.File); ok && img != os.Stdout {
			os.Remove(img.Name())
		}

		p.Spinner.StopMsg = errorMsg
		p.Spinner.Stop()

		return err
	}
	p.Spinner.StopMsg = successMsg
	p.Spinner.Stop()

	return nil
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source path is a local image or URL.
	if utils.IsValidUrl(in) {
		src = imgFile
	} else {
		// Check if the source is a pipe name or a regular file.
		if in == op.PipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, nil, errors.New("`-` should be used with a pipe for stdin")
			}
			src = os.Stdin
		} else {
			src, err = os.Open(in)
			if err != nil {
				return nil, nil, fmt.Errorf("unable to open the source file: %w", err)
			}
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create the destination file: %w", err)
		}
	}

	return src, dst, nil
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"roundicon"
	"roundicon/utils"
)

const HelpBanner = `
┬─┐┌─┐┬ ┬┌┐┌┌┬┐┬┌─┐┌─┐┌┐┌
├┬┘│ ││ │││││ │││  │ ││││
┴└─└─┘└─┘┘└┘─┴┘┴└─┘└─┘┘└┘

Rounded corner app icon generator.
    Version: %s

Usage: roundicon [flags] <input|url|->

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	output  = flag.String("o", "", "Destination (default: source with a _rounded suffix)")
	radius  = flag.Float64("r", roundicon.DefaultRatio, "Corner radius ratio (0.0-0.5)")
	ios     = flag.Bool("ios", false, "Use the iOS preset ratio (0.15)")
	android = flag.Bool("android", false, "Use the Android preset ratio (0.22)")
	size    = flag.Int("size", 0, "Resample the rounded icon to the given square size")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		log.Fatal(utils.DecorateText("\nPlease provide a single source image to round!", utils.ErrorMessage))
	}

	// The platform presets take precedence over a custom radius ratio,
	// but requesting both presets at once is ambiguous and gets rejected.
	ratio := *radius
	switch {
	case *ios && *android:
		log.Fatal(utils.DecorateText("The -ios and -android presets cannot be combined!", utils.ErrorMessage))
	case *ios:
		ratio = roundicon.IOSRatio
	case *android:
		ratio = roundicon.AndroidRatio
	}

	if ratio < 0 || ratio > 0.5 {
		log.Fatalf(utils.DecorateText("The radius ratio should be between 0.0 and 0.5, got %.2f!", utils.ErrorMessage), ratio)
	}
	if *size < 0 {
		log.Fatalf(utils.DecorateText("The output size should be a positive number, got %d!", utils.ErrorMessage), *size)
	}

	proc := &roundicon.Processor{
		Ratio:   ratio,
		NewSize: *size,
	}

	proc.Execute(&roundicon.Ops{
		Src:      flag.Arg(0),
		Dst:      *output,
		PipeName: pipeName,
	})
}

/*
Package roundicon produces rounded corner versions of square app icons,
with presets tuned for the iOS and Android icon conventions. The source
image is composited against a rounded rectangle alpha mask and encoded
as PNG in order to preserve the transparent corners.

The package provides a command line interface, supporting various flags
for the different rounding options. To check the supported commands type:

	$ roundicon --help

In case you wish to integrate the API in a self constructed environment
here is a simple example:

	package main

	import (
		"fmt"
		"os"

		"roundicon"
	)

	func main() {
		p := &roundicon.Processor{
			Ratio: roundicon.DefaultRatio,
		}

		in, _ := os.Open("icon.png")
		out, _ := os.Create("icon_rounded.png")

		if err := p.Process(in, out); err != nil {
			fmt.Printf("Error rounding image: %s", err.Error())
		}
	}
*/
package roundicon

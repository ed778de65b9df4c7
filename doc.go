/*
Package mirrorsvg flips a raster image horizontally and saves the mirrored copy
as a self-contained SVG document, the image being embedded as a base64 encoded
PNG. The generated documents are meant to be imported into cutting machine
software (ScanCut), which expects mirrored artwork for iron-on transfers.

The output is written next to the source image as <name>_espelhado.svg.
An existing file is never overwritten; a numeric suffix (_1, _2, ...) is
appended until a free name is found.

The package provides a command line interface. To check the supported commands type:

	$ mirrorsvg --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"fmt"

		"github.com/esimov/mirrorsvg"
	)

	func main() {
		out, err := mirrorsvg.Convert("photo.png")
		if err != nil {
			fmt.Printf("Error converting image: %s", err.Error())
			return
		}
		fmt.Println("saved as", out)
	}
*/
package mirrorsvg

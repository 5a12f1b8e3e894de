/*
Package emojiwebp converts the base64 images embedded in an emoji dataset into small WebP images.

Every record whose "emoji" field holds a data URI (data:image/...;base64,...) is decoded, fitted into
a 42x42 transparent canvas and re-encoded as lossy WebP. Records are processed in fixed size batches:
the images of a batch are converted concurrently and the next batch starts only once the previous one
has completed. A backup of the source dataset is written before any conversion takes place.

The package provides a command line interface. To check the supported flags type:

	$ emojiwebp --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"context"
		"fmt"
		"os"

		"github.com/esimov/emojiwebp"
	)

	func main() {
		op := &emojiwebp.Ops{
			// Initialize struct variables
		}

		summary, err := op.Execute(context.Background())
		if err != nil {
			fmt.Printf("Error converting the dataset: %s", err.Error())
			return
		}
		emojiwebp.PrintSummary(os.Stdout, summary)
	}
*/
package emojiwebp

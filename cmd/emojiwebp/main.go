package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/esimov/emojiwebp"
	"github.com/esimov/emojiwebp/utils"
)

const HelpBanner = `
┌─┐┌┬┐┌─┐ ┬┬┬ ┬┌─┐┌┐ ┌─┐
├┤ ││││ │ ││││││├┤ ├┴┐├─┘
└─┘┴ ┴└─┘└┘┴└┴┘└─┘└─┘┴

Converts the embedded emoji images into WebP.
    Version: %s

`

// Version indicates the current build version.
var Version string

var (
	// Flags
	source      = flag.String("in", "", "Source dataset (JSON array); the bundled dataset is used if empty")
	destination = flag.String("out", emojiwebp.DefaultOutputPath, "Converted dataset module")
	backup      = flag.String("backup", emojiwebp.DefaultBackupPath, "Backup of the source dataset module")
	export      = flag.String("export", emojiwebp.DefaultExport, "Name of the exported constant")
	batchSize   = flag.Int("batch", emojiwebp.DefaultBatchSize, "Number of images converted concurrently")
	skipInvalid = flag.Bool("skip-invalid", false, "Keep records with undecodable images unchanged instead of aborting")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	var src emojiwebp.Dataset
	if *source != "" {
		f, err := os.Open(*source)
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to open the source dataset: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		src, err = emojiwebp.ParseDataset(f)
		f.Close()
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source dataset: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	// Capture CTRL-C signal; the progress indicator restores the cursor on cancellation.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	op := &emojiwebp.Ops{
		Source:      src,
		Export:      *export,
		BackupPath:  *backup,
		OutputPath:  *destination,
		BatchSize:   *batchSize,
		SkipInvalid: *skipInvalid,
		Transcoder:  emojiwebp.NewWebPTranscoder(),
	}

	summary, err := op.Execute(ctx)
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError converting the dataset: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	}
	emojiwebp.PrintSummary(os.Stderr, summary)
}

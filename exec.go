package emojiwebp

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/esimov/emojiwebp/utils"
)

// Default locations of the generated modules, relative to the working directory.
const (
	DefaultExport     = "emojis"
	DefaultBackupPath = "backup/emojis.js"
	DefaultOutputPath = "emojis.webp.js"
)

// Ops holds the options of a conversion run.
type Ops struct {
	// Source is the dataset to convert. The bundled dataset is used when nil.
	Source      Dataset
	Export      string
	BackupPath  string
	OutputPath  string
	BatchSize   int
	SkipInvalid bool
	Transcoder  Transcoder

	// Console receives the progress output. Defaults to os.Stderr.
	Console io.Writer
}

// Summary describes a completed conversion run.
type Summary struct {
	Stats
	Total      int
	BackupPath string
	OutputPath string
	Failures   []error
	Elapsed    time.Duration
}

// Execute runs the whole conversion: it writes a backup of the source dataset,
// converts a copy of it batch by batch and writes the converted dataset.
// Nothing is written to the output path when the conversion fails.
func (op *Ops) Execute(ctx context.Context) (*Summary, error) {
	now := time.Now()
	op.setDefaults()

	src := op.Source
	if src == nil {
		var err error
		if src, err = DefaultDataset(); err != nil {
			return nil, err
		}
	}

	if err := WriteModule(op.BackupPath, op.Export, src); err != nil {
		return nil, err
	}
	ds := src.Clone()

	summary := &Summary{
		Total:      len(ds),
		BackupPath: op.BackupPath,
		OutputPath: op.OutputPath,
	}

	progress := utils.NewProgress(op.Console,
		utils.DecorateText("⚡ EMOJIWEBP", utils.StatusMessage)+
			utils.DecorateText(" ⇢ converting images", utils.DefaultMessage),
		time.Millisecond*80, true,
	)
	conv := &Converter{
		BatchSize:   op.BatchSize,
		Transcoder:  op.Transcoder,
		Reporter:    progress,
		SkipInvalid: op.SkipInvalid,
		OnError: func(_ int, err error) {
			summary.Failures = append(summary.Failures, err)
		},
	}

	progress.Start(len(ds))
	stats, err := conv.Convert(ctx, ds)
	if err != nil {
		progress.StopMsg = fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ EMOJIWEBP", utils.StatusMessage),
			utils.DecorateText("converting images failed ✘", utils.ErrorMessage),
		)
		progress.Stop()
		return nil, err
	}
	progress.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ EMOJIWEBP", utils.StatusMessage),
		utils.DecorateText("the images have been converted successfully ✔", utils.SuccessMessage),
	)
	progress.Stop()

	if err := WriteModule(op.OutputPath, op.Export, ds); err != nil {
		return nil, err
	}
	summary.Stats = stats
	summary.Elapsed = time.Since(now)

	return summary, nil
}

func (op *Ops) setDefaults() {
	if op.Export == "" {
		op.Export = DefaultExport
	}
	if op.BackupPath == "" {
		op.BackupPath = DefaultBackupPath
	}
	if op.OutputPath == "" {
		op.OutputPath = DefaultOutputPath
	}
	if op.BatchSize <= 0 {
		op.BatchSize = DefaultBatchSize
	}
	if op.Transcoder == nil {
		op.Transcoder = NewWebPTranscoder()
	}
	if op.Console == nil {
		op.Console = os.Stderr
	}
}

// PrintSummary displays the relevant information about the conversion process.
func PrintSummary(w io.Writer, s *Summary) {
	fmt.Fprintf(w, "\nOriginal size:  %s\n", sizeLabel(s.Original))
	fmt.Fprintf(w, "Optimized size: %s\n", sizeLabel(s.Optimized))
	fmt.Fprintf(w, "Saved:          %s %s\n",
		utils.DecorateText(sizeLabel(s.Saved()), utils.SuccessMessage),
		utils.DecorateText(fmt.Sprintf("(%.2f%%)", s.Percent()), utils.SuccessMessage),
	)
	fmt.Fprintf(w, "Records:        %d converted, %d unchanged, %d failed (of %d)\n",
		s.Converted, s.Skipped, s.Failed, s.Total,
	)
	for _, err := range s.Failures {
		fmt.Fprintf(w, "\t%s\n", utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	fmt.Fprintf(w, "\nThe converted dataset has been saved as: %s\n",
		utils.DecorateText(s.OutputPath, utils.SuccessMessage),
	)
	fmt.Fprintf(w, "Execution time: %s\n", utils.DecorateText(utils.FormatTime(s.Elapsed), utils.SuccessMessage))
}

func sizeLabel(n int64) string {
	return fmt.Sprintf("%s (%d bytes)", utils.FormatBytes(n), n)
}

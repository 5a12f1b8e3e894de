package emojiwebp

import (
	"context"
	"errors"

	"github.com/esimov/emojiwebp/utils"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of records transcoded concurrently.
const DefaultBatchSize = 50

// Reporter receives the cumulative progress after every completed batch.
type Reporter interface {
	Update(processed, total int, saved int64)
}

// Converter replaces the embedded images of a dataset with WebP images.
type Converter struct {
	BatchSize  int
	Transcoder Transcoder
	Reporter   Reporter

	// SkipInvalid keeps records whose image cannot be transcoded unchanged
	// instead of aborting the whole run. OnError, if set, is called for each
	// of them once their batch has completed.
	SkipInvalid bool
	OnError     func(idx int, err error)
}

// result holds the outcome of transcoding a single record.
type result struct {
	rec       Record
	before    int
	after     int
	converted bool
	err       error
}

// Convert transcodes the dataset in place, batch by batch. Records of a batch
// are processed concurrently and the next batch starts only after every record
// of the current one has settled. The dataset is only written from the calling
// goroutine, after the batch barrier.
func (c *Converter) Convert(ctx context.Context, ds Dataset) (Stats, error) {
	var stats Stats

	if c.Transcoder == nil {
		return stats, errors.New("no transcoder configured")
	}
	size := c.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	total := len(ds)

	for start := 0; start < total; start += size {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		end := utils.Min(start+size, total)
		results := make([]result, end-start)

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			g.Go(func() error {
				res := c.convertRecord(gctx, ds[i])
				results[i-start] = res
				if res.err != nil && !c.SkipInvalid {
					return transcodeError(i, res.err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return stats, err
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		for j, res := range results {
			stats.add(res)
			if res.err != nil {
				if c.OnError != nil {
					c.OnError(start+j, transcodeError(start+j, res.err))
				}
				continue
			}
			ds[start+j] = res.rec
		}
		if c.Reporter != nil {
			c.Reporter.Update(end, total, stats.Saved())
		}
	}
	return stats, nil
}

// convertRecord transcodes the embedded image of a record. Records without
// an embedded image value are returned as they are.
func (c *Converter) convertRecord(ctx context.Context, rec Record) result {
	s, ok := rec.Emoji()
	if !ok || !IsDataURI(s) {
		return result{rec: rec}
	}
	uri, err := ParseDataURI(s)
	if err != nil {
		return result{err: err}
	}
	out, err := c.Transcoder.Transcode(ctx, uri.Data)
	if err != nil {
		return result{err: err}
	}
	webp := DataURI{MimeType: WebPMimeType, Data: out}
	newRec, err := rec.withEmoji(webp.String())
	if err != nil {
		return result{err: err}
	}
	return result{
		rec:       newRec,
		before:    len(uri.Data),
		after:     len(out),
		converted: true,
	}
}

package emojiwebp

import "github.com/esimov/emojiwebp/utils"

// Stats accumulates the size accounting of a conversion run.
type Stats struct {
	Original  int64 // decoded size of every converted source image
	Optimized int64 // size of every produced WebP image
	Converted int
	Skipped   int
	Failed    int
}

// Saved returns the number of bytes saved so far.
func (s Stats) Saved() int64 {
	return s.Original - s.Optimized
}

// Percent returns the saved bytes as a percentage of the original size.
func (s Stats) Percent() float64 {
	if s.Original == 0 {
		return 0
	}
	return utils.Percent(s.Saved(), s.Original)
}

func (s *Stats) add(r result) {
	switch {
	case r.err != nil:
		s.Failed++
	case !r.converted:
		s.Skipped++
	default:
		s.Converted++
		s.Original += int64(r.before)
		s.Optimized += int64(r.after)
	}
}

package utils

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

const barWidth = 24

// Progress renders the conversion progress. On a terminal it keeps a single
// animated status line, otherwise every update is printed on its own line.
type Progress struct {
	mu         *sync.Mutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	StopMsg    string
	live       bool
	hideCursor bool
	running    bool
	stopChan   chan struct{}
	doneChan   chan struct{}

	processed int
	total     int
	saved     int64
	frame     int
}

// NewProgress instantiates a new progress indicator writing to w.
// The animated mode is only used when w is a terminal.
func NewProgress(w io.Writer, msg string, d time.Duration, hideCursor bool) *Progress {
	live := false
	if f, ok := w.(*os.File); ok {
		live = IsTerminal(f)
	}
	return &Progress{
		mu:         &sync.Mutex{},
		delay:      d,
		writer:     w,
		message:    msg,
		live:       live,
		hideCursor: hideCursor && live,
		stopChan:   make(chan struct{}),
		doneChan:   make(chan struct{}),
	}
}

// Start starts the progress indicator.
func (p *Progress) Start(total int) {
	p.mu.Lock()
	p.total = total
	if !p.live || p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	if p.hideCursor && runtime.GOOS != "windows" {
		// hides the cursor
		fmt.Fprint(p.writer, "\033[?25l")
	}
	p.draw()
	p.mu.Unlock()

	go func() {
		defer close(p.doneChan)
		ticker := time.NewTicker(p.delay)
		defer ticker.Stop()
		for {
			select {
			case <-p.stopChan:
				return
			case <-ticker.C:
				p.mu.Lock()
				p.frame++
				p.draw()
				p.mu.Unlock()
			}
		}
	}()
}

// Update records the number of processed records and the bytes saved so far.
func (p *Progress) Update(processed, total int, saved int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processed, p.total, p.saved = processed, total, saved
	if p.live {
		p.draw()
		return
	}
	fmt.Fprintf(p.writer, "%s %s\n", p.message, p.status())
}

// Stop stops the progress indicator and prints the stop message, if any.
func (p *Progress) Stop() {
	p.mu.Lock()
	running := p.running
	p.running = false
	p.mu.Unlock()

	if running {
		close(p.stopChan)
		<-p.doneChan
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.live {
		p.clear()
	}
	p.RestoreCursor()
	if len(p.StopMsg) > 0 {
		fmt.Fprintln(p.writer, p.StopMsg)
	}
}

// RestoreCursor restores back the cursor visibility.
func (p *Progress) RestoreCursor() {
	if p.hideCursor && runtime.GOOS != "windows" {
		// makes the cursor visible
		fmt.Fprint(p.writer, "\033[?25h")
	}
}

// status formats the counters, e.g. "[######------] 50/120 41% saved 12 kB".
func (p *Progress) status() string {
	filled := 0
	if p.total > 0 {
		filled = Clamp(p.processed*barWidth/p.total, 0, barWidth)
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled)

	return fmt.Sprintf("[%s] %d/%d %.0f%% saved %s",
		bar, p.processed, p.total, Percent(p.processed, p.total), FormatBytes(p.saved),
	)
}

// draw redraws the status line. Caller must hold the locker.
func (p *Progress) draw() {
	r := []rune(`⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`)[p.frame%10]
	output := fmt.Sprintf("\r%s %s%c%s %s", p.message, SuccessColor, r, DefaultColor, p.status())
	p.clear()
	fmt.Fprint(p.writer, output)
	p.lastOutput = output
}

// clear deletes the last line. Caller must hold the locker.
func (p *Progress) clear() {
	if p.lastOutput == "" {
		return
	}
	if runtime.GOOS == "windows" {
		n := utf8.RuneCountInString(p.lastOutput)
		fmt.Fprint(p.writer, "\r"+strings.Repeat(" ", n)+"\r")
	} else {
		fmt.Fprint(p.writer, "\r\033[K")
	}
	p.lastOutput = ""
}

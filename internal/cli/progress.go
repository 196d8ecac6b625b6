package cli

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/pymap/internal/engine"
)

// Progress is only worth drawing for runs large enough to take a moment.
const progressMinFiles = 64

// parseProgress draws a progress bar on stderr during the parallel parse
// phase. progressbar's Add is internally locked, so concurrent
// OnFileParsed calls are safe.
type parseProgress struct {
	bar *progressbar.ProgressBar
}

// newProgressReporter returns a bar-drawing reporter when stderr is a
// terminal and quiet is off, and a no-op reporter otherwise.
func newProgressReporter(quiet bool) engine.ProgressReporter {
	if quiet || !isatty.IsTerminal(os.Stderr.Fd()) {
		return engine.NoProgress{}
	}
	return &parseProgress{}
}

func (p *parseProgress) OnParseStart(totalFiles int) {
	if totalFiles < progressMinFiles {
		return
	}
	p.bar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Parsing files"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *parseProgress) OnFileParsed(string) {
	if p.bar != nil {
		p.bar.Add(1)
	}
}

func (p *parseProgress) OnParseDone() {
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
}

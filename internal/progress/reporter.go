package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while sitemap files are written.
type Reporter interface {
	Start(total int)
	SetTotal(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{out: w}
	}
	return &TerminalReporter{out: w}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	out io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.out),
		progressbar.OptionSetDescription("Writing sitemaps"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// SetTotal changes the expected step count once it is known.
func (r *TerminalReporter) SetTotal(total int) {
	if r.bar != nil {
		r.bar.ChangeMax(total)
	}
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	out   io.Writer
	total int
	done  int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	r.done = 0
}

func (r *CIReporter) SetTotal(total int) {
	r.total = total
}

func (r *CIReporter) Update(current int, message string) {
	r.done = current
	fmt.Fprintf(r.out, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.out, "Wrote %d sitemap files\n", r.done)
}

// Nop discards all progress.
type Nop struct{}

func (Nop) Start(int)          {}
func (Nop) SetTotal(int)       {}
func (Nop) Update(int, string) {}
func (Nop) Finish()            {}

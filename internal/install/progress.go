package install

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
)

// progressWriter counts bytes passing through and redraws a single-line
// progress bar on w.
type progressWriter struct {
	w     io.Writer
	bar   progress.Model
	total int64
	done  int64
	shown float64
}

func newProgressWriter(w io.Writer, total int64) *progressWriter {
	return &progressWriter{
		w:     w,
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		total: total,
		shown: -1,
	}
}

func (p *progressWriter) Write(b []byte) (int, error) {
	p.done += int64(len(b))
	pct := float64(p.done) / float64(p.total)
	if pct > 1 {
		pct = 1
	}
	// redraw on whole-percent steps only
	if pct-p.shown >= 0.01 || (pct == 1 && p.shown < 1) {
		p.shown = pct
		fmt.Fprintf(p.w, "\r%s", p.bar.ViewAs(pct))
	}
	return len(b), nil
}

// Done terminates the progress line.
func (p *progressWriter) Done() {
	fmt.Fprintln(p.w)
}

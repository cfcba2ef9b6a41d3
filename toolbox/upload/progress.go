package upload

import "io"

// ProgressFunc receives the clamped upload percentage in [0,100]. It is
// called after every chunk written, so consecutive values are
// non-decreasing and the final call on a completed upload is exactly
// 100.
type ProgressFunc func(percent int)

// progressReader wraps the upload body and publishes progress as the
// transport drains it.
type progressReader struct {
	r     io.Reader
	total int64
	read  int64
	last  int
	fn    ProgressFunc
}

func newProgressReader(r io.Reader, total int64, fn ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, fn: fn}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.read += int64(n)
		p.publish()
	}
	if err == io.EOF && p.total <= 0 {
		// Unknown size: the only meaningful report is completion.
		p.report(100)
	}
	return n, err
}

func (p *progressReader) publish() {
	if p.total <= 0 {
		return
	}
	percent := int(p.read * 100 / p.total)
	if percent > 100 {
		percent = 100
	}
	p.report(percent)
}

// report keeps the published sequence monotonically non-decreasing even
// if the underlying reader over-reports.
func (p *progressReader) report(percent int) {
	if p.fn == nil {
		return
	}
	if percent < p.last {
		percent = p.last
	}
	p.last = percent
	p.fn(percent)
}

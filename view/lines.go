package view

import (
	"bufio"
	"io"

	"go.uber.org/multierr"
)

// LineSource streams the lines of a reader as a single-pass view.
type LineSource struct {
	View[string, *StreamCursor[string]]

	sc      *bufio.Scanner
	closers []io.Closer
}

// Lines splits r into lines without their terminators. closers are closed,
// in order, by Close; pass r itself (or a chain of decoders) to hand over
// ownership.
func Lines(r io.Reader, closers ...io.Closer) *LineSource {
	l := &LineSource{sc: bufio.NewScanner(r), closers: closers}
	l.View = Stream(l.scan)
	return l
}

// Buffer sets the initial buffer and the longest accepted line.
// It must be called before the first line is read.
func (l *LineSource) Buffer(buf []byte, max int) {
	l.sc.Buffer(buf, max)
}

func (l *LineSource) scan() (string, bool) {
	if l.sc.Scan() {
		return l.sc.Text(), true
	}
	return "", false
}

// Err returns the first non-EOF error met while reading.
func (l *LineSource) Err() error {
	return l.sc.Err()
}

// Close releases the closers and reports their errors together with any
// read error.
func (l *LineSource) Close() (err error) {
	err = l.sc.Err()
	for _, c := range l.closers {
		err = multierr.Append(err, c.Close())
	}
	l.closers = nil
	return
}

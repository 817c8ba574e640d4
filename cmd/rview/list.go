package main

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"github.com/dacapoday/ranges/chunk"
	"github.com/dacapoday/ranges/view"
)

type streamChunk = chunk.InputChunk[string, *view.StreamCursor[string]]

// runList prints the chunks of filename to w in one pass, never holding
// more than one line in memory.
func runList(w io.Writer, log logr.Logger, filename string, size, count int) (err error) {
	lines, err := openLines(log, filename)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, lines.Close())
	}()

	chunks := chunk.Input(lines.View, size)
	var all iter.Seq[streamChunk] = chunks.All()
	if count > 0 {
		all = view.TakeInput(chunks, count).All()
	}

	out := bufio.NewWriter(w)
	n, line := 0, 0
	for c := range all {
		n++
		fmt.Fprintf(out, "--- chunk %d ---\n", n)
		for text := range c.All() {
			line++
			fmt.Fprintf(out, "%6d  %s\n", line, text)
		}
	}
	log.V(1).Info("listed", "file", filename, "chunks", n, "lines", line, "size", size)
	return out.Flush()
}

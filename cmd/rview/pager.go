package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-logr/logr"
	"golang.org/x/term"

	"github.com/dacapoday/ranges/chunk"
	"github.com/dacapoday/ranges/iterator"
	"github.com/dacapoday/ranges/view"
)

type (
	page       = chunk.Span[string, *view.SliceCursor[string]]
	pageCursor = *chunk.RandomAccessCursor[string, *view.SliceCursor[string]]
	pageIter   = iterator.RandomAccess[page, pageCursor]
)

func runInteractive(log logr.Logger, filename string, size int) error {
	lines, err := openLines(log, filename)
	if err != nil {
		return err
	}
	text := lines.Collect()
	if err := lines.Close(); err != nil {
		return err
	}
	log.V(1).Info("loaded", "file", filename, "lines", len(text))

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	p := newPager(filename, text, size)
	p.updateSize(fd)

	fmt.Print("\033[?25l\033[2J")             // hide cursor, clear screen once
	defer fmt.Print("\033[?25h\033[2J\033[H") // show cursor, clear screen

	reader := bufio.NewReader(os.Stdin)
	for {
		p.updateSize(fd)
		fmt.Print(p.render())

		b, err := reader.ReadByte()
		if err != nil {
			return nil
		}
		p.status = ""

		switch {
		case b >= '0' && b <= '9':
			p.input = append(p.input, b)
			continue
		case b == 127 || b == 8: // Backspace
			if len(p.input) > 0 {
				p.input = p.input[:len(p.input)-1]
			}
			continue
		case b == 13 || b == 10: // Enter
			if len(p.input) > 0 {
				n, _ := strconv.Atoi(string(p.input))
				p.input = nil
				p.jump(n)
			}
			continue
		}
		p.input = nil

		switch b {
		case 'q', 3, 27: // q, Ctrl+C, Esc
			if b == 27 && reader.Buffered() > 0 {
				// escape sequence
				b2, _ := reader.ReadByte()
				if b2 == '[' {
					b3, _ := reader.ReadByte()
					switch b3 {
					case 'A', '5': // up, page up
						p.prev()
					case 'B', '6': // down, page down
						p.next()
					}
					if b3 == '5' || b3 == '6' {
						reader.ReadByte()
					}
				}
				continue
			}
			return nil
		case 'j', ' ':
			p.next()
		case 'k':
			p.prev()
		case 'g':
			p.first()
		case 'G':
			p.last()
		}
	}
}

// pager shows one chunk of lines per screen.
type pager struct {
	name  string
	text  []string
	size  int
	fit   bool // size follows the terminal height
	count int

	it, begin, end pageIter

	width, height int
	input         []byte
	status        string
}

func newPager(name string, text []string, size int) *pager {
	p := &pager{name: name, text: text, fit: size == 0, width: 80, height: 24}
	if p.fit {
		size = p.lines()
	}
	p.chunk(size)
	return p
}

// chunk splits the text into pages of n lines, keeping the first visible
// line on screen.
func (p *pager) chunk(n int) {
	line := 0
	if p.size > 0 {
		line = p.index() * p.size
	}
	p.size = max(n, 1)

	pages := chunk.RandomAccess(view.Slice(p.text), p.size)
	p.begin = iterator.NewRandomAccess[page](pages.Begin())
	p.end = iterator.NewRandomAccess[page](pages.End())
	p.count = p.end.Diff(p.begin)
	p.it = p.begin.Plus(min(line/p.size, max(p.count-1, 0)))
}

// updateSize checks terminal size and rechunks if the page size follows it.
func (p *pager) updateSize(fd int) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		w, h = 80, 24
	}
	p.resize(w, h)
}

func (p *pager) resize(w, h int) {
	if w == p.width && h == p.height {
		return
	}
	p.width, p.height = w, h
	if p.fit && p.lines() != p.size {
		p.chunk(p.lines())
	}
}

func (p *pager) lines() int {
	return max(p.height-4, 1) // title + separator + separator + status
}

// index is the zero-based number of the current page.
func (p *pager) index() int { return p.it.Diff(p.begin) }

func (p *pager) next() {
	if p.index() < p.count-1 {
		p.it.Add(1)
	}
}

func (p *pager) prev() {
	if p.index() > 0 {
		p.it.Sub(1)
	}
}

func (p *pager) first() { p.it = p.begin.Clone() }

func (p *pager) last() {
	if p.count > 0 {
		p.it = p.end.Minus(1)
	}
}

// jump moves to the one-based page n.
func (p *pager) jump(n int) {
	if n < 1 || n > p.count {
		p.status = fmt.Sprintf("no chunk %d", n)
		return
	}
	p.it = p.begin.Plus(n - 1)
}

func (p *pager) render() string {
	var b strings.Builder

	// move to top (no clear)
	b.WriteString("\033[H")

	// header
	fmt.Fprintf(&b, "[ rview ] %s  chunk %d/%d (%d lines)\033[K\r\n",
		display(p.name, p.width/2), min(p.index()+1, p.count), p.count, p.size)
	b.WriteString(strings.Repeat("─", p.width))
	b.WriteString("\033[K\r\n")

	// lines
	var shown []string
	if p.count > 0 {
		shown = p.it.Get().Collect()
	}
	first := p.index() * p.size
	lines := p.lines()
	for i := range lines {
		if i < len(shown) {
			fmt.Fprintf(&b, "%6d  %s", first+i+1, display(shown[i], max(p.width-8, 20)))
		} else {
			b.WriteString("~")
		}
		b.WriteString("\033[K\r\n")
	}

	// footer
	b.WriteString(strings.Repeat("─", p.width))
	b.WriteString("\033[K\r\n")

	// status line
	pos := ""
	switch atStart, atEnd := p.index() == 0, p.index() >= p.count-1; {
	case atStart && atEnd:
		pos = "[all]"
	case atStart:
		pos = "[top]"
	case atEnd:
		pos = "[end]"
	}
	switch {
	case len(p.input) > 0:
		fmt.Fprintf(&b, " :%s", p.input)
	case p.status != "":
		fmt.Fprintf(&b, " %s %s", p.status, pos)
	default:
		fmt.Fprintf(&b, " j/k:chunk g/G:jump N⏎:goto q:quit %s", pos)
	}
	b.WriteString("\033[K")

	return b.String()
}

// display truncates s to maxLen runes and masks control characters.
func display(s string, maxLen int) string {
	maxLen = max(maxLen, 4)
	runes := []rune(s)
	for i, r := range runes {
		if r == '\t' {
			runes[i] = ' '
		} else if !unicode.IsPrint(r) {
			runes[i] = '.'
		}
	}
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return string(runes)
}

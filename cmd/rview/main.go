// rview is a simple CLI tool for reading text files in chunks of lines.
//
// Usage:
//
//	rview <filename>                # interactive mode, one chunk per screen
//	rview -n 50 <filename>          # interactive mode, 50 lines per chunk
//	rview -l <filename>             # list mode (print all chunks)
//	rview -l -n 5 -c 3 <filename>   # list the first 3 chunks of 5 lines
//
// Files ending in .gz, .zst or .sz are decompressed on the fly.
//
// Interactive mode:
//
//	j/↓    next chunk
//	k/↑    previous chunk
//	g      first chunk
//	G      last chunk
//	N⏎     jump to chunk N
//	q/Esc  quit
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zerologr"
	"github.com/rs/zerolog"
)

const defaultListSize = 10

func main() {
	sizeFlag := flag.Int("n", 0, "lines per chunk (0 = fit the terminal, or 10 in list mode)")
	listFlag := flag.Bool("l", false, "list mode (non-interactive)")
	countFlag := flag.Int("c", 0, "number of chunks to list (0 = all)")
	verboseFlag := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	if flag.NArg() < 1 || *sizeFlag < 0 || *countFlag < 0 {
		fmt.Fprintln(os.Stderr, "Usage: rview [-l] [-n size] [-c count] [-v] <filename>")
		os.Exit(1)
	}

	log := newLogger(*verboseFlag)
	filename := flag.Arg(0)

	var err error
	if *listFlag {
		size := *sizeFlag
		if size == 0 {
			size = defaultListSize
		}
		err = runList(os.Stdout, log, filename, size, *countFlag)
	} else {
		err = runInteractive(log, filename, *sizeFlag)
	}
	if err != nil {
		log.Error(err, "rview failed", "file", filename)
		os.Exit(1)
	}
}

func newLogger(verbose bool) logr.Logger {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	zlog := zerolog.New(output).Level(level).With().Timestamp().Logger()
	return zerologr.New(&zlog).WithName("rview")
}

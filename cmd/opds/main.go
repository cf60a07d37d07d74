// opds - OPDS 2.0 catalog codec CLI tool
//
// Usage:
//
//	opds validate [--publication] [file]   Parse a catalog document and report problems
//	opds fmt [options] [file]              Re-emit a catalog document in canonical form
//	opds version                           Print version info
//
// Files ending in .gz are decompressed transparently. If no file is given,
// reads from stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/lectern/opds/opds"
)

const version = "0.3.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cmd := os.Args[1]

	compact := false
	asPublication := false
	quiet := false
	fileArg := ""
	for _, arg := range os.Args[2:] {
		switch {
		case arg == "--compact":
			compact = true
		case arg == "--publication":
			asPublication = true
		case arg == "--quiet" || arg == "-q":
			quiet = true
		default:
			if !strings.HasPrefix(arg, "-") && arg != "-" {
				fileArg = arg
			}
		}
	}
	if quiet {
		log = log.Level(zerolog.ErrorLevel)
	}

	switch cmd {
	case "validate":
		data := readInput(fileArg)
		cmdValidate(log, data, fileArg, asPublication)
	case "fmt":
		data := readInput(fileArg)
		cmdFmt(log, data, fileArg, asPublication, compact)
	case "version", "-v", "--version":
		fmt.Printf("opds %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `opds - OPDS 2.0 catalog codec CLI tool

Usage:
  opds validate [--publication] [file]   Parse a catalog document and report problems
  opds fmt [options] [file]              Re-emit a catalog document in canonical form
  opds version                           Print version info

Options:
  --publication       Treat the input as a standalone publication, not a feed
  --compact           Emit compact output (fmt; default is indented)
  --quiet, -q         Suppress diagnostics, report errors only

Files ending in .gz are decompressed transparently.
If no file is given, reads from stdin.

Examples:
  opds validate catalog.json
  curl -s https://example.org/opds | opds fmt
  opds fmt --compact catalog.json.gz > canonical.json
`)
}

func readInput(fileArg string) []byte {
	var input io.Reader = os.Stdin
	if fileArg != "" {
		f, err := os.Open(fileArg)
		if err != nil {
			fatal("open file: %v", err)
		}
		defer f.Close()
		input = f
		if strings.HasSuffix(fileArg, ".gz") {
			zr, err := gzip.NewReader(f)
			if err != nil {
				fatal("open gzip stream: %v", err)
			}
			defer zr.Close()
			input = zr
		}
	}
	data, err := io.ReadAll(input)
	if err != nil {
		fatal("read input: %v", err)
	}
	return data
}

func cmdValidate(log zerolog.Logger, data []byte, name string, asPublication bool) {
	if name == "" {
		name = "<stdin>"
	}

	if asPublication {
		pub, err := opds.ParsePublication(data)
		if err != nil {
			reportError(log, name, err)
			os.Exit(1)
		}
		log.Info().
			Str("file", name).
			Str("title", pub.Metadata.Title.String()).
			Int("links", len(pub.Links)).
			Int("images", len(pub.Images)).
			Msg("publication is valid")
		return
	}

	feed, err := opds.ParseFeed(data)
	if err != nil {
		reportError(log, name, err)
		os.Exit(1)
	}
	log.Info().
		Str("file", name).
		Str("title", feed.Metadata.Title.String()).
		Int("navigation", len(feed.Navigation)).
		Int("publications", len(feed.Publications)).
		Int("facets", len(feed.Facets)).
		Int("groups", len(feed.Groups)).
		Msg("feed is valid")
}

func cmdFmt(log zerolog.Logger, data []byte, name string, asPublication, compact bool) {
	if name == "" {
		name = "<stdin>"
	}

	var out []byte
	if asPublication {
		pub, err := opds.ParsePublication(data)
		if err != nil {
			reportError(log, name, err)
			os.Exit(1)
		}
		if compact {
			out = opds.EncodePublication(pub)
		} else {
			out = opds.EncodePublicationPretty(pub)
		}
	} else {
		feed, err := opds.ParseFeed(data)
		if err != nil {
			reportError(log, name, err)
			os.Exit(1)
		}
		if compact {
			out = opds.EncodeFeed(feed)
		} else {
			out = opds.EncodeFeedPretty(feed)
		}
	}
	os.Stdout.Write(out)
	fmt.Println()
}

func reportError(log zerolog.Logger, name string, err error) {
	var derr *opds.DecodeError
	if errors.As(err, &derr) {
		log.Error().
			Str("file", name).
			Str("path", derr.Path).
			Str("code", derr.Code).
			Msg(derr.Message)
		return
	}
	log.Error().Str("file", name).Err(err).Msg("parse failed")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "opds: "+format+"\n", args...)
	os.Exit(1)
}

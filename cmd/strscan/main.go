// Command strscan runs a scan script against a text and reports the results.
//
//	strscan -e 'skip_until "func "; scan `\w+`' main.go
//	strscan -f tokens.scan -html page.html
//	echo "key: value" | strscan -e 'scan `\w+`; coords'
//
// After the script has run, strscan prints an excerpt of the text at the
// final scan position.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/strscan"
	"github.com/npillmayer/strscan/excerpt"
	"github.com/npillmayer/strscan/html"
	"github.com/npillmayer/strscan/metrics"
	"github.com/npillmayer/strscan/script"
	"github.com/npillmayer/strscan/textfile"
)

type options struct {
	expr       string
	scriptFile string
	text       string
	traceLevel string
	fromHTML   bool
	format     string
	noColor    bool
	stats      bool
	dotFile    string
	maxIter    int
	input      string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	setupTracing(opts.traceLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prog, err := loadScript(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	s, err := loadText(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot load text: %v\n", err)
		return 1
	}
	if opts.stats {
		printStats(s.Text())
	}
	_, err = script.Run(ctx, prog, s, &script.Config{
		MaxIterations: opts.maxIter,
		Output:        os.Stdout,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if opts.dotFile != "" {
		if derr := writeDot(s, opts.dotFile); derr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", derr)
		}
	}
	if xerr := printExcerpt(s, opts); xerr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", xerr)
		return 1
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.expr, "e", "", "Scan script given on the command line")
	flag.StringVar(&opts.scriptFile, "f", "", "Path to scan script file")
	flag.StringVar(&opts.text, "text", "", "Text to scan (instead of a file or stdin)")
	flag.StringVar(&opts.traceLevel, "trace", "Error", "Trace level (Debug, Info, Error)")
	flag.BoolVar(&opts.fromHTML, "html", false, "Input is HTML; scan its text content")
	flag.StringVar(&opts.format, "format", "console", "Excerpt format (console, html, none)")
	flag.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&opts.stats, "stats", false, "Print line and word counts of the text")
	flag.StringVar(&opts.dotFile, "dot", "", "Write the scanner history in DOT format to file")
	flag.IntVar(&opts.maxIter, "max-iter", script.DefaultMaxIterations, "Iteration limit for repeat blocks")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: strscan [options] (-e script | -f file) [textfile]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 0 {
		opts.input = flag.Arg(0)
	}
	if opts.noColor {
		color.NoColor = true
	}
	return opts
}

func setupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracing.Select("strscan").SetTraceLevel(tracing.TraceLevelFromString(level))
}

func loadScript(opts options) (*script.Script, error) {
	switch {
	case opts.expr != "" && opts.scriptFile != "":
		return nil, errors.New("options -e and -f are mutually exclusive")
	case opts.expr != "":
		return script.Parse("<cmdline>", opts.expr)
	case opts.scriptFile != "":
		src, err := os.ReadFile(opts.scriptFile)
		if err != nil {
			return nil, err
		}
		return script.Parse(opts.scriptFile, string(src))
	}
	flag.Usage()
	return nil, errors.New("no scan script given")
}

func loadText(ctx context.Context, opts options) (*strscan.Scanner, error) {
	var in io.Reader
	switch {
	case opts.text != "":
		if !opts.fromHTML {
			return strscan.New(opts.text), nil
		}
		s := strscan.New(opts.text)
		in = s.Reader()
	case opts.input != "":
		s, err := textfile.Load(ctx, opts.input, 0)
		if err != nil || !opts.fromHTML {
			return s, err
		}
		in = s.Reader()
	default:
		in = os.Stdin
	}
	if opts.fromHTML {
		return html.TextFromHTML(in)
	}
	return strscan.FromReader(in)
}

func printStats(text string) {
	words, _, err := metrics.Words().Apply(text, 0, uint64(len(text)))
	if err != nil {
		return
	}
	fmt.Printf("%d bytes, %d lines, %d words\n", len(text), metrics.LineCount(text),
		words.WordCount())
}

func writeDot(s *strscan.Scanner, name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	strscan.History2Dot(s, f)
	return f.Close()
}

func printExcerpt(s *strscan.Scanner, opts options) error {
	if opts.format == "none" {
		return nil
	}
	x, err := excerpt.FromScanner(s, nil)
	if err != nil {
		return err
	}
	switch opts.format {
	case "html":
		if err := x.HTML(os.Stdout); err != nil {
			return err
		}
		_, err = fmt.Println()
		return err
	case "console":
		return x.Console(os.Stdout, color.New(color.FgRed, color.Bold))
	}
	return fmt.Errorf("unknown excerpt format %q", opts.format)
}

// Package main is the entry point for the quill document tool.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/quill/internal/config"
	"github.com/dshills/quill/internal/engine"
	"github.com/dshills/quill/internal/engine/doc"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	format     string
	insert     string
	file       string
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.format != "" {
		cfg.Output.Format = opts.format
	}

	engOpts := []engine.Option{}
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", opts.file, err)
			return 1
		}
		engOpts = append(engOpts, engine.WithJSON(string(data)))
	} else {
		engOpts = append(engOpts, engine.WithDocument(sampleDocument()))
	}

	e, err := engine.New(engOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.insert != "" {
		if _, err := e.InsertText(opts.insert); err != nil {
			fmt.Fprintf(os.Stderr, "Error: inserting text: %v\n", err)
			return 1
		}
	}

	out, err := render(e.Doc(), cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: rendering: %v\n", err)
		return 1
	}
	fmt.Println(out)

	if cfg.Output.Metrics {
		m := e.Metrics()
		fmt.Fprintf(os.Stderr, "%d blocks, %d words, %d characters\n", m.Blocks, m.Words, m.Graphemes)
	}
	return 0
}

func render(d *doc.Node, format string) (string, error) {
	switch format {
	case config.FormatJSON:
		return d.JSON()
	case config.FormatHTML:
		return doc.ToHTML(d)
	default:
		return d.TextContent(), nil
	}
}

// sampleDocument is used when no input file is given.
func sampleDocument() *doc.Node {
	return doc.NewNode(doc.TypeDoc,
		doc.NewNodeAttrs(doc.TypeHeading, map[string]string{"level": "1"}, doc.NewText("Quill")),
		doc.NewNode(doc.TypeParagraph,
			doc.NewText("A rich-text document engine with "),
			doc.NewText("composable", doc.NewMark(doc.MarkItalic)),
			doc.NewText(" edit deltas.")),
	)
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "quill.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "quill.toml", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.format, "format", "", "Output format (json, html, text)")
	flag.StringVar(&opts.format, "f", "", "Output format (shorthand)")
	flag.StringVar(&opts.insert, "insert", "", "Insert text at the selection before rendering")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Quill - rich-text document tool\n\n")
		fmt.Fprintf(os.Stderr, "Usage: quill [options] [document.json]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  quill                         Render the sample document\n")
		fmt.Fprintf(os.Stderr, "  quill doc.json                Render a document file\n")
		fmt.Fprintf(os.Stderr, "  quill -f html doc.json        Render as HTML\n")
		fmt.Fprintf(os.Stderr, "  quill -insert hi doc.json     Insert text, then render\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("Quill %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if args := flag.Args(); len(args) > 0 {
		opts.file = args[0]
	}
	return opts
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	pacourt "github.com/joshuagerstein/PAcourt-document-parser"
)

func main() {
	var (
		textOnly   = flag.Bool("text", false, "print the serialized intermediate text instead of the parsed record")
		configPath = flag.String("config", "", "path to a YAML options file")
		logLevel   = flag.String("loglevel", "warn", "log level: debug, info, warn, error")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: courtparse [flags] <document.pdf>\n\n")
		fmt.Fprintf(os.Stderr, "Parses a Pennsylvania court docket or court summary PDF\n")
		fmt.Fprintf(os.Stderr, "and prints the structured record as JSON.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q\n", *logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	extractor := pacourt.Open(flag.Arg(0)).WithLogger(logger)
	if *configPath != "" {
		opts, err := pacourt.LoadOptions(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		extractor = extractor.WithOptions(opts).WithLogger(logger)
	}

	if *textOnly {
		text, warnings, err := extractor.Text()
		reportWarnings(warnings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(text)
		return
	}

	record, warnings, err := extractor.Record()
	reportWarnings(warnings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func reportWarnings(warnings []pacourt.Warning) {
	if len(warnings) > 0 {
		fmt.Fprintln(os.Stderr, pacourt.FormatWarnings(warnings))
	}
}

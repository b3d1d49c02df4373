package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/bjaus/savedata"
	"github.com/bjaus/savedata/internal/config"
	"github.com/bjaus/savedata/internal/source"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, afero.NewOsFs()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, fs afero.Fs) error {
	flags := pflag.NewFlagSet("savedata", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: savedata [options] [file.json|file.yaml|file.parquet]\n\n")
		fmt.Fprintf(stderr, "Export a dataset as CSV, JS, JSON, Python, or R. Reads stdin when no file is given.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  savedata data.json\n")
		fmt.Fprintf(stderr, "  savedata -f r -n scores data.yaml\n")
		fmt.Fprintf(stderr, "  savedata -f '{\"format\":\"delimited\",\"delimiter\":\";\"}' --output log < data.json\n")
	}
	config.Flags(flags)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(flags)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	var data savedata.Value
	if flags.NArg() > 0 {
		data, err = source.Load(fs, flags.Arg(0))
	} else {
		data, err = source.Read(stdin, "")
	}
	if err != nil {
		return err
	}

	if cfg.Describe {
		border, err := savedata.ParseBorder(cfg.Border)
		if err != nil {
			return err
		}
		t, err := savedata.NewTable(data)
		if err != nil {
			return err
		}
		return savedata.Describe(stdout, t, border)
	}

	req, err := savedata.ParseRequest(cfg.Format)
	if err != nil {
		return err
	}
	overlay(&req, cfg)

	if cfg.Output == config.OutputLog {
		return savedata.ToLog(slog.New(slog.NewTextHandler(stdout, nil)), data, req)
	}
	return savedata.ToFile(savedata.FileDownloader{Fs: fs, Dir: cfg.OutDir}, data, req)
}

// overlay applies individually set options on top of the request.
func overlay(req *savedata.Request, cfg *config.Config) {
	if cfg.Name != "" {
		req.Name = cfg.Name
	}
	if cfg.Filename != "" {
		req.Filename = cfg.Filename
	}
	if cfg.Delimiter != "" {
		req.Delimiter = cfg.Delimiter
	}
}

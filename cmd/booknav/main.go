// Command booknav serves the book library single-page application with
// history-mode routing, or resolves paths from the command line.
//
//	booknav --addr :8080 --base /
//	booknav --resolve /books/42 --resolve /unknown
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rnav"
	"github.com/rohanthewiz/rnav/serve"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/pflag"
)

type options struct {
	Addr       string
	Base       string
	RoutesFile string
	Resolve    []string
	Verbose    bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		logger.LogErr(err, "booknav failed")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	var opts options

	flagSet := pflag.NewFlagSet("booknav", pflag.ContinueOnError)
	flagSet.StringVar(&opts.Addr, "addr", ":8080", "address to listen on")
	flagSet.StringVar(&opts.Base, "base", "/", "base path the application is mounted under")
	flagSet.StringVar(&opts.RoutesFile, "routes", "", "YAML route table replacing the built-in one")
	flagSet.StringArrayVar(&opts.Resolve, "resolve", nil, "resolve this path, print the result and exit (repeatable)")
	flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "log every navigation")

	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if extra := flagSet.Args(); len(extra) > 0 {
		return serr.New("unexpected argument", "arg", extra[0])
	}

	table, err := loadTable(opts.RoutesFile)
	if err != nil {
		return err
	}

	views, err := newViews(table, opts.Base)
	if err != nil {
		return err
	}

	resolver := rnav.NewResolver(table)

	if len(opts.Resolve) > 0 {
		history := rnav.NewHistory(resolver, rnav.HistoryOptions{Base: opts.Base, Verbose: opts.Verbose})
		for _, target := range opts.Resolve {
			loc := history.Push(target)
			fmt.Fprintf(out, "%-24s %s\n", target, loc.Result)
		}
		return nil
	}

	shell := serve.New(resolver, views, serve.Options{
		Base:          opts.Base,
		AssetPrefixes: []string{"/assets/", "/api/", "/favicon.ico"},
	})

	s := rweb.NewServer(rweb.ServerOptions{
		Address: opts.Addr,
		Verbose: opts.Verbose,
	})
	if opts.Verbose {
		s.Use(shell.RequestInfo)
	}
	shell.Register(s)

	for _, r := range table.ListRoutes() {
		logger.Info("route", "name", r.Name, "pattern", r.Pattern, "view", r.HandlerRef)
	}
	logger.Info("booknav listening", "addr", opts.Addr, "base", rnav.Normalize(opts.Base))

	return s.Run()
}

// loadTable returns the built-in table, or the one in path when given.
func loadTable(path string) (*rnav.Table, error) {
	if path == "" {
		return rnav.NewTable(bookRoutes()...)
	}
	return rnav.LoadTableFile(path)
}

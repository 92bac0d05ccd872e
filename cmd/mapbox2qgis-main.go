package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/jamesrr39/goutil/errorsx"
	"github.com/jamesrr39/goutil/httpextra"
	"github.com/jamesrr39/goutil/logpkg"
	"github.com/pkg/profile"
	"github.com/wonder-sk/mapbox2qgis/styling"
	"github.com/wonder-sk/mapbox2qgis/styling/mapboxglstyle"
	"github.com/wonder-sk/mapbox2qgis/webservices"
	"gopkg.in/alecthomas/kingpin.v2"
)

const DEFAULT_ADDR = "localhost:9000"

func main() {
	verbose := kingpin.Flag("v", "verbose logging").Bool()

	setupConvert(verbose)
	setupServe(verbose)

	kingpin.Parse()
}

func createLogger(verbose bool) *logpkg.Logger {
	logLevel := logpkg.LogLevelInfo
	if verbose {
		logLevel = logpkg.LogLevelDebug
	}

	return logpkg.NewLogger(os.Stderr, logLevel)
}

func setupConvert(verbose *bool) {
	cmd := kingpin.Command("convert", "convert a style document into a style rule list")
	styleFilePath := cmd.Arg("file", "path to the style document JSON file").Required().String()
	cmd.Action(func(ctx *kingpin.ParseContext) error {
		run := func() errorsx.Error {
			logger := createLogger(*verbose)

			file, err := os.Open(*styleFilePath)
			if err != nil {
				return errorsx.Wrap(err)
			}
			defer file.Close()

			rules, diagnostics, parseErr := mapboxglstyle.Parse(file)
			if parseErr != nil {
				return parseErr
			}

			for _, diagnostic := range diagnostics {
				logger.Warn("layer %q: %s", diagnostic.LayerID, diagnostic.Message)
			}
			logger.Debug("extracted %d style rule(s) from %q", len(rules), *styleFilePath)

			if rules == nil {
				rules = []*styling.StyleRule{}
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			err = encoder.Encode(rules)
			if err != nil {
				return errorsx.Wrap(err)
			}

			return nil
		}

		err := run()
		if err != nil {
			log.Fatalf("failed to convert: %q\n%s\n", err.Error(), err.Stack())
		}

		return nil
	})
}

func setupServe(verbose *bool) {
	cmd := kingpin.Command("serve", "serve the style conversion webservice")
	addr := cmd.Flag("addr", "address to listen on").Default(DEFAULT_ADDR).String()
	shouldProfile := cmd.Flag("profile", "profile the server").Bool()
	cmd.Action(func(ctx *kingpin.ParseContext) error {
		run := func() errorsx.Error {
			logger := createLogger(*verbose)

			if *shouldProfile {
				defer profile.Start().Stop()
			}

			styleService := webservices.NewStyleService(logger)

			router := chi.NewRouter()
			router.Use(middleware.Logger)
			router.Mount("/api/styles", styleService)

			server := httpextra.NewServerWithTimeouts()
			server.Addr = *addr
			server.Handler = router

			logger.Info("about to start serving on %q", *addr)

			err := server.ListenAndServe()
			if err != nil {
				return errorsx.Wrap(err)
			}

			return nil
		}

		err := run()
		if err != nil {
			log.Fatalf("failed to serve: %q\n%s\n", err.Error(), err.Stack())
		}

		return nil
	})
}

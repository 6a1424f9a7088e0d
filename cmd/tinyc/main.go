package main

import (
	"fmt"
	"net/http"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/tinylang/tinyc"
	"github.com/tinylang/tinyc/tiny/translate"
)

type diagnostic struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func reportError(path string, err error, asJSON bool) {
	if !asJSON {
		fmt.Fprintf(os.Stderr, "%v: %v\n", path, err)
		return
	}
	d := diagnostic{
		Path:    path,
		Kind:    "error",
		Message: err.Error(),
	}
	if e, ok := err.(*translate.Error); ok {
		d.Kind = e.Kind.String()
		d.Message = e.Message()
	}
	buf, _ := jsoniter.Marshal(d)
	fmt.Fprintln(os.Stderr, string(buf))
}

func main() {
	listen := pflag.String("listen", "", "serve the live translation playground at this address instead of translating files")
	cachePath := pflag.String("cache", "", "the path to a translation cache file")
	jsonDiagnostics := pflag.Bool("json", false, "print diagnostics as json")
	pflag.Parse()

	config := tinyc.Config{
		Logger: logrus.StandardLogger(),
	}

	var cache *tinyc.FileCache
	if *cachePath != "" {
		cache = &tinyc.FileCache{Path: *cachePath}
		if err := cache.Load(); err != nil {
			logrus.Warn(err)
		}
		config.Cache = cache
	}

	translator := tinyc.NewTranslator(&config)

	if *listen != "" {
		logrus.WithField("address", *listen).Info("serving the playground")
		if err := http.ListenAndServe(*listen, http.HandlerFunc(translator.ServePlaygroundHTTP)); err != nil {
			logrus.Fatal(err)
		}
		return
	}

	if pflag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "no input files")
		os.Exit(1)
	}

	ok := true
	for _, path := range pflag.Args() {
		outPath, err := translator.TranslateFile(path)
		if err != nil {
			ok = false
			reportError(path, err, *jsonDiagnostics)
			continue
		}
		logrus.WithField("output", outPath).Infof("translated %v", path)
	}

	if cache != nil {
		if err := cache.Flush(); err != nil {
			logrus.Error(err)
		}
	}

	if !ok {
		os.Exit(1)
	}
}

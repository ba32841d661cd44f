package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
)

// The document and the record it decodes into are fixed; nothing about them
// is configurable from outside the binary.
const (
	inputDocument     = `{"name": "Alice"}`
	defaultIterations = 10_000_000
)

type person struct {
	Name string `json:"name"`
}

type config struct {
	input      []byte
	iterations int
	decoder    string
	timer      timer
}

func defaultConfig() config {
	return config{
		input:      []byte(inputDocument),
		iterations: defaultIterations,
		decoder:    defaultDecoder,
		timer:      processTimer,
	}
}

func run(cfg config, w io.Writer) error {
	result, err := runBenchmark(cfg)
	if err != nil {
		return err
	}
	return printResult(w, result)
}

// runMain exits the process with a diagnostic on stderr if the run fails.
func runMain(cfg config) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "parsebench",
	})

	if err := run(cfg, color.Output); err != nil {
		logger.Fatal("benchmark aborted", "decoder", cfg.decoder, "error", err)
	}
}

func main() {
	runMain(defaultConfig())
}

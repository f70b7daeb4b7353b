package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"

	"monobmp/internal/config"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// run converts the image named by args and returns the process exit code.
func run(args []string, fs afero.Fs, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		_, _ = fmt.Fprintf(stderr, "monobmp: %s\n", err)
		return exitUsage
	}

	app := newApp(cfg, fs, stdout, stderr)
	if err := app.Err(); err != nil {
		_, _ = fmt.Fprintf(stderr, "monobmp: %s\n", err)
		return exitError
	}

	return exitOK
}

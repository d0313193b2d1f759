// Command keypath inspects and converts motion path data.
//
// Usage:
//
//	keypath validate [file]
//	keypath upgrade [file]
//	keypath normalize [-width W] [-height H] [file]
//	keypath fit [-config file.toml] [file]
//	keypath preview [-config file.toml] [-format png|pdf|svg] [-o out] [-background image] [-labels] [file]
//
// Every subcommand reads path data, in either the JSON or the legacy format,
// from the named file or from standard input.
//
// validate reports whether the input is valid path data. upgrade rewrites it
// in the current JSON format. normalize clamps it to a canvas and removes
// duplicate points. fit treats the point list of every keyframe as a freehand
// stroke drawn in that keyframe, fits it, attaches the default keyframe
// points, and writes the resolved path data. preview renders the input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

var verbose = flag.Bool("v", false, "log debugging information")

type command struct {
	name  string
	usage string
	run   func(log *zap.Logger, args []string) error
}

var commands = []command{
	{"validate", "[file]", runValidate},
	{"upgrade", "[file]", runUpgrade},
	{"normalize", "[-width W] [-height H] [file]", runNormalize},
	{"fit", "[-config file.toml] [file]", runFit},
	{"preview", "[-config file.toml] [-format png|pdf|svg] [-o out] [-background image] [-labels] [file]", runPreview},
}

// errInvalid is returned by commands that already reported why they failed.
var errInvalid = errors.New("invalid input")

func main() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "usage:\n")
		for _, cmd := range commands {
			fmt.Fprintf(w, "  keypath [-v] %s %s\n", cmd.name, cmd.usage)
		}
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "keypath: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	name := flag.Arg(0)
	for _, cmd := range commands {
		if cmd.name != name {
			continue
		}
		if err := cmd.run(log.Named(name), flag.Args()[1:]); err != nil {
			if !errors.Is(err, errInvalid) {
				fmt.Fprintf(os.Stderr, "keypath %s: %v\n", name, err)
			}
			log.Sync()
			os.Exit(1)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "keypath: unknown command %q\n", name)
	flag.Usage()
	os.Exit(2)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// readInput reads the file named by the only positional argument, or
// standard input if there is none.
func readInput(fs *flag.FlagSet) (string, error) {
	var (
		b   []byte
		err error
	)
	switch fs.NArg() {
	case 0:
		b, err = io.ReadAll(os.Stdin)
	case 1:
		b, err = os.ReadFile(fs.Arg(0))
	default:
		return "", fmt.Errorf("too many arguments")
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

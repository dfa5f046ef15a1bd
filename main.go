package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/andareed/siftly-bikeshare/dataset"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/prompt"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

type config struct {
	dataDir  string
	logFile  string
	noColor  bool
	width    int
	version  bool
	showHelp bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.dataDir, "data-dir", ".", "directory holding chicago.csv, new_york_city.csv and washington.csv")
	fs.StringVar(&cfg.logFile, "debug", "", "Write Debug Logs to file")
	fs.BoolVar(&cfg.noColor, "no-color", os.Getenv("NO_COLOR") != "", "disable colored output")
	fs.IntVar(&cfg.width, "width", 100, "wrap report lines at this width (0 disables wrapping)")
	fs.BoolVar(&cfg.version, "version", false, "print version and exit")
	fs.BoolVarP(&cfg.showHelp, "help", "h", false, "show this help")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: bikeshare [--data-dir dir] [--debug debug.log] [--no-color] [--width n]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.showHelp {
		fs.Usage()
		return cfg, flag.ErrHelp
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if cfg.width < 0 {
		return cfg, fmt.Errorf("--width must not be negative, got %d", cfg.width)
	}
	return cfg, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	// --- EARLY EXIT ---
	if cfg.version {
		fmt.Fprintln(stdout, "Version:", Version)
		return 0
	}

	cleanup, err := logging.SetupLogging(cfg.logFile)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to setup logging %v\n", err)
		return 1
	}
	defer cleanup()

	if cfg.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log.Println("bikeshare: Started")

	console := prompt.NewConsole(stdin, stdout)
	err = newSession(console, dataset.NewLoader(cfg.dataDir), cfg.width).Run()
	switch {
	case err == nil, errors.Is(err, prompt.ErrInputClosed):
		logging.Infof("bikeshare: Finished")
		return 0
	default:
		logging.Errorf("session failed: %v", err)
		fmt.Fprintln(stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
}

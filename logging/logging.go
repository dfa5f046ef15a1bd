package logging

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// SetupLogging configures logging.
// If filename is empty, logging is disabled (except log.Fatal/panic).
// If filename is set, logs are appended to that file.
func SetupLogging(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	// LogToFile points the std logger at the file and sets the prefix
	f, err := tea.LogToFile(filename, "bikeshare")
	if err != nil {
		return nil, err
	}

	return func() { f.Close() }, nil
}

func Debugf(format string, args ...any) { output("DEBUG", format, args...) }
func Infof(format string, args ...any)  { output("INFO", format, args...) }
func Warnf(format string, args ...any)  { output("WARN", format, args...) }
func Errorf(format string, args ...any) { output("ERROR", format, args...) }

func output(level, format string, args ...any) {
	// 3 = caller of Debugf/Infof/..., so Lshortfile reports the right line
	_ = log.Output(3, level+" "+fmt.Sprintf(format, args...))
}

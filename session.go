package main

import (
	"fmt"

	"github.com/andareed/siftly-bikeshare/dataset"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/prompt"
	"github.com/andareed/siftly-bikeshare/stats"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no."

type session struct {
	console  *prompt.Console
	prompter *prompt.Prompter
	loader   *dataset.Loader
	printer  *stats.Printer
}

func newSession(c *prompt.Console, loader *dataset.Loader, width int) *session {
	return &session{
		console:  c,
		prompter: prompt.NewPrompter(c),
		loader:   loader,
		printer:  &stats.Printer{W: c.Out(), Width: width},
	}
}

// Run repeats prompt, load, report and raw view until the user declines
// to restart.
func (s *session) Run() error {
	for n := 1; ; n++ {
		logging.Infof("Session iteration %d", n)
		if err := s.runOnce(); err != nil {
			return err
		}
		again, err := s.console.Confirm(restartQuestion)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (s *session) runOnce() error {
	sel, err := s.prompter.Filters()
	if err != nil {
		return err
	}
	s.echoSelection(sel)

	table, desc, err := s.loader.Load(sel)
	if err != nil {
		return err
	}

	tt, err := stats.ComputeTimeOfTravel(table)
	if err != nil {
		return fmt.Errorf("time of travel stats: %w", err)
	}
	s.printer.TimeOfTravel(tt, desc)

	st, err := stats.ComputeStations(table)
	if err != nil {
		return fmt.Errorf("station stats: %w", err)
	}
	s.printer.Stations(st, desc)

	td, err := stats.ComputeTripDuration(table)
	if err != nil {
		return fmt.Errorf("trip duration stats: %w", err)
	}
	s.printer.TripDuration(td, desc)

	us, err := stats.ComputeUsers(table, sel.City)
	if err != nil {
		return fmt.Errorf("user stats: %w", err)
	}
	s.printer.Users(us, desc)

	return viewRawData(s.console, table)
}

func (s *session) echoSelection(sel dataset.Selection) {
	city, month, day := sel.Answers()
	s.console.Say("city: %s", city)
	s.console.Say("month: %s", month)
	s.console.Say("day: %s", day)
}

package prompt

import (
	"strings"

	"github.com/andareed/siftly-bikeshare/dataset"
)

const (
	cityQuestion  = "Would you like to see data for Chicago, New York, or Washington?"
	cityGuidance  = "You should choose 1 of 3 city: Chicago, New York, or Washington"
	modeQuestion  = `Would you like to filter the data by "month", "day", "both" or not at all? Type "no" for no time filter`
	modeGuidance  = `You should choose 1 of 4 options: "month", "day", "both" or "no"`
	monthQuestion = "Which month - January, February, March, April, May, or June?"
	monthGuidance = "You should choose: January, February, March, April, May, or June"
	dayQuestion   = "Which day - Please type an integer as: 1=Sunday, 2=Monday, 3=Tuesday, 4=Wednesday, 5=Thursday, 6=Friday, 7=Saturday?"
	dayGuidance   = "You should choose: Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, or Saturday as an integer"
)

type filterMode string

const (
	filterMonth filterMode = "month"
	filterDay   filterMode = "day"
	filterBoth  filterMode = "both"
	filterNone  filterMode = "no"
)

func parseFilterMode(s string) (filterMode, bool) {
	switch m := filterMode(s); m {
	case filterMonth, filterDay, filterBoth, filterNone:
		return m, true
	}
	return "", false
}

// Prompter asks for the city and the optional month and day filters.
type Prompter struct {
	c *Console
}

func NewPrompter(c *Console) *Prompter { return &Prompter{c: c} }

// Filters keeps asking until every answer is valid. The only error it
// returns comes from the console, e.g. ErrInputClosed.
func (p *Prompter) Filters() (dataset.Selection, error) {
	var sel dataset.Selection

	p.c.Say("Hello! Let's explore some US bikeshare data!")

	city, err := ask(p.c, cityQuestion, cityGuidance, dataset.ParseCity)
	if err != nil {
		return sel, err
	}
	sel.City = city

	mode, err := ask(p.c, modeQuestion, modeGuidance, parseFilterMode)
	if err != nil {
		return sel, err
	}

	if mode == filterMonth || mode == filterBoth {
		if sel.Month, err = ask(p.c, monthQuestion, monthGuidance, dataset.ParseMonth); err != nil {
			return sel, err
		}
	}

	if mode == filterDay || mode == filterBoth {
		if sel.Day, err = ask(p.c, dayQuestion, dayGuidance, dataset.ParseDayCode); err != nil {
			return sel, err
		}
		sel.HasDay = true
	}

	p.c.Say("%s", strings.Repeat("-", 60))
	return sel, nil
}

// ask repeats question, printing guidance after each rejected answer,
// until parse accepts one.
func ask[T any](c *Console, question, guidance string, parse func(string) (T, bool)) (T, error) {
	for {
		answer, err := c.Ask(question)
		if err != nil {
			var zero T
			return zero, err
		}
		if v, ok := parse(answer); ok {
			return v, nil
		}
		c.Say("%s", guidance)
	}
}

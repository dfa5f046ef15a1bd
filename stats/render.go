package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-bikeshare/dataset"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const separatorWidth = 60

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Bold(true)
	filterStyle  = lipgloss.NewStyle().Faint(true)
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	timingStyle  = lipgloss.NewStyle().Faint(true)
)

// Printer writes reports to W, wrapping lines longer than Width (0 = no wrap).
type Printer struct {
	W     io.Writer
	Width int
}

func (p *Printer) heading(title string) {
	fmt.Fprintf(p.W, "\n%s\n\n", headingStyle.Render(title))
}

func (p *Printer) line(label, body string, desc *dataset.Description) {
	s := labelStyle.Render(label+":") + " " + body
	if desc != nil {
		s += ", " + filterStyle.Render("Filter: {"+desc.String()+"}")
	}
	if p.Width > 0 {
		s = wordwrap.String(s, p.Width)
	}
	fmt.Fprintf(p.W, "\n%s\n", s)
}

func (p *Printer) missing(msg string) {
	fmt.Fprintln(p.W, missingStyle.Render(msg))
}

func (p *Printer) footer(elapsed time.Duration) {
	fmt.Fprintf(p.W, "\n%s\n", timingStyle.Render(fmt.Sprintf("This took %s seconds.", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))))
	fmt.Fprintln(p.W, strings.Repeat("-", separatorWidth))
}

func (p *Printer) TimeOfTravel(r TimeOfTravel, desc dataset.Description) {
	p.heading("Calculating The Most Frequent Times of Travel...")
	p.line("Most common month", fmt.Sprintf("%d (%s), Count: %d", int(r.Month), r.Month, r.MonthCount), &desc)
	p.line("Most common day of week", fmt.Sprintf("%s, Count: %d", r.Weekday, r.WeekdayCount), &desc)
	p.line("Most common start hour", fmt.Sprintf("%d, Count: %d", r.Hour, r.HourCount), &desc)
	p.footer(r.Elapsed)
}

func (p *Printer) Stations(r Stations, desc dataset.Description) {
	p.heading("Calculating The Most Popular Stations and Trip...")
	p.line("Most common Start Station", fmt.Sprintf("%s, Count: %d", r.Start, r.StartCount), &desc)
	p.line("Most common End Station", fmt.Sprintf("%s, Count: %d", r.End, r.EndCount), &desc)
	p.line("Most frequent combination",
		fmt.Sprintf("Start Station: %q and End Station: %q, Count: %d", r.Pair.Start, r.Pair.End, r.PairCount), &desc)
	p.footer(r.Elapsed)
}

func (p *Printer) TripDuration(r TripDuration, desc dataset.Description) {
	p.heading("Calculating Trip Duration...")
	p.line("Total travel time", fmt.Sprintf("%q (%s) Count: %d", formatSeconds(r.Total), humanSeconds(r.Total), r.Count), &desc)
	p.line("Average travel time", fmt.Sprintf("%q (%s) Count: %d", formatSeconds(r.Mean), humanSeconds(r.Mean), r.Count), &desc)
	p.footer(r.Elapsed)
}

func (p *Printer) Users(r Users, desc dataset.Description) {
	p.heading("Calculating User Stats...")
	p.line("User Type", formatCounts(r.UserTypes), &desc)

	if r.GenderAvailable {
		p.line("Gender", formatCounts(r.Genders), &desc)
	} else {
		p.missing(fmt.Sprintf("There is no data of Gender for city: %s.", r.City.DisplayName()))
	}

	if r.BirthYearAvailable {
		p.line("Earliest year of birth", strconv.Itoa(r.EarliestBirthYear), nil)
		p.line("Most recent year of birth", strconv.Itoa(r.LatestBirthYear), nil)
		p.line("Most common year of birth", strconv.Itoa(r.CommonBirthYear), nil)
	} else {
		p.missing(fmt.Sprintf("There is no data of year of birth for city: %s.", r.City.DisplayName()))
	}
	p.footer(r.Elapsed)
}

func formatCounts(counts []CategoryCount) string {
	if len(counts) == 0 {
		return "none"
	}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("%s: %d", c.Value, c.Count)
	}
	return strings.Join(parts, ", ")
}

func formatSeconds(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func humanSeconds(v float64) string {
	return (time.Duration(v * float64(time.Second))).Round(time.Second).String()
}

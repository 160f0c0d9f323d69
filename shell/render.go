package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/stats"
)

const noDataMessage = "No data available for the selected filters."

var separator = strings.Repeat("-", 40)

// Renderer writes reports and trips as human readable text
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render writes report followed by the time it took and a separator
func (r *Renderer) Render(report stats.Report) {
	switch rep := report.(type) {
	case *stats.TimeReport:
		r.renderTimeReport(rep)
	case *stats.StationReport:
		r.renderStationReport(rep)
	case *stats.DurationReport:
		r.renderDurationReport(rep)
	case *stats.UserReport:
		r.renderUserReport(rep)
	default:
		fmt.Fprintf(r.out, "\nUnknown report %s\n", report.GetMetadata().GetType())
	}

	fmt.Fprintf(r.out, "\nThis took %v seconds.\n", report.GetMetadata().GetElapsed().Seconds())
	fmt.Fprintln(r.out, separator)
}

// RenderSeparator writes the line shown between sections
func (r *Renderer) RenderSeparator() {
	fmt.Fprintln(r.out, separator)
}

func (r *Renderer) renderTimeReport(report *stats.TimeReport) {
	fmt.Fprint(r.out, "\nCalculating The Most Frequent Times of Travel...\n\n")
	if report.IsEmpty() {
		fmt.Fprintln(r.out, noDataMessage)
		return
	}

	fmt.Fprintf(r.out, "Most common month for trips: %s\n", strings.Join(report.Months, ", "))
	fmt.Fprintf(r.out, "Most common day of the week for trips: %s\n", strings.Join(report.Weekdays, ", "))
	fmt.Fprintf(r.out, "Most common start hour for trips: %s\n", joinInts(report.Hours))
}

func (r *Renderer) renderStationReport(report *stats.StationReport) {
	fmt.Fprint(r.out, "\nCalculating The Most Popular Stations and Trip...\n\n")
	if report.IsEmpty() {
		fmt.Fprintln(r.out, noDataMessage)
		return
	}

	fmt.Fprintf(r.out, "Most common start station for trips: %s\n", strings.Join(report.StartStations, ", "))
	fmt.Fprintf(r.out, "Most common end station for trips: %s\n", strings.Join(report.EndStations, ", "))
	fmt.Fprintf(r.out, "Most frequent combination of start station and end station trip: %s\n", strings.Join(report.Routes, ", "))
}

func (r *Renderer) renderDurationReport(report *stats.DurationReport) {
	fmt.Fprint(r.out, "\nCalculating Trip Duration...\n\n")
	if report.IsEmpty() {
		fmt.Fprintln(r.out, noDataMessage)
		return
	}

	b := report.Breakdown
	fmt.Fprintf(r.out, "Total travel time is %s seconds and is equivalent to %d day(s) %d hour(s) %d minute(s) %s second(s)\n",
		formatFloat(report.Total), b.Days, b.Hours, b.Minutes, formatFloat(b.Seconds))
	fmt.Fprintf(r.out, "Average travel time is %s seconds\n", formatFloat(report.Average))
}

func (r *Renderer) renderUserReport(report *stats.UserReport) {
	fmt.Fprint(r.out, "\nCalculating User Stats...\n\n")
	if report.IsEmpty() {
		fmt.Fprintln(r.out, noDataMessage)
		return
	}

	city := filter.Title(report.GetMetadata().GetCity())

	fmt.Fprintln(r.out, "User types and their count:")
	r.renderValueCounts(report.UserTypes)

	if !report.GenderAvailable {
		fmt.Fprintf(r.out, "Gender data is not available for %s\n", city)
	} else {
		fmt.Fprintln(r.out, "Gender count:")
		r.renderValueCounts(report.Genders)
		if report.GenderMissing > 0 {
			fmt.Fprintf(r.out, "Trips without gender: %d\n", report.GenderMissing)
		}
	}

	if !report.BirthYearAvailable {
		fmt.Fprintf(r.out, "Birth Year data is not available for %s\n", city)
		return
	}
	if !report.HasBirthYears() {
		fmt.Fprintln(r.out, "No birth year recorded for the selected trips.")
		return
	}
	fmt.Fprintf(r.out, "Earliest Birth Year: %d\n", report.EarliestBirthYear)
	fmt.Fprintf(r.out, "Most Recent Birth Year: %d\n", report.MostRecentBirthYear)
	fmt.Fprintf(r.out, "Most Common Birth Year: %s\n", joinInts(report.CommonBirthYears))
}

func (r *Renderer) renderValueCounts(valueCounts []modecounter.ValueCount[string]) {
	w := tabwriter.NewWriter(r.out, 0, 0, 4, ' ', 0)
	for _, vc := range valueCounts {
		fmt.Fprintf(w, "  %s\t%d\n", vc.Value, vc.Count)
	}
	_ = w.Flush()
}

// RenderRows writes records as a table. firstRow is the position of records[0] in the dataset
func (r *Renderer) RenderRows(header []string, records []trip.TripRecord, firstRow int) {
	w := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)

	columns := append([]string{""}, header...)
	columns = append(columns, "month", "day_of_week", "hour")
	fmt.Fprintln(w, strings.Join(columns, "\t"))

	for idx, record := range records {
		values := append([]string{strconv.Itoa(firstRow + idx)}, record.Raw...)
		values = append(values, record.Month, record.Weekday, strconv.Itoa(record.Hour))
		fmt.Fprintln(w, strings.Join(values, "\t"))
	}
	_ = w.Flush()
}

func joinInts(values []int) string {
	formatted := make([]string, 0, len(values))
	for _, value := range values {
		formatted = append(formatted, strconv.Itoa(value))
	}
	return strings.Join(formatted, ", ")
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All is the value used to skip the month or day filter
const All = "all"

var (
	Cities   = []string{"chicago", "new york city", "washington"}
	Months   = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
	Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	titleCaser = cases.Title(language.English)
)

// FilterSelection the filters chosen by the user. All the values are lower case
// + City: one of Cities
// + Month: one of Months or "all"
// + Day: one of Weekdays or "all"
type FilterSelection struct {
	City  string `json:"city" validate:"required,city"`
	Month string `json:"month" validate:"required,month"`
	Day   string `json:"day" validate:"required,weekday"`
}

func NewFilterSelection(city string, month string, day string) FilterSelection {
	return FilterSelection{
		City:  Normalize(city),
		Month: Normalize(month),
		Day:   Normalize(day),
	}
}

// FilterByMonth returns true if the selection narrows the trips by month
func (fs FilterSelection) FilterByMonth() bool {
	return fs.Month != All
}

// FilterByDay returns true if the selection narrows the trips by day of week
func (fs FilterSelection) FilterByDay() bool {
	return fs.Day != All
}

// GetMonthName returns the month using the capitalization of the datasets, e.g. "June"
func (fs FilterSelection) GetMonthName() string {
	return Title(fs.Month)
}

// GetDayName returns the day using the capitalization of the datasets, e.g. "Monday"
func (fs FilterSelection) GetDayName() string {
	return Title(fs.Day)
}

// Normalize trims and lower cases user input
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Title returns value with each word capitalized, e.g. "new york city" -> "New York City"
func Title(value string) string {
	return titleCaser.String(value)
}

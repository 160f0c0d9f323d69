package trip

import (
	"time"
)

// TripRecord struct that contains the data of a single trip
// + StartTime: date and time in which the trip begins, as written in the dataset
// + EndTime: date and time in which the trip ends. Zero value if the dataset does not have it
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + Duration: duration of the trip in seconds
// + UserType: type of user (Subscriber, Customer, ...). Empty if missing
// + Gender: gender of the user. Empty if missing or if the city does not record it
// + BirthYear: year of birth of the user. Only valid when HasBirthYear is true
// + Month, Weekday, Hour: fields derived from StartTime
// + Raw: the row as it was read from the file
type TripRecord struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender"`
	BirthYear    int       `json:"birth_year"`
	HasBirthYear bool      `json:"has_birth_year"`
	Month        string    `json:"month"`
	Weekday      string    `json:"weekday"`
	Hour         int       `json:"hour"`
	Raw          []string  `json:"-"`
}

// NewTripRecord creates a TripRecord and derives Month, Weekday and Hour from startTime.
// No timezone conversion is performed: the derived fields are the calendar decomposition
// of startTime in the location it carries.
func NewTripRecord(startTime time.Time, startStation string, endStation string, duration float64, userType string) TripRecord {
	return TripRecord{
		StartTime:    startTime,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
		Month:        startTime.Month().String(),
		Weekday:      startTime.Weekday().String(),
		Hour:         startTime.Hour(),
	}
}

// GetRoute returns the start and end station joined by " - "
func (tr TripRecord) GetRoute() string {
	return tr.StartStation + " - " + tr.EndStation
}

// Table an ordered sequence of trips of a city
// + City: city which belongs the data
// + Header: column names as read from the dataset
// + Records: trips in the same order as the dataset
// + HasGender: true if the dataset records the gender of the users
// + HasBirthYear: true if the dataset records the birth year of the users
type Table struct {
	City         string
	Header       []string
	Records      []TripRecord
	HasGender    bool
	HasBirthYear bool
}

func NewTable(city string, header []string, records []TripRecord, hasGender bool, hasBirthYear bool) *Table {
	return &Table{
		City:         city,
		Header:       header,
		Records:      records,
		HasGender:    hasGender,
		HasBirthYear: hasBirthYear,
	}
}

// Len returns the amount of trips in the table
func (t *Table) Len() int {
	return len(t.Records)
}

func (t *Table) IsEmpty() bool {
	return len(t.Records) == 0
}

// WithRecords returns a new Table with the same City, Header and columns availability but other records
func (t *Table) WithRecords(records []TripRecord) *Table {
	header := make([]string, len(t.Header))
	copy(header, t.Header)
	return NewTable(t.City, header, records, t.HasGender, t.HasBirthYear)
}

// Page returns the records in [start, start+size). The result is empty if start is out of range
func (t *Table) Page(start int, size int) []TripRecord {
	if start < 0 || size <= 0 || start >= len(t.Records) {
		return nil
	}
	end := start + size
	if end > len(t.Records) {
		end = len(t.Records)
	}
	return t.Records[start:end]
}

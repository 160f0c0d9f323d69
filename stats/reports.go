package stats

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities"
)

const (
	TimeStatsType     = "time-stats"
	StationStatsType  = "station-stats"
	DurationStatsType = "duration-stats"
	UserStatsType     = "user-stats"
)

// Report is implemented by the result of every aggregator
type Report interface {
	GetMetadata() entities.Metadata
	// IsEmpty returns true if the report was computed from a table without trips
	IsEmpty() bool
}

// TimeReport most frequent times of travel. Ties are reported in calendar order
type TimeReport struct {
	Metadata entities.Metadata `json:"metadata"`
	Empty    bool              `json:"empty"`
	Months   []string          `json:"months"`
	Weekdays []string          `json:"weekdays"`
	Hours    []int             `json:"hours"`
}

func (r *TimeReport) GetMetadata() entities.Metadata { return r.Metadata }
func (r *TimeReport) IsEmpty() bool                  { return r.Empty }

// StationReport most popular stations and trip. Ties are reported in lexical order
type StationReport struct {
	Metadata      entities.Metadata `json:"metadata"`
	Empty         bool              `json:"empty"`
	StartStations []string          `json:"start_stations"`
	EndStations   []string          `json:"end_stations"`
	Routes        []string          `json:"routes"`
}

func (r *StationReport) GetMetadata() entities.Metadata { return r.Metadata }
func (r *StationReport) IsEmpty() bool                  { return r.Empty }

// DurationReport total and average trip duration, in seconds
type DurationReport struct {
	Metadata  entities.Metadata             `json:"metadata"`
	Empty     bool                          `json:"empty"`
	Total     float64                       `json:"total"`
	Breakdown durationaccumulator.Breakdown `json:"breakdown"`
	Average   float64                       `json:"average"`
}

func (r *DurationReport) GetMetadata() entities.Metadata { return r.Metadata }
func (r *DurationReport) IsEmpty() bool                  { return r.Empty }

// UserReport statistics on bikeshare users.
// Gender and birth year fields are only meaningful when the matching *Available field is true
type UserReport struct {
	Metadata            entities.Metadata                `json:"metadata"`
	Empty               bool                             `json:"empty"`
	UserTypes           []modecounter.ValueCount[string] `json:"user_types"`
	GenderAvailable     bool                             `json:"gender_available"`
	Genders             []modecounter.ValueCount[string] `json:"genders"`
	GenderMissing       int                              `json:"gender_missing"`
	BirthYearAvailable  bool                             `json:"birth_year_available"`
	EarliestBirthYear   int                              `json:"earliest_birth_year"`
	MostRecentBirthYear int                              `json:"most_recent_birth_year"`
	CommonBirthYears    []int                            `json:"common_birth_years"`
	BirthYearMissing    int                              `json:"birth_year_missing"`
}

func (r *UserReport) GetMetadata() entities.Metadata { return r.Metadata }
func (r *UserReport) IsEmpty() bool                  { return r.Empty }

// HasBirthYears returns true if at least one trip of the report had a known birth year
func (r *UserReport) HasBirthYears() bool {
	return len(r.CommonBirthYears) > 0
}

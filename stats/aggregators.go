package stats

import (
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/trip"
)

// UnknownUserType is the label used to count trips without user type
const UnknownUserType = "Unknown"

// Aggregator computes a Report from a table of trips
type Aggregator struct {
	Type      string
	Aggregate func(table *trip.Table) Report
}

// GetAggregators returns the aggregators in the order in which their reports are shown
func GetAggregators() []Aggregator {
	return []Aggregator{
		{Type: TimeStatsType, Aggregate: func(table *trip.Table) Report { return TimeStats(table) }},
		{Type: StationStatsType, Aggregate: func(table *trip.Table) Report { return StationStats(table) }},
		{Type: DurationStatsType, Aggregate: func(table *trip.Table) Report { return DurationStats(table) }},
		{Type: UserStatsType, Aggregate: func(table *trip.Table) Report { return UserStats(table) }},
	}
}

// RunAll runs every aggregator over table, in order
func RunAll(table *trip.Table) []Report {
	aggregators := GetAggregators()
	reports := make([]Report, 0, len(aggregators))
	for _, aggregator := range aggregators {
		report := aggregator.Aggregate(table)
		log.Debugf("[component: stats][aggregator: %s][status: OK] report computed from %v trips in %s",
			aggregator.Type, table.Len(), report.GetMetadata().GetElapsed())
		reports = append(reports, report)
	}
	return reports
}

// TimeStats computes the most common month, day of week and start hour
func TimeStats(table *trip.Table) *TimeReport {
	start := time.Now()

	months := modecounter.NewModeCounter[int]("month")
	weekdays := modecounter.NewModeCounter[int]("day_of_week")
	hours := modecounter.NewModeCounter[int]("hour")
	for _, record := range table.Records {
		months.UpdateCounter(int(record.StartTime.Month()))
		weekdays.UpdateCounter(weekdayIndex(record.StartTime.Weekday()))
		hours.UpdateCounter(record.Hour)
	}

	report := &TimeReport{
		Empty: table.IsEmpty(),
		Hours: hours.GetModes(),
	}
	for _, month := range months.GetModes() {
		report.Months = append(report.Months, time.Month(month).String())
	}
	for _, weekday := range weekdays.GetModes() {
		report.Weekdays = append(report.Weekdays, weekdayFromIndex(weekday).String())
	}

	report.Metadata = entities.NewMetadata(table.City, TimeStatsType, table.Len(), time.Since(start))
	return report
}

// StationStats computes the most common start station, end station and trip
func StationStats(table *trip.Table) *StationReport {
	start := time.Now()

	startStations := modecounter.NewModeCounter[string]("start_station")
	endStations := modecounter.NewModeCounter[string]("end_station")
	routes := modecounter.NewModeCounter[string]("route")
	for _, record := range table.Records {
		startStations.UpdateCounter(record.StartStation)
		endStations.UpdateCounter(record.EndStation)
		routes.UpdateCounter(record.GetRoute())
	}

	return &StationReport{
		Metadata:      entities.NewMetadata(table.City, StationStatsType, table.Len(), time.Since(start)),
		Empty:         table.IsEmpty(),
		StartStations: startStations.GetModes(),
		EndStations:   endStations.GetModes(),
		Routes:        routes.GetModes(),
	}
}

// DurationStats computes the total and the average trip duration
func DurationStats(table *trip.Table) *DurationReport {
	start := time.Now()

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, record := range table.Records {
		accumulator.UpdateAccumulator(record.Duration)
	}

	report := &DurationReport{
		Empty:     table.IsEmpty(),
		Total:     accumulator.GetTotalDuration(),
		Breakdown: accumulator.GetBreakdown(),
	}
	if !report.Empty {
		report.Average = accumulator.GetAverageDuration()
	}

	report.Metadata = entities.NewMetadata(table.City, DurationStatsType, table.Len(), time.Since(start))
	return report
}

// UserStats computes the count of each user type and, when the city records them,
// the count of each gender and the earliest, most recent and most common birth years
func UserStats(table *trip.Table) *UserReport {
	start := time.Now()

	userTypes := modecounter.NewModeCounter[string]("user_type")
	genders := modecounter.NewModeCounter[string]("gender")
	birthYears := modecounter.NewModeCounter[int]("birth_year")
	report := &UserReport{
		Empty:              table.IsEmpty(),
		GenderAvailable:    table.HasGender,
		BirthYearAvailable: table.HasBirthYear,
	}

	for _, record := range table.Records {
		userType := record.UserType
		if userType == "" {
			userType = UnknownUserType
		}
		userTypes.UpdateCounter(userType)

		if table.HasGender {
			if record.Gender == "" {
				report.GenderMissing += 1
			} else {
				genders.UpdateCounter(record.Gender)
			}
		}

		if table.HasBirthYear {
			if record.HasBirthYear {
				birthYears.UpdateCounter(record.BirthYear)
			} else {
				report.BirthYearMissing += 1
			}
		}
	}

	report.UserTypes = userTypes.GetValueCounts()
	if report.GenderAvailable {
		report.Genders = genders.GetValueCounts()
	}
	if report.BirthYearAvailable && !birthYears.IsEmpty() {
		report.EarliestBirthYear, _ = birthYears.GetMin()
		report.MostRecentBirthYear, _ = birthYears.GetMax()
		report.CommonBirthYears = birthYears.GetModes()
	}

	report.Metadata = entities.NewMetadata(table.City, UserStatsType, table.Len(), time.Since(start))
	return report
}

// weekdayIndex returns the position of weekday in a week that begins on Monday
func weekdayIndex(weekday time.Weekday) int {
	return (int(weekday) + 6) % 7
}

func weekdayFromIndex(idx int) time.Weekday {
	return time.Weekday((idx + 1) % 7)
}


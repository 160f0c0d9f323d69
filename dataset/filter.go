package dataset

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

// Filter returns a new Table with the trips of table that match the month and the day of selection.
// Both conditions must hold. table is not modified
func Filter(table *trip.Table, selection filter.FilterSelection) *trip.Table {
	filterByMonth := selection.FilterByMonth()
	filterByDay := selection.FilterByDay()
	monthName := selection.GetMonthName()
	dayName := selection.GetDayName()

	records := make([]trip.TripRecord, 0, table.Len())
	for _, record := range table.Records {
		if filterByMonth && record.Month != monthName {
			continue
		}
		if filterByDay && record.Weekday != dayName {
			continue
		}
		records = append(records, record)
	}

	return table.WithRecords(records)
}

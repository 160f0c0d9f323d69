package durationaccumulator

import "math"

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// DurationAccumulator struct that collects the duration of trips
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations of the trips, in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

// Breakdown a duration in seconds split in days, hours, minutes and seconds
type Breakdown struct {
	Days    int64   `json:"days"`
	Hours   int64   `json:"hours"`
	Minutes int64   `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetTotalDuration() float64 {
	return da.TotalDuration
}

// GetAverageDuration returns the mean duration. The value is not rounded
func (da *DurationAccumulator) GetAverageDuration() float64 {
	if da.Counter == 0 {
		panic("[DurationAccumulator] cannot get average duration, counter is zero")
	}
	return da.TotalDuration / float64(da.Counter)
}

// GetBreakdown splits the total duration in days, hours, minutes and seconds
func (da *DurationAccumulator) GetBreakdown() Breakdown {
	return Decompose(da.TotalDuration)
}

// Decompose splits total (seconds, non-negative) using a floor division chain:
// days = total // 86400, hours = (total % 86400) // 3600, minutes = (total % 3600) // 60, seconds = total % 60
func Decompose(total float64) Breakdown {
	return Breakdown{
		Days:    int64(math.Floor(total / secondsPerDay)),
		Hours:   int64(math.Floor(math.Mod(total, secondsPerDay) / secondsPerHour)),
		Minutes: int64(math.Floor(math.Mod(total, secondsPerHour) / secondsPerMinute)),
		Seconds: math.Mod(total, secondsPerMinute),
	}
}

// GetTotalSeconds rebuilds the amount of seconds of the breakdown
func (b Breakdown) GetTotalSeconds() float64 {
	return float64(b.Days*secondsPerDay+b.Hours*secondsPerHour+b.Minutes*secondsPerMinute) + b.Seconds
}

package entities

import "time"

// Metadata this struct contains extra information about a generated report
// + City: city which belongs the data
// + Type: this field helps us to recognize what type of report is
// + Rows: amount of trips the report was computed from
// + Elapsed: time spent computing the report
type Metadata struct {
	City    string        `json:"city"`
	Type    string        `json:"type"`
	Rows    int           `json:"rows"`
	Elapsed time.Duration `json:"elapsed"`
}

func NewMetadata(city string, reportType string, rows int, elapsed time.Duration) Metadata {
	return Metadata{
		City:    city,
		Type:    reportType,
		Rows:    rows,
		Elapsed: elapsed,
	}
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}

func (m Metadata) GetRows() int {
	return m.Rows
}

func (m Metadata) GetElapsed() time.Duration {
	return m.Elapsed
}

package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

const loaderStr = "loader"

var (
	timestampLayouts = []string{"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2006-01-02 15:04"}
	nanValues        = []string{"", "NA", "NaN", "nan"}
)

// Columns contains the name of each column to analyze
type Columns struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	Duration     string `yaml:"duration" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender"`
	BirthYear    string `yaml:"birth_year"`
}

// DefaultColumns returns the column names used by the bikeshare datasets
func DefaultColumns() Columns {
	return Columns{
		StartTime:    "Start Time",
		EndTime:      "End Time",
		StartStation: "Start Station",
		EndStation:   "End Station",
		Duration:     "Trip Duration",
		UserType:     "User Type",
		Gender:       "Gender",
		BirthYear:    "Birth Year",
	}
}

// LoaderConfig parameters of the Loader
// + DataDir: directory that contains the dataset files
// + Delimiter: field delimiter of the dataset files
// + Cities: dataset filename of each city
// + Columns: names of the columns to analyze
type LoaderConfig struct {
	DataDir   string
	Delimiter rune
	Cities    map[string]string
	Columns   Columns
}

// Loader reads the trips of a city into a trip.Table
type Loader struct {
	dataDir   string
	delimiter rune
	cities    map[string]string
	columns   Columns
}

func NewLoader(loaderConfig LoaderConfig) *Loader {
	cities := make(map[string]string, len(loaderConfig.Cities))
	for city, filename := range loaderConfig.Cities {
		cities[city] = filename
	}

	delimiter := loaderConfig.Delimiter
	if delimiter == 0 {
		delimiter = ','
	}

	return &Loader{
		dataDir:   loaderConfig.DataDir,
		delimiter: delimiter,
		cities:    cities,
		columns:   loaderConfig.Columns,
	}
}

func (l *Loader) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", loaderStr, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", loaderStr, method, message)
}

// GetFilepath returns the path of the dataset file of city
func (l *Loader) GetFilepath(city string) (string, bool) {
	filename, ok := l.cities[city]
	if !ok {
		return "", false
	}
	return filepath.Join(l.dataDir, filename), true
}

// Load reads the dataset of city. Any malformed row fails the whole load with a *DataLoadError
func (l *Loader) Load(city string) (*trip.Table, error) {
	dataFilepath, ok := l.GetFilepath(city)
	if !ok {
		return nil, newDataLoadError(city, "", 0, ErrUnknownCity)
	}

	dataFile, err := os.Open(dataFilepath)
	if err != nil {
		log.Debug(l.getLogMessage("Load", fmt.Sprintf("error opening %s", dataFilepath), err))
		return nil, newDataLoadError(city, dataFilepath, 0, fmt.Errorf("%w: %s", ErrOpenFile, err))
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Error(l.getLogMessage("Load", fmt.Sprintf("error closing %s", dataFilepath), err))
		}
	}(dataFile)

	start := time.Now()
	table, err := l.Read(city, dataFilepath, dataFile)
	if err != nil {
		return nil, err
	}

	log.Info(l.getLogMessage("Load", fmt.Sprintf("loaded %v trips of %s in %s", table.Len(), city, time.Since(start)), nil))
	return table, nil
}

// Read parses the dataset of city from reader. dataFilepath is only used in errors.
// A file with a header and no trips is loaded as an empty Table
func (l *Loader) Read(city string, dataFilepath string, reader io.Reader) (*trip.Table, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, newDataLoadError(city, dataFilepath, 0, fmt.Errorf("%w: %s", ErrParseFile, err))
	}

	header, hasRows, err := l.readHeader(data)
	if err != nil {
		log.Debug(l.getLogMessage("Read", "error reading header", err))
		return nil, newDataLoadError(city, dataFilepath, 0, fmt.Errorf("%w: %s", ErrParseFile, err))
	}

	if column, ok := duplicatedColumn(header); ok {
		return nil, newDataLoadError(city, dataFilepath, 0, fmt.Errorf("%w: duplicated column %q", ErrParseFile, column))
	}

	required := []string{
		l.columns.StartTime,
		l.columns.StartStation,
		l.columns.EndStation,
		l.columns.Duration,
		l.columns.UserType,
	}
	for _, column := range required {
		if utils.IndexOfString(column, header) < 0 {
			return nil, newDataLoadError(city, dataFilepath, 0, fmt.Errorf("%w: %s", ErrMissingColumn, column))
		}
	}

	hasGender := hasColumn(header, l.columns.Gender)
	hasBirthYear := hasColumn(header, l.columns.BirthYear)
	if !hasRows {
		log.Warn(l.getLogMessage("Read", fmt.Sprintf("%s has no trips", dataFilepath), nil))
		return trip.NewTable(city, header, nil, hasGender, hasBirthYear), nil
	}

	df := dataframe.ReadCSV(
		bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithDelimiter(l.delimiter),
		dataframe.WithLazyQuotes(true),
		dataframe.NaNValues(nanValues),
	)
	if df.Err != nil {
		log.Debug(l.getLogMessage("Read", "error parsing csv", df.Err))
		return nil, newDataLoadError(city, dataFilepath, 0, fmt.Errorf("%w: %s", ErrParseFile, df.Err))
	}

	startTimes := columnValues(df, header, l.columns.StartTime)
	endTimes := columnValues(df, header, l.columns.EndTime)
	startStations := columnValues(df, header, l.columns.StartStation)
	endStations := columnValues(df, header, l.columns.EndStation)
	durations := columnValues(df, header, l.columns.Duration)
	userTypes := columnValues(df, header, l.columns.UserType)
	genders := columnValues(df, header, l.columns.Gender)
	birthYears := columnValues(df, header, l.columns.BirthYear)

	rawRows := df.Records()[1:]
	records := make([]trip.TripRecord, 0, df.Nrow())
	for idx := 0; idx < df.Nrow(); idx++ {
		row := idx + 1

		startTime, err := parseTimestamp(startTimes[idx])
		if err != nil {
			return nil, newDataLoadError(city, dataFilepath, row, fmt.Errorf("%w: %q", ErrInvalidTimestamp, startTimes[idx]))
		}

		duration, err := strconv.ParseFloat(strings.TrimSpace(durations[idx]), 64)
		if err != nil {
			return nil, newDataLoadError(city, dataFilepath, row, fmt.Errorf("%w: %q", ErrInvalidDuration, durations[idx]))
		}

		record := trip.NewTripRecord(startTime, startStations[idx], endStations[idx], duration, userTypes[idx])

		if endTimes != nil {
			// end time is informative only, a malformed one is left as zero value
			if endTime, err := parseTimestamp(endTimes[idx]); err == nil {
				record.EndTime = endTime
			}
		}

		if genders != nil {
			record.Gender = genders[idx]
		}

		if birthYears != nil && birthYears[idx] != "" {
			birthYear, err := strconv.ParseFloat(strings.TrimSpace(birthYears[idx]), 64)
			if err != nil {
				return nil, newDataLoadError(city, dataFilepath, row, fmt.Errorf("%w: %q", ErrInvalidBirthYear, birthYears[idx]))
			}
			record.BirthYear = int(birthYear)
			record.HasBirthYear = true
		}

		record.Raw = rawRows[idx]
		records = append(records, record)
	}

	log.Debug(l.getLogMessage("Read", fmt.Sprintf("parsed %v rows of %s", len(records), city), nil))
	return trip.NewTable(city, header, records, hasGender, hasBirthYear), nil
}

// readHeader returns the column names as written in the file, unnamed columns included,
// and whether at least one record follows the header
func (l *Loader) readHeader(data []byte) ([]string, bool, error) {
	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.Comma = l.delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, false, ErrEmptyFile
	}
	if err != nil {
		return nil, false, err
	}

	// a malformed first record is reported by the dataframe parser
	_, err = csvReader.Read()
	return header, !errors.Is(err, io.EOF), nil
}

func hasColumn(header []string, column string) bool {
	return column != "" && utils.IndexOfString(column, header) >= 0
}

// duplicatedColumn returns the first named column that appears more than once in header
func duplicatedColumn(header []string) (string, bool) {
	seen := make(map[string]bool, len(header))
	for _, column := range header {
		column = strings.TrimSpace(column)
		if column == "" {
			continue
		}
		if seen[column] {
			return column, true
		}
		seen[column] = true
	}
	return "", false
}

// columnValues returns the values of column as strings, with missing values as "".
// The result is nil if the dataset does not have the column
func columnValues(df dataframe.DataFrame, header []string, column string) []string {
	if column == "" {
		return nil
	}

	idx := utils.IndexOfString(column, header)
	if idx < 0 {
		return nil
	}

	// the dataframe renames unnamed columns, positions are kept
	values := df.Col(df.Names()[idx])
	records := values.Records()
	missing := values.IsNaN()
	for i := range records {
		if missing[i] {
			records[i] = ""
		}
	}
	return records
}

func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var err error
	for _, layout := range timestampLayouts {
		var timestamp time.Time
		timestamp, err = time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, err
}

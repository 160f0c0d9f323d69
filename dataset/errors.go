package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCity      = errors.New("unknown city")
	ErrOpenFile         = errors.New("error opening dataset file")
	ErrParseFile        = errors.New("error parsing dataset file")
	ErrEmptyFile        = errors.New("file has no header")
	ErrMissingColumn    = errors.New("missing required column")
	ErrInvalidTimestamp = errors.New("invalid start time")
	ErrInvalidDuration  = errors.New("invalid trip duration")
	ErrInvalidBirthYear = errors.New("invalid birth year")
)

// DataLoadError is returned when the dataset of a city cannot be loaded
// + City: city requested
// + Filepath: path of the dataset file, empty if it could not be resolved
// + Row: 1-based data row that caused the error, 0 if the error is not related to a row
// + Err: one of the Err* sentinels of this package, possibly wrapping the cause
type DataLoadError struct {
	City     string
	Filepath string
	Row      int
	Err      error
}

func newDataLoadError(city string, filepath string, row int, err error) *DataLoadError {
	return &DataLoadError{
		City:     city,
		Filepath: filepath,
		Row:      row,
		Err:      err,
	}
}

func (e *DataLoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("error loading data of %s from %s (row %d): %s", e.City, e.Filepath, e.Row, e.Err)
	}
	if e.Filepath != "" {
		return fmt.Sprintf("error loading data of %s from %s: %s", e.City, e.Filepath, e.Err)
	}
	return fmt.Sprintf("error loading data of %s: %s", e.City, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

package shell

import (
	"errors"
	"fmt"

	"bikeshare/domain/entities/filter"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrInvalidSelection = errors.New("invalid filter selection")

	validate = filter.NewValidator()
)

// ValidateCity normalizes input and checks that it is one of the supported cities
func ValidateCity(input string) (string, error) {
	return validateValue(input, "city")
}

// ValidateMonth normalizes input and checks that it is a month name or "all"
func ValidateMonth(input string) (string, error) {
	return validateValue(input, "month")
}

// ValidateDay normalizes input and checks that it is a day of week or "all"
func ValidateDay(input string) (string, error) {
	return validateValue(input, "weekday")
}

// ValidateSelection checks every field of selection
func ValidateSelection(selection filter.FilterSelection) error {
	if err := validate.Struct(selection); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidSelection, err)
	}
	return nil
}

func validateValue(input string, tag string) (string, error) {
	value := filter.Normalize(input)
	if err := validate.Var(value, "required,"+tag); err != nil {
		return "", fmt.Errorf("%w: %q is not a valid %s", ErrInvalidInput, input, tag)
	}
	return value, nil
}

package filter

import (
	"github.com/go-playground/validator/v10"

	"bikeshare/utils"
)

// NewValidator returns a validator with the tags used by the filters registered:
// + city: one of Cities
// + month: one of Months or "all"
// + weekday: one of Weekdays or "all"
func NewValidator() *validator.Validate {
	v := validator.New()

	_ = v.RegisterValidation("city", isValidCity)
	_ = v.RegisterValidation("month", isValidMonth)
	_ = v.RegisterValidation("weekday", isValidWeekday)

	return v
}

func isValidCity(fl validator.FieldLevel) bool {
	return utils.ContainsString(fl.Field().String(), Cities)
}

func isValidMonth(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == All || utils.ContainsString(value, Months)
}

func isValidWeekday(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == All || utils.ContainsString(value, Weekdays)
}

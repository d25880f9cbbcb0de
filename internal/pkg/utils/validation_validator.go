package utils

import (
	"booking-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	bookingDatePattern = regexp.MustCompile(constvars.RegexDateYYYYMMDD)
	bookingTimePattern = regexp.MustCompile(constvars.RegexTimeHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonTagName)
	validate.RegisterValidation("booking_date", validateBookingDate)
	validate.RegisterValidation("booking_time", validateBookingTime)
	validate.RegisterValidation("notblank", validateNotBlank)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// jsonTagName reports fields by their JSON name so messages read the way
// clients send them (startTime, not StartTime).
func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateBookingDate(fl validator.FieldLevel) bool {
	return bookingDatePattern.MatchString(fl.Field().String())
}

func validateBookingTime(fl validator.FieldLevel) bool {
	return bookingTimePattern.MatchString(fl.Field().String())
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

package validator

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/catalog"
)

// CustomValidator wraps go-playground struct validation for API
// payloads, with domain rules registered against the catalog.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator(c *catalog.Catalog) *CustomValidator {
	v := validator.New()
	v.RegisterValidation("known_city", func(fl validator.FieldLevel) bool {
		return c.KnownCity(fl.Field().String())
	})
	v.RegisterValidation("travel_class", validateTravelClass)
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func validateTravelClass(fl validator.FieldLevel) bool {
	switch models.TravelClass(fl.Field().String()) {
	case models.ClassEconomy, models.ClassBusiness, models.ClassFirst:
		return true
	}
	return false
}

const (
	dateLayout         = "2006-01-02"
	minPassportLength  = 6
	errInvalidDOB      = "Invalid date of birth format"
	errFutureDOB       = "Date of birth cannot be in the future"
	errShortPassportNo = "Passport number must be at least 6 characters"
)

// ValidatePassenger returns the list of failures for one passenger; an
// empty list means the record is acceptable. Date parsing fails closed:
// anything that does not parse is reported as a format error.
func ValidatePassenger(p models.Passenger) []string {
	var failures []string

	required := []struct {
		label string
		value string
	}{
		{"First Name", p.FirstName},
		{"Last Name", p.LastName},
		{"Date Of Birth", p.DateOfBirth},
		{"Nationality", p.Nationality},
		{"Passport Number", p.PassportNumber},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			failures = append(failures, f.label+" is required")
		}
	}

	if p.PassportNumber != "" && len(p.PassportNumber) < minPassportLength {
		failures = append(failures, errShortPassportNo)
	}

	if p.DateOfBirth != "" {
		dob, err := parseDOB(p.DateOfBirth)
		switch {
		case err != nil:
			failures = append(failures, errInvalidDOB)
		case dob.After(time.Now()):
			failures = append(failures, errFutureDOB)
		}
	}

	return failures
}

// ValidatePassengers aggregates failures across a party, prefixing each
// message with the passenger's position.
func ValidatePassengers(passengers []models.Passenger) []string {
	var failures []string
	for i, p := range passengers {
		for _, f := range ValidatePassenger(p) {
			failures = append(failures, "Passenger "+strconv.Itoa(i+1)+": "+f)
		}
	}
	return failures
}

// parseDOB accepts the ISO date form, or a full timestamp for callers
// that serialize native date values.
func parseDOB(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

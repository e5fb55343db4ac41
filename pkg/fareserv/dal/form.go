package dal

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/fault"
)

// DateLayout is the wire format of the travel date
const DateLayout = "2006-01-02"

// TripForm defines the raw values submitted by the form or the JSON API
type TripForm struct {
	Airline     string  `json:"airline" validate:"required"`
	FareNote    string  `json:"additional_info" validate:"required"`
	Stops       int     `json:"total_stops" validate:"min=0,max=4"`
	Source      string  `json:"source" validate:"required"`
	Destination string  `json:"destination" validate:"required"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	Departure   string  `json:"departure_time"`
	Arrival     string  `json:"arrival_time"`
	Duration    float64 `json:"duration" validate:"gte=0.5,lte=24"`
}

// QuoteResponse defines an HTTP response struct
type QuoteResponse struct {
	Price   float64 `json:"price"`
	Display string  `json:"display"`
}

// OptionsResponse lists the selectable values and defaults of the form
type OptionsResponse struct {
	Airlines     []Airline  `json:"airlines"`
	FareNotes    []FareNote `json:"additional_info"`
	Sources      []City     `json:"sources"`
	Destinations []City     `json:"destinations"`
	Defaults     TripForm   `json:"defaults"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DefaultForm returns the values the form starts with
func DefaultForm(today time.Time) TripForm {
	return TripForm{
		Airline:     string(Airlines[0]),
		FareNote:    string(FareNotes[0]),
		Stops:       0,
		Source:      string(Sources[0]),
		Destination: string(Destinations[1]),
		Date:        today.Format(DateLayout),
		Departure:   "12:00",
		Arrival:     "14:00",
		Duration:    2.0,
	}
}

// Validate checks ranges and required fields
func (f TripForm) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fault.InvalidInputError{Msg: err.Error(), Err: err}
	}
	fe := verrs[0]
	return fault.InvalidInputError{Field: fe.Field(), Msg: describe(fe), Err: err}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must use the YYYY-MM-DD format", fe.Field())
	default:
		return fmt.Sprintf("invalid %s", fe.Field())
	}
}

// Request validates the form and converts it to a TripRequest.
// Category values are not checked here, the encoder owns that lookup.
func (f TripForm) Request() (TripRequest, error) {
	if err := f.Validate(); err != nil {
		return TripRequest{}, err
	}
	date, err := time.Parse(DateLayout, f.Date)
	if err != nil {
		return TripRequest{}, fault.InvalidInputError{Field: "date", Msg: "date must use the YYYY-MM-DD format", Err: err}
	}
	return TripRequest{
		Airline:     Airline(f.Airline),
		FareNote:    FareNote(f.FareNote),
		Stops:       f.Stops,
		Source:      City(f.Source),
		Destination: City(f.Destination),
		Date:        date,
		Departure:   f.Departure,
		Arrival:     f.Arrival,
		Duration:    f.Duration,
	}, nil
}

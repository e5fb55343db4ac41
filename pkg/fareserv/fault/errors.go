package fault

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a form value that could not be parsed.
type InvalidInputError struct {
	Field string
	Msg   string
	Err   error
}

func (e InvalidInputError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "invalid input"
}

func (e InvalidInputError) Unwrap() error { return e.Err }

// InvalidOptionError reports a category that has no column in the model schema.
type InvalidOptionError struct {
	Column string
}

func (e InvalidOptionError) Error() string {
	return "Invalid option: " + e.Column
}

// SameCityError is returned when departure and arrival cities are equal.
type SameCityError struct {
	City string
}

func (e SameCityError) Error() string {
	return "Please select different cities for departure and arrival"
}

// ModelLoadError is fatal: no prediction can be served after it.
type ModelLoadError struct {
	Path string
	Msg  string
	Err  error
}

func (e ModelLoadError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return fmt.Sprintf("Error loading model: %v", e.Err)
	default:
		return "Error loading model"
	}
}

func (e ModelLoadError) Unwrap() error { return e.Err }

func IsInvalidInput(err error) bool {
	var target InvalidInputError
	return errors.As(err, &target)
}

func IsInvalidOption(err error) bool {
	var target InvalidOptionError
	return errors.As(err, &target)
}

func IsSameCity(err error) bool {
	var target SameCityError
	return errors.As(err, &target)
}

func IsModelLoad(err error) bool {
	var target ModelLoadError
	return errors.As(err, &target)
}

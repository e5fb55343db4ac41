// Package encoder turns a trip into the numeric row the fare model was trained on.
package encoder

import (
	"strconv"
	"strings"

	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/dal"
	"github.com/nekruzvatanshoev/fareserv/pkg/fareserv/fault"
)

const timeFormatMsg = "Invalid time format. Please use HH:MM format"

// FeatureVector is one model row, indexed by Column
type FeatureVector [NumColumns]float64

// Get returns the value of the named column
func (v FeatureVector) Get(name string) (float64, bool) {
	c, ok := Lookup(name)
	if !ok {
		return 0, false
	}
	return v[c], true
}

// Row returns the values in column order
func (v FeatureVector) Row() []float64 {
	row := make([]float64, NumColumns)
	copy(row, v[:])
	return row
}

// Named returns the values keyed by column name
func (v FeatureVector) Named() map[string]float64 {
	out := make(map[string]float64, NumColumns)
	for i, n := range columnNames {
		out[n] = v[i]
	}
	return out
}

// Encode builds the feature row for a trip
func Encode(trip dal.TripRequest) (FeatureVector, error) {
	var v FeatureVector

	depHour, depMin, err := ParseClock(trip.Departure)
	if err != nil {
		return v, err
	}
	arrHour, arrMin, err := ParseClock(trip.Arrival)
	if err != nil {
		return v, err
	}
	durHour, durMin := SplitDuration(trip.Duration)

	v[TotalStops] = float64(trip.Stops)
	v[Day] = float64(trip.Date.Day())
	v[Month] = float64(trip.Date.Month())
	v[Year] = float64(trip.Date.Year())
	v[DepartureHour] = float64(depHour)
	v[DepartureMin] = float64(depMin)
	v[ArrivalHour] = float64(arrHour)
	v[ArrivalMin] = float64(arrMin)
	v[DurationHour] = float64(durHour)
	v[DurationMin] = float64(durMin)

	c, ok := airlineColumns[trip.Airline]
	if !ok {
		return FeatureVector{}, fault.InvalidOptionError{Column: AirlinePrefix + string(trip.Airline)}
	}
	v[c] = 1

	c, ok = fareNoteColumns[trip.FareNote]
	if !ok {
		return FeatureVector{}, fault.InvalidOptionError{Column: FareNotePrefix + string(trip.FareNote)}
	}
	v[c] = 1

	c, ok = sourceColumns[trip.Source]
	if !ok {
		return FeatureVector{}, fault.InvalidOptionError{Column: SourcePrefix + string(trip.Source)}
	}
	v[c] = 1

	c, ok = destinationColumns[trip.Destination]
	if !ok {
		return FeatureVector{}, fault.InvalidOptionError{Column: DestinationPrefix + string(trip.Destination)}
	}
	v[c] = 1

	return v, nil
}

// ParseClock parses "HH:MM" on a 24h clock
func ParseClock(s string) (int, int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fault.InvalidInputError{Field: "time", Msg: timeFormatMsg}
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fault.InvalidInputError{Field: "time", Msg: timeFormatMsg, Err: err}
	}
	minute, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fault.InvalidInputError{Field: "time", Msg: timeFormatMsg, Err: err}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fault.InvalidInputError{Field: "time", Msg: timeFormatMsg}
	}
	return hour, minute, nil
}

// SplitDuration splits fractional hours into whole hours and minutes.
// Minutes are truncated, not rounded, so binary float error can drop a minute.
func SplitDuration(d float64) (int, int) {
	hour := int(d)
	return hour, int((d - float64(hour)) * 60)
}

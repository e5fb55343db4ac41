package dal

import "time"

// Airline defines a carrier known to the fare model
type Airline string

const (
	AirAsia                        Airline = "Air Asia"
	AirIndia                       Airline = "Air India"
	GoAir                          Airline = "GoAir"
	IndiGo                         Airline = "IndiGo"
	JetAirways                     Airline = "Jet Airways"
	JetAirwaysBusiness             Airline = "Jet Airways Business"
	MultipleCarriers               Airline = "Multiple carriers"
	MultipleCarriersPremiumEconomy Airline = "Multiple carriers Premium economy"
	SpiceJet                       Airline = "SpiceJet"
	Trujet                         Airline = "Trujet"
	Vistara                        Airline = "Vistara"
	VistaraPremiumEconomy          Airline = "Vistara Premium economy"
)

// FareNote defines the ticket condition label of a fare
type FareNote string

// The model was trained on both "No Info" and "No info", they are distinct columns.
const (
	OneLongLayover   FareNote = "1 Long layover"
	OneShortLayover  FareNote = "1 Short layover"
	TwoLongLayover   FareNote = "2 Long layover"
	BusinessClass    FareNote = "Business class"
	ChangeAirports   FareNote = "Change airports"
	NoMeal           FareNote = "In-flight meal not included"
	NoInfo           FareNote = "No Info"
	NoCheckInBaggage FareNote = "No check-in baggage included"
	NoInfoLower      FareNote = "No info"
	RedEyeFlight     FareNote = "Red-eye flight"
)

// City defines a departure or arrival city. The spelling follows the training data.
type City string

const (
	Banglore  City = "Banglore"
	Chennai   City = "Chennai"
	Cochin    City = "Cochin"
	Delhi     City = "Delhi"
	Hyderabad City = "Hyderabad"
	Kolkata   City = "Kolkata"
	Mumbai    City = "Mumbai"
	NewDelhi  City = "New Delhi"
)

// Airlines lists the carriers in form order
var Airlines = []Airline{
	AirAsia, AirIndia, GoAir, IndiGo, JetAirways, JetAirwaysBusiness,
	MultipleCarriers, MultipleCarriersPremiumEconomy, SpiceJet, Trujet,
	Vistara, VistaraPremiumEconomy,
}

// FareNotes lists the fare note labels in form order
var FareNotes = []FareNote{
	OneLongLayover, OneShortLayover, TwoLongLayover, BusinessClass, ChangeAirports,
	NoMeal, NoInfo, NoCheckInBaggage, NoInfoLower, RedEyeFlight,
}

// Sources lists the departure cities
var Sources = []City{Banglore, Chennai, Delhi, Kolkata, Mumbai}

// Destinations lists the arrival cities
var Destinations = []City{Banglore, Cochin, Delhi, Hyderabad, Kolkata, NewDelhi}

// TripRequest defines one validated trip to be priced
type TripRequest struct {
	Airline     Airline
	FareNote    FareNote
	Stops       int
	Source      City
	Destination City
	Date        time.Time
	Departure   string
	Arrival     string
	Duration    float64
}

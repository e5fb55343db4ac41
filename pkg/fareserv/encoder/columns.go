package encoder

import "github.com/nekruzvatanshoev/fareserv/pkg/fareserv/dal"

// Column indexes one feature of the model row
type Column int

const (
	TotalStops Column = iota
	Day
	Month
	Year
	DepartureHour
	DepartureMin
	ArrivalHour
	ArrivalMin
	DurationHour
	DurationMin

	AirlineAirAsia
	AirlineAirIndia
	AirlineGoAir
	AirlineIndiGo
	AirlineJetAirways
	AirlineJetAirwaysBusiness
	AirlineMultipleCarriers
	AirlineMultipleCarriersPremiumEconomy
	AirlineSpiceJet
	AirlineTrujet
	AirlineVistara
	AirlineVistaraPremiumEconomy

	InfoOneLongLayover
	InfoOneShortLayover
	InfoTwoLongLayover
	InfoBusinessClass
	InfoChangeAirports
	InfoNoMeal
	InfoNoInfo
	InfoNoCheckInBaggage
	InfoNoInfoLower
	InfoRedEyeFlight

	SourceBanglore
	SourceChennai
	SourceDelhi
	SourceKolkata
	SourceMumbai

	DestinationBanglore
	DestinationCochin
	DestinationDelhi
	DestinationHyderabad
	DestinationKolkata
	DestinationNewDelhi

	NumColumns
)

// Prefixes of the one-hot groups
const (
	AirlinePrefix     = "Airline_"
	FareNotePrefix    = "Additional_Info_"
	SourcePrefix      = "Source_"
	DestinationPrefix = "Destination_"
)

var numericNames = [...]string{
	TotalStops:    "Total_Stops",
	Day:           "Date",
	Month:         "Month",
	Year:          "Year",
	DepartureHour: "departure_hour",
	DepartureMin:  "departure_min",
	ArrivalHour:   "arrival_hour",
	ArrivalMin:    "arrival_min",
	DurationHour:  "duration_hour",
	DurationMin:   "duration_min",
}

var airlineColumns = map[dal.Airline]Column{
	dal.AirAsia:                        AirlineAirAsia,
	dal.AirIndia:                       AirlineAirIndia,
	dal.GoAir:                          AirlineGoAir,
	dal.IndiGo:                         AirlineIndiGo,
	dal.JetAirways:                     AirlineJetAirways,
	dal.JetAirwaysBusiness:             AirlineJetAirwaysBusiness,
	dal.MultipleCarriers:               AirlineMultipleCarriers,
	dal.MultipleCarriersPremiumEconomy: AirlineMultipleCarriersPremiumEconomy,
	dal.SpiceJet:                       AirlineSpiceJet,
	dal.Trujet:                         AirlineTrujet,
	dal.Vistara:                        AirlineVistara,
	dal.VistaraPremiumEconomy:          AirlineVistaraPremiumEconomy,
}

var fareNoteColumns = map[dal.FareNote]Column{
	dal.OneLongLayover:   InfoOneLongLayover,
	dal.OneShortLayover:  InfoOneShortLayover,
	dal.TwoLongLayover:   InfoTwoLongLayover,
	dal.BusinessClass:    InfoBusinessClass,
	dal.ChangeAirports:   InfoChangeAirports,
	dal.NoMeal:           InfoNoMeal,
	dal.NoInfo:           InfoNoInfo,
	dal.NoCheckInBaggage: InfoNoCheckInBaggage,
	dal.NoInfoLower:      InfoNoInfoLower,
	dal.RedEyeFlight:     InfoRedEyeFlight,
}

var sourceColumns = map[dal.City]Column{
	dal.Banglore: SourceBanglore,
	dal.Chennai:  SourceChennai,
	dal.Delhi:    SourceDelhi,
	dal.Kolkata:  SourceKolkata,
	dal.Mumbai:   SourceMumbai,
}

var destinationColumns = map[dal.City]Column{
	dal.Banglore:  DestinationBanglore,
	dal.Cochin:    DestinationCochin,
	dal.Delhi:     DestinationDelhi,
	dal.Hyderabad: DestinationHyderabad,
	dal.Kolkata:   DestinationKolkata,
	dal.NewDelhi:  DestinationNewDelhi,
}

var columnNames = buildNames()

func buildNames() []string {
	names := make([]string, NumColumns)
	for c, n := range numericNames {
		names[c] = n
	}
	for v, c := range airlineColumns {
		names[c] = AirlinePrefix + string(v)
	}
	for v, c := range fareNoteColumns {
		names[c] = FareNotePrefix + string(v)
	}
	for v, c := range sourceColumns {
		names[c] = SourcePrefix + string(v)
	}
	for v, c := range destinationColumns {
		names[c] = DestinationPrefix + string(v)
	}
	return names
}

// Columns returns the model column names in row order
func Columns() []string {
	out := make([]string, len(columnNames))
	copy(out, columnNames)
	return out
}

// String returns the column name
func (c Column) String() string {
	if c < 0 || c >= NumColumns {
		return "unknown"
	}
	return columnNames[c]
}

// Lookup finds a column by name
func Lookup(name string) (Column, bool) {
	for i, n := range columnNames {
		if n == name {
			return Column(i), true
		}
	}
	return 0, false
}
